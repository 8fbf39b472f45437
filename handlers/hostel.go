package handlers

import (
	"net/http"

	"hackhub/models"
	"hackhub/service"
)

func (h Handler) ListHostelsHandler(w http.ResponseWriter, r *http.Request) {
	q := query{r: r}
	hq := service.HostelQuery{
		Lat:      q.number("lat"),
		Lng:      q.number("lng"),
		MinPrice: q.integer("min_price"),
		MaxPrice: q.integer("max_price"),
		Gender:   q.get("gender"),
		Limit:    q.integer("limit"),
	}
	if radius := q.number("radius_km"); radius != nil {
		hq.RadiusKm = *radius
	}
	minLat, maxLat := q.number("min_lat"), q.number("max_lat")
	minLng, maxLng := q.number("min_lng"), q.number("max_lng")
	if q.err != nil {
		respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", q.err.Error())
		return
	}
	if minLat != nil || maxLat != nil || minLng != nil || maxLng != nil {
		if minLat == nil || maxLat == nil || minLng == nil || maxLng == nil {
			respondWithError(w, http.StatusBadRequest, "VALIDATION_FAILED", "bounds need min_lat, max_lat, min_lng and max_lng")
			return
		}
		hq.Bounds = &service.BoundingBox{MinLat: *minLat, MaxLat: *maxLat, MinLng: *minLng, MaxLng: *maxLng}
	}

	hostels, err := h.svc.ListHostels(r.Context(), hq)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if hostels == nil {
		hostels = []service.HostelResult{}
	}
	respondWithData(w, http.StatusOK, hostels)
}

func (h Handler) GetHostelHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	hostel, err := h.svc.GetHostel(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, hostel)
}

func (h Handler) CreateHostelHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	var req models.Hostel
	if !decodeJSON(w, r, &req) {
		return
	}
	hostel, err := h.svc.CreateHostel(r.Context(), c.UserID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, hostel)
}

func (h Handler) MapboxTokenHandler(w http.ResponseWriter, r *http.Request) {
	token, err := h.svc.MapboxToken()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, map[string]string{"token": token})
}

func (h Handler) ReverseGeocodeHandler(w http.ResponseWriter, r *http.Request) {
	q := query{r: r}
	lng, lat := q.number("lng"), q.number("lat")
	if q.err != nil {
		respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", q.err.Error())
		return
	}
	if lng == nil || lat == nil {
		respondWithError(w, http.StatusBadRequest, "VALIDATION_FAILED", "lng and lat are required")
		return
	}
	addr, err := h.svc.ReverseGeocode(r.Context(), *lng, *lat)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, addr)
}
