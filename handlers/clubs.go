package handlers

import (
	"net/http"
	"strconv"

	"hackhub/models"
	"hackhub/service"
)

type reviewRequest struct {
	Action string `json:"action"`
}

func (h Handler) ListCollegesHandler(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.svc.ListColleges(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if colleges == nil {
		colleges = []models.College{}
	}
	respondWithData(w, http.StatusOK, colleges)
}

// ListClubsHandler accepts collegeId as a numeric id or a CLG-NNNNNN code.
func (h Handler) ListClubsHandler(w http.ResponseWriter, r *http.Request) {
	q := query{r: r}
	filter := models.ClubFilter{
		CategoryID: q.integer("categoryId"),
		Search:     q.get("search"),
	}
	if q.err != nil {
		respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", q.err.Error())
		return
	}
	if college := q.get("collegeId"); college != "" {
		if id, err := strconv.Atoi(college); err == nil {
			filter.CollegeID = id
		} else {
			filter.CollegeCode = college
		}
	}

	clubs, err := h.svc.ListClubs(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if clubs == nil {
		clubs = []models.Club{}
	}
	respondWithData(w, http.StatusOK, clubs)
}

func (h Handler) GetClubHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	club, err := h.svc.GetClub(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, club)
}

func (h Handler) CollegeClubsHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := claimsFrom(r.Context())
	clubs, err := h.svc.CollegeClubs(r.Context(), c.CollegeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if clubs == nil {
		clubs = []models.Club{}
	}
	respondWithData(w, http.StatusOK, clubs)
}

func (h Handler) ReviewClubHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := claimsFrom(r.Context())
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status, err := h.svc.ReviewClub(r.Context(), c.CollegeID, id, req.Action)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, map[string]interface{}{
		"clubId": id,
		"status": status,
	})
}

func (h Handler) CollegeStatsHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := claimsFrom(r.Context())
	st, err := h.svc.CollegeStats(r.Context(), c.CollegeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, st)
}

func (h Handler) ClubStatsHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := claimsFrom(r.Context())
	st, err := h.svc.ClubStats(r.Context(), c.ClubID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, st)
}

func (h Handler) CreateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := claimsFrom(r.Context())
	var req service.AnnouncementInput
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.svc.CreateAnnouncement(r.Context(), c.ClubID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, a)
}

func (h Handler) CreateRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := claimsFrom(r.Context())
	var req service.RegistrationInput
	if !decodeJSON(w, r, &req) {
		return
	}
	reg, err := h.svc.CreateRegistration(r.Context(), c.ClubID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, reg)
}

func (h Handler) UpdateClubHandler(w http.ResponseWriter, r *http.Request) {
	c, _ := claimsFrom(r.Context())
	var req service.ClubUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.UpdateClub(r.Context(), c.ClubID, req); err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, map[string]string{"message": "club updated"})
}
