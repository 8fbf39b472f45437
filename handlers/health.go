package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hackhub/models"
	"hackhub/service"
)

type assessmentRequest struct {
	UserID    json.Number     `json:"userId"`
	TestType  string          `json:"testType"`
	Responses json.RawMessage `json:"responses"`
}

// ProfileHandler serves the marketplace profile, or the health profile of
// the caller when ?userId= is present.
func (h Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}

	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", "userId must be an integer")
			return
		}
		if id != c.UserID {
			h.fail(w, r, service.ErrForbidden)
			return
		}
		view, err := h.svc.HealthProfile(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		respondWithData(w, http.StatusOK, view)
		return
	}

	p, err := h.svc.GetProfile(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, p)
}

func (h Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	var upd models.ProfileUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	p, err := h.svc.UpdateProfile(r.Context(), c.UserID, upd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, p)
}

func (h Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	d, err := h.svc.Dashboard(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, d)
}

func (h Handler) HealthProfileHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	view, err := h.svc.HealthProfileOrDefault(r.Context(), c.UserID, c.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, view)
}

func (h Handler) SaveHealthProfileHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	var p models.HealthProfile
	if !decodeJSON(w, r, &p) {
		return
	}
	view, err := h.svc.SaveHealthProfile(r.Context(), c.UserID, c.Email, p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, view)
}

// SaveAssessmentHandler stores questionnaire answers for the caller. A userId
// in the body must match the token.
func (h Handler) SaveAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	var req assessmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID != "" {
		id, err := req.UserID.Int64()
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", "userId must be an integer")
			return
		}
		if int(id) != c.UserID {
			h.fail(w, r, service.ErrForbidden)
			return
		}
	}
	res, err := h.svc.SaveAssessment(r.Context(), c.UserID, req.TestType, req.Responses)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, res)
}

func (h Handler) ListAssessmentsHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	list, err := h.svc.ListAssessments(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if list == nil {
		list = []models.Assessment{}
	}
	respondWithData(w, http.StatusOK, list)
}
