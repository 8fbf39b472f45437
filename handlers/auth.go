package handlers

import (
	"net/http"

	"hackhub/service"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.svc.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, user)
}

func (h Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, resp)
}

func (h Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	user, err := h.svc.Me(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, user)
}

func (h Handler) CollegeRegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CollegeRegistration
	if !decodeJSON(w, r, &req) {
		return
	}
	college, err := h.svc.RegisterCollege(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, college)
}

func (h Handler) CollegeLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.svc.CollegeLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, session)
}

func (h Handler) ClubRegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req service.ClubRegistration
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := h.svc.RegisterClub(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, map[string]interface{}{
		"clubId": id,
		"status": "pending",
	})
}

func (h Handler) ClubLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.svc.ClubLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, session)
}
