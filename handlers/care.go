package handlers

import (
	"net/http"

	"hackhub/models"
	"hackhub/service"
)

func (h Handler) ListDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.svc.ListDoctors(r.Context(), r.URL.Query().Get("specialty"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	respondWithData(w, http.StatusOK, doctors)
}

func (h Handler) FreeSlotsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	slots, err := h.svc.FreeSlots(r.Context(), id, date)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, map[string]interface{}{
		"doctorId": id,
		"date":     date,
		"slots":    slots,
	})
}

func (h Handler) BookAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	var req service.AppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.svc.BookAppointment(r.Context(), c.UserID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, a)
}

func (h Handler) ListAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	list, err := h.svc.ListAppointments(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if list == nil {
		list = []models.Appointment{}
	}
	respondWithData(w, http.StatusOK, list)
}

func (h Handler) CancelAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	a, err := h.svc.CancelAppointment(r.Context(), c.UserID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, a)
}
