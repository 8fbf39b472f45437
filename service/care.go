package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hackhub/models"

	"go.uber.org/zap"
)

// TimeSlots are the bookable consultation slots of a day.
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
	"05:00 PM", "05:30 PM", "06:00 PM",
}

var patientGenders = []string{"male", "female", "other", "prefer-not-to-say"}

type AppointmentRequest struct {
	DoctorID         int    `json:"doctorId"`
	PatientName      string `json:"patientName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	Symptoms         string `json:"symptoms"`
	AppointmentDate  string `json:"appointmentDate"`
	AppointmentTime  string `json:"appointmentTime"`
	ConsultationMode string `json:"consultationMode"`
	AdditionalNotes  string `json:"additionalNotes"`
}

func (s Service) ListDoctors(ctx context.Context, specialty string) ([]models.Doctor, error) {
	return s.repo.ListDoctors(ctx, strings.TrimSpace(specialty))
}

// FreeSlots returns the slots of date not yet booked with the doctor.
func (s Service) FreeSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	if err := s.validDate(date); err != nil {
		return nil, err
	}
	if _, err := s.doctor(ctx, doctorID); err != nil {
		return nil, err
	}
	booked, err := s.repo.BookedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("booked slots: %w", err)
	}

	free := make([]string, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		if !contains(booked, slot) {
			free = append(free, slot)
		}
	}
	return free, nil
}

func (s Service) BookAppointment(ctx context.Context, userID int, req AppointmentRequest) (models.Appointment, error) {
	req.Email = normalizeEmail(req.Email)
	req.Phone = strings.ReplaceAll(strings.TrimSpace(req.Phone), " ", "")
	if req.ConsultationMode == "" {
		req.ConsultationMode = "online"
	}
	if err := firstError(
		validLength("patientName", req.PatientName, 2, 255),
		validEmail("email", req.Email),
		validPhone(req.Phone),
		validAge(req.Age),
		oneOf("gender", req.Gender, patientGenders...),
		validLength("symptoms", req.Symptoms, 1, 2000),
		s.validDate(req.AppointmentDate),
		oneOf("appointmentTime", req.AppointmentTime, TimeSlots...),
		oneOf("consultationMode", req.ConsultationMode, "online", "offline"),
		validLength("additionalNotes", req.AdditionalNotes, 0, 2000),
	); err != nil {
		return models.Appointment{}, err
	}
	if _, err := s.doctor(ctx, req.DoctorID); err != nil {
		return models.Appointment{}, err
	}

	a, err := s.repo.CreateAppointment(ctx, models.Appointment{
		UserID:           userID,
		DoctorID:         req.DoctorID,
		PatientName:      strings.TrimSpace(req.PatientName),
		Email:            req.Email,
		Phone:            req.Phone,
		Age:              req.Age,
		Gender:           req.Gender,
		Symptoms:         strings.TrimSpace(req.Symptoms),
		AppointmentDate:  req.AppointmentDate,
		AppointmentTime:  req.AppointmentTime,
		ConsultationMode: req.ConsultationMode,
		AdditionalNotes:  req.AdditionalNotes,
		Status:           models.AppointmentBooked,
	})
	if errors.Is(err, models.ErrDuplicate) {
		return models.Appointment{}, ErrSlotTaken
	}
	if err != nil {
		return models.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	s.logger.Info("appointment booked",
		zap.Int("appointment_id", a.ID),
		zap.Int("doctor_id", a.DoctorID),
		zap.String("date", a.AppointmentDate),
		zap.String("time", a.AppointmentTime),
	)
	return a, nil
}

func (s Service) ListAppointments(ctx context.Context, userID int) ([]models.Appointment, error) {
	return s.repo.ListAppointments(ctx, userID)
}

// CancelAppointment cancels a booked appointment owned by userID.
func (s Service) CancelAppointment(ctx context.Context, userID, id int) (models.Appointment, error) {
	a, err := s.repo.CancelAppointment(ctx, userID, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Appointment{}, ErrAppointmentNotFound
	case errors.Is(err, models.ErrNotPending):
		return models.Appointment{}, ErrAppointmentNotCancellable
	case err != nil:
		return models.Appointment{}, fmt.Errorf("cancel appointment: %w", err)
	}
	return a, nil
}

func (s Service) doctor(ctx context.Context, id int) (models.Doctor, error) {
	if id <= 0 {
		return models.Doctor{}, invalid("doctorId", "is required")
	}
	d, err := s.repo.GetDoctor(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Doctor{}, ErrDoctorNotFound
	}
	return d, err
}

// validDate accepts YYYY-MM-DD dates from today on.
func (s Service) validDate(date string) error {
	if !datePattern.MatchString(date) {
		return invalid("appointmentDate", "must be a date in YYYY-MM-DD format")
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return invalid("appointmentDate", "must be a valid date")
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return invalid("appointmentDate", "cannot be in the past")
	}
	return nil
}

func validPhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return invalid("phone", "must be 10 to 15 digits, optionally prefixed with +")
	}
	return nil
}

func validAge(age int) error {
	if age < 1 || age > 120 {
		return invalid("age", "must be between 1 and 120")
	}
	return nil
}
