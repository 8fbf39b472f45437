package models

import "time"

const (
	AppointmentBooked    = "booked"
	AppointmentCancelled = "cancelled"
)

type Doctor struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Hospital        string  `json:"hospital"`
	ExperienceYears int     `json:"experience_years"`
	Fee             float64 `json:"fee"`
	Rating          float64 `json:"rating"`
}

type Appointment struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	DoctorID         int       `json:"doctor_id"`
	PatientName      string    `json:"patient_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	Symptoms         string    `json:"symptoms"`
	AppointmentDate  string    `json:"appointment_date"`
	AppointmentTime  string    `json:"appointment_time"`
	ConsultationMode string    `json:"consultation_mode"`
	AdditionalNotes  string    `json:"additional_notes"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
