package repository

import (
	"context"
	"database/sql"

	"hackhub/models"
)

const appointmentColumns = "id, user_id, doctor_id, patient_name, email, phone, age, gender, symptoms, " +
	"to_char(appointment_date, 'YYYY-MM-DD'), appointment_time, consultation_mode, additional_notes, " +
	"status, created_at"

func scanDoctor(row scanner) (models.Doctor, error) {
	var d models.Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Hospital, &d.ExperienceYears, &d.Fee, &d.Rating)
	return d, err
}

func scanAppointment(row scanner) (models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.DoctorID,
		&a.PatientName,
		&a.Email,
		&a.Phone,
		&a.Age,
		&a.Gender,
		&a.Symptoms,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&a.ConsultationMode,
		&a.AdditionalNotes,
		&a.Status,
		&a.CreatedAt,
	)
	return a, err
}

func (r PostgresRepository) ListDoctors(
	ctx context.Context,
	specialty string,
) ([]models.Doctor, error) {
	var c conditions
	if specialty != "" {
		c.add("specialty ILIKE ?", specialty)
	}
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT id, name, specialty, hospital, experience_years, fee, rating FROM doctors"+
			c.where()+" ORDER BY rating DESC, name",
		c.args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := []models.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r PostgresRepository) GetDoctor(ctx context.Context, id int) (models.Doctor, error) {
	return scanDoctor(r.db.QueryRowContext(
		ctx,
		"SELECT id, name, specialty, hospital, experience_years, fee, rating FROM doctors WHERE id=$1",
		id,
	))
}

// BookedSlots lists the slot labels still booked with the doctor on date.
func (r PostgresRepository) BookedSlots(
	ctx context.Context,
	doctorID int,
	date string,
) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT appointment_time FROM appointments
		 WHERE doctor_id=$1 AND appointment_date=$2::date AND status=$3`,
		doctorID, date, models.AppointmentBooked,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// CreateAppointment fails with models.ErrDuplicate when the slot is taken.
func (r PostgresRepository) CreateAppointment(
	ctx context.Context,
	a models.Appointment,
) (models.Appointment, error) {
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO appointments (user_id, doctor_id, patient_name, email, phone, age, gender, symptoms,
			appointment_date, appointment_time, consultation_mode, additional_notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::date, $10, $11, $12, $13)
		 RETURNING id, created_at`,
		a.UserID, a.DoctorID, a.PatientName, a.Email, a.Phone, a.Age, a.Gender, a.Symptoms,
		a.AppointmentDate, a.AppointmentTime, a.ConsultationMode, a.AdditionalNotes, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return models.Appointment{}, storageErr(err)
	}
	return a, nil
}

func (r PostgresRepository) ListAppointments(
	ctx context.Context,
	userID int,
) ([]models.Appointment, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE user_id=$1 ORDER BY appointment_date DESC, created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// CancelAppointment locks the user's appointment and cancels it when it is
// still booked; otherwise it returns models.ErrNotPending.
func (r PostgresRepository) CancelAppointment(
	ctx context.Context,
	userID, id int,
) (models.Appointment, error) {
	var a models.Appointment
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var status string
		err := tx.QueryRowContext(
			ctx,
			"SELECT status FROM appointments WHERE id=$1 AND user_id=$2 FOR UPDATE",
			id, userID,
		).Scan(&status)
		if err != nil {
			return err
		}
		if status != models.AppointmentBooked {
			return models.ErrNotPending
		}

		a, err = scanAppointment(tx.QueryRowContext(
			ctx,
			"UPDATE appointments SET status=$1 WHERE id=$2 RETURNING "+appointmentColumns,
			models.AppointmentCancelled, id,
		))
		return err
	})
	if err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}
