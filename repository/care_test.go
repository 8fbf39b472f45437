package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"hackhub/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var appointmentCols = []string{"id", "user_id", "doctor_id", "patient_name", "email", "phone", "age", "gender",
	"symptoms", "appointment_date", "appointment_time", "consultation_mode", "additional_notes", "status", "created_at"}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(q("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "appointments_slot_idx"})

	_, err := repo.CreateAppointment(context.Background(), models.Appointment{
		DoctorID: 2, AppointmentDate: "2025-03-12", AppointmentTime: "10:30 AM",
	})
	require.ErrorIs(t, err, models.ErrDuplicate)
}

func TestBookedSlots(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(q("SELECT appointment_time FROM appointments")).
		WithArgs(2, "2025-03-12", models.AppointmentBooked).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}).AddRow("09:00 AM").AddRow("10:30 AM"))

	slots, err := repo.BookedSlots(context.Background(), 2, "2025-03-12")
	require.NoError(t, err)
	require.Equal(t, []string{"09:00 AM", "10:30 AM"}, slots)
}

func TestCancelAppointment(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "booked",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(q("SELECT status FROM appointments WHERE id=$1 AND user_id=$2 FOR UPDATE")).
					WithArgs(11, 5).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.AppointmentBooked))
				mock.ExpectQuery(q("UPDATE appointments SET status=$1")).
					WithArgs(models.AppointmentCancelled, 11).
					WillReturnRows(sqlmock.NewRows(appointmentCols).
						AddRow(11, 5, 2, "Asha", "a@m.com", "+919876543210", 29, "female", "headache",
							"2025-03-12", "10:30 AM", "online", "", models.AppointmentCancelled, createdAt))
				mock.ExpectCommit()
			},
		},
		{
			name: "already cancelled",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(q("FOR UPDATE")).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.AppointmentCancelled))
				mock.ExpectRollback()
			},
			wantErr: models.ErrNotPending,
		},
		{
			name: "someone else's appointment",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(q("FOR UPDATE")).WillReturnRows(sqlmock.NewRows([]string{"status"}))
				mock.ExpectRollback()
			},
			wantErr: sql.ErrNoRows,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.prepare(mock)

			a, err := repo.CancelAppointment(context.Background(), 5, 11)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.AppointmentCancelled, a.Status)
			require.Equal(t, "2025-03-12", a.AppointmentDate)
		})
	}
}

func TestListDoctorsBySpecialty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(q("FROM doctors WHERE specialty ILIKE $1 ORDER BY rating DESC, name")).
		WithArgs("ayurveda").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialty", "hospital", "experience_years", "fee", "rating"}).
			AddRow(3, "Dr. Kavya Nair", "Ayurveda", "Prakriti Wellness", 15, 600.0, 4.9))

	doctors, err := repo.ListDoctors(context.Background(), "ayurveda")
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	require.Equal(t, 4.9, doctors[0].Rating)
}
