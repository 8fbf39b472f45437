package service_test

import (
	"context"
	"database/sql"
	"testing"

	"hackhub/models"
	"hackhub/service"
	"hackhub/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func appointmentRequest() service.AppointmentRequest {
	return service.AppointmentRequest{
		DoctorID:        2,
		PatientName:     "Asha Rao",
		Email:           "Asha@Mail.com",
		Phone:           "+91 98765 43210",
		Age:             29,
		Gender:          "female",
		Symptoms:        "Recurring headaches",
		AppointmentDate: "2025-03-12",
		AppointmentTime: "10:30 AM",
	}
}

func TestService_BookAppointment(t *testing.T) {
	type fields struct {
		prepareRepository func(*mocks.MockRepository)
	}
	tests := []struct {
		name    string
		mutate  func(*service.AppointmentRequest)
		fields  fields
		wantErr error
		wantVal bool
	}{
		{
			name: "Booked online by default",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().GetDoctor(gomock.Any(), 2).Return(models.Doctor{ID: 2}, nil)
					mr.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, a models.Appointment) (models.Appointment, error) {
							require.Equal(t, 5, a.UserID)
							require.Equal(t, "online", a.ConsultationMode)
							require.Equal(t, "asha@mail.com", a.Email)
							require.Equal(t, "+919876543210", a.Phone)
							require.Equal(t, models.AppointmentBooked, a.Status)
							a.ID = 11
							return a, nil
						})
				},
			},
		},
		{
			name: "Slot already taken",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().GetDoctor(gomock.Any(), 2).Return(models.Doctor{ID: 2}, nil)
					mr.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(models.Appointment{}, models.ErrDuplicate)
				},
			},
			wantErr: service.ErrSlotTaken,
		},
		{
			name: "Unknown doctor",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().GetDoctor(gomock.Any(), 2).Return(models.Doctor{}, sql.ErrNoRows)
				},
			},
			wantErr: service.ErrDoctorNotFound,
		},
		{
			name:    "Date in the past",
			mutate:  func(r *service.AppointmentRequest) { r.AppointmentDate = "2025-03-09" },
			wantVal: true,
		},
		{
			name:    "Slot outside the day plan",
			mutate:  func(r *service.AppointmentRequest) { r.AppointmentTime = "01:00 PM" },
			wantVal: true,
		},
		{
			name:    "Unknown consultation mode",
			mutate:  func(r *service.AppointmentRequest) { r.ConsultationMode = "video" },
			wantVal: true,
		},
		{
			name:    "Short phone",
			mutate:  func(r *service.AppointmentRequest) { r.Phone = "12345" },
			wantVal: true,
		},
		{
			name:    "Age out of range",
			mutate:  func(r *service.AppointmentRequest) { r.Age = 0 },
			wantVal: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.fields.prepareRepository)
			req := appointmentRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			a, err := svc.BookAppointment(context.Background(), 5, req)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantVal:
				require.True(t, service.IsValidation(err), "got %v", err)
			default:
				require.NoError(t, err)
				require.Equal(t, 11, a.ID)
			}
		})
	}
}

func TestService_FreeSlots(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().GetDoctor(gomock.Any(), 2).Return(models.Doctor{ID: 2}, nil)
		mr.EXPECT().BookedSlots(gomock.Any(), 2, "2025-03-10").Return([]string{"09:00 AM", "06:00 PM"}, nil)
	})

	free, err := svc.FreeSlots(context.Background(), 2, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, free, len(service.TimeSlots)-2)
	require.Equal(t, "09:30 AM", free[0])
	require.NotContains(t, free, "06:00 PM")

	_, err = svc.FreeSlots(context.Background(), 2, "10/03/2025")
	require.True(t, service.IsValidation(err))
}

func TestService_CancelAppointment(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "Cancelled"},
		{name: "Not found", repoErr: sql.ErrNoRows, wantErr: service.ErrAppointmentNotFound},
		{name: "Already cancelled", repoErr: models.ErrNotPending, wantErr: service.ErrAppointmentNotCancellable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, func(mr *mocks.MockRepository) {
				mr.EXPECT().CancelAppointment(gomock.Any(), 5, 11).
					Return(models.Appointment{ID: 11, Status: models.AppointmentCancelled}, tt.repoErr)
			})
			a, err := svc.CancelAppointment(context.Background(), 5, 11)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.AppointmentCancelled, a.Status)
		})
	}
}
