package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hackhub/models"
	"hackhub/service"
	"hackhub/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		height, weight float64
		bmi, category  string
	}{
		{height: 180, weight: 55, bmi: "17.0", category: "Underweight"},
		{height: 175, weight: 70, bmi: "22.9", category: "Normal"},
		{height: 170, weight: 80, bmi: "27.7", category: "Overweight"},
		{height: 160, weight: 90, bmi: "35.2", category: "Obese"},
		{height: 0, weight: 70},
		{height: 170, weight: 0},
	}
	for _, tt := range tests {
		bmi, category := service.BMI(tt.height, tt.weight)
		require.Equal(t, tt.bmi, bmi, "%v/%v", tt.height, tt.weight)
		require.Equal(t, tt.category, category, "%v/%v", tt.height, tt.weight)
	}
}

func TestAgeOn(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 25, service.AgeOn("2000-03-10", now))
	require.Equal(t, 24, service.AgeOn("2000-03-11", now))
	require.Equal(t, 0, service.AgeOn("", now))
	require.Equal(t, 0, service.AgeOn("2030-01-01", now))
}

func TestService_HealthProfile(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().GetHealthProfile(gomock.Any(), 1).
			Return(models.HealthProfile{UserID: 1, DateOfBirth: "1995-01-01", HeightCM: 175, WeightKG: 70}, nil)
		mr.EXPECT().GetHealthProfile(gomock.Any(), 2).Return(models.HealthProfile{}, sql.ErrNoRows)
	})

	v, err := svc.HealthProfile(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, v.Complete)
	require.Equal(t, "22.9", v.BMI)
	require.Equal(t, 30, v.Age)

	_, err = svc.HealthProfile(context.Background(), 2)
	require.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestService_HealthProfileOrDefault(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().GetHealthProfile(gomock.Any(), 2).Return(models.HealthProfile{}, sql.ErrNoRows)
	})

	v, err := svc.HealthProfileOrDefault(context.Background(), 2, "x@y.z")
	require.NoError(t, err)
	require.False(t, v.Complete)
	require.Equal(t, "not_specified", v.Gender)
	require.Equal(t, "sedentary", v.ActivityLevel)
	require.Equal(t, "fair", v.SleepPattern)
	require.Equal(t, 5, v.StressLevel)
	require.Equal(t, []string{}, v.HealthGoals)
	require.Empty(t, v.BMI)
}

func TestService_SaveHealthProfile(t *testing.T) {
	valid := service.DefaultHealthProfile(0, "")
	valid.HeightCM = 160
	valid.WeightKG = 50
	valid.DateOfBirth = "1990-06-15"

	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().UpsertHealthProfile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.HealthProfile) (models.HealthProfile, error) {
				require.Equal(t, 4, p.UserID)
				require.Equal(t, "me@x.io", p.Email)
				return p, nil
			})
	})

	v, err := svc.SaveHealthProfile(context.Background(), 4, "me@x.io", valid)
	require.NoError(t, err)
	require.Equal(t, "19.5", v.BMI)
	require.Equal(t, "Normal", v.BMICategory)

	bad := valid
	bad.StressLevel = 11
	_, err = svc.SaveHealthProfile(context.Background(), 4, "me@x.io", bad)
	require.True(t, service.IsValidation(err))

	bad = valid
	bad.ActivityLevel = "couch"
	_, err = svc.SaveHealthProfile(context.Background(), 4, "me@x.io", bad)
	require.True(t, service.IsValidation(err))

	bad = valid
	bad.DateOfBirth = "2099-01-01"
	_, err = svc.SaveHealthProfile(context.Background(), 4, "me@x.io", bad)
	require.True(t, service.IsValidation(err))
}
