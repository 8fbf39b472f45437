package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hackhub/models"
)

type HealthProfileView struct {
	models.HealthProfile
	BMI         string `json:"bmi"`
	BMICategory string `json:"bmi_category"`
	Age         int    `json:"age"`
	Complete    bool   `json:"complete"`
}

var (
	activityLevels = []string{"sedentary", "lightly_active", "moderately_active", "very_active", "extremely_active"}
	sleepPatterns  = []string{"excellent", "good", "fair", "poor", "very_poor"}
	genders        = []string{"male", "female", "other", "not_specified"}
)

// BMI returns the body mass index with one decimal and its category. Both are
// empty when height or weight is unknown.
func BMI(heightCM, weightKG float64) (string, string) {
	if heightCM <= 0 || weightKG <= 0 {
		return "", ""
	}
	m := heightCM / 100
	bmi := weightKG / (m * m)
	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}
	return strconv.FormatFloat(bmi, 'f', 1, 64), category
}

// AgeOn returns the age in whole years on day now, or 0 for an unparseable
// date of birth.
func AgeOn(dob string, now time.Time) int {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func DefaultHealthProfile(userID int, email string) models.HealthProfile {
	return models.HealthProfile{
		UserID:             userID,
		Email:              email,
		Gender:             "not_specified",
		ActivityLevel:      "sedentary",
		HealthGoals:        []string{},
		MedicalConditions:  []string{},
		Medications:        []string{},
		Allergies:          []string{},
		DietaryPreferences: []string{},
		SleepPattern:       "fair",
		StressLevel:        5,
	}
}

// HealthProfile returns the stored profile for userID.
func (s Service) HealthProfile(ctx context.Context, userID int) (HealthProfileView, error) {
	p, err := s.repo.GetHealthProfile(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return HealthProfileView{}, ErrProfileNotFound
	}
	if err != nil {
		return HealthProfileView{}, err
	}
	return s.healthView(p, true), nil
}

// HealthProfileOrDefault never reports a missing profile; it falls back to
// the default one with Complete unset.
func (s Service) HealthProfileOrDefault(
	ctx context.Context,
	userID int,
	email string,
) (HealthProfileView, error) {
	v, err := s.HealthProfile(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		return s.healthView(DefaultHealthProfile(userID, email), false), nil
	}
	return v, err
}

func (s Service) SaveHealthProfile(
	ctx context.Context,
	userID int,
	email string,
	p models.HealthProfile,
) (HealthProfileView, error) {
	if err := validateHealthProfile(p, s.now()); err != nil {
		return HealthProfileView{}, err
	}
	p.UserID = userID
	p.Email = email
	for _, list := range []*[]string{&p.HealthGoals, &p.MedicalConditions, &p.Medications, &p.Allergies, &p.DietaryPreferences} {
		if *list == nil {
			*list = []string{}
		}
	}

	saved, err := s.repo.UpsertHealthProfile(ctx, p)
	if err != nil {
		return HealthProfileView{}, fmt.Errorf("save health profile: %w", err)
	}
	return s.healthView(saved, true), nil
}

func (s Service) healthView(p models.HealthProfile, complete bool) HealthProfileView {
	bmi, category := BMI(p.HeightCM, p.WeightKG)
	return HealthProfileView{
		HealthProfile: p,
		BMI:           bmi,
		BMICategory:   category,
		Age:           AgeOn(p.DateOfBirth, s.now()),
		Complete:      complete,
	}
}

func validateHealthProfile(p models.HealthProfile, now time.Time) error {
	if p.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", p.DateOfBirth)
		if err != nil {
			return invalid("date_of_birth", "must be a date in YYYY-MM-DD format")
		}
		if dob.After(now) {
			return invalid("date_of_birth", "cannot be in the future")
		}
	}
	if p.HeightCM < 0 || p.HeightCM > 300 {
		return invalid("height_cm", "must be between 0 and 300")
	}
	if p.WeightKG < 0 || p.WeightKG > 500 {
		return invalid("weight_kg", "must be between 0 and 500")
	}
	if p.StressLevel < 1 || p.StressLevel > 10 {
		return invalid("stress_level", "must be between 1 and 10")
	}
	return firstError(
		oneOf("gender", p.Gender, genders...),
		oneOf("activity_level", p.ActivityLevel, activityLevels...),
		oneOf("sleep_pattern", p.SleepPattern, sleepPatterns...),
	)
}
