package models

import (
	"encoding/json"
	"time"
)

type HealthProfile struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"user_id"`
	Email              string    `json:"email"`
	DateOfBirth        string    `json:"date_of_birth"`
	Gender             string    `json:"gender"`
	HeightCM           float64   `json:"height_cm"`
	WeightKG           float64   `json:"weight_kg"`
	ActivityLevel      string    `json:"activity_level"`
	HealthGoals        []string  `json:"health_goals"`
	MedicalConditions  []string  `json:"medical_conditions"`
	Medications        []string  `json:"medications"`
	Allergies          []string  `json:"allergies"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	SleepPattern       string    `json:"sleep_pattern"`
	StressLevel        int       `json:"stress_level"`
	Test1Completed     bool      `json:"test1_completed"`
	Test2Completed     bool      `json:"test2_completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Assessment struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	TestType  string          `json:"test_type"`
	Responses json.RawMessage `json:"responses"`
	Analysis  json.RawMessage `json:"analysis,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
