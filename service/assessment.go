package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"hackhub/models"
)

const TestHairFall = "hair_fall_assessment"

type HairFallResponses struct {
	StressLevel       int      `json:"stress_level"`
	AnxietyFrequency  string   `json:"anxiety_frequency"`
	SleepQuality      string   `json:"sleep_quality"`
	DietQuality       string   `json:"diet_quality"`
	ExerciseFrequency string   `json:"exercise_frequency"`
	HormonalIssues    []string `json:"hormonal_issues"`
	ScalpCondition    string   `json:"scalp_condition"`
	HairCareRoutine   string   `json:"hair_care_routine"`
	FamilyHistory     string   `json:"family_history"`
}

type DoshaScores struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

type Recommendation struct {
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Items    []string `json:"items"`
}

type HairFallAnalysis struct {
	DoshaAnalysis   DoshaScores      `json:"dosha_analysis"`
	DominantDosha   string           `json:"dominant_dosha"`
	Recommendations []Recommendation `json:"recommendations"`
	RiskLevel       string           `json:"risk_level"`
	HairHealthScore int              `json:"hair_health_score"`
}

type AssessmentResult struct {
	Assessment models.Assessment `json:"assessment"`
	Analysis   *HairFallAnalysis `json:"analysis,omitempty"`
}

var (
	vataRecommendations = []Recommendation{
		{Category: "Diet", Title: "Vata-Balancing Foods", Items: []string{
			"Include warm, cooked foods",
			"Add healthy fats like ghee and sesame oil",
			"Eat regular meals at consistent times",
			"Include grounding foods like root vegetables",
		}},
		{Category: "Lifestyle", Title: "Stress Management", Items: []string{
			"Practice daily meditation or yoga",
			"Maintain regular sleep schedule",
			"Avoid excessive stimulation",
			"Try warm oil scalp massage",
		}},
	}
	pittaRecommendations = []Recommendation{
		{Category: "Diet", Title: "Pitta-Cooling Foods", Items: []string{
			"Include cooling foods like cucumber and coconut",
			"Avoid spicy and fried foods",
			"Drink plenty of water",
			"Include bitter greens in your diet",
		}},
		{Category: "Hair Care", Title: "Gentle Hair Care", Items: []string{
			"Use mild, natural shampoos",
			"Avoid heat styling tools",
			"Try cooling hair masks",
			"Protect hair from sun exposure",
		}},
	}
	kaphaRecommendations = []Recommendation{
		{Category: "Lifestyle", Title: "Energizing Activities", Items: []string{
			"Engage in regular physical exercise",
			"Try invigorating scalp massage",
			"Maintain active lifestyle",
			"Include stimulating activities",
		}},
		{Category: "Hair Care", Title: "Scalp Health", Items: []string{
			"Use clarifying shampoos occasionally",
			"Try dry brushing the scalp",
			"Avoid heavy hair products",
			"Maintain good scalp hygiene",
		}},
	}
)

// AnalyzeHairFall scores a hair fall questionnaire.
func AnalyzeHairFall(r HairFallResponses) HairFallAnalysis {
	scores := doshaScores(r)

	dominant := "Kapha"
	switch {
	case scores.Vata > scores.Pitta && scores.Vata > scores.Kapha:
		dominant = "Vata"
	case scores.Pitta > scores.Kapha:
		dominant = "Pitta"
	}

	recs := []Recommendation{}
	if scores.Vata > 40 {
		recs = append(recs, vataRecommendations...)
	}
	if scores.Pitta > 40 {
		recs = append(recs, pittaRecommendations...)
	}
	if scores.Kapha > 40 {
		recs = append(recs, kaphaRecommendations...)
	}

	return HairFallAnalysis{
		DoshaAnalysis:   scores,
		DominantDosha:   dominant,
		Recommendations: recs,
		RiskLevel:       riskLevel(r),
		HairHealthScore: hairHealthScore(r),
	}
}

func doshaScores(r HairFallResponses) DoshaScores {
	var vata, pitta, kapha int
	if r.StressLevel >= 7 {
		vata += 30
	}
	if in(r.AnxietyFrequency, "often", "constantly") {
		vata += 25
	}
	if in(r.SleepQuality, "poor", "terrible") {
		vata += 20
	}
	if in(r.DietQuality, "poor", "terrible") {
		vata += 15
		pitta += 10
		kapha += 5
	}
	switch r.ExerciseFrequency {
	case "rarely":
		kapha += 20
	case "daily":
		kapha -= 10
	}
	if contains(r.HormonalIssues, "thyroid") || contains(r.HormonalIssues, "pcos") {
		pitta += 25
	}
	switch r.ScalpCondition {
	case "oily":
		kapha += 15
	case "dry":
		vata += 15
	case "itchy":
		pitta += 20
	}
	if in(r.HairCareRoutine, "daily", "multiple_daily") {
		pitta += 15
	}

	total := vata + pitta + kapha
	if total <= 0 {
		return DoshaScores{Vata: vata, Pitta: pitta, Kapha: kapha}
	}
	pct := func(v int) int {
		// half rounds up, negative scores included
		return int(math.Floor(float64(v)/float64(total)*100 + 0.5))
	}
	return DoshaScores{Vata: pct(vata), Pitta: pct(pitta), Kapha: pct(kapha)}
}

func riskLevel(r HairFallResponses) string {
	score := 0
	if r.StressLevel >= 8 {
		score += 3
	}
	if r.AnxietyFrequency == "constantly" {
		score += 3
	}
	if r.SleepQuality == "terrible" {
		score += 2
	}
	if r.DietQuality == "terrible" {
		score += 2
	}
	if r.ExerciseFrequency == "rarely" {
		score++
	}
	if len(r.HormonalIssues) > 0 {
		score += 2
	}
	if r.HairCareRoutine == "multiple_daily" {
		score += 2
	}

	switch {
	case score >= 8:
		return "High"
	case score >= 5:
		return "Medium"
	default:
		return "Low"
	}
}

func hairHealthScore(r HairFallResponses) int {
	score := 100
	if r.StressLevel >= 7 {
		score -= 15
	}
	if in(r.AnxietyFrequency, "often", "constantly") {
		score -= 10
	}
	if in(r.SleepQuality, "poor", "terrible") {
		score -= 10
	}
	if in(r.DietQuality, "poor", "terrible") {
		score -= 15
	}
	if r.ExerciseFrequency == "rarely" {
		score -= 5
	}
	if len(r.HormonalIssues) > 0 {
		score -= 10
	}
	if r.ScalpCondition != "healthy" {
		score -= 10
	}
	if in(r.HairCareRoutine, "daily", "multiple_daily") {
		score -= 10
	}
	if score < 0 {
		return 0
	}
	return score
}

// SaveAssessment stores raw questionnaire responses. Known test types are
// analysed and the analysis is stored next to the responses.
func (s Service) SaveAssessment(
	ctx context.Context,
	userID int,
	testType string,
	responses json.RawMessage,
) (AssessmentResult, error) {
	if testType == "" {
		testType = TestHairFall
	}
	if len(responses) == 0 || !json.Valid(responses) {
		return AssessmentResult{}, invalid("responses", "must be a JSON object")
	}

	a := models.Assessment{UserID: userID, TestType: testType, Responses: responses}
	var analysis *HairFallAnalysis
	if testType == TestHairFall {
		var r HairFallResponses
		if err := json.Unmarshal(responses, &r); err != nil {
			return AssessmentResult{}, invalid("responses", "do not match the hair fall questionnaire")
		}
		if r.StressLevel < 1 || r.StressLevel > 10 {
			return AssessmentResult{}, invalid("responses.stress_level", "must be between 1 and 10")
		}
		res := AnalyzeHairFall(r)
		analysis = &res
		raw, err := json.Marshal(res)
		if err != nil {
			return AssessmentResult{}, err
		}
		a.Analysis = raw
	}

	saved, err := s.repo.SaveAssessment(ctx, a)
	if err != nil {
		return AssessmentResult{}, fmt.Errorf("save assessment: %w", err)
	}
	return AssessmentResult{Assessment: saved, Analysis: analysis}, nil
}

func (s Service) ListAssessments(ctx context.Context, userID int) ([]models.Assessment, error) {
	return s.repo.ListAssessments(ctx, userID)
}

func in(v string, options ...string) bool {
	return contains(options, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
