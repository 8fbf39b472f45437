package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"hackhub/models"
	"hackhub/service"
	"hackhub/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHairFall(t *testing.T) {
	tests := []struct {
		name      string
		responses service.HairFallResponses
		want      service.HairFallAnalysis
		wantRecs  []string
	}{
		{
			name: "stressed vata profile",
			responses: service.HairFallResponses{
				StressLevel:       9,
				AnxietyFrequency:  "constantly",
				SleepQuality:      "terrible",
				DietQuality:       "good",
				ExerciseFrequency: "daily",
				ScalpCondition:    "dry",
				HairCareRoutine:   "weekly",
			},
			// vata 30+25+20+15=90, kapha -10, total 80; -12.5 rounds up
			want: service.HairFallAnalysis{
				DoshaAnalysis:   service.DoshaScores{Vata: 113, Pitta: 0, Kapha: -12},
				DominantDosha:   "Vata",
				RiskLevel:       "High",
				HairHealthScore: 55,
			},
			wantRecs: []string{"Vata-Balancing Foods", "Stress Management"},
		},
		{
			name: "pitta and kapha mix",
			responses: service.HairFallResponses{
				StressLevel:       3,
				AnxietyFrequency:  "rarely",
				SleepQuality:      "good",
				DietQuality:       "poor",
				ExerciseFrequency: "rarely",
				HormonalIssues:    []string{"thyroid"},
				ScalpCondition:    "itchy",
				HairCareRoutine:   "multiple_daily",
			},
			// vata 15, pitta 10+25+20+15=70, kapha 5+20=25, total 110
			want: service.HairFallAnalysis{
				DoshaAnalysis:   service.DoshaScores{Vata: 14, Pitta: 64, Kapha: 23},
				DominantDosha:   "Pitta",
				RiskLevel:       "Medium",
				HairHealthScore: 50,
			},
			wantRecs: []string{"Pitta-Cooling Foods", "Gentle Hair Care"},
		},
		{
			name: "healthy answers",
			responses: service.HairFallResponses{
				StressLevel:       2,
				SleepQuality:      "good",
				DietQuality:       "good",
				ExerciseFrequency: "weekly",
				ScalpCondition:    "healthy",
			},
			want: service.HairFallAnalysis{
				DominantDosha:   "Kapha",
				RiskLevel:       "Low",
				HairHealthScore: 100,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.AnalyzeHairFall(tt.responses)

			var titles []string
			for _, r := range got.Recommendations {
				titles = append(titles, r.Title)
			}
			require.Empty(t, cmp.Diff(tt.wantRecs, titles, cmpopts.EquateEmpty()))

			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(service.HairFallAnalysis{}, "Recommendations")); diff != "" {
				t.Errorf("AnalyzeHairFall() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_SaveAssessment(t *testing.T) {
	responses := json.RawMessage(`{"stress_level":8,"anxiety_frequency":"often","scalp_condition":"oily"}`)

	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().SaveAssessment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.Assessment) (models.Assessment, error) {
				require.Equal(t, service.TestHairFall, a.TestType)
				require.JSONEq(t, string(responses), string(a.Responses))
				require.NotEmpty(t, a.Analysis)
				a.ID = 1
				return a, nil
			})
	})

	res, err := svc.SaveAssessment(context.Background(), 3, "", responses)
	require.NoError(t, err)
	require.Equal(t, 1, res.Assessment.ID)
	require.NotNil(t, res.Analysis)
	require.Equal(t, "Vata", res.Analysis.DominantDosha)
}

func TestService_SaveAssessmentOtherTestStoredRaw(t *testing.T) {
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().SaveAssessment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.Assessment) (models.Assessment, error) {
				require.Empty(t, a.Analysis)
				return a, nil
			})
	})

	res, err := svc.SaveAssessment(context.Background(), 3, "sleep_quiz", json.RawMessage(`{"q1":"a"}`))
	require.NoError(t, err)
	require.Nil(t, res.Analysis)
}

func TestService_SaveAssessmentRejectsBadInput(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.SaveAssessment(context.Background(), 3, "", json.RawMessage(`not json`))
	require.True(t, service.IsValidation(err))

	_, err = svc.SaveAssessment(context.Background(), 3, "", json.RawMessage(`{"stress_level":0}`))
	require.True(t, service.IsValidation(err))
}
