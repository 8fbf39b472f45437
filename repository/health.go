package repository

import (
	"context"

	"hackhub/models"

	"github.com/lib/pq"
)

const healthProfileColumns = "id, user_id, email, COALESCE(to_char(date_of_birth, 'YYYY-MM-DD'), ''), " +
	"gender, height_cm, weight_kg, activity_level, health_goals, medical_conditions, medications, " +
	"allergies, dietary_preferences, sleep_pattern, stress_level, test1_completed, test2_completed, " +
	"created_at, updated_at"

func scanHealthProfile(row scanner) (models.HealthProfile, error) {
	var p models.HealthProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Email,
		&p.DateOfBirth,
		&p.Gender,
		&p.HeightCM,
		&p.WeightKG,
		&p.ActivityLevel,
		pq.Array(&p.HealthGoals),
		pq.Array(&p.MedicalConditions),
		pq.Array(&p.Medications),
		pq.Array(&p.Allergies),
		pq.Array(&p.DietaryPreferences),
		&p.SleepPattern,
		&p.StressLevel,
		&p.Test1Completed,
		&p.Test2Completed,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r PostgresRepository) GetHealthProfile(
	ctx context.Context,
	userID int,
) (models.HealthProfile, error) {
	return scanHealthProfile(r.db.QueryRowContext(
		ctx,
		"SELECT "+healthProfileColumns+" FROM health_profiles WHERE user_id=$1",
		userID,
	))
}

func (r PostgresRepository) UpsertHealthProfile(
	ctx context.Context,
	p models.HealthProfile,
) (models.HealthProfile, error) {
	return scanHealthProfile(r.db.QueryRowContext(
		ctx,
		`INSERT INTO health_profiles (
			user_id, email, date_of_birth, gender, height_cm, weight_kg, activity_level,
			health_goals, medical_conditions, medications, allergies, dietary_preferences,
			sleep_pattern, stress_level, test1_completed, test2_completed
		 ) VALUES ($1, $2, NULLIF($3, '')::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			date_of_birth = EXCLUDED.date_of_birth,
			gender = EXCLUDED.gender,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			activity_level = EXCLUDED.activity_level,
			health_goals = EXCLUDED.health_goals,
			medical_conditions = EXCLUDED.medical_conditions,
			medications = EXCLUDED.medications,
			allergies = EXCLUDED.allergies,
			dietary_preferences = EXCLUDED.dietary_preferences,
			sleep_pattern = EXCLUDED.sleep_pattern,
			stress_level = EXCLUDED.stress_level,
			test1_completed = EXCLUDED.test1_completed,
			test2_completed = EXCLUDED.test2_completed,
			updated_at = now()
		 RETURNING `+healthProfileColumns,
		p.UserID,
		p.Email,
		p.DateOfBirth,
		p.Gender,
		p.HeightCM,
		p.WeightKG,
		p.ActivityLevel,
		textArray(p.HealthGoals),
		textArray(p.MedicalConditions),
		textArray(p.Medications),
		textArray(p.Allergies),
		textArray(p.DietaryPreferences),
		p.SleepPattern,
		p.StressLevel,
		p.Test1Completed,
		p.Test2Completed,
	))
}

func (r PostgresRepository) SaveAssessment(
	ctx context.Context,
	a models.Assessment,
) (models.Assessment, error) {
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO assessments (user_id, test_type, responses, analysis)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		a.UserID, a.TestType, string(a.Responses), nullableJSON(a.Analysis),
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return models.Assessment{}, err
	}
	return a, nil
}

func (r PostgresRepository) ListAssessments(
	ctx context.Context,
	userID int,
) ([]models.Assessment, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, test_type, responses, analysis, created_at
		 FROM assessments WHERE user_id=$1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Assessment{}
	for rows.Next() {
		var (
			a                   models.Assessment
			responses, analysis []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.TestType, &responses, &analysis, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Responses = responses
		a.Analysis = analysis
		list = append(list, a)
	}
	return list, rows.Err()
}
