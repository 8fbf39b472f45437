package repository

import (
	"context"
	"database/sql"

	"hackhub/models"
)

const (
	userColumns    = "id, email, name, password, role, created_at"
	profileColumns = "id, user_id, COALESCE(username, ''), display_name, bio, avatar_url, " +
		"wallet_address, user_type, total_volume, created_at, updated_at"
)

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)
	return u, err
}

func scanProfile(row scanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Username,
		&p.DisplayName,
		&p.Bio,
		&p.AvatarURL,
		&p.WalletAddress,
		&p.UserType,
		&p.TotalVolume,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// CreateUser inserts the account together with its marketplace profile and
// reward bookkeeping row.
func (r PostgresRepository) CreateUser(
	ctx context.Context,
	user models.User,
) (models.User, error) {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(
			ctx,
			"INSERT INTO users (email, name, password, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
			user.Email, user.Name, user.Password, user.Role,
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return storageErr(err)
		}
		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO profiles (user_id, display_name) VALUES ($1, $2)",
			user.ID, user.Name,
		); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "INSERT INTO user_rewards (user_id) VALUES ($1)", user.ID)
		return err
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r PostgresRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (models.User, error) {
	return scanUser(r.db.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE email=$1",
		email,
	))
}

func (r PostgresRepository) GetUserByID(
	ctx context.Context,
	id int,
) (models.User, error) {
	return scanUser(r.db.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE id=$1",
		id,
	))
}

func (r PostgresRepository) GetProfile(
	ctx context.Context,
	userID int,
) (models.Profile, error) {
	return scanProfile(r.db.QueryRowContext(
		ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE user_id=$1",
		userID,
	))
}

// UpdateProfile applies the non-nil fields of upd.
func (r PostgresRepository) UpdateProfile(
	ctx context.Context,
	userID int,
	upd models.ProfileUpdate,
) (models.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(
		ctx,
		`UPDATE profiles SET
			username = COALESCE($2, username),
			display_name = COALESCE($3, display_name),
			bio = COALESCE($4, bio),
			avatar_url = COALESCE($5, avatar_url),
			wallet_address = COALESCE($6, wallet_address),
			user_type = COALESCE($7, user_type),
			updated_at = now()
		 WHERE user_id=$1
		 RETURNING `+profileColumns,
		userID, upd.Username, upd.DisplayName, upd.Bio, upd.AvatarURL, upd.WalletAddress, upd.UserType,
	))
	if err != nil {
		return models.Profile{}, storageErr(err)
	}
	return p, nil
}
