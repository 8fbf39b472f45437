package models

import "time"

const (
	RoleUser         = "user"
	RoleCollegeAdmin = "college_admin"
	RoleClubAdmin    = "club_admin"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the marketplace-facing profile row, one per user.
type Profile struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Bio           string    `json:"bio"`
	AvatarURL     string    `json:"avatar_url"`
	WalletAddress string    `json:"wallet_address"`
	UserType      string    `json:"user_type"`
	TotalVolume   float64   `json:"total_volume"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProfileUpdate struct {
	Username      *string `json:"username"`
	DisplayName   *string `json:"display_name"`
	Bio           *string `json:"bio"`
	AvatarURL     *string `json:"avatar_url"`
	WalletAddress *string `json:"wallet_address"`
	UserType      *string `json:"user_type"`
}
