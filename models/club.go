package models

import (
	"encoding/json"
	"time"
)

const (
	ClubPending  = "pending"
	ClubApproved = "approved"
	ClubRejected = "rejected"
)

type College struct {
	ID              int       `json:"id"`
	Code            string    `json:"college_id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	OfficialWebsite string    `json:"official_website"`
	OfficialEmail   string    `json:"official_email"`
	Status          string    `json:"status"`
	Views           int       `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
}

type CollegeAdmin struct {
	ID           int
	CollegeID    int
	Email        string
	PasswordHash string
}

type Club struct {
	ID            int             `json:"id"`
	CollegeID     int             `json:"college_id"`
	CollegeName   string          `json:"college_name"`
	CollegeCode   string          `json:"college_code,omitempty"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Email         string          `json:"email"`
	Description   string          `json:"description"`
	About         string          `json:"about,omitempty"`
	ContactInfo   json.RawMessage `json:"contact_info,omitempty"`
	Status        string          `json:"status"`
	CategoryID    int             `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	CategorySlug  string          `json:"category_slug"`
	CategoryColor string          `json:"category_color"`
	Views         int             `json:"views"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ClubAdmin struct {
	ID           int
	ClubID       int
	ClubName     string
	ClubStatus   string
	Name         string
	Email        string
	PasswordHash string
}

type ClubFilter struct {
	CollegeID   int
	CollegeCode string
	CategoryID  int
	Search      string
}

type Announcement struct {
	ID        int       `json:"id"`
	ClubID    int       `json:"club_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

type Registration struct {
	ID               int        `json:"id"`
	ClubID           int        `json:"club_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	RegistrationLink string     `json:"registration_link"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}

type ClubDetail struct {
	Club
	Announcements []Announcement `json:"announcements"`
	Registrations []Registration `json:"registrations"`
}

type ClubStats struct {
	Views             int `json:"views"`
	RecentViews       int `json:"recent_views"`
	Announcements     int `json:"announcements"`
	Registrations     int `json:"registrations"`
	OpenRegistrations int `json:"open_registrations"`
}

type CollegeStats struct {
	TotalClubs    int `json:"total_clubs"`
	PendingClubs  int `json:"pending_clubs"`
	ApprovedClubs int `json:"approved_clubs"`
	RejectedClubs int `json:"rejected_clubs"`
	TotalViews    int `json:"total_views"`
}
