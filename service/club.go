package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"hackhub/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	collegeCodeAttempts = 10
	clubDetailListLimit = 10
)

var (
	collegeCodePattern = regexp.MustCompile(`(?i)^CLG-\d{6}$`)
	slugStrip          = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators     = regexp.MustCompile(`[\s_-]+`)
)

type CollegeRegistration struct {
	Name            string `json:"name"`
	Location        string `json:"location"`
	City            string `json:"city"`
	State           string `json:"state"`
	OfficialWebsite string `json:"officialWebsite"`
	OfficialEmail   string `json:"officialEmail"`
	AdminEmail      string `json:"adminEmail"`
	AdminPassword   string `json:"adminPassword"`
}

type ClubRegistration struct {
	Name          string `json:"name"`
	College       string `json:"collegeId"`
	Email         string `json:"email"`
	CategoryID    int    `json:"categoryId"`
	AdminName     string `json:"adminName"`
	AdminEmail    string `json:"adminEmail"`
	AdminPassword string `json:"adminPassword"`
	Description   string `json:"description"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ContactInfo struct {
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
}

type ClubUpdate struct {
	About       *string      `json:"about"`
	ContactInfo *ContactInfo `json:"contactInfo"`
}

type AnnouncementInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

type RegistrationInput struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	RegistrationLink string     `json:"registrationLink"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Status           string     `json:"status"`
}

// Slugify lowercases text, drops punctuation and joins words with dashes.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

var newCollegeCode = func() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CLG-%d", 100000+n.Int64()), nil
}

func (s Service) RegisterCollege(ctx context.Context, in CollegeRegistration) (models.College, error) {
	in.OfficialEmail = normalizeEmail(in.OfficialEmail)
	in.AdminEmail = normalizeEmail(in.AdminEmail)
	if err := firstError(
		validLength("name", in.Name, 3, 255),
		validLength("location", in.Location, 3, 255),
		validEmail("officialEmail", in.OfficialEmail),
		validEmail("adminEmail", in.AdminEmail),
		validPassword("adminPassword", in.AdminPassword),
	); err != nil {
		return models.College{}, err
	}
	if in.City != "" {
		if err := validLength("city", in.City, 2, 100); err != nil {
			return models.College{}, err
		}
	}
	if in.State != "" {
		if err := validLength("state", in.State, 2, 100); err != nil {
			return models.College{}, err
		}
	}
	if in.OfficialWebsite != "" {
		if err := validURL("officialWebsite", in.OfficialWebsite); err != nil {
			return models.College{}, err
		}
	}

	code, err := s.allocateCollegeCode(ctx)
	if err != nil {
		return models.College{}, err
	}
	hashed, err := bcryptHash(in.AdminPassword)
	if err != nil {
		return models.College{}, err
	}

	college, err := s.repo.CreateCollege(ctx, models.College{
		Code:            code,
		Name:            strings.TrimSpace(in.Name),
		Location:        strings.TrimSpace(in.Location),
		City:            in.City,
		State:           in.State,
		OfficialWebsite: in.OfficialWebsite,
		OfficialEmail:   in.OfficialEmail,
		Status:          "active",
	}, models.CollegeAdmin{Email: in.AdminEmail, PasswordHash: hashed})
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return models.College{}, ErrEmailTaken
		}
		return models.College{}, fmt.Errorf("create college: %w", err)
	}
	s.logger.Info("college registered", zap.Int("college_id", college.ID), zap.String("code", code))
	return college, nil
}

func (s Service) allocateCollegeCode(ctx context.Context) (string, error) {
	for i := 0; i < collegeCodeAttempts; i++ {
		code, err := newCollegeCode()
		if err != nil {
			return "", err
		}
		exists, err := s.repo.CollegeCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check college code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCollegeCode
}

// RegisterClub files a pending club under the college named by code
// (CLG-NNNNNN) or by a fragment of its name.
func (s Service) RegisterClub(ctx context.Context, in ClubRegistration) (int, error) {
	in.Email = normalizeEmail(in.Email)
	in.AdminEmail = normalizeEmail(in.AdminEmail)
	if err := firstError(
		validLength("name", in.Name, 3, 255),
		validLength("collegeId", in.College, 1, 255),
		validEmail("email", in.Email),
		validLength("adminName", in.AdminName, 2, 255),
		validEmail("adminEmail", in.AdminEmail),
		validPassword("adminPassword", in.AdminPassword),
		validLength("description", in.Description, 50, 2000),
	); err != nil {
		return 0, err
	}
	if in.CategoryID <= 0 {
		return 0, invalid("categoryId", "is required")
	}

	taken, err := s.repo.ClubAdminEmailExists(ctx, in.AdminEmail)
	if err != nil {
		return 0, fmt.Errorf("check admin email: %w", err)
	}
	if taken {
		return 0, ErrEmailTaken
	}

	college, err := s.resolveCollege(ctx, in.College)
	if err != nil {
		return 0, err
	}

	slug := Slugify(in.Name)
	if slug == "" {
		return 0, invalid("name", "must contain letters or digits")
	}
	exists, err := s.repo.ClubSlugExists(ctx, college.ID, slug)
	if err != nil {
		return 0, fmt.Errorf("check club slug: %w", err)
	}
	if exists {
		return 0, ErrClubNameTaken
	}

	hashed, err := bcryptHash(in.AdminPassword)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.CreateClub(ctx, models.Club{
		CollegeID:   college.ID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Email:       in.Email,
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		Status:      models.ClubPending,
	}, models.ClubAdmin{
		Name:         strings.TrimSpace(in.AdminName),
		Email:        in.AdminEmail,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return 0, ErrClubNameTaken
		}
		return 0, fmt.Errorf("create club: %w", err)
	}
	return id, nil
}

func (s Service) resolveCollege(ctx context.Context, ref string) (models.College, error) {
	var (
		c   models.College
		err error
	)
	if collegeCodePattern.MatchString(ref) {
		c, err = s.repo.FindCollegeByCode(ctx, strings.ToUpper(ref))
	} else {
		c, err = s.repo.FindCollegeByName(ctx, strings.TrimSpace(ref))
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.College{}, ErrCollegeNotFound
	}
	return c, err
}

func (s Service) ListColleges(ctx context.Context, search string) ([]models.College, error) {
	return s.repo.ListColleges(ctx, strings.TrimSpace(search))
}

// ListClubs returns approved clubs ordered by name. A college may be given by
// id or by CLG-NNNNNN code.
func (s Service) ListClubs(ctx context.Context, filter models.ClubFilter) ([]models.Club, error) {
	if collegeCodePattern.MatchString(filter.CollegeCode) {
		filter.CollegeCode = strings.ToUpper(filter.CollegeCode)
	} else if filter.CollegeCode != "" {
		return nil, invalid("collegeId", "must be a college id or a CLG-NNNNNN code")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.ListClubs(ctx, filter)
}

// GetClub returns an approved club with its latest announcements and
// registrations, and records the view.
func (s Service) GetClub(ctx context.Context, id int) (models.ClubDetail, error) {
	club, err := s.repo.GetApprovedClub(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClubDetail{}, ErrClubNotFound
	}
	if err != nil {
		return models.ClubDetail{}, err
	}

	detail := models.ClubDetail{Club: club}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.repo.ListAnnouncements(gctx, id, clubDetailListLimit)
		detail.Announcements = a
		return err
	})
	g.Go(func() error {
		r, err := s.repo.ListRegistrations(gctx, id, clubDetailListLimit)
		detail.Registrations = r
		return err
	})
	if err := g.Wait(); err != nil {
		return models.ClubDetail{}, fmt.Errorf("load club detail: %w", err)
	}
	if detail.Announcements == nil {
		detail.Announcements = []models.Announcement{}
	}
	if detail.Registrations == nil {
		detail.Registrations = []models.Registration{}
	}

	s.recordView(ctx, "club", id)
	return detail, nil
}

// ReviewClub approves or rejects a club of the admin's college.
func (s Service) ReviewClub(ctx context.Context, collegeID, clubID int, action string) (string, error) {
	var status string
	switch action {
	case "approve":
		status = models.ClubApproved
	case "reject":
		status = models.ClubRejected
	default:
		return "", invalid("action", "must be approve or reject")
	}
	if clubID <= 0 {
		return "", invalid("clubId", "is required")
	}

	err := s.repo.SetClubStatus(ctx, clubID, collegeID, status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrClubNotFound
	}
	if err != nil {
		return "", fmt.Errorf("set club status: %w", err)
	}
	s.TrackEvent(ctx, "club", clubID, "status_"+status, map[string]interface{}{"college_id": collegeID})
	return status, nil
}

func (s Service) CollegeClubs(ctx context.Context, collegeID int) ([]models.Club, error) {
	return s.repo.ListCollegeClubs(ctx, collegeID)
}

func (s Service) CreateAnnouncement(ctx context.Context, clubID int, in AnnouncementInput) (models.Announcement, error) {
	if err := firstError(
		validLength("title", in.Title, 5, 255),
		validLength("content", in.Content, 20, 0),
	); err != nil {
		return models.Announcement{}, err
	}
	published := true
	if in.Published != nil {
		published = *in.Published
	}
	return s.repo.CreateAnnouncement(ctx, models.Announcement{
		ClubID:    clubID,
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Published: published,
	})
}

func (s Service) CreateRegistration(ctx context.Context, clubID int, in RegistrationInput) (models.Registration, error) {
	if in.Status == "" {
		in.Status = "open"
	}
	if err := firstError(
		validLength("title", in.Title, 5, 255),
		validLength("description", in.Description, 0, 1000),
		oneOf("status", in.Status, "open", "closed", "upcoming"),
	); err != nil {
		return models.Registration{}, err
	}
	if in.RegistrationLink != "" {
		if err := validURL("registrationLink", in.RegistrationLink); err != nil {
			return models.Registration{}, err
		}
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return models.Registration{}, invalid("endDate", "must not be before startDate")
	}
	return s.repo.CreateRegistration(ctx, models.Registration{
		ClubID:           clubID,
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		RegistrationLink: in.RegistrationLink,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Status:           in.Status,
	})
}

func (s Service) UpdateClub(ctx context.Context, clubID int, in ClubUpdate) error {
	if in.About == nil && in.ContactInfo == nil {
		return invalid("about", "no fields to update")
	}
	if in.About != nil {
		if err := validLength("about", *in.About, 0, 5000); err != nil {
			return err
		}
	}

	var contact json.RawMessage
	if in.ContactInfo != nil {
		if in.ContactInfo.Email != "" {
			if err := validEmail("contactInfo.email", in.ContactInfo.Email); err != nil {
				return err
			}
		}
		for _, l := range in.ContactInfo.SocialLinks {
			if err := validURL("contactInfo.socialLinks.url", l.URL); err != nil {
				return err
			}
		}
		raw, err := json.Marshal(in.ContactInfo)
		if err != nil {
			return err
		}
		contact = raw
	}

	err := s.repo.UpdateClubProfile(ctx, clubID, in.About, contact)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrClubNotFound
	}
	return err
}
