package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hackhub/models"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Claims struct {
	UserID    int
	Email     string
	Role      string
	CollegeID int
	ClubID    int
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type AdminSession struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

type AdminInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CollegeID   int    `json:"college_id,omitempty"`
	CollegeName string `json:"college_name,omitempty"`
	ClubID      int    `json:"club_id,omitempty"`
	ClubName    string `json:"club_name,omitempty"`
	ClubStatus  string `json:"club_status,omitempty"`
}

func (s Service) Register(
	ctx context.Context,
	email, password, name string,
) (models.User, error) {
	email = normalizeEmail(email)
	if err := firstError(
		validEmail("email", email),
		validPassword("password", password),
		validLength("name", name, 2, 255),
	); err != nil {
		return models.User{}, err
	}

	hashed, err := bcryptHash(password)
	if err != nil {
		return models.User{}, err
	}
	user, err := s.repo.CreateUser(ctx, models.User{
		Email:    email,
		Name:     strings.TrimSpace(name),
		Password: hashed,
		Role:     models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s Service) Login(
	ctx context.Context,
	email, password string,
) (AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthResponse{}, ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}
	if !bcryptCompare(user.Password, password) {
		return AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.IssueToken(Claims{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Token: token, User: user}, nil
}

func (s Service) Me(ctx context.Context, userID int) (models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (s Service) CollegeLogin(
	ctx context.Context,
	email, password string,
) (AdminSession, error) {
	admin, err := s.repo.GetCollegeAdminByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminSession{}, ErrInvalidCredentials
		}
		return AdminSession{}, err
	}
	if !bcryptCompare(admin.PasswordHash, password) {
		return AdminSession{}, ErrInvalidCredentials
	}

	college, err := s.repo.GetCollege(ctx, admin.CollegeID)
	if err != nil {
		return AdminSession{}, fmt.Errorf("load college: %w", err)
	}

	token, err := s.IssueToken(Claims{
		UserID:    admin.ID,
		Email:     admin.Email,
		Role:      models.RoleCollegeAdmin,
		CollegeID: admin.CollegeID,
	})
	if err != nil {
		return AdminSession{}, err
	}
	return AdminSession{
		Token: token,
		Admin: AdminInfo{
			ID:          admin.ID,
			Email:       admin.Email,
			Role:        models.RoleCollegeAdmin,
			CollegeID:   college.ID,
			CollegeName: college.Name,
		},
	}, nil
}

func (s Service) ClubLogin(
	ctx context.Context,
	email, password string,
) (AdminSession, error) {
	admin, err := s.repo.GetClubAdminByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminSession{}, ErrInvalidCredentials
		}
		return AdminSession{}, err
	}
	if !bcryptCompare(admin.PasswordHash, password) {
		return AdminSession{}, ErrInvalidCredentials
	}
	if admin.ClubStatus == models.ClubRejected {
		return AdminSession{}, ErrClubRejected
	}

	if err := s.repo.TouchClubAdminLogin(ctx, admin.ID); err != nil {
		s.logger.Warn("update last login failed", zap.Int("admin_id", admin.ID), zap.Error(err))
	}

	token, err := s.IssueToken(Claims{
		UserID: admin.ID,
		Email:  admin.Email,
		Role:   models.RoleClubAdmin,
		ClubID: admin.ClubID,
	})
	if err != nil {
		return AdminSession{}, err
	}
	return AdminSession{
		Token: token,
		Admin: AdminInfo{
			ID:         admin.ID,
			Name:       admin.Name,
			Email:      admin.Email,
			Role:       models.RoleClubAdmin,
			ClubID:     admin.ClubID,
			ClubName:   admin.ClubName,
			ClubStatus: admin.ClubStatus,
		},
	}, nil
}

// IssueToken signs an HS256 token for c that expires after the configured TTL.
func (s Service) IssueToken(c Claims) (string, error) {
	claims := jwt.MapClaims{
		"user_id": c.UserID,
		"email":   c.Email,
		"role":    c.Role,
		"exp":     s.now().Add(s.tokenTTL).Unix(),
	}
	if c.CollegeID != 0 {
		claims["college_id"] = c.CollegeID
	}
	if c.ClubID != 0 {
		claims["club_id"] = c.ClubID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return tokenStr, nil
}

// ParseToken validates tokenStr and returns its claims.
func (s Service) ParseToken(tokenStr string) (Claims, error) {
	// Expiry is checked against the service clock below.
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidCredentials
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !mc.VerifyExpiresAt(s.now().Unix(), true) {
		return Claims{}, ErrInvalidCredentials
	}

	claims := Claims{
		UserID:    claimInt(mc["user_id"]),
		CollegeID: claimInt(mc["college_id"]),
		ClubID:    claimInt(mc["club_id"]),
	}
	claims.Email, _ = mc["email"].(string)
	claims.Role, _ = mc["role"].(string)
	if claims.UserID == 0 {
		return Claims{}, ErrInvalidCredentials
	}
	if claims.Role == "" {
		claims.Role = models.RoleUser
	}
	return claims, nil
}

func claimInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func bcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func bcryptCompare(hashed, password string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(password),
	)
	return err == nil
}
