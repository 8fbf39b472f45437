package service

import (
	"context"
	"encoding/json"
	"time"

	"hackhub/models"
	"hackhub/pricing"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks hackhub/service Repository,Geocoder,PriceOracle,Cache

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetProfile(ctx context.Context, userID int) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int, upd models.ProfileUpdate) (models.Profile, error)
}

type MarketRepository interface {
	ListNFTs(ctx context.Context, filter models.NFTFilter) ([]models.NFT, error)
	GetNFT(ctx context.Context, id string) (models.NFT, error)
	CountOwnedNFTs(ctx context.Context, userID int) (int, error)
	ListCollections(ctx context.Context) ([]models.Collection, error)
	GetCollectionBySlug(ctx context.Context, slug string) (models.Collection, error)
	UpsertCartItem(ctx context.Context, userID int, nftID string) error
	DeleteCartItem(ctx context.Context, userID int, nftID string) error
	ListCartItems(ctx context.Context, userID int) ([]models.CartItem, error)
	ClearCart(ctx context.Context, userID int) error
	CountCompletedOrders(ctx context.Context, userID int) (int, error)
	PlaceOrder(ctx context.Context, params models.PlaceOrderParams) (models.Order, error)
	CompleteOrder(ctx context.Context, userID int, orderID string) (models.Order, error)
	ListOrders(ctx context.Context, userID int) ([]models.Order, error)
	GetOrder(ctx context.Context, userID int, orderID string) (models.Order, error)
	ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error)
	GetUserReward(ctx context.Context, userID int) (models.UserReward, error)
}

type HealthRepository interface {
	GetHealthProfile(ctx context.Context, userID int) (models.HealthProfile, error)
	UpsertHealthProfile(ctx context.Context, profile models.HealthProfile) (models.HealthProfile, error)
	SaveAssessment(ctx context.Context, a models.Assessment) (models.Assessment, error)
	ListAssessments(ctx context.Context, userID int) ([]models.Assessment, error)
}

type HostelRepository interface {
	CreateHostel(ctx context.Context, h models.Hostel) (models.Hostel, error)
	GetHostel(ctx context.Context, id int) (models.Hostel, error)
	ListHostels(ctx context.Context, filter models.HostelFilter) ([]models.Hostel, error)
}

type ClubRepository interface {
	CollegeCodeExists(ctx context.Context, code string) (bool, error)
	CreateCollege(ctx context.Context, college models.College, admin models.CollegeAdmin) (models.College, error)
	GetCollege(ctx context.Context, id int) (models.College, error)
	FindCollegeByCode(ctx context.Context, code string) (models.College, error)
	FindCollegeByName(ctx context.Context, name string) (models.College, error)
	ListColleges(ctx context.Context, search string) ([]models.College, error)
	GetCollegeAdminByEmail(ctx context.Context, email string) (models.CollegeAdmin, error)
	ClubAdminEmailExists(ctx context.Context, email string) (bool, error)
	ClubSlugExists(ctx context.Context, collegeID int, slug string) (bool, error)
	CreateClub(ctx context.Context, club models.Club, admin models.ClubAdmin) (int, error)
	GetClubAdminByEmail(ctx context.Context, email string) (models.ClubAdmin, error)
	TouchClubAdminLogin(ctx context.Context, adminID int) error
	ListClubs(ctx context.Context, filter models.ClubFilter) ([]models.Club, error)
	ListCollegeClubs(ctx context.Context, collegeID int) ([]models.Club, error)
	GetApprovedClub(ctx context.Context, id int) (models.Club, error)
	SetClubStatus(ctx context.Context, clubID, collegeID int, status string) error
	UpdateClubProfile(ctx context.Context, clubID int, about *string, contactInfo json.RawMessage) error
	ListAnnouncements(ctx context.Context, clubID, limit int) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error)
	ListRegistrations(ctx context.Context, clubID, limit int) ([]models.Registration, error)
	CreateRegistration(ctx context.Context, r models.Registration) (models.Registration, error)
	IncrementViews(ctx context.Context, entityType string, id int) error
	TrackEvent(ctx context.Context, entityType string, entityID int, eventType string, metadata map[string]interface{}) error
	ClubStats(ctx context.Context, clubID int, since time.Time) (models.ClubStats, error)
	CollegeStats(ctx context.Context, collegeID int) (models.CollegeStats, error)
}

type CareRepository interface {
	ListDoctors(ctx context.Context, specialty string) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id int) (models.Doctor, error)
	BookedSlots(ctx context.Context, doctorID int, date string) ([]string, error)
	CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error)
	ListAppointments(ctx context.Context, userID int) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, userID, id int) (models.Appointment, error)
}

type Repository interface {
	UserRepository
	MarketRepository
	HealthRepository
	HostelRepository
	ClubRepository
	CareRepository
}

type Geocoder interface {
	Reverse(ctx context.Context, lng, lat float64) (models.Address, error)
	Token() string
}

type PriceOracle interface {
	Rates(ctx context.Context, chains []string) (map[string]pricing.Rate, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, target interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type Service struct {
	repo      Repository
	jwtSecret string
	tokenTTL  time.Duration
	geocoder  Geocoder
	prices    PriceOracle
	cache     Cache
	logger    *zap.Logger
	now       func() time.Time
	priceTTL  time.Duration
}

type Option func(*Service)

func WithGeocoder(g Geocoder) Option       { return func(s *Service) { s.geocoder = g } }
func WithPriceOracle(p PriceOracle) Option { return func(s *Service) { s.prices = p } }
func WithCache(c Cache) Option             { return func(s *Service) { s.cache = c } }
func WithLogger(l *zap.Logger) Option      { return func(s *Service) { s.logger = l } }
func WithTokenTTL(d time.Duration) Option  { return func(s *Service) { s.tokenTTL = d } }
func WithPriceTTL(d time.Duration) Option  { return func(s *Service) { s.priceTTL = d } }
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, jwtSecret string, opts ...Option) Service {
	s := Service{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
		cache:     noopCache{},
		logger:    zap.NewNop(),
		now:       time.Now,
		priceTTL:  time.Minute,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, interface{}) error {
	return errCacheDisabled
}

func (noopCache) SetJSON(context.Context, string, interface{}, time.Duration) error {
	return nil
}
