package handlers

import (
	"net/http"
	"time"

	"hackhub/middleware"
	"hackhub/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AllowedOrigins []string
	// Limiter is optional; without it requests are not rate limited.
	Limiter     middleware.Limiter
	RateLimit   int
	Idempotency *middleware.IdempotencyStore
	// TrustedProxies decide whose X-Forwarded-For is used for rate limiting.
	TrustedProxies middleware.TrustedProxies
}

// NewRouter builds the full HTTP surface of the API.
func NewRouter(h Handler, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "BAD_REQUEST", "method not allowed")
	})

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondWithData(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	if cfg.Limiter != nil {
		api.Use(mux.MiddlewareFunc(middleware.RateLimit(cfg.Limiter, middleware.RateLimitConfig{
			Limit:          cfg.RateLimit,
			Window:         time.Minute,
			TrustedProxies: cfg.TrustedProxies,
		}, h.logger)))
	}

	idem := func(next http.HandlerFunc) http.HandlerFunc {
		if cfg.Idempotency == nil {
			return next
		}
		return middleware.Idempotency(cfg.Idempotency, Caller)(next).ServeHTTP
	}
	auth := h.JWTMiddleware
	college := func(next http.HandlerFunc) http.HandlerFunc { return h.RequireRole(models.RoleCollegeAdmin, next) }
	club := func(next http.HandlerFunc) http.HandlerFunc { return h.RequireRole(models.RoleClubAdmin, next) }

	// auth
	api.HandleFunc("/auth/register", h.RegisterHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.LoginHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", auth(h.MeHandler)).Methods(http.MethodGet)
	api.HandleFunc("/auth/college/register", h.CollegeRegisterHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/college/login", h.CollegeLoginHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/club/register", h.ClubRegisterHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/club/login", h.ClubLoginHandler).Methods(http.MethodPost)

	// profile and health
	api.HandleFunc("/profile", auth(h.ProfileHandler)).Methods(http.MethodGet)
	api.HandleFunc("/profile", auth(h.UpdateProfileHandler)).Methods(http.MethodPut)
	api.HandleFunc("/dashboard", auth(h.DashboardHandler)).Methods(http.MethodGet)
	api.HandleFunc("/health/profile", auth(h.HealthProfileHandler)).Methods(http.MethodGet)
	api.HandleFunc("/health/profile", auth(h.SaveHealthProfileHandler)).Methods(http.MethodPut)
	api.HandleFunc("/test3/save", auth(h.SaveAssessmentHandler)).Methods(http.MethodPost)
	api.HandleFunc("/assessments", auth(h.ListAssessmentsHandler)).Methods(http.MethodGet)

	// market
	api.HandleFunc("/nfts", h.ListNFTsHandler).Methods(http.MethodGet)
	api.HandleFunc("/nfts/{id}", h.GetNFTHandler).Methods(http.MethodGet)
	api.HandleFunc("/collections", h.ListCollectionsHandler).Methods(http.MethodGet)
	api.HandleFunc("/collections/{slug}", h.GetCollectionHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart", auth(h.CartHandler)).Methods(http.MethodGet)
	api.HandleFunc("/cart", auth(h.AddToCartHandler)).Methods(http.MethodPost)
	api.HandleFunc("/cart", auth(h.ClearCartHandler)).Methods(http.MethodDelete)
	api.HandleFunc("/cart/{nftId}", auth(h.RemoveFromCartHandler)).Methods(http.MethodDelete)
	api.HandleFunc("/checkout", auth(idem(h.CheckoutHandler))).Methods(http.MethodPost)
	api.HandleFunc("/orders", auth(h.ListOrdersHandler)).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", auth(h.GetOrderHandler)).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/complete", auth(idem(h.CompleteOrderHandler))).Methods(http.MethodPost)
	api.HandleFunc("/transactions", auth(h.ListTransactionsHandler)).Methods(http.MethodGet)
	api.HandleFunc("/rewards", auth(h.RewardsHandler)).Methods(http.MethodGet)

	// hostels and maps
	api.HandleFunc("/hostels", h.ListHostelsHandler).Methods(http.MethodGet)
	api.HandleFunc("/hostels", auth(h.CreateHostelHandler)).Methods(http.MethodPost)
	api.HandleFunc("/hostels/{id}", h.GetHostelHandler).Methods(http.MethodGet)
	api.HandleFunc("/config/mapbox-token", h.MapboxTokenHandler).Methods(http.MethodGet)
	api.HandleFunc("/geocode/reverse", h.ReverseGeocodeHandler).Methods(http.MethodGet)

	// clubs
	api.HandleFunc("/colleges", h.ListCollegesHandler).Methods(http.MethodGet)
	api.HandleFunc("/clubs", h.ListClubsHandler).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id}", h.GetClubHandler).Methods(http.MethodGet)
	api.HandleFunc("/admin/college/clubs", college(h.CollegeClubsHandler)).Methods(http.MethodGet)
	api.HandleFunc("/admin/college/clubs/{id}", college(h.ReviewClubHandler)).Methods(http.MethodPut)
	api.HandleFunc("/admin/college/stats", college(h.CollegeStatsHandler)).Methods(http.MethodGet)
	api.HandleFunc("/admin/club", club(h.UpdateClubHandler)).Methods(http.MethodPut)
	api.HandleFunc("/admin/club/announcements", club(h.CreateAnnouncementHandler)).Methods(http.MethodPost)
	api.HandleFunc("/admin/club/registrations", club(h.CreateRegistrationHandler)).Methods(http.MethodPost)
	api.HandleFunc("/admin/club/stats", club(h.ClubStatsHandler)).Methods(http.MethodGet)

	// telemedicine
	api.HandleFunc("/doctors", h.ListDoctorsHandler).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/slots", h.FreeSlotsHandler).Methods(http.MethodGet)
	api.HandleFunc("/appointments", auth(h.ListAppointmentsHandler)).Methods(http.MethodGet)
	api.HandleFunc("/appointments", auth(idem(h.BookAppointmentHandler))).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/cancel", auth(h.CancelAppointmentHandler)).Methods(http.MethodPost)

	return middleware.Chain(r,
		middleware.RequestID,
		middleware.Logger(h.logger),
		middleware.Recover(h.logger),
		middleware.CORS(cfg.AllowedOrigins),
	)
}
