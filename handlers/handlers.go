package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"hackhub/middleware"
	"hackhub/models"
	"hackhub/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

func NewHandler(svc service.Service, logger *zap.Logger) Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Handler{
		svc:    svc,
		logger: logger,
	}
}

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Field   string      `json:"field,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ctxKey string

const claimsKey ctxKey = "claims"

// JWTMiddleware requires a valid bearer token and stores its claims in the
// request context.
func (h Handler) JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization token")
			return
		}
		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenStr == "" {
			respondWithError(w, http.StatusUnauthorized, "UNAUTHORIZED", "malformed authorization header")
			return
		}

		claims, err := h.svc.ParseToken(tokenStr)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// RequireRole is JWTMiddleware plus a role check.
func (h Handler) RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return h.JWTMiddleware(func(w http.ResponseWriter, r *http.Request) {
		c, _ := claimsFrom(r.Context())
		if c.Role != role {
			respondWithError(w, http.StatusForbidden, "FORBIDDEN", "requires role "+role)
			return
		}
		next(w, r)
	})
}

func claimsFrom(ctx context.Context) (service.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(service.Claims)
	return c, ok
}

// userClaims returns the caller of a JWTMiddleware protected route. Admin
// tokens are not accepted on user routes.
func userClaims(w http.ResponseWriter, r *http.Request) (service.Claims, bool) {
	c, ok := claimsFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "UNAUTHORIZED", "user not found in context")
		return service.Claims{}, false
	}
	if c.Role != models.RoleUser {
		respondWithError(w, http.StatusForbidden, "FORBIDDEN", "requires a user account")
		return service.Claims{}, false
	}
	return c, true
}

// Caller identifies the authenticated principal for idempotency keys.
func Caller(r *http.Request) string {
	c, ok := claimsFrom(r.Context())
	if !ok {
		return ""
	}
	return c.Role + ":" + strconv.Itoa(c.UserID)
}

// fail maps a service error to its status and code. Unknown errors are
// logged and hidden behind INTERNAL.
func (h Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
	}
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		respondWithJSON(w, status, envelope{Error: ve.Message, Code: code, Field: ve.Field})
		return
	}
	respondWithError(w, status, code, msg)
}

func mapError(err error) (int, string, string) {
	if service.IsValidation(err) {
		return http.StatusBadRequest, "VALIDATION_FAILED", err.Error()
	}
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "UNAUTHORIZED", err.Error()
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrClubRejected):
		return http.StatusForbidden, "FORBIDDEN", err.Error()
	case errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound, "PROFILE_NOT_FOUND", err.Error()
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNFTNotFound),
		errors.Is(err, service.ErrCollectionNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrHostelNotFound),
		errors.Is(err, service.ErrCollegeNotFound),
		errors.Is(err, service.ErrClubNotFound),
		errors.Is(err, service.ErrDoctorNotFound),
		errors.Is(err, service.ErrAppointmentNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrClubNameTaken),
		errors.Is(err, service.ErrNFTUnavailable),
		errors.Is(err, service.ErrPriceChanged),
		errors.Is(err, service.ErrOrderNotPending),
		errors.Is(err, service.ErrSlotTaken),
		errors.Is(err, service.ErrAppointmentNotCancellable):
		return http.StatusConflict, "CONFLICT", err.Error()
	case errors.Is(err, service.ErrCartEmpty),
		errors.Is(err, service.ErrMixedChains):
		return http.StatusBadRequest, "VALIDATION_FAILED", err.Error()
	case errors.Is(err, service.ErrPricingUnavailable),
		errors.Is(err, service.ErrGeocoderUnavailable):
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "upstream service unavailable"
	case errors.Is(err, service.ErrMapboxNotConfigured):
		return http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal server error"
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return false
	}
	return true
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || n <= 0 {
		respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return n, true
}

// query reads optional typed query parameters, keeping the first parse error.
type query struct {
	r   *http.Request
	err error
}

func (q *query) get(name string) string {
	return strings.TrimSpace(q.r.URL.Query().Get(name))
}

func (q *query) integer(name string) int {
	v := q.get(name)
	if v == "" || q.err != nil {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.err = fmt.Errorf("%s must be an integer", name)
	}
	return n
}

func (q *query) number(name string) *float64 {
	v := q.get(name)
	if v == "" || q.err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		q.err = fmt.Errorf("%s must be a number", name)
		return nil
	}
	return &f
}

func (q *query) flag(name string) bool {
	v := q.get(name)
	if v == "" || q.err != nil {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.err = fmt.Errorf("%s must be true or false", name)
	}
	return b
}

func respondWithError(w http.ResponseWriter, status int, code, message string) {
	respondWithJSON(w, status, envelope{Error: message, Code: code})
}

func respondWithData(w http.ResponseWriter, status int, data interface{}) {
	respondWithJSON(w, status, envelope{Success: true, Data: data})
}

func respondWithJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
