package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already taken")

	ErrNFTNotFound        = errors.New("nft not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrNFTUnavailable     = errors.New("nft is not available for purchase")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrPriceChanged       = errors.New("cart changed since it was priced, review it and retry")
	ErrMixedChains        = errors.New("cart contains nfts from more than one blockchain")
	ErrPricingUnavailable = errors.New("price feed unavailable")

	ErrHostelNotFound      = errors.New("hostel not found")
	ErrGeocoderUnavailable = errors.New("geocoding service unavailable")
	ErrMapboxNotConfigured = errors.New("mapbox token not configured")

	ErrCollegeNotFound = errors.New("college not found")
	ErrCollegeCode     = errors.New("could not allocate a unique college code")
	ErrClubNotFound    = errors.New("club not found")
	ErrClubNameTaken   = errors.New("a club with this name already exists in the college")
	ErrClubRejected    = errors.New("club registration was rejected")
	ErrForbidden       = errors.New("forbidden")

	ErrDoctorNotFound            = errors.New("doctor not found")
	ErrSlotTaken                 = errors.New("time slot already booked")
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrAppointmentNotCancellable = errors.New("appointment cannot be cancelled")

	errCacheDisabled = errors.New("cache disabled")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
