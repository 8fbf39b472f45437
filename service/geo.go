package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"hackhub/geocode"
	"hackhub/models"

	"go.uber.org/zap"
)

const (
	EarthRadiusKm         = 6371.0
	DefaultSearchRadiusKm = 10.0
	MaxSearchRadiusKm     = 100.0

	kmPerDegree = 111.0

	geocodeCacheTTL = 24 * time.Hour
)

// HaversineDistance returns the great-circle distance in kilometers.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// NewBoundingBox approximates a square around a point for SQL prefiltering.
// One degree of latitude is about 111 km. The longitude span is sized at the
// poleward edge so the box always contains the circle. A box that crosses
// the antimeridian has MinLng > MaxLng; one that reaches a pole spans every
// longitude.
func NewBoundingBox(lat, lng, radiusKm float64) BoundingBox {
	latDelta := radiusKm / kmPerDegree
	box := BoundingBox{
		MinLat: math.Max(lat-latDelta, -90),
		MaxLat: math.Min(lat+latDelta, 90),
		MinLng: -180,
		MaxLng: 180,
	}
	if box.MinLat == -90 || box.MaxLat == 90 {
		return box
	}

	edge := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	lngDelta := radiusKm / (kmPerDegree * math.Cos(edge*math.Pi/180))
	if lngDelta >= 180 {
		return box
	}
	box.MinLng = wrapLng(lng - lngDelta)
	box.MaxLng = wrapLng(lng + lngDelta)
	return box
}

func wrapLng(lng float64) float64 {
	switch {
	case lng < -180:
		return lng + 360
	case lng > 180:
		return lng - 360
	}
	return lng
}

// DistanceLabel renders "850m" below one kilometer and "2.3km" above.
func DistanceLabel(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}

func validCoordinates(lng, lat float64) error {
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return invalid("lng", "must be between -180 and 180")
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return invalid("lat", "must be between -90 and 90")
	}
	return nil
}

func (s Service) MapboxToken() (string, error) {
	if s.geocoder == nil || s.geocoder.Token() == "" {
		return "", ErrMapboxNotConfigured
	}
	return s.geocoder.Token(), nil
}

// ReverseGeocode resolves a coordinate to a postal address. Results are
// cached per coordinate rounded to five decimals.
func (s Service) ReverseGeocode(ctx context.Context, lng, lat float64) (models.Address, error) {
	if err := validCoordinates(lng, lat); err != nil {
		return models.Address{}, err
	}
	if s.geocoder == nil {
		return models.Address{}, ErrMapboxNotConfigured
	}

	key := fmt.Sprintf("geo:%.5f,%.5f", lng, lat)
	var addr models.Address
	if err := s.cache.GetJSON(ctx, key, &addr); err == nil {
		return addr, nil
	}

	addr, err := s.geocoder.Reverse(ctx, lng, lat)
	switch {
	case errors.Is(err, geocode.ErrNotConfigured):
		return models.Address{}, ErrMapboxNotConfigured
	case err != nil:
		return models.Address{}, fmt.Errorf("%w: %v", ErrGeocoderUnavailable, err)
	}

	if err := s.cache.SetJSON(ctx, key, addr, geocodeCacheTTL); err != nil {
		s.logger.Debug("cache address failed", zap.String("key", key), zap.Error(err))
	}
	return addr, nil
}
