package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"hackhub/models"

	"go.uber.org/zap"
)

const maxHostelResults = 200

type HostelQuery struct {
	Lat, Lng *float64
	RadiusKm float64
	Bounds   *BoundingBox
	MinPrice int
	MaxPrice int
	Gender   string
	Limit    int
}

type HostelResult struct {
	models.Hostel
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceLabel string   `json:"distance_label,omitempty"`
}

var hostelGenders = []string{"boys", "girls", "coed"}

// CreateHostel stores a listing. An empty address is filled from reverse
// geocoding; geocoder failures leave it empty.
func (s Service) CreateHostel(ctx context.Context, ownerID int, h models.Hostel) (models.Hostel, error) {
	h.Name = strings.TrimSpace(h.Name)
	if err := validLength("name", h.Name, 1, 255); err != nil {
		return models.Hostel{}, err
	}
	if err := validCoordinates(h.Location.Lng(), h.Location.Lat()); err != nil {
		return models.Hostel{}, err
	}
	if h.PriceRange.Min < 0 || h.PriceRange.Min > h.PriceRange.Max {
		return models.Hostel{}, invalid("price_range", "min must be non-negative and not above max")
	}
	if h.Rating < 0 || h.Rating > 5 {
		return models.Hostel{}, invalid("rating", "must be between 0 and 5")
	}
	if h.Gender == "" {
		h.Gender = "coed"
	}
	if err := oneOf("gender", h.Gender, hostelGenders...); err != nil {
		return models.Hostel{}, err
	}

	h.OwnerID = ownerID
	h.Location.Type = "Point"
	if h.Photos == nil {
		h.Photos = []string{}
	}
	if h.Amenities == nil {
		h.Amenities = []string{}
	}

	if h.Address.IsZero() {
		addr, err := s.ReverseGeocode(ctx, h.Location.Lng(), h.Location.Lat())
		if err != nil {
			s.logger.Warn("hostel address lookup failed",
				zap.Float64("lng", h.Location.Lng()),
				zap.Float64("lat", h.Location.Lat()),
				zap.Error(err),
			)
		} else {
			h.Address = addr
		}
	}

	created, err := s.repo.CreateHostel(ctx, h)
	if err != nil {
		return models.Hostel{}, fmt.Errorf("create hostel: %w", err)
	}
	return created, nil
}

func (s Service) GetHostel(ctx context.Context, id int) (models.Hostel, error) {
	h, err := s.repo.GetHostel(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Hostel{}, ErrHostelNotFound
	}
	return h, err
}

// ListHostels filters by a bounding box in SQL, then by exact distance when a
// center point is given. Results near a point are sorted nearest first.
func (s Service) ListHostels(ctx context.Context, q HostelQuery) ([]HostelResult, error) {
	if (q.Lat == nil) != (q.Lng == nil) {
		return nil, invalid("lat", "lat and lng must be given together")
	}
	if q.Gender != "" {
		if err := oneOf("gender", q.Gender, hostelGenders...); err != nil {
			return nil, err
		}
	}
	if q.MaxPrice > 0 && q.MinPrice > q.MaxPrice {
		return nil, invalid("min_price", "must not exceed max_price")
	}
	limit := q.Limit
	if limit <= 0 || limit > maxHostelResults {
		limit = maxHostelResults
	}

	filter := models.HostelFilter{
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Gender:   q.Gender,
	}
	radius := q.RadiusKm
	if q.Lat != nil {
		if err := validCoordinates(*q.Lng, *q.Lat); err != nil {
			return nil, err
		}
		if radius <= 0 {
			radius = DefaultSearchRadiusKm
		}
		if radius > MaxSearchRadiusKm {
			radius = MaxSearchRadiusKm
		}
		box := NewBoundingBox(*q.Lat, *q.Lng, radius)
		q.Bounds = &box
	} else {
		// Without a center the store applies the limit directly.
		filter.Limit = limit
	}
	if q.Bounds != nil {
		filter.HasBounds = true
		filter.MinLat, filter.MaxLat = q.Bounds.MinLat, q.Bounds.MaxLat
		filter.MinLng, filter.MaxLng = q.Bounds.MinLng, q.Bounds.MaxLng
	}

	hostels, err := s.repo.ListHostels(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list hostels: %w", err)
	}

	results := make([]HostelResult, 0, len(hostels))
	for _, h := range hostels {
		r := HostelResult{Hostel: h}
		if q.Lat != nil {
			d := HaversineDistance(*q.Lat, *q.Lng, h.Location.Lat(), h.Location.Lng())
			if d > radius {
				continue
			}
			d = math.Round(d*100) / 100
			r.DistanceKm = &d
			r.DistanceLabel = DistanceLabel(d)
		}
		results = append(results, r)
	}
	if q.Lat != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
