package repository

import (
	"context"

	"hackhub/models"

	"github.com/lib/pq"
)

const hostelColumns = "id, owner_id, name, street, city, state, pincode, lng, lat, " +
	"price_min, price_max, rating, gender, photos, amenities, created_at"

func scanHostel(row scanner) (models.Hostel, error) {
	var (
		h        models.Hostel
		lng, lat float64
	)
	err := row.Scan(
		&h.ID,
		&h.OwnerID,
		&h.Name,
		&h.Address.Street,
		&h.Address.City,
		&h.Address.State,
		&h.Address.Pincode,
		&lng,
		&lat,
		&h.PriceRange.Min,
		&h.PriceRange.Max,
		&h.Rating,
		&h.Gender,
		pq.Array(&h.Photos),
		pq.Array(&h.Amenities),
		&h.CreatedAt,
	)
	h.Location = models.Location{Type: "Point", Coordinates: [2]float64{lng, lat}}
	return h, err
}

func (r PostgresRepository) CreateHostel(
	ctx context.Context,
	h models.Hostel,
) (models.Hostel, error) {
	return scanHostel(r.db.QueryRowContext(
		ctx,
		`INSERT INTO hostels (owner_id, name, street, city, state, pincode, lng, lat,
			price_min, price_max, rating, gender, photos, amenities)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+hostelColumns,
		h.OwnerID,
		h.Name,
		h.Address.Street,
		h.Address.City,
		h.Address.State,
		h.Address.Pincode,
		h.Location.Lng(),
		h.Location.Lat(),
		h.PriceRange.Min,
		h.PriceRange.Max,
		h.Rating,
		h.Gender,
		textArray(h.Photos),
		textArray(h.Amenities),
	))
}

func (r PostgresRepository) GetHostel(
	ctx context.Context,
	id int,
) (models.Hostel, error) {
	return scanHostel(r.db.QueryRowContext(
		ctx,
		"SELECT "+hostelColumns+" FROM hostels WHERE id=$1",
		id,
	))
}

// ListHostels applies the bounding box and price/gender filters. Price
// filters match hostels whose range overlaps the requested one.
func (r PostgresRepository) ListHostels(
	ctx context.Context,
	filter models.HostelFilter,
) ([]models.Hostel, error) {
	var c conditions
	if filter.HasBounds {
		c.add("lat >= ?", filter.MinLat)
		c.add("lat <= ?", filter.MaxLat)
		if filter.MinLng > filter.MaxLng {
			// The box crosses the antimeridian.
			c.clauses = append(c.clauses, "(lng >= "+c.bind(filter.MinLng)+" OR lng <= "+c.bind(filter.MaxLng)+")")
		} else {
			c.add("lng >= ?", filter.MinLng)
			c.add("lng <= ?", filter.MaxLng)
		}
	}
	if filter.MinPrice > 0 {
		c.add("price_max >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		c.add("price_min <= ?", filter.MaxPrice)
	}
	if filter.Gender != "" {
		c.add("gender = ?", filter.Gender)
	}
	query := "SELECT " + hostelColumns + " FROM hostels" + c.where() + " ORDER BY rating DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT " + c.bind(filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hostels := []models.Hostel{}
	for rows.Next() {
		h, err := scanHostel(rows)
		if err != nil {
			return nil, err
		}
		hostels = append(hostels, h)
	}
	return hostels, rows.Err()
}
