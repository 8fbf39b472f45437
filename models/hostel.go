package models

import "time"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// Location is a GeoJSON point; Coordinates are [lng, lat].
type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func (l Location) Lng() float64 { return l.Coordinates[0] }
func (l Location) Lat() float64 { return l.Coordinates[1] }

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Hostel struct {
	ID         int        `json:"id"`
	OwnerID    int        `json:"owner_id"`
	Name       string     `json:"name"`
	Address    Address    `json:"address"`
	Location   Location   `json:"location"`
	PriceRange PriceRange `json:"price_range"`
	Rating     float64    `json:"rating"`
	Gender     string     `json:"gender"`
	Photos     []string   `json:"photos"`
	Amenities  []string   `json:"amenities"`
	CreatedAt  time.Time  `json:"created_at"`
}

type HostelFilter struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	HasBounds      bool
	MinPrice       int
	MaxPrice       int
	Gender         string
	Limit          int
}
