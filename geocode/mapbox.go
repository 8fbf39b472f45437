package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hackhub/models"
	"hackhub/resilience"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("mapbox token is not configured")
	ErrUpstream      = errors.New("geocoding service unavailable")
)

var geocodeRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "geocode_requests_total",
		Help: "Reverse geocoding calls to Mapbox by result",
	},
	[]string{"result"},
)

type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	breaker  *resilience.CircuitBreaker
	logger   *zap.Logger
	attempts int
	delay    time.Duration
}

func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		http:     &http.Client{Timeout: timeout},
		breaker:  resilience.NewCircuitBreaker("mapbox", 3, 10*time.Second, logger),
		logger:   logger,
		attempts: 3,
		delay:    200 * time.Millisecond,
	}
}

// Token is the public map token handed to browser clients.
func (c *Client) Token() string {
	return c.token
}

type featureCollection struct {
	Features []Feature `json:"features"`
}

type Feature struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	PlaceName string        `json:"place_name"`
	PlaceType []string      `json:"place_type"`
	Context   []ContextItem `json:"context"`
}

type ContextItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (f Feature) hasType(t string) bool {
	for _, pt := range f.PlaceType {
		if pt == t {
			return true
		}
	}
	return false
}

// Reverse resolves a coordinate pair to a postal address.
func (c *Client) Reverse(ctx context.Context, lng, lat float64) (models.Address, error) {
	if c.token == "" {
		return models.Address{}, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s,%s.json?access_token=%s",
		c.baseURL,
		strconv.FormatFloat(lng, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64),
		url.QueryEscape(c.token),
	)

	var fc featureCollection
	err := c.breaker.Execute(ctx, func() error {
		return resilience.Retry(ctx, c.attempts, c.delay, func() error {
			return c.fetch(ctx, endpoint, &fc)
		})
	})
	if err != nil {
		geocodeRequests.WithLabelValues("error").Inc()
		c.logger.Warn("reverse geocode failed",
			zap.Float64("lng", lng),
			zap.Float64("lat", lat),
			zap.Error(err),
		)
		return models.Address{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	geocodeRequests.WithLabelValues("ok").Inc()
	return ExtractAddress(fc.Features), nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return resilience.Stop(err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resilience.Stop(fmt.Errorf("bad status code: %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return resilience.Stop(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// ExtractAddress walks features from most to least specific. The street
// comes from the first address feature (or a poi/locality name); postcode,
// city and state come from each feature's context, first match wins.
func ExtractAddress(features []Feature) models.Address {
	var a models.Address
	for _, f := range features {
		if a.Street == "" {
			switch {
			case f.hasType("address"):
				a.Street = strings.TrimSpace(strings.SplitN(f.PlaceName, ",", 2)[0])
				if a.Street == "" {
					a.Street = f.Text
				}
			case f.hasType("poi"), f.hasType("locality"):
				a.Street = f.Text
			}
		}

		for _, item := range f.Context {
			switch {
			case a.Pincode == "" && strings.HasPrefix(item.ID, "postcode"):
				a.Pincode = item.Text
			case a.City == "" && strings.HasPrefix(item.ID, "place"):
				a.City = item.Text
			case a.State == "" && strings.HasPrefix(item.ID, "region"):
				a.State = item.Text
			case a.City == "" && strings.HasPrefix(item.ID, "district"):
				a.City = item.Text
			}
		}

		if a.City == "" && f.hasType("place") {
			a.City = f.Text
		}

		if a.Street != "" && a.City != "" && a.State != "" && a.Pincode != "" {
			break
		}
	}
	return a
}
