package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"hackhub/resilience"

	"go.uber.org/zap"
)

var ErrUnavailable = errors.New("price feed unavailable")

// coinIDs maps marketplace blockchains to CoinGecko coin ids.
var coinIDs = map[string]string{
	"ethereum": "ethereum",
	"polygon":  "matic-network",
	"solana":   "solana",
	"bitcoin":  "bitcoin",
}

type Rate struct {
	USD float64 `json:"usd"`
	INR float64 `json:"inr"`
}

type Client struct {
	baseURL string
	http    *http.Client
	breaker *resilience.CircuitBreaker
	logger  *zap.Logger
	delay   time.Duration
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		breaker: resilience.NewCircuitBreaker("coingecko", 3, 30*time.Second, logger),
		logger:  logger,
		delay:   300 * time.Millisecond,
	}
}

// Rates returns fiat rates keyed by blockchain name. Unknown chains are
// skipped; an empty input makes no request.
func (c *Client) Rates(ctx context.Context, chains []string) (map[string]Rate, error) {
	byCoin := make(map[string]string)
	for _, chain := range chains {
		if id, ok := coinIDs[strings.ToLower(chain)]; ok {
			byCoin[id] = strings.ToLower(chain)
		}
	}
	if len(byCoin) == 0 {
		return map[string]Rate{}, nil
	}

	ids := make([]string, 0, len(byCoin))
	for id := range byCoin {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd,inr",
		c.baseURL, url.QueryEscape(strings.Join(ids, ",")))

	var raw map[string]Rate
	err := c.breaker.Execute(ctx, func() error {
		return resilience.Retry(ctx, 3, c.delay, func() error {
			return c.fetch(ctx, endpoint, &raw)
		})
	})
	if err != nil {
		c.logger.Warn("fiat price fetch failed", zap.Strings("coins", ids), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	rates := make(map[string]Rate, len(raw))
	for coin, rate := range raw {
		if chain, ok := byCoin[coin]; ok {
			rates[chain] = rate
		}
	}
	return rates, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return resilience.Stop(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
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
