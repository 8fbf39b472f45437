package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"hackhub/models"
	"hackhub/pricing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var checkoutOrders = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "checkout_orders_total",
	Help: "Checkout attempts by resulting order status.",
}, []string{"status"})

const (
	defaultNFTPageSize = 24
	maxNFTPageSize     = 100
	maxRepriceAttempts = 3
)

type CartView struct {
	Items         []models.CartItem  `json:"items"`
	Subtotals     map[string]float64 `json:"subtotals"`
	SubtotalUSD   float64            `json:"subtotal_usd"`
	SubtotalINR   float64            `json:"subtotal_inr"`
	FiatAvailable bool               `json:"fiat_available"`
	Discount      *Discount          `json:"discount,omitempty"`
}

type CheckoutResult struct {
	Order    models.Order `json:"order"`
	Discount Discount     `json:"discount"`
}

func (s Service) ListNFTs(ctx context.Context, filter models.NFTFilter) ([]models.NFT, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultNFTPageSize
	}
	if filter.Limit > maxNFTPageSize {
		filter.Limit = maxNFTPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Blockchain = strings.ToLower(filter.Blockchain)
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.ListNFTs(ctx, filter)
}

func (s Service) GetNFT(ctx context.Context, id string) (models.NFT, error) {
	nft, err := s.repo.GetNFT(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NFT{}, ErrNFTNotFound
	}
	return nft, err
}

func (s Service) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return s.repo.ListCollections(ctx)
}

func (s Service) GetCollection(ctx context.Context, slug string) (models.Collection, error) {
	c, err := s.repo.GetCollectionBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Collection{}, ErrCollectionNotFound
	}
	return c, err
}

func (s Service) AddToCart(ctx context.Context, userID int, nftID string) error {
	nft, err := s.GetNFT(ctx, nftID)
	if err != nil {
		return err
	}
	if !nft.IsListed {
		return invalid("nft_id", "nft is not listed for sale")
	}
	if nft.OwnerID == userID {
		return invalid("nft_id", "you already own this nft")
	}
	return s.repo.UpsertCartItem(ctx, userID, nftID)
}

func (s Service) RemoveFromCart(ctx context.Context, userID int, nftID string) error {
	return s.repo.DeleteCartItem(ctx, userID, nftID)
}

func (s Service) ClearCart(ctx context.Context, userID int) error {
	return s.repo.ClearCart(ctx, userID)
}

// Cart returns the cart with fiat prices. A failing price feed degrades the
// view to crypto amounts only.
func (s Service) Cart(ctx context.Context, userID int) (CartView, error) {
	items, err := s.repo.ListCartItems(ctx, userID)
	if err != nil {
		return CartView{}, fmt.Errorf("list cart: %w", err)
	}
	view := CartView{Items: items, Subtotals: map[string]float64{}}
	if view.Items == nil {
		view.Items = []models.CartItem{}
	}
	if len(items) == 0 {
		return view, nil
	}

	for _, it := range items {
		view.Subtotals[it.NFT.Blockchain] += it.NFT.Price * float64(it.Quantity)
	}

	rates, err := s.FiatRates(ctx, chainsOf(items))
	if err != nil {
		s.logger.Warn("cart priced without fiat rates", zap.Int("user_id", userID), zap.Error(err))
		return view, nil
	}
	view.FiatAvailable = true
	for i := range view.Items {
		it := &view.Items[i]
		rate := rates[it.NFT.Blockchain]
		it.PriceUSD = roundUSD(it.NFT.Price * rate.USD)
		it.PriceINR = roundUSD(it.NFT.Price * rate.INR)
		view.SubtotalUSD += it.PriceUSD * float64(it.Quantity)
		view.SubtotalINR += it.PriceINR * float64(it.Quantity)
	}
	view.SubtotalUSD = roundUSD(view.SubtotalUSD)
	view.SubtotalINR = roundUSD(view.SubtotalINR)

	if len(view.Subtotals) == 1 {
		n, err := s.repo.CountCompletedOrders(ctx, userID)
		if err != nil {
			return CartView{}, fmt.Errorf("count completed orders: %w", err)
		}
		d := ComputeDiscount(n, view.Subtotals[items[0].NFT.Blockchain], view.SubtotalUSD)
		view.Discount = &d
	}
	return view, nil
}

// PlaceOrder checks out the whole cart. Card payments create a pending order
// that CompleteOrder finalizes; wallet payments complete immediately.
func (s Service) PlaceOrder(
	ctx context.Context,
	userID int,
	paymentMethod string,
) (CheckoutResult, error) {
	res, err := s.placeOrder(ctx, userID, paymentMethod)
	if err != nil {
		checkoutOrders.WithLabelValues("failed").Inc()
		return CheckoutResult{}, err
	}
	checkoutOrders.WithLabelValues(res.Order.Status).Inc()
	s.logger.Info("order placed",
		zap.String("order_id", res.Order.ID),
		zap.Int("user_id", userID),
		zap.String("status", res.Order.Status),
		zap.Float64("total_usd", res.Order.TotalAmountUSD),
	)
	return res, nil
}

func (s Service) placeOrder(
	ctx context.Context,
	userID int,
	paymentMethod string,
) (CheckoutResult, error) {
	if err := oneOf("payment_method", paymentMethod, models.PaymentWallet, models.PaymentCard); err != nil {
		return CheckoutResult{}, err
	}

	items, err := s.repo.ListCartItems(ctx, userID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("list cart: %w", err)
	}
	if len(items) == 0 {
		return CheckoutResult{}, ErrCartEmpty
	}
	chains := chainsOf(items)
	if len(chains) > 1 {
		return CheckoutResult{}, ErrMixedChains
	}
	chain := chains[0]
	for _, it := range items {
		if !it.NFT.IsListed || it.NFT.OwnerID == userID {
			return CheckoutResult{}, ErrNFTUnavailable
		}
	}

	rates, err := s.FiatRates(ctx, chains)
	if err != nil {
		return CheckoutResult{}, err
	}
	rate, ok := rates[chain]
	if !ok {
		return CheckoutResult{}, fmt.Errorf("%w: no rate for %s", ErrPricingUnavailable, chain)
	}

	var subtotal float64
	for i := range items {
		items[i].PriceUSD = roundUSD(items[i].NFT.Price * rate.USD)
		items[i].PriceINR = roundUSD(items[i].NFT.Price * rate.INR)
		subtotal += items[i].NFT.Price * float64(items[i].Quantity)
	}
	subtotalUSD := subtotal * rate.USD

	status := models.OrderCompleted
	if paymentMethod == models.PaymentCard {
		status = models.OrderPending
	}

	// The repository re-counts completed orders under a per-user lock; a
	// concurrent checkout that lands first forces a re-price.
	for attempt := 1; ; attempt++ {
		completed, err := s.repo.CountCompletedOrders(ctx, userID)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("count completed orders: %w", err)
		}
		discount := ComputeDiscount(completed, subtotal, subtotalUSD)

		order, err := s.repo.PlaceOrder(ctx, models.PlaceOrderParams{
			OrderID:         uuid.NewString(),
			UserID:          userID,
			PaymentMethod:   paymentMethod,
			Status:          status,
			Items:           items,
			TotalAmount:     roundCrypto(nonNegative(subtotal - discount.AmountCrypto)),
			TotalAmountUSD:  roundUSD(nonNegative(subtotalUSD - discount.AmountUSD)),
			DiscountApplied: discount.AmountCrypto,
			DiscountUSD:     discount.AmountUSD,
			Blockchain:      chain,
			CompletedOrders: completed,
		})
		switch {
		case errors.Is(err, models.ErrRewardsChanged) && attempt < maxRepriceAttempts:
			s.logger.Debug("re-pricing checkout", zap.Int("user_id", userID), zap.Int("attempt", attempt))
			continue
		case errors.Is(err, models.ErrRewardsChanged), errors.Is(err, models.ErrStale):
			return CheckoutResult{}, ErrPriceChanged
		case errors.Is(err, sql.ErrNoRows):
			return CheckoutResult{}, ErrNFTUnavailable
		case err != nil:
			return CheckoutResult{}, fmt.Errorf("place order: %w", err)
		}
		return CheckoutResult{Order: order, Discount: discount}, nil
	}
}

// CompleteOrder confirms a pending card order.
func (s Service) CompleteOrder(ctx context.Context, userID int, orderID string) (models.Order, error) {
	order, err := s.repo.CompleteOrder(ctx, userID, orderID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Order{}, ErrOrderNotFound
	case errors.Is(err, models.ErrNotPending):
		return models.Order{}, ErrOrderNotPending
	case errors.Is(err, models.ErrStale):
		return models.Order{}, ErrNFTUnavailable
	case err != nil:
		return models.Order{}, fmt.Errorf("complete order: %w", err)
	}
	checkoutOrders.WithLabelValues(order.Status).Inc()
	return order, nil
}

func (s Service) ListOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.repo.ListOrders(ctx, userID)
}

func (s Service) GetOrder(ctx context.Context, userID int, orderID string) (models.Order, error) {
	o, err := s.repo.GetOrder(ctx, userID, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (s Service) ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}

// FiatRates returns USD/INR rates per chain, served from cache when fresh.
func (s Service) FiatRates(ctx context.Context, chains []string) (map[string]pricing.Rate, error) {
	if s.prices == nil {
		return nil, ErrPricingUnavailable
	}
	key := "fiat:" + strings.Join(chains, ",")

	var cached map[string]pricing.Rate
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	rates, err := s.prices.Rates(ctx, chains)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPricingUnavailable, err)
	}
	if err := s.cache.SetJSON(ctx, key, rates, s.priceTTL); err != nil {
		s.logger.Debug("cache fiat rates failed", zap.Error(err))
	}
	return rates, nil
}

// chainsOf returns the sorted distinct blockchains of items.
func chainsOf(items []models.CartItem) []string {
	seen := make(map[string]struct{})
	var chains []string
	for _, it := range items {
		if _, ok := seen[it.NFT.Blockchain]; ok {
			continue
		}
		seen[it.NFT.Blockchain] = struct{}{}
		chains = append(chains, it.NFT.Blockchain)
	}
	sort.Strings(chains)
	return chains
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
