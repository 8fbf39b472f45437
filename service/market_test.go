package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"hackhub/models"
	"hackhub/pricing"
	"hackhub/service"
	"hackhub/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func cartItem(id, chain string, price float64, owner int) models.CartItem {
	return models.CartItem{
		ID:       "c-" + id,
		UserID:   1,
		NFTID:    id,
		Quantity: 1,
		NFT:      models.NFT{ID: id, Blockchain: chain, Price: price, OwnerID: owner, IsListed: true},
	}
}

func TestService_PlaceOrder(t *testing.T) {
	type fields struct {
		prepareRepository func(*mocks.MockRepository)
		prepareOracle     func(*mocks.MockPriceOracle)
	}
	ethRate := map[string]pricing.Rate{"ethereum": {USD: 2000, INR: 166000}}

	tests := []struct {
		name       string
		method     string
		fields     fields
		wantErr    error
		wantVal    bool
		wantStatus string
		check      func(*testing.T, service.CheckoutResult)
	}{
		{
			name:   "Wallet payment completes first order with capped discount",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 0.5, 9), cartItem("b", "ethereum", 0.25, 9)}, nil)
					mr.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(0, nil)
					mr.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, p models.PlaceOrderParams) (models.Order, error) {
							require.Equal(t, models.OrderCompleted, p.Status)
							require.Equal(t, "ethereum", p.Blockchain)
							require.NotEmpty(t, p.OrderID)
							require.Len(t, p.Items, 2)
							require.Equal(t, 1000.0, p.Items[0].PriceUSD)
							// 5% of $1500 is $75, capped at $50.
							require.Equal(t, 50.0, p.DiscountUSD)
							require.InDelta(t, 0.025, p.DiscountApplied, 1e-9)
							require.InDelta(t, 0.725, p.TotalAmount, 1e-9)
							require.Equal(t, 1450.0, p.TotalAmountUSD)
							return models.Order{ID: p.OrderID, Status: p.Status, TotalAmountUSD: p.TotalAmountUSD}, nil
						})
				},
				prepareOracle: func(mo *mocks.MockPriceOracle) {
					mo.EXPECT().Rates(gomock.Any(), []string{"ethereum"}).Return(ethRate, nil)
				},
			},
			wantStatus: models.OrderCompleted,
			check: func(t *testing.T, res service.CheckoutResult) {
				require.Equal(t, 50.0, res.Discount.AmountUSD)
			},
		},
		{
			name:   "Card payment stays pending without discount mid-way to loyalty",
			method: models.PaymentCard,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 0.1, 9)}, nil)
					mr.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(2, nil)
					mr.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, p models.PlaceOrderParams) (models.Order, error) {
							require.Equal(t, models.OrderPending, p.Status)
							require.Zero(t, p.DiscountUSD)
							require.Equal(t, 200.0, p.TotalAmountUSD)
							return models.Order{ID: p.OrderID, Status: p.Status}, nil
						})
				},
				prepareOracle: func(mo *mocks.MockPriceOracle) {
					mo.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(ethRate, nil)
				},
			},
			wantStatus: models.OrderPending,
			check: func(t *testing.T, res service.CheckoutResult) {
				require.Equal(t, "You are 2 transaction(s) away from a 5% loyalty discount.", res.Discount.Message)
			},
		},
		{
			name:   "Empty cart",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).Return(nil, nil)
				},
			},
			wantErr: service.ErrCartEmpty,
		},
		{
			name:    "Unknown payment method",
			method:  "cash",
			fields:  fields{},
			wantVal: true,
		},
		{
			name:   "Mixed blockchains",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 1, 9), cartItem("b", "solana", 1, 9)}, nil)
				},
			},
			wantErr: service.ErrMixedChains,
		},
		{
			name:   "Own nft in cart",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 1, 1)}, nil)
				},
			},
			wantErr: service.ErrNFTUnavailable,
		},
		{
			name:   "Price feed down",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 1, 9)}, nil)
				},
				prepareOracle: func(mo *mocks.MockPriceOracle) {
					mo.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(nil, pricing.ErrUnavailable)
				},
			},
			wantErr: service.ErrPricingUnavailable,
		},
		{
			name:   "Nft sold while checking out",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 1, 9)}, nil)
					mr.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(5, nil)
					mr.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(models.Order{}, models.ErrStale)
				},
				prepareOracle: func(mo *mocks.MockPriceOracle) {
					mo.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(ethRate, nil)
				},
			},
			wantErr: service.ErrPriceChanged,
		},
		{
			name:   "Concurrent first order forces a re-price without the discount",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 0.1, 9)}, nil)
					gomock.InOrder(
						mr.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(0, nil),
						mr.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
							DoAndReturn(func(_ context.Context, p models.PlaceOrderParams) (models.Order, error) {
								require.Equal(t, 0, p.CompletedOrders)
								require.Equal(t, 10.0, p.DiscountUSD)
								return models.Order{}, models.ErrRewardsChanged
							}),
						mr.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(1, nil),
						mr.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
							DoAndReturn(func(_ context.Context, p models.PlaceOrderParams) (models.Order, error) {
								require.Equal(t, 1, p.CompletedOrders)
								require.Zero(t, p.DiscountUSD)
								require.Equal(t, 200.0, p.TotalAmountUSD)
								return models.Order{ID: p.OrderID, Status: p.Status, TotalAmountUSD: p.TotalAmountUSD}, nil
							}),
					)
				},
				prepareOracle: func(mo *mocks.MockPriceOracle) {
					mo.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(ethRate, nil)
				},
			},
			wantStatus: models.OrderCompleted,
			check: func(t *testing.T, res service.CheckoutResult) {
				require.Zero(t, res.Discount.AmountUSD)
			},
		},
		{
			name:   "Rewards keep changing",
			method: models.PaymentWallet,
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().ListCartItems(gomock.Any(), 1).
						Return([]models.CartItem{cartItem("a", "ethereum", 0.1, 9)}, nil)
					mr.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(0, nil).Times(3)
					mr.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
						Return(models.Order{}, models.ErrRewardsChanged).Times(3)
				},
				prepareOracle: func(mo *mocks.MockPriceOracle) {
					mo.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(ethRate, nil)
				},
			},
			wantErr: service.ErrPriceChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			oracle := mocks.NewMockPriceOracle(ctrl)
			if tt.fields.prepareRepository != nil {
				tt.fields.prepareRepository(repo)
			}
			if tt.fields.prepareOracle != nil {
				tt.fields.prepareOracle(oracle)
			}

			svc := service.NewService(repo, "secret", service.WithPriceOracle(oracle))
			res, err := svc.PlaceOrder(context.Background(), 1, tt.method)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				return
			case tt.wantVal:
				require.True(t, service.IsValidation(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, res.Order.Status)
			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestService_CompleteOrder(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "Pending order completes"},
		{name: "Unknown order", repoErr: sql.ErrNoRows, wantErr: service.ErrOrderNotFound},
		{name: "Already completed", repoErr: models.ErrNotPending, wantErr: service.ErrOrderNotPending},
		{name: "Nft sold meanwhile", repoErr: models.ErrStale, wantErr: service.ErrNFTUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, func(mr *mocks.MockRepository) {
				mr.EXPECT().CompleteOrder(gomock.Any(), 1, "o-1").
					Return(models.Order{ID: "o-1", Status: models.OrderCompleted}, tt.repoErr)
			})
			o, err := svc.CompleteOrder(context.Background(), 1, "o-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.OrderCompleted, o.Status)
		})
	}
}

func TestService_AddToCart(t *testing.T) {
	tests := []struct {
		name    string
		nft     models.NFT
		nftErr  error
		wantErr error
		wantVal bool
	}{
		{name: "Listed nft", nft: models.NFT{ID: "a", OwnerID: 2, IsListed: true}},
		{name: "Unlisted nft", nft: models.NFT{ID: "a", OwnerID: 2}, wantVal: true},
		{name: "Own nft", nft: models.NFT{ID: "a", OwnerID: 1, IsListed: true}, wantVal: true},
		{name: "Missing nft", nftErr: sql.ErrNoRows, wantErr: service.ErrNFTNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, func(mr *mocks.MockRepository) {
				mr.EXPECT().GetNFT(gomock.Any(), "a").Return(tt.nft, tt.nftErr)
				if tt.wantErr == nil && !tt.wantVal {
					mr.EXPECT().UpsertCartItem(gomock.Any(), 1, "a").Return(nil)
				}
			})
			err := svc.AddToCart(context.Background(), 1, "a")
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantVal:
				require.True(t, service.IsValidation(err), "got %v", err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestService_CartDegradesWithoutFiat(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	oracle := mocks.NewMockPriceOracle(ctrl)
	repo.EXPECT().ListCartItems(gomock.Any(), 1).
		Return([]models.CartItem{cartItem("a", "polygon", 10, 9), cartItem("b", "polygon", 5, 9)}, nil)
	oracle.EXPECT().Rates(gomock.Any(), []string{"polygon"}).Return(nil, errors.New("boom"))

	svc := service.NewService(repo, "secret", service.WithPriceOracle(oracle))
	view, err := svc.Cart(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, view.FiatAvailable)
	require.Nil(t, view.Discount)
	require.Equal(t, map[string]float64{"polygon": 15}, view.Subtotals)
}

func TestService_CartUsesCachedRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)
	oracle := mocks.NewMockPriceOracle(ctrl)

	repo.EXPECT().ListCartItems(gomock.Any(), 1).
		Return([]models.CartItem{cartItem("a", "solana", 2, 9)}, nil)
	repo.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(4, nil)
	cache.EXPECT().GetJSON(gomock.Any(), "fiat:solana", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, target interface{}) error {
			*(target.(*map[string]pricing.Rate)) = map[string]pricing.Rate{"solana": {USD: 150, INR: 12450}}
			return nil
		})

	svc := service.NewService(repo, "secret", service.WithPriceOracle(oracle), service.WithCache(cache))
	view, err := svc.Cart(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, view.FiatAvailable)
	require.Equal(t, 300.0, view.SubtotalUSD)
	require.Equal(t, 24900.0, view.SubtotalINR)
	require.NotNil(t, view.Discount)
	require.Equal(t, 15.0, view.Discount.AmountUSD)
}
