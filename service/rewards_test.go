package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hackhub/models"
	"hackhub/service"
	"hackhub/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name        string
		completed   int
		subtotal    float64
		subtotalUSD float64
		wantUSD     float64
		wantCrypto  float64
		wantKind    string
	}{
		{name: "first order under cap", completed: 0, subtotal: 0.1, subtotalUSD: 200, wantUSD: 10, wantCrypto: 0.005, wantKind: "first_order"},
		{name: "first order capped at 50", completed: 0, subtotal: 1, subtotalUSD: 2000, wantUSD: 50, wantCrypto: 0.025, wantKind: "first_order"},
		{name: "between rewards", completed: 3, subtotal: 1, subtotalUSD: 2000},
		{name: "loyalty capped at 25", completed: 4, subtotal: 1, subtotalUSD: 2000, wantUSD: 25, wantCrypto: 0.0125, wantKind: "loyalty"},
		{name: "loyalty under cap", completed: 9, subtotal: 2, subtotalUSD: 100, wantUSD: 5, wantCrypto: 0.1, wantKind: "loyalty"},
		{name: "empty subtotal", completed: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := service.ComputeDiscount(tt.completed, tt.subtotal, tt.subtotalUSD)
			require.Equal(t, tt.wantKind, d.Kind)
			require.InDelta(t, tt.wantUSD, d.AmountUSD, 1e-9)
			require.InDelta(t, tt.wantCrypto, d.AmountCrypto, 1e-9)
		})
	}
}

func TestComputeDiscount_Message(t *testing.T) {
	require.Equal(t, "You are 3 transaction(s) away from a 5% loyalty discount.",
		service.ComputeDiscount(1, 1, 1).Message)
}

func TestRewardStatusFor(t *testing.T) {
	tests := []struct {
		n            int
		wantTitle    string
		wantProgress float64
		wantToNext   int
		wantUnlocked bool
	}{
		{n: 0, wantTitle: "First Transaction Offer!", wantProgress: 0},
		{n: 1, wantTitle: "Almost There!", wantProgress: 25, wantToNext: 3},
		{n: 3, wantTitle: "Almost There!", wantProgress: 75, wantToNext: 1},
		{n: 4, wantTitle: "Loyalty Reward Unlocked!", wantProgress: 100, wantUnlocked: true},
		{n: 12, wantTitle: "Loyalty Reward Unlocked!", wantProgress: 100, wantUnlocked: true},
	}
	for _, tt := range tests {
		st := service.RewardStatusFor(tt.n)
		require.Equal(t, tt.wantTitle, st.Title, "n=%d", tt.n)
		require.Equal(t, tt.wantProgress, st.Progress, "n=%d", tt.n)
		require.Equal(t, tt.wantToNext, st.TransactionsToNextReward, "n=%d", tt.n)
		require.Equal(t, tt.wantUnlocked, st.RewardUnlocked, "n=%d", tt.n)
		require.Equal(t, tt.n, st.CompletedTransactions)
	}
}

func TestService_Rewards(t *testing.T) {
	last := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	svc := newService(t, func(mr *mocks.MockRepository) {
		mr.EXPECT().CountCompletedOrders(gomock.Any(), 1).Return(5, nil)
		mr.EXPECT().GetUserReward(gomock.Any(), 1).Return(models.UserReward{UserID: 1, LastRewardDate: &last}, nil)
		mr.EXPECT().CountCompletedOrders(gomock.Any(), 2).Return(0, nil)
		mr.EXPECT().GetUserReward(gomock.Any(), 2).Return(models.UserReward{}, sql.ErrNoRows)
	})

	page, err := svc.Rewards(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, page.RewardUnlocked)
	require.Equal(t, &last, page.LastRewardDate)

	page, err = svc.Rewards(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "First Transaction Offer!", page.Title)
	require.Nil(t, page.LastRewardDate)
}
