package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	rewardPercent    = 5.0
	firstOrderCapUSD = 50.0
	loyaltyCapUSD    = 25.0
	loyaltyThreshold = 4
	rewardNone       = ""
	rewardFirstOrder = "first_order"
	rewardLoyalty    = "loyalty"
)

// Discount is the reward applied to a checkout.
type Discount struct {
	Kind         string  `json:"kind,omitempty"`
	Percent      float64 `json:"percent"`
	AmountUSD    float64 `json:"amount_usd"`
	AmountCrypto float64 `json:"amount_crypto"`
	Message      string  `json:"message"`
}

type RewardStatus struct {
	Title                    string  `json:"title"`
	Description              string  `json:"description"`
	Progress                 float64 `json:"progress"`
	TransactionsToNextReward int     `json:"transactions_to_next_reward"`
	CompletedTransactions    int     `json:"completed_transactions"`
	RewardUnlocked           bool    `json:"reward_unlocked"`
}

// ComputeDiscount applies the reward rules for a user with completed prior
// orders to a cart worth subtotal (crypto) and subtotalUSD.
func ComputeDiscount(completed int, subtotal, subtotalUSD float64) Discount {
	var d Discount
	switch {
	case completed == 0:
		d.Kind = rewardFirstOrder
		d.Percent = rewardPercent
		d.AmountUSD = math.Min(subtotalUSD*rewardPercent/100, firstOrderCapUSD)
		d.Message = fmt.Sprintf("First order offer: %.0f%% off (up to $%.0f)", rewardPercent, firstOrderCapUSD)
	case completed >= loyaltyThreshold:
		d.Kind = rewardLoyalty
		d.Percent = rewardPercent
		d.AmountUSD = math.Min(subtotalUSD*rewardPercent/100, loyaltyCapUSD)
		d.Message = fmt.Sprintf("Loyalty reward: %.0f%% off (up to $%.0f)", rewardPercent, loyaltyCapUSD)
	default:
		d.Kind = rewardNone
		d.Message = transactionsAway(loyaltyThreshold - completed)
		return d
	}

	d.AmountUSD = roundUSD(d.AmountUSD)
	if subtotalUSD > 0 {
		d.AmountCrypto = roundCrypto(d.AmountUSD / subtotalUSD * subtotal)
	}
	return d
}

// RewardStatusFor builds the rewards page view for n completed orders.
func RewardStatusFor(n int) RewardStatus {
	st := RewardStatus{
		CompletedTransactions: n,
		RewardUnlocked:        n >= loyaltyThreshold,
	}
	switch {
	case n == 0:
		st.Title = "First Transaction Offer!"
		st.Description = fmt.Sprintf("Get %.0f%% off your first purchase (up to $%.0f).", rewardPercent, firstOrderCapUSD)
	case n >= loyaltyThreshold:
		st.Title = "Loyalty Reward Unlocked!"
		st.Description = fmt.Sprintf("Enjoy %.0f%% off every purchase (up to $%.0f).", rewardPercent, loyaltyCapUSD)
	default:
		st.Title = "Almost There!"
		st.Description = transactionsAway(loyaltyThreshold - n)
		st.TransactionsToNextReward = loyaltyThreshold - n
	}
	st.Progress = math.Min(float64(n)/loyaltyThreshold*100, 100)
	return st
}

func (s Service) RewardStatus(ctx context.Context, userID int) (RewardStatus, error) {
	n, err := s.repo.CountCompletedOrders(ctx, userID)
	if err != nil {
		return RewardStatus{}, fmt.Errorf("count completed orders: %w", err)
	}
	return RewardStatusFor(n), nil
}

// RewardsPage is the progress view plus the stored reward bookkeeping.
type RewardsPage struct {
	RewardStatus
	LastRewardDate *time.Time `json:"last_reward_date"`
}

func (s Service) Rewards(ctx context.Context, userID int) (RewardsPage, error) {
	st, err := s.RewardStatus(ctx, userID)
	if err != nil {
		return RewardsPage{}, err
	}
	row, err := s.repo.GetUserReward(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return RewardsPage{}, fmt.Errorf("get user reward: %w", err)
	}
	return RewardsPage{RewardStatus: st, LastRewardDate: row.LastRewardDate}, nil
}

func transactionsAway(k int) string {
	return fmt.Sprintf("You are %d transaction(s) away from a %.0f%% loyalty discount.", k, rewardPercent)
}

func roundUSD(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundCrypto(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
