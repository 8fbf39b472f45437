package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hackhub/models"

	"golang.org/x/sync/errgroup"
)

type Dashboard struct {
	Profile      models.Profile `json:"profile"`
	RecentOrders []models.Order `json:"recent_orders"`
	Reward       RewardStatus   `json:"reward"`
	OwnedNFTs    int            `json:"owned_nfts"`
}

const recentOrdersLimit = 5

func (s Service) GetProfile(ctx context.Context, userID int) (models.Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	return p, err
}

func (s Service) UpdateProfile(
	ctx context.Context,
	userID int,
	upd models.ProfileUpdate,
) (models.Profile, error) {
	if upd.Username != nil {
		u := strings.ToLower(strings.TrimSpace(*upd.Username))
		if !usernamePattern.MatchString(u) {
			return models.Profile{}, invalid("username", "must be 3-30 characters of a-z, 0-9 or _")
		}
		upd.Username = &u
	}
	if upd.DisplayName != nil {
		if err := validLength("display_name", *upd.DisplayName, 0, 100); err != nil {
			return models.Profile{}, err
		}
	}
	if upd.Bio != nil {
		if err := validLength("bio", *upd.Bio, 0, 500); err != nil {
			return models.Profile{}, err
		}
	}
	if upd.AvatarURL != nil && *upd.AvatarURL != "" {
		if err := validURL("avatar_url", *upd.AvatarURL); err != nil {
			return models.Profile{}, err
		}
	}
	if upd.WalletAddress != nil && *upd.WalletAddress != "" && !walletPattern.MatchString(*upd.WalletAddress) {
		return models.Profile{}, invalid("wallet_address", "must be 0x followed by 40 hex characters")
	}
	if upd.UserType != nil {
		if err := oneOf("user_type", *upd.UserType, "creator", "collector"); err != nil {
			return models.Profile{}, err
		}
	}

	p, err := s.repo.UpdateProfile(ctx, userID, upd)
	switch {
	case errors.Is(err, models.ErrDuplicate):
		return models.Profile{}, ErrUsernameTaken
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		return models.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Dashboard loads the profile page aggregate concurrently.
func (s Service) Dashboard(ctx context.Context, userID int) (Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.GetProfile(gctx, userID)
		d.Profile = p
		return err
	})
	g.Go(func() error {
		orders, err := s.repo.ListOrders(gctx, userID)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		if len(orders) > recentOrdersLimit {
			orders = orders[:recentOrdersLimit]
		}
		d.RecentOrders = orders
		return nil
	})
	g.Go(func() error {
		r, err := s.RewardStatus(gctx, userID)
		d.Reward = r
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountOwnedNFTs(gctx, userID)
		if err != nil {
			return fmt.Errorf("count nfts: %w", err)
		}
		d.OwnedNFTs = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	if d.RecentOrders == nil {
		d.RecentOrders = []models.Order{}
	}
	return d, nil
}
