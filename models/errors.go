package models

import "errors"

// Storage-level outcomes shared by the repository and the service layer.
// Missing rows are reported as sql.ErrNoRows.
var (
	ErrDuplicate      = errors.New("duplicate record")
	ErrStale          = errors.New("record changed concurrently")
	ErrNotPending     = errors.New("record is not pending")
	// ErrRewardsChanged means the buyer's completed order count moved
	// between pricing a checkout and committing it.
	ErrRewardsChanged = errors.New("reward eligibility changed")
)
