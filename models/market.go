package models

import "time"

const (
	BlockchainEthereum = "ethereum"
	BlockchainPolygon  = "polygon"
	BlockchainSolana   = "solana"
	BlockchainBitcoin  = "bitcoin"
)

const (
	PaymentWallet = "wallet"
	PaymentCard   = "card"
)

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

const (
	TxMint     = "mint"
	TxList     = "list"
	TxDelist   = "delist"
	TxSale     = "sale"
	TxTransfer = "transfer"
)

type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Blockchain  string    `json:"blockchain"`
	CreatorID   int       `json:"creator_id"`
	FloorPrice  float64   `json:"floor_price"`
	TotalVolume float64   `json:"total_volume"`
	TotalSales  int       `json:"total_sales"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

type NFT struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	CollectionID string    `json:"collection_id,omitempty"`
	CreatorID    int       `json:"creator_id"`
	OwnerID      int       `json:"owner_id"`
	Blockchain   string    `json:"blockchain"`
	Price        float64   `json:"price"`
	IsListed     bool      `json:"is_listed"`
	CreatedAt    time.Time `json:"created_at"`
}

type NFTFilter struct {
	CollectionID string
	Blockchain   string
	ListedOnly   bool
	Search       string
	Limit        int
	Offset       int
}

type CartItem struct {
	ID       string  `json:"id"`
	UserID   int     `json:"user_id"`
	NFTID    string  `json:"nft_id"`
	Quantity int     `json:"quantity"`
	NFT      NFT     `json:"nft"`
	PriceUSD float64 `json:"price_usd"`
	PriceINR float64 `json:"price_inr"`
}

type Order struct {
	ID              string      `json:"id"`
	UserID          int         `json:"user_id"`
	TotalAmount     float64     `json:"total_amount"`
	TotalAmountUSD  float64     `json:"total_amount_usd"`
	DiscountApplied float64     `json:"discount_applied"`
	PaymentMethod   string      `json:"payment_method"`
	Status          string      `json:"status"`
	Blockchain      string      `json:"blockchain"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID                 string  `json:"id"`
	OrderID            string  `json:"order_id"`
	NFTID              string  `json:"nft_id"`
	Quantity           int     `json:"quantity"`
	PriceAtPurchase    float64 `json:"price_at_purchase"`
	PriceUSDAtPurchase float64 `json:"price_usd_at_purchase"`
}

type Transaction struct {
	ID         string    `json:"id"`
	Type       string    `json:"transaction_type"`
	NFTID      string    `json:"nft_id"`
	FromUserID *int      `json:"from_user_id"`
	ToUserID   int       `json:"to_user_id"`
	Price      float64   `json:"price"`
	PriceUSD   float64   `json:"price_usd"`
	Blockchain string    `json:"blockchain"`
	OrderID    string    `json:"order_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlaceOrderParams is everything the repository needs to commit a checkout
// atomically. Prices are re-validated inside the transaction.
type PlaceOrderParams struct {
	OrderID         string
	UserID          int
	PaymentMethod   string
	Status          string
	Items           []CartItem
	TotalAmount     float64
	TotalAmountUSD  float64
	DiscountApplied float64
	DiscountUSD     float64
	Blockchain      string
	// CompletedOrders is the count the discount was priced on.
	CompletedOrders int
}

type UserReward struct {
	UserID                int        `json:"user_id"`
	CompletedTransactions int        `json:"completed_transactions"`
	DiscountPercentage    float64    `json:"discount_percentage"`
	RewardUnlocked        bool       `json:"reward_unlocked"`
	RewardUsed            bool       `json:"reward_used"`
	LastRewardDate        *time.Time `json:"last_reward_date"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
