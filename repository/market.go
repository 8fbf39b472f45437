package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hackhub/models"

	"github.com/lib/pq"
)

// loyaltyThreshold mirrors the reward rule: the fourth completed order
// unlocks the loyalty discount.
const loyaltyThreshold = 4

const (
	collectionColumns = "id, name, slug, description, image_url, blockchain, creator_id, " +
		"floor_price, total_volume, total_sales, is_verified, created_at"
	orderColumns = "id, user_id, total_amount, total_amount_usd, discount_applied, " +
		"payment_method, status, blockchain, created_at, updated_at"
)

func nftColumns(alias string) string {
	cols := []string{
		"id", "name", "description", "image_url", "COALESCE(%scollection_id::text, '')",
		"creator_id", "owner_id", "blockchain", "price", "is_listed", "created_at",
	}
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	for i, c := range cols {
		if strings.Contains(c, "%s") {
			cols[i] = fmt.Sprintf(c, prefix)
			continue
		}
		cols[i] = prefix + c
	}
	return strings.Join(cols, ", ")
}

func nftDest(n *models.NFT) []interface{} {
	return []interface{}{
		&n.ID,
		&n.Name,
		&n.Description,
		&n.ImageURL,
		&n.CollectionID,
		&n.CreatorID,
		&n.OwnerID,
		&n.Blockchain,
		&n.Price,
		&n.IsListed,
		&n.CreatedAt,
	}
}

func scanOrder(row scanner) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.TotalAmount,
		&o.TotalAmountUSD,
		&o.DiscountApplied,
		&o.PaymentMethod,
		&o.Status,
		&o.Blockchain,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func (r PostgresRepository) ListNFTs(
	ctx context.Context,
	filter models.NFTFilter,
) ([]models.NFT, error) {
	var c conditions
	if filter.CollectionID != "" {
		c.add("collection_id::text = ?", filter.CollectionID)
	}
	if filter.Blockchain != "" {
		c.add("blockchain = ?", filter.Blockchain)
	}
	if filter.ListedOnly {
		c.add("is_listed = ?", true)
	}
	if filter.Search != "" {
		c.add("(name ILIKE ? OR description ILIKE ?)", "%"+filter.Search+"%")
	}
	query := "SELECT " + nftColumns("") + " FROM nfts" + c.where() + " ORDER BY created_at DESC"
	query += " LIMIT " + c.bind(filter.Limit) + " OFFSET " + c.bind(filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nfts := []models.NFT{}
	for rows.Next() {
		var n models.NFT
		if err := rows.Scan(nftDest(&n)...); err != nil {
			return nil, err
		}
		nfts = append(nfts, n)
	}
	return nfts, rows.Err()
}

func (r PostgresRepository) GetNFT(
	ctx context.Context,
	id string,
) (models.NFT, error) {
	var n models.NFT
	err := r.db.QueryRowContext(
		ctx,
		"SELECT "+nftColumns("")+" FROM nfts WHERE id=$1",
		id,
	).Scan(nftDest(&n)...)
	if err != nil {
		return models.NFT{}, storageErr(err)
	}
	return n, nil
}

func (r PostgresRepository) CountOwnedNFTs(
	ctx context.Context,
	userID int,
) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM nfts WHERE owner_id=$1", userID).Scan(&n)
	return n, err
}

func scanCollection(row scanner) (models.Collection, error) {
	var c models.Collection
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.ImageURL,
		&c.Blockchain,
		&c.CreatorID,
		&c.FloorPrice,
		&c.TotalVolume,
		&c.TotalSales,
		&c.IsVerified,
		&c.CreatedAt,
	)
	return c, err
}

func (r PostgresRepository) ListCollections(ctx context.Context) ([]models.Collection, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT "+collectionColumns+" FROM collections ORDER BY total_volume DESC, name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

func (r PostgresRepository) GetCollectionBySlug(
	ctx context.Context,
	slug string,
) (models.Collection, error) {
	return scanCollection(r.db.QueryRowContext(
		ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE slug=$1",
		slug,
	))
}

// UpsertCartItem adds the NFT to the cart once; adding it again is a no-op.
func (r PostgresRepository) UpsertCartItem(
	ctx context.Context,
	userID int,
	nftID string,
) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO cart_items (user_id, nft_id, quantity) VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, nft_id) DO NOTHING`,
		userID, nftID,
	)
	return storageErr(err)
}

func (r PostgresRepository) DeleteCartItem(
	ctx context.Context,
	userID int,
	nftID string,
) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id=$1 AND nft_id=$2", userID, nftID)
	return storageErr(err)
}

func (r PostgresRepository) ClearCart(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id=$1", userID)
	return err
}

func (r PostgresRepository) ListCartItems(
	ctx context.Context,
	userID int,
) ([]models.CartItem, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT c.id, c.user_id, c.nft_id, c.quantity, `+nftColumns("n")+`
		 FROM cart_items c
		 JOIN nfts n ON n.id = c.nft_id
		 WHERE c.user_id=$1
		 ORDER BY c.created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var it models.CartItem
		dest := append([]interface{}{&it.ID, &it.UserID, &it.NFTID, &it.Quantity}, nftDest(&it.NFT)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r PostgresRepository) CountCompletedOrders(
	ctx context.Context,
	userID int,
) (int, error) {
	var n int
	err := r.db.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM orders WHERE user_id=$1 AND status=$2",
		userID, models.OrderCompleted,
	).Scan(&n)
	return n, err
}

// saleLine is one NFT changing hands when an order completes.
type saleLine struct {
	nftID    string
	sellerID int
	price    float64
	priceUSD float64
}

// PlaceOrder commits a checkout in one transaction. The NFT rows are locked
// and re-read: a missing NFT yields sql.ErrNoRows, an NFT that was delisted,
// repriced or bought by the buyer yields models.ErrStale. Completed orders
// transfer ownership immediately. The cart is emptied on success.
func (r PostgresRepository) PlaceOrder(
	ctx context.Context,
	params models.PlaceOrderParams,
) (models.Order, error) {
	order := models.Order{
		ID:              params.OrderID,
		UserID:          params.UserID,
		TotalAmount:     params.TotalAmount,
		TotalAmountUSD:  params.TotalAmountUSD,
		DiscountApplied: params.DiscountApplied,
		PaymentMethod:   params.PaymentMethod,
		Status:          params.Status,
		Blockchain:      params.Blockchain,
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		completed, err := lockBuyer(ctx, tx, params.UserID)
		if err != nil {
			return err
		}
		if completed != params.CompletedOrders {
			return fmt.Errorf("%w: %d completed orders, priced for %d",
				models.ErrRewardsChanged, completed, params.CompletedOrders)
		}

		ids := make([]string, 0, len(params.Items))
		for _, it := range params.Items {
			ids = append(ids, it.NFTID)
		}
		locked, err := lockNFTs(ctx, tx, ids)
		if err != nil {
			return err
		}

		lines := make([]saleLine, 0, len(params.Items))
		for _, it := range params.Items {
			n, ok := locked[it.NFTID]
			if !ok {
				return sql.ErrNoRows
			}
			if !n.IsListed || n.Price != it.NFT.Price || n.OwnerID == params.UserID {
				return fmt.Errorf("%w: nft %s", models.ErrStale, it.NFTID)
			}
			lines = append(lines, saleLine{nftID: it.NFTID, sellerID: n.OwnerID, price: n.Price, priceUSD: it.PriceUSD})
		}

		err = tx.QueryRowContext(
			ctx,
			`INSERT INTO orders (id, user_id, total_amount, total_amount_usd, discount_applied, payment_method, status, blockchain)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING created_at, updated_at`,
			order.ID, order.UserID, order.TotalAmount, order.TotalAmountUSD, order.DiscountApplied,
			order.PaymentMethod, order.Status, order.Blockchain,
		).Scan(&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return storageErr(err)
		}

		for _, it := range params.Items {
			item := models.OrderItem{
				OrderID:            order.ID,
				NFTID:              it.NFTID,
				Quantity:           it.Quantity,
				PriceAtPurchase:    it.NFT.Price,
				PriceUSDAtPurchase: it.PriceUSD,
			}
			err := tx.QueryRowContext(
				ctx,
				`INSERT INTO order_items (order_id, nft_id, quantity, price_at_purchase, price_usd_at_purchase)
				 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
				item.OrderID, item.NFTID, item.Quantity, item.PriceAtPurchase, item.PriceUSDAtPurchase,
			).Scan(&item.ID)
			if err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		if order.Status == models.OrderCompleted {
			if err := completeSales(ctx, tx, order, lines); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id=$1", params.UserID)
		return err
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CompleteOrder moves a pending order to completed and runs the ownership
// transfer. Returns sql.ErrNoRows for an unknown order, models.ErrNotPending
// when it is no longer pending and models.ErrStale when an item was delisted
// in the meantime.
func (r PostgresRepository) CompleteOrder(
	ctx context.Context,
	userID int,
	orderID string,
) (models.Order, error) {
	var order models.Order
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRowContext(
			ctx,
			"SELECT "+orderColumns+" FROM orders WHERE id=$1 AND user_id=$2 FOR UPDATE",
			orderID, userID,
		))
		if err != nil {
			return storageErr(err)
		}
		if order.Status != models.OrderPending {
			return models.ErrNotPending
		}

		rows, err := tx.QueryContext(
			ctx,
			`SELECT oi.nft_id, n.owner_id, n.is_listed, oi.price_at_purchase, oi.price_usd_at_purchase
			 FROM order_items oi
			 JOIN nfts n ON n.id = oi.nft_id
			 WHERE oi.order_id=$1
			 FOR UPDATE OF n`,
			orderID,
		)
		if err != nil {
			return err
		}
		var (
			lines []saleLine
			stale bool
		)
		for rows.Next() {
			var (
				l      saleLine
				listed bool
			)
			if err := rows.Scan(&l.nftID, &l.sellerID, &listed, &l.price, &l.priceUSD); err != nil {
				rows.Close()
				return err
			}
			if !listed || l.sellerID == userID {
				stale = true
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if stale {
			return fmt.Errorf("%w: order %s", models.ErrStale, orderID)
		}

		if err := completeSales(ctx, tx, order, lines); err != nil {
			return err
		}
		order.Status = models.OrderCompleted
		return tx.QueryRowContext(
			ctx,
			"UPDATE orders SET status=$1, updated_at=now() WHERE id=$2 RETURNING updated_at",
			order.Status, orderID,
		).Scan(&order.UpdatedAt)
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// lockBuyer serializes checkouts of one user and counts their completed
// orders under that lock.
func lockBuyer(ctx context.Context, tx *sql.Tx, userID int) (int, error) {
	var id int
	if err := tx.QueryRowContext(ctx, "SELECT id FROM users WHERE id=$1 FOR UPDATE", userID).Scan(&id); err != nil {
		return 0, err
	}
	var n int
	err := tx.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM orders WHERE user_id=$1 AND status=$2",
		userID, models.OrderCompleted,
	).Scan(&n)
	return n, err
}

func lockNFTs(
	ctx context.Context,
	tx *sql.Tx,
	ids []string,
) (map[string]models.NFT, error) {
	rows, err := tx.QueryContext(
		ctx,
		"SELECT id, owner_id, price, is_listed FROM nfts WHERE id = ANY($1) FOR UPDATE",
		pq.Array(ids),
	)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	locked := make(map[string]models.NFT, len(ids))
	for rows.Next() {
		var n models.NFT
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Price, &n.IsListed); err != nil {
			return nil, err
		}
		locked[n.ID] = n
	}
	return locked, rows.Err()
}

// completeSales records a sale per line, hands the NFTs to the buyer and
// updates the buyer's reward and volume bookkeeping.
func completeSales(
	ctx context.Context,
	tx *sql.Tx,
	order models.Order,
	lines []saleLine,
) error {
	for _, l := range lines {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO transactions (transaction_type, nft_id, from_user_id, to_user_id, price, price_usd, blockchain, order_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			models.TxSale, l.nftID, l.sellerID, order.UserID, l.price, l.priceUSD, order.Blockchain, order.ID,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(
			ctx,
			"UPDATE nfts SET owner_id=$1, is_listed=false WHERE id=$2",
			order.UserID, l.nftID,
		); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO user_rewards (user_id, completed_transactions, reward_unlocked, last_reward_date)
		 VALUES ($1, 1, 1 >= $2, CASE WHEN $3::boolean THEN now() END)
		 ON CONFLICT (user_id) DO UPDATE SET
			completed_transactions = user_rewards.completed_transactions + 1,
			reward_unlocked = user_rewards.completed_transactions + 1 >= $2,
			last_reward_date = COALESCE(EXCLUDED.last_reward_date, user_rewards.last_reward_date),
			updated_at = now()`,
		order.UserID, loyaltyThreshold, order.DiscountApplied > 0,
	); err != nil {
		return err
	}

	_, err := tx.ExecContext(
		ctx,
		"UPDATE profiles SET total_volume = total_volume + $1, updated_at=now() WHERE user_id=$2",
		order.TotalAmountUSD, order.UserID,
	)
	return err
}

func (r PostgresRepository) ListOrders(
	ctx context.Context,
	userID int,
) ([]models.Order, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id=$1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r PostgresRepository) GetOrder(
	ctx context.Context,
	userID int,
	orderID string,
) (models.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(
		ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id=$1 AND user_id=$2",
		orderID, userID,
	))
	if err != nil {
		return models.Order{}, storageErr(err)
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, order_id, nft_id, quantity, price_at_purchase, price_usd_at_purchase
		 FROM order_items WHERE order_id=$1`,
		orderID,
	)
	if err != nil {
		return models.Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(
			&it.ID,
			&it.OrderID,
			&it.NFTID,
			&it.Quantity,
			&it.PriceAtPurchase,
			&it.PriceUSDAtPurchase,
		); err != nil {
			return models.Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

// ListTransactions returns every transaction the user sent or received.
func (r PostgresRepository) ListTransactions(
	ctx context.Context,
	userID int,
) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, transaction_type, nft_id, from_user_id, to_user_id, price, price_usd, blockchain,
		        COALESCE(order_id::text, ''), created_at
		 FROM transactions
		 WHERE from_user_id=$1 OR to_user_id=$1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var (
			t    models.Transaction
			from sql.NullInt64
		)
		if err := rows.Scan(
			&t.ID,
			&t.Type,
			&t.NFTID,
			&from,
			&t.ToUserID,
			&t.Price,
			&t.PriceUSD,
			&t.Blockchain,
			&t.OrderID,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		if from.Valid {
			id := int(from.Int64)
			t.FromUserID = &id
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r PostgresRepository) GetUserReward(
	ctx context.Context,
	userID int,
) (models.UserReward, error) {
	var (
		rw   models.UserReward
		last sql.NullTime
	)
	err := r.db.QueryRowContext(
		ctx,
		`SELECT user_id, completed_transactions, discount_percentage, reward_unlocked, reward_used,
		        last_reward_date, updated_at
		 FROM user_rewards WHERE user_id=$1`,
		userID,
	).Scan(
		&rw.UserID,
		&rw.CompletedTransactions,
		&rw.DiscountPercentage,
		&rw.RewardUnlocked,
		&rw.RewardUsed,
		&last,
		&rw.UpdatedAt,
	)
	if err != nil {
		return models.UserReward{}, err
	}
	if last.Valid {
		rw.LastRewardDate = &last.Time
	}
	return rw, nil
}
