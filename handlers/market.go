package handlers

import (
	"net/http"

	"hackhub/models"

	"github.com/gorilla/mux"
)

type cartRequest struct {
	NFTID string `json:"nft_id"`
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func (h Handler) ListNFTsHandler(w http.ResponseWriter, r *http.Request) {
	q := query{r: r}
	filter := models.NFTFilter{
		CollectionID: q.get("collection"),
		Blockchain:   q.get("blockchain"),
		ListedOnly:   q.flag("listed"),
		Search:       q.get("search"),
		Limit:        q.integer("limit"),
		Offset:       q.integer("offset"),
	}
	if q.err != nil {
		respondWithError(w, http.StatusBadRequest, "BAD_REQUEST", q.err.Error())
		return
	}
	nfts, err := h.svc.ListNFTs(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if nfts == nil {
		nfts = []models.NFT{}
	}
	respondWithData(w, http.StatusOK, nfts)
}

func (h Handler) GetNFTHandler(w http.ResponseWriter, r *http.Request) {
	nft, err := h.svc.GetNFT(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, nft)
}

func (h Handler) ListCollectionsHandler(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if collections == nil {
		collections = []models.Collection{}
	}
	respondWithData(w, http.StatusOK, collections)
}

func (h Handler) GetCollectionHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCollection(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, c)
}

func (h Handler) CartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	cart, err := h.svc.Cart(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, cart)
}

func (h Handler) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	var req cartRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.NFTID == "" {
		respondWithError(w, http.StatusBadRequest, "VALIDATION_FAILED", "nft_id is required")
		return
	}
	if err := h.svc.AddToCart(r.Context(), c.UserID, req.NFTID); err != nil {
		h.fail(w, r, err)
		return
	}
	h.CartHandler(w, r)
}

func (h Handler) RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	if err := h.svc.RemoveFromCart(r.Context(), c.UserID, mux.Vars(r)["nftId"]); err != nil {
		h.fail(w, r, err)
		return
	}
	h.CartHandler(w, r)
}

func (h Handler) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	if err := h.svc.ClearCart(r.Context(), c.UserID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.PlaceOrder(r.Context(), c.UserID, req.PaymentMethod)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusCreated, res)
}

func (h Handler) CompleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	order, err := h.svc.CompleteOrder(r.Context(), c.UserID, mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, order)
}

func (h Handler) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	orders, err := h.svc.ListOrders(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	respondWithData(w, http.StatusOK, orders)
}

func (h Handler) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	order, err := h.svc.GetOrder(r.Context(), c.UserID, mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, order)
}

func (h Handler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	txs, err := h.svc.ListTransactions(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	respondWithData(w, http.StatusOK, txs)
}

func (h Handler) RewardsHandler(w http.ResponseWriter, r *http.Request) {
	c, ok := userClaims(w, r)
	if !ok {
		return
	}
	page, err := h.svc.Rewards(r.Context(), c.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, page)
}
