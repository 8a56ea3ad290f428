// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
	cartdom "github.com/Fizxxc/digital-store/internal/domain/cart"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
)

// CartHandler serves the storefront cart. Both endpoints act on the
// signed-in user's own cart; anonymous requests get 401.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	log.Printf("[CartHandler] method=%s path=%s", r.Method, r.URL.Path)

	if pathTail(r.URL.Path, "/cart") != "" {
		notFoundRoute(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) list(w http.ResponseWriter, r *http.Request) {
	id, ok := usecase.IdentityFrom(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	lines, err := h.uc.Lines(r.Context(), id.UID)
	if err != nil {
		writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(lines))
}

func (h *CartHandler) add(w http.ResponseWriter, r *http.Request) {
	id, _ := usecase.IdentityFrom(r.Context())

	// Quantity is a pointer so an omitted field defaults to 1 while an
	// explicit 0 still reaches the usecase and is rejected there.
	var req struct {
		ProductID string `json:"productId"`
		Quantity  *int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invalidJSON(w)
		return
	}
	qty := int64(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	// An empty uid falls through to ErrCartAuthRequired in the usecase.
	line, err := h.uc.AddLine(r.Context(), id.UID, req.ProductID, qty)
	if err != nil {
		writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

func writeCartErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrCartAuthRequired):
		code = http.StatusUnauthorized
	case errors.Is(err, productdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, usecase.ErrCartInsufficientStock):
		code = http.StatusConflict
	case errors.Is(err, cartdom.ErrInvalidQuantity),
		errors.Is(err, cartdom.ErrInvalidUserRef),
		errors.Is(err, cartdom.ErrInvalidProductRef):
		code = http.StatusBadRequest
	}
	writeErrorMsg(w, code, err.Error())
}
