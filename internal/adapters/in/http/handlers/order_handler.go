// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
	orderdom "github.com/Fizxxc/digital-store/internal/domain/order"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
)

// OrderHandler serves the /orders endpoints. Placement is open to any
// signed-in user; everything else needs the orders capability.
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	log.Printf("[OrderHandler] method=%s path=%s query=%s", r.Method, r.URL.Path, r.URL.RawQuery)

	tail := pathTail(r.URL.Path, "/orders")

	switch {

	// GET /orders
	case r.Method == http.MethodGet && tail == "":
		h.listAll(w, r)

	// GET /orders/recent?limit=5
	case r.Method == http.MethodGet && tail == "recent":
		h.listRecent(w, r)

	// GET /orders/search?q=
	case r.Method == http.MethodGet && tail == "search":
		h.search(w, r)

	// GET /orders/{id}
	case r.Method == http.MethodGet:
		h.get(w, r, tail)

	// POST /orders
	case r.Method == http.MethodPost && tail == "":
		h.place(w, r)

	// PATCH /orders/{id}
	case r.Method == http.MethodPatch && tail != "":
		h.setStatus(w, r, tail)

	// DELETE /orders/{id}
	case r.Method == http.MethodDelete && tail != "":
		h.delete(w, r, tail)

	default:
		notFoundRoute(w)
	}
}

func (h *OrderHandler) requireOrders(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := usecase.IdentityFrom(r.Context()); !ok {
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !usecase.CapabilitiesFrom(r.Context()).ManageOrders {
		forbidden(w, "admin role required")
		return false
	}
	return true
}

func (h *OrderHandler) listAll(w http.ResponseWriter, r *http.Request) {
	if !h.requireOrders(w, r) {
		return
	}

	list, err := h.uc.ListAll(r.Context())
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *OrderHandler) listRecent(w http.ResponseWriter, r *http.Request) {
	if !h.requireOrders(w, r) {
		return
	}

	limit := parseIntDefault(r.URL.Query().Get("limit"), 0)
	list, err := h.uc.ListRecent(r.Context(), limit)
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *OrderHandler) search(w http.ResponseWriter, r *http.Request) {
	if !h.requireOrders(w, r) {
		return
	}

	list, err := h.uc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	if !h.requireOrders(w, r) {
		return
	}

	o, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// place creates a pending order for the signed-in user ("buy now").
func (h *OrderHandler) place(w http.ResponseWriter, r *http.Request) {
	id, ok := usecase.IdentityFrom(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

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

	o, err := h.uc.Place(r.Context(), id.UID, req.ProductID, qty)
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) setStatus(w http.ResponseWriter, r *http.Request, id string) {
	if !h.requireOrders(w, r) {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invalidJSON(w)
		return
	}

	o, err := h.uc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if !h.requireOrders(w, r) {
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeOrderErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func writeOrderErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, orderdom.ErrNotFound), errors.Is(err, productdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, usecase.ErrOrderInsufficientStock):
		code = http.StatusConflict
	case errors.Is(err, usecase.ErrOrderInvalidArgument),
		errors.Is(err, orderdom.ErrInvalidStatus),
		errors.Is(err, orderdom.ErrInvalidProductRef),
		errors.Is(err, orderdom.ErrInvalidUserRef),
		errors.Is(err, orderdom.ErrInvalidTotal):
		code = http.StatusBadRequest
	}
	writeErrorMsg(w, code, err.Error())
}
