// internal/adapters/in/http/handlers/product_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
)

// maxImageBytes caps product image uploads.
const maxImageBytes = 5 << 20

// ProductHandler serves the /products endpoints. Reads are public; writes
// need the catalog capability attached by the auth middleware.
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

func NewProductHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	log.Printf("[ProductHandler] method=%s path=%s query=%s", r.Method, r.URL.Path, r.URL.RawQuery)

	tail := pathTail(r.URL.Path, "/products")

	switch {

	// GET /products and GET /products?category=app
	case r.Method == http.MethodGet && tail == "":
		h.list(w, r)

	// GET /products/search?q=
	case r.Method == http.MethodGet && tail == "search":
		h.search(w, r)

	// GET /products/{id}/related
	case r.Method == http.MethodGet && strings.HasSuffix(tail, "/related"):
		h.related(w, r, strings.TrimSuffix(tail, "/related"))

	// GET /products/{id}
	case r.Method == http.MethodGet:
		h.get(w, r, tail)

	// POST /products
	case r.Method == http.MethodPost && tail == "":
		h.create(w, r)

	// POST /products/{id}/image
	case r.Method == http.MethodPost && strings.HasSuffix(tail, "/image"):
		h.attachImage(w, r, strings.TrimSuffix(tail, "/image"))

	// PUT /products/{id}
	case r.Method == http.MethodPut && tail != "":
		h.update(w, r, tail)

	// DELETE /products/{id}
	case r.Method == http.MethodDelete && tail != "":
		h.delete(w, r, tail)

	default:
		notFoundRoute(w)
	}
}

// requireCatalog gates the write endpoints: 401 for anonymous visitors,
// 403 for signed-in users without the catalog capability.
func (h *ProductHandler) requireCatalog(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := usecase.IdentityFrom(r.Context()); !ok {
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !usecase.CapabilitiesFrom(r.Context()).ManageCatalog {
		forbidden(w, "admin role required")
		return false
	}
	return true
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	var (
		list []productdom.Product
		err  error
	)
	if category == "" {
		list, err = h.uc.ListAll(r.Context())
	} else {
		list, err = h.uc.ListByCategory(r.Context(), category)
	}
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *ProductHandler) search(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) related(w http.ResponseWriter, r *http.Request, id string) {
	list, err := h.uc.Related(r.Context(), id)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	if !h.requireCatalog(w, r) {
		return
	}

	var in usecase.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		invalidJSON(w)
		return
	}

	p, err := h.uc.Create(r.Context(), in)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	if !h.requireCatalog(w, r) {
		return
	}

	var in usecase.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		invalidJSON(w)
		return
	}

	p, err := h.uc.Update(r.Context(), id, in)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) attachImage(w http.ResponseWriter, r *http.Request, id string) {
	if !h.requireCatalog(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	p, err := h.uc.AttachImage(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if !h.requireCatalog(w, r) {
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeProductErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func writeProductErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, productdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, productdom.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, usecase.ErrCatalogNoImageStore):
		code = http.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrCatalogInvalidArgument),
		errors.Is(err, productdom.ErrInvalidName),
		errors.Is(err, productdom.ErrInvalidCategory),
		errors.Is(err, productdom.ErrInvalidPrice),
		errors.Is(err, productdom.ErrInvalidStock),
		errors.Is(err, productdom.ErrInvalidDescription),
		errors.Is(err, productdom.ErrInvalidDetails):
		code = http.StatusBadRequest
	}
	writeErrorMsg(w, code, err.Error())
}

// emptyAsSlice keeps list responses as [] instead of null.
func emptyAsSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
