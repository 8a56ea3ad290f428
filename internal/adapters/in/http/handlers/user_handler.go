// internal/adapters/in/http/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

// UserHandler serves the console's /users endpoints. Every route needs the
// users capability.
//
// The self-delete guard lives HERE, not in the usecase: the access layer
// deletes whatever id it is handed, and only this surface compares the
// target against the caller.
type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) http.Handler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	log.Printf("[UserHandler] method=%s path=%s query=%s", r.Method, r.URL.Path, r.URL.RawQuery)

	if !h.requireUsers(w, r) {
		return
	}

	tail := pathTail(r.URL.Path, "/users")

	switch {

	// GET /users
	case r.Method == http.MethodGet && tail == "":
		h.list(w, r)

	// GET /users/search?q=
	case r.Method == http.MethodGet && tail == "search":
		h.search(w, r)

	// GET /users/{id}
	case r.Method == http.MethodGet:
		h.get(w, r, tail)

	// PUT /users/{id}
	case r.Method == http.MethodPut && tail != "":
		h.update(w, r, tail)

	// DELETE /users/{id}
	case r.Method == http.MethodDelete && tail != "":
		h.delete(w, r, tail)

	default:
		notFoundRoute(w)
	}
}

func (h *UserHandler) requireUsers(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := usecase.IdentityFrom(r.Context()); !ok {
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !usecase.CapabilitiesFrom(r.Context()).ManageUsers {
		forbidden(w, "admin role required")
		return false
	}
	return true
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListAll(r.Context())
	if err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *UserHandler) search(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsSlice(list))
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	u, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invalidJSON(w)
		return
	}

	u, err := h.uc.Update(r.Context(), id, req.Name, req.Role)
	if err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	caller, _ := usecase.IdentityFrom(r.Context())
	if caller.UID == id {
		forbidden(w, "cannot delete your own account")
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeUserErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func writeUserErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, userdom.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, usecase.ErrUserInvalidArgument),
		errors.Is(err, userdom.ErrInvalidName),
		errors.Is(err, userdom.ErrInvalidRole):
		code = http.StatusBadRequest
	}
	writeErrorMsg(w, code, err.Error())
}
