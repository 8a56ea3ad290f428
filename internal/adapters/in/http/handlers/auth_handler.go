// internal/adapters/in/http/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
)

// AuthHandler serves session lookup and the registration flow.
// Error messages follow the storefront's Indonesian copy.
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) http.Handler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	log.Printf("[AuthHandler] method=%s path=%s", r.Method, r.URL.Path)

	tail := pathTail(r.URL.Path, "/auth")

	switch {

	// GET /auth/session
	case r.Method == http.MethodGet && tail == "session":
		h.session(w, r)

	// POST /auth/register
	case r.Method == http.MethodPost && tail == "register":
		h.register(w, r)

	default:
		notFoundRoute(w)
	}
}

// session resolves the caller's role for client-side redirects: the web
// client sends any admin to the console and everyone else to the store.
func (h *AuthHandler) session(w http.ResponseWriter, r *http.Request) {
	id, ok := usecase.IdentityFrom(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	s := h.uc.SessionFor(r.Context(), id)
	writeJSON(w, http.StatusOK, s)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var in usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		invalidJSON(w)
		return
	}

	u, err := h.uc.Register(r.Context(), in)
	if err != nil {
		writeAuthErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// localizeAuthErr maps the auth sentinels to the storefront's messages.
func localizeAuthErr(err error) (int, string, bool) {
	switch {
	case errors.Is(err, usecase.ErrAuthInvalidArgument):
		return http.StatusBadRequest, "Semua field harus diisi", true
	case errors.Is(err, usecase.ErrAuthPasswordMismatch):
		return http.StatusBadRequest, "Konfirmasi password tidak sama", true
	case errors.Is(err, usecase.ErrAuthPasswordTooShort):
		return http.StatusBadRequest, "Password minimal 6 karakter", true
	case errors.Is(err, usecase.ErrAuthInvalidEmail):
		return http.StatusBadRequest, "Email tidak valid", true
	case errors.Is(err, usecase.ErrAuthEmailAlreadyInUse):
		return http.StatusConflict, "Email sudah terdaftar", true
	case errors.Is(err, usecase.ErrAuthWeakPassword):
		return http.StatusBadRequest, "Password terlalu lemah", true
	case errors.Is(err, usecase.ErrAuthUserDisabled):
		return http.StatusForbidden, "Akun dinonaktifkan", true
	case errors.Is(err, usecase.ErrAuthUserNotFound),
		errors.Is(err, usecase.ErrAuthWrongPassword):
		return http.StatusUnauthorized, "Email atau password salah", true
	}
	return 0, "", false
}

func writeAuthErr(w http.ResponseWriter, err error) {
	if code, msg, ok := localizeAuthErr(err); ok {
		writeErrorMsg(w, code, msg)
		return
	}
	log.Printf("[AuthHandler] register failed: %v", err)
	writeErrorMsg(w, http.StatusBadGateway, "Registrasi gagal, coba lagi nanti")
}
