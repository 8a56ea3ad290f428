// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
)

// FirebaseAuthClient is an alias so router deps can take
// *middleware.FirebaseAuthClient without importing the SDK directly.
type FirebaseAuthClient = fbauth.Client

// Authenticator verifies "Authorization: Bearer <ID_TOKEN>" headers and
// attaches the identity plus its capability set to the request context.
//
// Two flavors:
//   - Optional: storefront routes; anonymous requests pass through.
//   - RequireAdmin: console routes; 401 without a valid token, 403 when
//     the profile's role does not grant the console.
type Authenticator struct {
	FirebaseAuth *FirebaseAuthClient
	Sessions     *usecase.AuthUsecase
}

// identify verifies the bearer token and returns the identity.
// ok is false when the header is missing or the token does not verify.
func (a *Authenticator) identify(r *http.Request) (usecase.Identity, bool) {
	if a == nil || a.FirebaseAuth == nil {
		return usecase.Identity{}, false
	}

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return usecase.Identity{}, false
	}
	idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if idToken == "" {
		return usecase.Identity{}, false
	}

	token, err := a.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
	if err != nil {
		log.Printf("[AuthMiddleware] token rejected path=%s: %v", r.URL.Path, err)
		return usecase.Identity{}, false
	}

	uid := strings.TrimSpace(token.UID)
	if uid == "" {
		return usecase.Identity{}, false
	}

	id := usecase.Identity{UID: uid}
	if emailRaw, ok := token.Claims["email"]; ok {
		if e, ok2 := emailRaw.(string); ok2 {
			id.Email = strings.TrimSpace(e)
		}
	}
	return id, true
}

// Optional authenticates when a bearer token is present and otherwise lets
// the request through as an anonymous visitor. Storefront reads need no
// identity; cart writes check it themselves and answer 401 via the usecase.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := a.identify(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := usecase.WithIdentity(r.Context(), id)
		if a.Sessions != nil {
			s := a.Sessions.SessionFor(ctx, id)
			ctx = usecase.WithCapabilities(ctx, usecase.CapabilitiesFor(s.Role))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admin identities
// with 403. A failed role lookup counts as non-admin, never as an error.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a == nil || a.FirebaseAuth == nil || a.Sessions == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		id, ok := a.identify(r)
		if !ok {
			http.Error(w, "unauthorized: missing or invalid bearer token", http.StatusUnauthorized)
			return
		}

		s := a.Sessions.SessionFor(r.Context(), id)
		caps := usecase.CapabilitiesFor(s.Role)
		if !caps.Admin() {
			log.Printf("[AuthMiddleware] console denied path=%s uid=%s role=%s", r.URL.Path, id.UID, s.Role)
			http.Error(w, "forbidden: admin role required", http.StatusForbidden)
			return
		}

		ctx := usecase.WithIdentity(r.Context(), id)
		ctx = usecase.WithCapabilities(ctx, caps)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
