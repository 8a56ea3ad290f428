// internal/application/usecase/context.go
package usecase

import (
	"context"
	"strings"
)

// context key は string を使わず、衝突回避のため独自型を使用
type ctxKey struct{ name string }

var (
	ctxKeyIdentity     = ctxKey{name: "identity"}
	ctxKeyCapabilities = ctxKey{name: "capabilities"}
)

// Identity is the signed-in auth identity attached by the auth middleware.
type Identity struct {
	UID   string
	Email string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	if strings.TrimSpace(id.UID) == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFrom returns the identity and whether one is present.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	if !ok || strings.TrimSpace(id.UID) == "" {
		return Identity{}, false
	}
	return id, true
}

func WithCapabilities(ctx context.Context, caps Capabilities) context.Context {
	return context.WithValue(ctx, ctxKeyCapabilities, caps)
}

// CapabilitiesFrom returns the request's capability set.
// Absent value = anonymous visitor (no capabilities).
func CapabilitiesFrom(ctx context.Context) Capabilities {
	caps, _ := ctx.Value(ctxKeyCapabilities).(Capabilities)
	return caps
}
