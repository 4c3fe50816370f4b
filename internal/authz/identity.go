package authz

import "context"

// Identity is the requester identity supplied by the external auth provider
// (forwarded by the gateway as trusted headers). The service only reads it.
type Identity struct {
	UserID string
	Email  string
	Phone  string
	Role   string
}

type identityCtxKey struct{}

// WithIdentity кладёт identity запроса в контекст
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFromContext достаёт identity запроса из контекста
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	return id, ok
}
