package requestdata

import "context"

type contextKey struct{}

// Caller is the optional authenticated identity attached by the auth
// middleware. A nil Caller means an anonymous request, which every public
// route accepts.
type Caller struct {
	UserID uint
	Name   string
}

func WithCaller(ctx context.Context, caller *Caller) context.Context {
	if caller == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, caller)
}

func GetCaller(ctx context.Context) *Caller {
	if ctx == nil {
		return nil
	}
	caller, _ := ctx.Value(contextKey{}).(*Caller)
	return caller
}
