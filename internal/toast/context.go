package toast

import (
	"context"

	inkerrors "github.com/alexisbeaulieu97/inkui/pkg/errors"
)

type providerKey struct{}

const providerName = "toast.Provider"

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider carried by ctx.
func FromContext(ctx context.Context) (*Provider, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	return p, ok && p != nil
}

// MustFromContext returns the provider carried by ctx and panics with a
// MissingContextError naming api when there is none.
func MustFromContext(ctx context.Context, api string) *Provider {
	p, ok := FromContext(ctx)
	if !ok {
		panic(inkerrors.NewMissingContextError(api, providerName))
	}
	return p
}

// Create adds a toast through the provider in ctx.
func Create(ctx context.Context, opts Options) string {
	return MustFromContext(ctx, "toast.Create").Create(opts)
}

// Remove drops a toast through the provider in ctx.
func Remove(ctx context.Context, id string) {
	MustFromContext(ctx, "toast.Remove").Remove(id)
}

// RemoveAll drops every toast of the provider in ctx.
func RemoveAll(ctx context.Context) {
	MustFromContext(ctx, "toast.RemoveAll").RemoveAll()
}

// Success creates a success toast through the provider in ctx.
func Success(ctx context.Context, message string) string {
	return MustFromContext(ctx, "toast.Success").Success(message, Options{})
}

// Error creates an error toast through the provider in ctx.
func Error(ctx context.Context, message string) string {
	return MustFromContext(ctx, "toast.Error").Error(message, Options{})
}

// Warning creates a warning toast through the provider in ctx.
func Warning(ctx context.Context, message string) string {
	return MustFromContext(ctx, "toast.Warning").Warning(message, Options{})
}

// Info creates an info toast through the provider in ctx.
func Info(ctx context.Context, message string) string {
	return MustFromContext(ctx, "toast.Info").Info(message, Options{})
}
