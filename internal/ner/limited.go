package ner

import "context"

// Waiter blocks until an outbound call is permitted.
type Waiter interface {
	Wait(ctx context.Context) error
}

// LimitedResolver throttles an EntityResolver behind a rate limiter. A wait
// cut short by the context surfaces as ErrTimeout so callers treat it like
// any other transient NER failure.
type LimitedResolver struct {
	inner   EntityResolver
	limiter Waiter
}

// NewLimitedResolver wraps resolver with limiter.
func NewLimitedResolver(resolver EntityResolver, limiter Waiter) *LimitedResolver {
	return &LimitedResolver{inner: resolver, limiter: limiter}
}

// ResolveOrganizations waits for rate-limit clearance, then delegates.
func (r *LimitedResolver) ResolveOrganizations(ctx context.Context, text string, candidates []string) ([]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, ErrTimeout
	}
	return r.inner.ResolveOrganizations(ctx, text, candidates)
}
