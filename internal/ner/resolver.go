// Package ner provides the LLM-backed named-entity fallback used for
// candidates the gazetteer tiers could not resolve.
package ner

import (
	"context"
	"errors"
)

// Error variants for resolver failures. The detector treats all of them as
// recoverable: a failed call yields zero additional matches.
var (
	// ErrTimeout indicates the external call exceeded its deadline.
	ErrTimeout = errors.New("ner: call timed out")
	// ErrAuthFailure indicates the API rejected the credentials.
	ErrAuthFailure = errors.New("ner: authentication failed")
	// ErrMalformedResponse indicates the model reply could not be parsed.
	ErrMalformedResponse = errors.New("ner: malformed response")
	// ErrUnavailable indicates the service is unreachable or rate limited.
	ErrUnavailable = errors.New("ner: service unavailable")
)

// EntityResolver confirms which candidate strings are legitimate
// company/organization names mentioned in the text. Implementations must
// return only names drawn from the input candidate list, never invented
// ones.
type EntityResolver interface {
	ResolveOrganizations(ctx context.Context, text string, candidates []string) ([]string, error)
}
