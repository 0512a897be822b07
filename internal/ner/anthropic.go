package ner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/llumos/brand-detector/internal/normalize"
)

const systemPrompt = "You identify company and organization names. " +
	"Given a text and a list of candidate strings, respond with a strict JSON " +
	"array containing only those candidates that are legitimate company or " +
	"organization names mentioned in the text. Never add names that are not " +
	"in the candidate list. Respond with JSON only."

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxTokens = 1024
)

// AnthropicMessager is the slice of the Anthropic SDK the resolver uses.
// Narrowed to an interface so tests can fake the transport.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicResolver resolves unresolved candidates through the Anthropic
// Messages API with a constrained prompt.
type AnthropicResolver struct {
	messages AnthropicMessager
	model    anthropic.Model
	timeout  time.Duration
}

// Option configures an AnthropicResolver.
type Option func(*AnthropicResolver)

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(r *AnthropicResolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithMessager substitutes the SDK transport, used in tests.
func WithMessager(m AnthropicMessager) Option {
	return func(r *AnthropicResolver) { r.messages = m }
}

// NewAnthropicResolver creates a resolver using the given API key and model.
func NewAnthropicResolver(apiKey, model string, opts ...Option) (*AnthropicResolver, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ner: API key not configured")
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	r := &AnthropicResolver{
		messages: &client.Messages,
		model:    anthropic.Model(model),
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ResolveOrganizations asks the model which candidates are real organization
// names. The returned slice is filtered against the input list, so the
// resolver can never introduce a name the extractor did not produce.
func (r *AnthropicResolver) ResolveOrganizations(ctx context.Context, text string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt := buildPrompt(text, candidates)

	resp, err := r.messages.New(ctx, anthropic.MessageNewParams{
		Model:       r.model,
		MaxTokens:   defaultMaxTokens,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return nil, classifyTransportError(err)
	}

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}

	names, err := parseNameArray(sb.String())
	if err != nil {
		return nil, err
	}

	return filterToCandidates(names, candidates), nil
}

func buildPrompt(text string, candidates []string) string {
	var sb strings.Builder
	sb.WriteString("Candidates:\n")
	for _, c := range candidates {
		sb.WriteString("- ")
		sb.WriteString(c)
		sb.WriteByte('\n')
	}
	sb.WriteString("\nText:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nRespond with a JSON array of the candidate strings that are company or organization names.")
	return sb.String()
}

func parseNameArray(raw string) ([]string, error) {
	raw = stripCodeFences(strings.TrimSpace(raw))
	if raw == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return names, nil
}

// filterToCandidates drops any returned name not present in the input list.
func filterToCandidates(names, candidates []string) []string {
	allowed := make(map[string]string, len(candidates))
	for _, c := range candidates {
		allowed[normalize.Name(c)] = c
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		n := normalize.Name(name)
		original, ok := allowed[n]
		if !ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, original)
	}
	return out
}

func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if parts := strings.SplitN(s, "\n", 2); len(parts) == 2 {
		s = parts[1]
	}
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "authentication") || strings.Contains(msg, "api key"):
		return fmt.Errorf("%w: %v", ErrAuthFailure, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
