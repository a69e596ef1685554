// Package llm generates structured safety content through hosted
// language models. Four backends share one Provider interface, with
// decorators layering retries and event logging on top.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is a single backend. Implementations map their SDK's error
// and finish-reason vocabulary onto this package's types so callers
// never see SDK specifics.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the model requests will run on.
	ModelID() string
}

// Role says who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Request is one generation call. Safety briefings are single-turn, so
// Messages usually holds one user entry.
type Request struct {
	// System frames the model's role before the conversation.
	System string

	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mode and the reply is validated against it before being
	// returned. Nil leaves the output as free text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Schema is a JSON Schema the model must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "safety-briefing". It keys
	// the compiled-schema cache and names the schema to the APIs.
	Name string

	// Description tells the model what the structure represents.
	Description string

	Definition map[string]any
}

type Response struct {
	// Content is schema-validated JSON when the request carried a
	// Schema, otherwise the raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which may
	// be more specific than the one asked for.
	Model string

	// StopReason is "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// normalizeStop folds each SDK's finish-reason vocabulary into the two
// values callers act on. Anything unrecognized reads as a normal end.
func normalizeStop(reason string) string {
	switch reason {
	case "max_tokens", "MAX_TOKENS", "length":
		return "max_tokens"
	default:
		return "end"
	}
}
