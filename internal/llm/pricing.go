package llm

// ModelCost is what a model charges, in USD per million tokens.
type ModelCost struct {
	Input  float64
	Output float64
}

// Cost converts a token count into dollars.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.Input/1_000_000 +
		float64(outputTokens)*c.Output/1_000_000
}

// LookupCost finds pricing for a model ID. Unknown models return nil;
// callers should flag those totals as partial.
func LookupCost(modelID string) *ModelCost {
	if c, ok := priceTable[modelID]; ok {
		return &c
	}
	return nil
}

// priceTable covers the models the built-in aliases can reach plus
// their recent siblings. Prices checked against models.dev, 2026-02.
var priceTable = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-20241022":  {0.8, 4},
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-0":          {3, 15},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},

	// OpenAI
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	// Google
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}
