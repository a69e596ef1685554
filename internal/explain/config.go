package explain

// Config bounds briefing generation. The low default temperature keeps
// hazard wording consistent between runs.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0.3}
}
