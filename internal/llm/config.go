// Package llm provides the generative-model collaborator used to turn
// prompts into SVG markup. The core pipeline only ever sees the Generator
// interface; provider specifics stay behind it.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for quick drafts and minimal prompt variants.
	TierLite ModelTier = "lite"
	// TierStandard is the default tier for icon generation.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for creative and detailed variants that need more
	// instruction following.
	TierAdvanced ModelTier = "advanced"
)

// Provider represents a generative-model provider.
type Provider string

// Provider constants define supported providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, falling back through
// standard and lite when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
