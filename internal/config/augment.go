package config

import "time"

// AugmentConfig controls how the text-generation service is reached. An
// empty APIKey disables every outbound call.
type AugmentConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Title   string
	Referer string
	Timeout time.Duration
}

// Enabled reports whether a credential is configured.
func (c AugmentConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAugment() AugmentConfig {
	return AugmentConfig{
		APIKey:  envOrDefault(envAugmentKey, ""),
		Model:   envOrDefault(envAugmentModel, defaultAugmentModel),
		BaseURL: envOrDefault(envAugmentURL, defaultAugmentBaseURL),
		Title:   envOrDefault(envAugmentTitle, ""),
		Referer: envOrDefault(envAugmentRefer, ""),
		Timeout: durationEnvOrDefault(envAugmentTimeout, defaultAugmentTimeout),
	}
}
