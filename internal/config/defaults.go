package config

import "time"

// DefaultHomeMarkdown is the intro shown on the home page when none is configured.
const DefaultHomeMarkdown = `Browse and edit the **words** and **languages** held by the dictionary service.`

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBase:        "http://localhost:8026",
		Port:           5500,
		DataDir:        ".lexicon",
		NoticeDelay:    3 * time.Second,
		RequestTimeout: 15 * time.Second,
		Title:          "Lexicon",
		HomeMarkdown:   DefaultHomeMarkdown,
	}
}
