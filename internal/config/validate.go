package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Media.MaxAudioBytes <= 0 {
		return fmt.Errorf("media.max_audio_bytes must be > 0 (got %d)", c.Media.MaxAudioBytes)
	}
	if !strings.HasPrefix(c.Media.PublicPrefix, "/") || !strings.HasSuffix(c.Media.PublicPrefix, "/") {
		return fmt.Errorf("media.public_prefix must start and end with '/' (got %q)", c.Media.PublicPrefix)
	}
	if err := c.Drafts.validate(); err != nil {
		return fmt.Errorf("drafts: %w", err)
	}
	if err := c.Browse.validate(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if c.Preferences.LanguageCookie == "" || c.Preferences.ModeCookie == "" {
		return fmt.Errorf("preferences: cookie names must not be empty")
	}
	if c.Preferences.LanguageCookie == c.Preferences.ModeCookie {
		return fmt.Errorf("preferences: language and mode cookies must differ")
	}
	return nil
}

func (d *DraftsConfig) validate() error {
	if d.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %s)", d.TTL)
	}
	if d.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %s)", d.CleanupInterval)
	}
	if d.MaxPerUser <= 0 {
		return fmt.Errorf("max_per_user must be > 0 (got %d)", d.MaxPerUser)
	}
	return nil
}

func (b *BrowseConfig) validate() error {
	if b.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", b.PageSize)
	}
	if b.MaxPageSize < b.PageSize {
		return fmt.Errorf("max_page_size must be >= page_size (got %d < %d)", b.MaxPageSize, b.PageSize)
	}
	if b.MaxSearchLength <= 0 {
		return fmt.Errorf("max_search_length must be > 0 (got %d)", b.MaxSearchLength)
	}
	return nil
}

// SplitList splits a comma-separated setting into trimmed, non-empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
