package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Host.validate(); err != nil {
		return fmt.Errorf("host: %w", err)
	}
	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if c.Server.Enabled && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("server: port must be in [1, 65535] (got %d)", c.Server.Port)
	}
	if c.Journal.MinConns > c.Journal.MaxConns {
		return fmt.Errorf("journal: min_conns (%d) must not exceed max_conns (%d)", c.Journal.MinConns, c.Journal.MaxConns)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log: format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}

func (h *HostConfig) validate() error {
	switch h.Mode {
	case HostModeBrowser, HostModeStatic:
	default:
		return fmt.Errorf("mode must be %s or %s (got %q)", HostModeBrowser, HostModeStatic, h.Mode)
	}
	if h.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be > 0 (got %v)", h.PollInterval)
	}
	if strings.TrimSpace(h.WordSelector) == "" {
		return fmt.Errorf("word_selector is required")
	}
	if strings.TrimSpace(h.CardSelector) == "" {
		return fmt.Errorf("card_selector is required")
	}
	if h.Mode == HostModeStatic && h.URL == "" {
		return fmt.Errorf("url is required in %s mode", HostModeStatic)
	}
	if h.URL != "" {
		if err := validateHTTPURL(h.URL); err != nil {
			return fmt.Errorf("url: %w", err)
		}
	}
	return nil
}

func (l *LookupConfig) validate() error {
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if strings.TrimSpace(l.Language) == "" {
		return fmt.Errorf("language is required")
	}
	if err := validateHTTPURL(l.GoogleBaseURL); err != nil {
		return fmt.Errorf("google_base_url: %w", err)
	}
	if err := validateHTTPURL(l.FreeDictBaseURL); err != nil {
		return fmt.Errorf("freedict_base_url: %w", err)
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
