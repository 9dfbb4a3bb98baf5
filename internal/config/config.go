// Package config loads the application configuration: transport settings,
// sender identity, throttle delay, and the template store location.
//
// Sources are layered, later winning: built-in defaults, an optional YAML
// file, then environment variables (with .env support for development).
// The result is an explicit value handed to the adapters at construction
// time; nothing in the engine reads configuration globally.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailmerge/pkg/mailer/resend"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/smtp"
)

// Provider names selectable via configuration.
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

// defaultSendDelay matches the original product default of two seconds
// between sends.
const defaultSendDelay = 2000

// Sender is the operator identity stamped on outgoing mail.
type Sender struct {
	Name  string `yaml:"name" env:"SENDER_NAME"`
	Email string `yaml:"email" env:"SENDER_EMAIL"`
}

// Config is the complete application configuration.
type Config struct {
	SMTP   smtp.Config   `yaml:"smtp"`
	Resend resend.Config `yaml:"resend"`
	Sender Sender        `yaml:"sender"`

	// Provider selects the transport adapter: "smtp" or "resend".
	Provider string `yaml:"provider" env:"MAILMERGE_PROVIDER"`

	// SendDelayMS is the throttle pause between batch sends, in
	// milliseconds. Zero disables throttling.
	SendDelayMS int `yaml:"send_delay_ms" env:"SEND_DELAY_MS"`

	// TemplatesFile is the JSON template store path.
	TemplatesFile string `yaml:"templates_file" env:"MAILMERGE_TEMPLATES"`
}

// SendDelay returns the throttle pause as a duration.
func (c *Config) SendDelay() time.Duration {
	return time.Duration(c.SendDelayMS) * time.Millisecond
}

// Load builds the configuration from defaults, the optional YAML file at
// path (empty path skips the file layer), and environment variables.
func Load(path string) (*Config, error) {
	// Best effort: a .env file is a development convenience, not a
	// requirement.
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		SMTP:          smtp.Config{Port: 587},
		Provider:      ProviderSMTP,
		SendDelayMS:   defaultSendDelay,
		TemplatesFile: "templates.json",
	}
}

// Validate checks that the selected provider has the settings a send
// requires. Called before dispatching, not at load time, so read-only
// commands work with partial configuration.
func (c *Config) Validate() error {
	if c.Sender.Email == "" {
		return fmt.Errorf("sender email is required")
	}
	if c.SendDelayMS < 0 {
		return fmt.Errorf("send_delay_ms must be non-negative")
	}

	switch c.Provider {
	case ProviderSMTP:
		if c.SMTP.Host == "" {
			return fmt.Errorf("smtp host is required")
		}
		if c.SMTP.Username == "" || c.SMTP.Password == "" {
			return fmt.Errorf("smtp credentials are required")
		}
	case ProviderResend:
		if c.Resend.APIKey == "" {
			return fmt.Errorf("resend API key is required")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	return nil
}
