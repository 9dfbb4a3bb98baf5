package smtp

// Config holds SMTP submission settings. Embed this in your app config for
// env parsing with caarlos0/env; yaml tags cover file-based configuration.
type Config struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`

	// SSL selects implicit TLS (usually port 465). When false the dialer
	// upgrades the connection with STARTTLS, which providers require on
	// the standard submission port 587.
	SSL bool `yaml:"ssl" env:"SMTP_SSL"`
}
