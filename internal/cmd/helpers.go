package cmd

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/mailmerge/internal/config"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/resend"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/smtp"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// openStore opens the template store at the configured location.
func openStore(cfg *config.Config) *template.Store {
	return template.NewStore(cfg.TemplatesFile)
}

// newTransport builds the transport adapter the configuration selects.
func newTransport(cfg *config.Config) (mailer.Transport, error) {
	switch cfg.Provider {
	case config.ProviderSMTP:
		return smtp.New(cfg.SMTP), nil
	case config.ProviderResend:
		return resend.New(cfg.Resend), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// resolveAttachments reads each attachment reference's payload from disk.
// Payloads are loaded once and shared read-only across the whole batch.
func resolveAttachments(refs []template.AttachmentRef) ([]mailer.Attachment, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	attachments := make([]mailer.Attachment, 0, len(refs))
	for _, ref := range refs {
		content, err := os.ReadFile(ref.Path)
		if err != nil {
			return nil, fmt.Errorf("read attachment %s: %w", ref.Path, err)
		}
		name := ref.Name
		if name == "" {
			name = "attachment"
		}
		attachments = append(attachments, mailer.Attachment{Filename: name, Content: content})
	}

	return attachments, nil
}

// messageIDDomain picks the domain generated Message-IDs are scoped to.
func messageIDDomain(cfg *config.Config) string {
	if cfg.Provider == config.ProviderSMTP && cfg.SMTP.Host != "" {
		return cfg.SMTP.Host
	}
	return "mailmerge.local"
}
