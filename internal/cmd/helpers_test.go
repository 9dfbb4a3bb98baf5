package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/internal/config"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/resend"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/smtp"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

func TestResolveAttachments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "terms.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF payload"), 0644))

	attachments, err := resolveAttachments([]template.AttachmentRef{
		{Name: "terms.pdf", Path: path},
	})
	require.NoError(t, err)

	require.Len(t, attachments, 1)
	assert.Equal(t, "terms.pdf", attachments[0].Filename)
	assert.Equal(t, []byte("%PDF payload"), attachments[0].Content)
}

func TestResolveAttachments_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := resolveAttachments([]template.AttachmentRef{
		{Name: "gone.pdf", Path: filepath.Join(t.TempDir(), "gone.pdf")},
	})
	require.Error(t, err)
}

func TestResolveAttachments_Empty(t *testing.T) {
	t.Parallel()

	attachments, err := resolveAttachments(nil)
	require.NoError(t, err)
	assert.Nil(t, attachments)
}

func TestNewTransport(t *testing.T) {
	t.Parallel()

	smtpTr, err := newTransport(&config.Config{Provider: config.ProviderSMTP})
	require.NoError(t, err)
	assert.IsType(t, &smtp.Transport{}, smtpTr)

	resendTr, err := newTransport(&config.Config{Provider: config.ProviderResend})
	require.NoError(t, err)
	assert.IsType(t, &resend.Transport{}, resendTr)

	_, err = newTransport(&config.Config{Provider: "pigeon"})
	require.Error(t, err)
}

func TestMessageIDDomain(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Provider: config.ProviderSMTP}
	cfg.SMTP.Host = "smtp.example.com"
	assert.Equal(t, "smtp.example.com", messageIDDomain(cfg))

	assert.Equal(t, "mailmerge.local", messageIDDomain(&config.Config{Provider: config.ProviderResend}))
}
