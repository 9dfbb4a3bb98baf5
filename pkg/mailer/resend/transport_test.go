package resend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

func TestConnect_MissingAPIKey(t *testing.T) {
	t.Parallel()

	tr := New(Config{})

	_, err := tr.Connect(context.Background())
	require.ErrorIs(t, err, mailer.ErrAuthFailed)
}

func TestConnect_WithAPIKey(t *testing.T) {
	t.Parallel()

	tr := New(Config{APIKey: "re_test_key"})

	session, err := tr.Connect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NoError(t, session.Close())
}

func TestCustomHeaders_FiltersSynthesized(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"Reply-To":     "ops@example.com",
		"Message-ID":   "<abc-123@smtp.example.com>",
		"Date":         "Mon, 02 Jan 2006 15:04:05 -0700",
		"X-Campaign":   "welcome",
		"X-Batch-Note": "q3",
	}

	out := customHeaders(headers)

	assert.NotContains(t, out, "Reply-To", "Reply-To travels in the request field, not the header map")
	assert.NotContains(t, out, "Message-ID")
	assert.NotContains(t, out, "Date")
	assert.Equal(t, "welcome", out["X-Campaign"])
	assert.Equal(t, "q3", out["X-Batch-Note"])
}

func TestCustomHeaders_EmptyAfterFiltering(t *testing.T) {
	t.Parallel()

	out := customHeaders(map[string]string{
		"Reply-To":   "ops@example.com",
		"Message-ID": "<abc@x>",
		"Date":       "Mon, 02 Jan 2006 15:04:05 -0700",
	})

	assert.Nil(t, out)
}

func TestConvertAttachments(t *testing.T) {
	t.Parallel()

	in := []mailer.Attachment{
		{Filename: "terms.pdf", Content: []byte("%PDF")},
		{Filename: "notes.txt", Content: []byte("hello")},
	}

	out := convertAttachments(in)

	require.Len(t, out, 2)
	assert.Equal(t, "terms.pdf", out[0].Filename)
	assert.Equal(t, []byte("%PDF"), out[0].Content)
	assert.Equal(t, "notes.txt", out[1].Filename)
}
