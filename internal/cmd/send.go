package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge/pkg/dispatch"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

var sendIndex int

var sendCmd = &cobra.Command{
	Use:   "send <template-id>",
	Short: "Dispatch a template's batch",
	Long: `Send establishes one authenticated session and delivers a personalized
message to every recipient of the template, in list order, pausing the
configured delay between sends. Each recipient's outcome is reported as soon
as it is known; one recipient's failure never stops the rest of the batch.

With --index only that one recipient is sent, with no throttle pause; use it
to re-send recipients that failed in a previous run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		t, err := openStore(cfg).Get(args[0])
		if err != nil {
			return err
		}
		if len(t.Recipients) == 0 {
			return fmt.Errorf("template %s has no recipients", t.ID)
		}

		attachments, err := resolveAttachments(t.Attachments)
		if err != nil {
			return err
		}

		transport, err := newTransport(cfg)
		if err != nil {
			return err
		}

		batch := dispatch.Batch{
			Template:    t,
			Attachments: attachments,
			From:        mailer.Identity{Name: cfg.Sender.Name, Address: cfg.Sender.Email},
			Domain:      messageIDDomain(cfg),
		}

		d := dispatch.New(transport,
			dispatch.WithDelay(cfg.SendDelay()),
			dispatch.WithLogger(log.Default()),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if sendIndex >= 0 {
			return sendSingle(ctx, d, batch, sendIndex)
		}
		return sendBatch(ctx, d, batch)
	},
}

func init() {
	sendCmd.Flags().IntVar(&sendIndex, "index", -1, "send only the recipient at this index")
}

// sendBatch runs the full batch and renders the outcome stream live.
func sendBatch(ctx context.Context, d *dispatch.Dispatcher, batch dispatch.Batch) error {
	for ev := range d.Run(ctx, batch) {
		switch {
		case ev.Outcome != nil:
			o := ev.Outcome
			if o.Ok() {
				log.Info("sent", "index", o.Index, "to", o.Email)
			} else {
				log.Error("failed", "index", o.Index, "to", o.Email, "reason", o.Reason())
			}
		case ev.Summary != nil:
			s := ev.Summary
			switch {
			case s.Aborted:
				return fmt.Errorf("batch aborted: %w", s.Cause)
			case s.Cancelled:
				log.Warn("batch cancelled", "sent", s.Sent, "failed", s.Failed)
				return fmt.Errorf("batch cancelled")
			case s.Failed > 0:
				log.Warn("batch complete with failures", "sent", s.Sent, "failed", s.Failed)
				return fmt.Errorf("%d of %d sends failed", s.Failed, s.Sent+s.Failed)
			default:
				log.Info("batch complete", "sent", s.Sent)
			}
		}
	}
	return nil
}

// sendSingle delivers to one recipient through the same pipeline.
func sendSingle(ctx context.Context, d *dispatch.Dispatcher, batch dispatch.Batch, index int) error {
	recipients := batch.Template.Recipients
	if index >= len(recipients) {
		return fmt.Errorf("recipient index %d out of range (template has %d)", index, len(recipients))
	}

	rcpt := recipients[index]
	if err := d.Send(ctx, batch, rcpt); err != nil {
		return fmt.Errorf("send to %s: %w", rcpt.Email, err)
	}
	log.Info("sent", "index", index, "to", rcpt.Email)
	return nil
}
