package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge/pkg/template"
)

var (
	previewIndex int
	previewHTML  string
)

var previewCmd = &cobra.Command{
	Use:   "preview <template-id>",
	Short: "Render a template for one recipient without sending",
	Long: `Preview renders the template with one recipient's placeholder values
and prints the final subject and plain-text body. Rendering is pure, so the
preview is exactly what a send would produce; placeholders the recipient has
no value for stay visible as literal {name} tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		t, err := openStore(cfg).Get(args[0])
		if err != nil {
			return err
		}

		if previewIndex < 0 || previewIndex >= len(t.Recipients) {
			return fmt.Errorf("recipient index %d out of range (template has %d)", previewIndex, len(t.Recipients))
		}
		rcpt := t.Recipients[previewIndex]

		rendered := template.Render(t, rcpt.Args)
		fmt.Printf("To:      %s\n", rcpt.Email)
		fmt.Printf("Subject: %s\n\n", rendered.Subject)
		fmt.Println(rendered.Text)

		if previewHTML != "" {
			if err := os.WriteFile(previewHTML, []byte(rendered.HTML), 0644); err != nil {
				return fmt.Errorf("write HTML preview: %w", err)
			}
			fmt.Printf("\nHTML preview written to %s\n", previewHTML)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewIndex, "index", 0, "recipient index to render")
	previewCmd.Flags().StringVar(&previewHTML, "html", "", "also write the HTML body to this file")
}
