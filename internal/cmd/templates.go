package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge/pkg/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage stored templates",
}

var (
	createSubject string
	createBody    string
	createFormat  string
)

var templatesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new template",
	Long: `Create stores a new template under a fresh ID. Subject and body can be
set here or edited later by updating the store; recipients are added by
editing the template entry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		t := template.New(args[0])
		t.Subject = createSubject
		t.Body = createBody
		if createFormat != "" {
			switch template.Format(createFormat) {
			case template.FormatHTML, template.FormatMarkdown:
				t.BodyFormat = template.Format(createFormat)
			default:
				return fmt.Errorf("unknown body format %q (want %q or %q)",
					createFormat, template.FormatHTML, template.FormatMarkdown)
			}
		}

		if err := openStore(cfg).Put(t); err != nil {
			return err
		}

		fmt.Println(t.ID)
		return nil
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <template-id>",
	Short: "Delete a stored template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return openStore(cfg).Delete(args[0])
	},
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		templates, err := openStore(cfg).Load()
		if err != nil {
			return err
		}

		if len(templates) == 0 {
			fmt.Println("no templates stored")
			return nil
		}

		for _, t := range templates {
			fmt.Printf("%s  %-20s  %d recipient(s), %d attachment(s)\n",
				t.ID, t.Name, len(t.Recipients), len(t.Attachments))
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <template-id>",
	Short: "Show one template's subject, body, and recipients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		t, err := openStore(cfg).Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Name:    %s\n", t.Name)
		fmt.Printf("Subject: %s\n", t.Subject)
		fmt.Printf("Body:\n%s\n", t.Body)
		for _, a := range t.Attachments {
			fmt.Printf("Attachment: %s (%s)\n", a.Name, a.Path)
		}
		for i, r := range t.Recipients {
			fmt.Printf("Recipient %d: %s %v\n", i, r.Email, r.Args)
		}
		return nil
	},
}

func init() {
	templatesCreateCmd.Flags().StringVar(&createSubject, "subject", "", "initial subject text")
	templatesCreateCmd.Flags().StringVar(&createBody, "body", "", "initial body text")
	templatesCreateCmd.Flags().StringVar(&createFormat, "format", "", "body format: html or markdown")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	templatesCmd.AddCommand(templatesCreateCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
}
