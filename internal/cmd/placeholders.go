package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders <template-id>",
	Short: "List the distinct placeholders a template references",
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

		names := t.Placeholders()
		if len(names) == 0 {
			fmt.Println("no placeholders")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
