package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-libraries/disseminate/style"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available citation styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := style.Styles()
		if len(styles) == 0 {
			fmt.Println("No styles registered")
			return nil
		}

		fmt.Println("Available styles:")
		for _, name := range styles {
			s, _ := style.Get(name)
			desc := ""
			if s != nil && s.Description() != "" {
				desc = " - " + s.Description()
			}
			fmt.Printf("  %s%s\n", name, desc)
		}
		return nil
	},
}
