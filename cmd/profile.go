package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meridian-libraries/disseminate/bibmap"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect the citation mapping profile",
	Long: `Show the field mapping profile used to build bibliographic records.

The profile maps repository metadata fields to record targets and
repository work types to citation types. The built-in Dublin Core
profile applies unless the configuration points at a custom one.

Examples:
  disseminate profile show
  disseminate profile show --config repo.yaml`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile's mappings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		profile := bibmap.Default()
		if cfg.CitationProfile != "" {
			if profile, err = bibmap.Load(cfg.CitationProfile); err != nil {
				return err
			}
		}

		fmt.Printf("Profile: %s\n", profile.Name)
		if profile.Description != "" {
			fmt.Println(profile.Description)
		}
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FIELD\tTARGET")
		for _, field := range sortedKeys(profile.Fields) {
			fmt.Fprintf(w, "%s\t%s\n", field, profile.Fields[field])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(profile.Types) > 0 {
			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WORK TYPE\tCITATION TYPE")
			for _, t := range sortedKeys(profile.Types) {
				fmt.Fprintf(w, "%s\t%s\n", t, profile.Types[t])
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		fmt.Printf("\nDefault type: %s\n", profile.FallbackType())
		return nil
	},
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
}
