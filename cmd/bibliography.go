package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-libraries/disseminate/bib"
	"github.com/meridian-libraries/disseminate/bibmap"
	"github.com/meridian-libraries/disseminate/metadata"
	"github.com/meridian-libraries/disseminate/style"
)

var (
	bibStyles []string
	bibFormat string
)

var bibliographyCmd = &cobra.Command{
	Use:   "bibliography <item-file>",
	Short: "Render an item's citation in one or more styles",
	Long: `Map an item's metadata to a bibliographic record and render it with
the requested citation styles.

Examples:
  disseminate bibliography item.yaml
  disseminate bibliography item.yaml --styles apa,ieee,bibtex
  disseminate bibliography item.yaml --styles chicago --format html`,
	Args: cobra.ExactArgs(1),
	RunE: runBibliography,
}

func init() {
	bibliographyCmd.Flags().StringSliceVarP(&bibStyles, "styles", "s", nil, "Citation styles to render (default: configured styles)")
	bibliographyCmd.Flags().StringVarP(&bibFormat, "format", "f", "text", "Output format (text, html)")
}

func runBibliography(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := style.ParseOutputFormat(bibFormat)
	if err != nil {
		return err
	}

	item, err := metadata.LoadItem(args[0])
	if err != nil {
		return err
	}

	profile := bibmap.Default()
	if cfg.CitationProfile != "" {
		if profile, err = bibmap.Load(cfg.CitationProfile); err != nil {
			return err
		}
	}

	styles := bibStyles
	if len(styles) == 0 {
		styles = cfg.Styles
	}

	rec := bib.BuildRecord(item, profile)
	entries, err := style.Bibliographies(rec, styles, format)
	if err != nil {
		return err
	}

	for i, e := range entries {
		if len(entries) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("[%s]\n", e.Style)
		}
		fmt.Println(e.Formatted)
	}
	return nil
}
