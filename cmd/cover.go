package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridian-libraries/disseminate/cover"
	"github.com/meridian-libraries/disseminate/metadata"
)

var (
	coverOutput   string
	coverRenderer string
)

var coverCmd = &cobra.Command{
	Use:   "cover <item-file>",
	Short: "Render a standalone citation cover page",
	Long: `Render only the one-page cover document for an item, without merging
it onto anything. Useful for previewing layout and template changes.

Examples:
  disseminate cover item.yaml -o cover.pdf
  disseminate cover item.yaml --renderer template --config repo.yaml -o cover.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runCover,
}

func init() {
	coverCmd.Flags().StringVarP(&coverOutput, "output", "o", "", "Output file (default: stdout)")
	coverCmd.Flags().StringVar(&coverRenderer, "renderer", "", "Override the configured renderer (draw, template)")
}

func runCover(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if coverRenderer != "" {
		cfg.Renderer = strings.ToLower(coverRenderer)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	item, err := metadata.LoadItem(args[0])
	if err != nil {
		return err
	}

	renderer, err := cover.New(cfg)
	if err != nil {
		return err
	}

	crumb := cover.Breadcrumb{Community: " ", Collection: item.OwningCollection.Name}
	if len(item.Communities) > 0 {
		crumb.Community = item.Communities[0].Name
	}
	if crumb.Collection == "" {
		crumb.Collection = item.OwningCollection.Handle
	}

	pdf, err := renderer.Render(item, crumb)
	if err != nil {
		return err
	}
	return writeOutput(coverOutput, pdf)
}
