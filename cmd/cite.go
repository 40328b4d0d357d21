package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meridian-libraries/disseminate/disseminate"
	"github.com/meridian-libraries/disseminate/metadata"
)

var (
	citeOutput   string
	citeAdmin    bool
	citeMimeType string
	citeForce    bool
	citeStrict   bool
)

var citeCmd = &cobra.Command{
	Use:   "cite <item-file> <source-pdf>",
	Short: "Merge a citation cover page onto a PDF",
	Long: `Render an item's citation cover page and merge it with the source
document, exactly as the download path would.

The interception gate applies: disabled collections, administrator
requests and non-PDF sources pass the original through untouched. Use
--force to skip the gate. By default a render or merge failure falls
open and emits the original; --strict turns failures into errors.

Examples:
  disseminate cite item.yaml paper.pdf -o cited.pdf
  disseminate cite item.yaml paper.pdf --force -o cited.pdf
  disseminate cite item.yaml paper.pdf --strict > cited.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runCite,
}

func init() {
	citeCmd.Flags().StringVarP(&citeOutput, "output", "o", "", "Output file (default: stdout)")
	citeCmd.Flags().BoolVar(&citeAdmin, "admin", false, "Treat the request as an administrator download")
	citeCmd.Flags().StringVar(&citeMimeType, "mime", "application/pdf", "MIME type of the source bitstream")
	citeCmd.Flags().BoolVar(&citeForce, "force", false, "Skip the interception gate")
	citeCmd.Flags().BoolVar(&citeStrict, "strict", false, "Fail on render or merge errors instead of serving the original")
}

func runCite(cmd *cobra.Command, args []string) error {
	itemFile, sourceFile := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	item, err := metadata.LoadItem(itemFile)
	if err != nil {
		return err
	}

	svc, err := disseminate.NewService(cfg, disseminate.FileSource{})
	if err != nil {
		return err
	}

	source, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("reading source PDF: %w", err)
	}

	bs := disseminate.Bitstream{
		Name:      sourceFile,
		MimeType:  citeMimeType,
		SizeBytes: int64(len(source)),
	}

	var out []byte
	switch {
	case citeForce || citeStrict:
		if !citeForce && !svc.Eligible(item, bs, citeAdmin) {
			out = source
			break
		}
		out, err = svc.MakeCitedDocument(item, source)
		if err != nil {
			return err
		}
	default:
		out, _, err = svc.Disseminate(cmd.Context(), item, bs, citeAdmin)
		if err != nil {
			return err
		}
	}

	return writeOutput(citeOutput, out)
}

// writeOutput writes data to a file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
