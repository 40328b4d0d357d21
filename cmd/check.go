package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meridian-libraries/disseminate/assemble"
	"github.com/meridian-libraries/disseminate/disseminate"
	"github.com/meridian-libraries/disseminate/metadata"
)

var (
	checkAdmin    bool
	checkMimeType string
)

var checkCmd = &cobra.Command{
	Use:   "check <item-file> <source-pdf>",
	Short: "Report whether a download would get a cover page",
	Long: `Evaluate the interception gate and the source document without
producing output, and report each decision.

Examples:
  disseminate check item.yaml paper.pdf
  disseminate check item.yaml paper.pdf --admin
  disseminate check item.yaml scan.tiff --mime image/tiff`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkAdmin, "admin", false, "Treat the request as an administrator download")
	checkCmd.Flags().StringVar(&checkMimeType, "mime", "application/pdf", "MIME type of the source bitstream")
}

func runCheck(cmd *cobra.Command, args []string) error {
	itemFile, sourceFile := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	item, err := metadata.LoadItem(itemFile)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("reading source PDF: %w", err)
	}

	bs := disseminate.Bitstream{
		Name:      sourceFile,
		MimeType:  checkMimeType,
		SizeBytes: int64(len(source)),
	}

	eligible := disseminate.Eligible(cfg, item, bs, checkAdmin)
	fmt.Printf("item:        %s\n", item.Handle)
	fmt.Printf("collection:  %s\n", item.OwningCollection.Handle)
	fmt.Printf("mime type:   %s (pdf: %v)\n", bs.MimeType, disseminate.IsPDF(bs.MimeType))
	fmt.Printf("admin:       %v\n", checkAdmin)
	fmt.Printf("eligible:    %v\n", eligible)

	switch err := assemble.New(cfg).Validate(source); {
	case err == nil:
		fmt.Println("source pdf:  valid")
	case errors.Is(err, assemble.ErrEncrypted):
		fmt.Println("source pdf:  encrypted, cannot be merged")
	default:
		fmt.Printf("source pdf:  invalid (%v)\n", err)
	}

	if !eligible {
		fmt.Println("\nThis download would serve the original document.")
		return nil
	}
	fmt.Println("\nThis download would get a citation cover page.")
	return nil
}
