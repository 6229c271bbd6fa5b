package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ebaypricing/models"
	"ebaypricing/services"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [query...]",
	Short: "Look up sold listings for a product once and print a summary",
	Long: `lookup resolves a search keyword the same way the HTTP endpoint does:
a query given as arguments is used as-is, otherwise brand and model are
extracted from --text-file ("-" reads stdin), with --brand and --model
taking precedence over anything found in the text.`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("app-id", "", "eBay App ID (defaults to EBAY_APP_ID)")
	lookupCmd.Flags().String("brand", "", "Brand, overrides extraction")
	lookupCmd.Flags().String("model", "", "Model, overrides extraction")
	lookupCmd.Flags().String("text-file", "", "File with a free-text product description, - for stdin")
	lookupCmd.Flags().Bool("raw", false, "Print the annotated eBay response instead of a summary")
	lookupCmd.Flags().Bool("dry-run", false, "Only print the resolved keyword")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	appID, _ := flags.GetString("app-id")
	brand, _ := flags.GetString("brand")
	model, _ := flags.GetString("model")
	textFile, _ := flags.GetString("text-file")
	raw, _ := flags.GetBool("raw")
	dryRun, _ := flags.GetBool("dry-run")

	if appID == "" {
		appID = cfg.EbayAppID
	}

	text, err := readAnalysisText(cmd.InOrStdin(), textFile)
	if err != nil {
		return err
	}

	req := models.PricingRequest{
		SearchQuery:  strings.Join(args, " "),
		AnalysisText: text,
		ManualBrand:  brand,
		ManualModel:  model,
		APIKey:       appID,
	}

	out := cmd.OutOrStdout()
	if dryRun {
		keyword := services.ResolveKeyword(req.SearchQuery, req.AnalysisText, req.ManualBrand, req.ManualModel)
		if keyword == "" {
			return fmt.Errorf("%s: %s", services.ErrUnresolved, "pass brand and model with --brand/--model")
		}
		fmt.Fprintln(out, keyword)
		return nil
	}

	ctx := logger.WithContext(cmd.Context())
	pricing := services.NewPricingService(services.NewEbayClient(cfg.FindingURL, cfg.EbayTimeout))
	result, err := pricing.Lookup(ctx, req)
	if err != nil {
		return err
	}

	if raw {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Document)
	}

	summary, err := services.SummarizeListings(result.Keyword, result.Document)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, services.FormatSummary(summary))
	return nil
}

func readAnalysisText(stdin io.Reader, path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}
}
