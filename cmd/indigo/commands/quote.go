package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"indigo-pricing/internal/catalog"
	"indigo-pricing/internal/imposition"
	"indigo-pricing/internal/pricing"
	"indigo-pricing/internal/server"
)

var quoteInputPath string

var quoteCmd = &cobra.Command{
	Use:   "quote <product>",
	Short: "Compute a single quote from a JSON request",
	Long: `Compute one quote against the built-in catalog and pricing
configuration. The request body uses the same JSON shape as the HTTP API;
read it from a file with --input, or from stdin by default.

Products: flat-prints, folded-prints, booklets, notebooks, notepads,
posters, perfect-bound-books.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(args[0])
	},
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteInputPath, "input", "i", "-", "path to JSON request, or - for stdin")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(product string) error {
	var body []byte
	var err error
	if quoteInputPath == "-" {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(quoteInputPath)
	}
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	engine, err := pricing.NewEngine(
		catalog.NewCatalog(catalog.DefaultPaperStocks()),
		catalog.DefaultPricingConfig(),
		imposition.Calculator{},
	)
	if err != nil {
		return err
	}

	quote, err := server.QuoteProduct(engine, product, body)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(quote, "", "  ")
	if err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
