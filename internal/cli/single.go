package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/export"
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	singleAddress string
	singleFormat  string
	singleOutput  string
)

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Process a single address",
	Long: `Processes one address. The result is printed as JSON unless another
format is chosen, or written to --output in the chosen format.`,
	RunE: runSingle,
}

func init() {
	singleCmd.Flags().StringVarP(&singleAddress, "single", "s", "", "Single address to process")
	singleCmd.Flags().StringVarP(&singleFormat, "format", "f", constants.FormatJSON, "Output format (csv, json, excel)")
	singleCmd.Flags().StringVarP(&singleOutput, "output", "o", "", "Output file path (prints to console if not specified)")
	_ = singleCmd.MarkFlagRequired("single")
	rootCmd.AddCommand(singleCmd)
}

func runSingle(cmd *cobra.Command, _ []string) error {
	if err := validFormat(singleFormat); err != nil {
		return err
	}

	result := newPipeline().Process(singleAddress)
	out := cmd.OutOrStdout()

	if singleOutput != "" {
		if err := export.WriteResults(singleOutput, singleFormat, []business.FormattedAddress{result}, time.Now()); err != nil {
			return errors.Wrap(err, "failed to write result")
		}
		logger.Info("Result written", zap.String("path", singleOutput))
		fmt.Fprintf(out, "Result written to %s\n", singleOutput)
		return nil
	}

	if singleFormat == constants.FormatJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode result")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Original: %s\n", result.Original)
	fmt.Fprintf(out, "Formatted: %s\n", result.SingleLine)
	fmt.Fprintf(out, "Valid: %t\n", result.Valid)
	fmt.Fprintf(out, "Confidence: %.1f%%\n", result.Confidence)
	if len(result.Issues) > 0 {
		fmt.Fprintf(out, "Issues: %s\n", strings.Join(result.Issues, ", "))
	}
	return nil
}
