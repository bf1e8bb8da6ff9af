package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/address-cleanser/address-cleanser/internal/config"
	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/export"
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/address-cleanser/address-cleanser/internal/services"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchInput          string
	batchOutput         string
	batchFormat         string
	batchAddressColumn  string
	batchAddressColumns string
	batchAutoDetect     bool
	batchReport         string
	batchChunkSize      int
	batchWorkers        int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process addresses from a CSV or Excel file in batch",
	Long: `Reads addresses from a .csv or .xlsx file and writes cleaned results
as CSV, JSON or Excel. Addresses come from --address-column, from several
columns combined with --address-columns, or from columns found by
--auto-detect.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input file path (.csv or .xlsx)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output file path")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", constants.FormatCSV, "Output format (csv, json, excel)")
	batchCmd.Flags().StringVarP(&batchAddressColumn, "address-column", "c", "address", "Name of the address column")
	batchCmd.Flags().StringVar(&batchAddressColumns, "address-columns", "", "Comma separated columns to combine into one address")
	batchCmd.Flags().BoolVar(&batchAutoDetect, "auto-detect", false, "Detect address columns by name")
	batchCmd.Flags().StringVarP(&batchReport, "report", "r", "", "Validation report file path (optional)")
	batchCmd.Flags().IntVar(&batchChunkSize, "chunk-size", 0, "Process addresses in chunks of this size (default from config, 1000)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent workers (default from config, GOMAXPROCS)")
	_ = batchCmd.MarkFlagRequired("input")
	_ = batchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if err := validFormat(batchFormat); err != nil {
		return err
	}
	chunkSize := cfg.Batch.ChunkSize
	if batchChunkSize != 0 {
		chunkSize = batchChunkSize
	}
	if chunkSize < 1 {
		return errors.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	workers := cfg.Batch.Workers
	if batchWorkers != 0 {
		workers = batchWorkers
	}

	logger.Info("Reading input file", zap.String("path", batchInput))
	table, err := export.ReadFile(batchInput)
	if err != nil {
		return err
	}

	addresses, err := selectAddresses(table)
	if err != nil {
		return err
	}
	logger.Info("Found addresses to process", zap.Int("count", len(addresses)))

	processor := services.NewBatchProcessor(newPipeline(), workers, logger.Log)
	results, err := processChunks(cmd.Context(), processor, addresses, chunkSize)
	if err != nil {
		return err
	}

	now := time.Now()
	logger.Info("Writing output", zap.String("path", batchOutput), zap.String("format", batchFormat))
	if err := export.WriteResults(batchOutput, batchFormat, results, now); err != nil {
		return err
	}
	if batchReport != "" {
		logger.Info("Writing validation report", zap.String("path", batchReport))
		if err := export.WriteReportFile(batchReport, results, now); err != nil {
			return err
		}
	}

	stats := export.CalculateStats(results)
	logger.Info("Processing complete",
		zap.Int("total_processed", stats.TotalProcessed),
		zap.Int("successful", stats.Successful),
		zap.Float64("success_rate", stats.SuccessRate),
	)
	fmt.Fprintf(cmd.OutOrStdout(),
		"Processing complete. %d addresses processed, %d successful (%v%% success rate)\n",
		stats.TotalProcessed, stats.Successful, stats.SuccessRate)
	return nil
}

func selectAddresses(table *export.Table) ([]string, error) {
	switch {
	case batchAddressColumns != "":
		return table.CombineColumns(config.SplitList(batchAddressColumns))
	case batchAutoDetect:
		detected := export.DetectAddressColumns(table.Headers)
		if len(detected) == 0 {
			return nil, errors.Errorf("no address columns detected (available columns: %v)", table.Headers)
		}
		logger.Info("Detected address columns", zap.Strings("columns", detected))
		if len(detected) == 1 {
			col, _ := table.Column(detected[0])
			return table.Values(col), nil
		}
		return table.CombineColumns(detected)
	default:
		if err := table.Require(batchAddressColumn); err != nil {
			return nil, err
		}
		col, _ := table.Column(batchAddressColumn)
		return table.Values(col), nil
	}
}

func processChunks(ctx context.Context, processor *services.BatchProcessor, addresses []string, chunkSize int) ([]business.FormattedAddress, error) {
	results := make([]business.FormattedAddress, 0, len(addresses))
	for start := 0; start < len(addresses); start += chunkSize {
		end := min(start+chunkSize, len(addresses))
		chunk, err := processor.Process(ctx, addresses[start:end])
		results = append(results, chunk...)
		if err != nil {
			return results, errors.Wrap(err, "batch processing interrupted")
		}
		logger.Debug("Processed chunk",
			zap.Int("done", end),
			zap.Int("total", len(addresses)),
		)
	}
	return results, nil
}
