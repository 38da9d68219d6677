package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/cutline"
	"github.com/tsawler/cutline/model"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input>",
	Short: "Parse an extracted-text document into standard records",
	Long: `Parse reads a text file of extracted table lines, parses it into
time-standard records, and writes them to stdout or to a file.

Flagged rows (lines and rows that failed classification or validation) are
logged, and can optionally be written to their own report file. The exit
status is non-zero only when input or output I/O fails; malformed content
never fails the command.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	parseCmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	parseCmd.Flags().String("flagged", "", "write flagged rows to this file")

	_ = viper.BindPFlag("output", parseCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", parseCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("flagged", parseCmd.Flags().Lookup("flagged"))
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]

	result, err := cutline.Open(input).Parse()
	if err != nil {
		logger.Error("parse failed", zap.String("input", input), zap.Error(err))
		return err
	}

	logger.Info("parsed document",
		zap.String("input", input),
		zap.Int("records", len(result.Records)),
		zap.Int("flagged", len(result.Flagged)),
	)
	for _, f := range result.Flagged {
		logger.Debug("flagged row",
			zap.Int("line", f.Line),
			zap.String("reason", f.Reason),
			zap.Strings("tokens", f.Tokens),
		)
	}

	data, err := encodeRecords(result.Records, viper.GetString("format"))
	if err != nil {
		return err
	}

	if out := viper.GetString("output"); out != "" {
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if path := viper.GetString("flagged"); path != "" && len(result.Flagged) > 0 {
		if err := os.WriteFile(path, []byte(cutline.FormatFlagged(result.Flagged)+"\n"), 0o644); err != nil {
			return fmt.Errorf("write flagged report: %w", err)
		}
	}

	return nil
}

// encodeRecords serializes records in the requested format.
func encodeRecords(records []model.Record, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(records, "", "  ")
	case "yaml":
		return yaml.Marshal(records)
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
