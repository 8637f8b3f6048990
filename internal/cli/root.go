// Package cli implements the torqueui command line: a standalone driver for
// the blueprint listing and reserve-form pipeline, fed by a listing payload
// instead of a live editor host.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
)

var rootCmd = &cobra.Command{
	Use:   "torqueui",
	Short: "Render Torque blueprint listings and reserve-sandbox forms",
	Long: `torqueui drives the blueprint tree and reserve-form pipeline from the
command line. The listing payload normally produced by the host's
list_blueprints command is read from a file or stdin instead.`,
	SilenceUsage: true,
}

var (
	payloadFlag  string
	profilesFlag string
	verboseFlag  bool
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&payloadFlag, "payload", "p", "-", "listing payload file, or - for stdin")
	rootCmd.PersistentFlags().StringVar(&profilesFlag, "profiles", "", "profiles YAML file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(getListCmd())
	rootCmd.AddCommand(getFormCmd())
	rootCmd.AddCommand(getReserveCmd())
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verboseFlag {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// readPayload loads the listing payload from the --payload flag.
func readPayload() (string, error) {
	if payloadFlag == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read payload from stdin: %w", err)
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(payloadFlag)
	if err != nil {
		return "", fmt.Errorf("read payload: %w", err)
	}
	return string(raw), nil
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

// findSummary resolves a blueprint by raw or display name.
func findSummary(summaries []blueprint.Summary, name string) (blueprint.Summary, error) {
	for _, summary := range summaries {
		if summary.Name == name || summary.DisplayName() == name {
			return summary, nil
		}
	}
	return blueprint.Summary{}, fmt.Errorf("blueprint %q not found in payload", name)
}

func truncate(text string, width int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) <= width {
		return text
	}
	return text[:width-1] + "…"
}
