package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zombar/plagcheck/internal/document"
)

var rootCmd = &cobra.Command{
	Use:   "plagcheck",
	Short: "Heuristic plagiarism risk scoring and synonym rephrasing",
	Long: `plagcheck scores text for plagiarism risk using lexical heuristics and
rewrites text by random synonym substitution.

Text is read from the named file, or from stdin when the file is "-" or
omitted. PDF and DOCX files are converted to plain text first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	},
}

var (
	colorError = color.New(color.FgRed, color.Bold)
	colorWarn  = color.New(color.FgYellow)
)

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format: text, json")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(rephraseCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		colorError.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// outputFormat returns the validated --format value
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be text or json", format)
	}
}

// readInput returns the text named by args, reading stdin for "-" or no
// argument
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var text string
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		text = string(data)
	} else {
		doc, err := document.Read(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if doc.SkippedPages > 0 {
			colorWarn.Fprintf(cmd.ErrOrStderr(), "Warning: %d of %d pages had no readable text\n",
				doc.SkippedPages, doc.Pages)
		}
		text = doc.Text
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("input text is empty")
	}
	return text, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
