package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zombar/plagcheck/internal/analyzer"
	"github.com/zombar/plagcheck/internal/models"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file|-]",
	Short: "Score text for plagiarism risk",
	Long: `Score the input text for plagiarism risk and print the score, risk
level, text statistics, and the issues that contributed to the score.

Examples:
  plagcheck score essay.txt
  pbpaste | plagcheck score --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Bool("breakdown", false, "print the points each check contributed")
}

func runScore(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result := analyzer.New().Analyze(text)

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, result)
	}

	breakdown, _ := cmd.Flags().GetBool("breakdown")
	printScore(out, result, breakdown)
	return nil
}

var levelColors = map[models.RiskLevel]*color.Color{
	models.RiskVeryLow: color.New(color.FgGreen, color.Bold),
	models.RiskLow:     color.New(color.FgCyan),
	models.RiskMedium:  color.New(color.FgYellow, color.Bold),
	models.RiskHigh:    color.New(color.FgRed, color.Bold),
}

func printScore(w io.Writer, r models.AnalysisResult, breakdown bool) {
	levelColors[r.Level].Fprintf(w, "Plagiarism score: %g (%s)\n", r.PlagiarismScore, r.PlagiarismLevel)

	s := r.TextAnalysis
	fmt.Fprintf(w, "Words: %d  Sentences: %d  Unique words: %d  Avg words/sentence: %.1f\n",
		s.TotalWords, s.TotalSentences, s.UniqueWords, s.AvgWordsPerSentence)
	fmt.Fprintf(w, "Suspicious pattern types: %d\n", r.SuspiciousPatterns)

	if len(r.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	}
	if len(r.CommonPhrases) > 0 {
		fmt.Fprintln(w, "\nCommon phrases:")
		for _, phrase := range r.CommonPhrases {
			fmt.Fprintf(w, "  - %s\n", phrase)
		}
	}
	if breakdown && len(r.ScoreBreakdown) > 0 {
		fmt.Fprintln(w, "\nBreakdown:")
		for _, f := range r.ScoreBreakdown {
			fmt.Fprintf(w, "  %-26s +%d\n", f.Factor, f.Points)
		}
	}
}
