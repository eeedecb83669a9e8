package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zombar/plagcheck/internal/models"
	"github.com/zombar/plagcheck/internal/rephraser"
)

var rephraseCmd = &cobra.Command{
	Use:   "rephrase [file|-]",
	Short: "Rewrite text with synonym substitution",
	Long: `Rewrite the input text by randomly replacing words with synonyms and
adding style-specific sentence starters and transitions.

Output differs between runs unless --seed is given.

Examples:
  plagcheck rephrase essay.txt --style formal --creativity high
  echo "The results are significant." | plagcheck rephrase --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRephrase,
}

func init() {
	rephraseCmd.Flags().StringP("style", "s", string(rephraser.DefaultStyle), "style: academic, formal, casual, simple")
	rephraseCmd.Flags().StringP("creativity", "c", string(rephraser.DefaultCreativity), "creativity: low, medium, high")
	rephraseCmd.Flags().Uint64("seed", 0, "random seed for reproducible output (0 uses a random seed)")
	rephraseCmd.Flags().Bool("changes", false, "list every substitution after the rephrased text")
}

func runRephrase(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	styleFlag, _ := cmd.Flags().GetString("style")
	style := rephraser.Style(strings.ToLower(styleFlag))
	if !style.Valid() {
		return fmt.Errorf("unknown style %q: must be one of academic, formal, casual, simple", styleFlag)
	}
	creativityFlag, _ := cmd.Flags().GetString("creativity")
	creativity := rephraser.Creativity(strings.ToLower(creativityFlag))
	if !creativity.Valid() {
		return fmt.Errorf("unknown creativity %q: must be one of low, medium, high", creativityFlag)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var opts []rephraser.Option
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		opts = append(opts, rephraser.WithSource(rephraser.NewSeededSource(seed)))
	}
	result := rephraser.New(opts...).Rephrase(text, style, creativity)

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, result)
	}

	showChanges, _ := cmd.Flags().GetBool("changes")
	printRephrase(out, result, showChanges)
	return nil
}

func printRephrase(w io.Writer, r models.SubstitutionResult, showChanges bool) {
	fmt.Fprintln(w, r.RephrasedText)
	fmt.Fprintf(w, "\n%d of %d words changed (style %s, creativity %s)\n",
		r.WordsChanged, r.OriginalLength, r.Style, r.Creativity)

	if !showChanges {
		return
	}
	for _, c := range r.ChangesMade {
		if c.Original == models.SentenceStartMarker {
			fmt.Fprintf(w, "  sentence %d: added %q\n", c.Sentence+1, c.Replacement)
			continue
		}
		fmt.Fprintf(w, "  sentence %d, token %d: %s -> %s\n", c.Sentence+1, c.Position, c.Original, c.Replacement)
	}
}
