package cli

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zombar/plagcheck/internal/models"
)

// execute runs the root command with args and stdin, returning stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	color.NoColor = true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores flag defaults, since commands are package globals
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, want := range []string{"score", "rephrase", "version"} {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}
}

func TestVersionOutput(t *testing.T) {
	// version vars are set via ldflags; in tests they have their defaults
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "plagcheck dev (commit none, built unknown)\n", out)
}

func TestScoreFromStdin(t *testing.T) {
	out, err := execute(t, "The cat sat on the mat.", "score", "--breakdown")
	require.NoError(t, err)

	assert.Contains(t, out, "Plagiarism score: 10 (Very Low)")
	assert.Contains(t, out, "Words: 6  Sentences: 1  Unique words: 5  Avg words/sentence: 6.0")
	assert.Contains(t, out, "short_text")
}

func TestScoreFileAsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	text := "According to Wikipedia [1], the Battle of Waterloo in 1815 resulted in defeat."
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	out, err := execute(t, "", "score", path, "--format", "json")
	require.NoError(t, err)

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 66.0, result.PlagiarismScore)
	assert.Equal(t, "High", result.PlagiarismLevel)
}

func TestScoreDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="x"><w:body><w:p><w:r>` +
		`<w:t>According to Wikipedia [1], the Battle of Waterloo in 1815 resulted in defeat.</w:t>` +
		`</w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "essay.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	out, err := execute(t, "", "score", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Plagiarism score: 66 (High)")
}

func TestRephraseSeededIsReproducible(t *testing.T) {
	text := "The significant research shows excellent results. The method is important. We analyze the data."
	args := []string{"rephrase", "-", "--seed", "7", "--style", "casual", "--creativity", "high", "--format", "json"}

	first, err := execute(t, text, args...)
	require.NoError(t, err)
	resetFlags(rootCmd)
	second, err := execute(t, text, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	var result models.SubstitutionResult
	require.NoError(t, json.Unmarshal([]byte(first), &result))
	assert.Equal(t, text, result.OriginalText)
	assert.Equal(t, "casual", result.Style)
	assert.Equal(t, "high", result.Creativity)
}

func TestRephraseTextOutput(t *testing.T) {
	out, err := execute(t, "The significant research shows excellent results.", "rephrase", "--seed", "3", "--changes")
	require.NoError(t, err)

	assert.Contains(t, out, "words changed (style academic, creativity medium)")
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"unknown style", "Some text to rephrase.", []string{"rephrase", "--style", "pirate"}, "unknown style"},
		{"unknown creativity", "Some text to rephrase.", []string{"rephrase", "--creativity", "wild"}, "unknown creativity"},
		{"unknown format", "Some text to score.", []string{"score", "--format", "xml"}, "unknown format"},
		{"empty input", "   \n", []string{"score"}, "input text is empty"},
		{"missing file", "", []string{"score", filepath.Join(t.TempDir(), "missing.txt")}, "reading input"},
		{"too many args", "", []string{"score", "a", "b"}, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
