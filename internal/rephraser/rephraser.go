package rephraser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zombar/plagcheck/internal/models"
	"github.com/zombar/plagcheck/internal/tokenize"
)

const (
	starterProbability    = 0.3
	transitionProbability = 0.4
)

// Rephraser rewrites text by random synonym substitution. The synonym and
// phrase tables are read-only, so a Rephraser is safe for concurrent use
// whenever its Source is.
type Rephraser struct {
	rnd         Source
	restructure bool
}

// Option configures a Rephraser
type Option func(*Rephraser)

// WithSource replaces the default entropy-seeded random source
func WithSource(src Source) Option {
	return func(r *Rephraser) {
		r.rnd = src
	}
}

// WithoutTransitions disables the pass that prepends transition words
func WithoutTransitions() Option {
	return func(r *Rephraser) {
		r.restructure = false
	}
}

// New creates a new Rephraser
func New(opts ...Option) *Rephraser {
	r := &Rephraser{
		rnd:         globalSource{},
		restructure: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rephrase substitutes synonyms sentence by sentence, optionally adds
// style-specific sentence starters and transitions, and reports every
// change it made
func (r *Rephraser) Rephrase(text string, style Style, creativity Creativity) models.SubstitutionResult {
	p := creativity.Probability()

	sentences := tokenize.Sentences(text)
	rephrased := make([]string, 0, len(sentences))
	changes := []models.Change{}

	for i, sentence := range sentences {
		s, sentenceChanges := r.rephraseSentence(i, sentence, style, p)
		rephrased = append(rephrased, s)
		changes = append(changes, sentenceChanges...)
	}

	if r.restructure {
		rephrased = r.addTransitions(rephrased, style)
	}
	out := strings.Join(rephrased, " ")

	return models.SubstitutionResult{
		RephrasedText:   out,
		OriginalText:    text,
		OriginalLength:  len(strings.Fields(text)),
		RephrasedLength: len(strings.Fields(out)),
		WordsChanged:    CountWordChanges(changes),
		ChangesMade:     changes,
		Style:           string(style),
		Creativity:      string(creativity),
	}
}

// rephraseSentence substitutes eligible tokens of one sentence and may
// prepend a sentence starter
func (r *Rephraser) rephraseSentence(index int, sentence string, style Style, p float64) (string, []models.Change) {
	tokens := tokenize.Tokenize(sentence)
	var changes []models.Change

	for i, tok := range tokens {
		lower := strings.ToLower(tok.Text)
		if !tokenize.IsAlpha(tok.Text) || tokenize.IsStopWord(lower) {
			continue
		}
		candidates, ok := synonyms[lower]
		if !ok || r.rnd.Float64() >= p {
			continue
		}

		replacement := candidates[r.rnd.IntN(len(candidates))]
		if startsUpper(tok.Text) {
			replacement = capitalize(replacement)
		}
		tokens[i].Text = replacement
		changes = append(changes, models.Change{
			Original:    tok.Text,
			Replacement: replacement,
			Position:    i,
			Sentence:    index,
		})
	}

	out := tokenize.Join(tokens)

	if starters, ok := sentenceStarters[style]; ok && r.rnd.Float64() < starterProbability {
		starter := starters[r.rnd.IntN(len(starters))]
		out = starter + " " + strings.ToLower(out)
		changes = append(changes, models.Change{
			Original:    models.SentenceStartMarker,
			Replacement: starter,
			Position:    -1,
			Sentence:    index,
		})
	}

	return out, changes
}

// addTransitions prepends a transition word to sentences after the first.
// Unknown styles use the formal transitions.
func (r *Rephraser) addTransitions(sentences []string, style Style) []string {
	if len(sentences) <= 1 {
		return sentences
	}

	choices, ok := transitions[style]
	if !ok {
		choices = transitions[StyleFormal]
	}

	out := make([]string, len(sentences))
	out[0] = sentences[0]
	for i := 1; i < len(sentences); i++ {
		out[i] = sentences[i]
		if r.rnd.Float64() < transitionProbability {
			out[i] = choices[r.rnd.IntN(len(choices))] + " " + sentences[i]
		}
	}
	return out
}

// CountWordChanges counts word substitutions, ignoring sentence starters
func CountWordChanges(changes []models.Change) int {
	n := 0
	for _, c := range changes {
		if c.Original != models.SentenceStartMarker {
			n++
		}
	}
	return n
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
