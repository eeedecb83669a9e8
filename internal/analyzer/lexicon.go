package analyzer

import "regexp"

// commonAcademicPhrases are stock phrases whose overuse suggests templated writing
var commonAcademicPhrases = []string{
	"in conclusion", "furthermore", "however", "moreover", "therefore",
	"according to", "as a result", "in addition", "on the other hand",
	"for example", "in other words", "it is important to note",
	"studies have shown", "research indicates", "it can be concluded",
	"first of all", "second of all", "last but not least", "to sum up",
	"in summary", "as mentioned above", "as stated previously",
}

// suspiciousPatterns capture citation markers, copy/paste vocabulary, URLs,
// copyright notices and bibliographic abbreviations
var suspiciousPatterns = compileAll(
	`\b(?:copy|copied|paste|pasted|copypaste)\b`,
	`\b(?:wikipedia|wiki)\b`,
	`\b(?:source|sources)\s*:`,
	`(?:retrieved|accessed)\s+(?:from|on)`,
	`\b(?:doi|isbn|url|http|https|www)\b`,
	`©|\bcopyright\b|\ball rights reserved\b`,
	`\b(?:reference|references|bibliography)\b`,
	`\[\d+\]|\(\d{4}\)`,
	`\bet al\b|\betal\b`,
	`\bpp?\.\s*\d+`,
	`\bvol\.\s*\d+|\bvolume\s*\d+`,
)

// encyclopediaIndicators are structural patterns typical of biographical and
// historical reference prose
var encyclopediaIndicators = compileAll(
	`\bis a\b.*\bthat\b`,
	`\bwas born\b.*\bin\b`,
	`\bis known for\b`,
	`\bis located in\b`,
	`\bis the capital of\b`,
	`\baccording to.*sources?\b`,
	`\bas of \d{4}\b`,
	`\bcitation needed\b`,
	`\b\d{4}\b.*\b\d{4}\b`,
	`\bBattle of\b`,
	`\bWar of\b`,
	`\bin \d{4}\b`,
	`\bdefeated\b.*\bat\b`,
	`\bled to\b.*\bof\b`,
	`\bis considered\b.*\bin history\b`,
	`\bhis legacy\b`,
	`\bare still studied\b`,
	`\bembodied in\b`,
	`\bforcing\b.*\bto\b`,
	`\bexiled\b.*\bto\b`,
	`\bdied of\b.*\bin \d{4}\b`,
)

// historicalPatterns count years, dates, titles and military/political vocabulary
var historicalPatterns = compileAll(
	`\b\d{4}s?\b`,
	`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`,
	`\b(?:Emperor|King|Queen|Prince|Princess|Duke|General|Admiral)\b`,
	`\b(?:Empire|Kingdom|Republic|Coalition|Peninsula|Treaty)\b`,
	`\b(?:invaded|conquered|defeated|victory|battle|war|peace)\b`,
	`\b(?:throne|crown|reign|rule|power|abdicate)\b`,
	`\b(?:army|military|naval|forces|troops|soldiers)\b`,
)

// formalConnectives matches connective words typical of formal prose
var formalConnectives = regexp.MustCompile(`(?i)\b(?:however|furthermore|moreover|nevertheless|consequently|subsequently|thereby|wherein|whereby)\b`)

// compileAll compiles case-insensitive patterns, panicking on invalid syntax
func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}
