package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/zombar/plagcheck/internal/models"
	"github.com/zombar/plagcheck/internal/tokenize"
)

// Scoring thresholds and weights
const (
	suspiciousPatternWeight = 20
	structureIssueWeight    = 15
	encyclopediaWeight      = 8

	longSentenceWords     = 40
	shortSentenceWords    = 3
	shortSentenceFraction = 0.3

	shortTextWords      = 20
	repetitionFraction  = 0.1
	varianceThreshold   = 100
	maxCommonPhrases    = 10
	maxReportedPatterns = 3
	maxScore            = 100
	highRiskThreshold   = 60
	mediumRiskThreshold = 35
	lowRiskThreshold    = 15
)

// Analyzer computes heuristic plagiarism risk scores. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct{}

// New creates a new Analyzer
func New() *Analyzer {
	return &Analyzer{}
}

// features holds everything the scoring and issue passes need, computed once
type features struct {
	stats             models.TextStatistics
	uniqueRatio       float64
	suspiciousMatches []string // distinct matched text in order of first appearance
	suspiciousTypes   int
	structureIssues   []string
	commonPhrases     []string
	topWordCount      int
	variance          float64
	multiSentence     bool
	encyclopedia      int
	historical        int
	formal            int
}

// Analyze scores text for plagiarism risk. The result is a pure function of
// the input.
func (a *Analyzer) Analyze(text string) models.AnalysisResult {
	f := extractFeatures(text)

	breakdown := scoreFeatures(f)
	total := 0
	for _, factor := range breakdown {
		total += factor.Points
	}
	score := float64(min(total, maxScore))
	level := LevelForScore(score)

	return models.AnalysisResult{
		PlagiarismScore:    score,
		PlagiarismLevel:    level.String(),
		RiskColor:          level.Color(),
		Level:              level,
		TextAnalysis:       f.stats,
		SuspiciousPatterns: f.suspiciousTypes,
		Issues:             buildIssues(f),
		CommonPhrases:      f.commonPhrases,
		ScoreBreakdown:     breakdown,
	}
}

// LevelForScore maps a score to its risk level
func LevelForScore(score float64) models.RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return models.RiskHigh
	case score >= mediumRiskThreshold:
		return models.RiskMedium
	case score >= lowRiskThreshold:
		return models.RiskLow
	default:
		return models.RiskVeryLow
	}
}

func extractFeatures(text string) features {
	sentences := tokenize.Sentences(text)
	words := tokenize.Words(text)

	f := features{
		stats:         analyzeStatistics(words, sentences),
		multiSentence: len(sentences) > 1,
	}
	if f.stats.TotalWords > 0 {
		f.uniqueRatio = float64(f.stats.UniqueWords) / float64(f.stats.TotalWords)
	}

	f.suspiciousMatches, f.suspiciousTypes = detectSuspiciousPatterns(text)
	f.structureIssues = analyzeSentenceStructure(sentences)
	f.commonPhrases = detectCommonPhrases(text)
	f.topWordCount = topWordCount(words)
	f.variance = sentenceLengthVariance(sentences)
	f.encyclopedia = countDistinctMatches(text, encyclopediaIndicators)
	f.historical = countAllMatches(text, historicalPatterns)
	f.formal = len(formalConnectives.FindAllStringIndex(text, -1))

	return f
}

// scoreFeatures returns the points each check contributes, in check order.
// Checks that contribute nothing are omitted.
func scoreFeatures(f features) []models.ScoreFactor {
	breakdown := []models.ScoreFactor{}
	add := func(factor string, points int) {
		if points > 0 {
			breakdown = append(breakdown, models.ScoreFactor{Factor: factor, Points: points})
		}
	}

	switch {
	case f.stats.TotalWords == 0:
	case f.uniqueRatio < 0.3:
		add("vocabulary_diversity", 25)
	case f.uniqueRatio < 0.5:
		add("vocabulary_diversity", 15)
	case f.uniqueRatio < 0.7:
		add("vocabulary_diversity", 5)
	}

	add("suspicious_patterns", f.suspiciousTypes*suspiciousPatternWeight)
	add("sentence_structure", len(f.structureIssues)*structureIssueWeight)

	switch n := len(f.commonPhrases); {
	case n > 8:
		add("common_phrases", 25)
	case n > 5:
		add("common_phrases", 15)
	case n > 3:
		add("common_phrases", 10)
	}

	// The repetition check is only meaningful once a text is long enough for
	// a single word to stay under the threshold.
	total := f.stats.TotalWords
	if total >= shortTextWords && float64(f.topWordCount) > float64(total)*repetitionFraction {
		add("repetition", 15)
	}
	if total < shortTextWords {
		add("short_text", 10)
	}

	if f.multiSentence && f.variance > varianceThreshold {
		add("sentence_length_variance", 10)
	}

	add("encyclopedia_style", f.encyclopedia*encyclopediaWeight)

	switch {
	case f.historical > 15:
		add("historical_content", 25)
	case f.historical > 10:
		add("historical_content", 15)
	case f.historical > 5:
		add("historical_content", 10)
	}

	switch {
	case f.formal > 3:
		add("formal_tone", 15)
	case f.formal > 1:
		add("formal_tone", 8)
	}

	return breakdown
}

// buildIssues renders human-readable findings in detection order
func buildIssues(f features) []string {
	issues := []string{}

	if len(f.suspiciousMatches) > 0 {
		shown := f.suspiciousMatches[:min(len(f.suspiciousMatches), maxReportedPatterns)]
		issues = append(issues, "Suspicious patterns detected: "+strings.Join(shown, ", "))
	}

	issues = append(issues, f.structureIssues...)

	if len(f.commonPhrases) > 3 {
		issues = append(issues, fmt.Sprintf("Overuse of common academic phrases detected (%d phrases)", len(f.commonPhrases)))
	}

	switch {
	case f.encyclopedia > 3:
		issues = append(issues, fmt.Sprintf("Content resembles encyclopedia/Wikipedia style (%d indicators)", f.encyclopedia))
	case f.encyclopedia > 1:
		issues = append(issues, fmt.Sprintf("Some encyclopedia-style patterns detected (%d indicators)", f.encyclopedia))
	}

	switch {
	case f.historical > 15:
		issues = append(issues, fmt.Sprintf("High concentration of historical/factual content (%d indicators)", f.historical))
	case f.historical > 10:
		issues = append(issues, fmt.Sprintf("Significant historical/factual content detected (%d indicators)", f.historical))
	case f.historical > 5:
		issues = append(issues, fmt.Sprintf("Historical/biographical content patterns found (%d indicators)", f.historical))
	}

	switch {
	case f.stats.TotalWords == 0:
	case f.uniqueRatio < 0.3:
		issues = append(issues, "Very low vocabulary diversity - possible copied content")
	case f.uniqueRatio < 0.5:
		issues = append(issues, "Moderate vocabulary diversity - review for originality")
	}

	if f.multiSentence && f.variance > varianceThreshold {
		issues = append(issues, "Inconsistent sentence structure detected")
	}

	if f.formal > 3 {
		issues = append(issues, "Highly formal/academic writing style detected")
	}

	return issues
}

// analyzeStatistics computes word and sentence counts
func analyzeStatistics(words, sentences []string) models.TextStatistics {
	stats := models.TextStatistics{
		TotalWords:     len(words),
		TotalSentences: len(sentences),
		UniqueWords:    countUniqueWords(words),
	}
	if len(sentences) > 0 {
		avg := float64(len(words)) / float64(len(sentences))
		stats.AvgWordsPerSentence = math.Round(avg*10) / 10
	}
	return stats
}

// countUniqueWords counts unique words
func countUniqueWords(words []string) int {
	unique := make(map[string]bool)
	for _, word := range words {
		unique[word] = true
	}
	return len(unique)
}

// detectSuspiciousPatterns returns the distinct matched strings and the
// number of pattern types that matched at least once
func detectSuspiciousPatterns(text string) ([]string, int) {
	var matches []string
	seen := make(map[string]bool)
	types := 0

	for _, pattern := range suspiciousPatterns {
		found := pattern.FindAllString(text, -1)
		if len(found) == 0 {
			continue
		}
		types++
		for _, m := range found {
			if !seen[m] {
				seen[m] = true
				matches = append(matches, m)
			}
		}
	}
	return matches, types
}

// analyzeSentenceStructure flags overly long sentences and a high share of
// very short ones
func analyzeSentenceStructure(sentences []string) []string {
	issues := []string{}

	long, short := 0, 0
	for _, s := range sentences {
		n := len(strings.Fields(s))
		if n > longSentenceWords {
			long++
		}
		if n < shortSentenceWords {
			short++
		}
	}

	if long > 0 {
		issues = append(issues, fmt.Sprintf("Found %d unusually long sentences that may indicate copying", long))
	}
	if float64(short) > float64(len(sentences))*shortSentenceFraction {
		issues = append(issues, "High proportion of very short sentences detected")
	}
	return issues
}

// detectCommonPhrases lists stock phrases present in text, noting repeats
func detectCommonPhrases(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}

	for _, phrase := range commonAcademicPhrases {
		count := strings.Count(lower, phrase)
		switch {
		case count > 1:
			found = append(found, fmt.Sprintf("%s (used %d times)", phrase, count))
		case count == 1:
			found = append(found, phrase)
		}
		if len(found) == maxCommonPhrases {
			break
		}
	}
	return found
}

// topWordCount returns the frequency of the most common word
func topWordCount(words []string) int {
	freq := make(map[string]int)
	top := 0
	for _, word := range words {
		freq[word]++
		top = max(top, freq[word])
	}
	return top
}

// sentenceLengthVariance returns the population variance of per-sentence
// word counts
func sentenceLengthVariance(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}

	lengths := make([]float64, len(sentences))
	sum := 0.0
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	return variance / float64(len(lengths))
}

func countDistinctMatches(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}

func countAllMatches(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		n += len(p.FindAllStringIndex(text, -1))
	}
	return n
}
