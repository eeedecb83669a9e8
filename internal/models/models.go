package models

// RiskLevel is an ordered categorical risk label derived from a plagiarism score
type RiskLevel int

const (
	RiskVeryLow RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
)

// String returns the display name used in API responses
func (r RiskLevel) String() string {
	switch r {
	case RiskVeryLow:
		return "Very Low"
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Color returns the display tag associated with the risk level
func (r RiskLevel) Color() string {
	switch r {
	case RiskHigh:
		return "danger"
	case RiskMedium:
		return "warning"
	case RiskLow:
		return "info"
	default:
		return "success"
	}
}

// AnalysisResult is the outcome of scoring a single text
type AnalysisResult struct {
	PlagiarismScore    float64        `json:"plagiarism_score"` // 0 to 100
	PlagiarismLevel    string         `json:"plagiarism_level"` // Very Low, Low, Medium, High
	RiskColor          string         `json:"risk_color"`       // success, info, warning, danger
	Level              RiskLevel      `json:"-"`
	TextAnalysis       TextStatistics `json:"text_analysis"`
	SuspiciousPatterns int            `json:"suspicious_patterns"` // Distinct suspicious pattern types matched
	Issues             []string       `json:"issues"`
	CommonPhrases      []string       `json:"common_phrases"`
	ScoreBreakdown     []ScoreFactor  `json:"score_breakdown"`
}

// TextStatistics contains basic lexical statistics of a text
type TextStatistics struct {
	TotalWords          int     `json:"total_words"`
	TotalSentences      int     `json:"total_sentences"`
	UniqueWords         int     `json:"unique_words"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
}

// ScoreFactor records the points a single check contributed before clamping
type ScoreFactor struct {
	Factor string `json:"factor"`
	Points int    `json:"points"`
}

// Change describes one edit made by the rephraser
type Change struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Position    int    `json:"position"` // Token index within the sentence, -1 for sentence starters
	Sentence    int    `json:"sentence"`
}

// SentenceStartMarker is the Original value of synthetic sentence starter changes
const SentenceStartMarker = "sentence_start"

// SubstitutionResult is the outcome of rephrasing a single text
type SubstitutionResult struct {
	RephrasedText   string   `json:"rephrased_text"`
	OriginalText    string   `json:"original_text"`
	OriginalLength  int      `json:"original_length"`
	RephrasedLength int      `json:"rephrased_length"`
	WordsChanged    int      `json:"words_changed"`
	ChangesMade     []Change `json:"changes_made"`
	Style           string   `json:"style"`
	Creativity      string   `json:"creativity"`
}
