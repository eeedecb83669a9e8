package rephraser

// Style selects the sentence starters and transitions used when rephrasing
type Style string

const (
	StyleAcademic Style = "academic"
	StyleFormal   Style = "formal"
	StyleCasual   Style = "casual"
	StyleSimple   Style = "simple"
)

// Creativity controls how aggressively words are substituted
type Creativity string

const (
	CreativityLow    Creativity = "low"
	CreativityMedium Creativity = "medium"
	CreativityHigh   Creativity = "high"
)

// DefaultStyle and DefaultCreativity apply when a request omits them
const (
	DefaultStyle      = StyleAcademic
	DefaultCreativity = CreativityMedium
)

var substitutionProbability = map[Creativity]float64{
	CreativityLow:    0.4,
	CreativityMedium: 0.6,
	CreativityHigh:   0.8,
}

// Probability returns the substitution probability for a creativity level,
// falling back to medium for unrecognized values
func (c Creativity) Probability() float64 {
	if p, ok := substitutionProbability[c]; ok {
		return p
	}
	return substitutionProbability[CreativityMedium]
}

// Valid reports whether s is one of the known styles
func (s Style) Valid() bool {
	_, ok := sentenceStarters[s]
	return ok
}

// Valid reports whether c is one of the known creativity levels
func (c Creativity) Valid() bool {
	_, ok := substitutionProbability[c]
	return ok
}

var sentenceStarters = map[Style][]string{
	StyleAcademic: {
		"Research indicates that",
		"Studies have shown that",
		"Evidence suggests that",
		"Analysis reveals that",
		"Findings demonstrate that",
		"Investigation shows that",
		"Data indicates that",
		"Examination reveals that",
	},
	StyleFormal: {
		"It can be observed that",
		"It is evident that",
		"One can conclude that",
		"It appears that",
		"It seems that",
		"It is clear that",
		"It is apparent that",
		"One might argue that",
	},
	StyleCasual: {
		"It turns out that",
		"Basically,",
		"In simple terms,",
		"What this means is",
		"The thing is,",
		"Here's what happens:",
		"Simply put,",
		"In other words,",
	},
	StyleSimple: {
		"This shows that",
		"We can see that",
		"This means that",
		"We found that",
		"This tells us that",
		"We learned that",
		"This proves that",
		"We discovered that",
	},
}

var transitions = map[Style][]string{
	StyleAcademic: {
		"Furthermore,", "Moreover,", "Additionally,", "In addition,",
		"Consequently,", "Therefore,", "Thus,", "Hence,",
		"However,", "Nevertheless,", "On the other hand,",
	},
	StyleFormal: {
		"Subsequently,", "Furthermore,", "In addition,", "Moreover,",
		"Consequently,", "Therefore,", "However,", "Nevertheless,",
	},
	StyleCasual: {
		"Also,", "Plus,", "And,", "But,", "So,", "Then,", "Now,",
	},
	StyleSimple: {
		"Also,", "Then,", "Next,", "But,", "So,", "And,",
	},
}
