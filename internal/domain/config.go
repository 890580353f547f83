package domain

import "fmt"

// Notation selects how pillar input is written.
type Notation string

const (
	NotationAuto   Notation = "auto"
	NotationHanzi  Notation = "hanzi"
	NotationPinyin Notation = "pinyin"
)

// ValidNotations enumerates the accepted notations.
var ValidNotations = []Notation{NotationAuto, NotationHanzi, NotationPinyin}

// ValidNotation reports whether n is one of ValidNotations.
func ValidNotation(n Notation) bool { return contains(ValidNotations, n) }

// ValidOutputs enumerates the accepted output formats.
var ValidOutputs = []string{"tui", "json"}

// ProjectConfig holds configuration loaded from .wuxing.yaml.
// Scoring constants are deliberately absent: they are not tunable.
type ProjectConfig struct {
	Notation  Notation       `yaml:"notation"   json:"notation,omitempty"`
	Output    string         `yaml:"output"     json:"output,omitempty"`
	Charts    []ChartSpec    `yaml:"charts"     json:"charts,omitempty"`
	MinScores map[string]int `yaml:"min_scores" json:"min_scores,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Notation: NotationAuto, Output: "tui"}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. notation must be known or empty
	if c.Notation != "" && !ValidNotation(c.Notation) {
		return fmt.Errorf("unknown notation %q (valid: auto, hanzi, pinyin)", c.Notation)
	}

	// 2. output must be known or empty
	if c.Output != "" && !contains(ValidOutputs, c.Output) {
		return fmt.Errorf("unknown output %q (valid: tui, json)", c.Output)
	}

	// 3. charts need a unique name and pillars
	seen := make(map[string]bool, len(c.Charts))
	for i, ch := range c.Charts {
		if ch.Name == "" {
			return fmt.Errorf("charts[%d].name must not be empty", i)
		}
		if ch.Pillars == "" {
			return fmt.Errorf("charts[%d].pillars must not be empty", i)
		}
		if seen[ch.Name] {
			return fmt.Errorf("duplicate chart name %q", ch.Name)
		}
		seen[ch.Name] = true
	}

	// 4. min_scores keys must be elements, values within the published range
	for k, v := range c.MinScores {
		if _, err := ParseElement(k); err != nil {
			return fmt.Errorf("unknown element %q in min_scores", k)
		}
		if v < 1 || v > 95 {
			return fmt.Errorf("min_scores[%q] = %d (must be between 1 and 95)", k, v)
		}
	}

	return nil
}

// WithDefaults fills unset fields from DefaultConfig.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	d := DefaultConfig()
	if c.Notation == "" {
		c.Notation = d.Notation
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	return c
}

// BelowMinimum lists the elements of r scoring under their configured minimum,
// in canonical element order.
func (c ProjectConfig) BelowMinimum(r *ScoringResult) []string {
	var out []string
	for _, e := range Elements {
		minScore, ok := c.MinScores[e.String()]
		if !ok {
			continue
		}
		if got := r.Scores[e]; got < minScore {
			out = append(out, fmt.Sprintf("%s %d < %d", e, got, minScore))
		}
	}
	return out
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
