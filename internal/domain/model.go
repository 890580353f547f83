package domain

import (
	"fmt"
	"math"
)

// Element is one of the five classical elements.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// NumElements is the size of the closed Element set.
const NumElements = 5

// Elements lists every element in canonical order. Ties between elements are
// always broken by this order.
var Elements = [NumElements]Element{Wood, Fire, Earth, Metal, Water}

var elementNames = [NumElements]string{"wood", "fire", "earth", "metal", "water"}

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("element(%d)", int(e))
	}
	return elementNames[e]
}

func (e Element) Valid() bool { return e >= Wood && e <= Water }

func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid element %d", int(e))
	}
	return []byte(elementNames[e]), nil
}

func (e *Element) UnmarshalText(text []byte) error {
	for i, name := range elementNames {
		if name == string(text) {
			*e = Element(i)
			return nil
		}
	}
	return fmt.Errorf("unknown element %q", string(text))
}

// ParseElement resolves a lower-case element name.
func ParseElement(name string) (Element, error) {
	var e Element
	err := e.UnmarshalText([]byte(name))
	return e, err
}

// Season is the seasonal phase selected by the month branch.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
	TransitionalEarth
)

// NumSeasons is the size of the closed Season set.
const NumSeasons = 5

var seasonNames = [NumSeasons]string{"spring", "summer", "autumn", "winter", "transitional_earth"}

func (s Season) String() string {
	if s < Spring || s > TransitionalEarth {
		return fmt.Sprintf("season(%d)", int(s))
	}
	return seasonNames[s]
}

func (s Season) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Tier is the strength class of a hidden stem inside its branch.
type Tier int

const (
	Dominant Tier = iota
	Secondary
	Residual
)

func (t Tier) String() string {
	switch t {
	case Dominant:
		return "dominant"
	case Secondary:
		return "secondary"
	case Residual:
		return "residual"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Weight returns the tier weight for a hidden stem of element e.
// Earth inverts the lower tiers: its residual counts more than its secondary.
func (t Tier) Weight(e Element) float64 {
	switch t {
	case Dominant:
		return 1.0
	case Secondary:
		if e == Earth {
			return 0.3
		}
		return 0.5
	case Residual:
		if e == Earth {
			return 0.5
		}
		return 0.3
	default:
		return 0
	}
}

// HiddenStem is one sub-element contained in a branch.
type HiddenStem struct {
	Stem    Stem    `json:"stem"`
	Element Element `json:"element"`
	Tier    Tier    `json:"tier"`
}

// Weight is the tier weight with the Earth inversion applied.
func (h HiddenStem) Weight() float64 { return h.Tier.Weight(h.Element) }

// Stage identifies the pipeline stage that produced a ledger movement.
type Stage string

const (
	StageBasic        Stage = "basic"
	StageRelational   Stage = "relational"
	StageCombination  Stage = "combination"
	StageConflict     Stage = "conflict"
	StageTransparency Stage = "transparency"
	StageSeasonal     Stage = "seasonal"
)

// LedgerNote records a single rule's contribution to an element.
type LedgerNote struct {
	Stage Stage   `json:"stage"`
	Rule  string  `json:"rule"`
	Delta float64 `json:"delta"`
}

// Correction records a multiplicative weakness correction.
type Correction struct {
	Reason string  `json:"reason"`
	Factor float64 `json:"factor"`
}

// ElementLedger is the auditable score breakdown for one element.
// Total always equals Basic+Relational+Combination+Conflict+Transparency+Seasonal;
// Corrected is Total after weakness corrections.
type ElementLedger struct {
	Basic        float64      `json:"basic"`
	Relational   float64      `json:"relational"`
	Combination  float64      `json:"combination"`
	Conflict     float64      `json:"conflict"`
	Transparency float64      `json:"transparency"`
	Seasonal     float64      `json:"seasonal"`
	Total        float64      `json:"total"`
	Corrected    float64      `json:"corrected"`
	Notes        []LedgerNote `json:"notes,omitempty"`
	Corrections  []Correction `json:"corrections,omitempty"`
}

// PreSeasonal is the ledger sum before seasonal weighting.
func (l ElementLedger) PreSeasonal() float64 {
	return l.Basic + l.Relational + l.Combination + l.Conflict + l.Transparency
}

// Sum recomputes Basic+Relational+Combination+Conflict+Transparency+Seasonal.
func (l ElementLedger) Sum() float64 {
	return l.Basic + l.Relational + l.Combination + l.Conflict + l.Transparency + l.Seasonal
}

// Stats summarizes the corrected totals fed into normalization.
type Stats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// ScoringResult is the engine output for one FourPillars chart.
type ScoringResult struct {
	Pillars FourPillars               `json:"pillars"`
	Season  Season                    `json:"season"`
	Scores  map[Element]int           `json:"scores"`
	Ledger  map[Element]ElementLedger `json:"ledger"`
	Exempt  []Element                 `json:"exempt,omitempty"`
	Stats   Stats                     `json:"stats"`
}

// Strongest returns the element with the highest score.
func (r *ScoringResult) Strongest() Element {
	best := Wood
	for _, e := range Elements {
		if r.Scores[e] > r.Scores[best] {
			best = e
		}
	}
	return best
}

// Weakest returns the element with the lowest score.
func (r *ScoringResult) Weakest() Element {
	worst := Wood
	for _, e := range Elements {
		if r.Scores[e] < r.Scores[worst] {
			worst = e
		}
	}
	return worst
}

// Percentages expresses each score as its share of the score sum, rounded to
// whole percent, for bar-style presentation.
func (r *ScoringResult) Percentages() map[Element]int {
	sum := 0
	for _, e := range Elements {
		sum += r.Scores[e]
	}
	out := make(map[Element]int, NumElements)
	for _, e := range Elements {
		if sum == 0 {
			out[e] = 0
			continue
		}
		out[e] = int(math.Round(float64(r.Scores[e]) / float64(sum) * 100))
	}
	return out
}

// ChartSpec names a chart in pillar notation, as read from config.
type ChartSpec struct {
	Name    string `yaml:"name"    json:"name"`
	Pillars string `yaml:"pillars" json:"pillars"`
}

// ChartResult pairs a named chart with its scoring result.
type ChartResult struct {
	Name   string         `json:"name"`
	Result *ScoringResult `json:"result"`
}

// ProjectReport collects the results of scoring every chart in a project config.
type ProjectReport struct {
	Charts []ChartResult `json:"charts"`
	// Failures lists "chart: element score < min" entries for min_scores violations.
	Failures []string `json:"failures,omitempty"`
}

// Passed reports whether every chart met its configured minimums.
func (r *ProjectReport) Passed() bool { return len(r.Failures) == 0 }
