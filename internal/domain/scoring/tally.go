package scoring

import (
	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

// tally holds the per-chart counts every stage reads.
type tally struct {
	pillars domain.FourPillars
	season  domain.Season

	stems       [domain.NumElements]int     // stem occurrences
	hidden      [domain.NumElements]int     // hidden-stem occurrences, unweighted
	weighted    [domain.NumElements]float64 // hidden-stem occurrences, tier weighted
	dominant    [domain.NumElements]int     // dominant-tier hidden occurrences
	occurrences int                         // all stems plus all hidden stems
	branches    [domain.NumBranches]int
}

func newTally(fp domain.FourPillars) *tally {
	t := &tally{pillars: fp, season: symbols.SeasonOf(fp.MonthBranch())}
	for _, p := range fp {
		t.stems[symbols.ElementOf(p.Stem)]++
		t.occurrences++
		t.branches[p.Branch]++
		for _, h := range symbols.HiddenStemsOf(p.Branch) {
			t.hidden[h.Element]++
			t.weighted[h.Element] += h.Weight()
			if h.Tier == domain.Dominant {
				t.dominant[h.Element]++
			}
			t.occurrences++
		}
	}
	return t
}

// present reports whether e occurs as a stem or hidden stem anywhere.
func (t *tally) present(e domain.Element) bool {
	return t.stems[e] > 0 || t.hidden[e] > 0
}

func (t *tally) strength(e domain.Element) float64 {
	return symbols.SeasonalStrength(t.season, e)
}

// hasAll reports whether every member branch is present. A branch listed n
// times must occur at least n times.
func (t *tally) hasAll(members []domain.Branch) bool {
	var need [domain.NumBranches]int
	for _, b := range members {
		need[b]++
	}
	for b, n := range need {
		if n > 0 && t.branches[b] < n {
			return false
		}
	}
	return true
}

// ledgers is the working ledger of all five elements.
type ledgers [domain.NumElements]domain.ElementLedger

// add moves one stage field of e by delta and records the rule that did it.
func (l *ledgers) add(stage domain.Stage, e domain.Element, delta float64, rule string) {
	el := &l[e]
	switch stage {
	case domain.StageBasic:
		el.Basic += delta
	case domain.StageRelational:
		el.Relational += delta
	case domain.StageCombination:
		el.Combination += delta
	case domain.StageConflict:
		el.Conflict += delta
	case domain.StageTransparency:
		el.Transparency += delta
	case domain.StageSeasonal:
		el.Seasonal += delta
	}
	el.Notes = append(el.Notes, domain.LedgerNote{Stage: stage, Rule: rule, Delta: delta})
}

// correct multiplies the corrected total of e and records why.
func (l *ledgers) correct(e domain.Element, factor float64, reason string) {
	el := &l[e]
	el.Corrected *= factor
	el.Corrections = append(el.Corrections, domain.Correction{Reason: reason, Factor: factor})
}
