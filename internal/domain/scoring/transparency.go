package scoring

import (
	"fmt"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

// strongestRoot returns the strongest tier at which element e is hidden in any
// of the chart's branches.
func strongestRoot(fp domain.FourPillars, e domain.Element) (domain.Tier, bool) {
	best, found := domain.Residual, false
	for _, p := range fp {
		for _, h := range symbols.HiddenStemsOf(p.Branch) {
			if h.Element == e && (!found || h.Tier < best) {
				best, found = h.Tier, true
			}
		}
	}
	return best, found
}

// transparencyBonus is the rootedness bonus for a stem rooted at tier t.
func transparencyBonus(e domain.Element, t domain.Tier) float64 {
	switch t {
	case domain.Dominant:
		return 2
	case domain.Secondary:
		if e == domain.Earth {
			return 1.5
		}
		return 1
	default:
		if e == domain.Earth {
			return 0.5
		}
		return 1
	}
}

// applyTransparency credits every rooted stem and reports which pillar stems
// have a root. Rootless stems are penalized later by the weakness corrector.
func applyTransparency(t *tally, l *ledgers) (rooted [4]bool) {
	for i, p := range t.pillars {
		e := symbols.ElementOf(p.Stem)
		tier, ok := strongestRoot(t.pillars, e)
		if !ok {
			continue
		}
		rooted[i] = true
		l.add(domain.StageTransparency, e, transparencyBonus(e, tier),
			fmt.Sprintf("%s stem %s rooted at %s tier", domain.Position(i), p.Stem, tier))
	}
	return rooted
}
