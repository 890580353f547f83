package scoring

import (
	"fmt"

	"github.com/abdidvp/wuxing/internal/domain"
)

// seasonalMultiplier maps seasonal strength to the share of the pre-seasonal
// sum added (or removed) by seasonal weighting.
func seasonalMultiplier(strength float64) float64 {
	switch {
	case strength >= 1.0:
		return 0.5
	case strength >= 0.7:
		return 0.25
	case strength >= 0.3:
		return -0.25
	default:
		return -0.5
	}
}

// applySeasonal weights every non-exempt element by its seasonal strength and
// closes each ledger's Total.
func applySeasonal(t *tally, l *ledgers, exempt [domain.NumElements]bool) {
	for _, e := range domain.Elements {
		switch {
		case exempt[e]:
			l.add(domain.StageSeasonal, e, 0, "exempt: self-sufficient cluster")
		case l[e].PreSeasonal() != 0:
			s := t.strength(e)
			l.add(domain.StageSeasonal, e, seasonalMultiplier(s)*l[e].PreSeasonal(),
				fmt.Sprintf("%s strength %.1f in %s", e, s, t.season))
		}
		l[e].Total = l[e].Sum()
	}
}
