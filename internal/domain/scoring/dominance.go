package scoring

import "github.com/abdidvp/wuxing/internal/domain"

// exemptElements marks elements strong enough on their own to ignore the
// season: at least two dominant roots, at least one stem, and three in total.
func exemptElements(t *tally) (exempt [domain.NumElements]bool) {
	for _, e := range domain.Elements {
		d, s := t.dominant[e], t.stems[e]
		exempt[e] = d >= 2 && s >= 1 && d+s >= 3
	}
	return exempt
}
