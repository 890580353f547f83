package scoring

import (
	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

// applyCombinations adds the seasonal-scaled bonus of every combination whose
// branches are all present. Rules are independent: one branch may feed several.
func applyCombinations(t *tally, l *ledgers) {
	for _, r := range symbols.Combinations() {
		if !t.hasAll(r.Branches) {
			continue
		}
		l.add(domain.StageCombination, r.Result, r.Bonus*t.strength(r.Result), r.String())
	}
}
