package scoring

import (
	"fmt"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

// applyConflicts subtracts the penalties of every conflict rule that fires.
// Families stack: a pair that clashes and breaks pays both.
func applyConflicts(t *tally, l *ledgers) {
	for _, r := range symbols.Conflicts() {
		if !t.hasAll(r.Members) {
			continue
		}
		if len(r.Targets) > 0 {
			applyTargeted(l, r)
			continue
		}
		applyUniform(t, l, r)
	}
}

// applyTargeted applies a table-driven rule: only the named roots are damaged.
func applyTargeted(l *ledgers, r domain.ConflictRule) {
	for _, tg := range r.Targets {
		l.add(domain.StageConflict, tg.Element, tg.Magnitude,
			fmt.Sprintf("%s (%s root in %s)", r, tg.Element, tg.Branch))
	}
}

// applyUniform splits the rule penalty evenly across every hidden stem of the
// member branches. Each share is softened by the target's seasonal strength.
func applyUniform(t *tally, l *ledgers, r domain.ConflictRule) {
	var targets []domain.HiddenStem
	for _, b := range r.Members {
		targets = append(targets, symbols.HiddenStemsOf(b)...)
	}
	if len(targets) == 0 {
		return
	}
	share := r.Penalty / float64(len(targets))
	factor := r.Kind.Attenuation()
	for _, h := range targets {
		penalty := share * (1 - t.strength(h.Element)*factor)
		l.add(domain.StageConflict, h.Element, -penalty,
			fmt.Sprintf("%s (%s %s)", r, h.Stem, h.Tier))
	}
}
