package scoring

import (
	"fmt"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

const weaknessFactor = 0.5

// applyWeakness derives Corrected from Total. Absent elements are forced to 0.
// Every rootless stem halves its element, and so does every pillar whose
// branch's dominant element overcomes the stem's element. Halvings compound.
func applyWeakness(t *tally, l *ledgers, rooted [4]bool) (absent [domain.NumElements]bool) {
	for _, e := range domain.Elements {
		l[e].Corrected = l[e].Total
		if !t.present(e) {
			absent[e] = true
			l.correct(e, 0, "absent from all four pillars")
		}
	}

	for i, p := range t.pillars {
		e := symbols.ElementOf(p.Stem)
		if !rooted[i] {
			l.correct(e, weaknessFactor, fmt.Sprintf("%s stem %s has no root", domain.Position(i), p.Stem))
		}
	}

	for i, p := range t.pillars {
		e := symbols.ElementOf(p.Stem)
		seat := symbols.DominantOf(p.Branch)
		if symbols.Overcomes(seat.Element) == e {
			l.correct(e, weaknessFactor,
				fmt.Sprintf("%s stem %s overcome by seat %s (%s)", domain.Position(i), p.Stem, p.Branch, seat.Element))
		}
	}
	return absent
}
