package scoring

import (
	"fmt"
	"math"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

const (
	stemShareScale  = 20.0
	stemShareFloor  = 3.0
	hiddenStemScale = 3.0

	// earthTailDiscount applies to Earth's basic term when the month branch
	// is the earth-season tail.
	earthTailDiscount = 0.8
)

// applyBasic records the raw presence score of every element. An element with
// no stem and no hidden stem keeps a basic score of 0.
func applyBasic(t *tally, l *ledgers) {
	for _, e := range domain.Elements {
		if !t.present(e) {
			continue
		}
		share := float64(t.stems[e]) / float64(t.occurrences)
		basic := math.Max(stemShareFloor, stemShareScale*share) + hiddenStemScale*t.weighted[e]
		l.add(domain.StageBasic, e, basic,
			fmt.Sprintf("%d stems, %.1f weighted hidden stems", t.stems[e], t.weighted[e]))

		if e == domain.Earth && t.pillars.MonthBranch() == symbols.EarthTail {
			l.add(domain.StageBasic, e, basic*earthTailDiscount-basic,
				fmt.Sprintf("earth-season tail month %s", symbols.EarthTail))
		}
	}
}
