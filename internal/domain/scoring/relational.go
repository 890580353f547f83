package scoring

import (
	"fmt"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

const (
	generationScale = 2.0
	overcomingScale = 1.5
)

// applyRelational credits each element generated by a present element and
// debits each element overcome by one, scaled by the source's seasonal strength.
func applyRelational(t *tally, l *ledgers) {
	for _, from := range domain.Elements {
		if !t.present(from) {
			continue
		}
		if to := symbols.Generates(from); t.present(to) {
			l.add(domain.StageRelational, to, generationScale*t.strength(from),
				fmt.Sprintf("generated by %s", from))
		}
		if to := symbols.Overcomes(from); t.present(to) {
			l.add(domain.StageRelational, to, -overcomingScale*t.strength(from),
				fmt.Sprintf("overcome by %s", from))
		}
	}
}
