package scoring

import (
	"math"

	"github.com/abdidvp/wuxing/internal/domain"
)

// Normalization constants are a fixed contract, reproduced exactly.
const (
	normalizedSpan  = 70.0
	normalizedFloor = 15.0
	blendWeight     = 0.2
	blendCenter     = 50.0

	weakBasicMax    = 5.0
	weakTotalMax    = 3.0
	weakSeasonalMax = -1.0
	weakBase        = 3.0
	weakSlope       = 0.1
	weakFloor       = 1.0
	weakCeil        = 8.0

	minScore = 1
	maxScore = 95
)

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func totalsStats(l *ledgers) domain.Stats {
	st := domain.Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, e := range domain.Elements {
		c := l[e].Corrected
		st.Min = math.Min(st.Min, c)
		st.Max = math.Max(st.Max, c)
		sum += c
	}
	st.Avg = sum / domain.NumElements
	return st
}

// extremelyWeak selects elements published on the compressed 1–8 range.
func extremelyWeak(el domain.ElementLedger) bool {
	return el.Basic <= weakBasicMax && el.Corrected <= weakTotalMax && el.Seasonal < weakSeasonalMax
}

// normalize maps the corrected totals onto bounded, comparable scores.
// Absent elements publish the floor score.
func normalize(l *ledgers, absent [domain.NumElements]bool) ([domain.NumElements]int, domain.Stats) {
	st := totalsStats(l)
	span := st.Max - st.Min
	if span == 0 {
		span = 1
	}

	var scores [domain.NumElements]int
	for _, e := range domain.Elements {
		el := l[e]
		var raw float64
		switch {
		case absent[e]:
			raw = 0
		case extremelyWeak(el):
			raw = clamp(weakBase+el.Corrected*weakSlope, weakFloor, weakCeil)
		default:
			normalized := (el.Corrected-st.Min)/span*normalizedSpan + normalizedFloor
			raw = normalized*(1-blendWeight) + blendCenter*blendWeight
		}
		scores[e] = int(clamp(math.Round(raw), minScore, maxScore))
	}
	return scores, st
}
