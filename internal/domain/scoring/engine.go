// Package scoring computes five-element strength scores for a four-pillar
// chart. The pipeline is pure: no state survives between calls, and the
// shared symbol tables are read-only, so Score is safe for concurrent use.
package scoring

import (
	"github.com/abdidvp/wuxing/internal/domain"
)

// Score runs the full pipeline: basic presence, relations, combinations,
// conflicts, transparency, dominance, seasonal weighting, weakness correction
// and normalization. No partial result is returned on error.
func Score(fp domain.FourPillars) (*domain.ScoringResult, error) {
	if err := fp.Validate(); err != nil {
		return nil, err
	}

	t := newTally(fp)
	var l ledgers

	applyBasic(t, &l)
	applyRelational(t, &l)
	applyCombinations(t, &l)
	applyConflicts(t, &l)
	rooted := applyTransparency(t, &l)
	exempt := exemptElements(t)
	applySeasonal(t, &l, exempt)
	absent := applyWeakness(t, &l, rooted)
	scores, stats := normalize(&l, absent)

	res := &domain.ScoringResult{
		Pillars: fp,
		Season:  t.season,
		Scores:  make(map[domain.Element]int, domain.NumElements),
		Ledger:  make(map[domain.Element]domain.ElementLedger, domain.NumElements),
		Stats:   stats,
	}
	for _, e := range domain.Elements {
		res.Scores[e] = scores[e]
		res.Ledger[e] = l[e]
		if exempt[e] {
			res.Exempt = append(res.Exempt, e)
		}
	}
	return res, nil
}
