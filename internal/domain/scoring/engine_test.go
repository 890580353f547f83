package scoring_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/scoring"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCharts returns a deterministic spread of charts covering every month branch.
func sampleCharts(n int) []domain.FourPillars {
	rng := rand.New(rand.NewPCG(1, 2))
	out := make([]domain.FourPillars, 0, n)
	for i := range n {
		var fp domain.FourPillars
		for j := range fp {
			fp[j] = domain.Pillar{
				Stem:   domain.Stem(rng.IntN(domain.NumStems)),
				Branch: domain.Branch(rng.IntN(domain.NumBranches)),
			}
		}
		fp[domain.Month].Branch = domain.Branch(i % domain.NumBranches)
		out = append(out, fp)
	}
	return out
}

func present(fp domain.FourPillars, e domain.Element) bool {
	for _, p := range fp {
		if symbols.ElementOf(p.Stem) == e {
			return true
		}
		for _, h := range symbols.HiddenStemsOf(p.Branch) {
			if h.Element == e {
				return true
			}
		}
	}
	return false
}

func TestScore_BoundedScores(t *testing.T) {
	for _, fp := range sampleCharts(3000) {
		res, err := scoring.Score(fp)
		require.NoError(t, err, fp.String())
		require.Len(t, res.Scores, domain.NumElements)
		for _, e := range domain.Elements {
			s := res.Scores[e]
			assert.GreaterOrEqual(t, s, 1, "%s %s", fp, e)
			assert.LessOrEqual(t, s, 95, "%s %s", fp, e)
		}
	}
}

func TestScore_AbsentElementScoresOne(t *testing.T) {
	checked := 0
	for _, fp := range sampleCharts(3000) {
		res, err := scoring.Score(fp)
		require.NoError(t, err)
		for _, e := range domain.Elements {
			if present(fp, e) {
				continue
			}
			checked++
			assert.Equal(t, 1, res.Scores[e], "%s %s", fp, e)
			assert.Zero(t, res.Ledger[e].Basic)
			assert.Zero(t, res.Ledger[e].Corrected)
		}
	}
	assert.Positive(t, checked)
}

func TestScore_LedgerConsistency(t *testing.T) {
	for _, fp := range sampleCharts(1000) {
		res, err := scoring.Score(fp)
		require.NoError(t, err)
		for _, e := range domain.Elements {
			l := res.Ledger[e]
			assert.Equal(t, l.Basic+l.Relational+l.Combination+l.Conflict+l.Transparency+l.Seasonal, l.Total,
				"%s %s", fp, e)
		}
	}
}

func TestScore_NotesAddUpToLedgerFields(t *testing.T) {
	res, err := scoring.Score(domain.MustParsePillars("甲寅 丙午 戊戌 庚申"))
	require.NoError(t, err)
	for _, e := range domain.Elements {
		l := res.Ledger[e]
		sums := map[domain.Stage]float64{}
		for _, n := range l.Notes {
			sums[n.Stage] += n.Delta
		}
		assert.InDelta(t, l.Basic, sums[domain.StageBasic], 1e-9)
		assert.InDelta(t, l.Relational, sums[domain.StageRelational], 1e-9)
		assert.InDelta(t, l.Combination, sums[domain.StageCombination], 1e-9)
		assert.InDelta(t, l.Conflict, sums[domain.StageConflict], 1e-9)
		assert.InDelta(t, l.Transparency, sums[domain.StageTransparency], 1e-9)
		assert.InDelta(t, l.Seasonal, sums[domain.StageSeasonal], 1e-9)
	}
}

func TestScore_Deterministic(t *testing.T) {
	for _, fp := range sampleCharts(200) {
		a, err := scoring.Score(fp)
		require.NoError(t, err)
		b, err := scoring.Score(fp)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("%s: results differ (-first +second):\n%s", fp, diff)
		}
	}
}

func TestScore_ExemptElementIgnoresSeason(t *testing.T) {
	for _, month := range domain.Branches {
		fp := domain.MustParsePillars("甲寅 丙子 乙卯 丙子")
		fp[domain.Month].Branch = month

		res, err := scoring.Score(fp)
		require.NoError(t, err)
		assert.Contains(t, res.Exempt, domain.Wood, "month %s", month)
		assert.Zero(t, res.Ledger[domain.Wood].Seasonal, "month %s", month)
	}
}

func TestScore_AbsentWaterInSummer(t *testing.T) {
	res, err := scoring.Score(domain.MustParsePillars("甲寅 丙午 丁卯 戊戌"))
	require.NoError(t, err)
	assert.Equal(t, domain.Summer, res.Season)
	assert.Zero(t, res.Ledger[domain.Water].Basic)
	assert.Zero(t, res.Ledger[domain.Water].Corrected)
	assert.Equal(t, 1, res.Scores[domain.Water])
	require.NotEmpty(t, res.Ledger[domain.Water].Corrections)
	assert.Zero(t, res.Ledger[domain.Water].Corrections[0].Factor)
}

func TestScore_FireThreeHarmony(t *testing.T) {
	full, err := scoring.Score(domain.MustParsePillars("甲寅 庚午 壬戌 丙辰"))
	require.NoError(t, err)
	partial, err := scoring.Score(domain.MustParsePillars("甲寅 庚午 壬子 丙辰"))
	require.NoError(t, err)

	assert.Greater(t, full.Ledger[domain.Fire].Combination, partial.Ledger[domain.Fire].Combination)
	assert.Zero(t, partial.Ledger[domain.Fire].Combination)
}

func TestScore_StatsMatchCorrectedTotals(t *testing.T) {
	res, err := scoring.Score(domain.MustParsePillars("壬子 癸亥 庚申 辛酉"))
	require.NoError(t, err)
	minV, maxV, sum := res.Ledger[domain.Wood].Corrected, res.Ledger[domain.Wood].Corrected, 0.0
	for _, e := range domain.Elements {
		c := res.Ledger[e].Corrected
		minV = min(minV, c)
		maxV = max(maxV, c)
		sum += c
	}
	assert.Equal(t, minV, res.Stats.Min)
	assert.Equal(t, maxV, res.Stats.Max)
	assert.InDelta(t, sum/5, res.Stats.Avg, 1e-9)
}

func TestScore_StrongestAndWeakest(t *testing.T) {
	res, err := scoring.Score(domain.MustParsePillars("壬子 癸亥 壬子 癸亥"))
	require.NoError(t, err)
	assert.Equal(t, domain.Water, res.Strongest())
	assert.Equal(t, 1, res.Scores[res.Weakest()])
}

func TestScore_InvalidSymbol(t *testing.T) {
	fp := domain.MustParsePillars("甲子 乙丑 丙寅 丁卯")
	fp[domain.Day].Branch = domain.Branch(42)

	res, err := scoring.Score(fp)
	assert.Nil(t, res)
	var symErr *domain.InvalidSymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, domain.Day, symErr.Position)
	assert.Equal(t, domain.SymbolBranch, symErr.Kind)
}
