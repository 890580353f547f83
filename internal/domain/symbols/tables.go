// Package symbols holds the static reference data of the scoring engine.
// Every table is built at init and never mutated; accessors return copies of
// slices so callers cannot alter shared state.
package symbols

import (
	"slices"

	"github.com/abdidvp/wuxing/internal/domain"
)

// EarthTail is the earth-season branch that precedes the return to spring.
const EarthTail = domain.BranchChou

var stemElements = [domain.NumStems]domain.Element{
	domain.StemJia:  domain.Wood,
	domain.StemYi:   domain.Wood,
	domain.StemBing: domain.Fire,
	domain.StemDing: domain.Fire,
	domain.StemWu:   domain.Earth,
	domain.StemJi:   domain.Earth,
	domain.StemGeng: domain.Metal,
	domain.StemXin:  domain.Metal,
	domain.StemRen:  domain.Water,
	domain.StemGui:  domain.Water,
}

type branchInfo struct {
	season domain.Season
	hidden []domain.Stem // dominant, secondary, residual
}

var branches = [domain.NumBranches]branchInfo{
	domain.BranchZi:   {domain.Winter, []domain.Stem{domain.StemGui}},
	domain.BranchChou: {domain.TransitionalEarth, []domain.Stem{domain.StemJi, domain.StemGui, domain.StemXin}},
	domain.BranchYin:  {domain.Spring, []domain.Stem{domain.StemJia, domain.StemBing, domain.StemWu}},
	domain.BranchMao:  {domain.Spring, []domain.Stem{domain.StemYi}},
	domain.BranchChen: {domain.TransitionalEarth, []domain.Stem{domain.StemWu, domain.StemYi, domain.StemGui}},
	domain.BranchSi:   {domain.Summer, []domain.Stem{domain.StemBing, domain.StemGeng, domain.StemWu}},
	domain.BranchWu:   {domain.Summer, []domain.Stem{domain.StemDing, domain.StemJi}},
	domain.BranchWei:  {domain.TransitionalEarth, []domain.Stem{domain.StemJi, domain.StemDing, domain.StemYi}},
	domain.BranchShen: {domain.Autumn, []domain.Stem{domain.StemGeng, domain.StemRen, domain.StemWu}},
	domain.BranchYou:  {domain.Autumn, []domain.Stem{domain.StemXin}},
	domain.BranchXu:   {domain.TransitionalEarth, []domain.Stem{domain.StemWu, domain.StemXin, domain.StemDing}},
	domain.BranchHai:  {domain.Winter, []domain.Stem{domain.StemRen, domain.StemJia}},
}

// hiddenStems is derived from branches once so lookups do not allocate tiers.
var hiddenStems [domain.NumBranches][]domain.HiddenStem

func init() {
	for b, info := range branches {
		hs := make([]domain.HiddenStem, len(info.hidden))
		for i, s := range info.hidden {
			hs[i] = domain.HiddenStem{Stem: s, Element: stemElements[s], Tier: domain.Tier(i)}
		}
		hiddenStems[b] = hs
	}
}

var generates = [domain.NumElements]domain.Element{
	domain.Wood:  domain.Fire,
	domain.Fire:  domain.Earth,
	domain.Earth: domain.Metal,
	domain.Metal: domain.Water,
	domain.Water: domain.Wood,
}

var overcomes = [domain.NumElements]domain.Element{
	domain.Wood:  domain.Earth,
	domain.Fire:  domain.Metal,
	domain.Earth: domain.Water,
	domain.Metal: domain.Wood,
	domain.Water: domain.Fire,
}

// seasonalStrength rows are seasons, columns elements. The ruling element is
// 1.0, the one it generates 0.7, the one generating it 0.5, the one
// overcoming it 0.3 and the one it overcomes 0.2.
var seasonalStrength = [domain.NumSeasons][domain.NumElements]float64{
	//                        wood fire earth metal water
	domain.Spring:            {1.0, 0.7, 0.2, 0.3, 0.5},
	domain.Summer:            {0.5, 1.0, 0.7, 0.2, 0.3},
	domain.Autumn:            {0.2, 0.3, 0.5, 1.0, 0.7},
	domain.Winter:            {0.7, 0.2, 0.3, 0.5, 1.0},
	domain.TransitionalEarth: {0.3, 0.5, 1.0, 0.7, 0.2},
}

// ElementOf returns the element of a stem.
func ElementOf(s domain.Stem) domain.Element { return stemElements[s] }

// HiddenStemsOf returns the hidden stems of a branch, strongest tier first.
func HiddenStemsOf(b domain.Branch) []domain.HiddenStem { return slices.Clone(hiddenStems[b]) }

// DominantOf returns the dominant hidden stem of a branch.
func DominantOf(b domain.Branch) domain.HiddenStem { return hiddenStems[b][0] }

// SeasonOf returns the season a branch belongs to.
func SeasonOf(b domain.Branch) domain.Season { return branches[b].season }

// Generates returns the element e produces.
func Generates(e domain.Element) domain.Element { return generates[e] }

// Overcomes returns the element e restrains.
func Overcomes(e domain.Element) domain.Element { return overcomes[e] }

// SeasonalStrength returns how strong e is in season s, in [0,1].
func SeasonalStrength(s domain.Season, e domain.Element) float64 { return seasonalStrength[s][e] }
