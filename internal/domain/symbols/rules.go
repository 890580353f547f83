package symbols

import (
	"slices"

	d "github.com/abdidvp/wuxing/internal/domain"
)

const (
	threeMeetingBonus = 10.0
	threeHarmonyBonus = 8.0
	sixHarmonyBonus   = 5.0

	clashPenalty         = 4.0
	punishmentPenalty    = 3.0
	breakingPenalty      = 2.0
	extinguishingPenalty = 1.5
)

func meeting(result d.Element, bs ...d.Branch) d.CombinationRule {
	return d.CombinationRule{Kind: d.ThreeMeeting, Branches: bs, Result: result, Bonus: threeMeetingBonus}
}

func harmony(result d.Element, bs ...d.Branch) d.CombinationRule {
	return d.CombinationRule{Kind: d.ThreeHarmony, Branches: bs, Result: result, Bonus: threeHarmonyBonus}
}

func pair(result d.Element, a, b d.Branch) d.CombinationRule {
	return d.CombinationRule{Kind: d.SixHarmony, Branches: []d.Branch{a, b}, Result: result, Bonus: sixHarmonyBonus}
}

var combinations = []d.CombinationRule{
	meeting(d.Wood, d.BranchYin, d.BranchMao, d.BranchChen),
	meeting(d.Fire, d.BranchSi, d.BranchWu, d.BranchWei),
	meeting(d.Metal, d.BranchShen, d.BranchYou, d.BranchXu),
	meeting(d.Water, d.BranchHai, d.BranchZi, d.BranchChou),

	harmony(d.Wood, d.BranchHai, d.BranchMao, d.BranchWei),
	harmony(d.Fire, d.BranchYin, d.BranchWu, d.BranchXu),
	harmony(d.Metal, d.BranchSi, d.BranchYou, d.BranchChou),
	harmony(d.Water, d.BranchShen, d.BranchZi, d.BranchChen),

	pair(d.Earth, d.BranchZi, d.BranchChou),
	pair(d.Wood, d.BranchYin, d.BranchHai),
	pair(d.Fire, d.BranchMao, d.BranchXu),
	pair(d.Metal, d.BranchChen, d.BranchYou),
	pair(d.Water, d.BranchSi, d.BranchShen),
	pair(d.Earth, d.BranchWu, d.BranchWei),
}

func uniform(kind d.ConflictKind, penalty float64, bs ...d.Branch) d.ConflictRule {
	return d.ConflictRule{Kind: kind, Members: bs, Penalty: penalty}
}

func harm(a, b d.Branch, targets ...d.ConflictTarget) d.ConflictRule {
	return d.ConflictRule{Kind: d.Harm, Members: []d.Branch{a, b}, Targets: targets}
}

func hit(b d.Branch, e d.Element, magnitude float64) d.ConflictTarget {
	return d.ConflictTarget{Branch: b, Element: e, Magnitude: magnitude}
}

var conflicts = []d.ConflictRule{
	uniform(d.Clash, clashPenalty, d.BranchZi, d.BranchWu),
	uniform(d.Clash, clashPenalty, d.BranchChou, d.BranchWei),
	uniform(d.Clash, clashPenalty, d.BranchYin, d.BranchShen),
	uniform(d.Clash, clashPenalty, d.BranchMao, d.BranchYou),
	uniform(d.Clash, clashPenalty, d.BranchChen, d.BranchXu),
	uniform(d.Clash, clashPenalty, d.BranchSi, d.BranchHai),

	uniform(d.Punishment, punishmentPenalty, d.BranchYin, d.BranchSi, d.BranchShen),
	uniform(d.Punishment, punishmentPenalty, d.BranchChou, d.BranchXu, d.BranchWei),
	uniform(d.Punishment, punishmentPenalty, d.BranchZi, d.BranchMao),
	uniform(d.Punishment, punishmentPenalty, d.BranchChen, d.BranchChen),
	uniform(d.Punishment, punishmentPenalty, d.BranchWu, d.BranchWu),
	uniform(d.Punishment, punishmentPenalty, d.BranchYou, d.BranchYou),
	uniform(d.Punishment, punishmentPenalty, d.BranchHai, d.BranchHai),

	// Harm is irregular: each pair names the damaged roots explicitly.
	harm(d.BranchZi, d.BranchWei, hit(d.BranchZi, d.Water, -2.0)),
	harm(d.BranchChou, d.BranchWu, hit(d.BranchWu, d.Fire, -1.5), hit(d.BranchChou, d.Earth, -1.0)),
	harm(d.BranchYin, d.BranchSi, hit(d.BranchYin, d.Wood, -1.0), hit(d.BranchSi, d.Metal, -2.0)),
	harm(d.BranchMao, d.BranchChen, hit(d.BranchMao, d.Wood, -2.5)),
	harm(d.BranchShen, d.BranchHai, hit(d.BranchShen, d.Metal, -1.0), hit(d.BranchHai, d.Wood, -1.5)),
	harm(d.BranchYou, d.BranchXu, hit(d.BranchYou, d.Metal, -2.0), hit(d.BranchXu, d.Fire, -1.0)),

	uniform(d.Breaking, breakingPenalty, d.BranchZi, d.BranchYou),
	uniform(d.Breaking, breakingPenalty, d.BranchMao, d.BranchWu),
	uniform(d.Breaking, breakingPenalty, d.BranchChen, d.BranchChou),
	uniform(d.Breaking, breakingPenalty, d.BranchWei, d.BranchXu),
	uniform(d.Breaking, breakingPenalty, d.BranchYin, d.BranchHai),
	uniform(d.Breaking, breakingPenalty, d.BranchSi, d.BranchShen),

	uniform(d.Extinguishing, extinguishingPenalty, d.BranchZi, d.BranchSi),
	uniform(d.Extinguishing, extinguishingPenalty, d.BranchHai, d.BranchWu),
	uniform(d.Extinguishing, extinguishingPenalty, d.BranchShen, d.BranchMao),
	uniform(d.Extinguishing, extinguishingPenalty, d.BranchYou, d.BranchYin),
}

// Combinations returns the combination rule set.
func Combinations() []d.CombinationRule { return cloneCombinations(combinations) }

// Conflicts returns the conflict rule set, all five families.
func Conflicts() []d.ConflictRule { return cloneConflicts(conflicts) }

// ConflictsOf returns the conflict rules of a single family.
func ConflictsOf(kind d.ConflictKind) []d.ConflictRule {
	var out []d.ConflictRule
	for _, r := range conflicts {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return cloneConflicts(out)
}

func cloneCombinations(rs []d.CombinationRule) []d.CombinationRule {
	out := make([]d.CombinationRule, len(rs))
	for i, r := range rs {
		r.Branches = slices.Clone(r.Branches)
		out[i] = r
	}
	return out
}

func cloneConflicts(rs []d.ConflictRule) []d.ConflictRule {
	out := make([]d.ConflictRule, len(rs))
	for i, r := range rs {
		r.Members = slices.Clone(r.Members)
		r.Targets = slices.Clone(r.Targets)
		out[i] = r
	}
	return out
}
