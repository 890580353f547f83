package domain

import (
	"fmt"
	"strings"
)

// CombinationKind is the family of a branch combination rule.
type CombinationKind string

const (
	ThreeMeeting CombinationKind = "three_meeting"
	ThreeHarmony CombinationKind = "three_harmony"
	SixHarmony   CombinationKind = "six_harmony"
)

// CombinationRule adds Bonus to Result when every required branch is present.
type CombinationRule struct {
	Kind     CombinationKind `json:"kind"`
	Branches []Branch        `json:"branches"`
	Result   Element         `json:"result"`
	Bonus    float64         `json:"bonus"`
}

func (r CombinationRule) String() string {
	return fmt.Sprintf("%s %s→%s", r.Kind, joinBranches(r.Branches), r.Result)
}

// ConflictKind is the family of a branch conflict rule.
type ConflictKind string

const (
	Clash         ConflictKind = "clash"
	Punishment    ConflictKind = "punishment"
	Harm          ConflictKind = "harm"
	Breaking      ConflictKind = "breaking"
	Extinguishing ConflictKind = "extinguishing"
)

// ConflictKinds enumerates the conflict families in table order.
var ConflictKinds = []ConflictKind{Clash, Punishment, Harm, Breaking, Extinguishing}

// ValidConflictKind reports whether k is one of ConflictKinds.
func ValidConflictKind(k ConflictKind) bool { return contains(ConflictKinds, k) }

// Attenuation is the factor by which seasonal strength softens a uniform
// conflict penalty on a target element. Harm is table-driven and not attenuated.
func (k ConflictKind) Attenuation() float64 {
	switch k {
	case Clash:
		return 0.3
	case Punishment:
		return 0.2
	case Extinguishing:
		return 0.1
	default:
		return 0
	}
}

// ConflictTarget names a hidden element inside one member branch and the
// magnitude (negative) it loses when the rule fires.
type ConflictTarget struct {
	Branch    Branch  `json:"branch"`
	Element   Element `json:"element"`
	Magnitude float64 `json:"magnitude"`
}

// ConflictRule subtracts strength when all Members are present. A repeated
// member requires that many occurrences. Rules with Targets apply exactly those
// magnitudes; otherwise Penalty is split evenly over the members' hidden stems.
type ConflictRule struct {
	Kind    ConflictKind     `json:"kind"`
	Members []Branch         `json:"members"`
	Penalty float64          `json:"penalty,omitempty"`
	Targets []ConflictTarget `json:"targets,omitempty"`
}

func (r ConflictRule) String() string {
	return fmt.Sprintf("%s %s", r.Kind, joinBranches(r.Members))
}

func joinBranches(bs []Branch) string {
	var b strings.Builder
	for _, br := range bs {
		b.WriteString(br.String())
	}
	return b.String()
}
