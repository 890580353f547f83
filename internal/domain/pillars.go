package domain

import (
	"fmt"
	"strings"
)

// Stem is one of the ten heavenly stems.
type Stem int

const (
	StemJia Stem = iota
	StemYi
	StemBing
	StemDing
	StemWu
	StemJi
	StemGeng
	StemXin
	StemRen
	StemGui
)

// NumStems is the size of the stem alphabet.
const NumStems = 10

// Stems lists the stem alphabet in canonical order.
var Stems = [NumStems]Stem{StemJia, StemYi, StemBing, StemDing, StemWu, StemJi, StemGeng, StemXin, StemRen, StemGui}

var (
	stemHanzi  = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	stemPinyin = [NumStems]string{"jia", "yi", "bing", "ding", "wu", "ji", "geng", "xin", "ren", "gui"}
)

func (s Stem) Valid() bool { return s >= StemJia && s <= StemGui }

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("stem(%d)", int(s))
	}
	return stemHanzi[s]
}

// Pinyin returns the lower-case romanization of the stem.
func (s Stem) Pinyin() string {
	if !s.Valid() {
		return ""
	}
	return stemPinyin[s]
}

func (s Stem) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Branch is one of the twelve earthly branches.
type Branch int

const (
	BranchZi Branch = iota
	BranchChou
	BranchYin
	BranchMao
	BranchChen
	BranchSi
	BranchWu
	BranchWei
	BranchShen
	BranchYou
	BranchXu
	BranchHai
)

// NumBranches is the size of the branch alphabet.
const NumBranches = 12

// Branches lists the branch alphabet in canonical order.
var Branches = [NumBranches]Branch{
	BranchZi, BranchChou, BranchYin, BranchMao, BranchChen, BranchSi,
	BranchWu, BranchWei, BranchShen, BranchYou, BranchXu, BranchHai,
}

var (
	branchHanzi  = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	branchPinyin = [NumBranches]string{"zi", "chou", "yin", "mao", "chen", "si", "wu", "wei", "shen", "you", "xu", "hai"}
)

func (b Branch) Valid() bool { return b >= BranchZi && b <= BranchHai }

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("branch(%d)", int(b))
	}
	return branchHanzi[b]
}

// Pinyin returns the lower-case romanization of the branch.
func (b Branch) Pinyin() string {
	if !b.Valid() {
		return ""
	}
	return branchPinyin[b]
}

func (b Branch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// ParseStem resolves a Hanzi stem token.
func ParseStem(token string) (Stem, bool) {
	for i, h := range stemHanzi {
		if h == token {
			return Stem(i), true
		}
	}
	return 0, false
}

// ParseBranch resolves a Hanzi branch token.
func ParseBranch(token string) (Branch, bool) {
	for i, h := range branchHanzi {
		if h == token {
			return Branch(i), true
		}
	}
	return 0, false
}

// Position is the pillar slot within a chart.
type Position int

const (
	Year Position = iota
	Month
	Day
	Hour
)

var positionNames = [4]string{"year", "month", "day", "hour"}

func (p Position) String() string {
	if p < Year || p > Hour {
		return fmt.Sprintf("position(%d)", int(p))
	}
	return positionNames[p]
}

// Pillar is one (stem, branch) pair.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

func (p Pillar) String() string { return p.Stem.String() + p.Branch.String() }

func (p Pillar) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// FourPillars is the Year, Month, Day and Hour pillars of a chart.
type FourPillars [4]Pillar

func (fp FourPillars) String() string {
	parts := make([]string, len(fp))
	for i, p := range fp {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// MonthBranch returns the branch that selects the season.
func (fp FourPillars) MonthBranch() Branch { return fp[Month].Branch }

// Validate reports the first token outside its canonical alphabet.
func (fp FourPillars) Validate() error {
	for i, p := range fp {
		if !p.Stem.Valid() {
			return &InvalidSymbolError{Token: p.Stem.String(), Position: Position(i), Kind: SymbolStem}
		}
		if !p.Branch.Valid() {
			return &InvalidSymbolError{Token: p.Branch.String(), Position: Position(i), Kind: SymbolBranch}
		}
	}
	return nil
}

// ParsePillars builds FourPillars from eight Hanzi tokens ordered
// stem, branch, stem, branch... for Year, Month, Day and Hour.
func ParsePillars(tokens []string) (FourPillars, error) {
	var fp FourPillars
	if len(tokens) != 8 {
		return fp, &MalformedInputError{Tokens: len(tokens)}
	}
	for i := range fp {
		pos := Position(i)
		st, sb := tokens[2*i], tokens[2*i+1]
		stem, ok := ParseStem(st)
		if !ok {
			return FourPillars{}, &InvalidSymbolError{Token: st, Position: pos, Kind: SymbolStem}
		}
		branch, ok := ParseBranch(sb)
		if !ok {
			return FourPillars{}, &InvalidSymbolError{Token: sb, Position: pos, Kind: SymbolBranch}
		}
		fp[i] = Pillar{Stem: stem, Branch: branch}
	}
	return fp, nil
}

// MustParsePillars is ParsePillars for literals in tests and tables; it panics on error.
func MustParsePillars(s string) FourPillars {
	var tokens []string
	for _, r := range strings.ReplaceAll(s, " ", "") {
		tokens = append(tokens, string(r))
	}
	fp, err := ParsePillars(tokens)
	if err != nil {
		panic(err)
	}
	return fp
}
