package notation

import (
	"strings"
	"unicode"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/fatih/camelcase"
)

// Parser implements domain.PillarParser for Hanzi and pinyin chart notation.
// Tokens may be separated by whitespace, commas, slashes or dashes, or written
// back to back ("甲子乙丑…", "JiaZi YiChou …").
type Parser struct{}

// New creates a Parser.
func New() *Parser { return &Parser{} }

var (
	stemsByPinyin    = map[string]domain.Stem{}
	branchesByPinyin = map[string]domain.Branch{}
)

func init() {
	for _, s := range domain.Stems {
		stemsByPinyin[s.Pinyin()] = s
	}
	for _, b := range domain.Branches {
		branchesByPinyin[b.Pinyin()] = b
	}
}

// Parse converts input into FourPillars; an empty notation means auto.
// Errors are the domain's MalformedInputError and InvalidSymbolError.
func (p *Parser) Parse(input string, n domain.Notation) (domain.FourPillars, error) {
	if n == "" {
		n = domain.NotationAuto
	}
	var tokens []string
	for _, field := range strings.FieldsFunc(input, isSeparator) {
		tokens = append(tokens, split(field, n)...)
	}
	if n != domain.NotationHanzi {
		for i, tok := range tokens {
			tokens[i] = toHanzi(tok, i%2 == 0)
		}
	}
	return domain.ParsePillars(tokens)
}

func split(field string, n domain.Notation) []string {
	if n == domain.NotationHanzi || (n == domain.NotationAuto && !isASCII(field)) {
		out := make([]string, 0, len(field)/3)
		for _, r := range field {
			out = append(out, string(r))
		}
		return out
	}
	var out []string
	for _, word := range camelcase.Split(field) {
		out = append(out, splitRun(word)...)
	}
	return out
}

// splitRun separates a lower-case stem+branch run such as "jiazi".
func splitRun(word string) []string {
	lower := strings.ToLower(word)
	if _, ok := stemsByPinyin[lower]; ok {
		return []string{word}
	}
	if _, ok := branchesByPinyin[lower]; ok {
		return []string{word}
	}
	for py := range stemsByPinyin {
		rest, ok := strings.CutPrefix(lower, py)
		if !ok {
			continue
		}
		if _, ok := branchesByPinyin[rest]; ok {
			return []string{word[:len(py)], word[len(py):]}
		}
	}
	return []string{word}
}

// toHanzi maps a pinyin token to its Hanzi symbol. The slot decides between
// homophones such as wu (戊 stem, 午 branch). Unknown tokens pass through.
func toHanzi(tok string, stemSlot bool) string {
	lower := strings.ToLower(tok)
	if stemSlot {
		if s, ok := stemsByPinyin[lower]; ok {
			return s.String()
		}
		return tok
	}
	if b, ok := branchesByPinyin[lower]; ok {
		return b.String()
	}
	return tok
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '/' || r == '-' || r == '|'
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
