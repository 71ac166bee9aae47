package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Keep selects which dice survive when an expression rolls more dice than it keeps.
type Keep int

const (
	// KeepAll keeps every die rolled.
	KeepAll Keep = iota
	// KeepHighest keeps the N highest dice (e.g. 3d6kh2).
	KeepHighest
	// KeepLowest keeps the N lowest dice (e.g. 3d6kl2).
	KeepLowest
)

// Expression represents a parsed dice expression ready to be rolled.
// Precondition: Count >= 1, Sides >= 2 after successful Parse.
// When Keep != KeepAll, 0 < KeepCount < Count.
type Expression struct {
	Raw       string // original input string
	Count     int    // number of dice
	Sides     int    // faces per die
	Modifier  int    // flat modifier (may be negative)
	Keep      Keep
	KeepCount int
}

var keepSuffixes = []struct {
	suffix string
	keep   Keep
}{
	{"kh", KeepHighest},
	{"kl", KeepLowest},
}

// Parse parses a dice expression string into an Expression.
// Supported forms: "d6", "2d6", "2d6+3", "4d8-2", "3d6kh2", "3d6kl2-1".
// Precondition: expr must be a non-empty string.
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	if expr == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	raw := expr
	s := strings.ToLower(strings.TrimSpace(expr))

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	// Count defaults to 1 when omitted.
	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	rest := s[dIdx+1:]

	// Split off the modifier: the first '+' or '-' after position 0.
	modStr := ""
	if i := strings.IndexAny(rest, "+-"); i > 0 {
		modStr = rest[i:]
		rest = rest[:i]
	}

	keep := KeepAll
	keepCount := 0
	for _, rule := range keepSuffixes {
		suffix := rule.suffix
		idx := strings.Index(rest, suffix)
		if idx < 0 {
			continue
		}
		n, err := strconv.Atoi(rest[idx+2:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid %s value in %q: %w", suffix, raw, err)
		}
		if n <= 0 || n >= count {
			return Expression{}, fmt.Errorf("dice: %s value %d must be > 0 and < count %d in %q", suffix, n, count, raw)
		}
		keep, keepCount = rule.keep, n
		rest = rest[:idx]
		break
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
	}

	return Expression{
		Raw:       raw,
		Count:     count,
		Sides:     sides,
		Modifier:  modifier,
		Keep:      keep,
		KeepCount: keepCount,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level values.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}
