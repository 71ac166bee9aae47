// Package check resolves task checks: a dice roll plus a modifier against the
// target number of a difficulty tier.
package check

import "fmt"

// Difficulty is a task difficulty tier.
type Difficulty int

const (
	Simple Difficulty = iota
	Easy
	Routine
	Average
	Difficult
	VeryDifficult
	Formidable
	Impossible
)

var difficultyNames = [...]string{
	Simple:        "simple",
	Easy:          "easy",
	Routine:       "routine",
	Average:       "average",
	Difficult:     "difficult",
	VeryDifficult: "very_difficult",
	Formidable:    "formidable",
	Impossible:    "impossible",
}

// Difficulties returns every tier from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Simple, Easy, Routine, Average, Difficult, VeryDifficult, Formidable, Impossible}
}

// Target returns the number a roll plus DM must reach to succeed.
//
// Postcondition: Simple → 2, and each harder tier adds 2, up to Impossible → 16.
func (d Difficulty) Target() int {
	switch d {
	case Simple:
		return 2
	case Easy:
		return 4
	case Routine:
		return 6
	case Average:
		return 8
	case Difficult:
		return 10
	case VeryDifficult:
		return 12
	case Formidable:
		return 14
	case Impossible:
		return 16
	default:
		panic(fmt.Sprintf("check: Difficulty.Target precondition violated: unknown difficulty %d", int(d)))
	}
}

// String returns the snake_case tier name.
func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty returns the tier with the given snake_case name.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("check: unknown difficulty %q", s)
}
