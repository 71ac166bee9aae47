// Package dice provides the randomness abstraction and roll-result types used
// by task checks.
package dice

import "fmt"

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier. Dropped dice never count.
type RollResult struct {
	Expression string // original expression string, e.g. "3d6kh2"
	Dice       []int  // kept die results before modifier
	Dropped    []int  // die results discarded by a keep rule
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all kept die results plus the modifier.
//
// Postcondition: return value == sum(r.Dice) + r.Modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"3d6kh2 → [6 4] (dropped [1]) +0 = 10"
//
// The dropped segment is omitted when no dice were dropped.
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	diceStr := fmt.Sprintf("%v", r.Dice)
	if len(r.Dropped) > 0 {
		diceStr += fmt.Sprintf(" (dropped %v)", r.Dropped)
	}
	return fmt.Sprintf("%s → %s %+d = %d", r.Expression, diceStr, r.Modifier, r.Total())
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
