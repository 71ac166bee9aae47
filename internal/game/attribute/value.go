package attribute

// Value is a single bounded attribute with a current and a maximum score.
//
// Invariant: Max never changes after construction. Heal never raises Current
// above Max. Damage has no floor: Current may go below zero.
type Value struct {
	current int
	max     int
}

// NewValue returns a Value at full strength.
//
// Postcondition: Current() == Max() == seed.
func NewValue(seed int) Value {
	return Value{current: seed, max: seed}
}

// Current returns the current score. Used for almost every check.
func (v Value) Current() int { return v.current }

// Max returns the maximum score fixed at construction.
func (v Value) Max() int { return v.max }

// Bonus returns the dice modifier the current score contributes to checks.
func (v Value) Bonus() int { return Bonus(v.current) }

// Bonus maps a score to its dice modifier:
//
//	<=0 → -3, 1-2 → -2, 3-5 → -1, 6-8 → 0, 9-11 → +1, 12-14 → +2, >=15 → +3
func Bonus(score int) int {
	switch {
	case score <= 0:
		return -3
	case score <= 2:
		return -2
	case score <= 5:
		return -1
	case score <= 8:
		return 0
	case score <= 11:
		return 1
	case score <= 14:
		return 2
	default:
		return 3
	}
}

// Heal raises the current score by delta, capped at Max.
//
// Postcondition: no-op when delta <= 0; otherwise Current() == min(old+delta, Max()).
func (v *Value) Heal(delta int) {
	if delta <= 0 {
		return
	}
	v.current = min(v.current+delta, v.max)
}

// Damage lowers the current score by delta.
//
// Postcondition: no-op when delta <= 0; otherwise Current() == old-delta, with no floor.
func (v *Value) Damage(delta int) {
	if delta <= 0 {
		return
	}
	v.current -= delta
}
