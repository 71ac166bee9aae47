package check

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/traveller/internal/game/dice"
)

// BoonOrBane is an optional advantage or disadvantage on a roll.
// The zero value means neither applies.
type BoonOrBane int

const (
	// None rolls 2d6.
	None BoonOrBane = iota
	// Boon rolls 3d6 and drops the lowest die.
	Boon
	// Bane rolls 3d6 and drops the highest die.
	Bane
)

// String returns "none", "boon" or "bane".
func (b BoonOrBane) String() string {
	switch b {
	case Boon:
		return "boon"
	case Bane:
		return "bane"
	default:
		return "none"
	}
}

var (
	plainRoll = dice.MustParse("2d6")
	boonRoll  = dice.MustParse("3d6kh2")
	baneRoll  = dice.MustParse("3d6kl2")
)

// Expression returns the dice expression rolled for b.
func (b BoonOrBane) Expression() dice.Expression {
	switch b {
	case Boon:
		return boonRoll
	case Bane:
		return baneRoll
	default:
		return plainRoll
	}
}

// Outcome is whether a check succeeded.
type Outcome int

const (
	Success Outcome = iota
	Failure
)

// String returns "success" or "failure".
func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Result is the outcome of one task check.
//
// Invariant: Outcome == Success iff Effect >= 0.
type Result struct {
	Outcome Outcome
	// Effect is roll + DM - target: the margin of success, or of failure when negative.
	Effect     int
	DM         int
	Difficulty Difficulty
	Roll       dice.RollResult
}

// Succeeded reports whether Outcome is Success.
func (r Result) Succeeded() bool { return r.Outcome == Success }

// String returns a one-line summary, e.g. "average (8): 2d6 → [3 5] +0 = 8, DM +1, success (effect +1)".
func (r Result) String() string {
	return fmt.Sprintf("%s (%d): %s, DM %+d, %s (effect %+d)",
		r.Difficulty, r.Difficulty.Target(), r.Roll, r.DM, r.Outcome, r.Effect)
}

// Classify builds the Result for a finished roll.
//
// Postcondition: Effect == roll.Total() + dm - difficulty.Target().
func Classify(roll dice.RollResult, dm int, difficulty Difficulty) Result {
	effect := roll.Total() + dm - difficulty.Target()
	outcome := Success
	if effect < 0 {
		outcome = Failure
	}
	return Result{
		Outcome:    outcome,
		Effect:     effect,
		DM:         dm,
		Difficulty: difficulty,
		Roll:       roll,
	}
}

// TaskCheck rolls 2d6 (or 3d6 keeping two, under boon or bane) with src and
// compares roll + dm against the difficulty's target number.
//
// Precondition: src must be non-nil.
func TaskCheck(dm int, difficulty Difficulty, bb BoonOrBane, src dice.Source) Result {
	return Classify(Roll(bb, src), dm, difficulty)
}

// Roll draws the dice for a check: 2d6, or three dice keeping the best two
// under a boon and the worst two under a bane.
//
// Postcondition: 2 <= Total() <= 12.
func Roll(bb BoonOrBane, src dice.Source) dice.RollResult {
	return dice.Roll(bb.Expression(), src)
}

// Checker performs task checks through a logged roller.
type Checker struct {
	roller *dice.Roller
	logger *zap.Logger
}

// NewChecker returns a Checker that rolls with roller and logs each check to logger.
//
// Precondition: roller and logger must be non-nil.
func NewChecker(roller *dice.Roller, logger *zap.Logger) *Checker {
	return &Checker{roller: roller, logger: logger}
}

// Check performs a task check and logs its outcome at debug level.
func (c *Checker) Check(dm int, difficulty Difficulty, bb BoonOrBane) Result {
	res := Classify(c.roller.Roll(bb.Expression()), dm, difficulty)
	c.logger.Debug("task check",
		zap.Stringer("difficulty", difficulty),
		zap.Int("target", difficulty.Target()),
		zap.Stringer("boon_or_bane", bb),
		zap.Int("dm", dm),
		zap.Int("roll", res.Roll.Total()),
		zap.Int("effect", res.Effect),
		zap.Stringer("outcome", res.Outcome),
	)
	return res
}
