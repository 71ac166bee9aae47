package dice

import "slices"

// Roll evaluates an Expression using the given Source and returns a RollResult.
// Dice are drawn independently, one Intn(Sides) call per die, in order.
//
// Precondition: expr must come from Parse (Count >= 1, Sides >= 2); src must be non-nil.
// Postcondition: len(result.Dice)+len(result.Dropped) == expr.Count;
// len(result.Dice) == expr.KeepCount when expr.Keep != KeepAll.
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}

	result := RollResult{
		Expression: expr.Raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
	if expr.Keep == KeepAll {
		return result
	}

	sorted := slices.Clone(rolled)
	slices.Sort(sorted)
	if expr.Keep == KeepHighest {
		slices.Reverse(sorted)
	}
	result.Dice = sorted[:expr.KeepCount]
	result.Dropped = sorted[expr.KeepCount:]
	return result
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a RollResult or a parse error.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src), nil
}
