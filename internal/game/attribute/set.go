package attribute

// DefaultScore is the score every attribute starts at in DefaultSet.
const DefaultScore = 7

// Set holds exactly one Value per Kind. The set of kinds is fixed.
type Set struct {
	strength     Value
	dexterity    Value
	endurance    Value
	intelligence Value
	education    Value
	charm        Value
}

// NewSet builds a fully populated Set from six scores.
func NewSet(strength, dexterity, endurance, intelligence, education, charm int) *Set {
	return &Set{
		strength:     NewValue(strength),
		dexterity:    NewValue(dexterity),
		endurance:    NewValue(endurance),
		intelligence: NewValue(intelligence),
		education:    NewValue(education),
		charm:        NewValue(charm),
	}
}

// DefaultSet returns a Set with every attribute at DefaultScore.
func DefaultSet() *Set {
	d := DefaultScore
	return NewSet(d, d, d, d, d, d)
}

// Get returns a copy of the Value for kind.
func (s *Set) Get(kind Kind) Value {
	return *s.Mutable(kind)
}

// Mutable returns the stored Value for kind so callers can Heal or Damage it.
//
// Precondition: kind must be one of the six declared kinds; any other value
// panics, since the kind set is closed.
func (s *Set) Mutable(kind Kind) *Value {
	switch kind {
	case Strength:
		return &s.strength
	case Dexterity:
		return &s.dexterity
	case Endurance:
		return &s.endurance
	case Intelligence:
		return &s.intelligence
	case Education:
		return &s.education
	case Charm:
		return &s.charm
	default:
		panic("attribute: Set.Mutable precondition violated: unknown kind " + kind.String())
	}
}

// Bonus is shorthand for s.Get(kind).Bonus().
func (s *Set) Bonus(kind Kind) int {
	return s.Get(kind).Bonus()
}
