// Package attribute models the six bounded character attributes and the
// bonus each one contributes to task checks.
package attribute

import "fmt"

// Kind identifies one of the six attributes.
type Kind int

const (
	// Strength is natural physical strength.
	Strength Kind = iota
	// Dexterity covers agility, reflexes, coordination and fine motor control.
	Dexterity
	// Endurance is physical stamina and the ability to sustain damage.
	Endurance
	// Intelligence is raw quickness of mind.
	Intelligence
	// Education is accumulated learning and experience.
	Education
	// Charm is untrained charisma and social aptitude.
	Charm
)

var kindNames = [...]string{
	Strength:     "strength",
	Dexterity:    "dexterity",
	Endurance:    "endurance",
	Intelligence: "intelligence",
	Education:    "education",
	Charm:        "charm",
}

// Kinds returns all six kinds in canonical order.
func Kinds() []Kind {
	return []Kind{Strength, Dexterity, Endurance, Intelligence, Education, Charm}
}

// String returns the lower-case attribute name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("attribute(%d)", int(k))
	}
	return kindNames[k]
}

// Abbrev returns the three-letter display label, e.g. "STR".
func (k Kind) Abbrev() string {
	switch k {
	case Strength:
		return "STR"
	case Dexterity:
		return "DEX"
	case Endurance:
		return "END"
	case Intelligence:
		return "INT"
	case Education:
		return "EDU"
	case Charm:
		return "CHA"
	default:
		return fmt.Sprintf("<%d>", int(k))
	}
}

// ParseKind returns the Kind named by s (full lower-case name or three-letter label).
//
// Postcondition: Returns the matching Kind or a non-nil error.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if s == k.String() || s == k.Abbrev() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("attribute: unknown attribute %q", s)
}
