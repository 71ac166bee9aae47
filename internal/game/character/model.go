// Package character ties a character's attributes and skills together and
// derives the dice modifier each task check uses.
package character

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/traveller/internal/game/attribute"
	"github.com/cory-johannsen/traveller/internal/game/check"
	"github.com/cory-johannsen/traveller/internal/game/skill"
)

// Character owns one attribute set and one skill table.
//
// Callers sharing a Character across goroutines must serialize Heal and Damage themselves.
type Character struct {
	ID         uuid.UUID
	Name       string
	Attributes *attribute.Set
	Skills     *skill.Table
}

// New returns a Character with a fresh ID.
//
// Precondition: attrs and skills must be non-nil.
func New(name string, attrs *attribute.Set, skills *skill.Table) *Character {
	return &Character{
		ID:         uuid.New(),
		Name:       name,
		Attributes: attrs,
		Skills:     skills,
	}
}

// AttributeDM returns the bonus of the given attribute.
func (c *Character) AttributeDM(attr attribute.Kind) int {
	return c.Attributes.Bonus(attr)
}

// DM returns the combined dice modifier for a check using attr and sk.
//
// Postcondition: return value == attribute bonus + skill DM.
func (c *Character) DM(attr attribute.Kind, sk skill.Kind) int {
	return c.AttributeDM(attr) + c.Skills.DM(sk)
}

// Check performs a task check with the combined attribute and skill DM.
//
// Precondition: checker must be non-nil.
func (c *Character) Check(checker *check.Checker, attr attribute.Kind, sk skill.Kind, difficulty check.Difficulty, bb check.BoonOrBane) check.Result {
	return checker.Check(c.DM(attr, sk), difficulty, bb)
}

// AttributeCheck performs a task check with the attribute bonus alone.
//
// Precondition: checker must be non-nil.
func (c *Character) AttributeCheck(checker *check.Checker, attr attribute.Kind, difficulty check.Difficulty, bb check.BoonOrBane) check.Result {
	return checker.Check(c.AttributeDM(attr), difficulty, bb)
}
