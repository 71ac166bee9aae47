package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/traveller/internal/game/attribute"
	"github.com/cory-johannsen/traveller/internal/game/ruleset"
	"github.com/cory-johannsen/traveller/internal/game/skill"
)

// attributesFrom starts every attribute at the default score and applies the template overrides.
func attributesFrom(scores map[string]int) (*attribute.Set, error) {
	values := make(map[attribute.Kind]int, len(attribute.Kinds()))
	for _, k := range attribute.Kinds() {
		values[k] = attribute.DefaultScore
	}
	for name, score := range scores {
		k, err := attribute.ParseKind(name)
		if err != nil {
			return nil, err
		}
		values[k] = score
	}
	return attribute.NewSet(
		values[attribute.Strength],
		values[attribute.Dexterity],
		values[attribute.Endurance],
		values[attribute.Intelligence],
		values[attribute.Education],
		values[attribute.Charm],
	), nil
}

// FromTemplate constructs a Character named name from a stat-block template.
// Attributes missing from the template start at attribute.DefaultScore.
//
// Precondition: name must be non-empty; tmpl must be non-nil.
// Postcondition: Returns a Character or a non-nil error.
func FromTemplate(name string, tmpl *ruleset.Template) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if tmpl == nil {
		return nil, errors.New("template must not be nil")
	}
	attrs, err := attributesFrom(tmpl.Attributes)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", tmpl.ID, err)
	}
	return New(name, attrs, skill.NewTable(tmpl.Skills...)), nil
}
