package skill_test

import (
	"testing"

	"github.com/cory-johannsen/traveller/internal/game/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range skill.Kinds() {
		got, err := skill.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := skill.ParseKind("basket_weaving")
	assert.Error(t, err)
}

func TestGeneral(t *testing.T) {
	cases := map[skill.Kind]skill.Kind{
		skill.MeleeUnarmed:          skill.Melee,
		skill.MeleeBludgeoning:      skill.Melee,
		skill.RangedTwoHanded:       skill.Ranged,
		skill.HeavyWeaponsArtillery: skill.HeavyWeapons,
		skill.AthleticsEndurance:    skill.Athletics,
		skill.DriveWalker:           skill.Drive,
	}
	for spec, want := range cases {
		got, ok := skill.General(spec)
		require.True(t, ok, spec.String())
		assert.Equal(t, want, got)
	}
	for _, k := range []skill.Kind{skill.Melee, skill.Ranged, skill.Explosives, skill.VaccSuit, skill.LanguageBasic} {
		_, ok := skill.General(k)
		assert.False(t, ok, k.String())
	}
}

func TestGeneral_NeverChains(t *testing.T) {
	for _, k := range skill.Kinds() {
		if g, ok := skill.General(k); ok {
			_, nested := skill.General(g)
			assert.False(t, nested, "%s → %s must be a general skill", k, g)
		}
	}
}

func TestKind_UnmarshalYAML(t *testing.T) {
	var entries []skill.Entry
	err := yaml.Unmarshal([]byte(`
- skill: melee_blades
  level: 2
- skill: vacc_suit
  level: 0
`), &entries)
	require.NoError(t, err)
	assert.Equal(t, []skill.Entry{
		{Skill: skill.MeleeBlades, Level: 2},
		{Skill: skill.VaccSuit, Level: 0},
	}, entries)
}

func TestKind_UnmarshalYAML_Unknown(t *testing.T) {
	var entries []skill.Entry
	err := yaml.Unmarshal([]byte("- skill: juggling\n  level: 1\n"), &entries)
	assert.ErrorContains(t, err, "juggling")
}
