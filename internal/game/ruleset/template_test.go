package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/traveller/internal/game/ruleset"
	"github.com/cory-johannsen/traveller/internal/game/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadTemplates_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "marine.yaml"), `
id: marine
name: "Marine"
description: "Ship-board trooper."
attributes:
  strength: 9
  endurance: 10
skills:
  - skill: ranged_two_handed
    level: 2
  - skill: vacc_suit
    level: 1
`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	templates, err := ruleset.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	m := templates[0]
	assert.Equal(t, "marine", m.ID)
	assert.Equal(t, "Marine", m.Name)
	assert.Equal(t, 9, m.Attributes["strength"])
	assert.Equal(t, 10, m.Attributes["endurance"])
	assert.Equal(t, []skill.Entry{
		{Skill: skill.RangedTwoHanded, Level: 2},
		{Skill: skill.VaccSuit, Level: 1},
	}, m.Skills)
}

func TestLoadTemplates_EmptyDir(t *testing.T) {
	templates, err := ruleset.LoadTemplates(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestLoadTemplates_MissingDir(t *testing.T) {
	_, err := ruleset.LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadTemplates_UnknownSkill(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yml"), "id: bad\nname: Bad\nskills:\n  - skill: knitting\n    level: 1\n")
	_, err := ruleset.LoadTemplates(dir)
	assert.ErrorContains(t, err, "knitting")
}

func TestLoadTemplate_MissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.yaml")
	writeFile(t, path, "name: Nobody\n")
	_, err := ruleset.LoadTemplate(path)
	assert.Error(t, err)
}

func TestTemplateRegistry_Lookup(t *testing.T) {
	reg := ruleset.NewTemplateRegistry()
	reg.Register(&ruleset.Template{ID: "scout", Name: "Scout"})
	reg.Register(&ruleset.Template{ID: "broker", Name: "Broker"})

	got, ok := reg.Template("scout")
	require.True(t, ok)
	assert.Equal(t, "Scout", got.Name)

	_, ok = reg.Template("noble")
	assert.False(t, ok)
	assert.Equal(t, []string{"broker", "scout"}, reg.IDs())
}

func TestTemplateRegistry_Register_NilPanics(t *testing.T) {
	reg := ruleset.NewTemplateRegistry()
	assert.Panics(t, func() { reg.Register(nil) })
	assert.Panics(t, func() { reg.Register(&ruleset.Template{}) })
}

func TestTemplateRegistry_Property_LastRegistrationWins(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "id")
		names := rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{1,8}`), 1, 5).Draw(rt, "names")
		reg := ruleset.NewTemplateRegistry()
		for _, n := range names {
			reg.Register(&ruleset.Template{ID: id, Name: n})
		}
		got, ok := reg.Template(id)
		require.True(rt, ok)
		assert.Equal(rt, names[len(names)-1], got.Name)
	})
}
