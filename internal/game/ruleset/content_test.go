package ruleset_test

import (
	"testing"

	"github.com/cory-johannsen/traveller/internal/game/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates_ShippedContent(t *testing.T) {
	templates, err := ruleset.LoadTemplates("../../../content/templates")
	require.NoError(t, err)
	reg := ruleset.NewTemplateRegistry()
	for _, tmpl := range templates {
		reg.Register(tmpl)
	}
	assert.Equal(t, []string{"broker", "marine", "scout"}, reg.IDs())
}
