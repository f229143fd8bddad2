package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulesAreWellFormed(t *testing.T) {
	modules := Modules()
	require.NotEmpty(t, modules)

	seen := make(map[string]bool)
	for _, m := range modules {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Explanation)
		assert.NotEmpty(t, m.Materials, "module %s", m.ID)
		assert.False(t, seen[m.ID], "duplicate module id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestModuleByID(t *testing.T) {
	m, ok := ModuleByID("legal")
	require.True(t, ok)
	assert.Equal(t, "Legislación Ley 21.659", m.Title)

	_, ok = ModuleByID("nope")
	assert.False(t, ok)
}

func TestOfficialLinksPointToBCN(t *testing.T) {
	links := OfficialLinks()
	require.NotEmpty(t, links)
	for _, l := range links {
		assert.Contains(t, l.URL, "https://www.bcn.cl/")
	}
}
