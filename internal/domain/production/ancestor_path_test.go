package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

func TestAncestorPath_Empty(t *testing.T) {
	var path *production.AncestorPath

	assert.Equal(t, 0, path.Len())
	assert.False(t, path.Contains("a"))
	assert.Empty(t, path.IDs())
}

func TestAncestorPath_WithDoesNotModifyParent(t *testing.T) {
	var root *production.AncestorPath
	a := root.With("a")
	ab := a.With("b")
	ac := a.With("c")

	assert.Equal(t, []string{"a"}, a.IDs())
	assert.Equal(t, []string{"a", "b"}, ab.IDs())
	assert.Equal(t, []string{"a", "c"}, ac.IDs())

	assert.True(t, ab.Contains("a"))
	assert.True(t, ab.Contains("b"))
	assert.False(t, ab.Contains("c"), "siblings must not see each other")
	assert.False(t, a.Contains("b"))
	assert.Equal(t, 2, ac.Len())
}

func TestBuildWarning_Message(t *testing.T) {
	path := []string{"a", "b"}
	warning := production.BuildWarning{Kind: production.WarningCycle, ItemID: "a", Path: path}

	assert.Equal(t, "circular recipe reference for a: a -> b -> a", warning.Message())
	assert.Equal(t, []string{"a", "b"}, path)

	metadata := warning.Metadata()
	assert.Equal(t, "cycle", metadata["kind"])
	assert.Equal(t, "a", metadata["item_id"])
	assert.NotContains(t, metadata, "facility_id")
}
