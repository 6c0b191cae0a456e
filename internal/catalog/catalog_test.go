package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/catalog"
)

func testSchema() []string {
	return []string{"itching", "vomiting", "headache", "high_fever", "skin_rash"}
}

func TestNew_ValidatesGroupsAgainstSchema(t *testing.T) {
	groups := []catalog.CategoryGroup{
		{Name: "Skin", IDs: []string{"itching", "skin_rash"}},
		{Name: "General", IDs: []string{"not_a_feature"}},
	}

	_, err := catalog.New(testSchema(), groups, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_a_feature")
}

func TestNew_RejectsDoubleAssignment(t *testing.T) {
	groups := []catalog.CategoryGroup{
		{Name: "Skin", IDs: []string{"itching"}},
		{Name: "General", IDs: []string{"itching"}},
	}

	_, err := catalog.New(testSchema(), groups, nil)
	require.Error(t, err)
}

func TestNew_RejectsAmbiguousDisplayNames(t *testing.T) {
	// Two canonical ids collapsing onto the same display form would make
	// selection resolution ambiguous.
	schema := []string{"high_fever", "high fever"}

	_, err := catalog.New(schema, nil, nil)
	require.Error(t, err)
}

func TestNew_RejectsOverrideCollidingWithCanonicalID(t *testing.T) {
	// An override whose display form normalizes onto another feature's
	// canonical id would silently remap that feature's lookup entry.
	schema := []string{"alpha", "b_c"}
	overrides := map[string]string{"alpha": "B C", "b_c": "Zeta"}

	_, err := catalog.New(schema, nil, overrides)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "b_c")
}

func TestNew_UnassignedFeaturesLandInOther(t *testing.T) {
	groups := []catalog.CategoryGroup{
		{Name: "Skin", IDs: []string{"itching", "skin_rash"}},
	}

	c, err := catalog.New(testSchema(), groups, nil)
	require.NoError(t, err)

	categories := c.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Skin", categories[0].Name)
	assert.Equal(t, catalog.OtherCategory, categories[1].Name)

	var other []string
	for _, s := range categories[1].Symptoms {
		other = append(other, s.CanonicalID)
	}
	assert.Equal(t, []string{"vomiting", "headache", "high_fever"}, other)
}

func TestResolve_DisplayAndCanonicalForms(t *testing.T) {
	c, err := catalog.New(testSchema(), nil, nil)
	require.NoError(t, err)

	cases := map[string]string{
		"itching":    "itching",
		"Itching":    "itching",
		"High Fever": "high_fever",
		"high_fever": "high_fever",
		"HIGH FEVER": "high_fever",
		"Skin Rash":  "skin_rash",
	}

	for input, want := range cases {
		id, ok := c.Resolve(input)
		assert.True(t, ok, "expected %q to resolve", input)
		assert.Equal(t, want, id)
	}

	_, ok := c.Resolve("totally_unknown")
	assert.False(t, ok)
}

func TestResolve_HonorsOverrides(t *testing.T) {
	overrides := map[string]string{"high_fever": "Fever (Above 102F)"}

	c, err := catalog.New(testSchema(), nil, overrides)
	require.NoError(t, err)

	id, ok := c.Resolve("Fever (Above 102F)")
	assert.True(t, ok)
	assert.Equal(t, "high_fever", id)

	display, ok := c.DisplayFor("high_fever")
	assert.True(t, ok)
	assert.Equal(t, "Fever (Above 102F)", display)
}

func TestDisplayName_Derivation(t *testing.T) {
	assert.Equal(t, "Nodal Skin Eruptions", catalog.DisplayName("nodal_skin_eruptions"))
	assert.Equal(t, "Itching", catalog.DisplayName("itching"))
}

func TestMatch_SubstringFallback(t *testing.T) {
	c, err := catalog.New(testSchema(), nil, nil)
	require.NoError(t, err)

	matches := c.Match("fever", 10)
	require.Len(t, matches, 1)
	assert.Equal(t, "high_fever", matches[0].CanonicalID)

	assert.Empty(t, c.Match("", 10))
}

func TestDefaultGroups_MatchBundledSchema(t *testing.T) {
	// The shipped layout must reference only features it declares; building
	// it over exactly its own ids exercises the validation path.
	var schema []string
	for _, group := range catalog.DefaultGroups() {
		schema = append(schema, group.IDs...)
	}

	c, err := catalog.New(schema, catalog.DefaultGroups(), catalog.DefaultOverrides())
	require.NoError(t, err)
	assert.Equal(t, len(schema), c.Len())

	// Every feature claimed by a group: no synthetic Other bucket.
	for _, category := range c.Categories() {
		assert.NotEqual(t, catalog.OtherCategory, category.Name)
	}
}
