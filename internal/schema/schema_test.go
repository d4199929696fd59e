package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownCategories(t *testing.T) {
	for _, name := range Categories() {
		cat, err := Lookup(name)
		require.NoError(t, err, "category %s", name)
		assert.Equal(t, name, cat.Name)
		assert.NotEmpty(t, cat.TableID)
		assert.Greater(t, cat.OldestYear, 1900)

		// Identity block leads every schema, with the URL at its fixed slot.
		require.GreaterOrEqual(t, len(cat.Fields), IdentityPos+1)
		assert.Equal(t, NameField, cat.Fields[0].Name)
		assert.Equal(t, IdentityField, cat.Fields[IdentityPos].Name)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	cat, err := Lookup("RuShInG")
	require.NoError(t, err)
	assert.Equal(t, "rushing", cat.Name)
}

func TestLookupUnknownCategory(t *testing.T) {
	_, err := Lookup("bowling")
	require.Error(t, err)

	var ucErr *UnknownCategoryError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, "bowling", ucErr.Category)
	assert.Equal(t, Categories(), ucErr.Valid)
	assert.Contains(t, err.Error(), "bowling")
	assert.Contains(t, err.Error(), "rushing")
}

func TestOldestYears(t *testing.T) {
	want := map[string]int{
		"rushing":   1932,
		"passing":   1932,
		"receiving": 1932,
		"kicking":   1938,
		"returns":   1941,
		"scoring":   1922,
		"fantasy":   1970,
		"defense":   1940,
	}
	for name, year := range want {
		got, err := OldestYear(name)
		require.NoError(t, err, "category %s", name)
		assert.Equal(t, year, got, "category %s", name)
	}

	_, err := OldestYear("curling")
	assert.Error(t, err)
}

func TestFieldNamesUniquePerCategory(t *testing.T) {
	for _, name := range Categories() {
		cat, err := Lookup(name)
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, f := range cat.Fields {
			assert.False(t, seen[f.Name], "duplicate field %s in %s", f.Name, name)
			seen[f.Name] = true
		}
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	a := Categories()
	a[0] = "mutated"
	b := Categories()
	assert.Equal(t, "rushing", b[0])
}
