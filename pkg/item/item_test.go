package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrims(t *testing.T) {
	it, err := Parse("  Milk \t")
	require.NoError(t, err)
	assert.Equal(t, Item("Milk"), it)
}

func TestParseRejectsBlank(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrEmpty, "input %q", in)
	}
}

func TestSameIgnoresCase(t *testing.T) {
	assert.True(t, Item("Milk").Same("milk"))
	assert.True(t, Item("Milk").Same(" MILK "))
	assert.False(t, Item("Milk").Same("Milkshake"))
}

func TestMatches(t *testing.T) {
	cases := []struct {
		item  Item
		query string
		want  bool
	}{
		{"Milk", "mi", true},
		{"Milk", "MI", true},
		{"Eggs", "mi", false},
		{"Bread", "", true},
		{"Almond milk", "d m", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.item.Matches(tc.query), "%q ~ %q", tc.item, tc.query)
	}
}

func TestFromStringsDropsBlank(t *testing.T) {
	got := FromStrings([]string{"Eggs", " ", "Milk "})
	assert.Equal(t, []Item{"Eggs", "Milk"}, got)
	assert.Equal(t, []string{"Eggs", "Milk"}, Strings(got))
}
