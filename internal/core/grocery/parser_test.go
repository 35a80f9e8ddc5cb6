package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFraction(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1 1/2", 1.5},
		{"3/4", 0.75},
		{"2-4", 3},
		{"1 to 3", 2},
		{"2.5", 2.5},
		{"foo", 1.0},
		{"1/0", 1.0},
		{"2 1/0", 1.0},
		{"", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseFraction(tt.input), 1e-9)
		})
	}
}

func TestParseQuantityAndUnit(t *testing.T) {
	p := NewParser(NewLexicon())

	tests := []struct {
		line     string
		quantity float64
		unit     string
		key      string
	}{
		{"2 cups spinach", 2, "cup", "spinach"},
		{"1 tbsp olive oil", 1, "tbsp", "olive oil"},
		{"2 eggs", 2, "item", "eggs"},
		{"1 1/2 cups rice", 1.5, "cup", "rice"},
		{"1-2 cups flour", 1.5, "cup", "flour"},
		{"6 cloves garlic", 6, "clove", "garlic"},
		{"1 lb beef", 1, "lbs", "ground beef"},
		{"2 cups of flour", 2, "cup", "flour"},
		{"salt", 1, "item", "salt"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := p.Parse(tt.line, 0)
			require.NotNil(t, got)
			assert.InDelta(t, tt.quantity, got.Quantity, 1e-9)
			assert.Equal(t, tt.unit, got.Unit)
			assert.Equal(t, tt.key, got.IngredientKey)
			assert.Equal(t, tt.line, got.OriginalText)
		})
	}
}

func TestParseStripsDescriptors(t *testing.T) {
	p := NewParser(NewLexicon())

	got := p.Parse("2 cups fresh chopped spinach", 0)
	require.NotNil(t, got)
	assert.Equal(t, "spinach", got.IngredientKey)

	// "frozen" is stripped, so frozen items resolve by their bare name.
	got = p.Parse("1 bag frozen peas", 0)
	require.NotNil(t, got)
	assert.Equal(t, "peas", got.IngredientKey)
	assert.Equal(t, "bag", got.Unit)
}

func TestParseRejectsUnusable(t *testing.T) {
	p := NewParser(NewLexicon())

	assert.Nil(t, p.Parse("x", 0), "too short")
	assert.Nil(t, p.Parse("  ", 0), "whitespace only")
	assert.Nil(t, p.Parse("1 cup unicorn dust", 0), "unresolvable name")
}

func TestFindBestMatchStrategies(t *testing.T) {
	p := NewParser(NewLexicon())

	// Exact hit.
	got := p.Parse("1 head broccoli", 0)
	require.NotNil(t, got)
	assert.Equal(t, "broccoli", got.IngredientKey)

	// Alias hit.
	got = p.Parse("3 scallions", 0)
	require.NotNil(t, got)
	assert.Equal(t, "green onions", got.IngredientKey)

	// Substring: key contained in a longer name at >= 0.5 score.
	got = p.Parse("2 cups spinach leaves", 0)
	require.NotNil(t, got)
	assert.Equal(t, "spinach", got.IngredientKey)

	// Token overlap: every key token appears despite extra words.
	got = p.Parse("2 boneless chicken breast fillets", 0)
	require.NotNil(t, got)
	assert.Equal(t, "chicken breast", got.IngredientKey)
}
