package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyForSection(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  Difficulty
	}{
		{"preamble", 0, Unknown},
		{"first section", 1, Common},
		{"second section", 2, Basic},
		{"third section", 3, Advanced},
		{"fourth section", 4, Unknown},
		{"past the table", 5, Unknown},
		{"far past the table", 42, Unknown},
		{"negative", -1, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DifficultyForSection(tt.index))
		})
	}
}

func TestDifficulty_String(t *testing.T) {
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Common", Common.String())
	assert.Equal(t, "Basic", Basic.String())
	assert.Equal(t, "Advanced", Advanced.String())
	assert.Equal(t, "Unknown", Difficulty(99).String())
}

func TestEntry_Accessors(t *testing.T) {
	e := NewEntry("abate", "to lessen ", "The storm abated", Basic)

	assert.Equal(t, "abate", e.Term())
	assert.Equal(t, "to lessen ", e.Definition())
	assert.Equal(t, "The storm abated", e.Example())
	assert.Equal(t, Basic, e.Difficulty())
}

func TestEntry_LessAndSameWord(t *testing.T) {
	a := NewEntry("abate", "x", "Y", Common)
	b := NewEntry("banal", "x", "Y", Common)
	a2 := NewEntry("abate", "other", "Other", Advanced)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a2))
	assert.True(t, a.SameWord(a2))
	assert.False(t, a.SameWord(b))
	assert.False(t, a.SameWord(NewEntry("Abate", "x", "Y", Common)))
}

func TestEntry_HTML(t *testing.T) {
	e := NewEntry("abate", "to lessen ", "The storm abated", Basic)

	want := `<article><div class="vocab-word"><div class="header"><h3 class="word">abate:</h3>` +
		`<h5 class="difficulty"><sup>Basic</sup></h5></div><h5 class="definition">to lessen </h5>` +
		`<p class="example">The storm abated.</p></div></article>`
	assert.Equal(t, want, e.HTML())
}

func TestEntry_HTMLEscapes(t *testing.T) {
	e := NewEntry("a<b", "x & y ", "Say \"hi\" > 2", Common)
	got := e.HTML()

	assert.Contains(t, got, "a&lt;b:")
	assert.Contains(t, got, "x &amp; y ")
	assert.Contains(t, got, "Say \"hi\" &gt; 2.")
}

func TestEntry_HTMLKeepsApostrophes(t *testing.T) {
	e := NewEntry("abate", "to lessen ", "The storm didn't abate", Common)

	assert.Contains(t, e.HTML(), `<p class="example">The storm didn't abate.</p>`)
}
