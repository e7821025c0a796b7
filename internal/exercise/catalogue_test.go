package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/makhraj/internal/curriculum"
)

func sampleEntry(title, category string, d curriculum.Difficulty) Entry {
	return Entry{
		Title:      title,
		Category:   category,
		Difficulty: d,
		Type:       KindTone,
		Questions: []AuthoredQuestion{
			{ID: "q1", Prompt: "ما الحرف الذي سمعته؟", Audio: "تَ", Options: []string{"ت", "ط"}, CorrectAnswer: 0},
		},
	}
}

func TestDefaultEntries_Valid(t *testing.T) {
	entries := DefaultEntries()
	require.NotEmpty(t, entries)

	ids := make(map[string]bool)
	for _, e := range entries {
		assert.NoError(t, e.Validate(), e.ID)
		assert.False(t, ids[e.ID], "duplicate id %s", e.ID)
		ids[e.ID] = true
	}
}

func TestCatalogue_AddAssignsCategoryID(t *testing.T) {
	var saved [][]byte
	c := NewCatalogue(CatalogueOptions{Persist: func(b []byte) error {
		saved = append(saved, b)
		return nil
	}})

	e, err := c.Add(sampleEntry("ت و ط", "similar-sounds", curriculum.Beginner))
	require.NoError(t, err)
	assert.Equal(t, "sim-3", e.ID)

	got, ok := c.Get("sim-3")
	require.True(t, ok)
	assert.Equal(t, "ت و ط", got.Title)
	assert.Len(t, saved, 1)

	e2, err := c.Add(sampleEntry("new", "fresh", curriculum.Beginner))
	require.NoError(t, err)
	assert.Equal(t, "fre-1", e2.ID)
}

func TestCatalogue_AddRejectsInvalid(t *testing.T) {
	c := NewCatalogue(CatalogueOptions{})
	n := len(c.All())

	bad := sampleEntry("x", "words", curriculum.Beginner)
	bad.Questions[0].CorrectAnswer = 5
	_, err := c.Add(bad)
	assert.ErrorIs(t, err, ErrInvalidExercise)

	bad = sampleEntry("x", "words", "expert")
	_, err = c.Add(bad)
	assert.ErrorIs(t, err, ErrInvalidExercise)

	assert.Len(t, c.All(), n)
}

func TestCatalogue_ByCategory(t *testing.T) {
	c := NewCatalogue(CatalogueOptions{})
	added, err := c.Add(sampleEntry("easy words", "words", curriculum.Beginner))
	require.NoError(t, err)

	words := c.ByCategory("words")
	pos := func(id string) int {
		for i, e := range words {
			if e.ID == id {
				return i
			}
		}
		return -1
	}
	assert.Less(t, pos(added.ID), pos("ci-minimal-pairs-2"), "beginner entries sort before intermediate")

	makharij := c.ByCategory("makharij")
	require.Len(t, makharij, 2)
	assert.Equal(t, "makharij-shafatan", makharij[0].ID, "makharij keeps authored order")

	assert.Empty(t, c.ByCategory("nope"))
}

func TestCatalogue_UpdateDeleteReset(t *testing.T) {
	c := NewCatalogue(CatalogueOptions{})

	require.NoError(t, c.Update("letters-1", func(e *Entry) {
		e.Title = "ب أم ت"
		e.ID = "hijacked"
	}))
	got, ok := c.Get("letters-1")
	require.True(t, ok)
	assert.Equal(t, "ب أم ت", got.Title)

	err := c.Update("letters-1", func(e *Entry) { e.Questions = nil })
	assert.ErrorIs(t, err, ErrInvalidExercise)
	got, _ = c.Get("letters-1")
	assert.NotEmpty(t, got.Questions, "rejected update must not apply")

	assert.ErrorIs(t, c.Update("missing", func(*Entry) {}), ErrNotFound)

	require.NoError(t, c.Delete("letters-1"))
	_, ok = c.Get("letters-1")
	assert.False(t, ok)
	assert.ErrorIs(t, c.Delete("letters-1"), ErrNotFound)

	c.Reset()
	_, ok = c.Get("letters-1")
	assert.True(t, ok)
}

func TestCatalogue_GetReturnsCopy(t *testing.T) {
	c := NewCatalogue(CatalogueOptions{})
	e, _ := c.Get("letters-1")
	e.Questions[0].Options[0] = "changed"

	again, _ := c.Get("letters-1")
	assert.NotEqual(t, "changed", again.Questions[0].Options[0])
}

func TestLoadCatalogue(t *testing.T) {
	c := NewCatalogue(CatalogueOptions{})
	require.NoError(t, c.Delete("sentences-1"))
	data, err := c.Encode()
	require.NoError(t, err)

	loaded, err := LoadCatalogue(data, CatalogueOptions{})
	require.NoError(t, err)
	_, ok := loaded.Get("sentences-1")
	assert.False(t, ok)
	assert.Len(t, loaded.All(), len(DefaultEntries())-1)

	empty, err := LoadCatalogue(nil, CatalogueOptions{})
	require.NoError(t, err)
	assert.Len(t, empty.All(), len(DefaultEntries()))

	for _, blob := range []string{`not json`, `{"id": "x"}`, `[{"id": "x", "title": "t", "category": "c", "difficulty": "hard", "type": "tone", "questions": []}]`} {
		corrupt, err := LoadCatalogue([]byte(blob), CatalogueOptions{})
		assert.Error(t, err, blob)
		assert.Len(t, corrupt.All(), len(DefaultEntries()), "corrupt blob falls back to defaults")
	}
}
