package exercise

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importCSV = `title,category,difficulty,type,prompt,audio,options,correct
ت و ط,similar-sounds,beginner,tone,ما الحرف؟,تَ,ت|ط,1
,,,,ما الحرف؟,طَ,ت|ط,2
س و ص,similar-sounds,intermediate,tone,ما الحرف؟,سَ,س|ص,5
bad,similar-sounds,expert,tone,ما الحرف؟,سَ,س|ص,1
`

func TestImport_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.csv")
	require.NoError(t, os.WriteFile(path, []byte(importCSV), 0o644))

	c := NewCatalogue(CatalogueOptions{})
	cfg := DefaultImportConfig()
	cfg.FilePath = path

	res, err := Import(c, cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalProcessed)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, res.Errors, 2)

	e, ok := c.Get("sim-3")
	require.True(t, ok)
	assert.Equal(t, "ت و ط", e.Title)
	require.Len(t, e.Questions, 2)
	assert.Equal(t, 1, e.Questions[1].CorrectAnswer)
	assert.Equal(t, []string{"ت", "ط"}, e.Questions[1].Options)
}

func TestImport_XLSXTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, WriteTemplate(path))

	c := NewCatalogue(CatalogueOptions{})
	cfg := DefaultImportConfig()
	cfg.FilePath = path

	res, err := Import(c, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Empty(t, res.Errors)

	e, ok := c.Get("sim-3")
	require.True(t, ok)
	assert.Equal(t, "tone", string(e.Type))
	assert.Equal(t, "تَ تَ تَ", e.Questions[0].Audio)
}

func TestImport_Errors(t *testing.T) {
	c := NewCatalogue(CatalogueOptions{})
	cfg := DefaultImportConfig()

	cfg.FilePath = filepath.Join(t.TempDir(), "sets.txt")
	_, err := Import(c, cfg)
	assert.Error(t, err)

	cfg.FilePath = filepath.Join(t.TempDir(), "missing.csv")
	_, err = Import(c, cfg)
	assert.Error(t, err)

	cfg.FilePath = filepath.Join(t.TempDir(), "missing.xlsx")
	_, err = Import(c, cfg)
	assert.Error(t, err)
}

func TestImport_RandomizedWhenNoAudio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.csv")
	data := "title,category,difficulty,type,prompt,audio,options,correct\nx,words,beginner,word,ما الكلمة؟,,باب|تاب,1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c := NewCatalogue(CatalogueOptions{})
	cfg := DefaultImportConfig()
	cfg.FilePath = path
	res, err := Import(c, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)

	e, ok := c.Get("wor-5")
	require.True(t, ok)
	assert.True(t, e.Questions[0].Randomized)
}
