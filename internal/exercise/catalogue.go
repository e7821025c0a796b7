package exercise

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/logger"
)

//go:embed catalogue.yaml
var defaultCatalogueYAML []byte

//go:embed catalogue.schema.json
var catalogueSchemaJSON []byte

var (
	// ErrNotFound is returned when no catalogue entry has the given ID.
	ErrNotFound = errors.New("exercise not found")

	// ErrInvalidExercise is returned when an entry fails validation.
	ErrInvalidExercise = errors.New("invalid exercise")
)

// Kind is the material an authored exercise drills.
type Kind string

const (
	KindTone     Kind = "tone"
	KindWord     Kind = "word"
	KindSentence Kind = "sentence"
)

// Categories whose entries keep their authored order instead of being
// sorted by difficulty.
var unsortedCategories = []string{"arabic-sounds", "makharij"}

// AuthoredQuestion is one item of a catalogue exercise.
type AuthoredQuestion struct {
	ID            string   `yaml:"id" json:"id"`
	Prompt        string   `yaml:"prompt" json:"prompt"`
	Audio         string   `yaml:"audio" json:"audio"`
	Options       []string `yaml:"options" json:"options"`
	CorrectAnswer int      `yaml:"correct" json:"correctAnswer"`

	// Randomized items pick their audio from the options at play time.
	Randomized bool `yaml:"randomized,omitempty" json:"isRandomized,omitempty"`
}

// Entry is an authored exercise in the catalogue.
type Entry struct {
	ID          string                `yaml:"id" json:"id"`
	Title       string                `yaml:"title" json:"title"`
	Description string                `yaml:"description" json:"description"`
	Category    string                `yaml:"category" json:"category"`
	Difficulty  curriculum.Difficulty `yaml:"difficulty" json:"difficulty"`
	Type        Kind                  `yaml:"type" json:"type"`
	Duration    string                `yaml:"duration" json:"duration"`
	Questions   []AuthoredQuestion    `yaml:"questions" json:"questions"`
}

func (e *Entry) clone() Entry {
	c := *e
	c.Questions = make([]AuthoredQuestion, len(e.Questions))
	for i, q := range e.Questions {
		q.Options = slices.Clone(q.Options)
		c.Questions[i] = q
	}
	return c
}

// Validate checks an entry's fields and every question.
func (e *Entry) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: title is empty", ErrInvalidExercise)
	case strings.TrimSpace(e.Category) == "":
		return fmt.Errorf("%w: category is empty", ErrInvalidExercise)
	}
	switch e.Difficulty {
	case curriculum.Beginner, curriculum.Intermediate, curriculum.Advanced:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidExercise, e.Difficulty)
	}
	switch e.Type {
	case KindTone, KindWord, KindSentence:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidExercise, e.Type)
	}
	if len(e.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidExercise)
	}
	for i, q := range e.Questions {
		if msg := checkChoices(q.Prompt, q.Options, q.CorrectAnswer); msg != "" {
			return fmt.Errorf("%w: question %d: %s", ErrInvalidExercise, i+1, msg)
		}
	}
	return nil
}

// DefaultEntries returns the built-in catalogue.
func DefaultEntries() []Entry {
	var doc struct {
		Exercises []Entry `yaml:"exercises"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(defaultCatalogueYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil
	}
	return doc.Exercises
}

// CatalogueOptions configures a Catalogue.
type CatalogueOptions struct {
	// Persist receives the encoded catalogue after every change.
	Persist func(data []byte) error
	Logger  *logger.Logger
}

// Catalogue holds the authored exercises. It is not safe for concurrent
// use.
type Catalogue struct {
	entries []Entry
	opts    CatalogueOptions
}

// NewCatalogue creates a catalogue holding the defaults.
func NewCatalogue(opts CatalogueOptions) *Catalogue {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Catalogue{entries: DefaultEntries(), opts: opts}
}

// LoadCatalogue restores a catalogue from a stored blob. An empty blob
// yields the defaults; so does a corrupt one, with the error saying why.
func LoadCatalogue(data []byte, opts CatalogueOptions) (*Catalogue, error) {
	c := NewCatalogue(opts)
	if len(data) == 0 {
		return c, nil
	}
	if err := validateCatalogueBlob(data); err != nil {
		return c, fmt.Errorf("discarding stored catalogue: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return c, fmt.Errorf("discarding stored catalogue: %w", err)
	}
	c.entries = entries
	return c, nil
}

var (
	catalogueSchemaOnce sync.Once
	catalogueSchema     *jsonschema.Schema
	catalogueSchemaErr  error
)

func validateCatalogueBlob(data []byte) error {
	catalogueSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(catalogueSchemaJSON, &doc); err != nil {
			catalogueSchemaErr = fmt.Errorf("parse catalogue schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalogue.json", doc); err != nil {
			catalogueSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		catalogueSchema, catalogueSchemaErr = c.Compile("schema://catalogue.json")
	})
	if catalogueSchemaErr != nil {
		return catalogueSchemaErr
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := catalogueSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Encode serializes the catalogue for storage.
func (c *Catalogue) Encode() ([]byte, error) {
	return json.Marshal(c.entries)
}

// All returns a copy of every entry in catalogue order.
func (c *Catalogue) All() []Entry {
	out := make([]Entry, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].clone()
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalogue) Categories() []string {
	var out []string
	for _, e := range c.entries {
		if !slices.Contains(out, e.Category) {
			out = append(out, e.Category)
		}
	}
	return out
}

// Get returns the entry with the given ID.
func (c *Catalogue) Get(id string) (Entry, bool) {
	i := c.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// ByCategory returns the entries of one category, easiest first. The
// arabic-sounds and makharij categories keep their authored order.
func (c *Catalogue) ByCategory(category string) []Entry {
	var out []Entry
	for i := range c.entries {
		if c.entries[i].Category == category {
			out = append(out, c.entries[i].clone())
		}
	}
	if slices.Contains(unsortedCategories, category) {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return difficultyRank(out[i].Difficulty) < difficultyRank(out[j].Difficulty)
	})
	return out
}

func difficultyRank(d curriculum.Difficulty) int {
	switch d {
	case curriculum.Beginner:
		return 1
	case curriculum.Intermediate:
		return 2
	default:
		return 3
	}
}

// Add validates e, assigns it an ID made of the category's first three
// letters and an ordinal, and appends it.
func (c *Catalogue) Add(e Entry) (Entry, error) {
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	e = e.clone()
	e.ID = c.nextID(e.Category)
	c.entries = append(c.entries, e)
	c.persist()
	return e.clone(), nil
}

func (c *Catalogue) nextID(category string) string {
	prefix := category
	if r := []rune(category); len(r) > 3 {
		prefix = string(r[:3])
	}
	n := 0
	for _, e := range c.entries {
		if e.Category == category {
			n++
		}
	}
	for {
		n++
		id := fmt.Sprintf("%s-%d", prefix, n)
		if c.index(id) < 0 {
			return id
		}
	}
}

// Update applies fn to the entry with the given ID. The entry keeps its ID
// and the change is rejected if the result fails validation.
func (c *Catalogue) Update(id string, fn func(*Entry)) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	updated := c.entries[i].clone()
	fn(&updated)
	updated.ID = id
	if err := updated.Validate(); err != nil {
		return err
	}
	c.entries[i] = updated
	c.persist()
	return nil
}

// Delete removes the entry with the given ID.
func (c *Catalogue) Delete(id string) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	c.persist()
	return nil
}

// Reset restores the built-in entries.
func (c *Catalogue) Reset() {
	c.entries = DefaultEntries()
	c.persist()
}

func (c *Catalogue) index(id string) int {
	return slices.IndexFunc(c.entries, func(e Entry) bool { return e.ID == id })
}

func (c *Catalogue) persist() {
	if c.opts.Persist == nil {
		return
	}
	data, err := c.Encode()
	if err == nil {
		err = c.opts.Persist(data)
	}
	if err != nil {
		c.opts.Logger.Warn("failed to persist exercise catalogue", "error", err)
	}
}
