package mastery

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/makhraj/internal/curriculum"
)

//go:embed progress.schema.json
var progressSchemaJSON []byte

const progressSchemaURL = "schema://progress.json"

var (
	schemaOnce     sync.Once
	progressSchema *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(progressSchemaJSON, &doc); err != nil {
			schemaErr = fmt.Errorf("parse progress schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(progressSchemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		progressSchema, schemaErr = c.Compile(progressSchemaURL)
	})
	return progressSchema, schemaErr
}

// Encode serializes all progress as one JSON object keyed by sound ID.
func (s *Service) Encode() ([]byte, error) {
	return json.Marshal(s.sounds)
}

// ValidateBlob checks a stored progress blob against the progress schema.
func ValidateBlob(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Load builds a service from a stored blob. An empty blob yields empty
// progress. A corrupt blob is discarded: the returned service is empty and
// the error says why.
func Load(data []byte, opts Options) (*Service, error) {
	s := NewService(opts)
	if len(data) == 0 {
		return s, nil
	}
	if err := ValidateBlob(data); err != nil {
		return s, fmt.Errorf("discarding stored progress: %w", err)
	}

	var sounds map[string]*SoundProgress
	if err := json.Unmarshal(data, &sounds); err != nil {
		return s, fmt.Errorf("discarding stored progress: %w", err)
	}
	for key, sp := range sounds {
		if sp == nil {
			continue
		}
		id, letter := canonical(key)
		sp.SoundID = id
		if sp.Letter == "" {
			sp.Letter = letter
		}
		if !curriculum.Valid(sp.CurrentLevel) {
			sp.CurrentLevel = curriculum.First()
		}
		if sp.ConfusionMatrix == nil {
			sp.ConfusionMatrix = make(map[string]int)
		}
		clamped := false
		for l, lp := range sp.Levels {
			if lp == nil || !curriculum.Valid(l) {
				delete(sp.Levels, l)
				continue
			}
			lp.Level = l
			// A level cannot have more correct answers than attempts.
			if lp.QuestionsCorrect > lp.QuestionsAttempted {
				lp.QuestionsCorrect = lp.QuestionsAttempted
				lp.Accuracy = percent(lp.QuestionsCorrect, lp.QuestionsAttempted)
				clamped = true
			}
		}
		if clamped {
			sp.recomputeOverall()
		}
		for _, l := range curriculum.Order() {
			sp.level(l, opts.UnlockAll)
		}
		s.sounds[id] = sp
	}
	return s, nil
}
