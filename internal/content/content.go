package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/phoneme"
)

//go:embed sounds.yaml
var embeddedSounds []byte

// QA is a question with its expected answer.
type QA struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Examples is the practice material for one sound.
type Examples struct {
	RealWords         map[curriculum.Position]map[curriculum.SyllableCount][]string `yaml:"real_words"`
	NonsenseWords     []string                                                      `yaml:"nonsense_words"`
	Phrases           []string                                                      `yaml:"phrases"`
	Sentences         []string                                                      `yaml:"sentences"`
	Story             string                                                        `yaml:"story"`
	StoryPrompt       string                                                        `yaml:"story_prompt"`
	Questions         []QA                                                          `yaml:"questions"`
	SpontaneousPrompt string                                                        `yaml:"spontaneous_prompt"`
}

// Words returns the real words for a position and syllable bucket.
func (e Examples) Words(pos curriculum.Position, syl curriculum.SyllableCount) []string {
	byCount, ok := e.RealWords[pos]
	if !ok {
		return nil
	}
	return byCount[syl]
}

// AllWords returns every real word for a position, shortest bucket first.
func (e Examples) AllWords(pos curriculum.Position) []string {
	var out []string
	for _, syl := range curriculum.AllSyllableCounts() {
		out = append(out, e.Words(pos, syl)...)
	}
	return out
}

type bankFile struct {
	Version int                 `yaml:"version"`
	Sounds  map[string]Examples `yaml:"sounds"`
}

// Bank is a read-only store of practice material keyed by phoneme ID.
type Bank struct {
	sounds map[string]Examples
}

// Parse decodes a YAML bank.
func Parse(r io.Reader) (*Bank, error) {
	var f bankFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	for id := range f.Sounds {
		if _, ok := phoneme.ByID(id); !ok {
			return nil, fmt.Errorf("content references unknown sound %q", id)
		}
	}
	if f.Sounds == nil {
		f.Sounds = make(map[string]Examples)
	}
	return &Bank{sounds: f.Sounds}, nil
}

// LoadFile reads a bank from path.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the bank compiled into the binary.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Parse(bytes.NewReader(embeddedSounds))
		if err != nil {
			b = &Bank{sounds: make(map[string]Examples)}
		}
		defaultBank = b
	})
	return defaultBank
}

// Examples returns the material for a sound. Unknown sounds yield empty
// examples.
func (b *Bank) Examples(soundID string) Examples {
	if b == nil {
		return Examples{}
	}
	return b.sounds[soundID]
}

// Has reports whether the bank carries any material for a sound.
func (b *Bank) Has(soundID string) bool {
	if b == nil {
		return false
	}
	_, ok := b.sounds[soundID]
	return ok
}

// PracticeWords returns up to n real words starting with the sound in the
// given syllable bucket, falling back to other buckets when it is short.
func (b *Bank) PracticeWords(soundID string, syl curriculum.SyllableCount, n int) []string {
	if n <= 0 {
		return nil
	}
	ex := b.Examples(soundID)
	words := append([]string(nil), ex.Words(curriculum.Initial, syl)...)
	if len(words) < n {
		for _, other := range curriculum.AllSyllableCounts() {
			if other == syl {
				continue
			}
			words = append(words, ex.Words(curriculum.Initial, other)...)
		}
	}
	if len(words) > n {
		words = words[:n]
	}
	return words
}
