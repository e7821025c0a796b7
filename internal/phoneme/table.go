package phoneme

import "slices"

// table holds the phoneme seed with lookup indices. It is immutable after
// init.
type table struct {
	phonemes []Phoneme
	byLetter map[string]*Phoneme
	byID     map[string]*Phoneme
	index    map[string]int
}

// clone copies p so callers cannot mutate the table through its slices.
func (p Phoneme) clone() Phoneme {
	p.Characteristics = slices.Clone(p.Characteristics)
	p.SimilarSounds = slices.Clone(p.SimilarSounds)
	return p
}

// t is the package-level phoneme table, set by init() in seed.go.
var t *table

func buildTable(phonemes []Phoneme) *table {
	tb := &table{
		phonemes: phonemes,
		byLetter: make(map[string]*Phoneme, len(phonemes)),
		byID:     make(map[string]*Phoneme, len(phonemes)),
		index:    make(map[string]int, len(phonemes)),
	}
	for i := range tb.phonemes {
		p := &tb.phonemes[i]
		tb.byLetter[p.Letter] = p
		tb.byID[p.ID] = p
		tb.index[p.ID] = i
	}
	return tb
}

// ByLetter returns the phoneme written with the given letter.
func ByLetter(letter string) (Phoneme, bool) {
	p, ok := t.byLetter[letter]
	if !ok {
		return Phoneme{}, false
	}
	return p.clone(), true
}

// ByID returns the phoneme with the given ID.
func ByID(id string) (Phoneme, bool) {
	p, ok := t.byID[id]
	if !ok {
		return Phoneme{}, false
	}
	return p.clone(), true
}

// Resolve looks a phoneme up by ID first and then by letter.
func Resolve(idOrLetter string) (Phoneme, bool) {
	if p, ok := ByID(idOrLetter); ok {
		return p, true
	}
	return ByLetter(idOrLetter)
}

// Similar returns the ordered list of letters confusable with letter.
// Returns nil for an unknown letter.
func Similar(letter string) []string {
	p, ok := t.byLetter[letter]
	if !ok {
		return nil
	}
	return slices.Clone(p.SimilarSounds)
}

// All returns every phoneme in table order.
func All() []Phoneme {
	out := make([]Phoneme, len(t.phonemes))
	for i, p := range t.phonemes {
		out[i] = p.clone()
	}
	return out
}

// ByArticulationPoint returns the phonemes produced at point p, in table order.
func ByArticulationPoint(p ArticulationPoint) []Phoneme {
	var out []Phoneme
	for _, ph := range t.phonemes {
		if ph.ArticulationPoint == p {
			out = append(out, ph.clone())
		}
	}
	return out
}

// Index returns the table position of the phoneme with the given ID, or -1.
// Used to order per-sound output deterministically.
func Index(id string) int {
	if i, ok := t.index[id]; ok {
		return i
	}
	return -1
}
