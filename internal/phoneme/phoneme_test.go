package phoneme

import (
	"math"
	"strings"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSeedIsValid(t *testing.T) {
	if err := validatePhonemes(seedPhonemes()); err != nil {
		t.Fatalf("seed failed validation: %v", err)
	}
}

func TestAll_Count(t *testing.T) {
	if got := len(All()); got != 28 {
		t.Errorf("len(All()) = %d, want 28", got)
	}
}

func TestByLetter(t *testing.T) {
	p, ok := ByLetter("ط")
	if !ok {
		t.Fatal("ByLetter(ط) not found")
	}
	if p.ID != "tah" {
		t.Errorf("ID = %q, want %q", p.ID, "tah")
	}
	if !p.IsEmphatic() {
		t.Error("ط should be emphatic")
	}
	if p.ArticulationPoint != TongueTipUpper {
		t.Errorf("ArticulationPoint = %q, want %q", p.ArticulationPoint, TongueTipUpper)
	}
}

func TestByLetter_Miss(t *testing.T) {
	if _, ok := ByLetter("x"); ok {
		t.Error("expected lookup miss for latin letter")
	}
}

func TestResolve(t *testing.T) {
	byID, ok := Resolve("seen")
	if !ok || byID.Letter != "س" {
		t.Errorf("Resolve(seen) = %q, %v", byID.Letter, ok)
	}
	byLetter, ok := Resolve("س")
	if !ok || byLetter.ID != "seen" {
		t.Errorf("Resolve(س) = %q, %v", byLetter.ID, ok)
	}
}

func TestSimilar_ReturnsCopy(t *testing.T) {
	s := Similar("ت")
	if len(s) == 0 || s[0] != "ط" {
		t.Fatalf("Similar(ت) = %v, want ط first", s)
	}
	s[0] = "x"
	if Similar("ت")[0] != "ط" {
		t.Error("Similar must not expose the table's slice")
	}
	if Similar("?") != nil {
		t.Error("Similar of unknown letter should be nil")
	}
}

func TestLookups_ReturnCopies(t *testing.T) {
	p, _ := ByLetter("ت")
	p.SimilarSounds[0] = "x"
	p.Characteristics[0] = "x"

	q, _ := ByID("teh")
	if q.SimilarSounds[0] != "ط" {
		t.Errorf("ByID(teh).SimilarSounds[0] = %q, want ط", q.SimilarSounds[0])
	}
	if q.Characteristics[0] == "x" {
		t.Error("ByLetter must not expose the table's characteristics")
	}

	all := All()
	all[Index("teh")].SimilarSounds[0] = "y"
	for _, ph := range ByArticulationPoint(q.ArticulationPoint) {
		ph.SimilarSounds = append(ph.SimilarSounds[:0], "z")
	}
	if got := Similar("ت")[0]; got != "ط" {
		t.Errorf("Similar(ت)[0] = %q, want ط", got)
	}
}

func TestIndex(t *testing.T) {
	if Index("hamza") != 0 {
		t.Errorf("Index(hamza) = %d, want 0", Index("hamza"))
	}
	if Index("nope") != -1 {
		t.Errorf("Index(nope) = %d, want -1", Index("nope"))
	}
}

func TestPairsAreSymmetric(t *testing.T) {
	for _, p := range VoicingPairs() {
		if !IsVoicingPair(p[0], p[1]) || !IsVoicingPair(p[1], p[0]) {
			t.Errorf("voicing pair %v not symmetric", p)
		}
	}
	for _, p := range EmphaticPairs() {
		if !IsEmphaticPair(p[0], p[1]) || !IsEmphaticPair(p[1], p[0]) {
			t.Errorf("emphatic pair %v not symmetric", p)
		}
	}
	if len(VoicingPairs()) != 8 {
		t.Errorf("voicing pairs = %d, want 8", len(VoicingPairs()))
	}
	if len(EmphaticPairs()) != 5 {
		t.Errorf("emphatic pairs = %d, want 5", len(EmphaticPairs()))
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "ب", "ب", 1.0},
		{"identical unknown", "x", "x", 1.0},
		{"articulation emphatic adjacent", "ت", "ط", 0.9},
		{"articulation voicing adjacent", "د", "ت", 0.9},
		{"voicing pair across points", "ض", "ص", 0.3},
		{"adjacency only", "ح", "خ", 0.2},
		{"voicing only", "ب", "ف", 0.5},
		{"nothing shared", "ب", "ق", 0},
		{"unknown vs known", "x", "ب", 0},
		{"both unknown", "x", "y", 0},
		{"emphatic plus articulation", "ق", "ك", 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("Similarity(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	all := All()
	for _, a := range all {
		for _, b := range all {
			s := Similarity(a.Letter, b.Letter)
			if a.Letter == b.Letter {
				if s != 1.0 {
					t.Errorf("Similarity(%s, %s) = %v, want 1.0", a.Letter, b.Letter, s)
				}
				continue
			}
			if s < 0 || s > MaxDistinctSimilarity {
				t.Errorf("Similarity(%s, %s) = %v out of [0, %v]", a.Letter, b.Letter, s, MaxDistinctSimilarity)
			}
		}
	}
}

func TestValidate_CatchesProblems(t *testing.T) {
	bad := []Phoneme{
		{ID: "a", Letter: "ب", ArticulationDescription: "x", Characteristics: []Characteristic{Voiced, NonEmphatic}, SimilarSounds: []string{"ب"}},
		{ID: "a", Letter: "ت", Characteristics: []Characteristic{Voiced, Voiceless, NonEmphatic}, SimilarSounds: []string{"?"}},
	}
	err := validatePhonemes(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"duplicate phoneme ID", "lists itself", "unknown similar sound", "no articulation description", "voiced/voiceless"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}
