package phoneme

import "math"

// Feature weights for Similarity.
const (
	WeightArticulation = 0.4
	WeightVoicing      = 0.3
	WeightEmphasis     = 0.3
	WeightAdjacency    = 0.2

	// MaxDistinctSimilarity caps the score of two different phonemes so
	// that only identity reaches 1.0.
	MaxDistinctSimilarity = 0.9
)

var voicingPairs = [][2]string{
	{"ب", "ف"},
	{"د", "ت"},
	{"ذ", "ث"},
	{"ز", "س"},
	{"ج", "ش"},
	{"ظ", "ث"},
	{"ض", "ص"},
	{"غ", "خ"},
}

var emphaticPairs = [][2]string{
	{"ط", "ت"},
	{"ظ", "ذ"},
	{"ص", "س"},
	{"ض", "د"},
	{"ق", "ك"},
}

// VoicingPairs returns the voiced/voiceless counterpart pairs.
func VoicingPairs() [][2]string {
	out := make([][2]string, len(voicingPairs))
	copy(out, voicingPairs)
	return out
}

// EmphaticPairs returns the emphatic/plain counterpart pairs.
func EmphaticPairs() [][2]string {
	out := make([][2]string, len(emphaticPairs))
	copy(out, emphaticPairs)
	return out
}

func inPairs(pairs [][2]string, a, b string) bool {
	for _, p := range pairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}

// IsVoicingPair reports whether a and b differ only in voicing. Symmetric.
func IsVoicingPair(a, b string) bool {
	return inPairs(voicingPairs, a, b)
}

// IsEmphaticPair reports whether a and b differ only in emphasis. Symmetric.
func IsEmphaticPair(a, b string) bool {
	return inPairs(emphaticPairs, a, b)
}

// SameArticulation reports whether both letters are known and share an
// articulation point. An unknown letter never matches.
func SameArticulation(a, b string) bool {
	pa, okA := ByLetter(a)
	pb, okB := ByLetter(b)
	if !okA || !okB {
		return false
	}
	return pa.ArticulationPoint == pb.ArticulationPoint
}

// IsAdjacent reports whether b is listed among a's similar sounds.
// Not symmetric: the adjacency lists are authored per letter.
func IsAdjacent(a, b string) bool {
	p, ok := t.byLetter[a]
	if !ok {
		return false
	}
	for _, s := range p.SimilarSounds {
		if s == b {
			return true
		}
	}
	return false
}

// Similarity scores how acoustically confusable two letters are, in [0, 1].
// Identical letters score 1.0; distinct letters accumulate feature weights
// and are capped at MaxDistinctSimilarity.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	var score float64
	if SameArticulation(a, b) {
		score += WeightArticulation
	}
	if IsVoicingPair(a, b) {
		score += WeightVoicing
	}
	if IsEmphaticPair(a, b) {
		score += WeightEmphasis
	}
	if IsAdjacent(a, b) {
		score += WeightAdjacency
	}

	// Round away float accumulation noise so thresholds compare exactly.
	score = math.Round(score*100) / 100
	return min(score, MaxDistinctSimilarity)
}
