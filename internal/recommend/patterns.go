package recommend

import (
	"fmt"
	"sort"

	"github.com/abhisek/makhraj/internal/curriculum"
)

// Pattern thresholds.
const (
	PatternMinPairCount     = 2
	PatternMinPositionCount = 3
)

// PatternType classifies an error pattern.
type PatternType string

const (
	PatternConfusion PatternType = "confusion"
	PatternPosition  PatternType = "position"
)

// ErrorRecord is one wrong answer as remembered by a session or the event
// log.
type ErrorRecord struct {
	TargetSound   string
	SelectedSound string
	Position      curriculum.Position
	Level         curriculum.Level
}

// ErrorPattern is a recurring mistake worth addressing.
type ErrorPattern struct {
	Type           PatternType `json:"type"`
	Description    string      `json:"description"`
	Frequency      int         `json:"frequency"`
	Recommendation string      `json:"recommendation"`
}

// AnalyzeErrorPatterns finds pairs of sounds confused repeatedly in either
// direction and the word position where most errors land. Results are
// sorted by frequency, most frequent first.
func AnalyzeErrorPatterns(errors []ErrorRecord) []ErrorPattern {
	pairs := make(map[[2]string]int)
	positions := make(map[curriculum.Position]int)

	for _, e := range errors {
		if e.SelectedSound != "" {
			a, b := e.TargetSound, e.SelectedSound
			if a > b {
				a, b = b, a
			}
			pairs[[2]string{a, b}]++
		}
		if curriculum.ValidPosition(e.Position) {
			positions[e.Position]++
		}
	}

	keys := make([][2]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	var patterns []ErrorPattern
	for _, k := range keys {
		n := pairs[k]
		if n < PatternMinPairCount {
			continue
		}
		patterns = append(patterns, ErrorPattern{
			Type:           PatternConfusion,
			Description:    fmt.Sprintf("خلط متكرر بين %s و %s", k[0], k[1]),
			Frequency:      n,
			Recommendation: fmt.Sprintf("تدرب على التمييز بين صوت %s وصوت %s", k[0], k[1]),
		})
	}

	var worst curriculum.Position
	worstN := 0
	for _, p := range curriculum.AllPositions() {
		if positions[p] > worstN {
			worst, worstN = p, positions[p]
		}
	}
	if worstN >= PatternMinPositionCount {
		name := curriculum.PositionName(worst)
		patterns = append(patterns, ErrorPattern{
			Type:           PatternPosition,
			Description:    fmt.Sprintf("صعوبة في موقع %s", name),
			Frequency:      worstN,
			Recommendation: fmt.Sprintf("ركز على تدريبات الأصوات في %s", name),
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool { return patterns[i].Frequency > patterns[j].Frequency })
	return patterns
}
