package curriculum

// Position is where the target sound sits inside a word.
type Position string

const (
	Initial Position = "initial"
	Medial  Position = "medial"
	Final   Position = "final"
)

// AllPositions returns the positions in reading order.
func AllPositions() []Position {
	return []Position{Initial, Medial, Final}
}

// ValidPosition reports whether p is a known position.
func ValidPosition(p Position) bool {
	return p == Initial || p == Medial || p == Final
}

// PositionName returns the Arabic name of a position.
func PositionName(p Position) string {
	switch p {
	case Initial:
		return "بداية الكلمة"
	case Medial:
		return "وسط الكلمة"
	case Final:
		return "نهاية الكلمة"
	default:
		return string(p)
	}
}

// SyllableCount buckets real words by length.
type SyllableCount string

const (
	Mono  SyllableCount = "mono"
	Bi    SyllableCount = "bi"
	Multi SyllableCount = "multi"
)

// AllSyllableCounts returns the buckets from shortest to longest.
func AllSyllableCounts() []SyllableCount {
	return []SyllableCount{Mono, Bi, Multi}
}
