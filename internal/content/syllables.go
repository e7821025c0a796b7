package content

// Long vowels used to build syllables around a consonant.
var (
	vowelsAfter  = []string{"ا", "ي", "و"}
	vowelsBefore = []string{"آ", "إي", "أو"}
)

// CV returns the consonant followed by each long vowel, e.g. با بي بو.
func CV(letter string) []string {
	out := make([]string, 0, len(vowelsAfter))
	for _, v := range vowelsAfter {
		out = append(out, letter+v)
	}
	return out
}

// VC returns each long vowel followed by the consonant, e.g. آب إيب أوب.
func VC(letter string) []string {
	out := make([]string, 0, len(vowelsBefore))
	for _, v := range vowelsBefore {
		out = append(out, v+letter)
	}
	return out
}

// VCV returns the consonant between every pair of long vowels, grouped by
// the leading vowel.
func VCV(letter string) [][]string {
	out := make([][]string, 0, len(vowelsBefore))
	for _, pre := range vowelsBefore {
		row := make([]string, 0, len(vowelsAfter))
		for _, post := range vowelsAfter {
			row = append(row, pre+letter+post)
		}
		out = append(out, row)
	}
	return out
}
