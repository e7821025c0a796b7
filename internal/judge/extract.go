package judge

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/makhraj/internal/phoneme"
)

// Arabic letter block bounds (hamza through yeh).
const (
	arabicLetterFirst = 'ء'
	arabicLetterLast  = 'ي'
)

// RepresentativePhoneme returns the letter an option stands for. Options
// authored with a phoneme return it directly, options marked NoPhoneme
// return "", and other free-text options fall back to scanning the text.
func RepresentativePhoneme(target string, opt Option) string {
	if opt.NoPhoneme {
		return ""
	}
	if opt.Phoneme != "" {
		return opt.Phoneme
	}
	return scanOptionText(target, opt.Text)
}

// scanOptionText guesses the sound an option's text represents, trying in
// order: a single-character option, the target letter, one of the target's
// similar sounds, then the first Arabic letter. Returns "" when nothing fits.
func scanOptionText(target, text string) string {
	if utf8.RuneCountInString(text) == 1 {
		return text
	}
	if target != "" && strings.Contains(text, target) {
		return target
	}
	for _, s := range phoneme.Similar(target) {
		if strings.Contains(text, s) {
			return s
		}
	}
	for _, r := range text {
		if r >= arabicLetterFirst && r <= arabicLetterLast {
			return string(r)
		}
	}
	return ""
}
