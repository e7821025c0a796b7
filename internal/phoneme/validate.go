package phoneme

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// validatePhonemes performs all structural checks on the phoneme seed.
// Returns a combined error describing all problems found, or nil if valid.
func validatePhonemes(phonemes []Phoneme) error {
	var errs []string

	ids := make(map[string]bool, len(phonemes))
	letters := make(map[string]bool, len(phonemes))

	// Check for duplicates
	for _, p := range phonemes {
		if ids[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate phoneme ID: %q", p.ID))
		}
		ids[p.ID] = true
		if letters[p.Letter] {
			errs = append(errs, fmt.Sprintf("duplicate letter: %q", p.Letter))
		}
		letters[p.Letter] = true
	}

	for _, p := range phonemes {
		if utf8.RuneCountInString(p.Letter) != 1 {
			errs = append(errs, fmt.Sprintf("phoneme %q: letter %q must be a single character", p.ID, p.Letter))
		}
		if p.ArticulationDescription == "" {
			errs = append(errs, fmt.Sprintf("phoneme %q has no articulation description", p.ID))
		}
		if p.IsVoiced() == p.Has(Voiceless) {
			errs = append(errs, fmt.Sprintf("phoneme %q must be exactly one of voiced/voiceless", p.ID))
		}
		if p.IsEmphatic() == p.Has(NonEmphatic) {
			errs = append(errs, fmt.Sprintf("phoneme %q must be exactly one of emphatic/non_emphatic", p.ID))
		}

		// Check for dangling or self references
		for _, s := range p.SimilarSounds {
			if s == p.Letter {
				errs = append(errs, fmt.Sprintf("phoneme %q lists itself as similar", p.ID))
			} else if !letters[s] {
				errs = append(errs, fmt.Sprintf("phoneme %q references unknown similar sound %q", p.ID, s))
			}
		}
	}

	// Check pair tables only name known letters
	for _, pair := range append(VoicingPairs(), EmphaticPairs()...) {
		for _, l := range pair {
			if !letters[l] {
				errs = append(errs, fmt.Sprintf("pair %v references unknown letter %q", pair, l))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("phoneme table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
