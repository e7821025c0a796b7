package mastery

import (
	"math"
	"sort"
	"strings"
)

// Statistics limits and bounds.
const (
	statsTopN           = 3
	FocusAccuracyCutoff = 60
)

// SoundAccuracy pairs a sound with its overall accuracy.
type SoundAccuracy struct {
	SoundID  string
	Letter   string
	Accuracy int
}

// ConfusedPair is an unordered pair of letters with its confusion count.
type ConfusedPair struct {
	Pair  [2]string
	Count int
}

// Statistics summarizes progress across all sounds.
type Statistics struct {
	TotalSounds       int
	MasteredSounds    int
	InProgressSounds  int
	AverageAccuracy   int
	StrongestSounds   []SoundAccuracy
	WeakestSounds     []SoundAccuracy
	MostConfusedPairs []ConfusedPair
	CurrentFocus      []SoundAccuracy
}

// Statistics computes the summary. Ties are broken by phoneme-table order
// so output is deterministic.
func (s *Service) Statistics() Statistics {
	st := Statistics{TotalSounds: len(s.sounds)}

	var accuracies []SoundAccuracy
	pairs := make(map[[2]string]int)
	var accSum, accN int

	for _, id := range s.SoundIDs() {
		sp := s.sounds[id]
		if sp.MasteredLevels() >= MasteredLevelsForSound {
			st.MasteredSounds++
		} else if sp.Attempted() > 0 {
			st.InProgressSounds++
		}
		if sp.OverallAccuracy > 0 {
			accSum += sp.OverallAccuracy
			accN++
		}
		accuracies = append(accuracies, SoundAccuracy{SoundID: id, Letter: sp.Letter, Accuracy: sp.OverallAccuracy})

		for other, n := range sp.ConfusionMatrix {
			pairs[sortedPair(sp.Letter, other)] += n
		}
	}
	if accN > 0 {
		st.AverageAccuracy = int(math.Round(float64(accSum) / float64(accN)))
	}

	byAccDesc := append([]SoundAccuracy(nil), accuracies...)
	sort.SliceStable(byAccDesc, func(i, j int) bool { return byAccDesc[i].Accuracy > byAccDesc[j].Accuracy })
	st.StrongestSounds = firstN(byAccDesc, statsTopN)

	byAccAsc := append([]SoundAccuracy(nil), accuracies...)
	sort.SliceStable(byAccAsc, func(i, j int) bool { return byAccAsc[i].Accuracy < byAccAsc[j].Accuracy })
	st.WeakestSounds = firstN(byAccAsc, statsTopN)

	var focus []SoundAccuracy
	for _, a := range byAccAsc {
		if a.Accuracy > 0 && a.Accuracy < FocusAccuracyCutoff {
			focus = append(focus, a)
		}
	}
	st.CurrentFocus = firstN(focus, statsTopN)

	confused := make([]ConfusedPair, 0, len(pairs))
	for p, n := range pairs {
		confused = append(confused, ConfusedPair{Pair: p, Count: n})
	}
	sort.Slice(confused, func(i, j int) bool {
		if confused[i].Count != confused[j].Count {
			return confused[i].Count > confused[j].Count
		}
		return strings.Join(confused[i].Pair[:], "") < strings.Join(confused[j].Pair[:], "")
	})
	st.MostConfusedPairs = firstN(confused, statsTopN)

	return st
}

// sortedPair orders two letters so a confusion and its reverse share a key.
func sortedPair(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func firstN[T any](xs []T, n int) []T {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}
