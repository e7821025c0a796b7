package mastery

import (
	"slices"
	"sort"
	"time"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/logger"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// PersistFunc saves the encoded progress blob. It is called after every
// mutation; failures are logged and otherwise ignored.
type PersistFunc func(data []byte) error

// Options configures a Service.
type Options struct {
	// UnlockAll makes every level available regardless of progress.
	UnlockAll bool
	Persist   PersistFunc
	Logger    *logger.Logger
	Now       func() time.Time
}

// Answer is one judged answer to record.
type Answer struct {
	SoundID      string // phoneme ID or letter
	Level        curriculum.Level
	Correct      bool
	Position     curriculum.Position // empty when not applicable
	ConfusedWith string              // letter the learner confused the sound with, if any
}

type positionSample struct {
	total   int
	correct int
}

// Service owns the progress of every sound. It is not safe for concurrent
// use.
type Service struct {
	sounds    map[string]*SoundProgress
	positions map[string]map[curriculum.Position]*positionSample
	opts      Options
}

// NewService creates a service with no recorded progress.
func NewService(opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		sounds:    make(map[string]*SoundProgress),
		positions: make(map[string]map[curriculum.Position]*positionSample),
		opts:      opts,
	}
}

// canonical maps a phoneme ID or letter to (id, letter). Unknown sounds keep
// the given key as their ID.
func canonical(soundID string) (string, string) {
	if p, ok := phoneme.Resolve(soundID); ok {
		return p.ID, p.Letter
	}
	return soundID, ""
}

// RecordAnswer applies one answer and returns the status changes it caused.
// Unknown levels are ignored.
func (s *Service) RecordAnswer(a Answer) []StateTransition {
	if !curriculum.Valid(a.Level) {
		s.opts.Logger.Warn("ignoring answer for unknown level", "level", a.Level, "sound", a.SoundID)
		return nil
	}

	id, letter := canonical(a.SoundID)
	sp, ok := s.sounds[id]
	if !ok {
		sp = newSoundProgress(id, letter, s.opts.UnlockAll)
		s.sounds[id] = sp
	}
	if sp.ConfusionMatrix == nil {
		sp.ConfusionMatrix = make(map[string]int)
	}

	now := s.opts.Now()
	lp := sp.level(a.Level, s.opts.UnlockAll)
	from := lp.Status

	lp.QuestionsAttempted++
	if a.Correct {
		lp.QuestionsCorrect++
	}
	lp.Accuracy = percent(lp.QuestionsCorrect, lp.QuestionsAttempted)
	lp.LastAttemptAt = &now
	lp.Status = determineStatus(lp.QuestionsAttempted, lp.Accuracy, lp.Status)

	var transitions []StateTransition
	if from != lp.Status {
		transitions = append(transitions, StateTransition{
			SoundID: id, Letter: sp.Letter, Level: a.Level,
			From: from, To: lp.Status, Trigger: transitionTrigger(from, lp.Status),
		})
	}

	if lp.Status == StatusMastered && lp.MasteredAt == nil {
		lp.MasteredAt = &now
		if next, ok := curriculum.Next(a.Level); ok {
			np := sp.level(next, s.opts.UnlockAll)
			if np.Status == StatusLocked {
				np.Status = StatusAvailable
				transitions = append(transitions, StateTransition{
					SoundID: id, Letter: sp.Letter, Level: next,
					From: StatusLocked, To: StatusAvailable, Trigger: "level-unlocked",
				})
			}
			if curriculum.Index(next) > curriculum.Index(sp.CurrentLevel) {
				sp.CurrentLevel = next
			}
		}
	}

	if !a.Correct && a.ConfusedWith != "" {
		sp.ConfusionMatrix[a.ConfusedWith]++
	}

	if a.Position != "" {
		s.recordPosition(id, sp, a.Position, a.Correct)
	}

	sp.recomputeOverall()
	s.persist()
	return transitions
}

// recordPosition adds a session sample and reclassifies positions. Strong
// positions accumulate; weak positions are replaced whenever any qualify.
func (s *Service) recordPosition(id string, sp *SoundProgress, pos curriculum.Position, correct bool) {
	byPos, ok := s.positions[id]
	if !ok {
		byPos = make(map[curriculum.Position]*positionSample)
		s.positions[id] = byPos
	}
	sample, ok := byPos[pos]
	if !ok {
		sample = &positionSample{}
		byPos[pos] = sample
	}
	sample.total++
	if correct {
		sample.correct++
	}

	var strong, weak []curriculum.Position
	for _, p := range curriculum.AllPositions() {
		ps, ok := byPos[p]
		if !ok || ps.total < MinPositionSamples {
			continue
		}
		acc := percent(ps.correct, ps.total)
		switch {
		case acc >= StrongPositionAccuracy:
			strong = append(strong, p)
		case acc < WeakPositionAccuracy:
			weak = append(weak, p)
		}
	}

	for _, p := range strong {
		if !slices.Contains(sp.StrongPositions, p) {
			sp.StrongPositions = append(sp.StrongPositions, p)
		}
	}
	if len(weak) > 0 {
		sp.WeakPositions = weak
	}
}

// Status returns the status of a level. Untracked sounds report the default:
// the entry level available and the rest locked, or everything available
// when UnlockAll is set.
func (s *Service) Status(soundID string, level curriculum.Level) Status {
	id, _ := canonical(soundID)
	if sp, ok := s.sounds[id]; ok {
		if lp, ok := sp.Levels[level]; ok {
			return lp.Status
		}
	}
	return defaultStatus(level, s.opts.UnlockAll)
}

// Progress returns a copy of a sound's progress.
func (s *Service) Progress(soundID string) (*SoundProgress, bool) {
	id, _ := canonical(soundID)
	sp, ok := s.sounds[id]
	if !ok {
		return nil, false
	}
	return sp.Clone(), true
}

// All returns copies of every tracked sound's progress, keyed by sound ID.
func (s *Service) All() map[string]*SoundProgress {
	out := make(map[string]*SoundProgress, len(s.sounds))
	for id, sp := range s.sounds {
		out[id] = sp.Clone()
	}
	return out
}

// SoundIDs returns tracked sound IDs in phoneme-table order, unknown IDs last.
func (s *Service) SoundIDs() []string {
	ids := make([]string, 0, len(s.sounds))
	for id := range s.sounds {
		ids = append(ids, id)
	}
	SortSoundIDs(ids)
	return ids
}

// SortSoundIDs orders IDs by phoneme-table position, then lexically.
func SortSoundIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := phoneme.Index(ids[i]), phoneme.Index(ids[j])
		if a < 0 {
			a = len(ids) + 1<<16
		}
		if b < 0 {
			b = len(ids) + 1<<16
		}
		if a != b {
			return a < b
		}
		return ids[i] < ids[j]
	})
}

// ResetSound forgets a sound's progress.
func (s *Service) ResetSound(soundID string) {
	id, _ := canonical(soundID)
	delete(s.sounds, id)
	delete(s.positions, id)
	s.persist()
}

// ResetAll forgets all progress.
func (s *Service) ResetAll() {
	s.sounds = make(map[string]*SoundProgress)
	s.positions = make(map[string]map[curriculum.Position]*positionSample)
	s.persist()
}

// UnlockAll reports whether the testing toggle is on.
func (s *Service) UnlockAll() bool {
	return s.opts.UnlockAll
}

func (s *Service) persist() {
	if s.opts.Persist == nil {
		return
	}
	data, err := s.Encode()
	if err != nil {
		s.opts.Logger.Warn("encode progress failed", "error", err)
		return
	}
	if err := s.opts.Persist(data); err != nil {
		s.opts.Logger.Warn("persist progress failed", "error", err)
	}
}
