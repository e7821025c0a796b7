// Package trainer is the action surface the interface layers call into. It
// wires the judge, progress tracking, recommendations, exercise generation,
// persistence and speech together and runs everything on the caller's
// goroutine.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/makhraj/internal/content"
	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/exercise"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/logger"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/recommend"
	"github.com/abhisek/makhraj/internal/speech"
	"github.com/abhisek/makhraj/internal/store"
)

// Blob keys. Bumping a version discards what was stored under the old one.
var (
	ProgressKey  = store.Key{Name: "sound-progress", Version: "v1"}
	CatalogueKey = store.Key{Name: "exercises", Version: "v8"}
)

// ErrLevelLocked is returned when an exercise is requested for a level the
// learner has not unlocked.
var ErrLevelLocked = errors.New("level is locked")

// Options configures a Trainer. Every field is optional.
type Options struct {
	Blobs   store.BlobRepo
	Events  store.EventRepo
	Speaker speech.Speaker
	Bank    *content.Bank
	Logger  *logger.Logger

	// Seed drives option shuffling and message choice. Zero seeds from the
	// clock.
	Seed uint64

	UnlockAll            bool
	QuestionsPerExercise int
	Now                  func() time.Time
}

// Outcome is the result of answering one question.
type Outcome struct {
	Result      *judge.Result
	Transitions []mastery.StateTransition
}

// Trainer is not safe for concurrent use. Speech playback is the only work
// it starts in the background.
type Trainer struct {
	ctx       context.Context
	judge     *judge.Judge
	progress  *mastery.Service
	catalogue *exercise.Catalogue
	gen       *exercise.Generator
	gate      *speech.Gate
	blobs     store.BlobRepo
	events    store.EventRepo
	log       *logger.Logger
	questions int
}

// New builds a trainer and restores stored progress and the exercise
// catalogue. Stored data that cannot be read is replaced by defaults and
// logged; New itself never fails.
func New(ctx context.Context, opts Options) *Trainer {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Bank == nil {
		opts.Bank = content.Default()
	}
	if opts.QuestionsPerExercise <= 0 {
		opts.QuestionsPerExercise = exercise.DefaultQuestionCount
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(opts.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	t := &Trainer{
		ctx:       ctx,
		judge:     judge.New(rng, opts.Bank),
		gen:       exercise.NewGenerator(rng, opts.Bank).WithLogger(opts.Logger),
		gate:      speech.NewGate(opts.Speaker, opts.Logger),
		blobs:     opts.Blobs,
		events:    opts.Events,
		log:       opts.Logger,
		questions: opts.QuestionsPerExercise,
	}

	progressOpts := mastery.Options{
		UnlockAll: opts.UnlockAll,
		Persist:   t.persistFunc(ProgressKey),
		Logger:    opts.Logger,
		Now:       opts.Now,
	}
	var err error
	t.progress, err = mastery.Load(t.loadBlob(ProgressKey), progressOpts)
	if err != nil {
		t.log.Warn("stored progress discarded", "error", err)
	}

	catOpts := exercise.CatalogueOptions{
		Persist: t.persistFunc(CatalogueKey),
		Logger:  opts.Logger,
	}
	t.catalogue, err = exercise.LoadCatalogue(t.loadBlob(CatalogueKey), catOpts)
	if err != nil {
		t.log.Warn("stored exercise catalogue discarded", "error", err)
	}
	return t
}

func (t *Trainer) loadBlob(key store.Key) []byte {
	if t.blobs == nil {
		return nil
	}
	if n, err := t.blobs.PruneStale(t.ctx, key); err != nil {
		t.log.Warn("prune stale blobs failed", "key", key.String(), "error", err)
	} else if n > 0 {
		t.log.Info("discarded stale blobs", "key", key.String(), "count", n)
	}
	data, ok, err := t.blobs.Load(t.ctx, key)
	if err != nil {
		t.log.Warn("load blob failed", "key", key.String(), "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return data
}

func (t *Trainer) persistFunc(key store.Key) func([]byte) error {
	if t.blobs == nil {
		return nil
	}
	return func(data []byte) error {
		return t.blobs.Save(t.ctx, key, data)
	}
}

// Judge evaluates an answer without recording it.
func (t *Trainer) Judge(in judge.Input) *judge.Result {
	return t.judge.Evaluate(in)
}

// Evaluate judges the chosen option of q, records the answer against the
// question's sound and level and logs the events. Questions without a known
// target sound are judged but not recorded.
func (t *Trainer) Evaluate(sessionID string, q exercise.Question, selected int) Outcome {
	res := t.judge.Evaluate(q.JudgeInput(selected))
	out := Outcome{Result: res}

	p, ok := phoneme.ByLetter(q.TargetSound)
	if !ok {
		return out
	}
	out.Transitions = t.RecordAnswer(sessionID, mastery.Answer{
		SoundID:      p.ID,
		Level:        q.Level,
		Correct:      res.IsCorrect,
		Position:     q.Position,
		ConfusedWith: res.ConfusedWith,
	})

	if t.events != nil {
		err := t.events.AppendAnswerEvent(t.ctx, store.AnswerEventData{
			SessionID:    sessionID,
			SoundID:      p.ID,
			Level:        string(q.Level),
			Position:     string(q.Position),
			Correct:      res.IsCorrect,
			Selected:     res.SelectedSound,
			ConfusedWith: res.ConfusedWith,
			Similarity:   res.SimilarityScore,
		})
		if err != nil {
			t.log.Warn("append answer event failed", "error", err)
		}
	}
	return out
}

// RecordAnswer updates progress and logs any status changes.
func (t *Trainer) RecordAnswer(sessionID string, a mastery.Answer) []mastery.StateTransition {
	transitions := t.progress.RecordAnswer(a)
	if t.events == nil {
		return transitions
	}
	for _, tr := range transitions {
		err := t.events.AppendMasteryEvent(t.ctx, store.MasteryEventData{
			SessionID:  sessionID,
			SoundID:    tr.SoundID,
			Level:      string(tr.Level),
			FromStatus: string(tr.From),
			ToStatus:   string(tr.To),
			Trigger:    tr.Trigger,
		})
		if err != nil {
			t.log.Warn("append mastery event failed", "error", err)
		}
	}
	return transitions
}

// SoundMasteryStatus returns the status of one level of one sound.
func (t *Trainer) SoundMasteryStatus(soundID string, level curriculum.Level) mastery.Status {
	return t.progress.Status(soundID, level)
}

// Progress returns a copy of one sound's progress.
func (t *Trainer) Progress(soundID string) (*mastery.SoundProgress, bool) {
	return t.progress.Progress(soundID)
}

// AllProgress returns copies of every tracked sound's progress.
func (t *Trainer) AllProgress() map[string]*mastery.SoundProgress {
	return t.progress.All()
}

// Recommendations returns prioritized advice for one sound, or for every
// tracked sound when soundID is empty.
func (t *Trainer) Recommendations(soundID string) []recommend.Recommendation {
	return recommend.Generate(t.progress.All(), soundID)
}

// NextExercise returns the level and optional word position to practise.
func (t *Trainer) NextExercise(soundID string) (curriculum.Level, curriculum.Position) {
	sp, _ := t.progress.Progress(soundID)
	return recommend.NextExercise(sp)
}

// Statistics summarizes progress across all sounds.
func (t *Trainer) Statistics() mastery.Statistics {
	return t.progress.Statistics()
}

// ResetSoundProgress forgets one sound's progress.
func (t *Trainer) ResetSoundProgress(soundID string) {
	t.progress.ResetSound(soundID)
}

// ResetAllProgress forgets all progress.
func (t *Trainer) ResetAllProgress() {
	t.progress.ResetAll()
}

// UnlockAll reports whether every level is available regardless of progress.
func (t *Trainer) UnlockAll() bool {
	return t.progress.UnlockAll()
}

// Speak plays text unless something is already playing. It reports whether
// playback started.
func (t *Trainer) Speak(text string) bool {
	return t.gate.Play(text)
}

// SpeechBusy reports whether an utterance is playing.
func (t *Trainer) SpeechBusy() bool {
	return t.gate.Busy()
}

// Exercise builds an exercise for an unlocked level of a sound.
func (t *Trainer) Exercise(soundID string, level curriculum.Level) (*exercise.Exercise, error) {
	return t.CustomExercise(soundID, level, "")
}

// CustomExercise is Exercise restricted to one word position.
func (t *Trainer) CustomExercise(soundID string, level curriculum.Level, pos curriculum.Position) (*exercise.Exercise, error) {
	if t.progress.Status(soundID, level) == mastery.StatusLocked {
		return nil, fmt.Errorf("%w: %s %s", ErrLevelLocked, soundID, level)
	}
	return t.gen.Custom(soundID, level, pos, t.questions)
}

// ReviewSimilar builds a review of two easily confused sounds.
func (t *Trainer) ReviewSimilar(a, b string) (*exercise.Exercise, error) {
	return t.gen.SimilarSoundsReview(a, b, 0)
}

// CatalogueExercise builds a playable exercise from a catalogue entry.
func (t *Trainer) CatalogueExercise(id string) (*exercise.Exercise, error) {
	e, ok := t.catalogue.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", exercise.ErrNotFound, id)
	}
	return t.gen.FromEntry(e)
}

// Catalogue returns the authored exercise catalogue. Changes made through it
// are persisted.
func (t *Trainer) Catalogue() *exercise.Catalogue {
	return t.catalogue
}

// History returns up to n recent answers for a sound, newest first. It is
// empty when no event log is configured.
func (t *Trainer) History(soundID string, n int) ([]store.AnswerEvent, error) {
	if t.events == nil {
		return nil, nil
	}
	if p, ok := phoneme.Resolve(soundID); ok {
		soundID = p.ID
	}
	return t.events.RecentAnswers(t.ctx, soundID, n)
}

// Sessions returns up to n finished exercise runs, newest first.
func (t *Trainer) Sessions(n int) ([]store.SessionRecord, error) {
	if t.events == nil {
		return nil, nil
	}
	return t.events.RecentSessions(t.ctx, n)
}

// RecordSession logs the start or end of an exercise run.
func (t *Trainer) RecordSession(data store.SessionEventData) {
	if t.events == nil {
		return
	}
	if err := t.events.AppendSessionEvent(t.ctx, data); err != nil {
		t.log.Warn("append session event failed", "error", err)
	}
}
