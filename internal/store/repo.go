package store

import (
	"context"
	"time"
)

// Key names a stored blob. Version is a semver major such as "v2"; blobs
// stored under an older version of the same name are stale and are never
// migrated.
type Key struct {
	Name    string
	Version string
}

func (k Key) String() string {
	return k.Name + "@" + k.Version
}

// BlobRepo stores opaque versioned documents such as the progress map and
// the exercise catalogue.
type BlobRepo interface {
	// Load returns the blob stored under key. ok is false when none exists.
	Load(ctx context.Context, key Key) (data []byte, ok bool, err error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key Key, data []byte) error

	// Delete removes the blob stored under key. Deleting a missing blob is
	// not an error.
	Delete(ctx context.Context, key Key) error

	// PruneStale deletes blobs of the same name stored under an older
	// version and returns how many were removed.
	PruneStale(ctx context.Context, key Key) (int, error)
}

// AnswerEventData captures one judged answer.
type AnswerEventData struct {
	SessionID    string
	SoundID      string
	Level        string
	Position     string
	Correct      bool
	Selected     string
	ConfusedWith string
	Similarity   float64
}

// AnswerEvent is a stored answer.
type AnswerEvent struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// MasteryEventData captures one level status change.
type MasteryEventData struct {
	SessionID  string
	SoundID    string
	Level      string
	FromStatus string
	ToStatus   string
	Trigger    string
}

// SessionEventData captures the start or end of an exercise run.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	SoundID         string
	Level           string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// SessionRecord is a finished exercise run as stored in the event log.
type SessionRecord struct {
	Timestamp time.Time
	SessionEventData
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentAnswers returns up to limit answers for a sound, newest first.
	// An empty soundID matches every sound; limit 0 means no limit.
	RecentAnswers(ctx context.Context, soundID string, limit int) ([]AnswerEvent, error)

	// CountAnswers returns how many answers were recorded for a sound and
	// how many of them were correct. An empty soundID counts every sound.
	CountAnswers(ctx context.Context, soundID string) (total, correct int, err error)

	// RecentSessions returns up to limit finished runs, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
}
