package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a paper or question does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrConflict is returned when a paper id is already taken.
	ErrConflict = errors.New("store: already exists")
)

// PaperRecord is a stored paper header.
type PaperRecord struct {
	ID        string
	School    string
	SetName   string
	Sequence  int64
	CreatedAt time.Time
}

// OptionRecord is one stored multiple-choice option.
type OptionRecord struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuestionRecord is a question copied into a paper together with its
// options, so later edits to the generator cannot change it.
type QuestionRecord struct {
	ID            string
	Sequence      int64
	School        string
	Concept       string
	Variant       string
	Generator     string
	ParamKey      string
	Text          string
	AnswerText    string
	Options       []OptionRecord
	CorrectLetter string
}

// PaperRepo manages papers and their questions.
type PaperRepo interface {
	// CreatePaper stores a new paper. Returns ErrConflict if the id exists.
	CreatePaper(ctx context.Context, p PaperRecord) (*PaperRecord, error)

	// GetPaper returns the paper with id, or ErrNotFound.
	GetPaper(ctx context.Context, id string) (*PaperRecord, error)

	// ListPapers returns all papers in creation order.
	ListPapers(ctx context.Context) ([]PaperRecord, error)

	// DeletePaper removes a paper and its questions.
	DeletePaper(ctx context.Context, id string) error

	// AddQuestions appends questions to a paper in one transaction.
	AddQuestions(ctx context.Context, paperID string, qs []QuestionRecord) error

	// Questions returns a paper's questions in insertion order.
	Questions(ctx context.Context, paperID string) ([]QuestionRecord, error)

	// RemoveQuestion deletes the question at a zero-based position.
	RemoveQuestion(ctx context.Context, paperID string, index int) error

	// CountQuestions returns the number of questions in a paper.
	CountQuestions(ctx context.Context, paperID string) (int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a recorded LLM call.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append access to LLM call events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns up to limit events, newest first.
	// A limit of 0 returns all of them.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}
