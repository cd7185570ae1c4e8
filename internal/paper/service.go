package paper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/store"
)

// Service manages the session's papers and tracks the active one.
// Not safe for concurrent use.
type Service struct {
	repo   store.PaperRepo
	active string
	logger *zap.Logger
}

// NewService creates a Service backed by repo. A nil logger disables logging.
func NewService(repo store.PaperRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Create adds an empty paper and makes it active.
func (s *Service) Create(ctx context.Context, school catalog.SchoolID, setName string) (*Paper, error) {
	setName = strings.TrimSpace(setName)
	if setName == "" {
		return nil, ErrEmptySetName
	}
	if _, err := catalog.GetSchool(school); err != nil {
		return nil, err
	}

	id := ID(school, setName)
	_, err := s.repo.CreatePaper(ctx, store.PaperRecord{ID: id, School: string(school), SetName: setName})
	if errors.Is(err, store.ErrConflict) {
		return nil, fmt.Errorf("paper %q: %w", id, ErrExists)
	}
	if err != nil {
		return nil, fmt.Errorf("create paper: %w", err)
	}

	s.active = id
	s.logger.Info("paper created", zap.String("paper", id))
	return &Paper{ID: id, School: school, SetName: setName}, nil
}

// Delete removes a paper. Deleting the active paper leaves none active.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeletePaper(ctx, id); err != nil {
		return s.wrap(id, err)
	}
	if s.active == id {
		s.active = ""
	}
	s.logger.Info("paper deleted", zap.String("paper", id))
	return nil
}

// SetActive makes id the paper that Add appends to.
func (s *Service) SetActive(ctx context.Context, id string) error {
	if _, err := s.repo.GetPaper(ctx, id); err != nil {
		return s.wrap(id, err)
	}
	s.active = id
	return nil
}

// ActiveID returns the active paper id, or "" when there is none.
func (s *Service) ActiveID() string {
	return s.active
}

// Active returns the active paper with its entries.
func (s *Service) Active(ctx context.Context) (*Paper, error) {
	if s.active == "" {
		return nil, ErrNoActive
	}
	return s.Get(ctx, s.active)
}

// Get returns a paper with its entries in insertion order.
func (s *Service) Get(ctx context.Context, id string) (*Paper, error) {
	rec, err := s.repo.GetPaper(ctx, id)
	if err != nil {
		return nil, s.wrap(id, err)
	}
	qs, err := s.repo.Questions(ctx, id)
	if err != nil {
		return nil, s.wrap(id, err)
	}
	p := &Paper{ID: rec.ID, School: catalog.SchoolID(rec.School), SetName: rec.SetName}
	for _, q := range qs {
		p.Entries = append(p.Entries, entryFromRecord(q))
	}
	return p, nil
}

// List returns every paper in creation order.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	recs, err := s.repo.ListPapers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	out := make([]Summary, 0, len(recs))
	for _, r := range recs {
		n, err := s.repo.CountQuestions(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("count questions: %w", err)
		}
		out = append(out, Summary{
			ID:        r.ID,
			School:    catalog.SchoolID(r.School),
			SetName:   r.SetName,
			Questions: n,
			Active:    r.ID == s.active,
		})
	}
	return out, nil
}

// Add appends copies of entries to the active paper.
func (s *Service) Add(ctx context.Context, entries []Entry) error {
	if s.active == "" {
		return ErrNoActive
	}
	return s.AddTo(ctx, s.active, entries)
}

// AddTo appends copies of entries to the paper id.
func (s *Service) AddTo(ctx context.Context, id string, entries []Entry) error {
	if len(entries) == 0 {
		return ErrNoQuestions
	}
	rec, err := s.repo.GetPaper(ctx, id)
	if err != nil {
		return s.wrap(id, err)
	}
	school := catalog.SchoolID(rec.School)

	recs := make([]store.QuestionRecord, len(entries))
	for i, e := range entries {
		e.ID = ""
		recs[i] = e.record(school)
	}
	if err := s.repo.AddQuestions(ctx, id, recs); err != nil {
		return s.wrap(id, err)
	}
	s.logger.Debug("questions added", zap.String("paper", id), zap.Int("count", len(entries)))
	return nil
}

// Remove deletes the entry at index, counted in insertion order.
func (s *Service) Remove(ctx context.Context, id string, index int) error {
	if _, err := s.repo.GetPaper(ctx, id); err != nil {
		return s.wrap(id, err)
	}
	n, err := s.repo.CountQuestions(ctx, id)
	if err != nil {
		return s.wrap(id, err)
	}
	if index < 0 || index >= n {
		return fmt.Errorf("paper %q index %d: %w", id, index, ErrBadIndex)
	}
	if err := s.repo.RemoveQuestion(ctx, id, index); err != nil {
		return s.wrap(id, err)
	}
	return nil
}

func (s *Service) wrap(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("paper %q: %w", id, ErrNotFound)
	}
	return fmt.Errorf("paper %q: %w", id, err)
}
