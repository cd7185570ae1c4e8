// Package session ties the generator, the paper store and the exporters
// together for one sitting of a question setter. Nothing outlives the
// process.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/explain"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/pdfexport"
	"github.com/abhisek/quizgen/internal/problemgen"
)

// ErrNoExplainer is returned by Explain when no LLM provider is configured.
var ErrNoExplainer = errors.New("explanations need an LLM provider")

// Options holds the session's collaborators. Explainer may be nil.
type Options struct {
	Questions *problemgen.Service
	Papers    *paper.Service
	Exporter  *pdfexport.Exporter
	Explainer *explain.Service
	OutputDir string
	Logger    *zap.Logger
}

// Session is the working state of a question setter.
type Session struct {
	questions *problemgen.Service
	papers    *paper.Service
	exporter  *pdfexport.Exporter
	explainer *explain.Service
	outputDir string
	logger    *zap.Logger
}

// New creates a Session.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	return &Session{
		questions: opts.Questions,
		papers:    opts.Papers,
		exporter:  opts.Exporter,
		explainer: opts.Explainer,
		outputDir: dir,
		logger:    logger,
	}
}

// Papers returns the paper service.
func (s *Session) Papers() *paper.Service { return s.papers }

// CanExplain reports whether an explainer is configured.
func (s *Session) CanExplain() bool { return s.explainer != nil }

// OutputDir is where exported PDFs are written.
func (s *Session) OutputDir() string { return s.outputDir }

// Request selects what to generate.
type Request struct {
	School  catalog.SchoolID
	Concept catalog.ConceptID
	Variant problemgen.Variant
	Count   int
}

// MCQ is a generated question with its options.
type MCQ struct {
	Question *problemgen.Question
	Set      problemgen.OptionSet
}

// Draw is one generated batch together with the catalogue entries that
// produced it.
type Draw struct {
	Request
	School     catalog.School
	Difficulty catalog.Difficulty
	MCQs       []MCQ
	Outcome    problemgen.Outcome
}

// Entries converts the MCQs at the given indexes into paper entries.
// Out-of-range indexes are skipped.
func (d *Draw) Entries(indexes ...int) []paper.Entry {
	out := make([]paper.Entry, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(d.MCQs) {
			continue
		}
		m := d.MCQs[i]
		out = append(out, paper.NewEntry(d.Concept, m.Question, m.Set))
	}
	return out
}

// AllEntries converts every MCQ into a paper entry.
func (d *Draw) AllEntries() []paper.Entry {
	idx := make([]int, len(d.MCQs))
	for i := range idx {
		idx[i] = i
	}
	return d.Entries(idx...)
}

// Generate resolves req against the catalogue, runs a batch and builds
// options for every question. A short batch is not an error.
func (s *Session) Generate(req Request) (*Draw, error) {
	school, err := catalog.GetSchool(req.School)
	if err != nil {
		return nil, err
	}
	concept, err := catalog.Resolve(req.School, req.Concept, req.Variant)
	if err != nil {
		return nil, err
	}
	diff, _ := concept.Difficulty(req.Variant)

	batch, err := s.questions.Generate(concept.Generator, req.Variant, req.Count)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", catalog.Title(req.Concept), err)
	}

	draw := &Draw{
		Request:    req,
		School:     school,
		Difficulty: diff,
	}
	if err := s.fill(draw, batch); err != nil {
		return nil, err
	}
	return draw, nil
}

// GenerateClassic runs the classic percentage worksheet family, which no
// school offers. The draw carries no school.
func (s *Session) GenerateClassic(v problemgen.Variant, count int) (*Draw, error) {
	batch, err := s.questions.GenerateClassic(v, count)
	if err != nil {
		return nil, fmt.Errorf("generate classic percentages: %w", err)
	}
	draw := &Draw{
		Request:    Request{Concept: catalog.ConceptPercentages, Variant: v, Count: count},
		Difficulty: catalog.Difficulty{Variant: v, Label: string(v)},
	}
	if err := s.fill(draw, batch); err != nil {
		return nil, err
	}
	return draw, nil
}

func (s *Session) fill(draw *Draw, batch *problemgen.Batch) error {
	draw.Outcome = batch.Outcome()
	draw.MCQs = make([]MCQ, 0, len(batch.Questions))
	for _, q := range batch.Questions {
		set, err := s.questions.SynthesizeOptions(q)
		if err != nil {
			return fmt.Errorf("build options: %w", err)
		}
		draw.MCQs = append(draw.MCQs, MCQ{Question: q, Set: set})
	}
	return nil
}

// AddToActive copies entries into the active paper.
func (s *Session) AddToActive(ctx context.Context, entries []paper.Entry) (*paper.Paper, error) {
	if err := s.papers.Add(ctx, entries); err != nil {
		return nil, err
	}
	return s.papers.Active(ctx)
}

// Explain asks the LLM for a worked solution.
func (s *Session) Explain(ctx context.Context, p explain.Problem) (*explain.Solution, error) {
	if s.explainer == nil {
		return nil, ErrNoExplainer
	}
	return s.explainer.Explain(ctx, p)
}

// WorksheetFileName names a worksheet export, e.g. "SOB - simple interest - easy only.pdf".
// Classic draws are named "classic - percentages - <variant>.pdf".
func WorksheetFileName(d *Draw) string {
	school := string(d.School.ID)
	if school == "" {
		school = "classic"
	}
	return fmt.Sprintf("%s - %s - %s.pdf", school, d.Concept, d.Variant)
}

// ExportWorksheet writes the draw as a worksheet PDF and returns its path.
func (s *Session) ExportWorksheet(d *Draw) (string, error) {
	path := filepath.Join(s.outputDir, WorksheetFileName(d))
	ws := pdfexport.Worksheet{
		School:     d.School.Label,
		Concept:    d.Concept,
		Difficulty: d.Difficulty.Label,
		Entries:    d.AllEntries(),
	}
	if err := pdfexport.WriteFile(path, func(w io.Writer) error {
		return s.exporter.Worksheet(w, ws)
	}); err != nil {
		return "", err
	}
	s.logger.Info("worksheet exported", zap.String("path", path), zap.Int("questions", len(ws.Entries)))
	return path, nil
}

// ExportPaper writes the paper and its answer key and returns both paths.
func (s *Session) ExportPaper(ctx context.Context, id string) (paperPath, keyPath string, err error) {
	p, err := s.papers.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	if len(p.Entries) == 0 {
		return "", "", paper.ErrNoQuestions
	}

	paperPath = filepath.Join(s.outputDir, pdfexport.PaperFileName(p))
	if err := pdfexport.WriteFile(paperPath, func(w io.Writer) error {
		return s.exporter.Paper(w, p)
	}); err != nil {
		return "", "", err
	}
	keyPath = filepath.Join(s.outputDir, pdfexport.AnswerKeyFileName(p))
	if err := pdfexport.WriteFile(keyPath, func(w io.Writer) error {
		return s.exporter.AnswerKey(w, p)
	}); err != nil {
		return "", "", err
	}

	s.logger.Info("paper exported",
		zap.String("paper", p.ID),
		zap.Int("questions", len(p.Entries)),
		zap.String("path", paperPath),
		zap.String("answer_key", keyPath))
	return paperPath, keyPath, nil
}
