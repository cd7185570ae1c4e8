// Package explain asks an LLM for worked solutions to generated questions.
package explain

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/llm"
)

// Service generates worked solutions.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

type solutionOutput struct {
	Steps  []string `json:"steps"`
	Answer string   `json:"answer"`
	Tip    string   `json:"tip"`
}

// Explain returns a worked solution for p. A solution that reaches a
// different answer is still returned, with Agrees false.
func (s *Service) Explain(ctx context.Context, p Problem) (*Solution, error) {
	if strings.TrimSpace(p.Text) == "" {
		return nil, fmt.Errorf("explain: empty question")
	}

	requestID := uuid.NewString()
	ctx = llm.WithPurpose(ctx, llm.PurposeExplain)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(p)},
		},
		Schema:      SolutionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out solutionOutput
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	sol := &Solution{
		RequestID: requestID,
		Steps:     out.Steps,
		Answer:    out.Answer,
		Tip:       out.Tip,
		Agrees:    SameNumbers(p.Answer, out.Answer),
		Model:     resp.Model,
		Usage:     resp.Usage,
	}
	if !sol.Agrees {
		s.logger.Warn("explanation disagrees with answer",
			zap.String("request_id", requestID),
			zap.String("expected", p.Answer),
			zap.String("got", out.Answer))
	}
	return sol, nil
}

var numberPattern = regexp.MustCompile(`\d[\d,]*`)

// numbers extracts the integers in s, ignoring thousands separators.
func numbers(s string) []string {
	var out []string
	for _, m := range numberPattern.FindAllString(s, -1) {
		out = append(out, strings.ReplaceAll(m, ",", ""))
	}
	return out
}

// SameNumbers reports whether got mentions every number of want in order.
// Units and wording are ignored, so "Profit of ₹25" matches "Rs. 25 profit".
func SameNumbers(want, got string) bool {
	w := numbers(want)
	if len(w) == 0 {
		return false
	}
	g := numbers(got)
	for _, n := range w {
		i := slices.Index(g, n)
		if i < 0 {
			return false
		}
		g = g[i+1:]
	}
	return true
}
