package explain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/randx"
	"github.com/abhisek/quizgen/internal/store"
)

func sampleProblem() Problem {
	return Problem{
		Concept: "Profit and Loss",
		Text:    "Anwar buys a notebook for ₹80 and sells it for ₹105.\nDid he make a profit or a loss? How much?",
		Answer:  "Profit of ₹25",
		Options: []problemgen.Option{
			{Letter: "A", Text: "Loss of ₹25"},
			{Letter: "B", Text: "Profit of ₹25", Correct: true},
			{Letter: "C", Text: "Profit of ₹31"},
			{Letter: "D", Text: "Loss of ₹18"},
		},
	}
}

func TestExplain_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"steps":["SP - CP = 105 - 80 = 25","SP is larger, so it is a profit"],"answer":"Profit of Rs. 25","tip":"Compare SP with CP first."}`),
		Usage:   llm.Usage{InputTokens: 120, OutputTokens: 40, TotalTokens: 160},
	})
	svc := NewService(mock, DefaultConfig(), nil)

	sol, err := svc.Explain(context.Background(), sampleProblem())
	require.NoError(t, err)

	assert.Len(t, sol.Steps, 2)
	assert.Equal(t, "Profit of Rs. 25", sol.Answer)
	assert.Equal(t, "Compare SP with CP first.", sol.Tip)
	assert.True(t, sol.Agrees)
	assert.Equal(t, "mock", sol.Model)
	assert.Equal(t, 160, sol.Usage.TotalTokens)
	assert.Len(t, sol.RequestID, 36)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, SolutionSchema, req.Schema)
	assert.Equal(t, 768, req.MaxTokens)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Topic: Profit and Loss")
	assert.Contains(t, msg, "(B) Profit of ₹25")
	assert.Contains(t, msg, "Correct answer: Profit of ₹25")
}

func TestExplain_Disagreement(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"steps":["105 - 80 = 35"],"answer":"Profit of Rs. 35","tip":"Subtract carefully."}`),
	})
	svc := NewService(mock, DefaultConfig(), zap.New(core))

	sol, err := svc.Explain(context.Background(), sampleProblem())
	require.NoError(t, err)
	assert.False(t, sol.Agrees)
	assert.Equal(t, 1, logs.FilterMessage("explanation disagrees with answer").Len())
}

func TestExplain_Errors(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig(), nil)
	_, err := svc.Explain(context.Background(), Problem{Text: "  "})
	assert.ErrorContains(t, err, "empty question")

	rate := &llm.ErrRateLimit{Err: errors.New("429")}
	svc = NewService(llm.NewMockProvider(llm.MockResponse{Err: rate}), DefaultConfig(), nil)
	_, err = svc.Explain(context.Background(), sampleProblem())
	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))

	svc = NewService(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)}), DefaultConfig(), nil)
	_, err = svc.Explain(context.Background(), sampleProblem())
	assert.ErrorContains(t, err, "parse explanation response")
}

func TestExplain_ThroughDecoratorChain(t *testing.T) {
	st, err := store.Open()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"steps":["105 - 80 = 25"]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"steps":["105 - 80 = 25"],"answer":"25","tip":"SP - CP."}`)},
	)
	p := llm.WithValidation(mock)
	p = llm.WithLogging(p, st.EventRepo(), nil)
	p = llm.WithRetry(p, llm.RetryConfig{MaxAttempts: 3, Multiplier: 1}, 0, nil)

	sol, err := NewService(p, DefaultConfig(), nil).Explain(context.Background(), sampleProblem())
	require.NoError(t, err)
	assert.True(t, sol.Agrees)
	assert.Equal(t, 2, mock.CallCount(), "schema mismatch is retried once")

	events, err := st.EventRepo().RecentLLMRequests(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, llm.PurposeExplain, e.Purpose)
	}
	assert.True(t, events[0].Success)
	assert.False(t, events[1].Success)
}

func TestFromQuestionAndEntry(t *testing.T) {
	svc := problemgen.NewService(randx.New(3), problemgen.DefaultConfig(), nil)
	batch, err := svc.Generate(problemgen.GenSimpleInterest, problemgen.VariantEasy, 1)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 1)
	q := batch.Questions[0]
	set, err := svc.SynthesizeOptions(q)
	require.NoError(t, err)

	p := FromQuestion(catalog.ConceptInterest, q, set)
	assert.Equal(t, q.Text, p.Text)
	assert.Equal(t, problemgen.AnswerText(q), p.Answer)
	assert.Len(t, p.Options, 4)
	assert.NotEmpty(t, p.Concept)

	entry := paper.NewEntry(catalog.ConceptInterest, q, set)
	assert.Equal(t, p, FromEntry(entry))
}

func TestSameNumbers(t *testing.T) {
	tests := []struct {
		want, got string
		same      bool
	}{
		{"Profit of ₹25", "Rs. 25 profit", true},
		{"1,250", "1250", true},
		{"12 of ₹5 coins and 30 of ₹10 notes", "12 of Rs.5 coins and 30 of Rs.10 notes", true},
		{"12 of ₹5 coins and 30 of ₹10 notes", "30 of Rs.10 notes and 12 of Rs.5 coins", false},
		{"64", "46", false},
		{"no digits", "no digits", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.same, SameNumbers(tt.want, tt.got), "%q vs %q", tt.want, tt.got)
	}
}
