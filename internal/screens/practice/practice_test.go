package practice

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/explain"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/screens/screentest"
	"github.com/abhisek/quizgen/internal/session"
)

func newPractice(t *testing.T, explainer *explain.Service) (*PracticeScreen, *session.Session) {
	t.Helper()
	sess := screentest.NewSession(t, explainer)
	draw, err := sess.Generate(session.Request{
		School:  catalog.SchoolFinance,
		Concept: catalog.ConceptInterest,
		Variant: problemgen.VariantEasy,
		Count:   3,
	})
	require.NoError(t, err)
	return New(sess, draw.Concept, draw.MCQs, 0), sess
}

func letterKey(letter string) tea.KeyPressMsg {
	return screentest.Key(rune(strings.ToLower(letter)[0]))
}

func wrongLetter(set problemgen.OptionSet) string {
	for _, o := range set.Options {
		if !o.Correct {
			return o.Letter
		}
	}
	return ""
}

func TestAnswerAndNavigate(t *testing.T) {
	p, _ := newPractice(t, nil)

	p.Update(letterKey(p.current().Set.CorrectLetter))
	assert.True(t, p.mc.IsCorrect())
	assert.Contains(t, p.View(100, 30), "Correct")

	p.Update(screentest.Key('n'))
	assert.Equal(t, 1, p.index)
	assert.False(t, p.mc.Submitted)

	p.Update(letterKey(wrongLetter(p.current().Set)))
	assert.False(t, p.mc.IsCorrect())
	assert.Contains(t, p.View(100, 30), "The answer is "+p.current().Set.CorrectLetter)

	p.Update(screentest.Special(tea.KeyLeft))
	assert.Equal(t, 0, p.index)
}

func TestAddToPaper(t *testing.T) {
	p, sess := newPractice(t, nil)
	p.Update(letterKey(p.current().Set.CorrectLetter))

	p.Update(screentest.Key('p'))
	assert.Contains(t, p.status, "No active paper")

	_, err := sess.Papers().Create(context.Background(), catalog.SchoolFinance, "C")
	require.NoError(t, err)
	p.Update(screentest.Key('p'))
	assert.Equal(t, "Added to SOF C (1 questions).", p.status)
}

func TestExplainWithoutProvider(t *testing.T) {
	p, _ := newPractice(t, nil)
	p.Update(letterKey(p.current().Set.CorrectLetter))

	_, cmd := p.Update(screentest.Key('e'))
	assert.Nil(t, cmd)
	assert.Contains(t, p.status, "LLM provider")
}

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"steps":["Interest = P x R / 100"],"answer":"Rs. 500","tip":"One year means T = 1."}`),
	})
	p, _ := newPractice(t, explain.NewService(mock, explain.DefaultConfig(), nil))
	p.Update(letterKey(p.current().Set.CorrectLetter))

	_, cmd := p.Update(screentest.Key('e'))
	require.NotNil(t, cmd)
	assert.True(t, p.explaining)

	p.Update(screentest.Drain(cmd))
	assert.False(t, p.explaining)
	require.NotNil(t, p.solution)
	assert.Contains(t, p.View(100, 40), "Worked solution")
	assert.Contains(t, p.View(100, 40), "Interest = P x R / 100")

	_, cmd = p.Update(screentest.Key('e'))
	assert.Nil(t, cmd, "solution is cached for the question")
	assert.Equal(t, 1, mock.CallCount())
}

func TestStaleExplanationIgnored(t *testing.T) {
	p, _ := newPractice(t, nil)
	p.Update(screentest.Key('n'))

	p.Update(explainedMsg{index: 0, solution: &explain.Solution{Answer: "x"}})
	assert.Nil(t, p.solution)
}
