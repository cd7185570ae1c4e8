package paper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/randx"
	"github.com/abhisek/quizgen/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st.PaperRepo(), nil)
}

func entry(concept catalog.ConceptID, text string) Entry {
	return Entry{
		Concept:   concept,
		Variant:   problemgen.VariantEasy,
		Generator: problemgen.GenPercentage,
		Key:       text,
		Text:      text,
		Answer:    "64",
		Options: []problemgen.Option{
			{Letter: "A", Text: "61"},
			{Letter: "B", Text: "64", Correct: true},
			{Letter: "C", Text: "67"},
			{Letter: "D", Text: "58"},
		},
		CorrectLetter: "B",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.Create(ctx, catalog.SchoolProgramming, "  A ")
	require.NoError(t, err)
	assert.Equal(t, "SOP A", p.ID)
	assert.Equal(t, "A", p.SetName)
	assert.Equal(t, "SOP A", svc.ActiveID())

	_, err = svc.Create(ctx, catalog.SchoolProgramming, "A")
	assert.ErrorIs(t, err, ErrExists)

	_, err = svc.Create(ctx, catalog.SchoolProgramming, "   ")
	assert.ErrorIs(t, err, ErrEmptySetName)

	_, err = svc.Create(ctx, "XYZ", "A")
	assert.Error(t, err)

	_, err = svc.Create(ctx, catalog.SchoolBusiness, "A")
	require.NoError(t, err)
	assert.Equal(t, "SOB A", svc.ActiveID())
}

func TestListAndActive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Active(ctx)
	assert.ErrorIs(t, err, ErrNoActive)
	assert.ErrorIs(t, svc.Add(ctx, []Entry{entry(catalog.ConceptPercentages, "q")}), ErrNoActive)

	_, err = svc.Create(ctx, catalog.SchoolProgramming, "A")
	require.NoError(t, err)
	_, err = svc.Create(ctx, catalog.SchoolFinance, "B")
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(ctx, "SOP A"))
	require.NoError(t, svc.Add(ctx, []Entry{
		entry(catalog.ConceptPercentages, "q1"),
		entry(catalog.ConceptPercentages, "q2"),
	}))
	assert.ErrorIs(t, svc.SetActive(ctx, "BCA Z"), ErrNotFound)
	assert.Equal(t, "SOP A", svc.ActiveID())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, Summary{ID: "SOP A", School: "SOP", SetName: "A", Questions: 2, Active: true}, list[0])
	assert.Equal(t, Summary{ID: "SOF B", School: "SOF", SetName: "B", Questions: 0, Active: false}, list[1])

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active.Entries, 2)
	assert.Equal(t, "q1", active.Entries[0].Text)
	assert.True(t, active.Entries[0].Options[1].Correct)
	assert.False(t, active.Entries[0].Options[0].Correct)
}

func TestDeleteClearsActive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, catalog.SchoolProgramming, "A")
	require.NoError(t, err)
	_, err = svc.Create(ctx, catalog.SchoolProgramming, "B")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "SOP A"))
	assert.Equal(t, "SOP B", svc.ActiveID())

	require.NoError(t, svc.Delete(ctx, "SOP B"))
	assert.Empty(t, svc.ActiveID())

	assert.ErrorIs(t, svc.Delete(ctx, "SOP B"), ErrNotFound)
}

func TestAddAndRemove(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, catalog.SchoolProgramming, "A")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Add(ctx, nil), ErrNoQuestions)
	require.NoError(t, svc.Add(ctx, []Entry{
		entry(catalog.ConceptPercentages, "q1"),
		entry(catalog.ConceptNumberPatterns, "q2"),
		entry(catalog.ConceptPercentages, "q3"),
	}))

	require.NoError(t, svc.Remove(ctx, "SOP A", 0))
	p, err := svc.Get(ctx, "SOP A")
	require.NoError(t, err)
	require.Len(t, p.Entries, 2)
	assert.Equal(t, "q2", p.Entries[0].Text)
	assert.Equal(t, "q3", p.Entries[1].Text)

	assert.ErrorIs(t, svc.Remove(ctx, "SOP A", 2), ErrBadIndex)
	assert.ErrorIs(t, svc.Remove(ctx, "SOP Z", 0), ErrNotFound)
	assert.ErrorIs(t, svc.AddTo(ctx, "SOP Z", []Entry{entry(catalog.ConceptPercentages, "q")}), ErrNotFound)
}

func TestAddedEntriesAreCopies(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, catalog.SchoolProgramming, "A")
	require.NoError(t, err)

	e := entry(catalog.ConceptPercentages, "q1")
	require.NoError(t, svc.Add(ctx, []Entry{e}))
	require.NoError(t, svc.Add(ctx, []Entry{e}))
	e.Options[0].Text = "changed"

	p, err := svc.Get(ctx, "SOP A")
	require.NoError(t, err)
	require.Len(t, p.Entries, 2)
	assert.NotEqual(t, p.Entries[0].ID, p.Entries[1].ID)
	assert.Equal(t, "61", p.Entries[0].Options[0].Text)
}

func TestNewEntryFromGenerator(t *testing.T) {
	src := randx.New(7)
	svc := problemgen.NewService(src, problemgen.DefaultConfig(), nil)
	batch, err := svc.Generate(problemgen.GenProfitLoss, problemgen.VariantEasy, 1)
	require.NoError(t, err)
	require.Len(t, batch.Questions, 1)

	q := batch.Questions[0]
	set, err := svc.SynthesizeOptions(q)
	require.NoError(t, err)

	e := NewEntry(catalog.ConceptProfitLoss, q, set)
	assert.Equal(t, q.Text, e.Text)
	assert.Equal(t, problemgen.AnswerText(q), e.Answer)
	assert.Equal(t, set.CorrectLetter, e.CorrectLetter)
	assert.Equal(t, problemgen.VariantEasy, e.Variant)
	assert.Equal(t, q.Key, e.Key)
	require.Len(t, e.Options, 4)
}

func TestServiceLogs(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(st.PaperRepo(), zap.New(core))

	_, err = svc.Create(ctx, catalog.SchoolBCA, "A")
	require.NoError(t, err)
	require.NoError(t, svc.Add(ctx, []Entry{entry(catalog.ConceptPercentages, "q")}))

	assert.Equal(t, 1, logs.FilterMessage("paper created").Len())
	added := logs.FilterMessage("questions added").All()
	require.Len(t, added, 1)
	assert.Equal(t, int64(1), added[0].ContextMap()["count"])
}
