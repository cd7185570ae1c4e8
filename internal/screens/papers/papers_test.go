package papers

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screens/paperview"
	"github.com/abhisek/quizgen/internal/screens/screentest"
)

func feed(p *PapersScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = p.Update(m)
	}
	return cmd
}

func TestCreatePaper(t *testing.T) {
	sess := screentest.NewSession(t, nil)
	p := New(sess)
	assert.Contains(t, p.View(100, 30), "No papers yet")

	feed(p, screentest.Key('n'))
	assert.Equal(t, modeSchool, p.mode)
	assert.True(t, p.Capturing())

	feed(p, screentest.Special(tea.KeyDown))
	cmd := feed(p, screentest.Special(tea.KeyEnter))
	msg, ok := screentest.Drain(cmd).(schoolPickedMsg)
	require.True(t, ok)
	assert.Equal(t, catalog.SchoolBusiness, msg.school)

	feed(p, msg)
	assert.Equal(t, modeSetName, p.mode)

	feed(p, screentest.Special(tea.KeyEnter))
	assert.Equal(t, modeSetName, p.mode, "empty set name is rejected")
	assert.NotEmpty(t, p.input.Err)

	feed(p, screentest.Type("A")...)
	feed(p, screentest.Special(tea.KeyEnter))
	assert.Equal(t, modeList, p.mode)
	assert.False(t, p.Capturing())
	assert.Equal(t, "SOB A", sess.Papers().ActiveID())
	require.Len(t, p.list, 1)
	assert.Contains(t, p.View(100, 30), "(active)")
}

func TestCreateDuplicateShowsError(t *testing.T) {
	sess := screentest.NewSession(t, nil)
	_, err := sess.Papers().Create(context.Background(), catalog.SchoolProgramming, "A")
	require.NoError(t, err)

	p := New(sess)
	feed(p, schoolPickedMsg{school: catalog.SchoolProgramming})
	feed(p, screentest.Type("A")...)
	feed(p, screentest.Special(tea.KeyEnter))

	assert.Equal(t, modeSetName, p.mode)
	assert.Contains(t, p.input.Err, "already exists")

	feed(p, screentest.Special(tea.KeyEscape))
	assert.Equal(t, modeList, p.mode)
}

func TestOpenActivateDelete(t *testing.T) {
	sess := screentest.NewSession(t, nil)
	ctx := context.Background()
	_, err := sess.Papers().Create(ctx, catalog.SchoolFinance, "A")
	require.NoError(t, err)
	_, err = sess.Papers().Create(ctx, catalog.SchoolFinance, "B")
	require.NoError(t, err)

	p := New(sess)
	require.Len(t, p.list, 2)

	cmd := feed(p, screentest.Special(tea.KeyEnter))
	push, ok := screentest.Drain(cmd).(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &paperview.PaperScreen{}, push.Screen)

	feed(p, screentest.Key('s'))
	assert.Equal(t, "SOF A", sess.Papers().ActiveID())

	feed(p, screentest.Key('d'))
	assert.Equal(t, modeConfirmDelete, p.mode)
	assert.Contains(t, p.View(100, 30), "Delete SOF A? (y/n)")
	feed(p, screentest.Key('n'))
	assert.Len(t, p.list, 2)

	feed(p, screentest.Key('d'), screentest.Key('y'))
	require.Len(t, p.list, 1)
	assert.Equal(t, "SOF B", p.list[0].ID)
	assert.Empty(t, sess.Papers().ActiveID())
}

func TestResumeReloads(t *testing.T) {
	sess := screentest.NewSession(t, nil)
	p := New(sess)
	_, err := sess.Papers().Create(context.Background(), catalog.SchoolBCA, "X")
	require.NoError(t, err)

	assert.Empty(t, p.list)
	p.Resume()
	assert.Len(t, p.list, 1)
}
