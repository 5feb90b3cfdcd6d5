package mockquiz

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshat/quizzy/internal/api"
)

// answer plays one question: fetch it, then submit either the correct
// option or a wrong one.
func answer(t *testing.T, c *api.Client, sessionID string, correctly bool) api.Result {
	t.Helper()
	ctx := context.Background()

	next, err := c.NextQuestion(ctx, sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, next.Question.Options)

	// Option ids are minted per serve, so locate the right answer by
	// matching the served text back to the bank entry.
	q := next.Question
	pool := bank[q.Difficulty]
	var want string
	for _, bq := range pool {
		if bq.Text == q.Text {
			want = bq.Options[bq.Correct]
			break
		}
	}
	require.NotEmpty(t, want, "served question not found in bank")

	var pick api.Option
	for _, o := range q.Options {
		if (o.Text == want) == correctly {
			pick = o
			break
		}
	}
	require.NotEmpty(t, pick.ID)

	result, err := c.SubmitAnswer(ctx, api.Submission{
		SessionID:        sessionID,
		QuestionID:       q.ID,
		SelectedOptionID: pick.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, correctly, result.Correct)
	return result
}

func newTestClient(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(New().Handler())
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL)
}

func TestStartIssuesDistinctSessions(t *testing.T) {
	c := newTestClient(t)

	a, err := c.StartSession(context.Background())
	require.NoError(t, err)
	b, err := c.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestUnknownSessionIs404(t *testing.T) {
	c := newTestClient(t)

	_, err := c.NextQuestion(context.Background(), "nope")
	require.Error(t, err)

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.StatusCode)
}

func TestWindowCompletionAndIncrease(t *testing.T) {
	c := newTestClient(t)
	sid, err := c.StartSession(context.Background())
	require.NoError(t, err)

	// Four answers leave the window open.
	for i := 0; i < answerWindow-1; i++ {
		result := answer(t, c, sid, true)
		assert.False(t, result.WindowCompleted, "window closed early at answer %d", i+1)
		assert.Equal(t, "medium", result.Difficulty)
	}

	// The fifth closes it; a clean sweep steps difficulty up.
	result := answer(t, c, sid, true)
	assert.True(t, result.WindowCompleted)
	assert.Equal(t, "hard", result.Difficulty)

	// The popup signal rides along with the next question, exactly once.
	next, err := c.NextQuestion(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, api.SignalIncrease, next.Signal)
	assert.Equal(t, "hard", next.Question.Difficulty)

	// Consume the pending submission so the following fetch is clean.
	_, err = c.SubmitAnswer(context.Background(), api.Submission{
		SessionID: sid, QuestionID: next.Question.ID,
		SelectedOptionID: next.Question.Options[0].ID,
	})
	require.NoError(t, err)

	after, err := c.NextQuestion(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, api.SignalNone, after.Signal, "signal must not repeat")
}

func TestWindowDecrease(t *testing.T) {
	c := newTestClient(t)
	sid, err := c.StartSession(context.Background())
	require.NoError(t, err)

	var last api.Result
	for i := 0; i < answerWindow; i++ {
		last = answer(t, c, sid, false)
	}
	require.True(t, last.WindowCompleted)
	assert.Equal(t, "easy", last.Difficulty)

	next, err := c.NextQuestion(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, api.SignalDecrease, next.Signal)
}

func TestMixedWindowKeepsDifficulty(t *testing.T) {
	c := newTestClient(t)
	sid, err := c.StartSession(context.Background())
	require.NoError(t, err)

	outcomes := []bool{true, false, true, false, true}
	var last api.Result
	for _, ok := range outcomes {
		last = answer(t, c, sid, ok)
	}
	require.True(t, last.WindowCompleted)
	assert.Equal(t, "medium", last.Difficulty)

	next, err := c.NextQuestion(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, api.SignalNone, next.Signal)
}

func TestGradingReportsCorrectAnswerText(t *testing.T) {
	c := newTestClient(t)
	sid, err := c.StartSession(context.Background())
	require.NoError(t, err)

	result := answer(t, c, sid, false)
	assert.False(t, result.Correct)
	assert.NotEmpty(t, result.CorrectAnswerText)
}
