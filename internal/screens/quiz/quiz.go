package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/akshat/quizzy/internal/api"
	"github.com/akshat/quizzy/internal/config"
	"github.com/akshat/quizzy/internal/feedback"
	sess "github.com/akshat/quizzy/internal/quiz"
	"github.com/akshat/quizzy/internal/screen"
	"github.com/akshat/quizzy/internal/ui/components"
	"github.com/akshat/quizzy/internal/ui/layout"
)

const (
	requestTimeout = 8 * time.Second
	overlayDur     = 2500 * time.Millisecond
)

// service is the slice of the quiz API the screen needs. *api.Client
// satisfies it; tests substitute their own.
type service interface {
	StartSession(ctx context.Context) (string, error)
	NextQuestion(ctx context.Context, sessionID string) (api.NextQuestion, error)
	SubmitAnswer(ctx context.Context, sub api.Submission) (api.Result, error)
}

// QuizScreen orchestrates the session: start → fetch → present →
// submit → feedback → delayed fetch. It owns the session id and score;
// nothing else writes them.
type QuizScreen struct {
	svc    service
	cfg    config.Config
	policy api.Policy

	state    *sess.State
	choice   components.Choice
	feedback feedback.Model
	spin     components.Spinner

	// token identifies this screen instance; seq identifies the current
	// flow within it. Together they invalidate every outstanding timer
	// and request the moment the flow moves on.
	token string
	seq   int

	loading  bool
	terminal bool // an operation exhausted its retries; r restarts
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatsProvider = (*QuizScreen)(nil)

// New creates a QuizScreen with injected dependencies.
func New(svc service, cfg config.Config, player feedback.Player) *QuizScreen {
	return &QuizScreen{
		svc:      svc,
		cfg:      cfg,
		policy:   api.Policy{ShortWait: cfg.RetryShort, LongWait: cfg.RetryLong},
		feedback: feedback.New(player),
		spin:     components.NewSpinner(),
		token:    uuid.New().String(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.beginStart()
}

func (s *QuizScreen) Title() string {
	return "Session"
}

func (s *QuizScreen) Stats() layout.Stats {
	st := layout.Stats{}
	if s.state != nil {
		st.Correct = s.state.Score.Correct
		st.Total = s.state.Score.Total
		if s.state.Current != nil {
			st.Difficulty = s.state.Current.Difficulty
		}
	}
	return st
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.terminal {
		return []layout.KeyHint{
			{Key: "R", Description: "Restart session"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.state != nil && s.state.Mode == sess.ModeSubmit {
		return []layout.KeyHint{
			{Key: "1-9", Description: "Pick"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if !s.current(msg.token, msg.seq) {
			return s, nil
		}
		return s.handleSessionStarted(msg)

	case questionMsg:
		if !s.current(msg.token, msg.seq) {
			return s, nil
		}
		return s.handleQuestion(msg)

	case resultMsg:
		if !s.current(msg.token, msg.seq) {
			return s, nil
		}
		return s.handleResult(msg)

	case attemptFailedMsg:
		if !s.current(msg.token, msg.seq) {
			return s, nil
		}
		return s.handleAttemptFailed(msg)

	case retryMsg:
		if !s.current(msg.token, msg.seq) {
			return s, nil
		}
		s.loading = true
		return s, tea.Batch(s.spin.Tick(), s.attemptCmd(msg.op, msg.attempt))

	case advanceMsg:
		if !s.current(msg.token, msg.seq) {
			return s, nil
		}
		return s, s.beginLoadNext()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.feedback, cmd = s.feedback.Update(msg)
	cmds = append(cmds, cmd)
	if s.loading {
		s.spin, cmd = s.spin.Update(msg)
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

// current reports whether a message belongs to this screen instance
// and its live flow.
func (s *QuizScreen) current(token string, seq int) bool {
	return token == s.token && seq == s.seq
}

// beginStart kicks off a fresh session: new state, new flow sequence.
func (s *QuizScreen) beginStart() tea.Cmd {
	s.seq++
	s.state = nil
	s.choice = components.Choice{}
	s.terminal = false
	s.loading = true
	s.feedback.SetStatus("Contacting quiz service...")
	return tea.Batch(s.spin.Tick(), s.attemptCmd(opStart, 1))
}

// beginLoadNext requests the next question for the current session.
func (s *QuizScreen) beginLoadNext() tea.Cmd {
	s.seq++
	s.loading = true
	s.feedback.SetStatus("Fetching next question...")
	return tea.Batch(s.spin.Tick(), s.attemptCmd(opNext, 1))
}

// attemptCmd issues one attempt of op. The closure snapshots everything
// it needs; it must not touch the screen from the command goroutine.
func (s *QuizScreen) attemptCmd(op fetchOp, attempt int) tea.Cmd {
	svc := s.svc
	token, seq := s.token, s.seq
	var sessionID, questionID, optionID string
	if s.state != nil {
		sessionID = s.state.SessionID
		if s.state.Current != nil {
			questionID = s.state.Current.ID
		}
		optionID = s.state.SelectedOptionID
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		switch op {
		case opStart:
			id, err := svc.StartSession(ctx)
			if err != nil {
				return attemptFailedMsg{token: token, seq: seq, op: op, attempt: attempt, err: err}
			}
			return sessionStartedMsg{token: token, seq: seq, id: id}

		case opNext:
			payload, err := svc.NextQuestion(ctx, sessionID)
			if err != nil {
				return attemptFailedMsg{token: token, seq: seq, op: op, attempt: attempt, err: err}
			}
			return questionMsg{token: token, seq: seq, payload: payload}

		default:
			result, err := svc.SubmitAnswer(ctx, api.Submission{
				SessionID:        sessionID,
				QuestionID:       questionID,
				SelectedOptionID: optionID,
			})
			if err != nil {
				return attemptFailedMsg{token: token, seq: seq, op: op, attempt: attempt, err: err}
			}
			return resultMsg{token: token, seq: seq, result: result}
		}
	}
}

func (s *QuizScreen) handleSessionStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	s.state = sess.NewState(msg.id)
	return s, s.beginLoadNext()
}

func (s *QuizScreen) handleQuestion(msg questionMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	s.state.SetQuestion(msg.payload.Question)
	s.choice = components.NewChoice(msg.payload.Question)
	s.feedback.SetStatus("Pick an answer")

	// The signal is presentation only; later requests never depend on it.
	switch msg.payload.Signal {
	case api.SignalIncrease:
		s.feedback.Play(feedback.CueIncrease)
		return s, s.feedback.ShowOverlay("Too easy for you — difficulty going up!", feedback.VariantInfo, overlayDur)
	case api.SignalDecrease:
		s.feedback.Play(feedback.CueDecrease)
		return s, s.feedback.ShowOverlay("Easing off — difficulty going down.", feedback.VariantInfo, overlayDur)
	case api.SignalNone:
	}
	return s, nil
}

func (s *QuizScreen) handleResult(msg resultMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	r := msg.result
	s.state.RecordResult(r.Correct)
	if r.Difficulty != "" && s.state.Current != nil {
		s.state.Current.Difficulty = r.Difficulty
	}
	s.choice.Resolve(s.state.SelectedOptionID, r.Correct, r.CorrectAnswerText)

	var cmds []tea.Cmd
	if r.Correct {
		s.feedback.Play(feedback.CueCorrect)
		cmds = append(cmds, s.feedback.ShowOverlay("Correct!", feedback.VariantGood, overlayDur))
	} else {
		s.feedback.Play(feedback.CueWrong)
		cmds = append(cmds, s.feedback.ShowOverlay("Not quite — it was “"+r.CorrectAnswerText+"”", feedback.VariantBad, overlayDur))
	}

	// The long delay covers the service recomputing thresholds after an
	// evaluation window closes.
	delay := s.advanceDelay(r.WindowCompleted)
	if r.WindowCompleted {
		cmds = append(cmds, s.feedback.SetStatusCountdown("Recalibrating difficulty...", delay))
	} else {
		cmds = append(cmds, s.feedback.SetStatusCountdown("Next question coming up", delay))
	}

	token, seq := s.token, s.seq
	cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceMsg{token: token, seq: seq}
	}))
	return s, tea.Batch(cmds...)
}

// advanceDelay picks the pause before the next fetch.
func (s *QuizScreen) advanceDelay(windowCompleted bool) time.Duration {
	if windowCompleted {
		return s.cfg.AdvanceLong
	}
	return s.cfg.AdvanceShort
}

func (s *QuizScreen) handleAttemptFailed(msg attemptFailedMsg) (screen.Screen, tea.Cmd) {
	wait, ok := s.policy.Wait(msg.attempt)
	if !ok {
		// Retry budget exhausted: halt this flow, keep the session alive.
		s.loading = false
		s.terminal = true
		s.feedback.SetStatus(s.policy.Status(msg.op.label(), msg.attempt) + " — press r to restart")
		return s, nil
	}

	s.loading = false
	countdown := s.feedback.SetStatusCountdown(s.policy.Status(msg.op.label(), msg.attempt), wait)
	token, seq := s.token, s.seq
	retry := tea.Tick(wait, func(time.Time) tea.Msg {
		return retryMsg{token: token, seq: seq, op: msg.op, attempt: msg.attempt + 1}
	})
	return s, tea.Batch(countdown, retry)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.terminal {
		if key == "r" || key == "R" {
			return s, s.beginStart()
		}
		return s, nil
	}

	if s.state == nil || s.state.Current == nil {
		return s, nil
	}

	// Input is rejected, never queued, outside submit mode.
	if s.state.Mode != sess.ModeSubmit {
		return s, nil
	}

	switch key {
	case "up", "k":
		if id, ok := s.choice.MoveUp(); ok {
			s.state.Select(id)
		}
		return s, nil
	case "down", "j":
		if id, ok := s.choice.MoveDown(); ok {
			s.state.Select(id)
		}
		return s, nil
	case "enter":
		return s, s.submit()
	}

	// Digit shortcuts select; they do not submit.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if id, ok := s.choice.Select(int(key[0] - '1')); ok {
			s.state.Select(id)
		}
	}
	return s, nil
}

// submit posts the current selection. Without a valid selection in
// submit mode this is a silent no-op.
func (s *QuizScreen) submit() tea.Cmd {
	if s.state == nil {
		return nil
	}
	if _, ok := s.state.BeginSubmit(); !ok {
		return nil
	}
	s.choice.Lock()
	s.seq++
	s.loading = true
	s.feedback.SetStatus("Checking your answer...")
	return tea.Batch(s.spin.Tick(), s.attemptCmd(opSubmit, 1))
}
