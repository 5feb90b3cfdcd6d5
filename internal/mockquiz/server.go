// Package mockquiz is an in-process stand-in for the remote quiz
// service. It implements the same wire contract from a canned question
// bank, with the window-based difficulty adjustment the real service
// performs: after every full answer window the difficulty steps up when
// nearly everything was right, down when nearly everything was wrong,
// and the matching popup signal rides along with the next question.
package mockquiz

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// answerWindow is how many graded answers close one evaluation window.
const answerWindow = 5

const (
	signalIncrease = "too_easy_increasing_difficulty"
	signalDecrease = "too_hard_decreasing_difficulty"
)

type session struct {
	difficulty int // index into difficulties
	cursor     int // next bank question per current difficulty
	served     map[string]servedQuestion
	results    []bool // current window
	pending    string // popup to attach to the next question response
}

type servedQuestion struct {
	bank            bankQuestion
	correctOptionID string
}

// Server holds all practice sessions. Safe for concurrent handlers.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// New creates an empty practice service.
func New() *Server {
	return &Server{sessions: make(map[string]*session)}
}

// Handler returns the http.Handler serving the quiz wire contract.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/session/start", s.handleStart)
	mux.HandleFunc("GET /api/quiz/next", s.handleNext)
	mux.HandleFunc("POST /api/quiz/submit", s.handleSubmit)
	return mux
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = &session{
		difficulty: 1, // start at medium, like the real service
		served:     make(map[string]servedQuestion),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"session_id": id})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "session_not_found"})
		return
	}

	difficulty := difficulties[sess.difficulty]
	pool := bank[difficulty]
	bq := pool[sess.cursor%len(pool)]
	sess.cursor++

	qid := uuid.New().String()
	options := make([]map[string]string, 0, len(bq.Options))
	var correctOptionID string
	for i, text := range bq.Options {
		oid := fmt.Sprintf("%s-o%d", qid, i+1)
		if i == bq.Correct {
			correctOptionID = oid
		}
		options = append(options, map[string]string{"id": oid, "text": text})
	}
	sess.served[qid] = servedQuestion{bank: bq, correctOptionID: correctOptionID}

	popup := sess.pending
	sess.pending = ""

	writeJSON(w, http.StatusOK, map[string]any{
		"question": map[string]any{
			"id":         qid,
			"text":       bq.Text,
			"options":    options,
			"difficulty": difficulty,
		},
		"show_difficulty_change": popup,
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID        string `json:"session_id"`
		QuestionID       string `json:"question_id"`
		SelectedOptionID string `json:"selected_option_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "bad_request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.SessionID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "session_not_found"})
		return
	}

	served, ok := sess.served[req.QuestionID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "question_not_found"})
		return
	}
	delete(sess.served, req.QuestionID)

	correct := req.SelectedOptionID == served.correctOptionID
	sess.results = append(sess.results, correct)

	windowCompleted := len(sess.results) == answerWindow
	if windowCompleted {
		s.closeWindow(sess)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"correct":             correct,
		"correct_answer_text": served.bank.Options[served.bank.Correct],
		"window_completed":    windowCompleted,
		"difficulty":          difficulties[sess.difficulty],
	})
}

// closeWindow recomputes difficulty from the finished window: step up
// with at most one miss, step down with at most one hit, otherwise stay.
func (s *Server) closeWindow(sess *session) {
	hits := 0
	for _, r := range sess.results {
		if r {
			hits++
		}
	}
	sess.results = nil

	switch {
	case hits >= answerWindow-1:
		if sess.difficulty < len(difficulties)-1 {
			sess.difficulty++
			sess.cursor = 0
			sess.pending = signalIncrease
		}
	case hits <= 1:
		if sess.difficulty > 0 {
			sess.difficulty--
			sess.cursor = 0
			sess.pending = signalDecrease
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
