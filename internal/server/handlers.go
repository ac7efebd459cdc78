package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rahul/yojana/internal/blocks"
	"github.com/rahul/yojana/internal/observability"
	"github.com/rahul/yojana/internal/session"
)

type promptRequest struct {
	Prompt string `json:"prompt"`
}

type executeRequest struct {
	Prompt string   `json:"prompt"`
	Steps  []string `json:"steps"`
}

type stepsRequest struct {
	Op    string   `json:"op"` // set | update | insert | delete | move
	Index int      `json:"index"`
	To    int      `json:"to"`
	Text  string   `json:"text"`
	Steps []string `json:"steps"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	mode, _, _, _ := observability.GetStatus()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"mode":   strings.ToLower(string(mode)),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	reply, err := s.client.Complete(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.logger.LogLLM("", req.Prompt, reply)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	steps, err := s.planner.GeneratePlan(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.logger.LogPlan("", steps)
	writeJSON(w, http.StatusOK, map[string]any{"steps": steps})
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if len(req.Steps) == 0 {
		writeError(w, http.StatusBadRequest, "steps are required")
		return
	}

	result, err := s.planner.ExecutePlan(r.Context(), req.Prompt, req.Steps)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.logger.LogExecute("", len(req.Steps), len(result))
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"blocks": blocks.Segment(result),
	})
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	observability.SetSessions(s.sessions.Count())
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleSessionClose(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	s.sessions.Close(sess.ID())
	observability.SetSessions(s.sessions.Count())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	var req promptRequest
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	res, err := sess.Submit(r.Context(), req.Prompt)
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	s.logger.LogLLM(sess.ID(), req.Prompt, res.Reply)
	s.logger.LogPlan(sess.ID(), res.Steps)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSessionSteps(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	var req stepsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid step edit")
		return
	}

	var err error
	switch req.Op {
	case "set":
		sess.SetSteps(req.Steps)
	case "update":
		err = sess.UpdateStep(req.Index, req.Text)
	case "insert":
		err = sess.InsertStep(req.Index, req.Text)
	case "delete":
		err = sess.DeleteStep(req.Index)
	case "move":
		err = sess.MoveStep(req.Index, req.To)
	default:
		writeError(w, http.StatusBadRequest, "unknown op: "+req.Op)
		return
	}
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleSessionRun(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	res, err := sess.Run(r.Context())
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	s.logger.LogExecute(sess.ID(), len(sess.Snapshot().Steps), len(res.Result))
	writeJSON(w, http.StatusOK, res)
}

// session resolves the {id} URL parameter, writing a 404 when it is unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	id := chi.URLParam(r, "id")
	sess := s.sessions.Get(id)
	if sess == nil {
		writeError(w, http.StatusNotFound, "unknown session: "+id)
		return nil
	}
	return sess
}

func (s *Server) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrStale):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrNoPlan), errors.Is(err, session.ErrOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}
