// Package session holds the per-client state of the two-pane demo: the plain
// chat log and the editable plan, sharing one prompt.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rahul/yojana/internal/blocks"
	"github.com/rahul/yojana/internal/llm"
	"github.com/rahul/yojana/internal/planner"
)

var (
	// ErrNoPlan means Run was called before a prompt was submitted or after
	// every step was deleted.
	ErrNoPlan = errors.New("nothing to run: no prompt or no steps")
	// ErrStale means the plan was edited while a run was in flight; the
	// late-arriving result is discarded rather than shown as current.
	ErrStale = errors.New("plan changed while the run was in flight")
	// ErrOutOfRange means a step index does not exist.
	ErrOutOfRange = errors.New("step index out of range")
)

// Role of a chat log entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry of the append-only chat log.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is a point-in-time copy of a session, safe to hand to callers.
type State struct {
	ID     string        `json:"id"`
	Prompt string        `json:"prompt"`
	Steps  []string      `json:"steps"`
	HasRun bool          `json:"has_run"`
	Result string        `json:"result,omitempty"`
	Chat   []ChatMessage `json:"chat"`
}

// Session is the workflow state for one client. Every mutation of the prompt
// or the steps advances the revision token and invalidates any displayed
// result; in-flight runs check their snapshot token on completion.
type Session struct {
	mu sync.Mutex

	id      string
	client  llm.Client
	planner *planner.Planner

	prompt    string
	hasPrompt bool
	steps     []string
	hasRun    bool
	result    string
	chat      []ChatMessage
	revision  string
}

func New(id string, client llm.Client, pl *planner.Planner) *Session {
	return &Session{
		id:       id,
		client:   client,
		planner:  pl,
		revision: uuid.NewString(),
	}
}

func (s *Session) ID() string { return s.id }

// SubmitResult pairs the chat pane's reply with the plan pane's steps.
type SubmitResult struct {
	Reply string   `json:"reply"`
	Steps []string `json:"steps"`
}

// Submit records a new prompt and issues the chat call and the plan
// elicitation concurrently, joining both before touching shared state. A
// submit that resolves after the session moved on is discarded.
func (s *Session) Submit(ctx context.Context, prompt string) (SubmitResult, error) {
	s.mu.Lock()
	s.prompt = prompt
	s.hasPrompt = true
	s.invalidateLocked()
	s.steps = nil
	s.chat = append(s.chat, ChatMessage{Role: RoleUser, Content: prompt})
	rev := s.revision
	s.mu.Unlock()

	var (
		reply string
		steps []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reply, err = s.client.Complete(gctx, prompt)
		return err
	})
	g.Go(func() error {
		var err error
		steps, err = s.planner.GeneratePlan(gctx, prompt)
		return err
	})
	if err := g.Wait(); err != nil {
		return SubmitResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revision != rev {
		return SubmitResult{}, ErrStale
	}
	s.chat = append(s.chat, ChatMessage{Role: RoleAssistant, Content: reply})
	s.steps = steps
	return SubmitResult{Reply: reply, Steps: append([]string(nil), steps...)}, nil
}

// SetSteps replaces the whole step list, as when the front-end syncs an
// edited plan in one shot.
func (s *Session) SetSteps(steps []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append([]string(nil), steps...)
	s.invalidateLocked()
}

// UpdateStep rewrites the step at index i.
func (s *Session) UpdateStep(i int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.steps) {
		return ErrOutOfRange
	}
	s.steps[i] = text
	s.invalidateLocked()
	return nil
}

// InsertStep adds a step at index i, shifting the rest down. i == len(steps)
// appends.
func (s *Session) InsertStep(i int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i > len(s.steps) {
		return ErrOutOfRange
	}
	s.steps = append(s.steps, "")
	copy(s.steps[i+1:], s.steps[i:])
	s.steps[i] = text
	s.invalidateLocked()
	return nil
}

// DeleteStep removes the step at index i.
func (s *Session) DeleteStep(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.steps) {
		return ErrOutOfRange
	}
	s.steps = append(s.steps[:i], s.steps[i+1:]...)
	s.invalidateLocked()
	return nil
}

// MoveStep relocates the step at from to position to, preserving the order
// of everything else.
func (s *Session) MoveStep(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if from < 0 || from >= len(s.steps) || to < 0 || to >= len(s.steps) {
		return ErrOutOfRange
	}
	step := s.steps[from]
	s.steps = append(s.steps[:from], s.steps[from+1:]...)
	s.steps = append(s.steps, "")
	copy(s.steps[to+1:], s.steps[to:])
	s.steps[to] = step
	s.invalidateLocked()
	return nil
}

// RunResult pairs the final answer with its inferred display layout.
type RunResult struct {
	Result string         `json:"result"`
	Blocks []blocks.Block `json:"blocks"`
}

// Run executes the current plan against the original prompt. The steps used
// are a frozen snapshot; if the live plan diverges before the call resolves,
// the result is rejected with ErrStale.
func (s *Session) Run(ctx context.Context) (RunResult, error) {
	s.mu.Lock()
	if !s.hasPrompt || len(s.steps) == 0 {
		s.mu.Unlock()
		return RunResult{}, ErrNoPlan
	}
	prompt := s.prompt
	steps := append([]string(nil), s.steps...)
	rev := s.revision
	s.mu.Unlock()

	result, err := s.planner.ExecutePlan(ctx, prompt, steps)
	if err != nil {
		return RunResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revision != rev {
		return RunResult{}, ErrStale
	}
	s.hasRun = true
	s.result = result
	return RunResult{Result: result, Blocks: blocks.Segment(result)}, nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:     s.id,
		Prompt: s.prompt,
		Steps:  append([]string(nil), s.steps...),
		HasRun: s.hasRun,
		Result: s.result,
		Chat:   append([]ChatMessage(nil), s.chat...),
	}
}

// invalidateLocked clears any displayed result and advances the revision
// token. Callers hold s.mu.
func (s *Session) invalidateLocked() {
	s.hasRun = false
	s.result = ""
	s.revision = uuid.NewString()
}
