package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"fitcore/internal/verification/models"
)

var (
	// ErrEmptyCode is returned for blank submissions; the lookup is not invoked.
	ErrEmptyCode = errors.New("verification code is required")
	// ErrVerificationInProgress is returned for a submission made while a
	// previous one in the same interaction has not resolved yet.
	ErrVerificationInProgress = errors.New("verification already in progress")
)

// State is the lifecycle of a single user interaction.
type State int

const (
	StateIdle State = iota
	StateVerifying
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateVerifying:
		return "verifying"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Verifier is the lookup an Interaction drives.
type Verifier interface {
	Verify(ctx context.Context, queryCode string) models.Result
}

// Interaction gates submissions for one user: Idle -> Verifying -> Resolved,
// and Resolved -> Verifying on the next submission. At most one lookup runs at
// a time; a submission while Verifying is ignored rather than queued.
type Interaction struct {
	verifier Verifier

	mu     sync.Mutex
	state  State
	last   models.Result
	hasRes bool
}

func NewInteraction(v Verifier) *Interaction {
	return &Interaction{verifier: v}
}

// Submit verifies code unless it is blank or another lookup is running.
// Once started, a lookup always completes and its result becomes Last.
func (i *Interaction) Submit(ctx context.Context, code string) (models.Result, error) {
	if strings.TrimSpace(code) == "" {
		return models.Result{}, ErrEmptyCode
	}

	i.mu.Lock()
	if i.state == StateVerifying {
		i.mu.Unlock()
		return models.Result{}, ErrVerificationInProgress
	}
	i.state = StateVerifying
	i.mu.Unlock()

	result := i.verifier.Verify(ctx, code)

	i.mu.Lock()
	i.state = StateResolved
	i.last = result
	i.hasRes = true
	i.mu.Unlock()

	return result, nil
}

func (i *Interaction) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Last returns the most recent resolved result, if any.
func (i *Interaction) Last() (models.Result, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.last, i.hasRes
}
