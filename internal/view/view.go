package view

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/ytget/flashcards/internal/backend"
	"github.com/ytget/flashcards/internal/model"
)

// Snapshot is an immutable copy of the view state
type Snapshot struct {
	Status  model.RequestStatus
	Cards   []model.Flashcard
	Error   string
	Flipped map[int]bool
	// RequestID is the token of the request the state currently reflects:
	// the latest submission while Loading, otherwise the last one to resolve.
	// Empty while Idle.
	RequestID string
	SourceURL string
}

// CardCount returns the number of cards currently held
func (s Snapshot) CardCount() int {
	return len(s.Cards)
}

// IsFlipped reports whether card index shows its back face
func (s Snapshot) IsFlipped(index int) bool {
	return s.Flipped[index]
}

// CanExport reports whether the export actions should be offered
func (s Snapshot) CanExport() bool {
	return s.Status == model.RequestStatusSuccess && len(s.Cards) > 0
}

// FlashcardView owns the form lifecycle, the current card sequence and the
// flip flags
type FlashcardView struct {
	mu        sync.Mutex
	generator backend.Generator
	ctx       context.Context

	status    model.RequestStatus
	cards     []model.Flashcard
	errMsg    string
	flipped   map[int]bool
	latest    *model.GenerationRequest
	current   *model.GenerationRequest
	listeners []func(Snapshot)
}

// New creates an idle view backed by generator
func New(generator backend.Generator) *FlashcardView {
	return NewWithContext(context.Background(), generator)
}

// NewWithContext is New with a parent context for every outbound request
func NewWithContext(ctx context.Context, generator backend.Generator) *FlashcardView {
	return &FlashcardView{
		generator: generator,
		ctx:       ctx,
		status:    model.RequestStatusIdle,
		cards:     []model.Flashcard{},
		flipped:   make(map[int]bool),
	}
}

// OnChange registers fn to be called after every state transition. Callbacks
// run outside the view lock, on whichever goroutine caused the transition.
func (v *FlashcardView) OnChange(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	v.mu.Lock()
	v.listeners = append(v.listeners, fn)
	v.mu.Unlock()
}

// Snapshot returns a copy of the current state
func (v *FlashcardView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *FlashcardView) snapshotLocked() Snapshot {
	flipped := make(map[int]bool, len(v.flipped))
	for k, val := range v.flipped {
		flipped[k] = val
	}
	s := Snapshot{
		Status:  v.status,
		Cards:   model.CloneCards(v.cards),
		Error:   v.errMsg,
		Flipped: flipped,
	}
	if v.current != nil {
		s.RequestID = v.current.ID
		s.SourceURL = v.current.URL
	}
	return s
}

// Submit moves the view to Loading and starts a generation request for
// sourceURL. The transition happens before Submit returns; the outcome is
// applied later from the request goroutine. Blank input is rejected with
// ErrEmptyURL and leaves the state unchanged.
//
// Submitting while another request is in flight is allowed and nothing is
// serialized: every request applies its outcome when it resolves, so the
// last one to resolve is what the state shows. A request that resolves after
// a newer one was issued is marked Stale for the logs.
func (v *FlashcardView) Submit(sourceURL string) (*model.GenerationRequest, error) {
	trimmed := strings.TrimSpace(sourceURL)
	if trimmed == "" {
		return nil, ErrEmptyURL
	}

	req := model.NewGenerationRequest(trimmed)

	v.mu.Lock()
	v.latest = req
	v.current = req
	v.status = model.RequestStatusLoading
	v.errMsg = ""
	v.cards = []model.Flashcard{}
	v.flipped = make(map[int]bool)
	snap := v.snapshotLocked()
	listeners := v.listenersLocked()
	v.mu.Unlock()

	log.Printf("Submitting generation request: id=%s url=%s", req.ID, trimmed)
	notify(listeners, snap)

	go v.run(req)

	return req, nil
}

// run performs the outbound call and applies its outcome
func (v *FlashcardView) run(req *model.GenerationRequest) {
	cards, err := v.generator.Generate(v.ctx, req.URL)

	v.mu.Lock()
	if v.latest != req {
		req.Stale = true
		log.Printf("Applying result of superseded request: id=%s latest=%s", req.ID, v.latest.ID)
	}
	v.current = req

	if err != nil {
		log.Printf("Generation request failed: id=%s url=%s err=%v", req.ID, req.URL, err)
		v.status = model.RequestStatusError
		v.errMsg = RequestFailureMessage
		v.cards = []model.Flashcard{}
	} else {
		v.status = model.RequestStatusSuccess
		v.errMsg = ""
		v.cards = model.CloneCards(cards)
		log.Printf("Generation request succeeded: id=%s cards=%d", req.ID, len(v.cards))
	}
	v.flipped = make(map[int]bool)
	snap := v.snapshotLocked()
	listeners := v.listenersLocked()
	v.mu.Unlock()

	notify(listeners, snap)
	req.Resolve(cards, err)
}

// ToggleFlip inverts the reveal flag of card index and returns the new value
func (v *FlashcardView) ToggleFlip(index int) bool {
	v.mu.Lock()
	v.flipped[index] = !v.flipped[index]
	flipped := v.flipped[index]
	snap := v.snapshotLocked()
	listeners := v.listenersLocked()
	v.mu.Unlock()

	notify(listeners, snap)
	return flipped
}

// IsFlipped reports whether card index shows its back face
func (v *FlashcardView) IsFlipped(index int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.flipped[index]
}

func (v *FlashcardView) listenersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), len(v.listeners))
	copy(out, v.listeners)
	return out
}

func notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
