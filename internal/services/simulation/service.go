// Package simulation is the application service around the simulation
// engine. It owns the current state, runs every user operation through the
// reducer and hands successful results to the event publisher.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/sprintsim/internal/database"
	"github.com/thenoetrevino/sprintsim/internal/events"
	"github.com/thenoetrevino/sprintsim/internal/models"
	engine "github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

const publishRetries = 3

// Service defines all simulation operations
type Service interface {
	// Read operations
	Snapshot() engine.State
	Resolve(ref string) (types.FeatureID, error)

	// Confirm asks the confirmer carried by ctx, or the service's own
	Confirm(ctx context.Context, prompt string) (bool, error)

	// Persistence
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Reset(ctx context.Context) error

	// Product backlog
	SetDraft(ctx context.Context, text string) error
	CreateFeatures(ctx context.Context, text string) ([]models.Feature, error)
	UpdateScore(ctx context.Context, id types.FeatureID, d models.Dimension, value int) error
	DeleteFeature(ctx context.Context, id types.FeatureID) (bool, error)

	// Editing session
	StartEdit(ctx context.Context, id types.FeatureID) error
	CommitEdit(ctx context.Context, name string) error
	CancelEdit(ctx context.Context) error
	RenameFeature(ctx context.Context, id types.FeatureID, name string) error

	// Stages
	Advance(ctx context.Context) (models.Stage, error)

	// Sprint backlog and board
	AddToSprint(ctx context.Context, id types.FeatureID) error
	RemoveFromSprint(ctx context.Context, id types.FeatureID) error
	MoveFeature(ctx context.Context, req MoveRequest) error
}

// MoveRequest describes a board move. FromIndex is advisory: when it does
// not point at ID the feature is located by id.
type MoveRequest struct {
	ID        types.FeatureID
	To        models.Status
	ToIndex   int
	From      *models.Status // nil means use the feature's current column
	FromIndex *int
}

// Option configures the service
type Option func(*service)

// WithReducer replaces the engine reducer (tests use deterministic ids)
func WithReducer(r *engine.Reducer) Option {
	return func(s *service) {
		s.reducer = r
	}
}

// WithInitialState seeds the service with a state instead of an empty one
func WithInitialState(st engine.State) Option {
	return func(s *service) {
		s.state = st
	}
}

// service implements Service interface
type service struct {
	mu          sync.Mutex
	state       engine.State
	reducer     *engine.Reducer
	store       database.StateStore
	eventClient events.EventPublisher
	confirmer   Confirmer
}

// NewService creates a new simulation service. store, eventClient and
// confirmer may each be nil.
func NewService(store database.StateStore, eventClient events.EventPublisher, confirmer Confirmer, opts ...Option) Service {
	s := &service{
		state:       engine.New(),
		reducer:     engine.NewReducer(),
		store:       store,
		eventClient: eventClient,
		confirmer:   confirmer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// Read operations
// ============================================================================

// Snapshot returns the current state. The value shares nothing the service
// will later mutate, since the reducer never modifies its input.
func (s *service) Snapshot() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Resolve turns a user supplied reference into a feature id. It accepts a
// full id, a unique id prefix or a case-insensitive exact name.
func (s *service) Resolve(ref string) (types.FeatureID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrEmptyFeatureRef
	}
	st := s.Snapshot()

	if _, ok := st.Features[types.FeatureID(ref)]; ok {
		return types.FeatureID(ref), nil
	}

	var matches []types.FeatureID
	for _, id := range st.Backlog {
		if strings.HasPrefix(id.String(), ref) {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		for _, id := range st.Backlog {
			if strings.EqualFold(st.Features[id].Name, ref) {
				matches = append(matches, id)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrFeatureNotFound, ref)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("%w: %q", ErrAmbiguousFeature, ref)
}

func (s *service) Confirm(ctx context.Context, prompt string) (bool, error) {
	confirmer := confirmerFrom(ctx, s.confirmer)
	if confirmer == nil {
		return false, ErrConfirmationRequired
	}
	return confirmer.Confirm(ctx, prompt)
}

// ============================================================================
// Persistence
// ============================================================================

// Load replaces the current state with the stored snapshot
func (s *service) Load(ctx context.Context) error {
	if s.store == nil {
		return ErrNoStore
	}
	st, err := s.store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load simulation: %w", err)
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// Save writes the current state synchronously
func (s *service) Save(ctx context.Context) error {
	if s.store == nil {
		return ErrNoStore
	}
	if err := s.store.SaveState(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save simulation: %w", err)
	}
	return nil
}

// Reset discards every feature and returns to the first stage
func (s *service) Reset(ctx context.Context) error {
	if s.store != nil {
		if err := s.store.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset simulation: %w", err)
		}
	}

	s.mu.Lock()
	s.state = engine.New()
	fresh := s.state
	s.mu.Unlock()

	// queued snapshots must not resurrect the old simulation
	if s.eventClient != nil {
		event := events.Event{Type: events.EventReset, Stage: fresh.Stage, State: fresh}
		if err := events.PublishWithRetry(s.eventClient, event, publishRetries); err != nil {
			slog.Warn("failed to publish event", "event_type", events.EventReset, "error", err)
		}
	}

	slog.Info("simulation reset")
	return nil
}

// ============================================================================
// Product backlog
// ============================================================================

func (s *service) SetDraft(ctx context.Context, text string) error {
	_, err := s.apply(ctx, engine.SetDraft{Text: text}, "")
	return err
}

// CreateFeatures creates one feature per non-blank line and returns them in
// creation order
func (s *service) CreateFeatures(ctx context.Context, text string) ([]models.Feature, error) {
	before := len(s.Snapshot().Backlog)

	next, err := s.apply(ctx, engine.CreateBatch{Text: text}, "")
	if err != nil {
		return nil, err
	}

	created := make([]models.Feature, 0, len(next.Backlog)-before)
	for _, id := range next.Backlog[before:] {
		created = append(created, next.Features[id])
	}
	return created, nil
}

func (s *service) UpdateScore(ctx context.Context, id types.FeatureID, d models.Dimension, value int) error {
	if err := s.requireFeature(id); err != nil {
		return err
	}
	if _, err := s.apply(ctx, engine.UpdateField{ID: id, Dimension: d, Value: value}, id); err != nil {
		return err
	}
	s.writeFeature(ctx, id)
	return nil
}

// DeleteFeature removes a feature after the confirmer approves. Declining
// returns false with no error and leaves the state untouched.
func (s *service) DeleteFeature(ctx context.Context, id types.FeatureID) (bool, error) {
	f, ok := s.Snapshot().Feature(id)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrFeatureNotFound, id)
	}
	confirmed, err := s.Confirm(ctx, fmt.Sprintf("Delete feature %q?", f.Name))
	if err != nil {
		return false, fmt.Errorf("failed to confirm deletion: %w", err)
	}
	if !confirmed {
		slog.Debug("feature deletion declined", "feature_id", id)
		return false, nil
	}

	if _, err := s.apply(ctx, engine.RemoveFeature{ID: id}, id); err != nil {
		return false, err
	}
	return true, nil
}

// ============================================================================
// Editing session
// ============================================================================

func (s *service) StartEdit(ctx context.Context, id types.FeatureID) error {
	if err := s.requireFeature(id); err != nil {
		return err
	}
	_, err := s.apply(ctx, engine.OpenEdit{ID: id}, id)
	return err
}

func (s *service) CommitEdit(ctx context.Context, name string) error {
	var id types.FeatureID
	if edit := s.Snapshot().Edit; edit != nil {
		id = edit.FeatureID
	}
	if _, err := s.apply(ctx, engine.CommitEdit{NewName: name}, id); err != nil {
		return err
	}
	s.writeFeature(ctx, id)
	return nil
}

func (s *service) CancelEdit(ctx context.Context) error {
	_, err := s.apply(ctx, engine.CancelEdit{}, "")
	return err
}

// RenameFeature opens and commits an editing session in one step. On a
// rejected name the session is cancelled so no buffer is left open.
func (s *service) RenameFeature(ctx context.Context, id types.FeatureID, name string) error {
	if err := s.StartEdit(ctx, id); err != nil {
		return err
	}
	if err := s.CommitEdit(ctx, name); err != nil {
		if cancelErr := s.CancelEdit(ctx); cancelErr != nil {
			slog.Error("failed to cancel edit session", "error", cancelErr)
		}
		return err
	}
	return nil
}

// ============================================================================
// Stages
// ============================================================================

// Advance moves to the next stage and returns it
func (s *service) Advance(ctx context.Context) (models.Stage, error) {
	next, err := s.apply(ctx, engine.Advance{}, "")
	if err != nil {
		return next.Stage, err
	}
	slog.Info("stage advanced", "stage", next.Stage)
	return next.Stage, nil
}

// ============================================================================
// Sprint backlog and board
// ============================================================================

func (s *service) AddToSprint(ctx context.Context, id types.FeatureID) error {
	if err := s.requireFeature(id); err != nil {
		return err
	}
	_, err := s.apply(ctx, engine.AddToSprint{ID: id}, id)
	return err
}

func (s *service) RemoveFromSprint(ctx context.Context, id types.FeatureID) error {
	_, err := s.apply(ctx, engine.RemoveFromSprint{ID: id}, id)
	return err
}

// MoveFeature relocates a sprint entry on the board
func (s *service) MoveFeature(ctx context.Context, req MoveRequest) error {
	st := s.Snapshot()
	status, index, ok := engine.Locate(st, req.ID)
	if !ok {
		if _, exists := st.Features[req.ID]; !exists {
			return fmt.Errorf("%w: %s", ErrFeatureNotFound, req.ID)
		}
		// outside execution the reducer reports the stage lock instead
		if st.Stage == models.StageSprintExecution {
			return fmt.Errorf("%w: %s is not on the board", ErrFeatureNotFound, req.ID)
		}
	}
	if req.From != nil {
		status = *req.From
	}
	if req.FromIndex != nil {
		index = *req.FromIndex
	}

	_, err := s.apply(ctx, engine.Move{
		ID:        req.ID,
		From:      status,
		FromIndex: index,
		To:        req.To,
		ToIndex:   req.ToIndex,
	}, req.ID)
	return err
}

// ============================================================================
// Internals
// ============================================================================

func (s *service) requireFeature(id types.FeatureID) error {
	if _, ok := s.Snapshot().Feature(id); !ok {
		return fmt.Errorf("%w: %s", ErrFeatureNotFound, id)
	}
	return nil
}

// writeFeature stores the fields of one feature right away. The in-memory
// state is already updated, so a failed write is only logged.
func (s *service) writeFeature(ctx context.Context, id types.FeatureID) {
	if s.store == nil || id == "" {
		return
	}
	f, ok := s.Snapshot().Feature(id)
	if !ok {
		return
	}
	if err := s.store.SaveFeature(ctx, f); err != nil {
		slog.Warn("failed to write feature", "feature_id", id, "error", err)
	}
}

// apply runs a through the reducer and stores the result. The reducer
// returns an unchanged state on error, or one that only records a
// validation message, so the result is always safe to keep.
func (s *service) apply(_ context.Context, a engine.Action, id types.FeatureID) (engine.State, error) {
	s.mu.Lock()
	next, err := s.reducer.Reduce(s.state, a)
	s.state = next
	s.mu.Unlock()

	if err != nil {
		slog.Debug("action rejected", "action", a.Name(), "error", err)
		return next, err
	}

	s.publish(a, id, next)
	return next, nil
}

// publish hands the new state to the event client. Failures are logged and
// never undo the change.
func (s *service) publish(a engine.Action, id types.FeatureID, st engine.State) {
	if s.eventClient == nil {
		return
	}
	eventType, ok := events.TypeFor(a)
	if !ok {
		return
	}

	event := events.Event{
		Type:      eventType,
		FeatureID: id,
		Stage:     st.Stage,
		State:     st,
	}
	if err := events.PublishWithRetry(s.eventClient, event, publishRetries); err != nil {
		slog.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}
