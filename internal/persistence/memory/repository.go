// Package memory provides the in-memory repository backing the activities service.
// State lives for the process lifetime; there is no persistence.
package memory

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Repository holds every activity behind a single mutex. The signup
// read-modify-write runs under one exclusive lock, so two concurrent signups
// with the same email cannot both observe "not present" and both append.
type Repository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewRepository constructs a Repository populated with the given activities.
func NewRepository(seed []domain.Activity) *Repository {
	r := &Repository{activities: make(map[string]*domain.Activity, len(seed))}
	for _, activity := range seed {
		clone := activity.Clone()
		r.activities[activity.Name] = &clone
		observability.SetRosterSize(activity.Name, len(activity.Participants))
	}
	return r
}

// List returns a deep-copied snapshot of the whole store.
func (r *Repository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get returns the activity for an exact, case-sensitive name match.
func (r *Repository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	clone := activity.Clone()
	return &clone, nil
}

// AddParticipant appends email to the named activity's roster. Capacity is not
// enforced: rosters may grow past MaxParticipants.
func (r *Repository) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	for _, existing := range activity.Participants {
		if existing == email {
			return nil, domain.ErrAlreadyRegistered
		}
	}
	activity.Participants = append(activity.Participants, email)
	observability.RecordSignup(name, len(activity.Participants))

	clone := activity.Clone()
	return &clone, nil
}
