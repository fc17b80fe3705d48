package domain

import (
	"context"
	"errors"

	"example.com/activities/internal/observability"
)

// ActivityRepository captures roster storage operations.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// Service orchestrates activity workflows.
type Service struct {
	repo ActivityRepository
}

// NewService constructs a Service.
func NewService(repo ActivityRepository) *Service {
	return &Service{repo: repo}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity fetches a single activity by exact name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	return s.repo.Get(ctx, name)
}

// SignUp appends email to the named activity's roster. The repository performs
// the lookup, duplicate check, and append atomically, so two concurrent
// signups with the same email cannot both succeed.
func (s *Service) SignUp(ctx context.Context, name, email string) (*Activity, error) {
	activity, err := s.repo.AddParticipant(ctx, name, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrActivityNotFound):
			observability.RecordSignupRejected("not_found")
		case errors.Is(err, ErrAlreadyRegistered):
			observability.RecordSignupRejected("already_registered")
		}
		return nil, err
	}
	return activity, nil
}
