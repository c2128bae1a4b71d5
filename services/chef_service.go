package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/th3akash/taste-haven-backend/entity"
)

// ErrRosterMirror means the auth provider accepted the write but the database
// roster did not, so the two stores have diverged.
var ErrRosterMirror = errors.New("auth updated but roster mirror failed")

// ChefAuthProvider manages chef credentials in the identity provider.
type ChefAuthProvider interface {
	// SavePassword updates the password for an existing identity, creating
	// the identity when it does not exist yet.
	SavePassword(ctx context.Context, email, password string) error
	// RemoveUser deletes the identity; an absent identity is not an error.
	RemoveUser(ctx context.Context, email string) error
}

// ChefRoster is the database mirror of the chef identities.
type ChefRoster interface {
	Upsert(ctx context.Context, rec *entity.ChefRecord) error
	// Remove reports whether a roster record was found and deleted.
	Remove(ctx context.Context, email string) (bool, error)
	All(ctx context.Context) (map[string]entity.ChefRecord, error)
}

type ChefService struct {
	Auth   ChefAuthProvider
	Roster ChefRoster
}

func NewChefService(auth ChefAuthProvider, roster ChefRoster) *ChefService {
	return &ChefService{Auth: auth, Roster: roster}
}

// Upsert writes the auth provider first and only mirrors to the roster once
// the credential write succeeded. A mirror failure is reported as
// ErrRosterMirror so the caller knows the stores diverged instead of silently
// drifting apart.
func (s *ChefService) Upsert(ctx context.Context, email, name, password string, enabled bool) error {
	if err := s.Auth.SavePassword(ctx, email, password); err != nil {
		return fmt.Errorf("auth provider: %w", err)
	}
	rec := &entity.ChefRecord{Email: email, Name: name, Enabled: enabled}
	if err := s.Roster.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("%w: %v", ErrRosterMirror, err)
	}
	return nil
}

// Delete removes the chef from both stores, auth provider first. It reports
// whether a roster record was actually removed.
func (s *ChefService) Delete(ctx context.Context, email string) (bool, error) {
	if err := s.Auth.RemoveUser(ctx, email); err != nil {
		return false, fmt.Errorf("auth provider: %w", err)
	}
	return s.Roster.Remove(ctx, email)
}

// List returns the full roster, or an empty map when no chefs exist.
func (s *ChefService) List(ctx context.Context) (map[string]entity.ChefRecord, error) {
	return s.Roster.All(ctx)
}
