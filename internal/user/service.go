package user

import (
	"context"
	"fmt"
	"log"

	"github.com/pkg/errors"
)

// Artifact file names, relative to the configured artifact directory.
const (
	MissingEmailsArtifact     = "missing_emails.json"
	EmailUpdateErrorsArtifact = "email_update_errors.json"
)

// Upstream is the slice of the external user API the service needs.
type Upstream interface {
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUserEmail(ctx context.Context, id int64, email string) error
}

// Sink persists a named result artifact for later inspection.
type Sink interface {
	Persist(name string, v any) error
}

type Service interface {
	MissingEmailUsers(ctx context.Context) ([]User, error)
	AssignMissingEmails(ctx context.Context) (*UpdateResult, error)
}

type service struct {
	upstream  Upstream
	artifacts Sink
}

func NewService(upstream Upstream, artifacts Sink) Service {
	return &service{upstream: upstream, artifacts: artifacts}
}

// MissingEmailUsers returns every user in the current snapshot without an
// address, in snapshot order, and records the list in the missing-emails
// artifact.
func (s *service) MissingEmailUsers(ctx context.Context) ([]User, error) {
	users, err := s.upstream.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch users")
	}

	missing := make([]User, 0)
	for _, u := range users {
		if !u.HasEmail() {
			missing = append(missing, u)
		}
	}

	s.persist(MissingEmailsArtifact, missing)

	return missing, nil
}

// AssignMissingEmails computes and pushes an address for every user without
// one. Per-user failures are collected into the result instead of aborting
// the batch; only the initial snapshot fetch can fail the whole call.
//
// Users must be processed strictly in snapshot order: the uniqueness map is
// extended as candidates are claimed, and the order decides who wins a tie.
func (s *service) AssignMissingEmails(ctx context.Context) (*UpdateResult, error) {
	users, err := s.upstream.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch users")
	}

	// email -> id of the user holding it, seeded from the snapshot.
	owners := make(map[string]int64, len(users))
	for _, u := range users {
		if u.HasEmail() {
			owners[*u.Email] = u.ID
		}
	}

	result := &UpdateResult{
		UpdatedUsers: []User{},
		Errors:       []EmailUpdateError{},
	}

	for _, u := range users {
		if u.HasEmail() {
			continue
		}

		candidate := CalculateEmail(u)

		if ownerID, taken := owners[candidate]; taken {
			result.Errors = append(result.Errors, EmailUpdateError{
				UserID:         u.ID,
				AttemptedEmail: candidate,
				Error:          fmt.Sprintf("Email already exists for user ID %d", ownerID),
			})
			continue
		}

		// Claim the candidate before calling out, and keep the claim even
		// if the update fails: the upstream state is indeterminate then,
		// and releasing the address could hand a later user a duplicate.
		owners[candidate] = u.ID

		if err := s.upstream.UpdateUserEmail(ctx, u.ID, candidate); err != nil {
			result.Errors = append(result.Errors, EmailUpdateError{
				UserID:         u.ID,
				AttemptedEmail: candidate,
				Error:          err.Error(),
			})
			continue
		}

		updated := u
		updated.Email = &candidate
		result.UpdatedUsers = append(result.UpdatedUsers, updated)
	}

	s.persist(EmailUpdateErrorsArtifact, result.Errors)

	return result, nil
}

// Artifact writes must not fail a request; only snapshot fetch failures
// abort at the HTTP layer.
func (s *service) persist(name string, v any) {
	if err := s.artifacts.Persist(name, v); err != nil {
		log.Printf("ERROR: failed to persist artifact %s: %v", name, err)
	}
}
