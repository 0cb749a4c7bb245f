package ports

import (
	"context"

	"policydesk/internal/domain"
)

// Quotes validates applicant profiles and estimates premiums.
type Quotes interface {
	Quote(ctx context.Context, p domain.ApplicantProfile) (domain.PremiumQuote, error)
}

// Policies serves the public catalog.
type Policies interface {
	List(ctx context.Context) ([]domain.Policy, error)
	Get(ctx context.Context, id string) (domain.Policy, error)
}

type ApplicationSubmission struct {
	PolicyID string
	Profile  domain.ApplicantProfile
	Notes    string
}

// Applications runs the application workflow on behalf of an explicit actor.
type Applications interface {
	Submit(ctx context.Context, actor domain.Actor, sub ApplicationSubmission) (domain.Application, error)
	Get(ctx context.Context, actor domain.Actor, id string) (domain.Application, error)
	List(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Application, error)
	// Targets lists the statuses actor may move the application to next.
	Targets(ctx context.Context, actor domain.Actor, id string) ([]domain.Status, error)
	// Transition moves the application. Retrying with the same non-empty key
	// returns the current application without applying the move again.
	Transition(ctx context.Context, actor domain.Actor, id string, to domain.Status, assignee, key string) (domain.Application, error)
}

type ClaimSubmission struct {
	PolicyID    string
	Reason      string
	DocumentRef string
}

// Claims runs the claim workflow on behalf of an explicit actor.
type Claims interface {
	Submit(ctx context.Context, actor domain.Actor, sub ClaimSubmission) (domain.Claim, error)
	List(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Claim, error)
	Transition(ctx context.Context, actor domain.Actor, id string, to domain.Status, key string) (domain.Claim, error)
}

type Payments interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)
	// SendNotice delivers a payment's due notice now instead of waiting for
	// the background workers.
	SendNotice(ctx context.Context, actor domain.Actor, id string) (domain.Payment, error)
}
