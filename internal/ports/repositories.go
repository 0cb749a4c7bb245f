package ports

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
)

// PolicyRepository reads the policy catalog.
type PolicyRepository interface {
	ListPolicies(ctx context.Context) ([]domain.Policy, error)
	GetPolicy(ctx context.Context, id string) (domain.Policy, error)
}

// ApplicationFilter narrows ListApplications. Zero values match everything.
// AgentID restricts to pending applications plus those assigned to or decided
// by that agent.
type ApplicationFilter struct {
	Status         *domain.Status
	ApplicantEmail string
	AgentID        string
}

// ApplicationRepository stores applications. Status only changes via InstructionStore.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app domain.Application) (domain.Application, error)
	GetApplication(ctx context.Context, id string) (domain.Application, error)
	ListApplications(ctx context.Context, f ApplicationFilter) ([]domain.Application, error)
}

type ClaimFilter struct {
	Status         *domain.Status
	ApplicantEmail string
}

// ClaimRepository stores claims. Status only changes via InstructionStore.
type ClaimRepository interface {
	CreateClaim(ctx context.Context, c domain.Claim) (domain.Claim, error)
	GetClaim(ctx context.Context, id string) (domain.Claim, error)
	ListClaims(ctx context.Context, f ClaimFilter) ([]domain.Claim, error)
	HasClaim(ctx context.Context, policyID, email string) (bool, error)
}

// HoldingRepository answers whether an applicant holds an active policy.
type HoldingRepository interface {
	HasHolding(ctx context.Context, policyID, email string) (bool, error)
}

type PaymentFilter struct {
	ApplicantEmail string
}

type PaymentRepository interface {
	ListPayments(ctx context.Context, f PaymentFilter) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id string) (domain.Payment, error)
}

// InstructionRecord is a lifecycle instruction plus the data its effects need.
type InstructionRecord struct {
	// Key identifies the decision; replaying a key is a no-op.
	Key            string
	Instruction    lifecycle.Instruction
	PolicyRef      string
	ApplicantEmail string
	PaymentAmount  int64
	At             time.Time
}

// InstructionStore persists a decided instruction atomically: the status write
// only lands if the entity is still in Instruction.From, and every effect lands
// with it or not at all. A stale status returns ErrConflict.
type InstructionStore interface {
	Apply(ctx context.Context, rec InstructionRecord) error
	Applied(ctx context.Context, key string) (bool, error)
}

var instructionNamespace = uuid.MustParse("6f1c2a7e-3b0d-4c55-9a43-2f8e1d7b9c10")

// InstructionKey derives the key for one actor's move of one entity to status
// to. The same client key always maps to the same instruction key, and keys
// from different callers or moves never collide. Without a client key every
// call gets a fresh key.
func InstructionKey(kind domain.Kind, entityID, actorID string, to domain.Status, clientKey string) string {
	if clientKey == "" {
		return uuid.NewString()
	}
	name := strings.Join([]string{string(kind), entityID, actorID, string(to), clientKey}, "\x00")
	return uuid.NewSHA1(instructionNamespace, []byte(name)).String()
}
