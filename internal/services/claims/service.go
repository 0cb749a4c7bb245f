package claims

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/metrics"
	"policydesk/internal/ports"
)

var (
	ErrDuplicateClaim  = errors.New("a claim for this policy already exists")
	ErrPolicyNotActive = errors.New("policy is not active for this applicant")
	ErrMissingReason   = errors.New("claim reason is required")
)

type Service struct {
	holdings ports.HoldingRepository
	claims   ports.ClaimRepository
	store    ports.InstructionStore
	log      logrus.FieldLogger
	now      func() time.Time
}

func New(holdings ports.HoldingRepository, claims ports.ClaimRepository, store ports.InstructionStore, log logrus.FieldLogger) *Service {
	return &Service{
		holdings: holdings,
		claims:   claims,
		store:    store,
		log:      log.WithField("component", "claims"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit files a claim against a policy the customer holds. At most one claim
// per (policy, applicant) is accepted.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, sub ports.ClaimSubmission) (domain.Claim, error) {
	if actor.Role != domain.RoleCustomer {
		return domain.Claim{}, fmt.Errorf("only customers file claims: %w", ports.ErrForbidden)
	}
	if strings.TrimSpace(sub.Reason) == "" {
		return domain.Claim{}, ErrMissingReason
	}
	email, err := domain.NormalizeEmail(actor.Email)
	if err != nil {
		return domain.Claim{}, err
	}

	held, err := s.holdings.HasHolding(ctx, sub.PolicyID, email)
	if err != nil {
		return domain.Claim{}, err
	}
	if !held {
		return domain.Claim{}, ErrPolicyNotActive
	}
	exists, err := s.claims.HasClaim(ctx, sub.PolicyID, email)
	if err != nil {
		return domain.Claim{}, err
	}
	if exists {
		return domain.Claim{}, ErrDuplicateClaim
	}

	c, err := s.claims.CreateClaim(ctx, domain.Claim{
		PolicyRef:      sub.PolicyID,
		ApplicantEmail: email,
		Reason:         sub.Reason,
		DocumentRef:    sub.DocumentRef,
		Status:         domain.StatusPending,
		SubmittedAt:    s.now(),
	})
	if err != nil {
		return domain.Claim{}, err
	}
	s.log.WithFields(logrus.Fields{"claim": c.ID, "policy": c.PolicyRef}).Info("claim submitted")
	return c, nil
}

// List shows customers their own claims; agents and admins see all of them.
func (s *Service) List(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Claim, error) {
	f := ports.ClaimFilter{Status: status}
	if actor.Role == domain.RoleCustomer {
		email, err := domain.NormalizeEmail(actor.Email)
		if err != nil {
			return nil, err
		}
		f.ApplicantEmail = email
	}
	return s.claims.ListClaims(ctx, f)
}

// Transition decides a claim. Like application moves, a repeated non-empty key
// is answered with the current claim.
func (s *Service) Transition(ctx context.Context, actor domain.Actor, id string, to domain.Status, key string) (domain.Claim, error) {
	c, err := s.claims.GetClaim(ctx, id)
	if err != nil {
		return domain.Claim{}, err
	}
	log := s.log.WithFields(logrus.Fields{"claim": id, "from": c.Status, "to": to, "actor": actor.ID, "role": actor.Role})

	instructionKey := ports.InstructionKey(domain.KindClaim, id, actor.ID, to, key)
	if key != "" {
		done, err := s.store.Applied(ctx, instructionKey)
		if err != nil {
			return domain.Claim{}, err
		}
		if done {
			log.WithField("key", instructionKey).Info("transition already applied")
			return c, nil
		}
	}

	in, err := lifecycle.Transition(c, to, actor.Role, actor.ID)
	if err == nil {
		err = s.store.Apply(ctx, ports.InstructionRecord{
			Key:            instructionKey,
			Instruction:    in,
			PolicyRef:      c.PolicyRef,
			ApplicantEmail: c.ApplicantEmail,
			At:             s.now(),
		})
	}
	metrics.RecordTransition(string(domain.KindClaim), string(c.Status), string(to), err)
	if err != nil {
		log.WithError(err).Warn("claim transition not applied")
		return domain.Claim{}, err
	}
	log.Info("claim transitioned")

	return s.claims.GetClaim(ctx, id)
}
