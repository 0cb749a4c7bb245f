package quotes

import (
	"context"

	"policydesk/internal/domain"
	"policydesk/internal/domain/premium"
	"policydesk/internal/metrics"
)

type Service struct{}

func New() *Service { return &Service{} }

// Quote validates p and estimates its premium. Nothing is stored or cached.
func (s *Service) Quote(_ context.Context, p domain.ApplicantProfile) (domain.PremiumQuote, error) {
	if err := premium.Validate(p); err != nil {
		metrics.RecordQuote(err)
		return domain.PremiumQuote{}, err
	}
	q := premium.Estimate(p)
	metrics.RecordQuote(nil)
	return q, nil
}
