package httpadapter

import (
	"fmt"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	api "policydesk/internal/api"
	"policydesk/internal/domain"
)

func fromAPIProfile(p api.ApplicantProfile) domain.ApplicantProfile {
	return domain.ApplicantProfile{
		Age:            p.Age,
		Gender:         domain.Gender(p.Gender),
		CoverageAmount: p.CoverageAmount,
		DurationYears:  p.DurationYears,
		IsSmoker:       p.IsSmoker,
	}
}

// idempotencyKey trims the optional header; blank means none was sent.
func idempotencyKey(h *api.IdempotencyKey) string {
	if h == nil {
		return ""
	}
	return strings.TrimSpace(*h)
}

func applicationStatus(s api.ApplicationStatus) (domain.Status, error) {
	switch s {
	case api.ApplicationStatusPending, api.ApplicationStatusAssigned,
		api.ApplicationStatusApproved, api.ApplicationStatusRejected:
		return domain.Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown application status %q", errBadRequest, s)
}

func claimStatus(s api.ClaimStatus) (domain.Status, error) {
	switch s {
	case api.ClaimStatusPending, api.ClaimStatusApproved, api.ClaimStatusRejected:
		return domain.Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown claim status %q", errBadRequest, s)
}

func toAPIPolicy(p domain.Policy) api.Policy {
	return api.Policy{
		Id:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		MinCoverage:   p.MinCoverage,
		MaxCoverage:   p.MaxCoverage,
		PurchaseCount: p.PurchaseCount,
	}
}

func toAPIApplication(a domain.Application) api.Application {
	return api.Application{
		Id:             a.ID,
		ApplicantEmail: openapi_types.Email(a.ApplicantEmail),
		PolicyId:       a.PolicyRef,
		SubmittedAt:    a.SubmittedAt,
		Status:         api.ApplicationStatus(a.Status),
		AssignedAgent:  a.AssignedAgent,
		Notes:          a.Notes,
		Profile: api.ApplicantProfile{
			Age:            a.Profile.Age,
			Gender:         api.Gender(a.Profile.Gender),
			CoverageAmount: a.Profile.CoverageAmount,
			DurationYears:  a.Profile.DurationYears,
			IsSmoker:       a.Profile.IsSmoker,
		},
		MonthlyPremium: a.MonthlyPremium,
		DecidedAt:      a.DecidedAt,
		DecidedBy:      a.DecidedBy,
	}
}

func toAPIClaim(c domain.Claim) api.Claim {
	return api.Claim{
		Id:             c.ID,
		PolicyId:       c.PolicyRef,
		ApplicantEmail: openapi_types.Email(c.ApplicantEmail),
		Reason:         c.Reason,
		DocumentRef:    c.DocumentRef,
		Status:         api.ClaimStatus(c.Status),
		SubmittedAt:    c.SubmittedAt,
		DecidedAt:      c.DecidedAt,
	}
}

func toAPIPayment(p domain.Payment) api.Payment {
	return api.Payment{
		Id:             p.ID,
		ApplicationId:  p.ApplicationRef,
		ApplicantEmail: openapi_types.Email(p.ApplicantEmail),
		Amount:         p.Amount,
		Status:         api.PaymentStatus(p.Status),
		DueAt:          p.DueAt,
		NotifiedAt:     p.NotifiedAt,
	}
}
