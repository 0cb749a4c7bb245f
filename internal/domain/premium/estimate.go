// Package premium turns applicant attributes into a non-binding premium quote.
//
// The rate model is a flat linear risk loading: a base monthly rate per unit of
// coverage plus independent additive adjustments. The constants are kept
// verbatim so previously issued quotes stay reproducible.
package premium

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"policydesk/internal/domain"
)

var (
	BaseRate      = decimal.RequireFromString("0.0006")
	SmokerLoading = decimal.RequireFromString("0.0003")
	MaleLoading   = decimal.RequireFromString("0.0001")
	SeniorLoading = decimal.RequireFromString("0.0002")
	YouthLoading  = decimal.RequireFromString("0.0001")
)

const (
	MinAge      = 18
	MaxAge      = 100
	MinDuration = 5
	MaxDuration = 40

	seniorAge     = 50
	youthAge      = 25
	monthsPerYear = 12
)

// Rate returns the monthly rate applied to the coverage amount.
func Rate(p domain.ApplicantProfile) decimal.Decimal {
	rate := BaseRate
	if p.IsSmoker {
		rate = rate.Add(SmokerLoading)
	}
	if p.Gender == domain.GenderMale {
		rate = rate.Add(MaleLoading)
	}
	if p.Age > seniorAge {
		rate = rate.Add(SeniorLoading)
	}
	if p.Age < youthAge {
		rate = rate.Add(YouthLoading)
	}
	return rate
}

// Estimate computes the quote for p. It never fails; callers validate the
// profile first because out-of-range input produces a meaningless quote.
func Estimate(p domain.ApplicantProfile) domain.PremiumQuote {
	// Round rounds half away from zero, once, on the monthly amount only.
	monthly := decimal.NewFromInt(p.CoverageAmount).Mul(Rate(p)).Round(0).IntPart()
	yearly := monthly * monthsPerYear
	return domain.PremiumQuote{
		MonthlyPremium:    monthly,
		YearlyPremium:     yearly,
		TotalOverDuration: yearly * int64(p.DurationYears),
	}
}

var ErrInvalidProfile = errors.New("invalid applicant profile")

// Validate reports every range violation in p, joined, each wrapping
// ErrInvalidProfile.
func Validate(p domain.ApplicantProfile) error {
	var errs []error
	if p.Age < MinAge || p.Age > MaxAge {
		errs = append(errs, fmt.Errorf("%w: age %d outside %d-%d", ErrInvalidProfile, p.Age, MinAge, MaxAge))
	}
	if !p.Gender.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, p.Gender))
	}
	if p.CoverageAmount <= 0 {
		errs = append(errs, fmt.Errorf("%w: coverage amount must be positive", ErrInvalidProfile))
	}
	if p.DurationYears < MinDuration || p.DurationYears > MaxDuration {
		errs = append(errs, fmt.Errorf("%w: duration %d outside %d-%d years", ErrInvalidProfile, p.DurationYears, MinDuration, MaxDuration))
	}
	return errors.Join(errs...)
}
