package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"policydesk/internal/domain"
	"policydesk/internal/services/quotes"
)

var quoteProfile struct {
	age      int
	gender   string
	coverage int64
	years    int
	smoker   bool
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a premium estimate for an applicant profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		q, err := quotes.New().Quote(cmd.Context(), domain.ApplicantProfile{
			Age:            quoteProfile.age,
			Gender:         domain.Gender(quoteProfile.gender),
			CoverageAmount: quoteProfile.coverage,
			DurationYears:  quoteProfile.years,
			IsSmoker:       quoteProfile.smoker,
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "monthly: %d\n", q.MonthlyPremium)
		fmt.Fprintf(out, "yearly:  %d\n", q.YearlyPremium)
		fmt.Fprintf(out, "total:   %d\n", q.TotalOverDuration)
		return nil
	},
}

func init() {
	f := quoteCmd.Flags()
	f.IntVar(&quoteProfile.age, "age", 0, "applicant age in years")
	f.StringVar(&quoteProfile.gender, "gender", "", "male, female or other")
	f.Int64Var(&quoteProfile.coverage, "coverage", 0, "coverage amount in whole currency units")
	f.IntVar(&quoteProfile.years, "years", 0, "policy duration in years")
	f.BoolVar(&quoteProfile.smoker, "smoker", false, "applicant smokes")
	for _, name := range []string{"age", "gender", "coverage", "years"} {
		_ = quoteCmd.MarkFlagRequired(name)
	}
}
