package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"policydesk/internal/domain"
	"policydesk/internal/ports"
)

const uniqueViolation = "23505"

// Ids are uuids; anything else cannot exist and would fail the cast in SQL.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ports.ErrNotFound
	}
	return err
}

// PolicyRepository

const policyColumns = `id, name, category, description, min_coverage, max_coverage, purchase_count, created_at`

func scanPolicy(row pgx.Row) (domain.Policy, error) {
	var p domain.Policy
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.MinCoverage, &p.MaxCoverage, &p.PurchaseCount, &p.CreatedAt)
	return p, err
}

func (db *DB) ListPolicies(ctx context.Context) ([]domain.Policy, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+policyColumns+` FROM policies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Policy{}
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (db *DB) GetPolicy(ctx context.Context, id string) (domain.Policy, error) {
	if !validID(id) {
		return domain.Policy{}, ports.ErrNotFound
	}
	p, err := scanPolicy(db.Pool.QueryRow(ctx, `SELECT `+policyColumns+` FROM policies WHERE id = $1`, id))
	return p, notFound(err)
}

// ApplicationRepository

const applicationColumns = `id, applicant_email, policy_id, submitted_at, status, assigned_agent, notes,
	age, gender, coverage_amount, duration_years, is_smoker, monthly_premium, decided_at, decided_by`

func scanApplication(row pgx.Row) (domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.ApplicantEmail, &a.PolicyRef, &a.SubmittedAt, &a.Status, &a.AssignedAgent, &a.Notes,
		&a.Profile.Age, &a.Profile.Gender, &a.Profile.CoverageAmount, &a.Profile.DurationYears, &a.Profile.IsSmoker,
		&a.MonthlyPremium, &a.DecidedAt, &a.DecidedBy)
	return a, err
}

func (db *DB) CreateApplication(ctx context.Context, app domain.Application) (domain.Application, error) {
	row := db.Pool.QueryRow(ctx, `
		INSERT INTO applications (applicant_email, policy_id, submitted_at, status, notes,
			age, gender, coverage_amount, duration_years, is_smoker, monthly_premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+applicationColumns,
		app.ApplicantEmail, app.PolicyRef, app.SubmittedAt, app.Status, app.Notes,
		app.Profile.Age, app.Profile.Gender, app.Profile.CoverageAmount, app.Profile.DurationYears, app.Profile.IsSmoker,
		app.MonthlyPremium)
	return scanApplication(row)
}

func (db *DB) GetApplication(ctx context.Context, id string) (domain.Application, error) {
	if !validID(id) {
		return domain.Application{}, ports.ErrNotFound
	}
	app, err := scanApplication(db.Pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	return app, notFound(err)
}

func (db *DB) ListApplications(ctx context.Context, f ports.ApplicationFilter) ([]domain.Application, error) {
	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Status != nil {
		where = append(where, "status = "+arg(*f.Status))
	}
	if f.ApplicantEmail != "" {
		where = append(where, "applicant_email = "+arg(f.ApplicantEmail))
	}
	if f.AgentID != "" {
		agent := arg(f.AgentID)
		where = append(where, "(status = 'pending' OR assigned_agent = "+agent+" OR decided_by = "+agent+")")
	}
	q := `SELECT ` + applicationColumns + ` FROM applications`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY submitted_at DESC"

	rows, err := db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// ClaimRepository

const claimColumns = `id, policy_id, applicant_email, reason, document_ref, status, submitted_at, decided_at`

func scanClaim(row pgx.Row) (domain.Claim, error) {
	var c domain.Claim
	err := row.Scan(&c.ID, &c.PolicyRef, &c.ApplicantEmail, &c.Reason, &c.DocumentRef, &c.Status, &c.SubmittedAt, &c.DecidedAt)
	return c, err
}

func (db *DB) CreateClaim(ctx context.Context, c domain.Claim) (domain.Claim, error) {
	row := db.Pool.QueryRow(ctx, `
		INSERT INTO claims (policy_id, applicant_email, reason, document_ref, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+claimColumns,
		c.PolicyRef, c.ApplicantEmail, c.Reason, c.DocumentRef, c.Status, c.SubmittedAt)
	out, err := scanClaim(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.Claim{}, fmt.Errorf("claim for policy %s: %w", c.PolicyRef, ports.ErrConflict)
	}
	return out, err
}

func (db *DB) GetClaim(ctx context.Context, id string) (domain.Claim, error) {
	if !validID(id) {
		return domain.Claim{}, ports.ErrNotFound
	}
	c, err := scanClaim(db.Pool.QueryRow(ctx, `SELECT `+claimColumns+` FROM claims WHERE id = $1`, id))
	return c, notFound(err)
}

func (db *DB) ListClaims(ctx context.Context, f ports.ClaimFilter) ([]domain.Claim, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+claimColumns+` FROM claims
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2 = '' OR applicant_email = $2)
		ORDER BY submitted_at DESC
	`, (*string)(f.Status), f.ApplicantEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (db *DB) HasClaim(ctx context.Context, policyID, email string) (bool, error) {
	if !validID(policyID) {
		return false, nil
	}
	var exists bool
	err := db.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM claims WHERE policy_id = $1 AND applicant_email = $2)
	`, policyID, email).Scan(&exists)
	return exists, err
}

// HoldingRepository

func (db *DB) HasHolding(ctx context.Context, policyID, email string) (bool, error) {
	if !validID(policyID) {
		return false, nil
	}
	var exists bool
	err := db.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM policy_holdings WHERE policy_id = $1 AND applicant_email = $2)
	`, policyID, email).Scan(&exists)
	return exists, err
}

// PaymentRepository

const paymentColumns = `id, application_id, applicant_email, amount, status, due_at, notified_at`

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.ApplicationRef, &p.ApplicantEmail, &p.Amount, &p.Status, &p.DueAt, &p.NotifiedAt)
	return p, err
}

func (db *DB) ListPayments(ctx context.Context, f ports.PaymentFilter) ([]domain.Payment, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+paymentColumns+` FROM payments
		WHERE ($1 = '' OR applicant_email = $1)
		ORDER BY due_at
	`, f.ApplicantEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (db *DB) GetPayment(ctx context.Context, id string) (domain.Payment, error) {
	if !validID(id) {
		return domain.Payment{}, ports.ErrNotFound
	}
	p, err := scanPayment(db.Pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	return p, notFound(err)
}
