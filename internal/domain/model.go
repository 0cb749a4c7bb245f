package domain

import "time"

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// ApplicantProfile is the input to a premium estimate. It has no identity.
type ApplicantProfile struct {
	Age            int
	Gender         Gender
	CoverageAmount int64
	DurationYears  int
	IsSmoker       bool
}

type PremiumQuote struct {
	MonthlyPremium    int64
	YearlyPremium     int64
	TotalOverDuration int64
}

// Kind tells the lifecycle table which state graph an entity follows.
type Kind string

const (
	KindApplication Kind = "application"
	KindClaim       Kind = "claim"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAssigned Status = "assigned"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no transition may leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAgent || r == RoleAdmin
}

// Actor is the authenticated caller. It is always passed explicitly.
type Actor struct {
	ID    string
	Email string
	Role  Role
}

type Policy struct {
	ID            string
	Name          string
	Category      string
	Description   string
	MinCoverage   int64
	MaxCoverage   int64
	PurchaseCount int
	CreatedAt     time.Time
}

type Application struct {
	ID             string
	ApplicantEmail string
	PolicyRef      string
	SubmittedAt    time.Time
	Status         Status
	AssignedAgent  *string
	Notes          string
	Profile        ApplicantProfile
	MonthlyPremium int64
	DecidedAt      *time.Time
	// DecidedBy is the actor who approved or rejected the application.
	DecidedBy *string
}

func (a Application) LifecycleKind() Kind     { return KindApplication }
func (a Application) LifecycleID() string     { return a.ID }
func (a Application) LifecycleStatus() Status { return a.Status }

func (a Application) LifecycleAssignee() string {
	if a.AssignedAgent == nil {
		return ""
	}
	return *a.AssignedAgent
}

type Claim struct {
	ID             string
	PolicyRef      string
	ApplicantEmail string
	Reason         string
	DocumentRef    string
	Status         Status
	SubmittedAt    time.Time
	DecidedAt      *time.Time
}

func (c Claim) LifecycleKind() Kind       { return KindClaim }
func (c Claim) LifecycleID() string       { return c.ID }
func (c Claim) LifecycleStatus() Status   { return c.Status }
func (c Claim) LifecycleAssignee() string { return "" }

// Holding records that an applicant owns an active policy.
type Holding struct {
	ID             string
	ApplicationRef string
	PolicyRef      string
	ApplicantEmail string
	ActivatedAt    time.Time
}

type PaymentStatus string

const (
	PaymentDue  PaymentStatus = "due"
	PaymentPaid PaymentStatus = "paid"
)

type Payment struct {
	ID             string
	ApplicationRef string
	ApplicantEmail string
	Amount         int64
	Status         PaymentStatus
	DueAt          time.Time
	NotifiedAt     *time.Time
}
