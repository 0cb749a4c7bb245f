package httpadapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "policydesk/internal/api"
	"policydesk/internal/domain"
	"policydesk/internal/metrics"
	"policydesk/internal/ports"
)

// Services bundles the use cases the transport exposes.
type Services struct {
	Quotes       ports.Quotes
	Policies     ports.Policies
	Applications ports.Applications
	Claims       ports.Claims
	Payments     ports.Payments
}

// Server implements the generated StrictServerInterface.
type Server struct {
	svc     Services
	auth    *Authenticator
	limiter *QuoteLimiter
	log     logrus.FieldLogger
}

var _ api.StrictServerInterface = (*Server)(nil)

// New builds the transport. A nil limiter leaves the quote endpoint unthrottled.
func New(svc Services, auth *Authenticator, limiter *QuoteLimiter, log logrus.FieldLogger) *Server {
	return &Server{svc: svc, auth: auth, limiter: limiter, log: log.WithField("component", "http")}
}

// Routes returns a chi.Router mounting the generated handlers and /metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, metrics.InstrumentHTTP, s.auth.Handler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	var mws []api.StrictMiddlewareFunc
	if s.limiter != nil {
		mws = append(mws, s.limiter.Middleware)
	}
	handler := api.NewStrictHandlerWithOptions(s, mws, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler,
		ResponseErrorHandlerFunc: errorHandler(s.log),
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: requestErrorHandler,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) CreateQuote(ctx context.Context, req api.CreateQuoteRequestObject) (api.CreateQuoteResponseObject, error) {
	if req.Body == nil {
		return nil, fmt.Errorf("%w: missing body", errBadRequest)
	}
	q, err := s.svc.Quotes.Quote(ctx, fromAPIProfile(*req.Body))
	if err != nil {
		return nil, err
	}
	return api.CreateQuote200JSONResponse{
		MonthlyPremium:    q.MonthlyPremium,
		YearlyPremium:     q.YearlyPremium,
		TotalOverDuration: q.TotalOverDuration,
	}, nil
}

func (s *Server) ListPolicies(ctx context.Context, _ api.ListPoliciesRequestObject) (api.ListPoliciesResponseObject, error) {
	policies, err := s.svc.Policies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.ListPolicies200JSONResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, toAPIPolicy(p))
	}
	return out, nil
}

func (s *Server) GetPolicy(ctx context.Context, req api.GetPolicyRequestObject) (api.GetPolicyResponseObject, error) {
	p, err := s.svc.Policies.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetPolicy200JSONResponse(toAPIPolicy(p)), nil
}

func (s *Server) ListApplications(ctx context.Context, req api.ListApplicationsRequestObject) (api.ListApplicationsResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	var status *domain.Status
	if req.Params.Status != nil {
		st, err := applicationStatus(*req.Params.Status)
		if err != nil {
			return nil, err
		}
		status = &st
	}
	apps, err := s.svc.Applications.List(ctx, actor, status)
	if err != nil {
		return nil, err
	}
	out := make(api.ListApplications200JSONResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toAPIApplication(a))
	}
	return out, nil
}

func (s *Server) CreateApplication(ctx context.Context, req api.CreateApplicationRequestObject) (api.CreateApplicationResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return nil, fmt.Errorf("%w: missing body", errBadRequest)
	}
	sub := ports.ApplicationSubmission{PolicyID: req.Body.PolicyId, Profile: fromAPIProfile(req.Body.Profile)}
	if req.Body.Notes != nil {
		sub.Notes = *req.Body.Notes
	}
	app, err := s.svc.Applications.Submit(ctx, actor, sub)
	if err != nil {
		return nil, err
	}
	return api.CreateApplication201JSONResponse(toAPIApplication(app)), nil
}

func (s *Server) GetApplication(ctx context.Context, req api.GetApplicationRequestObject) (api.GetApplicationResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	app, err := s.svc.Applications.Get(ctx, actor, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetApplication200JSONResponse(toAPIApplication(app)), nil
}

func (s *Server) TransitionApplication(ctx context.Context, req api.TransitionApplicationRequestObject) (api.TransitionApplicationResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return nil, fmt.Errorf("%w: missing body", errBadRequest)
	}
	to, err := applicationStatus(req.Body.Status)
	if err != nil {
		return nil, err
	}
	var assignee string
	if req.Body.Assignee != nil {
		assignee = *req.Body.Assignee
	}
	app, err := s.svc.Applications.Transition(ctx, actor, req.Id, to, assignee, idempotencyKey(req.Params.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return api.TransitionApplication200JSONResponse(toAPIApplication(app)), nil
}

func (s *Server) ListApplicationTransitions(ctx context.Context, req api.ListApplicationTransitionsRequestObject) (api.ListApplicationTransitionsResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := s.svc.Applications.Targets(ctx, actor, req.Id)
	if err != nil {
		return nil, err
	}
	out := make(api.ListApplicationTransitions200JSONResponse, 0, len(targets))
	for _, t := range targets {
		out = append(out, api.ApplicationStatus(t))
	}
	return out, nil
}

func (s *Server) ListClaims(ctx context.Context, req api.ListClaimsRequestObject) (api.ListClaimsResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	var status *domain.Status
	if req.Params.Status != nil {
		st, err := claimStatus(*req.Params.Status)
		if err != nil {
			return nil, err
		}
		status = &st
	}
	list, err := s.svc.Claims.List(ctx, actor, status)
	if err != nil {
		return nil, err
	}
	out := make(api.ListClaims200JSONResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toAPIClaim(c))
	}
	return out, nil
}

func (s *Server) CreateClaim(ctx context.Context, req api.CreateClaimRequestObject) (api.CreateClaimResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return nil, fmt.Errorf("%w: missing body", errBadRequest)
	}
	sub := ports.ClaimSubmission{PolicyID: req.Body.PolicyId, Reason: req.Body.Reason}
	if req.Body.DocumentRef != nil {
		sub.DocumentRef = *req.Body.DocumentRef
	}
	c, err := s.svc.Claims.Submit(ctx, actor, sub)
	if err != nil {
		return nil, err
	}
	return api.CreateClaim201JSONResponse(toAPIClaim(c)), nil
}

func (s *Server) TransitionClaim(ctx context.Context, req api.TransitionClaimRequestObject) (api.TransitionClaimResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return nil, fmt.Errorf("%w: missing body", errBadRequest)
	}
	to, err := claimStatus(req.Body.Status)
	if err != nil {
		return nil, err
	}
	c, err := s.svc.Claims.Transition(ctx, actor, req.Id, to, idempotencyKey(req.Params.IdempotencyKey))
	if err != nil {
		return nil, err
	}
	return api.TransitionClaim200JSONResponse(toAPIClaim(c)), nil
}

func (s *Server) ListPayments(ctx context.Context, _ api.ListPaymentsRequestObject) (api.ListPaymentsResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.svc.Payments.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := make(api.ListPayments200JSONResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toAPIPayment(p))
	}
	return out, nil
}

func (s *Server) SendPaymentNotice(ctx context.Context, req api.SendPaymentNoticeRequestObject) (api.SendPaymentNoticeResponseObject, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Payments.SendNotice(ctx, actor, req.Id)
	if err != nil {
		return nil, err
	}
	return api.SendPaymentNotice200JSONResponse(toAPIPayment(p)), nil
}
