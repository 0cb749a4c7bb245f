package httpadapter

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	api "policydesk/internal/api"
	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/domain/premium"
	"policydesk/internal/ports"
	"policydesk/internal/services/claims"
)

// errBadRequest marks malformed input caught in the adapter itself.
var errBadRequest = errors.New("bad request")

type problem struct {
	status int
	code   string
}

// classify maps service and domain errors onto a status and a stable code.
func classify(err error) problem {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, premium.ErrInvalidProfile),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, lifecycle.ErrMissingAssignee),
		errors.Is(err, claims.ErrMissingReason):
		return problem{http.StatusBadRequest, "invalid_request"}
	case errors.Is(err, errUnauthenticated), errors.Is(err, errInvalidToken):
		return problem{http.StatusUnauthorized, "unauthenticated"}
	case errors.Is(err, ports.ErrForbidden), errors.Is(err, lifecycle.ErrForbiddenActor):
		return problem{http.StatusForbidden, "forbidden"}
	case errors.Is(err, lifecycle.ErrNotAssignedAgent):
		return problem{http.StatusForbidden, "not_assigned_agent"}
	case errors.Is(err, ports.ErrNotFound):
		return problem{http.StatusNotFound, "not_found"}
	case errors.Is(err, lifecycle.ErrIllegalTransition):
		return problem{http.StatusConflict, "illegal_transition"}
	case errors.Is(err, claims.ErrDuplicateClaim):
		return problem{http.StatusConflict, "duplicate_claim"}
	case errors.Is(err, claims.ErrPolicyNotActive):
		return problem{http.StatusConflict, "policy_not_active"}
	case errors.Is(err, ports.ErrConflict):
		return problem{http.StatusConflict, "conflict"}
	case errors.Is(err, errRateLimited):
		return problem{http.StatusTooManyRequests, "rate_limited"}
	default:
		return problem{http.StatusInternalServerError, "internal"}
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Code: code, Message: msg})
}

// errorHandler renders errors returned by handlers. Internal failures are
// logged and hidden from the caller.
func errorHandler(log logrus.FieldLogger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		p := classify(err)
		msg := err.Error()
		if p.status == http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"path":   r.URL.Path,
				"method": r.Method,
			}).Error("request failed")
			msg = "internal error"
		}
		writeError(w, p.status, p.code, msg)
	}
}

// requestErrorHandler renders decode and parameter binding failures.
func requestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
}
