package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"policydesk/internal/domain"
)

var (
	errUnauthenticated = errors.New("authentication required")
	errInvalidToken    = errors.New("invalid bearer token")
)

// Claims is the token payload the API accepts. The subject is the actor id.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type actorKey struct{}

// WithActor stores the authenticated caller on the context.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the caller placed by the auth middleware, if any.
func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(domain.Actor)
	return a, ok
}

// Authenticator verifies HS256 bearer tokens signed with a shared secret.
type Authenticator struct {
	secret []byte
	log    logrus.FieldLogger
}

func NewAuthenticator(secret string, log logrus.FieldLogger) *Authenticator {
	return &Authenticator{secret: []byte(secret), log: log}
}

// Handler resolves the caller from the Authorization header. Requests without
// the header pass through anonymously; the operations that need an actor
// refuse them. A header that is present but invalid is rejected here.
func (a *Authenticator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "invalid Authorization header format")
			return
		}
		actor, err := a.Verify(token)
		if err != nil {
			a.log.WithError(err).WithFields(logrus.Fields{
				"path":   r.URL.Path,
				"method": r.Method,
			}).Warn("token validation failed")
			writeError(w, http.StatusUnauthorized, "unauthenticated", errInvalidToken.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// Verify parses a token and turns its claims into an actor.
func (a *Authenticator) Verify(token string) (domain.Actor, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return domain.Actor{}, fmt.Errorf("%w: missing subject or unknown role %q", errInvalidToken, claims.Role)
	}
	return domain.Actor{ID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

// Issue signs a token for actor. It backs the CLI token command and tests.
func (a *Authenticator) Issue(actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: actor.Email,
		Role:  actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func requireActor(ctx context.Context) (domain.Actor, error) {
	a, ok := ActorFrom(ctx)
	if !ok {
		return domain.Actor{}, errUnauthenticated
	}
	return a, nil
}
