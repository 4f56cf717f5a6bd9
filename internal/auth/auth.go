// Package auth holds the archive's authorization model: a fixed
// identity registry verified with argon2id, session issuance as signed
// bearer tokens, and the ranked-role access check.
package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/internal/config"
	"github.com/digitalmuseum/archive-api/internal/logger"
	"github.com/digitalmuseum/archive-api/internal/types"
)

const name string = "github.com/digitalmuseum/archive-api/internal/auth"

var tracer = otel.Tracer(name)

// ErrInvalidCredentials covers both unknown email and wrong secret;
// the two are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Used when doing a fake compare in the error case of Login
var defaultHashForError string

// Generate a hash
func init() {
	var err error

	defaultHashForError, err = argon2id.CreateHash(
		"T3BlbiB0aGUgZ2FsbGVyeSBkb29ycyBhdCBuaW5lIHNoYXJwLg==",
		argon2id.DefaultParams,
	)
	if err != nil {
		logger.Logger.Error("error creating default hash", "error", err)
		os.Exit(1)
	}
}

// Does a fake hash compare for a hard coded secret. Used on the Login
// failure path so unknown-email and wrong-secret take the same time.
func fakeSecretCompare(ctx context.Context) {
	_, span := tracer.Start(ctx, "fakeSecretCompare")
	defer span.End()

	_, err := argon2id.ComparePasswordAndHash("i am a very real secret", defaultHashForError)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to compare fake secret with default hash for error")
		return
	}

	span.AddEvent("compared fake secret and default hash for error")
}

// Service answers login, logout, session resolution and the role
// access check. It is safe for concurrent use.
type Service struct {
	identities map[string]config.Identity
	ordered    []config.Identity
	signingKey []byte
	ttl        time.Duration
	clock      func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // token ID -> token expiry, pruned lazily
}

// NewService builds the service from the configured identity registry.
// The config is the authoritative account list; there is no signup.
func NewService(session *config.SessionConfig, identities []config.Identity) *Service {
	return NewServiceWithClock(session, identities, time.Now)
}

func NewServiceWithClock(
	session *config.SessionConfig,
	identities []config.Identity,
	clock func() time.Time,
) *Service {
	byEmail := make(map[string]config.Identity, len(identities))
	for _, identity := range identities {
		byEmail[strings.ToLower(identity.Email)] = identity
	}

	return &Service{
		identities: byEmail,
		ordered:    identities,
		signingKey: []byte(session.SigningKey),
		ttl:        session.TTL,
		clock:      clock,
		revoked:    map[string]time.Time{},
	}
}

// Login verifies the secret against the registry and issues a session
// token. Failures never partially mutate session state; outstanding
// tokens for the same identity stay valid until expiry or logout.
func (s *Service) Login(
	ctx context.Context,
	email string,
	secret string,
) (string, types.User, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	identity, ok := s.identities[strings.ToLower(email)]
	if !ok {
		span.AddEvent("unknown email")
		fakeSecretCompare(ctx)
		return "", types.User{}, ErrInvalidCredentials
	}

	span.SetAttributes(attribute.String("identity.id", identity.ID))

	span.AddEvent("checking hash")
	comparison, err := argon2id.ComparePasswordAndHash(secret, identity.SecretHash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to check secret")
		return "", types.User{}, err
	}

	if !comparison {
		span.AddEvent("failed login attempt")
		return "", types.User{}, ErrInvalidCredentials
	}

	user := types.User{
		ID:     identity.ID,
		Email:  identity.Email,
		Name:   identity.Name,
		Role:   identity.Role,
		Avatar: identity.Avatar,
	}

	token, err := s.issueToken(user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to issue session token")
		return "", types.User{}, err
	}

	span.AddEvent("successful login attempt")
	logger.Logger.InfoContext(ctx, "session issued", "userID", user.ID, "role", user.Role)
	return token, user, nil
}

// Logout revokes the token's session. Idempotent and unconditional:
// unknown, expired and malformed tokens are all quietly accepted.
func (s *Service) Logout(token string) {
	claims, err := s.parseToken(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	s.revoked[claims.ID] = claims.ExpiresAt.Time
}

// CurrentUser resolves a bearer token into the session identity.
// Invalid, expired and revoked tokens all mean anonymous.
func (s *Service) CurrentUser(token string) (*types.User, bool) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if revoked {
		return nil, false
	}

	user := claims.user()
	return &user, true
}

// Identities returns the registry in config order, for the back-office
// account listing. Secret hashes are not serialized.
func (s *Service) Identities() []config.Identity {
	out := make([]config.Identity, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// pruneLocked drops revocations whose tokens have expired on their own.
func (s *Service) pruneLocked() {
	now := s.clock()
	for id, expiry := range s.revoked {
		if now.After(expiry) {
			delete(s.revoked, id)
		}
	}
}

// Authorized reports whether the session identity satisfies the
// required role. No session fails any requirement above public.
func Authorized(user *types.User, required types.Role) bool {
	if user == nil {
		return required.Rank() <= types.RolePublic.Rank()
	}

	return user.Role.AtLeast(required)
}
