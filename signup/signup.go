// Package signup drives role registration against the Learn Together
// backend.
//
// Registration is a multi-step workflow over two eventually-consistent
// collaborators: the identity provider's token becomes available some
// time after the session exists, and a role written through
// users.register may not be visible to an immediately following
// users.me. Each uncertain step therefore carries a bounded
// retry-then-fail policy instead of unbounded polling.
//
// The workflow per attempt:
//
//	register user (non-fatal) → acquire token → verify role →
//	(parent only) check parent record → register parent → done
//
// A parent-registration conflict ("already exists") counts as success,
// which also makes concurrent duplicate attempts converge without any
// client-side locking. Re-running a failed attempt is always safe:
// user registration is idempotent and the parent path starts by
// checking for an existing record.
package signup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	codegurus "github.com/lalitgarg2005/CodeGurus"
)

// Default retry policies. Token acquisition repeats the provider pair
// once after a pause; role verification re-reads once after a shorter
// pause.
var (
	DefaultTokenRetry  = RetryPolicy{Attempts: 2, Interval: time.Second}
	DefaultVerifyRetry = RetryPolicy{Attempts: 2, Interval: 500 * time.Millisecond}
)

// Stage names the workflow step an attempt died in. A failed Result is
// recoverable by re-running the orchestrator; Stage tells the caller
// (and support) how far the previous attempt got.
type Stage string

const (
	StageValidate       Stage = "validate"
	StageRegisterUser   Stage = "register_user"
	StageAcquireToken   Stage = "acquire_token"
	StageVerifyRole     Stage = "verify_role"
	StageCheckParent    Stage = "check_parent"
	StageRegisterParent Stage = "register_parent"
)

// Error is a terminal registration failure. Reason is always safe to
// show to the end user.
type Error struct {
	Stage  Stage
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("signup failed at %s: %s", e.Stage, e.Reason)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Identity describes the authenticated identity-provider session the
// registration runs for.
type Identity struct {
	// ClerkID is the identity provider's subject id (required).
	ClerkID string
	// PrimaryEmail is the identity's primary registered email address,
	// used when no explicit email is entered.
	PrimaryEmail string
	// SignedIn reports whether the provider considers the session
	// signed in. Token acquisition only waits and retries for signed-in
	// identities.
	SignedIn bool
}

// Request is one registration attempt.
type Request struct {
	Identity Identity
	// Role is the desired role.
	Role codegurus.Role
	// Email is the explicitly entered contact email. Only consulted for
	// RoleParent; falls back to the identity's primary email when empty.
	Email string
}

// Result is a completed registration.
type Result struct {
	// User is the backend user record, when the verification read saw
	// it. It can be nil when the record was not yet visible; the role
	// write itself still went through.
	User *codegurus.User
	// Parent is set for parent registrations when the record could be
	// read back.
	Parent *codegurus.Parent
	// Client is an authenticated client carrying the acquired token,
	// ready for follow-up calls in the same user action.
	Client *codegurus.Client
}

// Config configures an Orchestrator.
type Config struct {
	// Client is the unauthenticated API client (required).
	Client *codegurus.Client
	// Primary is the main token provider (required).
	Primary TokenProvider
	// Fallback is tried whenever Primary yields nothing.
	Fallback TokenProvider
	// Logger defaults to zap.NewNop.
	Logger *zap.Logger
	// TokenRetry bounds token acquisition; defaults to DefaultTokenRetry.
	TokenRetry RetryPolicy
	// VerifyRetry bounds role verification; defaults to DefaultVerifyRetry.
	VerifyRetry RetryPolicy
}

// Orchestrator runs registration attempts. It holds no per-attempt
// state and is safe for concurrent use.
type Orchestrator struct {
	client      *codegurus.Client
	primary     TokenProvider
	fallback    TokenProvider
	log         *zap.Logger
	tokenRetry  RetryPolicy
	verifyRetry RetryPolicy
	validate    *validator.Validate
}

// New creates an Orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Client == nil {
		return nil, errors.New("signup: Client is required")
	}
	if cfg.Primary == nil {
		return nil, errors.New("signup: Primary token provider is required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		client:      cfg.Client,
		primary:     cfg.Primary,
		fallback:    cfg.Fallback,
		log:         log,
		tokenRetry:  cfg.TokenRetry.orDefault(DefaultTokenRetry),
		verifyRetry: cfg.VerifyRetry.orDefault(DefaultVerifyRetry),
		validate:    validator.New(),
	}, nil
}

// Run executes one registration attempt. It never panics and never
// returns errors other than *Error.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	log := o.log.With(
		zap.String("clerk_id", req.Identity.ClerkID),
		zap.String("role", string(req.Role)),
	)

	email, err := o.resolveEmail(req)
	if err != nil {
		return nil, err
	}

	// Register or update the user's role. Failure here is logged and
	// not fatal: the record may already exist, and verification below
	// decides whether the attempt can continue.
	if _, err := o.client.Users.Register(ctx, codegurus.RegisterUserRequest{
		ClerkID: req.Identity.ClerkID,
		Role:    req.Role,
	}); err != nil {
		log.Warn("user registration call failed, continuing", zap.Error(err))
	}

	token, err := acquireToken(ctx, o.primary, o.fallback, req.Identity.SignedIn, o.tokenRetry, log)
	if err != nil {
		return nil, &Error{
			Stage:  StageAcquireToken,
			Reason: "unable to acquire an authentication token; make sure you are signed in and try again",
			Err:    err,
		}
	}
	authed := o.client.WithBearerToken(token)

	user, err := o.verifyRole(ctx, authed, req.Role, log)
	if err != nil {
		return nil, err
	}

	result := &Result{User: user, Client: authed}
	if req.Role != codegurus.RoleParent {
		return result, nil
	}

	parent, err := o.ensureParent(ctx, authed, req.Identity.ClerkID, email, log)
	if err != nil {
		return nil, err
	}
	result.Parent = parent
	return result, nil
}

// resolveEmail picks the parent contact email before any network call:
// the explicitly entered address wins, the identity's primary address is
// the fallback, and having neither fails validation.
func (o *Orchestrator) resolveEmail(req Request) (string, error) {
	if req.Identity.ClerkID == "" {
		return "", &Error{Stage: StageValidate, Reason: "missing identity; please sign in first"}
	}
	if req.Role != codegurus.RoleParent {
		return "", nil
	}

	email := req.Email
	if email == "" {
		email = req.Identity.PrimaryEmail
	}
	if email == "" {
		return "", &Error{Stage: StageValidate, Reason: "email is required for parent registration"}
	}
	if err := o.validate.Var(email, "email"); err != nil {
		return "", &Error{Stage: StageValidate, Reason: fmt.Sprintf("%q is not a valid email address", email), Err: err}
	}
	return email, nil
}

// verifyRole reads the user record back and confirms the role write is
// visible, re-reading once per the verify policy. A not-found read is
// tolerated: the record was just written and may not be readable yet.
func (o *Orchestrator) verifyRole(ctx context.Context, authed *codegurus.Client, want codegurus.Role, log *zap.Logger) (*codegurus.User, error) {
	var (
		user *codegurus.User
		got  codegurus.Role
	)

	err := retryDo(ctx, o.verifyRetry, func(ctx context.Context) (bool, error) {
		u, err := authed.Users.Me(ctx)
		if err != nil {
			if codegurus.IsNotFound(err) {
				log.Info("user record not visible yet, continuing")
				user = nil
				return false, nil
			}
			return false, err
		}
		if u.Role != want {
			got = u.Role
			return true, errRoleMismatch
		}
		user = u
		return false, nil
	})
	if err != nil {
		if errors.Is(err, errRoleMismatch) {
			return nil, &Error{
				Stage:  StageVerifyRole,
				Reason: fmt.Sprintf("role update did not propagate: backend still reports %s instead of %s", got, want),
				Err:    err,
			}
		}
		return nil, &Error{Stage: StageVerifyRole, Reason: reasonFor(err), Err: err}
	}
	return user, nil
}

// ensureParent makes the parent record exist: an existing record wins,
// otherwise it registers one, converting the backend's "already exists"
// conflict into success.
func (o *Orchestrator) ensureParent(ctx context.Context, authed *codegurus.Client, clerkID, email string, log *zap.Logger) (*codegurus.Parent, error) {
	parent, err := authed.Parents.Me(ctx)
	if err == nil {
		return parent, nil
	}
	if !codegurus.IsNotFound(err) {
		// The original record check is best-effort: registration below
		// surfaces the real failure, or the conflict that proves the
		// record exists.
		log.Warn("parent lookup failed, attempting registration", zap.Error(err))
	}

	parent, err = authed.Parents.Register(ctx, codegurus.RegisterParentRequest{
		Email:   email,
		ClerkID: clerkID,
	})
	if err != nil {
		if codegurus.IsConflict(err) {
			log.Info("parent record already exists")
			// Read the record back so a converged duplicate attempt is
			// indistinguishable from the record having existed all along.
			if existing, lookupErr := authed.Parents.Me(ctx); lookupErr == nil {
				return existing, nil
			}
			return nil, nil
		}
		return nil, &Error{Stage: StageRegisterParent, Reason: reasonFor(err), Err: err}
	}
	return parent, nil
}

var errRoleMismatch = errors.New("role mismatch")

// reasonFor derives the user-facing reason for a failure: the backend's
// structured detail when present, the error text otherwise, and a
// generic fallback last.
func reasonFor(err error) string {
	if apiErr, ok := codegurus.AsAPIError(err); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "registration failed, please try again"
}
