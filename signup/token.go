package signup

import (
	"context"
	"errors"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// TokenProvider obtains a bearer token for the current identity session.
//
// An empty token with a nil error means the provider has no token yet,
// which is normal while the identity session is still hydrating. Errors
// are reserved for failures of the provider itself.
type TokenProvider interface {
	AcquireToken(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a function to the TokenProvider interface.
type TokenProviderFunc func(ctx context.Context) (string, error)

// AcquireToken implements TokenProvider.
func (f TokenProviderFunc) AcquireToken(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticProvider returns a fixed token. Useful for tests and for CLI
// invocations where the caller already holds a token.
func StaticProvider(token string) TokenProvider {
	return TokenProviderFunc(func(context.Context) (string, error) {
		return token, nil
	})
}

// errTokenAbsent signals that no provider yielded a token on this pass.
var errTokenAbsent = errors.New("no token available")

// acquireToken runs the token acquisition policy: try the primary
// provider, then the fallback; if both come up empty and the identity is
// known to be signed in, wait one interval and repeat the pair, up to
// the policy's attempt bound. Identities that are not signed in get a
// single pass, since waiting cannot help them.
func acquireToken(ctx context.Context, primary, fallback TokenProvider, signedIn bool, policy RetryPolicy, log *zap.Logger) (string, error) {
	var token string

	err := retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		token = tryProviders(ctx, primary, fallback, log)
		if token != "" {
			return nil
		}
		if !signedIn {
			return errTokenAbsent
		}
		return retry.RetryableError(errTokenAbsent)
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// tryProviders attempts the primary then the fallback provider, returning
// the first non-empty token. Provider failures are logged and treated as
// absence so the loop can move on.
func tryProviders(ctx context.Context, primary, fallback TokenProvider, log *zap.Logger) string {
	for _, p := range []TokenProvider{primary, fallback} {
		if p == nil {
			continue
		}
		token, err := p.AcquireToken(ctx)
		if err != nil {
			log.Warn("token provider failed", zap.Error(err))
			continue
		}
		if token != "" {
			return token
		}
	}
	return ""
}
