package signup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingProvider records how often it was asked.
type countingProvider struct {
	tokens []string // answers per call, last one repeats
	errs   []error
	calls  int
}

func (p *countingProvider) AcquireToken(context.Context) (string, error) {
	i := p.calls
	p.calls++
	if i < len(p.errs) && p.errs[i] != nil {
		return "", p.errs[i]
	}
	if len(p.tokens) == 0 {
		return "", nil
	}
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i], nil
}

func TestAcquireToken_PrimaryWins(t *testing.T) {
	primary := &countingProvider{tokens: []string{"tok-primary"}}
	fallback := &countingProvider{tokens: []string{"tok-fallback"}}

	token, err := acquireToken(context.Background(), primary, fallback, true, zeroTokenRetry, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "tok-primary", token)
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, fallback.calls, "fallback untouched when primary delivers")
}

func TestAcquireToken_FallbackOnPrimaryFailure(t *testing.T) {
	primary := &countingProvider{errs: []error{errors.New("provider not initialized")}}
	fallback := &countingProvider{tokens: []string{"tok-fallback"}}

	token, err := acquireToken(context.Background(), primary, fallback, true, zeroTokenRetry, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "tok-fallback", token)
}

func TestAcquireToken_FallbackOnEmptyPrimary(t *testing.T) {
	primary := &countingProvider{tokens: []string{""}}
	fallback := &countingProvider{tokens: []string{"tok-fallback"}}

	token, err := acquireToken(context.Background(), primary, fallback, true, zeroTokenRetry, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "tok-fallback", token)
}

func TestAcquireToken_SignedInRetriesThePair(t *testing.T) {
	// First pass: both empty. Second pass: primary delivers, as if the
	// session finished hydrating during the wait.
	primary := &countingProvider{tokens: []string{"", "tok-late"}}
	fallback := &countingProvider{tokens: []string{""}}

	token, err := acquireToken(context.Background(), primary, fallback, true, zeroTokenRetry, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "tok-late", token)
	assert.Equal(t, 2, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestAcquireToken_SignedInExhaustsAfterOneRetry(t *testing.T) {
	primary := &countingProvider{}
	fallback := &countingProvider{}

	_, err := acquireToken(context.Background(), primary, fallback, true, zeroTokenRetry, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, errTokenAbsent)
	assert.Equal(t, 2, primary.calls, "exactly one retry of the pair")
	assert.Equal(t, 2, fallback.calls)
}

func TestAcquireToken_NotSignedInDoesNotRetry(t *testing.T) {
	primary := &countingProvider{}

	_, err := acquireToken(context.Background(), primary, nil, false, zeroTokenRetry, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, 1, primary.calls, "waiting cannot help a signed-out identity")
}

func TestAcquireToken_NilFallback(t *testing.T) {
	primary := &countingProvider{tokens: []string{"tok"}}

	token, err := acquireToken(context.Background(), primary, nil, true, zeroTokenRetry, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestStaticProvider(t *testing.T) {
	token, err := StaticProvider("fixed").AcquireToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)
}

func TestRetryPolicy_OrDefault(t *testing.T) {
	def := RetryPolicy{Attempts: 2, Interval: 500}

	assert.Equal(t, def, RetryPolicy{}.orDefault(def), "zero value takes the default")
	explicit := RetryPolicy{Attempts: 3, Interval: 0}
	assert.Equal(t, explicit, explicit.orDefault(def), "explicit zero interval is honored")
}

func TestRetryDo_StopsOnNonRetryable(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0
	err := retryDo(context.Background(), RetryPolicy{Attempts: 3}, func(context.Context) (bool, error) {
		calls++
		return false, fatal
	})
	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestRetryDo_BoundsAttempts(t *testing.T) {
	transient := errors.New("transient")
	calls := 0
	err := retryDo(context.Background(), RetryPolicy{Attempts: 3}, func(context.Context) (bool, error) {
		calls++
		return true, transient
	})
	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}
