package git

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
	"git.home.luguber.info/inful/rulesgen/internal/logfields"
	"git.home.luguber.info/inful/rulesgen/internal/retry"
)

// rateLimitMultiplier stretches the backoff delay for rate-limited attempts.
const rateLimitMultiplier = 3

// withRetry runs fn, retrying transient failures according to pol.
// Errors that are not classified retryable are returned immediately.
func withRetry(ctx context.Context, pol retry.Policy, op, url string, fn func() (string, error)) (string, error) {
	if pol.MaxRetries <= 0 {
		return fn()
	}

	var lastErr error
	for attempt := 0; attempt <= pol.MaxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("Retrying git operation", logfields.Action(op), logfields.URL(url), slog.Int("attempt", attempt))
		}
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err
		if isPermanentGitError(err) {
			return "", err
		}
		if attempt == pol.MaxRetries {
			break
		}
		delay := pol.Delay(attempt + 1)
		if errors.GetRetryStrategy(err) == errors.RetryRateLimit {
			delay *= rateLimitMultiplier
		}
		if werr := retry.Wait(ctx, delay); werr != nil {
			return "", errors.WrapError(werr, errors.CategoryRuntime, "git "+op+" cancelled").
				WithContext("url", url).
				Build()
		}
	}

	if ce, ok := errors.AsClassified(lastErr); ok {
		return "", ce.WithContext("attempts", pol.MaxRetries+1)
	}
	return "", lastErr
}

func isPermanentGitError(err error) bool {
	ce, ok := errors.AsClassified(err)
	if !ok {
		return true
	}
	return !ce.CanRetry()
}
