// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/luxfi/atomicexport/pkg/constants"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// RetryUnavailable calls fn until it succeeds, fails with anything other than
// constants.ErrNetworkUnavailable, or runs out of attempts. Only the last
// error is returned.
func RetryUnavailable[T any](
	ctx context.Context,
	attempts uint,
	delay time.Duration,
	log luxlog.Logger,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	if attempts == 0 {
		attempts = 1
	}
	var result T
	err := retry.Do(
		func() error {
			var err error
			result, err = fn(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, constants.ErrNetworkUnavailable)
		}),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warn("node unavailable, retrying",
				zap.Uint("attempt", attempt+1),
				zap.Uint("attempts", attempts),
				zap.Error(err),
			)
		}),
	)
	return result, err
}
