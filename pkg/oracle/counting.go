/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: counting.go
Description: Counting decorator for membership oracles. Wraps any oracle and
tracks how many batches and individual queries pass through, with optional
debug logging. The CLI reports these totals after a learning run.
*/

package oracle

import (
	"context"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// CountingOracle wraps a membership oracle and counts traffic.
type CountingOracle[I comparable, D comparable] struct {
	inner   interfaces.MembershipOracle[I, D]
	logger  *logrus.Logger
	batches int64
	queries int64
}

// NewCountingOracle wraps inner with batch and query counting. The logger
// may be nil to disable logging.
func NewCountingOracle[I comparable, D comparable](inner interfaces.MembershipOracle[I, D], logger *logrus.Logger) *CountingOracle[I, D] {
	return &CountingOracle[I, D]{inner: inner, logger: logger}
}

// Process forwards the batch to the wrapped oracle. Counters advance only
// when the inner oracle succeeds, so totals reflect installed answers.
func (o *CountingOracle[I, D]) Process(ctx context.Context, queries []*interfaces.MembershipQuery[I, D]) error {
	if err := o.inner.Process(ctx, queries); err != nil {
		return err
	}
	o.batches++
	o.queries += int64(len(queries))
	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{
			"batch_size":    len(queries),
			"total_batches": o.batches,
			"total_queries": o.queries,
		}).Debug("Membership batch answered")
	}
	return nil
}

// Batches returns the number of successful batches processed.
func (o *CountingOracle[I, D]) Batches() int64 {
	return o.batches
}

// Queries returns the number of queries answered.
func (o *CountingOracle[I, D]) Queries() int64 {
	return o.queries
}
