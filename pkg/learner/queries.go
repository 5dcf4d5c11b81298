/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: queries.go
Description: Batched membership query dispatch for the learner. Every
populate step produces exactly one oracle batch holding one query per still
undefined cell; answers are installed only after the whole batch succeeds so
an oracle failure leaves the table untouched.
*/

package learner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/words"
	"github.com/sirupsen/logrus"
)

// processMembershipQueries fills the cells (prefix, suffix) for the given
// label and suffix sets with a single batched oracle call. Cells that
// already hold a value are skipped, as are duplicate (prefix, suffix) pairs
// within the batch.
func (l *BaselineLStar[I]) processMembershipQueries(ctx context.Context, prefixes, suffixes []words.Word[I]) error {
	batch := make([]*interfaces.MembershipQuery[I, bool], 0, len(prefixes)*len(suffixes))
	seen := make(map[string]struct{}, len(prefixes)*len(suffixes))

	for _, prefix := range prefixes {
		prefixKey, ok := l.alphabet.KeyOf(prefix)
		if !ok {
			return fmt.Errorf("query prefix %s contains symbols outside the alphabet", prefix)
		}
		for _, suffix := range suffixes {
			if l.obs.Defined(prefix, suffix) {
				continue
			}
			suffixKey, ok := l.alphabet.KeyOf(suffix)
			if !ok {
				return fmt.Errorf("query suffix %s contains symbols outside the alphabet", suffix)
			}
			cellKey := prefixKey + "|" + suffixKey
			if _, dup := seen[cellKey]; dup {
				continue
			}
			seen[cellKey] = struct{}{}
			batch = append(batch, &interfaces.MembershipQuery[I, bool]{Prefix: prefix, Suffix: suffix})
		}
	}

	if len(batch) == 0 {
		return nil
	}

	batchID := uuid.New().String()
	l.logger.WithFields(logrus.Fields{
		"learner_id": l.id,
		"batch_id":   batchID,
		"queries":    len(batch),
	}).Debug("Dispatching membership query batch")

	if err := l.oracle.Process(ctx, batch); err != nil {
		return err
	}

	for _, query := range batch {
		if err := l.obs.Record(query.Prefix, query.Suffix, query.Output); err != nil {
			return err
		}
	}

	l.stats.Batches++
	l.stats.Queries += int64(len(batch))
	return nil
}
