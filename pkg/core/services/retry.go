package services

import (
	"errors"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// retryOnConflict runs op, retrying exactly once when it reports a
// concurrent-write conflict. A second conflict is surfaced to the caller
// so the end user can decide to try again.
func retryOnConflict(logger *zap.Logger, operation string, op func() error) error {
	err := op()
	if errors.Is(err, db.ErrConflict) {
		logger.Debug("Retrying after write conflict", zap.String("operation", operation))
		err = op()
	}
	return err
}
