package postgres

import (
	"log/slog"

	"secureauth/internal/errors"
	"secureauth/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the credentials table. The unique constraints on
// username and on the demo plaintext column come from the model tags; the
// registration path relies on them for atomic uniqueness.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	logger.Info("Running schema migration")

	if err := db.AutoMigrate(&model.CredentialModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate credentials table")
	}

	return nil
}
