package postgres

import (
	"context"

	"secureauth/internal/domain/entity"
	domainerrors "secureauth/internal/domain/errors"
	"secureauth/internal/domain/repository"
	"secureauth/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
// It returns the repository as a domain.CredentialRepository interface, adhering to dependency inversion.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Insert persists a new credential record. Uniqueness is enforced by the
// database constraint, not by a prior read, so concurrent inserts of the same
// username cannot race past a check-then-insert window.
func (repo *credentialRepository) Insert(ctx context.Context, cred *entity.Credential) error {
	credM := fromCredentialDomain(cred)

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		// The demo schema carries a unique constraint on the plaintext column
		// as well; either collision surfaces as a duplicate-username outcome,
		// matching the original tutorial behaviour.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required credential fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert credential")
	}

	// Update the entity with the generated ID and timestamp.
	cred.ID = credM.ID
	cred.CreatedAt = credM.CreatedAt

	return nil
}

// ListAll returns every credential record ordered by ascending id.
// O(n) by design: salted hashes cannot be matched with an indexed lookup, so
// the login matcher enumerates (see the authService Login path).
func (repo *credentialRepository) ListAll(ctx context.Context) ([]*entity.Credential, error) {
	var credsM []*model.CredentialModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&credsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	creds := make([]*entity.Credential, 0, len(credsM))
	for _, credM := range credsM {
		creds = append(creds, toCredentialDomain(credM))
	}

	return creds, nil
}

// FindByUsername retrieves a single record by the plaintext identity column.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credM model.CredentialModel

	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&credM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialDomain(&credM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCredentialDomain converts a GORM CredentialModel to a domain Credential entity.
func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	var plaintext string
	if data.PlaintextPassword != nil {
		plaintext = *data.PlaintextPassword
	}

	return &entity.Credential{
		ID:                data.ID,
		Username:          data.Username,
		UsernameHash:      data.UsernameHash,
		PasswordHash:      data.PasswordHash,
		PlaintextPassword: plaintext,
		CreatedAt:         data.CreatedAt,
	}
}

// fromCredentialDomain converts a domain Credential entity to a GORM CredentialModel for persistence.
func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	credM := &model.CredentialModel{
		ID:           data.ID,
		Username:     data.Username,
		UsernameHash: data.UsernameHash,
		PasswordHash: data.PasswordHash,
	}

	// NULL, not empty string, when demo retention is off; the column carries
	// a unique constraint and empty strings would collide.
	if data.PlaintextPassword != "" {
		plaintext := data.PlaintextPassword
		credM.PlaintextPassword = &plaintext
	}

	return credM
}
