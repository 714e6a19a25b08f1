package holderrepo

import (
	"context"
	"errors"
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

// GormPolicyHolderRepository implements ports.PolicyHolderRepository using GORM.
//
// Saves are version-checked: an update only lands if the stored row still
// carries the version the aggregate was loaded at, otherwise the caller gets
// a ConcurrencyConflictError and nothing is written.
type GormPolicyHolderRepository struct {
	db *gorm.DB
}

// NewGormPolicyHolderRepository creates a new GORM policyholder repository.
func NewGormPolicyHolderRepository(db *gorm.DB) *GormPolicyHolderRepository {
	return &GormPolicyHolderRepository{db: db}
}

// Save persists the aggregate with its policies in one transaction.
func (r *GormPolicyHolderRepository) Save(ctx context.Context, holder *policyholder.PolicyHolder) error {
	if err := holder.Validate(); err != nil {
		return err
	}

	dto := fromDomain(holder)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dto.Version == 0 {
			return insertHolder(tx, dto)
		}
		return updateHolder(tx, dto, holder.PersistedVersion())
	})
}

func insertHolder(tx *gorm.DB, dto PolicyHolderDTO) error {
	if err := tx.Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("nationalId", err)
		}
		return err
	}
	return nil
}

func updateHolder(tx *gorm.DB, dto PolicyHolderDTO, expectedVersion int) error {
	result := tx.Model(&PolicyHolderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Updates(map[string]any{
			"name":         dto.Name,
			"gender":       dto.Gender,
			"birth_date":   dto.BirthDate,
			"mobile_phone": dto.MobilePhone,
			"email":        dto.Email,
			"zip_code":     dto.ZipCode,
			"city":         dto.City,
			"district":     dto.District,
			"street":       dto.Street,
			"status":       dto.Status,
			"version":      dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError(dto.ID.String(), expectedVersion)
	}

	if len(dto.Policies) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Policies).Error
}

// Get retrieves an aggregate by ID with all owned policies.
func (r *GormPolicyHolderRepository) Get(ctx context.Context, id kernel.UUID) (*policyholder.PolicyHolder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PolicyHolderDTO
	if err := r.db.WithContext(ctx).Preload("Policies").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("policyHolder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNationalID retrieves an aggregate by its unique national ID.
func (r *GormPolicyHolderRepository) GetByNationalID(
	ctx context.Context,
	nationalID kernel.NationalID,
) (*policyholder.PolicyHolder, error) {
	if err := nationalID.Validate(); err != nil {
		return nil, err
	}

	var dto PolicyHolderDTO
	if err := r.db.WithContext(ctx).Preload("Policies").
		First(&dto, "national_id = ?", nationalID.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("nationalId", nationalID.Masked())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByNationalID reports whether any holder carries the national ID.
func (r *GormPolicyHolderRepository) ExistsByNationalID(
	ctx context.Context,
	nationalID kernel.NationalID,
) (bool, error) {
	if err := nationalID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&PolicyHolderDTO{}).
		Where("national_id = ?", nationalID.Value()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllWithActivePoliciesEndingBefore retrieves every holder owning at least
// one Active policy whose end date precedes the cutoff.
func (r *GormPolicyHolderRepository) GetAllWithActivePoliciesEndingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*policyholder.PolicyHolder, error) {
	var dtos []PolicyHolderDTO
	if err := r.db.WithContext(ctx).
		Preload("Policies").
		Table("policy_holders").
		Select("DISTINCT policy_holders.*").
		Joins("JOIN policies ON policies.policy_holder_id = policy_holders.id").
		Where("policies.status = ? AND policies.end_date < ?",
			int(policyholder.PolicyStatusActive), cutoff).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	holders := make([]*policyholder.PolicyHolder, 0, len(dtos))
	for _, dto := range dtos {
		holder, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		holders = append(holders, holder)
	}

	return holders, nil
}

// Delete physically removes the aggregate; owned policies go with it via the
// cascading foreign key.
func (r *GormPolicyHolderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PolicyHolderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("policyHolder", id.String())
	}
	return nil
}
