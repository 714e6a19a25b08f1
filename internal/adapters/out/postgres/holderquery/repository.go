// Package holderquery implements the read side of the CQRS split with direct
// SQL against the write-side tables. National IDs are masked before they
// leave this package.
package holderquery

import (
	"context"
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/core/ports"
	"insurance/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPolicyHolderQueryRepository implements ports.PolicyHolderQueryRepository.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GormPolicyHolderQueryRepository struct {
	db *gorm.DB
}

// NewGormPolicyHolderQueryRepository creates a new read-side repository.
func NewGormPolicyHolderQueryRepository(db *gorm.DB) *GormPolicyHolderQueryRepository {
	return &GormPolicyHolderQueryRepository{db: db}
}

const holderColumns = `
	id,
	national_id,
	name,
	gender,
	birth_date,
	mobile_phone,
	email,
	zip_code,
	city,
	district,
	street,
	status,
	version
`

// GetByID retrieves one holder with its policies.
func (r *GormPolicyHolderQueryRepository) GetByID(
	ctx context.Context,
	id string,
) (*ports.PolicyHolderReadModel, error) {
	holderID, err := uuid.Parse(id)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("holderId", err)
	}

	return r.getOne(ctx, "id = ?", holderID, id)
}

// GetByNationalID retrieves one holder with its policies by raw national ID.
// Not-found errors carry the masked form only.
func (r *GormPolicyHolderQueryRepository) GetByNationalID(
	ctx context.Context,
	rawNationalID string,
) (*ports.PolicyHolderReadModel, error) {
	nationalID, err := kernel.NewNationalID(rawNationalID)
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, "national_id = ?", nationalID.Value(), nationalID.Masked())
}

func (r *GormPolicyHolderQueryRepository) getOne(
	ctx context.Context,
	condition string,
	value, display any,
) (*ports.PolicyHolderReadModel, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT `+holderColumns+` FROM policy_holders WHERE `+condition, value).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("policyHolder", display)
	}

	holder, err := scanHolder(rows)
	if err != nil {
		return nil, err
	}

	policies, err := r.policiesOf(ctx, holder.ID)
	if err != nil {
		return nil, err
	}
	holder.Policies = policies

	return &holder, nil
}

func (r *GormPolicyHolderQueryRepository) policiesOf(
	ctx context.Context,
	holderID string,
) ([]ports.PolicyReadModel, error) {
	ownerID, err := uuid.Parse(holderID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("holderId", err)
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			policy_type,
			premium,
			sum_insured,
			start_date,
			end_date,
			status
		FROM policies
		WHERE policy_holder_id = ?
		ORDER BY start_date, id
	`, ownerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := make([]ports.PolicyReadModel, 0)
	for rows.Next() {
		var policy ports.PolicyReadModel
		var id uuid.UUID
		var policyType, status int
		var premium, sumInsured decimal.Decimal

		err = rows.Scan(
			&id,
			&policyType,
			&premium,
			&sumInsured,
			&policy.StartDate,
			&policy.EndDate,
			&status,
		)
		if err != nil {
			return nil, err
		}

		policy.ID = id.String()
		policy.PolicyType = policyholder.PolicyType(policyType).String()
		policy.Premium = premium.String()
		policy.SumInsured = sumInsured.String()
		policy.Status = policyholder.PolicyStatus(status).String()
		policies = append(policies, policy)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return policies, nil
}

// SearchByName retrieves a page of holders whose name contains the keyword,
// case-insensitively, ordered by name. Policies are not loaded.
func (r *GormPolicyHolderQueryRepository) SearchByName(
	ctx context.Context,
	keyword string,
	page, size int,
) ([]ports.PolicyHolderReadModel, error) {
	return r.findPage(ctx,
		"name ILIKE ?", "%"+keyword+"%", page, size)
}

// FindByStatus retrieves a page of holders in the given status, ordered by
// name. Policies are not loaded.
func (r *GormPolicyHolderQueryRepository) FindByStatus(
	ctx context.Context,
	status string,
	page, size int,
) ([]ports.PolicyHolderReadModel, error) {
	holderStatus, err := policyholder.HolderStatusFromString(status)
	if err != nil {
		return nil, err
	}

	return r.findPage(ctx, "status = ?", int(holderStatus), page, size)
}

func (r *GormPolicyHolderQueryRepository) findPage(
	ctx context.Context,
	condition string,
	value any,
	page, size int,
) ([]ports.PolicyHolderReadModel, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT `+holderColumns+` FROM policy_holders WHERE `+condition+`
		 ORDER BY name, id
		 LIMIT ? OFFSET ?`,
		value, size, page*size).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holders := make([]ports.PolicyHolderReadModel, 0)
	for rows.Next() {
		holder, scanErr := scanHolder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		holders = append(holders, holder)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holders, nil
}

// CountByName returns the total number of holders matching the keyword.
func (r *GormPolicyHolderQueryRepository) CountByName(
	ctx context.Context,
	keyword string,
) (int64, error) {
	return r.count(ctx, "name ILIKE ?", "%"+keyword+"%")
}

// CountByStatus returns the total number of holders in the given status.
func (r *GormPolicyHolderQueryRepository) CountByStatus(
	ctx context.Context,
	status string,
) (int64, error) {
	holderStatus, err := policyholder.HolderStatusFromString(status)
	if err != nil {
		return 0, err
	}

	return r.count(ctx, "status = ?", int(holderStatus))
}

func (r *GormPolicyHolderQueryRepository) count(
	ctx context.Context,
	condition string,
	value any,
) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM policy_holders WHERE `+condition, value).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHolder(rows rowScanner) (ports.PolicyHolderReadModel, error) {
	var holder ports.PolicyHolderReadModel
	var id uuid.UUID
	var rawNationalID string
	var gender, status int
	var birthDate time.Time

	err := rows.Scan(
		&id,
		&rawNationalID,
		&holder.Name,
		&gender,
		&birthDate,
		&holder.MobilePhone,
		&holder.Email,
		&holder.ZipCode,
		&holder.City,
		&holder.District,
		&holder.Street,
		&status,
		&holder.Version,
	)
	if err != nil {
		return ports.PolicyHolderReadModel{}, err
	}

	nationalID, err := kernel.NewNationalID(rawNationalID)
	if err != nil {
		return ports.PolicyHolderReadModel{}, err
	}

	holder.ID = id.String()
	holder.MaskedNationalID = nationalID.Masked()
	holder.Gender = kernel.Gender(gender).String()
	holder.BirthDate = birthDate
	holder.Status = policyholder.HolderStatus(status).String()

	return holder, nil
}
