// Package holderrepo implements the write-side persistence of policyholder
// aggregates on PostgreSQL with version-checked saves.
package holderrepo

import (
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PolicyHolderDTO represents the database structure for persisting
// policyholder aggregates. Status and version are stored as plain integers;
// the national ID is stored raw and guarded by a unique index.
type PolicyHolderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	NationalID  string      `gorm:"type:varchar(10);not null;uniqueIndex"`
	Name        string      `gorm:"type:varchar(255);not null"`
	Gender      int         `gorm:"type:smallint;not null"`
	BirthDate   time.Time   `gorm:"type:date;not null"`
	MobilePhone string      `gorm:"type:varchar(10);not null"`
	Email       string      `gorm:"type:varchar(255);not null"`
	ZipCode     string      `gorm:"type:varchar(6);not null"`
	City        string      `gorm:"type:varchar(100);not null"`
	District    string      `gorm:"type:varchar(100);not null"`
	Street      string      `gorm:"type:varchar(255);not null"`
	Status      int         `gorm:"type:smallint;not null"`
	Version     int         `gorm:"type:int;not null"`
	Policies    []PolicyDTO `gorm:"foreignKey:PolicyHolderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "policy_holders".
func (PolicyHolderDTO) TableName() string {
	return "policy_holders"
}

// PolicyDTO represents the database structure for persisting policy entities.
// Links to the owning holder via foreign key.
type PolicyDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PolicyHolderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PolicyType     int             `gorm:"type:smallint;not null"`
	Premium        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	SumInsured     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StartDate      time.Time       `gorm:"type:date;not null"`
	EndDate        time.Time       `gorm:"type:date;not null"`
	Status         int             `gorm:"type:smallint;not null"`
	Version        int             `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "policies".
func (PolicyDTO) TableName() string {
	return "policies"
}

// fromDomain converts a policyholder aggregate to its database representation.
func fromDomain(holder *policyholder.PolicyHolder) PolicyHolderDTO {
	holderID := holder.ID().Bytes()
	policies := make([]PolicyDTO, 0, len(holder.Policies()))

	for _, p := range holder.Policies() {
		policies = append(policies, PolicyDTO{
			ID:             p.ID().Bytes(),
			PolicyHolderID: holderID,
			PolicyType:     int(p.PolicyType()),
			Premium:        p.Premium().Amount(),
			SumInsured:     p.SumInsured().Amount(),
			StartDate:      p.StartDate(),
			EndDate:        p.EndDate(),
			Status:         int(p.Status()),
			Version:        p.Version(),
		})
	}

	return PolicyHolderDTO{
		ID:          holderID,
		NationalID:  holder.NationalID().Value(),
		Name:        holder.PersonalInfo().Name(),
		Gender:      int(holder.PersonalInfo().Gender()),
		BirthDate:   holder.PersonalInfo().BirthDate(),
		MobilePhone: holder.ContactInfo().MobilePhone(),
		Email:       holder.ContactInfo().Email(),
		ZipCode:     holder.Address().ZipCode(),
		City:        holder.Address().City(),
		District:    holder.Address().District(),
		Street:      holder.Address().Street(),
		Status:      int(holder.Status()),
		Version:     holder.Version(),
		Policies:    policies,
	}
}

// toDomain converts a database DTO back to a policyholder aggregate using the
// reconstitution constructors, so the pending-event buffer stays empty.
func toDomain(dto PolicyHolderDTO) (*policyholder.PolicyHolder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	nationalID, err := kernel.NewNationalID(dto.NationalID)
	if err != nil {
		return nil, err
	}

	personalInfo, err := kernel.NewPersonalInfo(dto.Name, kernel.Gender(dto.Gender), dto.BirthDate)
	if err != nil {
		return nil, err
	}

	contactInfo, err := kernel.NewContactInfo(dto.MobilePhone, dto.Email)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.ZipCode, dto.City, dto.District, dto.Street)
	if err != nil {
		return nil, err
	}

	policies := make([]*policyholder.Policy, 0, len(dto.Policies))
	for _, policyDTO := range dto.Policies {
		p, policyErr := policyToDomain(policyDTO)
		if policyErr != nil {
			return nil, policyErr
		}
		policies = append(policies, p)
	}

	return policyholder.RestorePolicyHolder(id, nationalID, personalInfo, contactInfo, address,
		policyholder.HolderStatus(dto.Status), dto.Version, policies)
}

func policyToDomain(dto PolicyDTO) (*policyholder.Policy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	premium, err := kernel.NewMoney(dto.Premium)
	if err != nil {
		return nil, err
	}

	sumInsured, err := kernel.NewMoney(dto.SumInsured)
	if err != nil {
		return nil, err
	}

	return policyholder.RestorePolicy(id, policyholder.PolicyType(dto.PolicyType),
		premium, sumInsured, dto.StartDate, dto.EndDate,
		policyholder.PolicyStatus(dto.Status), dto.Version)
}
