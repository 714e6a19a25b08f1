package http

import "insurance/internal/core/ports"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatePolicyHolderRequest is the body of POST /api/v1/policyholders.
// Dates use the YYYY-MM-DD format; gender is Male, Female or Other.
type CreatePolicyHolderRequest struct {
	NationalID  string `json:"nationalId"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birthDate"`
	MobilePhone string `json:"mobilePhone"`
	Email       string `json:"email"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	District    string `json:"district"`
	Street      string `json:"street"`
}

// CreatePolicyHolderResponse returns the identifier of the new holder.
type CreatePolicyHolderResponse struct {
	ID string `json:"id"`
}

// AddPolicyRequest is the body of POST /api/v1/policyholders/:id/policies.
type AddPolicyRequest struct {
	PolicyType string `json:"policyType"`
	Premium    string `json:"premium"`
	SumInsured string `json:"sumInsured"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// AddPolicyResponse returns the identifier of the new policy.
type AddPolicyResponse struct {
	PolicyID string `json:"policyId"`
}

// UpdateContactInfoRequest is the body of PUT /api/v1/policyholders/:id/contact-info.
// Both fields are required; the replacement is wholesale.
type UpdateContactInfoRequest struct {
	MobilePhone string `json:"mobilePhone"`
	Email       string `json:"email"`
}

// UpdateAddressRequest is the body of PUT /api/v1/policyholders/:id/address.
// All fields are required; the replacement is wholesale.
type UpdateAddressRequest struct {
	ZipCode  string `json:"zipCode"`
	City     string `json:"city"`
	District string `json:"district"`
	Street   string `json:"street"`
}

// PolicyHolderResponse is the read-side projection returned by queries.
// The national ID is always masked.
type PolicyHolderResponse struct {
	ID               string           `json:"id"`
	MaskedNationalID string           `json:"maskedNationalId"`
	Name             string           `json:"name"`
	Gender           string           `json:"gender"`
	BirthDate        string           `json:"birthDate"`
	MobilePhone      string           `json:"mobilePhone"`
	Email            string           `json:"email"`
	ZipCode          string           `json:"zipCode"`
	City             string           `json:"city"`
	District         string           `json:"district"`
	Street           string           `json:"street"`
	Status           string           `json:"status"`
	Version          int              `json:"version"`
	Policies         []PolicyResponse `json:"policies,omitempty"`
}

// PolicyResponse is the read-side projection of one owned policy.
type PolicyResponse struct {
	ID         string `json:"id"`
	PolicyType string `json:"policyType"`
	Premium    string `json:"premium"`
	SumInsured string `json:"sumInsured"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
}

// PagedPolicyHoldersResponse wraps one page of holders with paging metadata.
type PagedPolicyHoldersResponse struct {
	Holders []PolicyHolderResponse `json:"holders"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	Size    int                    `json:"size"`
}

const dateLayout = "2006-01-02"

func toPolicyHolderResponse(model ports.PolicyHolderReadModel) PolicyHolderResponse {
	policies := make([]PolicyResponse, 0, len(model.Policies))
	for _, policy := range model.Policies {
		policies = append(policies, PolicyResponse{
			ID:         policy.ID,
			PolicyType: policy.PolicyType,
			Premium:    policy.Premium,
			SumInsured: policy.SumInsured,
			StartDate:  policy.StartDate.Format(dateLayout),
			EndDate:    policy.EndDate.Format(dateLayout),
			Status:     policy.Status,
		})
	}

	return PolicyHolderResponse{
		ID:               model.ID,
		MaskedNationalID: model.MaskedNationalID,
		Name:             model.Name,
		Gender:           model.Gender,
		BirthDate:        model.BirthDate.Format(dateLayout),
		MobilePhone:      model.MobilePhone,
		Email:            model.Email,
		ZipCode:          model.ZipCode,
		City:             model.City,
		District:         model.District,
		Street:           model.Street,
		Status:           model.Status,
		Version:          model.Version,
		Policies:         policies,
	}
}

func toPagedResponse(holders []ports.PolicyHolderReadModel, total int64, page, size int) PagedPolicyHoldersResponse {
	out := make([]PolicyHolderResponse, 0, len(holders))
	for _, holder := range holders {
		out = append(out, toPolicyHolderResponse(holder))
	}

	return PagedPolicyHoldersResponse{
		Holders: out,
		Total:   total,
		Page:    page,
		Size:    size,
	}
}
