// Package http exposes the command and query use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"insurance/internal/core/application/usecases/commands"
	"insurance/internal/core/application/usecases/queries"
	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// Server coordinates between HTTP handlers and application use cases.
// Command routes return the write-side outcome only; reads always go through
// the query handlers and therefore never expose raw national IDs.
type Server struct {
	// Command handlers
	createHolderHandler      commands.CreatePolicyHolderCommandHandler
	addPolicyHandler         commands.AddPolicyCommandHandler
	updateContactInfoHandler commands.UpdateContactInfoCommandHandler
	updateAddressHandler     commands.UpdateAddressCommandHandler
	deactivateHandler        commands.DeactivatePolicyHolderCommandHandler

	// Query handlers
	getHolderHandler             queries.GetPolicyHolderQueryHandler
	getHolderByNationalIDHandler queries.GetPolicyHolderByNationalIDQueryHandler
	searchByNameHandler          queries.SearchPolicyHoldersByNameQueryHandler
	listByStatusHandler          queries.ListPolicyHoldersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createHolderHandler commands.CreatePolicyHolderCommandHandler,
	addPolicyHandler commands.AddPolicyCommandHandler,
	updateContactInfoHandler commands.UpdateContactInfoCommandHandler,
	updateAddressHandler commands.UpdateAddressCommandHandler,
	deactivateHandler commands.DeactivatePolicyHolderCommandHandler,
	getHolderHandler queries.GetPolicyHolderQueryHandler,
	getHolderByNationalIDHandler queries.GetPolicyHolderByNationalIDQueryHandler,
	searchByNameHandler queries.SearchPolicyHoldersByNameQueryHandler,
	listByStatusHandler queries.ListPolicyHoldersByStatusQueryHandler,
) *Server {
	return &Server{
		createHolderHandler:          createHolderHandler,
		addPolicyHandler:             addPolicyHandler,
		updateContactInfoHandler:     updateContactInfoHandler,
		updateAddressHandler:         updateAddressHandler,
		deactivateHandler:            deactivateHandler,
		getHolderHandler:             getHolderHandler,
		getHolderByNationalIDHandler: getHolderByNationalIDHandler,
		searchByNameHandler:          searchByNameHandler,
		listByStatusHandler:          listByStatusHandler,
	}
}

// RegisterRoutes wires all policyholder routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/policyholders", s.CreatePolicyHolder)
	api.GET("/policyholders", s.ListPolicyHoldersByStatus)
	api.GET("/policyholders/search", s.SearchPolicyHoldersByName)
	api.GET("/policyholders/national-id/:nationalId", s.GetPolicyHolderByNationalID)
	api.GET("/policyholders/:id", s.GetPolicyHolder)
	api.DELETE("/policyholders/:id", s.DeactivatePolicyHolder)
	api.POST("/policyholders/:id/policies", s.AddPolicy)
	api.PUT("/policyholders/:id/contact-info", s.UpdateContactInfo)
	api.PUT("/policyholders/:id/address", s.UpdateAddress)
}

// CreatePolicyHolder handles POST /api/v1/policyholders.
func (s *Server) CreatePolicyHolder(ctx echo.Context) error {
	var request CreatePolicyHolderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	nationalID, err := kernel.NewNationalID(request.NationalID)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	gender, err := kernel.GenderFromString(request.Gender)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	birthDate, err := time.Parse(dateLayout, request.BirthDate)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid birth date: expected YYYY-MM-DD")
	}

	personalInfo, err := kernel.NewPersonalInfo(request.Name, gender, birthDate)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	contactInfo, err := kernel.NewContactInfo(request.MobilePhone, request.Email)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	address, err := kernel.NewAddress(request.ZipCode, request.City, request.District, request.Street)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	holderID := kernel.NewUUID()
	cmd, err := commands.NewCreatePolicyHolderCommand(holderID, nationalID, personalInfo, contactInfo, address)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	if err = s.createHolderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatePolicyHolderResponse{ID: holderID.String()})
}

// AddPolicy handles POST /api/v1/policyholders/:id/policies.
func (s *Server) AddPolicy(ctx echo.Context) error {
	holderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	var request AddPolicyRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	policyType, err := policyholder.PolicyTypeFromString(request.PolicyType)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	premium, err := kernel.MoneyFromString(request.Premium)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	sumInsured, err := kernel.MoneyFromString(request.SumInsured)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	startDate, err := time.Parse(dateLayout, request.StartDate)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid start date: expected YYYY-MM-DD")
	}

	endDate, err := time.Parse(dateLayout, request.EndDate)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid end date: expected YYYY-MM-DD")
	}

	policyID := kernel.NewUUID()
	cmd, err := commands.NewAddPolicyCommand(
		holderID, policyID, policyType, premium, sumInsured, startDate, endDate)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	if err = s.addPolicyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddPolicyResponse{PolicyID: policyID.String()})
}

// UpdateContactInfo handles PUT /api/v1/policyholders/:id/contact-info.
func (s *Server) UpdateContactInfo(ctx echo.Context) error {
	holderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	var request UpdateContactInfoRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	contactInfo, err := kernel.NewContactInfo(request.MobilePhone, request.Email)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	cmd, err := commands.NewUpdateContactInfoCommand(holderID, contactInfo)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	if err = s.updateContactInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAddress handles PUT /api/v1/policyholders/:id/address.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	holderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	var request UpdateAddressRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	address, err := kernel.NewAddress(request.ZipCode, request.City, request.District, request.Street)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	cmd, err := commands.NewUpdateAddressCommand(holderID, address)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	if err = s.updateAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivatePolicyHolder handles DELETE /api/v1/policyholders/:id.
// The holder is soft-deleted: the record stays and queries keep serving it
// with the Inactive status.
func (s *Server) DeactivatePolicyHolder(ctx echo.Context) error {
	holderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	cmd, err := commands.NewDeactivatePolicyHolderCommand(holderID)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	if err = s.deactivateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPolicyHolder handles GET /api/v1/policyholders/:id.
func (s *Server) GetPolicyHolder(ctx echo.Context) error {
	holderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	query, err := queries.NewGetPolicyHolderQuery(holderID)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	holder, err := s.getHolderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPolicyHolderResponse(*holder))
}

// GetPolicyHolderByNationalID handles GET /api/v1/policyholders/national-id/:nationalId.
func (s *Server) GetPolicyHolderByNationalID(ctx echo.Context) error {
	nationalID, err := kernel.NewNationalID(ctx.Param("nationalId"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	query, err := queries.NewGetPolicyHolderByNationalIDQuery(nationalID)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	holder, err := s.getHolderByNationalIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPolicyHolderResponse(*holder))
}

// SearchPolicyHoldersByName handles GET /api/v1/policyholders/search?name=...
func (s *Server) SearchPolicyHoldersByName(ctx echo.Context) error {
	page, size := pagingParams(ctx)

	query, err := queries.NewSearchPolicyHoldersByNameQuery(ctx.QueryParam("name"), page, size)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	result, err := s.searchByNameHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK,
		toPagedResponse(result.Holders, result.Total, result.Page, result.Size))
}

// ListPolicyHoldersByStatus handles GET /api/v1/policyholders?status=...
func (s *Server) ListPolicyHoldersByStatus(ctx echo.Context) error {
	status, err := policyholder.HolderStatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	page, size := pagingParams(ctx)
	query, err := queries.NewListPolicyHoldersByStatusQuery(status, page, size)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	result, err := s.listByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK,
		toPagedResponse(result.Holders, result.Total, result.Page, result.Size))
}

func pagingParams(ctx echo.Context) (int, int) {
	page := defaultPage
	if raw := ctx.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	size := defaultSize
	if raw := ctx.QueryParam("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}

	return page, size
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// errorFromDomain maps domain and application errors to HTTP status codes.
func errorFromDomain(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrNationalIDAlreadyRegistered),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, errs.ErrInvalidState):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrHolderMustBeAdult):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
