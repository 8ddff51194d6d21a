package handlers

import (
	"errors"
	"log"
	"net/http"

	request "atelie_arq/internal/adapter/http/dto/request"
	response "atelie_arq/internal/adapter/http/dto/response"
	"atelie_arq/internal/domain/entities"
	"atelie_arq/internal/usecase"
	"atelie_arq/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)

// ProposalHandler handles HTTP requests for budget proposals.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// GenerateProposal runs the derivation pipeline for the submitted project
// parameters and returns the full proposal document.
//
// @Summary      Generate a budget proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        payload body request.ProposalRequest true "Project parameters"
// @Success      201 {object} response.ProposalResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /proposals [post]
func (h *ProposalHandler) GenerateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	params, err := payload.ToParameters()
	if err != nil {
		log.Printf("[proposal][handler] invalid request err=%v", err)
		appErr := pkg.NewDomainError("INVALID_PROPOSAL_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.GenerateProposal(c.Request.Context(), params)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBundle(result.Record, result.Bundle))
}

// GetProposal returns a stored derivation snapshot by ID.
//
// @Summary      Get a stored proposal
// @Tags         proposals
// @Produce      json
// @Param        id path string true "Proposal ID"
// @Success      200 {object} response.ProposalRecordResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id := c.Param("id")

	record, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposalRecord(record))
}

// ListProposalsByCliente returns every stored snapshot for a client.
//
// @Summary      List a client's proposals
// @Tags         proposals
// @Produce      json
// @Param        cliente_id path string true "Client ID"
// @Success      200 {array} response.ProposalRecordResponse
// @Router       /clients/{cliente_id}/proposals [get]
func (h *ProposalHandler) ListProposalsByCliente(c *gin.Context) {
	clienteID := c.Param("cliente_id")

	records, err := h.usecase.ListByClienteID(c.Request.Context(), clienteID)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposalRecords(records))
}

func mapProposalError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	var configErr *entities.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_ERROR", validationErr.Error(), err, http.StatusBadRequest)
	case errors.As(err, &configErr):
		// Catalog inconsistencies are the operator's problem, not the caller's.
		return pkg.NewDomainError("CATALOG_ERROR", "Catalog configuration error", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidClienteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
