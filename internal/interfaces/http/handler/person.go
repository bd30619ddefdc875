package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peoplemanager/backend/internal/application/people"
	"github.com/peoplemanager/backend/internal/interfaces/http/dto"
	"github.com/peoplemanager/backend/internal/interfaces/http/middleware"
)

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	BaseHandler
	personService *people.PersonService
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService *people.PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// Create handles POST /people
func (h *PersonHandler) Create(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		h.ErrorWithCode(c, dto.ErrCodeInvalidBirthDate, "Birth date must be in YYYY-MM-DD format")
		return
	}

	result, err := h.personService.Create(c.Request.Context(), people.CreatePersonInput{
		Name:        req.Name,
		CPF:         req.CPF,
		Password:    req.Password,
		BirthDate:   birthDate,
		Gender:      optionalString(req.Gender),
		Email:       optionalString(req.Email),
		Naturality:  optionalString(req.Naturality),
		Nationality: optionalString(req.Nationality),
		Address:     optionalString(req.Address),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toPersonResponse(*result))
}

// List handles GET /people
func (h *PersonHandler) List(c *gin.Context) {
	results, err := h.personService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPersonResponses(results))
}

// GetByID handles GET /people/:id
func (h *PersonHandler) GetByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	result, err := h.personService.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPersonResponse(*result))
}

// GetByCPF handles GET /people/by-cpf/:cpf
func (h *PersonHandler) GetByCPF(c *gin.Context) {
	cpf := c.Param("cpf")
	if cpf == "" {
		h.BadRequest(c, "CPF is required")
		return
	}

	result, err := h.personService.GetByCPF(c.Request.Context(), cpf)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPersonResponse(*result))
}

// Update handles PATCH /people/:id
func (h *PersonHandler) Update(c *gin.Context) {
	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	var req UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	patch := people.UpdatePersonInput{
		Name:        patchString(req.Name),
		CPF:         patchString(req.CPF),
		Gender:      patchString(req.Gender),
		Email:       patchString(req.Email),
		Naturality:  patchString(req.Naturality),
		Nationality: patchString(req.Nationality),
		Address:     patchString(req.Address),
	}

	if req.BirthDate != nil && *req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
		if err != nil {
			h.ErrorWithCode(c, dto.ErrCodeInvalidBirthDate, "Birth date must be in YYYY-MM-DD format")
			return
		}
		patch.BirthDate = &birthDate
	}

	result, err := h.personService.Update(c.Request.Context(), uriReq.ID, patch)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPersonResponse(*result))
}

// Delete handles DELETE /people/:id
func (h *PersonHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid person ID")
		return
	}

	if err := h.personService.Delete(c.Request.Context(), req.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
