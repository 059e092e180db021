package handlers

import (
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document metadata endpoints
type DocumentHandler struct {
	documentService *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// List returns all documents
// @Summary List documents
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	documents, err := h.documentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list documents")
	}
	return listResponse(c, "Documents retrieved successfully", documents)
}

// Get returns one document
// @Summary Get document
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	document, err := h.documentService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return response.InternalServerError(c, "Failed to get document")
	}
	return response.Success(c, "Document retrieved successfully", document)
}

// Create registers a document
// @Summary Create document
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DocumentInput true "Document data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var input services.DocumentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	document, err := h.documentService.Create(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create document")
	}
	return response.Created(c, "Document created successfully", document)
}

// Update fully replaces the mutable fields of a document
// @Summary Update document
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param body body services.DocumentInput true "Document data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	var input services.DocumentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	document, err := h.documentService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return response.InternalServerError(c, "Failed to update document")
	}
	return response.Success(c, "Document updated successfully", document)
}

// Delete removes a document record
// @Summary Delete document
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	if err := h.documentService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return response.InternalServerError(c, "Failed to delete document")
	}
	return response.Success(c, "Document deleted successfully", nil)
}
