package services

import (
	"context"
	"errors"
	"path"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentService handles document business logic
type DocumentService struct {
	documentRepo repositories.DocumentRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(documentRepo repositories.DocumentRepository) *DocumentService {
	return &DocumentService{documentRepo: documentRepo}
}

// DocumentInput represents document create/update input
type DocumentInput struct {
	FileName    string `json:"file_name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=Report Minutes Regulation Communication Other"`
	FilePath    string `json:"file_path"`
	FileSize    *int64 `json:"file_size"`
	Description string `json:"description"`
}

// Create creates a new document record. When the client doesn't supply a
// storage path, one is assigned with a collision-free name.
func (s *DocumentService) Create(ctx context.Context, input *DocumentInput) (*models.Document, error) {
	filePath := input.FilePath
	if filePath == "" {
		filePath = "uploads/" + uuid.NewString() + path.Ext(input.FileName)
	}

	document := &models.Document{
		FileName:    input.FileName,
		Type:        input.Type,
		FilePath:    filePath,
		FileSize:    input.FileSize,
		Description: input.Description,
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

// GetByID gets a document by ID
func (s *DocumentService) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return document, nil
}

// Update fully replaces the mutable fields of a document
func (s *DocumentService) Update(ctx context.Context, id uint, input *DocumentInput) (*models.Document, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	filePath := input.FilePath
	if filePath == "" {
		filePath = existing.FilePath
	}

	document := &models.Document{
		ID:          existing.ID,
		FileName:    input.FileName,
		Type:        input.Type,
		FilePath:    filePath,
		FileSize:    input.FileSize,
		Description: input.Description,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

// Delete deletes a document
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	err := s.documentRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrDocumentNotFound
	}
	return err
}

// List lists all documents, newest first
func (s *DocumentService) List(ctx context.Context) ([]*models.Document, error) {
	return s.documentRepo.List(ctx)
}
