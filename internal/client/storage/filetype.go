package storage

import (
	"context"

	"github.com/iudanet/vcresolve/internal/models"
)

//go:generate moq -out filetype_mock.go . FileTypeStorage

// FileTypeStorage defines interface for the local file type registry
type FileTypeStorage interface {
	// SaveFileType stores or replaces a file type by name
	SaveFileType(ctx context.Context, fileType *models.FileType) error

	// GetFileTypeByExtension finds the file type registered for the extension (case-insensitive)
	// Returns ErrFileTypeNotFound if there is none
	GetFileTypeByExtension(ctx context.Context, extension string) (*models.FileType, error)

	// ListFileTypes returns all registered file types ordered by name
	ListFileTypes(ctx context.Context) ([]*models.FileType, error)

	// DeleteFileType removes a file type by name
	// Returns ErrFileTypeNotFound if it does not exist
	DeleteFileType(ctx context.Context, name string) error
}
