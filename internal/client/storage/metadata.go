package storage

import (
	"context"

	"github.com/iudanet/vcresolve/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing cached server metadata
type MetadataStorage interface {
	// SaveServiceLevel saves the service level reported by the server
	SaveServiceLevel(ctx context.Context, level models.ServiceLevel) error

	// GetServiceLevel retrieves the cached service level
	// Returns ErrServiceLevelNotFound if the server was never queried
	GetServiceLevel(ctx context.Context) (models.ServiceLevel, error)
}
