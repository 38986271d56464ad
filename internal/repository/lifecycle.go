// Package repository implements the data access layer for the application.
//
// Every soft-deletable entity shares one lifecycle: reads see live rows only
// (GORM's default deleted_at IS NULL scope), while soft delete and hard delete
// re-check the row's state inside the same transaction as the mutation so two
// concurrent deletes cannot both pass the "not yet deleted" check.
package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"devbits/internal/middleware"
	"devbits/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// softDeletable is satisfied by pointer types of all soft-deletable models.
type softDeletable interface {
	Deleted() bool
}

// softDeleteRow marks the row deleted inside one transaction. The initial read
// is unscoped: it must see already-deleted rows to distinguish "gone" from
// "deleted twice".
func softDeleteRow[E any, PE interface {
	*E
	softDeletable
}](ctx context.Context, db *gorm.DB, entity string, id uuid.UUID) (*E, error) {
	var row E
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewEntityNotFoundError(entity, id)
			}
			return models.NewInternalError(err)
		}
		if PE(&row).Deleted() {
			return models.NewEntityAlreadyDeletedError(entity, id)
		}
		now := time.Now()
		res := tx.Model(&row).Updates(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		// The UPDATE carries GORM's deleted_at IS NULL guard. Zero rows means a
		// concurrent delete tombstoned the row after our read.
		if res.RowsAffected == 0 {
			return models.NewEntityAlreadyDeletedError(entity, id)
		}
		return tx.Unscoped().Where("id = ?", id).First(&row).Error
	})
	if err != nil {
		logStoreError(ctx, entity, "SoftDelete", id, err)
		return nil, err
	}
	return &row, nil
}

// hardDeleteRow physically removes the row after a transactional unscoped
// existence check. Not reachable through any service path; retained for
// administrative and test use.
func hardDeleteRow[E any, PE interface {
	*E
	softDeletable
}](ctx context.Context, db *gorm.DB, entity string, id uuid.UUID) (*E, error) {
	var row E
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewEntityNotFoundError(entity, id)
			}
			return models.NewInternalError(err)
		}
		if err := tx.Unscoped().Delete(&row).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		logStoreError(ctx, entity, "HardDelete", id, err)
		return nil, err
	}
	return &row, nil
}

// logStoreError records failed store calls with their full call context.
// Domain errors (not found, already deleted) are the caller's concern and are
// not logged here.
func logStoreError(ctx context.Context, entity, method string, id uuid.UUID, err error) {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code != models.CodeInternal {
		return
	}
	middleware.Logger.ErrorContext(ctx, "store operation failed",
		slog.String("layer", "repository"),
		slog.String("entity", entity),
		slog.String("method", method),
		slog.String("id", id.String()),
		slog.String("error", err.Error()),
	)
}
