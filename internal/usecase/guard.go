package usecase

import (
	"context"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"

	"github.com/google/uuid"
)

// Finder loads a resource by id. It must return a NotFound AppError when the resource is missing.
type Finder[R entity.OwnedResource] func(ctx context.Context, id uuid.UUID) (R, error)

// RequireOwnership loads the resource and checks that actorID owns it.
// A missing resource is reported before any ownership comparison.
func RequireOwnership[R entity.OwnedResource](ctx context.Context, find Finder[R], resourceID, actorID uuid.UUID) (R, error) {
	resource, err := find(ctx, resourceID)
	if err != nil {
		var zero R

		return zero, err
	}

	if resource.OwnerID() != actorID {
		var zero R

		return zero, domainerrors.ErrForbidden
	}

	return resource, nil
}
