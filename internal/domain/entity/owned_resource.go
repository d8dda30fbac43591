package entity

import "github.com/google/uuid"

// OwnedResource is anything with a single owning identity. Mutations require the actor to be that owner.
type OwnedResource interface {
	OwnerID() uuid.UUID
}
