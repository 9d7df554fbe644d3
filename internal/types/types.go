// internal/types/types.go
package types

// EntityID identifies anything stored in the entity registry.
type EntityID uint64
