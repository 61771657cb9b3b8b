package repositories

import (
	"context"

	"potluck/domain"
)

// Backend is the durable side of the store. LoadAll runs once at startup,
// Flush runs after every acknowledged mutation and reconciles the backend
// with the full in-memory state.
type Backend interface {
	LoadAll(ctx context.Context) ([]domain.Item, error)
	Flush(ctx context.Context, items []domain.Item) error
}
