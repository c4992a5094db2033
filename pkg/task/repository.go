package task

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows, orders and pages an owner's task listing. Zero values
// mean "no filter"; SortBy/SortOrder fall back to createdAt desc; a
// non-positive Limit disables paging.
type ListFilter struct {
	Status    Status
	Priority  Priority
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Stats aggregates an owner's tasks by status and priority.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
	High       int `json:"high"`
	Medium     int `json:"medium"`
	Low        int `json:"low"`
}

// Repository is the persistence port for tasks. Every method that reads or
// mutates an existing task takes the owner id and must filter by it;
// a non-owner's task is reported as NotFound, indistinguishable from absence.
type Repository interface {
	Create(ctx context.Context, t Task) error
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]Task, error)
	UpdateForOwner(ctx context.Context, t Task) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	StatsByOwner(ctx context.Context, ownerID uuid.UUID) (Stats, error)
}
