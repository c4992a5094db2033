package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

// CreateInput carries the fields a caller may supply on creation. Status and
// Priority default to Pending/medium when empty.
type CreateInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
}

// UpdateInput is a partial update: zero-valued fields are left unchanged.
type UpdateInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
}

// UseCase exposes task CRUD and aggregation, every operation scoped to the
// authenticated caller's id.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateInput) (Task, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]Task, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateInput) (Task, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Stats(ctx context.Context, ownerID uuid.UUID) (Stats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService returns the default UseCase implementation. The clock is
// injectable for due-date validation tests.
func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input CreateInput) (Task, error) {
	title := normalizeText(input.Title)
	description := normalizeText(input.Description)
	if title == "" || description == "" || input.DueDate.IsZero() {
		return Task{}, apperror.NewValidation("Title, description, and due date are required")
	}
	if err := validateTitle(title); err != nil {
		return Task{}, err
	}
	if err := validateDescription(description); err != nil {
		return Task{}, err
	}
	if err := validateDueDate(input.DueDate, s.now()); err != nil {
		return Task{}, err
	}

	status := input.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return Task{}, apperror.NewValidation("Status must be either Pending, Overdue, or Completed")
	}
	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return Task{}, apperror.NewValidation("Priority must be either low, medium, or high")
	}

	now := s.now()
	t := Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error) {
	return s.repo.GetByIDForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]Task, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperror.NewValidation("Status must be either Pending, Overdue, or Completed")
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, apperror.NewValidation("Priority must be either low, medium, or high")
	}
	return s.repo.ListByOwner(ctx, ownerID, filter)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateInput) (Task, error) {
	t, err := s.repo.GetByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return Task{}, err
	}

	if title := normalizeText(input.Title); title != "" {
		if err := validateTitle(title); err != nil {
			return Task{}, err
		}
		t.Title = title
	}
	if description := normalizeText(input.Description); description != "" {
		if err := validateDescription(description); err != nil {
			return Task{}, err
		}
		t.Description = description
	}
	if input.Status != "" {
		if !input.Status.Valid() {
			return Task{}, apperror.NewValidation("Status must be either Pending, Overdue, or Completed")
		}
		t.Status = input.Status
	}
	if input.Priority != "" {
		if !input.Priority.Valid() {
			return Task{}, apperror.NewValidation("Priority must be either low, medium, or high")
		}
		t.Priority = input.Priority
	}
	if input.DueDate != nil {
		if err := validateDueDate(*input.DueDate, s.now()); err != nil {
			return Task{}, err
		}
		t.DueDate = *input.DueDate
	}

	t.UpdatedAt = s.now()
	if err := s.repo.UpdateForOwner(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

func (s *service) Stats(ctx context.Context, ownerID uuid.UUID) (Stats, error) {
	return s.repo.StatsByOwner(ctx, ownerID)
}
