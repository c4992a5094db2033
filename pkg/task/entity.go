package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

// Status enumerates the workflow states a task can be in.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusOverdue   Status = "Overdue"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOverdue, StatusCompleted:
		return true
	}
	return false
}

// Priority enumerates task urgency levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

const (
	titleMinLen       = 3
	titleMaxLen       = 100
	descriptionMinLen = 10
	descriptionMaxLen = 500
)

// Task is a unit of work owned by exactly one user. OwnerID is set at
// creation and never changes; every query is scoped to it.
type Task struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Length limits are in characters, not bytes, matching the boundary DTO
// validation.
func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < titleMinLen || n > titleMaxLen {
		return apperror.NewValidation(fmt.Sprintf("Title must be between %d and %d characters", titleMinLen, titleMaxLen))
	}
	return nil
}

func validateDescription(description string) error {
	if n := utf8.RuneCountInString(description); n < descriptionMinLen || n > descriptionMaxLen {
		return apperror.NewValidation(fmt.Sprintf("Description must be between %d and %d characters", descriptionMinLen, descriptionMaxLen))
	}
	return nil
}

// validateDueDate rejects dates before today's midnight UTC, so a due date
// of today is still acceptable.
func validateDueDate(dueDate time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dueDate.Before(today) {
		return apperror.NewValidation("Due date cannot be in the past")
	}
	return nil
}

func normalizeText(s string) string { return strings.TrimSpace(s) }
