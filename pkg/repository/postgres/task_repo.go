package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/task"
)

// TaskRepository implements task.Repository backed by PostgreSQL (pgx).
// Every query on existing rows filters by owner_id, so a non-owner's task is
// indistinguishable from a missing one.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) (*TaskRepository, error) {
	r := &TaskRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TaskRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			due_date TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tasks_owner_created ON tasks(owner_id, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks(owner_id, status);
	`)
	return err
}

func (r *TaskRepository) Create(ctx context.Context, t task.Task) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, owner_id, title, description, status, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, t.ID, t.OwnerID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *TaskRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (task.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, description, status, priority, due_date, created_at, updated_at
		FROM tasks WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	return scanTask(row)
}

// sortColumns whitelists the sortable fields; anything else falls back to
// created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"dueDate":   "due_date",
	"priority":  "priority",
	"title":     "title",
	"status":    "status",
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter task.ListFilter) ([]task.Task, error) {
	query := `
		SELECT id, owner_id, title, description, status, priority, due_date, created_at, updated_at
		FROM tasks WHERE owner_id = $1`
	args := []any{ownerID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", column, direction)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateForOwner(ctx context.Context, t task.Task) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET title = $3, description = $4, status = $5, priority = $6, due_date = $7, updated_at = $8
		WHERE id = $1 AND owner_id = $2
	`, t.ID, t.OwnerID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.UpdatedAt)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Task not found")
	}
	return nil
}

func (r *TaskRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM tasks WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Task not found")
	}
	return nil
}

func (r *TaskRepository) StatsByOwner(ctx context.Context, ownerID uuid.UUID) (task.Stats, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'In Progress'),
			COUNT(*) FILTER (WHERE status = 'Completed'),
			COUNT(*) FILTER (WHERE status = 'Overdue'),
			COUNT(*) FILTER (WHERE priority = 'high'),
			COUNT(*) FILTER (WHERE priority = 'medium'),
			COUNT(*) FILTER (WHERE priority = 'low')
		FROM tasks WHERE owner_id = $1
	`, ownerID)
	var s task.Stats
	if err := row.Scan(&s.Total, &s.Pending, &s.InProgress, &s.Completed, &s.Overdue, &s.High, &s.Medium, &s.Low); err != nil {
		return task.Stats{}, storeErr(err)
	}
	return s, nil
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var dueDate, createdAt, updatedAt time.Time
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Status, &t.Priority, &dueDate, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, apperror.NewNotFound("Task not found")
		}
		return task.Task{}, storeErr(err)
	}
	t.DueDate = dueDate.UTC()
	t.CreatedAt = createdAt.UTC()
	t.UpdatedAt = updatedAt.UTC()
	return t, nil
}
