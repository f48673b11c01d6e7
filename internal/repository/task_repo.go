package repository

import (
	"context"
	"errors"

	"github.com/ShelcyG/todo-app/internal/authz"
	"github.com/ShelcyG/todo-app/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskPatch carries a partial update. Nil fields keep the stored value.
type TaskPatch struct {
	Title     *string
	Completed *bool
}

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns all tasks, or only the given owner's tasks when owner is set.
// An anonymous listing sees everything, including unowned rows.
func (r *TaskRepository) List(ctx context.Context, owner *int64) ([]domain.Task, error) {
	query := `SELECT id, title, completed, owner_id, created_at FROM tasks`
	args := []any{}
	if owner != nil {
		query += ` WHERE owner_id = $1`
		args = append(args, *owner)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerID, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, completed, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		task.Title, task.Completed, task.OwnerID,
	).Scan(&task.ID, &task.CreatedAt)
}

// Update applies the patch to one task in a single statement. The scope
// narrows which rows are reachable: nil means any task, otherwise the
// caller's own tasks plus, when the scope allows it, unowned ones. A task
// that exists but falls outside the scope reports ErrNotFound, same as a
// missing id.
func (r *TaskRepository) Update(ctx context.Context, id int64, patch TaskPatch, scope *authz.WriteScope) (*domain.Task, error) {
	query := `UPDATE tasks
		 SET title = COALESCE($2, title), completed = COALESCE($3, completed)
		 WHERE id = $1`
	args := []any{id, patch.Title, patch.Completed}
	if scope != nil {
		if scope.IncludeUnowned {
			query += ` AND (owner_id = $4 OR owner_id IS NULL)`
		} else {
			query += ` AND owner_id = $4`
		}
		args = append(args, scope.OwnerID)
	}
	query += ` RETURNING id, title, completed, owner_id, created_at`

	var t domain.Task
	err := r.db.QueryRow(ctx, query, args...).Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes one task under the same scope rules as Update.
func (r *TaskRepository) Delete(ctx context.Context, id int64, scope *authz.WriteScope) error {
	query := `DELETE FROM tasks WHERE id = $1`
	args := []any{id}
	if scope != nil {
		if scope.IncludeUnowned {
			query += ` AND (owner_id = $2 OR owner_id IS NULL)`
		} else {
			query += ` AND owner_id = $2`
		}
		args = append(args, scope.OwnerID)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
