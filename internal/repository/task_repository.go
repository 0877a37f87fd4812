package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todo-manager-bot/internal/model"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create создаёт новую задачу и заполняет ID и CreatedAt
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `
		INSERT INTO tasks (user_id, text, priority, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, completed, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		task.UserID,
		task.Text,
		task.Priority,
		task.DueDate,
	).Scan(&task.ID, &task.Completed, &task.CreatedAt)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// ListByUser возвращает все задачи пользователя по возрастанию срока
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]*model.Task, error) {
	query := `
		SELECT id, user_id, text, priority, due_date, completed, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY due_date
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by user: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ListDueBetween возвращает задачи со сроком в полуинтервале [from, to)
func (r *TaskRepository) ListDueBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Task, error) {
	query := `
		SELECT id, user_id, text, priority, due_date, completed, created_at
		FROM tasks
		WHERE user_id = $1 AND due_date >= $2 AND due_date < $3
		ORDER BY due_date
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list tasks due between: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ListDueBetweenInclusive возвращает задачи со сроком в отрезке [from, to].
// Используется для месячного окна, верхняя граница которого включительна.
func (r *TaskRepository) ListDueBetweenInclusive(ctx context.Context, userID string, from, to time.Time) ([]*model.Task, error) {
	query := `
		SELECT id, user_id, text, priority, due_date, completed, created_at
		FROM tasks
		WHERE user_id = $1 AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list tasks due between inclusive: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// MarkDone помечает задачу выполненной. Возвращает false, если задачи с таким
// ID у этого пользователя нет — чужие задачи отфильтровываются самим запросом.
func (r *TaskRepository) MarkDone(ctx context.Context, taskID int64, userID string) (bool, error) {
	query := `
		UPDATE tasks
		SET completed = TRUE
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("mark task done: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete удаляет задачу. Возвращает false, если задачи с таким ID
// у этого пользователя нет.
func (r *TaskRepository) Delete(ctx context.Context, taskID int64, userID string) (bool, error) {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// UserIDs возвращает идентификаторы всех пользователей, у которых есть задачи
func (r *TaskRepository) UserIDs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT user_id FROM tasks`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user ids: %w", err)
	}

	return ids, nil
}

func scanTasks(rows pgx.Rows) ([]*model.Task, error) {
	var tasks []*model.Task
	for rows.Next() {
		var task model.Task
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Text,
			&task.Priority,
			&task.DueDate,
			&task.Completed,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}
