package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/fandyandika/hello-saas/internal/database"
	"github.com/fandyandika/hello-saas/internal/model"

	"github.com/google/uuid"
)

var ErrExampleNotFound = errors.New("example not found")

type ExampleRepositoryInterface interface {
	List(userID string) ([]*model.Example, error)
	GetByID(userID, id string) (*model.Example, error)
	Create(example *model.Example) error
	Update(userID, id, content string) (*model.Example, error)
	Delete(userID, id string) error
}

var _ ExampleRepositoryInterface = (*ExampleRepository)(nil)

type ExampleRepository struct{}

func NewExampleRepository() *ExampleRepository {
	return &ExampleRepository{}
}

func (r *ExampleRepository) List(userID string) ([]*model.Example, error) {
	db := database.GetDB()
	rows, err := db.Query(
		`SELECT id, user_id, content, created_at, updated_at
		 FROM examples WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, wrapTableError(err)
	}
	defer rows.Close()

	var examples []*model.Example
	for rows.Next() {
		ex := &model.Example{}
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Content, &ex.CreatedAt, &ex.UpdatedAt); err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, rows.Err()
}

func (r *ExampleRepository) GetByID(userID, id string) (*model.Example, error) {
	db := database.GetDB()
	ex := &model.Example{}
	err := db.QueryRow(
		`SELECT id, user_id, content, created_at, updated_at
		 FROM examples WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&ex.ID, &ex.UserID, &ex.Content, &ex.CreatedAt, &ex.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapTableError(err)
	}
	return ex, nil
}

func (r *ExampleRepository) Create(example *model.Example) error {
	db := database.GetDB()
	example.ID = uuid.New().String()
	example.CreatedAt = time.Now()
	example.UpdatedAt = time.Now()

	_, err := db.Exec(
		`INSERT INTO examples (id, user_id, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		example.ID, example.UserID, example.Content, example.CreatedAt, example.UpdatedAt,
	)
	return wrapTableError(err)
}

func (r *ExampleRepository) Update(userID, id, content string) (*model.Example, error) {
	db := database.GetDB()
	result, err := db.Exec(
		`UPDATE examples SET content = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		content, time.Now(), id, userID,
	)
	if err != nil {
		return nil, wrapTableError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrExampleNotFound
	}
	return r.GetByID(userID, id)
}

func (r *ExampleRepository) Delete(userID, id string) error {
	db := database.GetDB()
	result, err := db.Exec(`DELETE FROM examples WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return wrapTableError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExampleNotFound
	}
	return nil
}
