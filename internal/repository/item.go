package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/fandyandika/hello-saas/internal/database"
	"github.com/fandyandika/hello-saas/internal/model"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("item not found")

type ItemRepositoryInterface interface {
	List(userID string) ([]*model.Item, error)
	GetByID(userID, id string) (*model.Item, error)
	Search(userID, query string) ([]*model.Item, error)
	Create(item *model.Item) error
	Update(userID, id, title, notes string) (*model.Item, error)
	Delete(userID, id string) error
}

var _ ItemRepositoryInterface = (*ItemRepository)(nil)

// ItemRepository scopes every query to the owning user. The user_id
// predicate is the row-level access control for this table.
type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) List(userID string) ([]*model.Item, error) {
	db := database.GetDB()
	rows, err := db.Query(
		`SELECT id, user_id, title, COALESCE(notes, ''), created_at, updated_at
		 FROM items WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, wrapTableError(err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) GetByID(userID, id string) (*model.Item, error) {
	db := database.GetDB()
	item := &model.Item{}
	err := db.QueryRow(
		`SELECT id, user_id, title, COALESCE(notes, ''), created_at, updated_at
		 FROM items WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&item.ID, &item.UserID, &item.Title, &item.Notes, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapTableError(err)
	}
	return item, nil
}

func (r *ItemRepository) Search(userID, query string) ([]*model.Item, error) {
	db := database.GetDB()
	pattern := "%" + query + "%"
	rows, err := db.Query(
		`SELECT id, user_id, title, COALESCE(notes, ''), created_at, updated_at
		 FROM items WHERE user_id = ? AND (title LIKE ? OR notes LIKE ?)
		 ORDER BY created_at DESC`,
		userID, pattern, pattern,
	)
	if err != nil {
		return nil, wrapTableError(err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) Create(item *model.Item) error {
	db := database.GetDB()
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	_, err := db.Exec(
		`INSERT INTO items (id, user_id, title, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.Title, item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	return wrapTableError(err)
}

func (r *ItemRepository) Update(userID, id, title, notes string) (*model.Item, error) {
	db := database.GetDB()
	result, err := db.Exec(
		`UPDATE items SET title = ?, notes = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		title, notes, time.Now(), id, userID,
	)
	if err != nil {
		return nil, wrapTableError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrItemNotFound
	}
	return r.GetByID(userID, id)
}

func (r *ItemRepository) Delete(userID, id string) error {
	db := database.GetDB()
	result, err := db.Exec(`DELETE FROM items WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return wrapTableError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

func scanItems(rows *sql.Rows) ([]*model.Item, error) {
	var items []*model.Item
	for rows.Next() {
		item := &model.Item{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Notes, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
