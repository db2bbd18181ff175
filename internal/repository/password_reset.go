package repository

import (
	"database/sql"
	"time"

	"github.com/fandyandika/hello-saas/internal/database"
	"github.com/fandyandika/hello-saas/internal/model"

	"github.com/google/uuid"
)

type PasswordResetRepository struct{}

func NewPasswordResetRepository() *PasswordResetRepository {
	return &PasswordResetRepository{}
}

func (r *PasswordResetRepository) Create(userID, token string, expiresAt time.Time) (*model.PasswordReset, error) {
	db := database.GetDB()
	reset := &model.PasswordReset{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	_, err := db.Exec(
		`INSERT INTO password_resets (id, user_id, token, expires_at, used, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		reset.ID, reset.UserID, reset.Token, reset.ExpiresAt, reset.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reset, nil
}

func (r *PasswordResetRepository) GetByToken(token string) (*model.PasswordReset, error) {
	db := database.GetDB()
	reset := &model.PasswordReset{}
	err := db.QueryRow(
		`SELECT id, user_id, token, expires_at, used, created_at FROM password_resets WHERE token = ?`,
		token,
	).Scan(&reset.ID, &reset.UserID, &reset.Token, &reset.ExpiresAt, &reset.Used, &reset.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return reset, err
}

func (r *PasswordResetRepository) MarkUsed(id string) error {
	db := database.GetDB()
	_, err := db.Exec(`UPDATE password_resets SET used = 1 WHERE id = ?`, id)
	return err
}
