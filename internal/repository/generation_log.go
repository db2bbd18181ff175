package repository

import (
	"time"

	"github.com/fandyandika/hello-saas/internal/database"
	"github.com/fandyandika/hello-saas/internal/model"

	"github.com/google/uuid"
)

type GenerationLog struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Model        string           `json:"model"`
	FallbackUsed bool             `json:"fallback_used"`
	FinishReason string           `json:"finish_reason"`
	Usage        model.TokenUsage `json:"usage"`
	CostMicros   int64            `json:"cost_micros"`
	CostUsd      string           `json:"cost_usd"`
	Status       string           `json:"status"`
	ErrorType    string           `json:"error_type,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type UsageSummary struct {
	Requests         int64  `json:"requests"`
	FallbackRequests int64  `json:"fallback_requests"`
	PromptTokens     int64  `json:"prompt_tokens"`
	CompletionTokens int64  `json:"completion_tokens"`
	TotalTokens      int64  `json:"total_tokens"`
	CostMicros       int64  `json:"cost_micros"`
	CostUsd          string `json:"cost_usd"`
}

type GenerationLogRepository struct{}

func NewGenerationLogRepository() *GenerationLogRepository {
	return &GenerationLogRepository{}
}

func (r *GenerationLogRepository) Insert(entry *GenerationLog) error {
	db := database.GetDB()
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()

	fallback := 0
	if entry.FallbackUsed {
		fallback = 1
	}

	_, err := db.Exec(
		`INSERT INTO generation_logs (id, user_id, model, fallback_used, finish_reason,
		   prompt_tokens, completion_tokens, total_tokens, cost_micros, cost_usd, status, error_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Model, fallback, entry.FinishReason,
		entry.Usage.PromptTokens, entry.Usage.CompletionTokens, entry.Usage.TotalTokens,
		entry.CostMicros, entry.CostUsd, entry.Status, entry.ErrorType, entry.CreatedAt,
	)
	return wrapTableError(err)
}

func (r *GenerationLogRepository) SummaryByUser(userID string) (*UsageSummary, error) {
	db := database.GetDB()
	summary := &UsageSummary{}
	err := db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(fallback_used), 0),
		        COALESCE(SUM(prompt_tokens), 0),
		        COALESCE(SUM(completion_tokens), 0),
		        COALESCE(SUM(total_tokens), 0),
		        COALESCE(SUM(cost_micros), 0)
		 FROM generation_logs WHERE user_id = ? AND status = 'success'`,
		userID,
	).Scan(&summary.Requests, &summary.FallbackRequests, &summary.PromptTokens,
		&summary.CompletionTokens, &summary.TotalTokens, &summary.CostMicros)
	if err != nil {
		return nil, wrapTableError(err)
	}
	return summary, nil
}

func (r *GenerationLogRepository) ListByUser(userID string, limit int) ([]*GenerationLog, error) {
	db := database.GetDB()
	if limit < 1 || limit > 100 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT id, user_id, model, fallback_used, finish_reason,
		        COALESCE(prompt_tokens, 0), COALESCE(completion_tokens, 0), COALESCE(total_tokens, 0),
		        cost_micros, cost_usd, status, COALESCE(error_type, ''), created_at
		 FROM generation_logs WHERE user_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, wrapTableError(err)
	}
	defer rows.Close()

	var logs []*GenerationLog
	for rows.Next() {
		entry := &GenerationLog{}
		var fallback int
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Model, &fallback, &entry.FinishReason,
			&entry.Usage.PromptTokens, &entry.Usage.CompletionTokens, &entry.Usage.TotalTokens,
			&entry.CostMicros, &entry.CostUsd, &entry.Status, &entry.ErrorType, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.FallbackUsed = fallback != 0
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
