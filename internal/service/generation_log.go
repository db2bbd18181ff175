package service

import (
	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/pricing"
	"github.com/fandyandika/hello-saas/internal/repository"

	log "github.com/sirupsen/logrus"
)

// GenerationLogService records gateway outcomes for the per-user usage
// ledger. Recording is best-effort: a ledger failure never fails the
// generation that produced it.
type GenerationLogService struct {
	repo *repository.GenerationLogRepository
}

func NewGenerationLogService() *GenerationLogService {
	return &GenerationLogService{repo: repository.NewGenerationLogRepository()}
}

func (s *GenerationLogService) RecordSuccess(userID string, meta model.GenerateMetadata) {
	cost := pricing.Estimate(meta.ModelUsed, meta.Usage)
	entry := &repository.GenerationLog{
		UserID:       userID,
		Model:        meta.ModelUsed,
		FallbackUsed: meta.FallbackUsed,
		FinishReason: meta.FinishReason,
		CostMicros:   cost.CostMicros,
		CostUsd:      cost.CostUsd,
		Status:       "success",
	}
	if meta.Usage != nil {
		entry.Usage = *meta.Usage
	}
	if err := s.repo.Insert(entry); err != nil {
		log.WithError(err).Warn("generation log insert failed")
	}
}

func (s *GenerationLogService) RecordFailure(userID, modelID, errorType string) {
	entry := &repository.GenerationLog{
		UserID:    userID,
		Model:     modelID,
		Status:    "error",
		ErrorType: errorType,
		CostUsd:   "0.000000",
	}
	if err := s.repo.Insert(entry); err != nil {
		log.WithError(err).Warn("generation log insert failed")
	}
}

func (s *GenerationLogService) UsageSummary(userID string) (*repository.UsageSummary, error) {
	summary, err := s.repo.SummaryByUser(userID)
	if err != nil {
		return nil, err
	}
	summary.CostUsd = pricing.MicrosToUsd(summary.CostMicros)
	return summary, nil
}

func (s *GenerationLogService) Recent(userID string, limit int) ([]*repository.GenerationLog, error) {
	return s.repo.ListByUser(userID, limit)
}
