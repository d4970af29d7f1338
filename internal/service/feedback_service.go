package service

import (
	"context"
	"fmt"

	"digital-menu/internal/domain"
)

// FeedbackService appends feedback records to the durable local log. The log
// is a single array under a fixed key, rewritten as a whole on every submit;
// records are never updated or deleted. No referential check is made against
// known orders: a record may reference an order id the store has never seen.
type FeedbackService struct {
	log FeedbackLog
}

func NewFeedbackService(log FeedbackLog) *FeedbackService {
	return &FeedbackService{log: log}
}

func (s *FeedbackService) Submit(ctx context.Context, record domain.OrderFeedback) error {
	records, err := s.log.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read feedback log: %w", err)
	}
	records = append(records, record)
	if err := s.log.Write(ctx, records); err != nil {
		return fmt.Errorf("failed to write feedback log: %w", err)
	}
	return nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.OrderFeedback, error) {
	records, err := s.log.Read(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.OrderFeedback{}
	}
	return records, nil
}
