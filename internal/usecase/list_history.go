package usecase

import (
	"context"

	"github.com/termhere/termhere/internal/domain"
)

// ListHistoryInput contains the input for the ListHistory use case.
type ListHistoryInput struct{}

// ListHistoryOutput contains the output of the ListHistory use case.
type ListHistoryOutput struct {
	Entries []domain.HistoryEntry // Most recently opened first
}

// ListHistory returns the recently opened folders.
type ListHistory struct {
	history domain.HistoryRepository
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(history domain.HistoryRepository) *ListHistory {
	return &ListHistory{
		history: history,
	}
}

// Execute lists the recorded folders.
func (uc *ListHistory) Execute(_ context.Context, _ ListHistoryInput) (*ListHistoryOutput, error) {
	entries, err := uc.history.List()
	if err != nil {
		return nil, err
	}
	return &ListHistoryOutput{Entries: entries}, nil
}
