package usecase

import (
	"context"

	"github.com/termhere/termhere/internal/domain"
)

// ClearHistoryInput contains the input for the ClearHistory use case.
type ClearHistoryInput struct{}

// ClearHistoryOutput contains the output of the ClearHistory use case.
type ClearHistoryOutput struct {
	Removed int // Number of entries that were removed
}

// ClearHistory removes all recorded folders.
type ClearHistory struct {
	history domain.HistoryRepository
}

// NewClearHistory creates a new ClearHistory use case.
func NewClearHistory(history domain.HistoryRepository) *ClearHistory {
	return &ClearHistory{
		history: history,
	}
}

// Execute clears the history.
func (uc *ClearHistory) Execute(_ context.Context, _ ClearHistoryInput) (*ClearHistoryOutput, error) {
	entries, err := uc.history.List()
	if err != nil {
		return nil, err
	}

	if err := uc.history.Clear(); err != nil {
		return nil, err
	}

	return &ClearHistoryOutput{Removed: len(entries)}, nil
}
