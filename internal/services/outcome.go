package services

import "alfredoptarigan/career-copilot/internal/models"

// Outcome is what every Gemini-backed operation returns. A fallback outcome
// still carries a usable Value (the component's static fallback) and the
// Reason it was substituted.
type Outcome[T any] struct {
	Value  T
	Status models.GenerationStatus
	Reason error
}

func succeeded[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value, Status: models.StatusOK}
}

func fellBack[T any](value T, reason error) Outcome[T] {
	return Outcome[T]{Value: value, Status: models.StatusFallback, Reason: reason}
}

func (o Outcome[T]) IsFallback() bool {
	return o.Status == models.StatusFallback
}

func (o Outcome[T]) ReasonCode() string {
	return ErrorCode(o.Reason)
}
