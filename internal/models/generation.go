package models

import (
	"time"

	"github.com/google/uuid"
)

type GenerationStatus string

const (
	StatusOK       GenerationStatus = "ok"
	StatusFallback GenerationStatus = "fallback"
	StatusFailed   GenerationStatus = "failed"
)

type Operation string

const (
	OperationResumeGenerate Operation = "resume.generate"
	OperationJobSearch      Operation = "jobs.search"
	OperationJobRecommend   Operation = "jobs.recommend"
	OperationFitAnalyze     Operation = "fit.analyze"
)

// GenerationLog is operational metadata about one Gemini call. Prompts and
// generated content are never stored.
type GenerationLog struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Operation  Operation        `gorm:"type:text;not null;index" json:"operation"`
	Company    string           `gorm:"type:text" json:"company,omitempty"`
	Position   string           `gorm:"type:text" json:"position,omitempty"`
	Status     GenerationStatus `gorm:"type:text;not null" json:"status"`
	ReasonCode string           `gorm:"type:text" json:"reason_code,omitempty"`
	Model      string           `gorm:"type:text" json:"model,omitempty"`
	LatencyMS  int64            `gorm:"not null;default:0" json:"latency_ms"`
	CreatedAt  time.Time        `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (GenerationLog) TableName() string {
	return "generation_logs"
}
