package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan rows are insert-only: every generation creates a new row and the most
// recent created_at wins for display. Rows are never updated in place.
type Plan struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"index" json:"user_id" example:"1"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	DiagnosisID *uint          `json:"diagnosis_id,omitempty" example:"3"`
	PlanJSON    string         `gorm:"type:jsonb" json:"plan_json"`
	Summary     string         `gorm:"type:text" json:"summary" example:"15-day lifestyle plan based on your profile."`
}

// PlanDay is one entry of the 15-day sequence.
type PlanDay struct {
	Day     int    `json:"day" example:"1"`
	Morning string `json:"morning" example:"10 min breathwork + light stretching"`
	Meals   string `json:"meals" example:"Moong dal chila with ginger tea"`
	Evening string `json:"evening" example:"20 min walk; digital sunset 1 hour before bed"`
}

// GeneratedPlan is the artifact returned by the orchestrator and stored in
// plan_json. A successful generation always carries exactly 15 day entries.
type GeneratedPlan struct {
	Summary       string    `json:"summary"`
	Plan          []PlanDay `json:"plan"`
	MarkdownTable string    `json:"markdown_table,omitempty"`
}

// GeneratePlanRequest is the body of POST /plans/generate. Context may be
// omitted, in which case it is rebuilt from the stored onboarding profile.
type GeneratePlanRequest struct {
	UserID      uint                   `json:"user_id" binding:"required"`
	DiagnosisID *uint                  `json:"diagnosis_id,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
}
