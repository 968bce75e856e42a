package models

import (
	"time"

	"gorm.io/gorm"
)

// Onboarding is the stored profile produced at onboarding completion. It is
// created once and only replaced by re-running onboarding; the application
// never deletes it.
type Onboarding struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"uniqueIndex" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`

	Age            int    `json:"age" example:"52"`
	Gender         string `json:"gender" example:"female"`
	DiabetesType   string `json:"diabetes_type" example:"type2"`
	DiagnosisDate  string `json:"diagnosis_date" example:"2021-06-15"`
	MedicalHistory string `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies      string `json:"allergies,omitempty" example:"peanuts"`

	// Lifestyle answers
	Diet     string `json:"diet,omitempty" example:"vegetarian"`
	Exercise string `json:"exercise,omitempty" example:"light walking"`
	Sleep    string `json:"sleep,omitempty" example:"6-7 hours"`
	Stress   string `json:"stress,omitempty" example:"moderate"`

	// Prakriti assessment output, serialized JSON
	PrakritiScores  string `gorm:"type:jsonb" json:"prakriti_scores,omitempty" swaggerignore:"true"`
	PrakritiTotals  string `gorm:"type:jsonb" json:"prakriti_totals,omitempty" swaggerignore:"true"`
	PrakritiSummary string `gorm:"type:jsonb" json:"prakriti_summary,omitempty" swaggerignore:"true"`
	DominantDosha   string `json:"dominant_dosha,omitempty" example:"Vata-Pitta"`
}
