package models

import "time"

// Pipeline order: New -> Contacted -> Qualified -> Won/Lost. The API
// accepts any stage directly; the stepwise nudge is a client affordance.
var LeadStages = []string{"New", "Contacted", "Qualified", "Won", "Lost"}

type Lead struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Stage string `gorm:"not null;default:New" json:"stage"`
	Value Money  `gorm:"type:decimal(10,2)" json:"value"`

	NextStep *string `json:"nextStep"`
	Source   *string `json:"source"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
