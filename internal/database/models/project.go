package models

import (
	"github.com/google/uuid"
)

// Project belongs to exactly one organisation and cascades with it
type Project struct {
	BaseModel
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description    *string   `json:"description,omitempty" gorm:"type:text"`
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;index"`
	OwnerID        uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	IsArchived     bool      `json:"is_archived" gorm:"not null;default:false"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
