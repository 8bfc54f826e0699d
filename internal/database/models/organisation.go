package models

import (
	"github.com/google/uuid"
)

// Organisation is the tenant root. It is never hard-deleted; IsActive=false is terminal.
type Organisation struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	AvatarURL   *string   `json:"avatar_url,omitempty" gorm:"column:avatar_url;type:text"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index"`

	// Relationships
	Members  []OrganisationMember `json:"members,omitempty" gorm:"foreignKey:OrganisationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Projects []Project            `json:"projects,omitempty" gorm:"foreignKey:OrganisationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for Organisation
func (Organisation) TableName() string {
	return "organisations"
}
