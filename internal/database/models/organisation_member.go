package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganisationMember binds a principal to an organisation with a role.
// Removal is soft: IsActive is cleared and the row is kept.
type OrganisationMember struct {
	BaseModel
	OrganisationID       uuid.UUID        `json:"organisation_id" gorm:"type:uuid;not null;uniqueIndex:idx_organisation_members_org_identity,priority:1"`
	IdentityID           uuid.UUID        `json:"identity_id" gorm:"type:uuid;not null;uniqueIndex:idx_organisation_members_org_identity,priority:2;index"`
	Role                 OrganisationRole `json:"role" gorm:"type:varchar(20);not null;check:chk_organisation_members_role,role IN ('owner','admin','member','viewer')"`
	IsActive             bool             `json:"is_active" gorm:"not null;default:true"`
	JoinedAt             time.Time        `json:"joined_at" gorm:"type:timestamptz;not null"`
	InvitedBy            uuid.UUID        `json:"invited_by" gorm:"type:uuid;not null"`
	InvitedAt            time.Time        `json:"invited_at" gorm:"type:timestamptz;not null"`
	InvitationAcceptedAt time.Time        `json:"invitation_accepted_at" gorm:"type:timestamptz;not null"`
}

// TableName returns the table name for OrganisationMember
func (OrganisationMember) TableName() string {
	return "organisation_members"
}
