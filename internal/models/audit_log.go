package models

import "time"

// AuditLog is one admin or session event. Rows are append-only; the
// indexes back the filters of the audit listing.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint  `gorm:"index" json:"user_id,omitempty"`
	Action string `gorm:"size:50;not null;index:idx_audit_action_created,priority:1" json:"action"`

	Entity   string `gorm:"size:50;index" json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"index;index:idx_audit_action_created,priority:2" json:"created_at"`
}
