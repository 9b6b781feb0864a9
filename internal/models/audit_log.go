package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const AuditTable = "audit_event_logs"

// AuditEventLog is append-only.
type AuditEventLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Table    string `gorm:"column:table_name;size:64;not null;index:idx_audit_record,priority:1" json:"table_name"`
	RecordID string `gorm:"size:64;index:idx_audit_record,priority:2" json:"record_id"`
	Action   string `gorm:"size:10;not null;index" json:"action"`

	ActorID    string `gorm:"size:64;index" json:"actor_id"`
	ActorEmail string `gorm:"size:150" json:"actor_email"`

	OldData       datatypes.JSON `gorm:"type:jsonb" json:"old_data"`
	NewData       datatypes.JSON `gorm:"type:jsonb" json:"new_data"`
	ChangedFields pq.StringArray `gorm:"type:text[]" json:"changed_fields"`

	RequestID string `gorm:"size:64" json:"request_id"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (AuditEventLog) TableName() string {
	return AuditTable
}
