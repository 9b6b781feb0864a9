package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// Logger writes events to the audit table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	row, err := toModel(ev)
	if err != nil {
		return err
	}
	return l.db.WithContext(ctx).Create(row).Error
}

func toModel(ev Event) (*models.AuditEventLog, error) {
	oldData, err := marshalSnapshot(ev.OldData)
	if err != nil {
		return nil, fmt.Errorf("old_data: %w", err)
	}
	newData, err := marshalSnapshot(ev.NewData)
	if err != nil {
		return nil, fmt.Errorf("new_data: %w", err)
	}

	row := &models.AuditEventLog{
		Table:         ev.Table,
		RecordID:      ev.RecordID,
		Action:        ev.Action,
		ActorID:       ev.Actor.ID,
		ActorEmail:    ev.Actor.Email,
		OldData:       oldData,
		NewData:       newData,
		ChangedFields: pq.StringArray(ev.ChangedFields),
		RequestID:     ev.Actor.RequestID,
	}
	if !ev.OccurredAt.IsZero() {
		row.CreatedAt = ev.OccurredAt
	}
	return row, nil
}

func marshalSnapshot(s map[string]any) (datatypes.JSON, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
