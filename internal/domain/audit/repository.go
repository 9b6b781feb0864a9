package audit

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

type Filter struct {
	Table    string
	Action   string
	ActorID  string
	RecordID string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// NormalizeAction maps create/insert, update/edit, delete/remove to the
// stored action names. Unknown values return "".
func NormalizeAction(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "insert", "create", "created":
		return ActionInsert
	case "update", "edit", "updated":
		return ActionUpdate
	case "delete", "remove", "deleted":
		return ActionDelete
	}
	return ""
}

type Repository interface {
	ListEvents(ctx context.Context, f Filter) ([]models.AuditEventLog, int64, error)
	GetEvent(ctx context.Context, id uint) (*models.AuditEventLog, error)
	RecordHistory(ctx context.Context, table, recordID string) ([]models.AuditEventLog, error)
	ListTables(ctx context.Context) ([]string, error)
}
