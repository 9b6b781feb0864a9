package audit

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// RecordHistory returns every event of one row, oldest first.
type RecordHistory struct {
	repo domain.Repository
}

func NewRecordHistory(repo domain.Repository) *RecordHistory {
	return &RecordHistory{repo: repo}
}

func (uc *RecordHistory) Execute(
	ctx context.Context,
	table, recordID string,
) ([]models.AuditEventLog, error) {

	table = strings.TrimSpace(table)
	recordID = strings.TrimSpace(recordID)
	if table == "" || recordID == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	events, err := uc.repo.RecordHistory(ctx, table, recordID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.AuditEventLog{}
	}
	return events, nil
}

type ListTables struct {
	repo domain.Repository
}

func NewListTables(repo domain.Repository) *ListTables {
	return &ListTables{repo: repo}
}

func (uc *ListTables) Execute(ctx context.Context) ([]string, error) {
	tables, err := uc.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = []string{}
	}
	return tables, nil
}
