package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type fakeRepo struct {
	filter  domain.Filter
	table   string
	record  string
	history []models.AuditEventLog
}

func (f *fakeRepo) ListEvents(_ context.Context, fl domain.Filter) ([]models.AuditEventLog, int64, error) {
	f.filter = fl
	return []models.AuditEventLog{{ID: 2}, {ID: 1}}, 2, nil
}

func (f *fakeRepo) GetEvent(_ context.Context, id uint) (*models.AuditEventLog, error) {
	if id != 1 {
		return nil, httperr.ErrBusiness("audit_event_not_found")
	}
	return &models.AuditEventLog{ID: 1, Action: domain.ActionInsert}, nil
}

func (f *fakeRepo) RecordHistory(_ context.Context, table, recordID string) ([]models.AuditEventLog, error) {
	f.table, f.record = table, recordID
	return f.history, nil
}

func (f *fakeRepo) ListTables(context.Context) ([]string, error) {
	return nil, nil
}

func TestListEvents_NormalizesFilter(t *testing.T) {
	repo := &fakeRepo{}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	events, total, err := NewListEvents(repo).Execute(context.Background(), ListEventsInput{
		Table:    " patients ",
		Action:   "Create",
		ActorID:  "user-1",
		RecordID: "42",
		From:     &from,
		To:       &to,
		Limit:    20,
		Offset:   40,
	})
	require.NoError(t, err)

	assert.Len(t, events, 2)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, domain.Filter{
		Table:    "patients",
		Action:   domain.ActionInsert,
		ActorID:  "user-1",
		RecordID: "42",
		From:     &from,
		To:       &to,
		Limit:    20,
		Offset:   40,
	}, repo.filter)
}

func TestListEvents_Rejects(t *testing.T) {
	uc := NewListEvents(&fakeRepo{})

	_, _, err := uc.Execute(context.Background(), ListEventsInput{Action: "truncate"})
	assert.Equal(t, "invalid_action", httperr.BusinessCode(err))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, _, err = uc.Execute(context.Background(), ListEventsInput{From: &from, To: &from})
	assert.Equal(t, "invalid_period", httperr.BusinessCode(err))
}

func TestGetEvent(t *testing.T) {
	uc := NewGetEvent(&fakeRepo{})

	ev, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionInsert, ev.Action)

	_, err = uc.Execute(context.Background(), 9)
	assert.Equal(t, "audit_event_not_found", httperr.BusinessCode(err))
}

func TestRecordHistory(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewRecordHistory(repo)

	events, err := uc.Execute(context.Background(), "visits", " 7 ")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	assert.Equal(t, "visits", repo.table)
	assert.Equal(t, "7", repo.record)

	_, err = uc.Execute(context.Background(), "", "7")
	assert.Equal(t, "invalid_request", httperr.BusinessCode(err))
}

func TestListTables_NeverNil(t *testing.T) {
	tables, err := NewListTables(&fakeRepo{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, tables)
}
