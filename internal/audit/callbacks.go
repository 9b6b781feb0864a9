package audit

import (
	"fmt"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

const oldRowsKey = "audit:old_rows"

type Sink interface {
	Dispatch(ev Event) bool
}

type recorder struct {
	sink Sink
	log  *logrus.Logger
	now  func() time.Time
}

// RegisterCallbacks hooks row capture into gorm's create, update and
// delete chains. Writes to the audit table itself are never captured.
func RegisterCallbacks(db *gorm.DB, sink Sink, log *logrus.Logger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &recorder{sink: sink, log: log, now: time.Now}

	cb := db.Callback()

	if err := cb.Update().Before("gorm:update").Register("audit:capture_old", r.captureOld); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("audit:capture_old", r.captureOld); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("audit:record", r.record(domain.ActionInsert)); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("audit:record", r.record(domain.ActionUpdate)); err != nil {
		return err
	}
	return cb.Delete().After("gorm:delete").Register("audit:record", r.record(domain.ActionDelete))
}

func skip(db *gorm.DB) bool {
	return db.Error != nil ||
		db.Statement.Schema == nil ||
		db.Statement.Table == models.AuditTable ||
		db.Statement.Schema.PrioritizedPrimaryField == nil
}

func (r *recorder) captureOld(db *gorm.DB) {
	if skip(db) {
		return
	}

	old := make(map[string]map[string]any)
	for _, id := range primaryKeys(db) {
		row, err := r.loadRow(db, id)
		if err != nil {
			r.log.WithError(err).WithField("table", db.Statement.Table).Warn("audit: could not load previous row")
			continue
		}
		if row != nil {
			old[fmt.Sprint(id)] = row
		}
	}
	db.InstanceSet(oldRowsKey, old)
}

func (r *recorder) record(action string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if skip(db) || db.Statement.RowsAffected == 0 {
			return
		}

		var old map[string]map[string]any
		if v, ok := db.InstanceGet(oldRowsKey); ok {
			old, _ = v.(map[string]map[string]any)
		}

		actor := ActorFrom(db.Statement.Context)
		ids := primaryKeys(db)
		if len(ids) == 0 {
			r.log.WithField("table", db.Statement.Table).Warn("audit: statement without primary key not recorded")
			return
		}

		for _, id := range ids {
			key := fmt.Sprint(id)
			ev := Event{
				Table:      db.Statement.Table,
				RecordID:   key,
				Action:     action,
				Actor:      actor,
				OccurredAt: r.now(),
			}

			if action != domain.ActionInsert {
				ev.OldData = old[key]
			}
			if action != domain.ActionDelete {
				row, err := r.loadRow(db, id)
				if err != nil {
					r.log.WithError(err).WithField("table", db.Statement.Table).Warn("audit: could not load current row")
				}
				ev.NewData = row
			}
			if action == domain.ActionUpdate && ev.OldData != nil && ev.NewData != nil {
				ev.ChangedFields = ChangedFields(ev.OldData, ev.NewData)
			}

			r.sink.Dispatch(ev)
		}
	}
}

// loadRow reads the row as stored, on the statement's connection so the
// surrounding transaction is visible. A missing row returns nil, nil.
func (r *recorder) loadRow(db *gorm.DB, id any) (map[string]any, error) {
	pk := db.Statement.Schema.PrioritizedPrimaryField

	row := map[string]any{}
	res := db.Session(&gorm.Session{NewDB: true}).
		Table(db.Statement.Table).
		Where(clause.Eq{Column: clause.Column{Name: pk.DBName}, Value: id}).
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return normalizeRow(db.Statement.Schema, row), nil
}

// primaryKeys returns the non-zero primary key values of the statement's
// model, which may be a single struct or a slice of structs.
func primaryKeys(db *gorm.DB) []any {
	pk := db.Statement.Schema.PrioritizedPrimaryField
	ctx := db.Statement.Context
	rv := db.Statement.ReflectValue

	var ids []any
	switch rv.Kind() {
	case reflect.Struct:
		if v, zero := pk.ValueOf(ctx, rv); !zero {
			ids = append(ids, v)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := reflect.Indirect(rv.Index(i))
			if elem.Kind() != reflect.Struct {
				continue
			}
			if v, zero := pk.ValueOf(ctx, elem); !zero {
				ids = append(ids, v)
			}
		}
	}
	return ids
}
