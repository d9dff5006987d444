package easysql

import "github.com/koustreak/EasySQL/internal/statement"

// Kind identifies the statement kind a Result was produced for.
type Kind = statement.Kind

const (
	KindOther  = statement.KindOther
	KindSelect = statement.KindSelect
	KindInsert = statement.KindInsert
	KindUpdate = statement.KindUpdate
	KindDelete = statement.KindDelete
)

// Result is the outcome of Execute, shaped by the statement kind.
// Only the fields for the relevant kind are populated:
//
//	KindSelect          Rows: field-maps, one per result row
//	KindInsert          LastInsertID: the generated primary key
//	KindUpdate/Delete   RowsAffected: number of rows matched
//	KindOther           OK: true (failures are reported via error instead)
//
// Execute returns a nil Result with a nil error when the statement hit an
// integrity constraint violation.
type Result struct {
	Kind Kind

	// Columns preserves the result-set column order for KindSelect,
	// since Rows maps are unordered.
	Columns []string

	Rows         []map[string]any
	LastInsertID int64
	RowsAffected int64
	OK           bool
}
