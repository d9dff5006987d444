package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/EasySQL/internal/errs"
)

// fakeRows is an in-memory Rows implementation for testing ScanRows.
type fakeRows struct {
	columns []string
	data    [][]any
	pos     int
	iterErr error
	closed  bool
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	for i := range dest {
		*(dest[i].(*any)) = row[i]
	}
	return nil
}

func (r *fakeRows) Columns() ([]string, error) { return r.columns, nil }
func (r *fakeRows) Close()                     { r.closed = true }
func (r *fakeRows) Err() error                 { return r.iterErr }

func TestScanRows(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"id", "name"},
		data: [][]any{
			{int64(1), "alice"},
			{int64(2), "bob"},
		},
	}

	result, err := ScanRows(rows)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0]["id"])
	assert.Equal(t, "alice", result[0]["name"])
	assert.Equal(t, int64(2), result[1]["id"])
	assert.Equal(t, "bob", result[1]["name"])
	assert.True(t, rows.closed, "ScanRows must close the result set")
}

func TestScanRows_Empty(t *testing.T) {
	rows := &fakeRows{columns: []string{"id"}}

	result, err := ScanRows(rows)
	require.NoError(t, err)

	assert.NotNil(t, result, "empty result must be a non-nil slice")
	assert.Len(t, result, 0)
	assert.True(t, rows.closed)
}

func TestScanRows_IterationError(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"id"},
		iterErr: errors.New("connection dropped"),
	}

	_, err := ScanRows(rows)
	require.Error(t, err)
	assert.True(t, errs.IsQueryFailed(err))
}
