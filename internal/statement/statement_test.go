package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/EasySQL/internal/engine"
	"github.com/koustreak/EasySQL/internal/errs"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want Kind
	}{
		{"select", "SELECT * FROM users", KindSelect},
		{"select lowercase", "select 1 from t", KindSelect},
		{"select leading whitespace", "  \n\tSELECT id FROM t", KindSelect},
		{"insert", "INSERT INTO users (name) VALUES ('x')", KindInsert},
		{"update", "UPDATE users SET name = 'y'", KindUpdate},
		{"delete", "DELETE FROM users", KindDelete},
		{"create table", "CREATE TABLE t (id INTEGER)", KindOther},
		{"drop", "DROP TABLE t", KindOther},
		{"begin", "BEGIN", KindOther},
		{"keyword needs trailing space", "SELECTED", KindOther},
		{"bare keyword", "SELECT", KindOther},
		{"empty", "", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.sql))
		})
	}
}

func TestBind(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		params map[string]any
		want   string
	}{
		{
			name:   "single string parameter",
			text:   "SELECT * FROM users WHERE name = :name",
			params: map[string]any{"name": "alice"},
			want:   "SELECT * FROM users WHERE name = 'alice'",
		},
		{
			name:   "multiple parameters",
			text:   "UPDATE users SET name = :name WHERE id = :id",
			params: map[string]any{"name": "bob", "id": 7},
			want:   "UPDATE users SET name = 'bob' WHERE id = 7",
		},
		{
			name:   "parameter used twice",
			text:   "SELECT :x AS a, :x AS b",
			params: map[string]any{"x": 1},
			want:   "SELECT 1 AS a, 1 AS b",
		},
		{
			name:   "escaping applied",
			text:   "INSERT INTO t (s) VALUES (:s)",
			params: map[string]any{"s": "O'Brien"},
			want:   "INSERT INTO t (s) VALUES ('O''Brien')",
		},
		{
			name:   "nil renders NULL",
			text:   "UPDATE t SET v = :v",
			params: map[string]any{"v": nil},
			want:   "UPDATE t SET v = NULL",
		},
		{
			name:   "list expansion",
			text:   "SELECT * FROM t WHERE id IN (:ids)",
			params: map[string]any{"ids": []int{1, 2, 3}},
			want:   "SELECT * FROM t WHERE id IN (1, 2, 3)",
		},
		{
			name:   "colon inside string literal untouched",
			text:   "SELECT ':name' FROM t WHERE v = :v",
			params: map[string]any{"v": 1},
			want:   "SELECT ':name' FROM t WHERE v = 1",
		},
		{
			name:   "doubled quote stays inside literal",
			text:   "SELECT 'it''s :fine' FROM t WHERE v = :v",
			params: map[string]any{"v": 2},
			want:   "SELECT 'it''s :fine' FROM t WHERE v = 2",
		},
		{
			name:   "colon inside quoted identifier untouched",
			text:   `SELECT ":name" FROM t WHERE v = :v`,
			params: map[string]any{"v": 1},
			want:   `SELECT ":name" FROM t WHERE v = 1`,
		},
		{
			name:   "colon inside line comment untouched",
			text:   "SELECT 1 -- :nope\nFROM t WHERE v = :v",
			params: map[string]any{"v": 3},
			want:   "SELECT 1 -- :nope\nFROM t WHERE v = 3",
		},
		{
			name:   "colon inside block comment untouched",
			text:   "SELECT /* :nope */ :v",
			params: map[string]any{"v": 4},
			want:   "SELECT /* :nope */ 4",
		},
		{
			name:   "postgres cast is not a parameter",
			text:   "SELECT :v::text",
			params: map[string]any{"v": 5},
			want:   "SELECT 5::text",
		},
		{
			name:   "no parameters",
			text:   "SELECT 1",
			params: nil,
			want:   "SELECT 1",
		},
		{
			name:   "bare colon passes through",
			text:   "SELECT 'a' : 'b' FROM t WHERE v = :v",
			params: map[string]any{"v": 6},
			want:   "SELECT 'a' : 'b' FROM t WHERE v = 6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bind(engine.DialectSQLite, tt.text, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBind_MissingParameter(t *testing.T) {
	_, err := Bind(engine.DialectSQLite, "SELECT * FROM t WHERE id = :id", nil)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
}

func TestBind_UnusedParameter(t *testing.T) {
	_, err := Bind(engine.DialectSQLite, "SELECT 1", map[string]any{"id": 1})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
}

func TestBind_UnsupportedValue(t *testing.T) {
	type box struct{}
	_, err := Bind(engine.DialectSQLite, "SELECT :v", map[string]any{"v": box{}})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
}

func TestBind_MySQLDialectEscaping(t *testing.T) {
	got, err := Bind(engine.DialectMySQL, "SELECT :p", map[string]any{"p": `a\b`})
	require.NoError(t, err)
	assert.Equal(t, `SELECT 'a\\b'`, got)
}
