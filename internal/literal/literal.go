// Package literal renders Go values as SQL literals, escaped for a given
// dialect. It is the inlining half of statement binding: parameter values
// never reach the driver as placeholders, they are embedded as escaped text.
package literal

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/koustreak/EasySQL/internal/engine"
	"github.com/koustreak/EasySQL/internal/errs"
)

// Date is a calendar date without a time component.
// It renders as 'YYYY-MM-DD'.
type Date time.Time

// Clock is a time of day without a date component.
// It renders as 'HH:MM:SS'.
type Clock time.Time

// Render converts a single parameter value into dialect-appropriate literal
// SQL text. Slices of supported scalars are expanded to a comma-separated
// list, so a value can feed an IN (:names) clause directly.
//
// Unsupported value kinds return an ErrKindInvalidInput error.
func Render(d engine.Dialect, value any) (string, error) {
	switch v := value.(type) {
	case []any:
		return renderList(d, v)
	case []string:
		return renderList(d, toAny(v))
	case []int:
		return renderList(d, toAny(v))
	case []int64:
		return renderList(d, toAny(v))
	case []float64:
		return renderList(d, toAny(v))
	}
	return renderScalar(d, value)
}

func renderList(d engine.Dialect, values []any) (string, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		s, err := renderScalar(d, v)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

func renderScalar(d engine.Dialect, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "NULL", nil

	case bool:
		return renderBool(d, v), nil

	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil

	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil

	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil

	case string:
		return quoteString(d, v), nil

	case []byte:
		return renderBlob(d, v), nil

	case Date:
		return quoteString(d, time.Time(v).Format("2006-01-02")), nil
	case Clock:
		return quoteString(d, time.Time(v).Format("15:04:05")), nil
	case time.Time:
		return quoteString(d, v.Format("2006-01-02 15:04:05")), nil
	}

	return "", errs.New(errs.ErrKindInvalidInput,
		fmt.Sprintf("unsupported parameter value of type %T", value))
}

// renderBool emits the dialect's boolean form. Postgres has a real boolean
// type; mysql and sqlite store booleans as integers.
func renderBool(d engine.Dialect, v bool) string {
	if d == engine.DialectPostgres {
		if v {
			return "TRUE"
		}
		return "FALSE"
	}
	if v {
		return "1"
	}
	return "0"
}

// quoteString wraps s in single quotes, doubling embedded quotes. MySQL
// additionally treats backslash as an escape character unless
// NO_BACKSLASH_ESCAPES is set, so backslashes are doubled there too.
func quoteString(d engine.Dialect, s string) string {
	if d == engine.DialectMySQL {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// renderBlob emits a binary literal: X'hex' for sqlite and mysql,
// the bytea hex form '\x…' for postgres.
func renderBlob(d engine.Dialect, b []byte) string {
	h := hex.EncodeToString(b)
	if d == engine.DialectPostgres {
		return `'\x` + h + `'`
	}
	return "X'" + h + "'"
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
