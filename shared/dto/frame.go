package dto

import (
	"fmt"
	"slices"
	"strconv"
	"time"
	"travel/shared/constant"
)

// Frame is a materialised result set: column names plus rows in select order.
type Frame struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func NewFrame(columns []string) Frame {
	return Frame{Columns: columns, Rows: [][]any{}}
}

// Append adds a row. Driver byte slices and times become strings so the
// frame marshals as readable JSON. Numbers stay numbers; a cached frame may
// hand them back as float64 or json.Number, which FormatValue renders the
// same way as the original integer.
func (f *Frame) Append(row []any) {
	normalized := make([]any, len(row))

	for i, value := range row {
		switch v := value.(type) {
		case []byte, time.Time:
			normalized[i] = FormatValue(v)
		default:
			normalized[i] = value
		}
	}

	f.Rows = append(f.Rows, normalized)
}

func (f *Frame) Len() int {
	return len(f.Rows)
}

func (f *Frame) Empty() bool {
	return len(f.Rows) == 0
}

// Column returns the index of the named column, or -1.
func (f *Frame) Column(name string) int {
	return slices.Index(f.Columns, name)
}

// Strings renders every cell as text for tables and CSV.
func (f *Frame) Strings() [][]string {
	rows := make([][]string, 0, len(f.Rows))

	for _, row := range f.Rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = FormatValue(value)
		}

		rows = append(rows, cells)
	}

	return rows
}

func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return constant.Empty
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(constant.DateFormat)
		}

		return v.Format(constant.TimestampFormat)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
