package store

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，依序把 vals 複製進 Scan 的目的位址。
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > len(r.vals) {
		panic("fakeRow.Scan: not enough vals")
	}
	for i, d := range dest {
		assign(d, r.vals[i])
	}
	return nil
}

// fakeRows 實作 pgx.Rows，每列一組 vals。
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	vals := r.data[r.idx]
	r.idx++
	for i, d := range dest {
		assign(d, vals[i])
	}
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func assign(dest, val any) {
	switch p := dest.(type) {
	case *int:
		*p = val.(int)
	case *string:
		*p = val.(string)
	case *float64:
		*p = val.(float64)
	case *bool:
		*p = val.(bool)
	case *time.Time:
		*p = val.(time.Time)
	case **time.Time:
		if val == nil {
			*p = nil
		} else {
			v := val.(time.Time)
			*p = &v
		}
	default:
		panic("fakeRow: unsupported dest type")
	}
}
