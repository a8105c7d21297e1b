// Package store provides the storage gateway over the plan document store:
// a thin capability surface with atomic per-document create, update and
// delete, plus conjunctive equality/range queries over a collection.
package store

import (
	"context"
	"fmt"

	"github.com/jonwraymond/studyplanner/plan"
)

// Op is a filter comparison operator.
type Op string

const (
	OpEqual          Op = "=="
	OpGreaterOrEqual Op = ">="
	OpLessOrEqual    Op = "<="
)

// Filter is one conjunct of a query. A query ANDs its filters together;
// equality and two-sided range are the only supported predicates.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Eq matches records whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: OpEqual, Value: value}
}

// Gte matches records whose field is at least value.
func Gte(field string, value any) Filter {
	return Filter{Field: field, Op: OpGreaterOrEqual, Value: value}
}

// Lte matches records whose field is at most value.
func Lte(field string, value any) Filter {
	return Filter{Field: field, Op: OpLessOrEqual, Value: value}
}

// Record is a stored document together with its backend-assigned identifier.
// The identifier is opaque and is the sole handle for completion/deletion.
type Record struct {
	ID     string
	Fields map[string]any
}

// Gateway is the capability surface over the document store. Every call is a
// single remote round trip: no client-side retry, no multi-document
// transaction, no pagination. AddRecord and UpdateRecord assign the
// createdAt/updatedAt stamps server-side; caller-supplied values for those
// fields are discarded.
type Gateway interface {
	AddRecord(ctx context.Context, c plan.Collection, fields map[string]any) (string, error)
	QueryRecords(ctx context.Context, c plan.Collection, filters []Filter) ([]Record, error)
	UpdateRecord(ctx context.Context, c plan.Collection, id string, fields map[string]any) error
	DeleteRecord(ctx context.Context, c plan.Collection, id string) error
}

// StorageError wraps a backend failure. The backend's message is carried
// through unmodified for the dispatcher's error envelope.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
