package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/validation"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate accepts date-like text and returns the calendar date at
// midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TruncateDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// TruncateDate drops the clock part, keeping the UTC calendar date.
func TruncateDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Date is a calendar date carried as JSON text.
type Date struct{ time.Time }

func NewDate(t time.Time) Date { return Date{TruncateDate(t)} }

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// DatePtr converts an optional model date to its wire form.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// OptionalDate distinguishes an absent field from an explicit null:
// Set is true whenever the key was present, Null when its value was null.
type OptionalDate struct {
	Set  bool
	Null bool
	Date time.Time
}

func (o *OptionalDate) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Null = true
		return nil
	}
	var d Date
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Date = d.Time
	return nil
}

// CPF normalises to digits only while decoding.
type CPF string

func (c *CPF) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("cpf must be a string: %w", err)
	}
	*c = CPF(validation.NormalizeCPF(s))
	return nil
}

func (c CPF) String() string { return string(c) }

// RecordFilter is bound from the query string of list endpoints.
type RecordFilter struct {
	EmployeeID uint   `form:"employee_id"`
	From       string `form:"from"` // YYYY-MM-DD, inclusive
	To         string `form:"to"`   // YYYY-MM-DD, inclusive
}

// ListFilter is the parsed form of RecordFilter handed to services.
type ListFilter struct {
	EmployeeID uint
	From       *time.Time
	To         *time.Time
}

// Parse validates the optional date bounds.
func (f RecordFilter) Parse() (ListFilter, error) {
	out := ListFilter{EmployeeID: f.EmployeeID}
	if f.From != "" {
		t, err := ParseDate(f.From)
		if err != nil {
			return out, err
		}
		out.From = &t
	}
	if f.To != "" {
		t, err := ParseDate(f.To)
		if err != nil {
			return out, err
		}
		out.To = &t
	}
	if out.From != nil && out.To != nil && out.To.Before(*out.From) {
		return out, fmt.Errorf("to precedes from")
	}
	return out, nil
}

// UpsertResult reports the outcome of one row of a bulk upsert.
// Status: "upserted" | "failed"
type UpsertResult struct {
	Index  int    `json:"index"`
	ID     uint   `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	UpsertStatusOK     = "upserted"
	UpsertStatusFailed = "failed"
)

// BulkResult is returned by bulk inserts.
type BulkResult struct {
	Count int `json:"count"`
}
