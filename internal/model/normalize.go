package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Lenient coercion helpers for values read back from either backend. Sheet
// cells arrive as strings (possibly comma-decimal, possibly blank), Postgres
// rows arrive driver-typed. Absent or malformed values fall back to the zero
// value instead of erroring; request payloads are validated strictly at the
// HTTP boundary, but stored rows are taken as-is.

// AsString coerces a record value to a string. Nil becomes "".
func AsString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// AsNumber coerces a record value to a decimal. Comma decimals ("12,5") are
// normalized before parsing; empty or unparseable values become zero.
func AsNumber(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	}
	s := strings.TrimSpace(AsString(v))
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// AsInt coerces a record value to an int64 (truncating).
func AsInt(v any) int64 {
	return AsNumber(v).IntPart()
}

// AsBool accepts native booleans and the legacy numeric 1/0 representation.
func AsBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	}
	s := strings.TrimSpace(AsString(v))
	if s == "" {
		return false
	}
	if strings.EqualFold(s, "true") {
		return true
	}
	return !AsNumber(s).IsZero()
}

// AsTime parses RFC3339 timestamps; anything else yields the zero time.
func AsTime(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	}
	s := strings.TrimSpace(AsString(v))
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

// optID maps 0 to nil so optional references serialize as empty cells / NULL.
func optID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
