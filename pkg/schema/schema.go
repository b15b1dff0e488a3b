// Package schema is the static catalog of everything the SQL layer may
// reference: the column registry for the single fact table, the metric
// catalog, and the named time patterns. All of it is immutable at runtime.
package schema

import (
	"sort"
	"strings"
)

// Table is the only table generated SQL is allowed to reference.
const Table = "sme_analytics.sme_leadbookingrevenue"

// DefaultDateColumn anchors time filters unless a booking metric overrides it.
const DefaultDateColumn = "leaddate"

// BookingDateColumn is used when the selected metric is booking-oriented.
const BookingDateColumn = "bookingdate"

// DataType is the normalized warehouse type of a column.
type DataType string

const (
	TypeInt    DataType = "int"
	TypeBigInt DataType = "bigint"
	TypeDouble DataType = "double"
	TypeString DataType = "string"
	TypeDate   DataType = "date"
)

// PIILevel classifies how sensitive a column is.
type PIILevel string

const (
	PIINone PIILevel = "none"
	PIILow  PIILevel = "low"
	PIIHigh PIILevel = "high"
)

// MaskingStrategy selects how a column's values are masked on output.
type MaskingStrategy string

const (
	MaskNone   MaskingStrategy = "none"
	MaskHash   MaskingStrategy = "hash"
	MaskFaker  MaskingStrategy = "faker"
	MaskRedact MaskingStrategy = "redact"
)

// Column describes one queryable column of the fact table.
type Column struct {
	Name        string
	Type        DataType
	Categorical bool
	PII         PIILevel
	Masking     MaskingStrategy
	Description string
	Samples     []string
}

var byName = func() map[string]Column {
	m := make(map[string]Column, len(columns))
	for _, c := range columns {
		m[c.Name] = c
	}
	return m
}()

// Lookup returns the column descriptor and whether it exists.
func Lookup(name string) (Column, bool) {
	c, ok := byName[name]
	return c, ok
}

// Exists reports whether the column is part of the registry.
func Exists(name string) bool {
	_, ok := byName[name]
	return ok
}

// ValidDimension reports whether a column may be used as a GROUP BY key:
// it must exist and must not be high-PII.
func ValidDimension(name string) bool {
	c, ok := byName[name]
	return ok && c.PII != PIIHigh
}

// CategoricalFilterColumn reports whether a column is a first-class filter
// target. Non-categorical registry columns are still accepted by the builder
// for literal conditions.
func CategoricalFilterColumn(name string) bool {
	c, ok := byName[name]
	return ok && c.Categorical
}

// StringTyped reports whether a column holds string data, making it a
// candidate for LIKE-based fuzzy filtering.
func StringTyped(name string) bool {
	c, ok := byName[name]
	return ok && c.Type == TypeString
}

// CategoricalColumns returns the names of all categorical, non-high-PII
// columns in stable sorted order.
func CategoricalColumns() []string {
	var out []string
	for _, c := range columns {
		if c.Categorical && c.PII != PIIHigh {
			out = append(out, c.Name)
		}
	}
	sort.Strings(out)
	return out
}

// All returns every column descriptor in declaration order.
func All() []Column {
	return columns
}

// Describe formats the registry for LLM prompt context, one line per
// non-high-PII column.
func Describe() string {
	var b strings.Builder
	for _, c := range columns {
		if c.PII == PIIHigh {
			continue
		}
		b.WriteString("- ")
		b.WriteString(c.Name)
		b.WriteString(" (")
		b.WriteString(string(c.Type))
		b.WriteString(")")
		if c.Description != "" {
			b.WriteString(": ")
			b.WriteString(c.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
