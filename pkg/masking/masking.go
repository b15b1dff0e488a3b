// Package masking applies the registry's PII rules to query results before
// they leave the service. Raw values for masked columns never reach chat.
package masking

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
)

const (
	// RedactedText replaces every value of a redact-strategy column.
	RedactedText = "[REDACTED]"

	hashPrefixLen = 12
)

// Masker rewrites result tables per column masking strategy.
type Masker struct {
	faker *gofakeit.Faker
}

// NewMasker creates a masker with its own faker source.
func NewMasker() *Masker {
	return &Masker{faker: gofakeit.New(0)}
}

// MaskTable returns a masked copy of the table. Columns outside the
// registry, non-PII columns, and nil cells pass through unchanged (redact
// overwrites nil cells too, matching the column-wide blanket).
func (m *Masker) MaskTable(t *models.Table) *models.Table {
	if t == nil || len(t.Rows) == 0 {
		return t
	}

	masked := t.Clone()
	for idx, name := range masked.Columns {
		col, ok := schema.Lookup(name)
		if !ok || col.PII == schema.PIINone || col.Masking == schema.MaskNone {
			continue
		}

		for _, row := range masked.Rows {
			switch col.Masking {
			case schema.MaskRedact:
				row[idx] = RedactedText
			case schema.MaskHash:
				if row[idx] != nil {
					row[idx] = hashValue(row[idx])
				}
			case schema.MaskFaker:
				if row[idx] != nil {
					row[idx] = m.fakeValue(name)
				}
			}
		}
	}
	return masked
}

// hashValue replaces a value with a short stable digest, preserving
// joinability across rows without exposing the original.
func hashValue(v any) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%v", v)))
	return hex.EncodeToString(sum[:])[:hashPrefixLen]
}

// fakeValue picks a faker class from the column name.
func (m *Masker) fakeValue(column string) string {
	name := strings.ToLower(column)
	switch {
	case strings.Contains(name, "name"):
		return m.faker.Name()
	case strings.Contains(name, "email"):
		return m.faker.Email()
	case strings.Contains(name, "phone"):
		return m.faker.Phone()
	case strings.Contains(name, "address"),
		strings.Contains(name, "city"),
		strings.Contains(name, "state"):
		return m.faker.City()
	case strings.Contains(name, "company"):
		return m.faker.Company()
	default:
		return m.faker.Word()
	}
}
