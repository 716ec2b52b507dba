package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
)

// amountScale is the number of fractional digits persisted for every amount
const amountScale = 8

// Amount is an exact decimal column. Postgres stores it as numeric(20,8),
// other dialects as text in fixed 8-digit notation.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal for persistence
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// GormDBDataType picks the column type per dialect
func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "numeric(20,8)"
	}
	return "text"
}

// Value implements driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.StringFixed(amountScale), nil
}

// Scan implements sql.Scanner
func (a *Amount) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		a.Decimal = decimal.Zero
		return nil
	case string:
		return a.parse(v)
	case []byte:
		return a.parse(string(v))
	default:
		if err := a.Decimal.Scan(v); err != nil {
			return fmt.Errorf("scan amount: %w", err)
		}
		return nil
	}
}

func (a *Amount) parse(s string) error {
	d, err := entity.ParseStoredAmount(s)
	if err != nil {
		return fmt.Errorf("scan amount: %w", err)
	}
	a.Decimal = d
	return nil
}
