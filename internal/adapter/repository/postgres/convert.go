package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/postgres/generated"
	"github.com/iho/cashflow/internal/usecase"
)

// ErrForeignTransaction is returned when a write is handed a transaction
// that was not started by TxManager.
var ErrForeignTransaction = errors.New("transaction was not started by this repository")

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func txQueries(tx usecase.Transaction) (*generated.Queries, error) {
	pgTx, ok := tx.(*Tx)
	if !ok {
		return nil, ErrForeignTransaction
	}

	return generated.New(pgTx.PgxTx()), nil
}

func toEntry(year, month int32, categoryID int64, categoryType string, amount pgtype.Numeric) (domain.Entry, error) {
	ct, err := domain.ParseCategoryType(categoryType)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("category %d: %w", categoryID, err)
	}

	return domain.Entry{
		Year:         int(year),
		Month:        int(month),
		CategoryID:   categoryID,
		CategoryType: ct,
		Amount:       numericToDecimal(amount),
	}, nil
}
