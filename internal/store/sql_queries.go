package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger/models"
)

const transactionsTable = "transactions"

// transactionColumns is the column order every SELECT scans in.
var transactionColumns = []string{"id", "amount", "description", "category", "date"}

// buildInsertTransactionQuery builds an INSERT returning the assigned id.
func buildInsertTransactionQuery(b sq.StatementBuilderType, t models.Transaction) (string, []any, error) {
	query, args, err := b.
		Insert(transactionsTable).
		Columns("amount", "description", "category", "date").
		Values(t.Amount, t.Description, t.Category, t.Date).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectTransactionsQuery builds a SELECT of every transaction in
// insertion order.
func buildSelectTransactionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectTransactionByIDQuery builds a SELECT of a single transaction.
func buildSelectTransactionByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteTransactionByIDQuery builds a DELETE of a single transaction.
func buildDeleteTransactionByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(transactionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
