package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/doc_converter/internal/domain"
)

const TableConversions = "conversions"

var conversionColumns = []string{
	"id",
	"original_filename",
	"converted_filename",
	"format",
	"size_bytes",
	"upload_timestamp",
}

type ConversionsRepository struct {
	pool      *pgxpool.Pool
	qb        sq.StatementBuilderType
	txManager *TxManager
}

func NewConversionsRepository(pool *pgxpool.Pool) *ConversionsRepository {
	return &ConversionsRepository{
		pool:      pool,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: NewTxManager(pool),
	}
}

// RecordConversion appends a record. Records are never updated.
func (r *ConversionsRepository) RecordConversion(ctx context.Context, record *domain.ConversionRecord) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableConversions).
		Columns(conversionColumns...).
		Values(
			record.ID,
			record.OriginalFilename,
			record.ConvertedFilename,
			string(record.Format),
			record.SizeBytes,
			record.UploadTimestamp,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() != 1 {
		return fmt.Errorf("failed to record conversion: inserted %d rows", tag.RowsAffected())
	}

	return nil
}

// Conversions returns a page of records, newest first, with the total count
// read from the same snapshot.
func (r *ConversionsRepository) Conversions(
	ctx context.Context,
	limit, offset uint64,
) (conversions []*domain.ConversionRecord, total int, err error) {
	err = r.txManager.WithReadOnlyTransaction(ctx, func(ctx context.Context) error {
		db := extractDB(ctx, r.pool)

		sql, args, err := r.qb.
			Select("COUNT(*)").
			From(TableConversions).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
			return scanRowError(err)
		}

		sql, args, err = r.qb.
			Select(conversionColumns...).
			From(TableConversions).
			OrderBy("upload_timestamp DESC", "id ASC").
			Limit(limit).
			Offset(offset).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		rows, err := db.Query(ctx, sql, args...)
		if err != nil {
			return executeQueryError(err)
		}

		conversions, err = pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.ConversionRecord])
		if err != nil {
			return collectRowsError(err)
		}

		return nil
	})
	if err != nil {
		return nil, -1, err
	}

	return conversions, total, nil
}
