package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable = "local_storage"
	colKey            = "item_key"
	colValue          = "item_value"
	colUpdatedAt      = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(key string) (string, []any, error) {
	return psql.
		Select(colValue).
		From(localStorageTable).
		Where(sq.Eq{colKey: key}).
		ToSql()
}

func buildSetItemQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(localStorageTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(" + colKey + ") DO UPDATE SET " +
			colValue + " = excluded." + colValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt).
		ToSql()
}

func buildRemoveItemQuery(key string) (string, []any, error) {
	return psql.
		Delete(localStorageTable).
		Where(sq.Eq{colKey: key}).
		ToSql()
}
