package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/shared/constant"
	"salon/shared/logger"
	"strings"
)

var errEmptyInsert = errors.New("no insertable columns")

// Table is a read/insert accessor for one table whose rows scan into T.
// Columns come from the `db` tags of T.
type Table[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
}

func NewTable[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Table[T] {
	var zero T

	return Table[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       getColumns(reflect.TypeOf(zero)),
	}
}

// Get returns the row with the given primary key. The boolean is false when no row matches.
func (repo *Table[T]) Get(ctx context.Context, id int) (T, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", strings.Join(repo.columns, ", "), repo.table, repo.primaryColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	err := repo.db.Read.GetContext(ctx, &model, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, true, nil
}

// GetAll returns every row in primary key order.
func (repo *Table[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC", strings.Join(repo.columns, ", "), repo.table, repo.primaryColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	err := repo.db.Read.SelectContext(ctx, &models, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

// Insert writes the `db`-tagged fields of arg and returns the stored row,
// including columns the database assigns.
func (repo *Table[T]) Insert(ctx context.Context, arg any) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	var model T

	insertColumns := getColumns(reflect.TypeOf(arg))
	if len(insertColumns) == 0 {
		return model, errEmptyInsert
	}

	placeholders := make([]string, 0, len(insertColumns))
	for _, col := range insertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		repo.table,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(repo.columns, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Write.NamedQueryContext(ctx, query, arg)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}
	defer rows.Close()

	if !rows.Next() {
		err = rows.Err()
		if err == nil {
			err = sql.ErrNoRows
		}

		scope.TraceError(err)

		return model, fmt.Errorf("failed to read inserted data (%s): %w", repo.entity, err)
	}

	if err = rows.StructScan(&model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to scan inserted data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func getColumns(reflectType reflect.Type) []string {
	if reflectType == nil {
		return nil
	}

	for reflectType.Kind() == reflect.Pointer {
		reflectType = reflectType.Elem()
	}

	if reflectType.Kind() != reflect.Struct {
		return nil
	}

	columns := []string{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}
