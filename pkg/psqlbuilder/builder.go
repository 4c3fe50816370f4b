// Package psqlbuilder provides squirrel builders preconfigured for PostgreSQL
// ($1, $2, ... placeholders).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select creates a SELECT builder with dollar placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert creates an INSERT builder with dollar placeholders
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update creates an UPDATE builder with dollar placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete creates a DELETE builder with dollar placeholders
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
