package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами Postgres ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT-запрос с плейсхолдерами Postgres
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
