package schedule

import "github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
