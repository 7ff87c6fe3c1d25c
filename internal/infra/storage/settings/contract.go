package settings

import "github.com/m04kA/SMC-HotelQuoteService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
