package booking_flow

import "github.com/m04kA/SMC-PetCareService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (*sql.DB или транзакция)
type DBExecutor = txmanager.DBExecutor
