package booking_flow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PetCareService/pkg/txmanager"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

const table = "booking_flows"

var columns = []string{
	"id",
	"user_id",
	"provider_id",
	"step",
	"mode",
	"service_option_id",
	"start_date",
	"end_date",
	"selected_time",
	"pet_id",
	"notes",
	"booking_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий сценариев бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый сценарий
// Пара (user_id, provider_id) уникальна: перед повторным открытием старый сценарий удаляется
// в той же транзакции через DeleteByUserAndProvider
func (r *Repository) Create(ctx context.Context, flow *domain.BookingFlow) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			flow.ID,
			flow.UserID,
			flow.ProviderID,
			flow.Step,
			flow.Mode,
			flow.ServiceOptionID,
			flow.StartDate,
			flow.EndDate,
			nullableTime(flow.SelectedTime),
			flow.PetID,
			flow.Notes,
			flow.BookingID,
			flow.CreatedAt,
			flow.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает сценарий по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingFlow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	flow, err := scanFlow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan flow: %v", ErrScanRow, err)
	}
	return flow, nil
}

// DeleteByUserAndProvider удаляет сценарий пользователя для провайдера, если он есть
func (r *Repository) DeleteByUserAndProvider(ctx context.Context, userID, providerID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"user_id": userID, "provider_id": providerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByUserAndProvider - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByUserAndProvider - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Update сохраняет изменяемые поля сценария
// Запись обновляется, только если шаг в БД равен expected; иначе ErrStepConflict
func (r *Repository) Update(ctx context.Context, flow *domain.BookingFlow, expected domain.FlowStep) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("step", flow.Step).
		Set("mode", flow.Mode).
		Set("service_option_id", flow.ServiceOptionID).
		Set("start_date", flow.StartDate).
		Set("end_date", flow.EndDate).
		Set("selected_time", nullableTime(flow.SelectedTime)).
		Set("pet_id", flow.PetID).
		Set("notes", flow.Notes).
		Set("updated_at", flow.UpdatedAt).
		Where(squirrel.Eq{"id": flow.ID, "step": expected}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "Update", flow.ID, query, args)
}

// TransitionStep атомарно меняет шаг from -> to (compare-and-set)
func (r *Repository) TransitionStep(ctx context.Context, id uuid.UUID, from, to domain.FlowStep, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("step", to).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "step": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: TransitionStep - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "TransitionStep", id, query, args)
}

// SetBookingID запоминает ID бронирования маркетплейса у отправленного сценария
func (r *Repository) SetBookingID(ctx context.Context, id uuid.UUID, bookingID int64, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("booking_id", bookingID).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "step": domain.StepSubmitted}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetBookingID - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "SetBookingID", id, query, args)
}

// Delete удаляет сценарий
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrFlowNotFound
	}
	return nil
}

// DeleteStale удаляет сценарии, не обновлявшиеся с before
// Возвращает количество удаленных записей
func (r *Repository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - execute delete: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - rows affected: %v", ErrExecQuery, err)
	}
	return affected, nil
}

// execAffecting выполняет UPDATE по условию на шаг
// 0 затронутых строк: сценария нет (ErrFlowNotFound) или шаг уже другой (ErrStepConflict)
func (r *Repository) execAffecting(ctx context.Context, executor DBExecutor, op string, id uuid.UUID, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected > 0 {
		return nil
	}

	existsQuery, existsArgs, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build exists query: %v", ErrBuildQuery, op, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&exists); err != nil {
		return fmt.Errorf("%w: %s - check existence: %v", ErrScanRow, op, err)
	}
	if !exists {
		return ErrFlowNotFound
	}
	return ErrStepConflict
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFlow(row rowScanner) (*domain.BookingFlow, error) {
	var (
		flow            domain.BookingFlow
		serviceOptionID sql.NullInt64
		startDate       sql.NullTime
		endDate         sql.NullTime
		selectedTime    types.TimeString
		petID           sql.NullInt64
		notes           sql.NullString
		bookingID       sql.NullInt64
	)

	err := row.Scan(
		&flow.ID,
		&flow.UserID,
		&flow.ProviderID,
		&flow.Step,
		&flow.Mode,
		&serviceOptionID,
		&startDate,
		&endDate,
		&selectedTime,
		&petID,
		&notes,
		&bookingID,
		&flow.CreatedAt,
		&flow.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	flow.ServiceOptionID = nullInt64(serviceOptionID)
	flow.StartDate = nullTime(startDate)
	flow.EndDate = nullTime(endDate)
	flow.PetID = nullInt64(petID)
	flow.BookingID = nullInt64(bookingID)
	if !selectedTime.IsZero() {
		flow.SelectedTime = &selectedTime
	}
	if notes.Valid {
		flow.Notes = &notes.String
	}

	return &flow, nil
}

// nullableTime пустое время пишется как NULL через TimeString.Value
func nullableTime(t *types.TimeString) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
