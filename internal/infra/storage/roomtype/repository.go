package roomtype

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/psqlbuilder"
)

const tableName = "room_types"

var columns = []string{
	"slug",
	"name",
	"base_price",
	"beds",
	"base_occupancy",
	"max_total",
	"max_adults",
	"max_kids",
	"overflow_rule",
	"detail_page_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий реестра типов номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все типы номеров в порядке реестра (по slug)
func (r *Repository) GetAll(ctx context.Context) (domain.RoomTypes, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roomTypes := make(domain.RoomTypes, 0)
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan room type: %v", ErrScanRow, err)
		}
		roomTypes = append(roomTypes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return roomTypes, nil
}

// GetBySlug возвращает тип номера по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	rt, err := scanRoomType(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - scan room type: %v", ErrScanRow, err)
	}

	return rt, nil
}

// Exists проверяет, занят ли slug
func (r *Repository) Exists(ctx context.Context, slug string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"slug": slug}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// Count возвращает количество типов номеров
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(tableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// Upsert создает тип номера или обновляет существующий с тем же slug
func (r *Repository) Upsert(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"slug",
			"name",
			"base_price",
			"beds",
			"base_occupancy",
			"max_total",
			"max_adults",
			"max_kids",
			"overflow_rule",
			"detail_page_url",
		).
		Values(
			rt.Slug,
			rt.Name,
			rt.BasePrice,
			rt.Beds,
			rt.BaseOccupancy,
			rt.MaxTotal,
			rt.MaxAdults,
			rt.MaxKids,
			string(rt.OverflowRule),
			rt.DetailPageURL,
		).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			base_price = EXCLUDED.base_price,
			beds = EXCLUDED.beds,
			base_occupancy = EXCLUDED.base_occupancy,
			max_total = EXCLUDED.max_total,
			max_adults = EXCLUDED.max_adults,
			max_kids = EXCLUDED.max_kids,
			overflow_rule = EXCLUDED.overflow_rule,
			detail_page_url = EXCLUDED.detail_page_url,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	saved := *rt
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&saved.CreatedAt, &saved.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return &saved, nil
}

// Delete удаляет тип номера по slug
func (r *Repository) Delete(ctx context.Context, slug string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRoomTypeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoomType(row rowScanner) (*domain.RoomType, error) {
	var (
		rt           domain.RoomType
		overflowRule string
	)

	err := row.Scan(
		&rt.Slug,
		&rt.Name,
		&rt.BasePrice,
		&rt.Beds,
		&rt.BaseOccupancy,
		&rt.MaxTotal,
		&rt.MaxAdults,
		&rt.MaxKids,
		&overflowRule,
		&rt.DetailPageURL,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rt.OverflowRule = domain.OverflowRule(overflowRule)
	return &rt, nil
}
