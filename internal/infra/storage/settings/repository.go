package settings

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/psqlbuilder"
)

const (
	tableName = "hotel_settings"
	rowID     = 1
)

// Repository репозиторий глобальных настроек отеля
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает настройки или ErrSettingsNotFound, если строка еще не создана
func (r *Repository) Get(ctx context.Context) (*domain.HotelSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"price_extra_adult",
		"price_extra_kid",
		"staff_emails",
		"show_price_breakdown",
		"thankyou_page_url",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"id": rowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s           domain.HotelSettings
		staffEmails string
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.PriceExtraAdult,
		&s.PriceExtraKid,
		&staffEmails,
		&s.ShowPriceBreakdown,
		&s.ThankYouPageURL,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.StaffEmails = SplitEmails(staffEmails)
	return &s, nil
}

// Save создает или полностью перезаписывает строку настроек
func (r *Repository) Save(ctx context.Context, s *domain.HotelSettings) (*domain.HotelSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"price_extra_adult",
			"price_extra_kid",
			"staff_emails",
			"show_price_breakdown",
			"thankyou_page_url",
		).
		Values(
			rowID,
			s.PriceExtraAdult,
			s.PriceExtraKid,
			JoinEmails(s.StaffEmails),
			s.ShowPriceBreakdown,
			s.ThankYouPageURL,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			price_extra_adult = EXCLUDED.price_extra_adult,
			price_extra_kid = EXCLUDED.price_extra_kid,
			staff_emails = EXCLUDED.staff_emails,
			show_price_breakdown = EXCLUDED.show_price_breakdown,
			thankyou_page_url = EXCLUDED.thankyou_page_url,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	saved := *s
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&saved.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	return &saved, nil
}

// SplitEmails разбирает список адресов, разделенных запятыми
func SplitEmails(s string) []string {
	emails := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if email := strings.TrimSpace(part); email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

// JoinEmails собирает список адресов в строку для хранения
func JoinEmails(emails []string) string {
	return strings.Join(emails, ",")
}
