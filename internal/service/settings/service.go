package settings

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-HotelQuoteService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/settings/models"
)

// Service сервис глобальных настроек отеля
type Service struct {
	repo     SettingsRepository
	defaults domain.HotelSettings
	logger   Logger
}

// NewService создает сервис настроек.
// defaults используются для первичного заполнения, если строка настроек еще не создана.
func NewService(repo SettingsRepository, defaults *domain.HotelSettings, logger Logger) *Service {
	if defaults == nil {
		defaults = domain.DefaultHotelSettings()
	}
	return &Service{
		repo:     repo,
		defaults: *defaults,
		logger:   logger,
	}
}

// Get возвращает настройки, при первом обращении сохраняет значения по умолчанию
func (s *Service) Get(ctx context.Context) (*domain.HotelSettings, error) {
	current, err := s.repo.Get(ctx)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: settings not found, seeding defaults")
	seed := s.defaults
	seed.StaffEmails = append([]string{}, s.defaults.StaffEmails...)
	saved, err := s.repo.Save(ctx, &seed)
	if err != nil {
		s.logger.Error("Get: failed to seed default settings: %v", err)
		return nil, fmt.Errorf("%w: Get - seed defaults: %v", ErrInternal, err)
	}

	return saved, nil
}

// ExtraRates возвращает текущие цены за дополнительных гостей
func (s *Service) ExtraRates(ctx context.Context) (domain.ExtraRates, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return domain.ExtraRates{}, err
	}
	return current.ExtraRates(), nil
}

// Update применяет только переданные поля. Отрицательные цены приводятся к нулю.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*domain.HotelSettings, error) {
	s.logger.Info("Update: updating hotel settings")

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.PriceExtraAdult != nil {
		updated.PriceExtraAdult = clampPrice(*req.PriceExtraAdult)
	}
	if req.PriceExtraKid != nil {
		updated.PriceExtraKid = clampPrice(*req.PriceExtraKid)
	}
	if req.StaffEmails != nil {
		emails, err := parseStaffEmails(*req.StaffEmails)
		if err != nil {
			s.logger.Warn("Update: invalid staff emails: %v", err)
			return nil, err
		}
		updated.StaffEmails = emails
	}
	if req.ShowPriceBreakdown != nil {
		updated.ShowPriceBreakdown = *req.ShowPriceBreakdown
	}
	if req.ThankYouPageURL != nil {
		pageURL, err := parsePageURL(*req.ThankYouPageURL)
		if err != nil {
			s.logger.Warn("Update: invalid thank-you page url: %v", err)
			return nil, err
		}
		updated.ThankYouPageURL = pageURL
	}

	saved, err := s.repo.Save(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: hotel settings updated, staff_recipients=%d", len(saved.StaffEmails))
	return saved, nil
}

func clampPrice(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v.Round(domain.PriceScale)
}

func parseStaffEmails(raw string) ([]string, error) {
	emails := settingsRepo.SplitEmails(raw)
	for _, email := range emails {
		if !domain.IsValidEmail(email) {
			return nil, fmt.Errorf("%w: invalid staff email %q", ErrInvalidInput, email)
		}
	}
	return emails, nil
}

func parsePageURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: thankyou_page_url must be an absolute http(s) url", ErrInvalidInput)
	}
	return u.String(), nil
}
