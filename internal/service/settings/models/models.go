package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// Request модели

// UpdateSettingsRequest частичное обновление настроек, nil поля не меняются
type UpdateSettingsRequest struct {
	PriceExtraAdult    *decimal.Decimal `json:"priceExtraAdult,omitempty"`
	PriceExtraKid      *decimal.Decimal `json:"priceExtraKid,omitempty"`
	StaffEmails        *string          `json:"staffEmails,omitempty"` // через запятую
	ShowPriceBreakdown *bool            `json:"showPriceBreakdown,omitempty"`
	ThankYouPageURL    *string          `json:"thankYouPageUrl,omitempty"`
}

// IsEmpty проверяет, что в запросе нет ни одного поля
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.PriceExtraAdult == nil && r.PriceExtraKid == nil && r.StaffEmails == nil &&
		r.ShowPriceBreakdown == nil && r.ThankYouPageURL == nil
}

// Response модели

// SettingsResponse настройки для админки
type SettingsResponse struct {
	PriceExtraAdult    string    `json:"priceExtraAdult"`
	PriceExtraKid      string    `json:"priceExtraKid"`
	StaffEmails        []string  `json:"staffEmails"`
	ShowPriceBreakdown bool      `json:"showPriceBreakdown"`
	ThankYouPageURL    string    `json:"thankYouPageUrl"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(s *domain.HotelSettings) *SettingsResponse {
	emails := s.StaffEmails
	if emails == nil {
		emails = []string{}
	}
	return &SettingsResponse{
		PriceExtraAdult:    s.PriceExtraAdult.StringFixed(domain.PriceScale),
		PriceExtraKid:      s.PriceExtraKid.StringFixed(domain.PriceScale),
		StaffEmails:        emails,
		ShowPriceBreakdown: s.ShowPriceBreakdown,
		ThankYouPageURL:    s.ThankYouPageURL,
		UpdatedAt:          s.UpdatedAt,
	}
}
