package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// Request модели

// RoomTypeInput данные для сохранения типа номера.
// Отсутствующие поля получают значения по умолчанию.
type RoomTypeInput struct {
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	BasePrice     *decimal.Decimal `json:"basePrice,omitempty"`
	Beds          *int             `json:"beds,omitempty"`
	BaseOccupancy *int             `json:"baseOccupancy,omitempty"`
	MaxTotal      *int             `json:"maxTotal,omitempty"`
	MaxAdults     *int             `json:"maxAdults,omitempty"`
	MaxKids       *int             `json:"maxKids,omitempty"`
	OverflowRule  *string          `json:"overflowRule,omitempty"`
	DetailPageURL *string          `json:"detailPageUrl,omitempty"`
}

// ToInput конвертирует доменный тип номера во входные данные сохранения
func ToInput(rt *domain.RoomType) *RoomTypeInput {
	price := rt.BasePrice
	rule := string(rt.OverflowRule)
	url := rt.DetailPageURL
	beds, base, maxTotal, maxAdults, maxKids := rt.Beds, rt.BaseOccupancy, rt.MaxTotal, rt.MaxAdults, rt.MaxKids

	return &RoomTypeInput{
		Slug:          rt.Slug,
		Name:          rt.Name,
		BasePrice:     &price,
		Beds:          &beds,
		BaseOccupancy: &base,
		MaxTotal:      &maxTotal,
		MaxAdults:     &maxAdults,
		MaxKids:       &maxKids,
		OverflowRule:  &rule,
		DetailPageURL: &url,
	}
}

// Response модели

// RoomTypeResponse тип номера для публичной формы и админки
type RoomTypeResponse struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	BasePrice     string `json:"basePrice"` // "1850.00"
	Beds          int    `json:"beds"`
	BaseOccupancy int    `json:"baseOccupancy"`
	MaxTotal      int    `json:"maxTotal"`
	MaxAdults     int    `json:"maxAdults"`
	MaxKids       int    `json:"maxKids"`
	OverflowRule  string `json:"overflowRule"`
	DetailPageURL string `json:"detailPageUrl,omitempty"`
}

// RoomTypeListResponse снимок реестра в порядке slug
type RoomTypeListResponse struct {
	RoomTypes []RoomTypeResponse `json:"roomTypes"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(rt *domain.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		Slug:          rt.Slug,
		Name:          rt.Name,
		BasePrice:     rt.BasePrice.StringFixed(domain.PriceScale),
		Beds:          rt.Beds,
		BaseOccupancy: rt.BaseOccupancy,
		MaxTotal:      rt.MaxTotal,
		MaxAdults:     rt.MaxAdults,
		MaxKids:       rt.MaxKids,
		OverflowRule:  string(rt.OverflowRule),
		DetailPageURL: rt.DetailPageURL,
	}
}

// FromDomainList конвертирует снимок реестра в ответ
func FromDomainList(roomTypes domain.RoomTypes) *RoomTypeListResponse {
	resp := &RoomTypeListResponse{RoomTypes: make([]RoomTypeResponse, 0, len(roomTypes))}
	for _, rt := range roomTypes {
		resp.RoomTypes = append(resp.RoomTypes, *FromDomain(rt))
	}
	return resp
}
