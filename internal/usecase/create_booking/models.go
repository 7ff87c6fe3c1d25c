package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

// Honeypot скрытые поля формы, которые заполняют только боты
type Honeypot struct {
	HPField     string // hbs_hp_field
	WebsiteURL  string // website_url
	CompanyName string // company_name
}

// Filled проверяет, что заполнено хотя бы одно скрытое поле
func (h Honeypot) Filled() bool {
	return h.HPField != "" || h.WebsiteURL != "" || h.CompanyName != ""
}

// Request модель запроса на создание бронирования
type Request struct {
	GuestName    string  // Имя гостя
	GuestEmail   string  // Email гостя
	GuestPhone   string  // Телефон гостя
	CheckIn      string  // Дата заезда "YYYY-MM-DD"
	Nights       int     // Количество ночей, меньше 1 приводится к 1
	RoomTypeSlug string  // Тип номера
	Adults       int     // Количество взрослых
	Kids         int     // Количество детей
	Notes        *string // Дополнительные пожелания (опционально)
	Honeypot     Honeypot

	// Сумма, посчитанная в браузере. Не используется, только сравнивается для лога.
	ClientTotal *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64     // ID бронирования
	ConfirmationCode string    // Код для страницы подтверждения
	CheckInDate      time.Time // Дата заезда
	CheckOutDate     time.Time // Дата выезда
	Nights           int       // Количество ночей
	RoomTypeSlug     string    // Тип номера
	Adults           int       // Количество взрослых
	Kids             int       // Количество детей
	Status           string    // Статус бронирования

	Breakdown       *domain.PriceBreakdown // Расчет стоимости на сервере
	ShowBreakdown   bool                   // Показывать ли гостю расшифровку
	ThankYouPageURL string                 // Страница после отправки формы (опционально)

	CreatedAt time.Time
}
