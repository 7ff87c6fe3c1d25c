package mailer

import "github.com/m04kA/SMC-HotelQuoteService/internal/domain"

// Config параметры SMTP подключения. Пустой Host включает режим без отправки.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	FromName  string
	HotelName string
}

// BookingNotification данные письма о новом бронировании
type BookingNotification struct {
	Booking       *domain.Booking
	RoomTypeName  string
	Breakdown     *domain.PriceBreakdown
	ShowBreakdown bool
}

// message готовое письмо
type message struct {
	to      []string
	subject string
	text    string
	html    string
}
