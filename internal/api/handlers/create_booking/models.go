package create_booking

import (
	"net/url"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Скрытые поля формы сохраняют исходные имена, чтобы разметка сайта не менялась.
type CreateBookingRequest struct {
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone string  `json:"guestPhone"`
	CheckIn    string  `json:"checkIn"` // "2026-11-02"
	Nights     int     `json:"nights"`
	RoomType   string  `json:"roomType"`
	Adults     int     `json:"adults"`
	Kids       int     `json:"kids"`
	Notes      *string `json:"notes,omitempty"`
	TotalPrice *string `json:"totalPrice,omitempty"` // игнорируется

	HPField     string `json:"hbs_hp_field,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message          string                      `json:"message"`
	ConfirmationCode string                      `json:"confirmationCode"`
	CheckInDate      string                      `json:"checkInDate"`
	CheckOutDate     string                      `json:"checkOutDate"`
	Nights           int                         `json:"nights"`
	RoomType         string                      `json:"roomType"`
	Adults           int                         `json:"adults"`
	Kids             int                         `json:"kids"`
	Status           string                      `json:"status"`
	Total            string                      `json:"total"`
	Breakdown        *handlers.BreakdownResponse `json:"breakdown,omitempty"`
	RedirectURL      string                      `json:"redirectUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		GuestPhone:   r.GuestPhone,
		CheckIn:      r.CheckIn,
		Nights:       r.Nights,
		RoomTypeSlug: r.RoomType,
		Adults:       r.Adults,
		Kids:         r.Kids,
		Notes:        r.Notes,
		ClientTotal:  r.TotalPrice,
		Honeypot: createBooking.Honeypot{
			HPField:     r.HPField,
			WebsiteURL:  r.WebsiteURL,
			CompanyName: r.CompanyName,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		Message:          msgBookingCreated,
		ConfirmationCode: resp.ConfirmationCode,
		CheckInDate:      resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     resp.CheckOutDate.Format(domain.DateFormat),
		Nights:           resp.Nights,
		RoomType:         resp.RoomTypeSlug,
		Adults:           resp.Adults,
		Kids:             resp.Kids,
		Status:           resp.Status,
		RedirectURL:      redirectURL(resp.ThankYouPageURL, resp.ConfirmationCode),
	}
	if resp.Breakdown != nil {
		out.Total = resp.Breakdown.Total.StringFixed(domain.PriceScale)
		if resp.ShowBreakdown {
			out.Breakdown = handlers.FromBreakdown(resp.Breakdown)
		}
	}
	return out
}

// redirectURL добавляет код подтверждения к странице благодарности
func redirectURL(page, code string) string {
	if page == "" {
		return ""
	}
	u, err := url.Parse(page)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("code", code)
	u.RawQuery = q.Encode()
	return u.String()
}
