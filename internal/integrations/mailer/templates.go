package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
)

type templateData struct {
	HotelName     string
	Code          string
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	CheckIn       string
	CheckOut      string
	Nights        int
	RoomType      string
	Adults        int
	Kids          int
	Notes         string
	Total         string
	ShowBreakdown bool
	Base          string
	ExtraAdults   int
	ExtraAdultsTo string
	ExtraKids     int
	ExtraKidsTo   string
	Subtotal      string
}

const staffHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>Nueva solicitud</title></head>
<body style="font-family:Arial,Helvetica,sans-serif;color:#222">
<h2>Nueva solicitud de reserva</h2>
<table cellpadding="6" style="border-collapse:collapse">
<tr><td><b>Código</b></td><td>{{.Code}}</td></tr>
<tr><td><b>Huésped</b></td><td>{{.GuestName}}</td></tr>
<tr><td><b>Email</b></td><td>{{.GuestEmail}}</td></tr>
<tr><td><b>Teléfono</b></td><td>{{.GuestPhone}}</td></tr>
<tr><td><b>Llegada</b></td><td>{{.CheckIn}}</td></tr>
<tr><td><b>Salida</b></td><td>{{.CheckOut}} ({{.Nights}} noches)</td></tr>
<tr><td><b>Habitación</b></td><td>{{.RoomType}}</td></tr>
<tr><td><b>Adultos / Niños</b></td><td>{{.Adults}} / {{.Kids}}</td></tr>
{{if .ExtraAdults}}<tr><td><b>Adultos extra</b></td><td>{{.ExtraAdults}} × {{.ExtraAdultsTo}}</td></tr>{{end}}
{{if .ExtraKids}}<tr><td><b>Niños extra</b></td><td>{{.ExtraKids}} × {{.ExtraKidsTo}}</td></tr>{{end}}
<tr><td><b>Total</b></td><td>{{.Total}}</td></tr>
{{if .Notes}}<tr><td><b>Notas</b></td><td>{{.Notes}}</td></tr>{{end}}
</table>
</body></html>`

const staffText = `Nueva solicitud de reserva {{.Code}}
Huésped: {{.GuestName}} <{{.GuestEmail}}>, tel. {{.GuestPhone}}
Llegada: {{.CheckIn}}, salida: {{.CheckOut}} ({{.Nights}} noches)
Habitación: {{.RoomType}}, adultos: {{.Adults}}, niños: {{.Kids}}
Total: {{.Total}}
{{if .Notes}}Notas: {{.Notes}}
{{end}}`

const guestHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>Solicitud recibida</title></head>
<body style="font-family:Arial,Helvetica,sans-serif;color:#222">
<h2>Gracias, {{.GuestName}}</h2>
<p>Recibimos su solicitud en {{.HotelName}}. Le contactaremos para confirmar la disponibilidad.</p>
<table cellpadding="6" style="border-collapse:collapse">
<tr><td><b>Código</b></td><td>{{.Code}}</td></tr>
<tr><td><b>Llegada</b></td><td>{{.CheckIn}}</td></tr>
<tr><td><b>Salida</b></td><td>{{.CheckOut}} ({{.Nights}} noches)</td></tr>
<tr><td><b>Habitación</b></td><td>{{.RoomType}}</td></tr>
<tr><td><b>Adultos / Niños</b></td><td>{{.Adults}} / {{.Kids}}</td></tr>
{{if .ShowBreakdown}}<tr><td><b>Tarifa base por noche</b></td><td>{{.Base}}</td></tr>
{{if .ExtraAdults}}<tr><td><b>Adultos extra</b></td><td>{{.ExtraAdults}} × {{.ExtraAdultsTo}}</td></tr>{{end}}
{{if .ExtraKids}}<tr><td><b>Niños extra</b></td><td>{{.ExtraKids}} × {{.ExtraKidsTo}}</td></tr>{{end}}
<tr><td><b>Subtotal por noche</b></td><td>{{.Subtotal}}</td></tr>{{end}}
<tr><td><b>Total estimado</b></td><td>{{.Total}}</td></tr>
</table>
</body></html>`

const guestText = `Gracias, {{.GuestName}}.
Recibimos su solicitud en {{.HotelName}} con el código {{.Code}}.
Llegada: {{.CheckIn}}, salida: {{.CheckOut}} ({{.Nights}} noches)
Habitación: {{.RoomType}}, adultos: {{.Adults}}, niños: {{.Kids}}
Total estimado: {{.Total}}
`

var (
	staffHTMLTmpl = htmltemplate.Must(htmltemplate.New("staff_html").Parse(staffHTML))
	staffTextTmpl = texttemplate.Must(texttemplate.New("staff_text").Parse(staffText))
	guestHTMLTmpl = htmltemplate.Must(htmltemplate.New("guest_html").Parse(guestHTML))
	guestTextTmpl = texttemplate.Must(texttemplate.New("guest_text").Parse(guestText))
)

func newTemplateData(hotelName string, n *BookingNotification) templateData {
	b := n.Booking
	data := templateData{
		HotelName:     hotelName,
		Code:          b.ConfirmationCode,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		CheckIn:       b.CheckInDate.Format(domain.DateFormat),
		CheckOut:      b.CheckOutDate.Format(domain.DateFormat),
		Nights:        b.Nights,
		RoomType:      n.RoomTypeName,
		Adults:        b.AdultsCount,
		Kids:          b.KidsCount,
		Total:         formatMoney(b.TotalPrice.StringFixed(domain.PriceScale)),
		ShowBreakdown: n.ShowBreakdown && n.Breakdown != nil,
	}
	if data.RoomType == "" {
		data.RoomType = b.RoomTypeSlug
	}
	if b.Notes != nil {
		data.Notes = *b.Notes
	}
	if n.Breakdown != nil {
		data.Base = formatMoney(n.Breakdown.Base.StringFixed(domain.PriceScale))
		data.ExtraAdults = n.Breakdown.ExtraAdultsCount
		data.ExtraAdultsTo = formatMoney(n.Breakdown.ExtraAdultPrice.StringFixed(domain.PriceScale))
		data.ExtraKids = n.Breakdown.ExtraKidsCount
		data.ExtraKidsTo = formatMoney(n.Breakdown.ExtraKidPrice.StringFixed(domain.PriceScale))
		data.Subtotal = formatMoney(n.Breakdown.SubtotalPerNight.StringFixed(domain.PriceScale))
	}
	return data
}

func renderPair(htmlTmpl *htmltemplate.Template, textTmpl *texttemplate.Template, data templateData) (string, string, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrRender, htmlTmpl.Name(), err)
	}
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrRender, textTmpl.Name(), err)
	}
	return htmlBuf.String(), textBuf.String(), nil
}

func formatMoney(amount string) string {
	return "$" + amount
}
