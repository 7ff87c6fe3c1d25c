package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"
)

const boundary = "----=_HOTEL_QUOTE_BOUNDARY"

// Client отправляет письма о бронированиях персоналу и гостю
type Client struct {
	cfg  Config
	send SendFunc
	log  Logger
}

// NewClient создает клиента поверх smtp.SendMail
func NewClient(cfg Config, log Logger) *Client {
	return NewClientWithSender(cfg, smtp.SendMail, log)
}

// NewClientWithSender создает клиента с произвольной функцией отправки
func NewClientWithSender(cfg Config, send SendFunc, log Logger) *Client {
	return &Client{cfg: cfg, send: send, log: log}
}

// Enabled сообщает, настроена ли реальная отправка писем
func (c *Client) Enabled() bool {
	return c.cfg.Host != ""
}

// SendStaffNotification уведомляет персонал о новой заявке
func (c *Client) SendStaffNotification(ctx context.Context, recipients []string, n *BookingNotification) error {
	html, text, err := renderPair(staffHTMLTmpl, staffTextTmpl, newTemplateData(c.cfg.HotelName, n))
	if err != nil {
		return err
	}

	return c.deliver(ctx, message{
		to:      recipients,
		subject: fmt.Sprintf("Nueva solicitud de reserva: %s, %s", n.Booking.GuestName, n.Booking.CheckInDate.Format("2006-01-02")),
		text:    text,
		html:    html,
	})
}

// SendGuestConfirmation отправляет гостю подтверждение получения заявки
func (c *Client) SendGuestConfirmation(ctx context.Context, n *BookingNotification) error {
	html, text, err := renderPair(guestHTMLTmpl, guestTextTmpl, newTemplateData(c.cfg.HotelName, n))
	if err != nil {
		return err
	}

	return c.deliver(ctx, message{
		to:      []string{n.Booking.GuestEmail},
		subject: fmt.Sprintf("Hemos recibido su solicitud - %s", c.cfg.HotelName),
		text:    text,
		html:    html,
	})
}

func (c *Client) deliver(ctx context.Context, msg message) error {
	to := make([]string, 0, len(msg.to))
	for _, addr := range msg.to {
		if addr = safeHeader(addr); addr != "" {
			to = append(to, addr)
		}
	}
	if len(to) == 0 {
		return ErrNoRecipients
	}

	if !c.Enabled() {
		c.log.Info("[MOCK EMAIL] to=%s subject=%q", strings.Join(to, ","), msg.subject)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	var auth smtp.Auth
	if c.cfg.Username != "" {
		auth = smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	}

	from := c.cfg.From
	if from == "" {
		from = c.cfg.Username
	}

	start := time.Now()
	if err := c.send(addr, auth, from, to, c.build(from, to, msg)); err != nil {
		c.log.Error("Failed to send email to=%s: %v", strings.Join(to, ","), err)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	c.log.Info("Email sent to=%s in %s", strings.Join(to, ","), time.Since(start))
	return nil
}

func (c *Client) build(from string, to []string, msg message) []byte {
	fromHeader := from
	if c.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", safeHeader(c.cfg.FromName)), from)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", fromHeader))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", safeHeader(msg.subject))))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(msg.text + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(msg.html + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(sb.String())
}

// safeHeader убирает переводы строк из значения заголовка
func safeHeader(s string) string {
	return strings.TrimSpace(headerReplacer.Replace(s))
}

var headerReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
