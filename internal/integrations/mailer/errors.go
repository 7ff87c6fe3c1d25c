package mailer

import "errors"

var (
	// ErrNoRecipients возвращается, когда письмо некому отправить
	ErrNoRecipients = errors.New("mailer: no recipients")

	// ErrRender возвращается при ошибке сборки письма из шаблона
	ErrRender = errors.New("mailer: failed to render message")

	// ErrSend возвращается, когда SMTP сервер не принял письмо
	ErrSend = errors.New("mailer: failed to send message")
)
