package port

import "context"

// EmailMessage - одно исходящее письмо.
type EmailMessage struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// MailerPort - внешний сервис транзакционной почты.
type MailerPort interface {
	// Enabled сообщает, настроен ли сервис. Ненастроенный сервис не отправляет ничего.
	Enabled() bool
	Send(ctx context.Context, msg EmailMessage) error
}
