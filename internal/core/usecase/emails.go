package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"
)

// MailSettings - реквизиты компании, которые подставляются в письма.
type MailSettings struct {
	CompanyName    string
	ContactEmail   string // ящик оператора, куда приходят обращения
	SiteURL        string
	CompanyAddress string
	CompanyPhone   string
}

// DefaultMailSettings используются, если конфигурация не переопределила значения.
func DefaultMailSettings() MailSettings {
	return MailSettings{
		CompanyName:    "Russ Rentals",
		ContactEmail:   "contact@russrentals.com",
		SiteURL:        "https://russrentals.com",
		CompanyAddress: "123 Main Street, Springfield, IL 62701",
		CompanyPhone:   "(555) 123-4567",
	}
}

// html/template экранирует пользовательский ввод в теле письма.
var (
	operatorInquiryTmpl = template.Must(template.New("operator_inquiry").Parse(`
<h2>New Inquiry from {{.Company.CompanyName}} Website</h2>
<p><strong>Name:</strong> {{.Inquiry.Name}}</p>
<p><strong>Email:</strong> {{.Inquiry.Email}}</p>
{{if .Inquiry.Phone}}<p><strong>Phone:</strong> {{.Inquiry.Phone}}</p>{{end}}
<p><strong>Inquiry Type:</strong> {{.Inquiry.InquiryType.Label}}</p>
{{if .Inquiry.PropertyInterest}}<p><strong>Property Interest:</strong> {{.Inquiry.PropertyInterest}}</p>{{end}}
{{if .Inquiry.PreferredDate}}<p><strong>Preferred Date:</strong> {{.Inquiry.PreferredDate}}</p>{{end}}
{{if .Inquiry.PreferredTime}}<p><strong>Preferred Time:</strong> {{.Inquiry.PreferredTime}}</p>{{end}}
<p><strong>Message:</strong></p>
<p>{{.Inquiry.Message}}</p>
`))

	inquiryConfirmationTmpl = template.Must(template.New("inquiry_confirmation").Parse(`
<h2>Thank you for reaching out!</h2>
<p>Hi {{.Inquiry.Name}},</p>
<p>We have received your inquiry and will get back to you within 24 hours.</p>
{{if .IsViewing}}<p>We'll confirm your viewing request for {{.Inquiry.PreferredDate}}{{if .Inquiry.PreferredTime}} at {{.Inquiry.PreferredTime}}{{end}} shortly.</p>{{end}}
<p>Best regards,<br>The {{.Company.CompanyName}} Team</p>
<p><small>{{.Company.CompanyAddress}}<br>{{.Company.CompanyPhone}}</small></p>
`))

	welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h2>Welcome to {{.Company.CompanyName}}{{if .Subscriber.FirstName}}, {{.Subscriber.FirstName}}{{end}}!</h2>
<p>Thank you for subscribing to our newsletter. You'll be the first to know about:</p>
<ul>
  <li>New property listings</li>
  <li>Special promotions</li>
  <li>Rental tips and advice</li>
</ul>
<p>Start browsing our available properties today:</p>
<p><a href="{{.PropertiesURL}}">View Properties</a></p>
<p>Best regards,<br>The {{.Company.CompanyName}} Team</p>
<p><small>{{.Company.CompanyAddress}}<br>{{.Company.CompanyPhone}}</small></p>
`))

	subscriberNoticeTmpl = template.Must(template.New("subscriber_notice").Parse(`
<h2>New Newsletter Subscriber</h2>
<p><strong>Email:</strong> {{.Subscriber.Email}}</p>
{{if .Subscriber.FirstName}}<p><strong>Name:</strong> {{.Subscriber.FirstName}}</p>{{end}}
<p><strong>Subscribed at:</strong> {{.SubscribedAt}}</p>
`))
)

type inquiryMailData struct {
	Company   MailSettings
	Inquiry   *domain.Inquiry
	IsViewing bool
}

type subscriberMailData struct {
	Company       MailSettings
	Subscriber    *domain.Subscriber
	PropertiesURL string
	SubscribedAt  string
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// operatorInquiryEmail - уведомление оператору. Ответ уходит сразу отправителю.
func operatorInquiryEmail(settings MailSettings, inquiry *domain.Inquiry) (port.EmailMessage, error) {
	html, err := render(operatorInquiryTmpl, inquiryMailData{Company: settings, Inquiry: inquiry})
	if err != nil {
		return port.EmailMessage{}, err
	}
	return port.EmailMessage{
		To:      []string{settings.ContactEmail},
		ReplyTo: inquiry.Email,
		Subject: fmt.Sprintf("New Inquiry: %s - %s", inquiry.InquiryType.Label(), inquiry.Name),
		HTML:    html,
	}, nil
}

func inquiryConfirmationEmail(settings MailSettings, inquiry *domain.Inquiry) (port.EmailMessage, error) {
	html, err := render(inquiryConfirmationTmpl, inquiryMailData{
		Company:   settings,
		Inquiry:   inquiry,
		IsViewing: inquiry.InquiryType == domain.InquiryTypeViewing && inquiry.PreferredDate != "",
	})
	if err != nil {
		return port.EmailMessage{}, err
	}
	return port.EmailMessage{
		To:      []string{inquiry.Email},
		Subject: fmt.Sprintf("Thank you for contacting %s", settings.CompanyName),
		HTML:    html,
	}, nil
}

func welcomeEmail(settings MailSettings, subscriber *domain.Subscriber) (port.EmailMessage, error) {
	html, err := render(welcomeTmpl, subscriberMailData{
		Company:       settings,
		Subscriber:    subscriber,
		PropertiesURL: settings.SiteURL + "/properties",
	})
	if err != nil {
		return port.EmailMessage{}, err
	}
	return port.EmailMessage{
		To:      []string{subscriber.Email},
		Subject: fmt.Sprintf("Welcome to %s!", settings.CompanyName),
		HTML:    html,
	}, nil
}

func subscriberNoticeEmail(settings MailSettings, subscriber *domain.Subscriber) (port.EmailMessage, error) {
	html, err := render(subscriberNoticeTmpl, subscriberMailData{
		Company:      settings,
		Subscriber:   subscriber,
		SubscribedAt: subscriber.SubscribedAt.Format(time.RFC1123),
	})
	if err != nil {
		return port.EmailMessage{}, err
	}
	return port.EmailMessage{
		To:      []string{settings.ContactEmail},
		Subject: "New Newsletter Subscriber",
		HTML:    html,
	}, nil
}
