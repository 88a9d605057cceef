package sendgrid

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendEndpoint = "/v3/mail/send"
	defaultHost  = "https://api.sendgrid.com"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

type emailService struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
}

type Option func(*emailService)

// WithHost points the client at another API host, e.g. a local fake.
func WithHost(host string) Option {
	return func(e *emailService) {
		e.host = host
	}
}

func NewEmailService(apiKey, fromEmail, fromName string, opts ...Option) EmailService {
	e := &emailService{apiKey: apiKey, host: defaultHost, fromEmail: fromEmail, fromName: fromName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *emailService) message(req *models.EmailNotificationRequest) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(req.ToName, req.To))
	personalization.Subject = req.Subject
	if req.OrderNumber != "" {
		personalization.SetCustomArg("order_number", req.OrderNumber)
	}
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	if req.Category != "" {
		message.AddCategories(req.Category)
	}

	return message
}

// Send posts one message. A 429 from SendGrid is retried after the reset
// window the API reports.
func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	request := sendgrid.GetRequest(e.apiKey, sendEndpoint, e.host)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(e.message(req))

	response, err := sendgrid.MakeRequestRetryWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to reach sendgrid: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
