package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/pricing"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/pkg/sendgrid"
	"github.com/shopspring/decimal"
)

// NotificationService tells the shopper about their order.
type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

type notificationService struct {
	emailService sendgrid.EmailService
}

func NewNotificationService(emailService sendgrid.EmailService) NotificationService {
	return &notificationService{emailService: emailService}
}

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<h2>Thank you, {{.Name}}!</h2>
<p>Your order <strong>{{.Number}}</strong> has been placed.</p>
<table>
{{range .Lines}}<tr><td>{{.Quantity}} x {{.Name}}</td><td>{{.Amount}}</td></tr>
{{end}}</table>
<p>Total: <strong>{{.Total}}</strong></p>`))

type confirmationLine struct {
	Name     string
	Quantity int
	Amount   string
}

type confirmationData struct {
	Name   string
	Number string
	Lines  []confirmationLine
	Total  string
}

func lineName(item models.CartItem) string {
	if item.Variant == "" {
		return item.Name
	}

	return fmt.Sprintf("%s (%s)", item.Name, item.Variant)
}

// ConfirmationEmail renders the plain text and HTML bodies for order.
func ConfirmationEmail(order *models.Order) (*models.EmailNotificationRequest, error) {
	data := confirmationData{
		Name:   order.ShippingAddress.FullName,
		Number: order.OrderNumber,
		Total:  pricing.FormatINR(order.Totals.Total.Round(2)),
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nYour order %s has been placed.\n\n", data.Name, data.Number)

	for _, item := range order.Items {
		line := confirmationLine{
			Name:     lineName(item),
			Quantity: item.Quantity,
			Amount:   pricing.FormatINR(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)),
		}
		data.Lines = append(data.Lines, line)
		fmt.Fprintf(&text, "%d x %s  %s\n", line.Quantity, line.Name, line.Amount)
	}

	fmt.Fprintf(&text, "\nTotal: %s\n", data.Total)

	var html bytes.Buffer
	if err := confirmationHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render confirmation email: %w", err)
	}

	return &models.EmailNotificationRequest{
		To:          order.ShippingAddress.Email,
		ToName:      order.ShippingAddress.FullName,
		Category:    "order-confirmation",
		OrderNumber: order.OrderNumber,
		Subject:     fmt.Sprintf("Order %s confirmed", order.OrderNumber),
		Content:     text.String(),
		HTMLContent: html.String(),
	}, nil
}

func (n *notificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	email, err := ConfirmationEmail(order)
	if err != nil {
		return err
	}

	if err := n.emailService.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send confirmation for %s: %w", order.OrderNumber, err)
	}

	return nil
}
