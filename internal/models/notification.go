package models

// EmailNotificationRequest is one transactional email to a shopper.
// HTMLContent and OrderNumber are optional.
type EmailNotificationRequest struct {
	To          string `json:"to" validate:"required,email"`
	ToName      string `json:"to_name,omitempty"`
	Subject     string `json:"subject" validate:"required"`
	Content     string `json:"content" validate:"required"`
	HTMLContent string `json:"html_content,omitempty"`
	Category    string `json:"category,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
}
