package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"inventario-activos/models"
)

// DefaultGmailSendURL is the Gmail REST send endpoint.
const DefaultGmailSendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// MailConfig holds sender and notification addresses.
type MailConfig struct {
	From     string
	NotifyTo string
}

// MailConfigFromEnv reads MAIL_FROM and MAIL_NOTIFY_TO. The second return
// value is false when mail is not configured; notifications are optional.
func MailConfigFromEnv() (MailConfig, bool) {
	from := strings.TrimSpace(os.Getenv("MAIL_FROM"))
	notifyTo := strings.TrimSpace(os.Getenv("MAIL_NOTIFY_TO"))
	if from == "" || notifyTo == "" {
		return MailConfig{}, false
	}
	return MailConfig{From: from, NotifyTo: notifyTo}, true
}

// MailService sends notification mail through the shared authenticated
// transport, with the same one-shot 401 retry as sheet calls.
type MailService struct {
	client  *Client
	cfg     MailConfig
	sendURL string
}

// NewMailService creates a MailService.
func NewMailService(client *Client, cfg MailConfig) *MailService {
	return &MailService{client: client, cfg: cfg, sendURL: DefaultGmailSendURL}
}

// Send delivers one plain-text message.
func (m *MailService) Send(ctx context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		m.cfg.From, to, subject, body)
	payload := map[string]string{
		"raw": base64.RawURLEncoding.EncodeToString([]byte(msg)),
	}

	req, err := m.client.AuthorizedRequest(ctx, http.MethodPost, m.sendURL, payload)
	if err != nil {
		return err
	}
	if err := m.client.Send(req); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// NotifySale mails the configured recipient about a recorded sale.
func (m *MailService) NotifySale(ctx context.Context, item models.Item, sale models.Sale) error {
	subject := fmt.Sprintf("Item sold: %s", item.Name)
	body := fmt.Sprintf("Item %s (%s) was sold to %s for %s by %s on %s.",
		item.Name, item.ID, sale.BuyerName, renderSalePrice(sale.Price),
		sale.SoldBy, sale.Date.Format(models.ShortDateFormat))
	return m.Send(ctx, m.cfg.NotifyTo, subject, body)
}
