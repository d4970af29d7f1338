package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"digital-menu/internal/domain"
)

// TelegramChannel delivers staff notifications through the Telegram Bot API:
// sendMessage for text payloads, sendPhoto with a multipart body when a
// proof-of-payment asset is attached.
type TelegramChannel struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  string
}

func NewTelegramChannel(token, chatID string, client *http.Client) (*TelegramChannel, error) {
	if token == "" || chatID == "" {
		return nil, fmt.Errorf("missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &TelegramChannel{
		client:  client,
		baseURL: "https://api.telegram.org",
		token:   token,
		chatID:  chatID,
	}, nil
}

func (t *TelegramChannel) Send(ctx context.Context, n domain.Notification) error {
	if n.Kind == domain.NotificationPaymentConfirmation && len(n.Asset) > 0 {
		return t.sendPhoto(ctx, formatNotification(n), n.Asset)
	}
	return t.sendMessage(ctx, formatNotification(n))
}

func (t *TelegramChannel) sendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return t.do(req)
}

func (t *TelegramChannel) sendPhoto(ctx context.Context, caption string, photo []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("chat_id", t.chatID); err != nil {
		return err
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return err
	}
	part, err := writer.CreateFormFile("photo", "payment.jpg")
	if err != nil {
		return err
	}
	if _, err := part.Write(photo); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendPhoto", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return t.do(req)
}

func (t *TelegramChannel) do(req *http.Request) error {
	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, body)
	}

	var result struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("malformed telegram response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API rejected the message")
	}
	return nil
}

// formatNotification renders the staff-readable message text.
func formatNotification(n domain.Notification) string {
	var b strings.Builder

	switch n.Kind {
	case domain.NotificationOrderPlaced:
		fmt.Fprintf(&b, "New order - table %s\n", n.Table)
		writeOrderLines(&b, n.Order)
	case domain.NotificationPaymentConfirmation:
		fmt.Fprintf(&b, "Payment confirmation - table %s\nMethod: %s\n", n.Table, n.Method)
		writeOrderLines(&b, n.Order)
	case domain.NotificationWaiterCall:
		fmt.Fprintf(&b, "Waiter call - table %s", n.Table)
	case domain.NotificationBillRequest:
		fmt.Fprintf(&b, "Bill request - table %s", n.Table)
	}

	return b.String()
}

func writeOrderLines(b *strings.Builder, order *domain.Order) {
	if order == nil {
		return
	}
	for _, line := range order.Lines {
		fmt.Fprintf(b, "%dx %s - %s\n", line.Quantity, line.Name, line.Total)
	}
	fmt.Fprintf(b, "Total: %s", order.TotalAmount)
}
