package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"digital-menu/internal/domain"

	"github.com/stretchr/testify/assert"
)

func newTestTelegram(t *testing.T, server *httptest.Server) *TelegramChannel {
	t.Helper()
	channel, err := NewTelegramChannel("test-token", "42", server.Client())
	assert.NoError(t, err)
	channel.baseURL = server.URL
	return channel
}

func TestNewTelegramChannel_MissingCredentials(t *testing.T) {
	channel, err := NewTelegramChannel("", "42", nil)
	assert.Nil(t, channel)
	assert.Error(t, err)

	channel, err = NewTelegramChannel("token", "", nil)
	assert.Nil(t, channel)
	assert.Error(t, err)
}

func TestTelegramChannel_SendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	channel := newTestTelegram(t, server)

	err := channel.Send(context.Background(), domain.Notification{
		Kind:  domain.NotificationWaiterCall,
		Table: "5",
	})

	assert.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "42", gotBody["chat_id"])
	assert.Equal(t, "Waiter call - table 5", gotBody["text"])
}

func TestTelegramChannel_SendOrderText(t *testing.T) {
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	channel := newTestTelegram(t, server)

	err := channel.Send(context.Background(), domain.Notification{
		Kind:  domain.NotificationOrderPlaced,
		Table: "5",
		Order: &domain.Order{
			Table:       "5",
			TotalAmount: 3497,
			Lines: []domain.OrderLine{
				{Name: "Margherita Pizza", Quantity: 2, Total: 2598},
				{Name: "Caesar Salad", Quantity: 1, Total: 899},
			},
			Timestamp: time.Now(),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "New order - table 5\n2x Margherita Pizza - 25.98\n1x Caesar Salad - 8.99\nTotal: 34.97", gotBody["text"])
}

func TestTelegramChannel_SendPhotoForPayment(t *testing.T) {
	var gotPath, gotCaption string
	var gotPhoto []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotCaption = r.FormValue("caption")

		file, _, err := r.FormFile("photo")
		assert.NoError(t, err)
		defer file.Close()
		buf := make([]byte, 16)
		n, _ := file.Read(buf)
		gotPhoto = buf[:n]

		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	channel := newTestTelegram(t, server)

	err := channel.Send(context.Background(), domain.Notification{
		Kind:   domain.NotificationPaymentConfirmation,
		Table:  "5",
		Method: "card",
		Asset:  []byte("fake-png"),
		Order:  &domain.Order{Table: "5", TotalAmount: 899, Lines: []domain.OrderLine{{Name: "Caesar Salad", Quantity: 1, Total: 899}}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendPhoto", gotPath)
	assert.Contains(t, gotCaption, "Payment confirmation - table 5")
	assert.Contains(t, gotCaption, "Method: card")
	assert.Equal(t, "fake-png", string(gotPhoto))
}

func TestTelegramChannel_APIFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"ok":false,"description":"Unauthorized"}`, http.StatusUnauthorized)
			},
		},
		{
			name: "ok false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"ok":false}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			channel := newTestTelegram(t, server)

			err := channel.Send(context.Background(), domain.Notification{
				Kind:  domain.NotificationBillRequest,
				Table: "5",
			})
			assert.Error(t, err)
		})
	}
}
