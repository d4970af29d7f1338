package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "digital-menu/internal/api/http"
	"digital-menu/internal/domain"
	"digital-menu/internal/mocks"
	"digital-menu/internal/service"
)

type handlerFixture struct {
	router   *mux.Router
	menu     *mocks.MenuServiceInterface
	channel  *mocks.NotificationChannel
	feedback *mocks.FeedbackServiceInterface
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	menu := mocks.NewMenuServiceInterface(t)
	channel := mocks.NewNotificationChannel(t)
	feedback := mocks.NewFeedbackServiceInterface(t)

	sessions := service.NewSessionManager(
		service.NewDispatcher(channel, time.Second),
		feedback,
		menu,
		nil,
	)

	router := mux.NewRouter()
	httpapi.NewHandler(menu, sessions, "http://localhost:8080").RegisterRoutes(router)

	return &handlerFixture{router: router, menu: menu, channel: channel, feedback: feedback}
}

func (f *handlerFixture) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	fixture := newHandlerFixture(t)

	rr := fixture.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestGetMenuItems(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(*mocks.MenuServiceInterface)
		wantStatus   int
	}{
		{
			name: "success",
			prepareMocks: func(menu *mocks.MenuServiceInterface) {
				menu.On("MenuItems", mock.Anything).Return(testCatalog, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "fetch error",
			prepareMocks: func(menu *mocks.MenuServiceInterface) {
				menu.On("MenuItems", mock.Anything).Return(nil, errors.New("sheets api down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "source not configured",
			prepareMocks: func(menu *mocks.MenuServiceInterface) {
				menu.On("MenuItems", mock.Anything).Return(nil, service.ErrSourceNotConfigured)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fixture := newHandlerFixture(t)
			testCase.prepareMocks(fixture.menu)

			rr := fixture.do(http.MethodGet, "/menu-items", nil)

			assert.Equal(t, testCase.wantStatus, rr.Code)
			if testCase.wantStatus == http.StatusOK {
				var items []domain.MenuItem
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
				assert.Equal(t, testCatalog, items)
			}
		})
	}
}

func TestGetTableQRCode(t *testing.T) {
	fixture := newHandlerFixture(t)

	rr := fixture.do(http.MethodGet, "/tables/5/qrcode", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Body.Bytes())
}

func TestCartEndpoints(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.menu.On("MenuItemsOrDemo", mock.Anything).Return(service.DemoMenuItems())

	rr := fixture.do(http.MethodPost, "/tables/5/cart/items", []byte(`{"id":"1","quantity":2}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = fixture.do(http.MethodGet, "/tables/5/cart", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var cart struct {
		Items       []domain.CartLine `json:"items"`
		TotalAmount float64           `json:"total_amount"`
		TotalItems  int               `json:"total_items"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, 25.98, cart.TotalAmount)

	rr = fixture.do(http.MethodPut, "/tables/5/cart/items/1", []byte(`{"quantity":1}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = fixture.do(http.MethodDelete, "/tables/5/cart/items/1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = fixture.do(http.MethodGet, "/tables/5/cart", nil)
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestAddCartItem_Validation(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMocks func(*mocks.MenuServiceInterface)
		wantStatus   int
	}{
		{
			name:         "bad json",
			body:         "not json",
			prepareMocks: func(*mocks.MenuServiceInterface) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "missing id",
			body:         `{"quantity":1}`,
			prepareMocks: func(*mocks.MenuServiceInterface) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown item",
			body: `{"id":"99"}`,
			prepareMocks: func(menu *mocks.MenuServiceInterface) {
				menu.On("MenuItemsOrDemo", mock.Anything).Return(service.DemoMenuItems())
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fixture := newHandlerFixture(t)
			testCase.prepareMocks(fixture.menu)

			rr := fixture.do(http.MethodPost, "/tables/5/cart/items", []byte(testCase.body))

			assert.Equal(t, testCase.wantStatus, rr.Code)
		})
	}
}

func TestPlaceOrder(t *testing.T) {
	tests := []struct {
		name         string
		channelErr   error
		wantWarning  bool
		wantDeliverd bool
	}{
		{name: "delivered", channelErr: nil, wantDeliverd: true},
		{name: "channel down still creates order", channelErr: errors.New("kafka down"), wantWarning: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fixture := newHandlerFixture(t)
			fixture.menu.On("MenuItemsOrDemo", mock.Anything).Return(service.DemoMenuItems())
			fixture.menu.On("TrackItemOrder", mock.Anything, "1")
			fixture.channel.On("Send", mock.Anything, mock.Anything).Return(testCase.channelErr)

			rr := fixture.do(http.MethodPost, "/tables/5/cart/items", []byte(`{"id":"1","quantity":2}`))
			assert.Equal(t, http.StatusOK, rr.Code)

			rr = fixture.do(http.MethodPost, "/tables/5/order", nil)
			assert.Equal(t, http.StatusCreated, rr.Code)

			var body struct {
				Order     domain.Order `json:"order"`
				Delivered bool         `json:"delivered"`
				Warning   string       `json:"warning"`
			}
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, testCase.wantDeliverd, body.Delivered)
			assert.Equal(t, domain.Cents(2598), body.Order.TotalAmount)
			assert.Equal(t, "5", body.Order.Table)
			if testCase.wantWarning {
				assert.NotEmpty(t, body.Warning)
			} else {
				assert.Empty(t, body.Warning)
			}

			// the cart is cleared either way
			rr = fixture.do(http.MethodGet, "/tables/5/cart", nil)
			var cart struct {
				TotalItems int `json:"total_items"`
			}
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cart))
			assert.Equal(t, 0, cart.TotalItems)
		})
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	fixture := newHandlerFixture(t)

	rr := fixture.do(http.MethodPost, "/tables/5/order", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestConfirmPayment(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.menu.On("MenuItemsOrDemo", mock.Anything).Return(service.DemoMenuItems())
	fixture.menu.On("TrackItemOrder", mock.Anything, "2")
	fixture.channel.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotificationPaymentConfirmation &&
			n.Method == "card" && string(n.Asset) == "fake-png"
	})).Return(nil)

	rr := fixture.do(http.MethodPost, "/tables/5/cart/items", []byte(`{"id":"2"}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.WriteField("method", "card"))
	part, err := writer.CreateFormFile("screenshot", "payment.png")
	assert.NoError(t, err)
	_, err = part.Write([]byte("fake-png"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/tables/5/payment", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestConfirmPayment_MissingMethod(t *testing.T) {
	fixture := newHandlerFixture(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/tables/5/payment", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestWaiterCallAndBillRequest(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.channel.On("Send", mock.Anything, mock.Anything).Return(nil).Twice()

	rr := fixture.do(http.MethodPost, "/tables/5/waiter-call", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = fixture.do(http.MethodPost, "/tables/5/bill-request", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Delivered bool `json:"delivered"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Delivered)
}

func TestSubmitFeedback(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.feedback.On("Submit", mock.Anything, mock.MatchedBy(func(record domain.OrderFeedback) bool {
		return record.Table == "5" && record.Rating == 5 && record.Comment == "perfect"
	})).Return(nil)

	rr := fixture.do(http.MethodPost, "/tables/5/feedback", []byte(`{"rating":5,"comment":"perfect"}`))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCloseSession(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.menu.On("MenuItemsOrDemo", mock.Anything).Return(service.DemoMenuItems())

	rr := fixture.do(http.MethodPost, "/tables/5/cart/items", []byte(`{"id":"1"}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = fixture.do(http.MethodDelete, "/tables/5/session", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = fixture.do(http.MethodGet, "/tables/5/cart", nil)
	var cart struct {
		TotalItems int `json:"total_items"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cart))
	assert.Equal(t, 0, cart.TotalItems)
}
