package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"digital-menu/internal/domain"
	"digital-menu/internal/service"
)

const notificationWarning = "notification to staff may have failed"

// Handler exposes the catalog read boundary and the per-table session
// operations. Session state lives server-side and is volatile; the browser UI
// is a thin view over these endpoints.
type Handler struct {
	Menu        service.MenuServiceInterface
	Sessions    *service.SessionManager
	MenuBaseURL string
}

func NewHandler(menu service.MenuServiceInterface, sessions *service.SessionManager, menuBaseURL string) *Handler {
	return &Handler{Menu: menu, Sessions: sessions, MenuBaseURL: menuBaseURL}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/tables/{table}/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/tables/{table}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/tables/{table}/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/tables/{table}/cart/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/tables/{table}/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/tables/{table}/items/{itemId}/view", h.viewItem).Methods("POST")
	r.HandleFunc("/tables/{table}/order", h.placeOrder).Methods("POST")
	r.HandleFunc("/tables/{table}/payment", h.confirmPayment).Methods("POST")
	r.HandleFunc("/tables/{table}/waiter-call", h.callWaiter).Methods("POST")
	r.HandleFunc("/tables/{table}/bill-request", h.requestBill).Methods("POST")
	r.HandleFunc("/tables/{table}/feedback", h.submitFeedback).Methods("POST")
	r.HandleFunc("/tables/{table}/session", h.closeSession).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.MenuItems(r.Context())
	if err != nil {
		http.Error(w, "Error fetching menu", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]

	png, err := qrcode.Encode(fmt.Sprintf("%s/menu/%s", h.MenuBaseURL, table), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":        session.CartLines(),
		"total_amount": session.CartTotal(),
		"total_items":  session.CartItemCount(),
	})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ItemID   string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.ItemID == "" {
		http.Error(w, "Missing item id", http.StatusBadRequest)
		return
	}
	if payload.Quantity <= 0 {
		payload.Quantity = 1
	}

	item, ok := h.findItem(r, payload.ItemID)
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	session := h.session(r)
	session.AddToCart(item, payload.Quantity)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":       session.CartLines(),
		"total_items": session.CartItemCount(),
	})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := h.session(r)
	session.UpdateQuantity(mux.Vars(r)["itemId"], payload.Quantity)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":       session.CartLines(),
		"total_items": session.CartItemCount(),
	})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	session.RemoveFromCart(mux.Vars(r)["itemId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) viewItem(w http.ResponseWriter, r *http.Request) {
	h.session(r).ViewItem(r.Context(), mux.Vars(r)["itemId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)

	order, result, err := session.PlaceOrder(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeOrderResponse(w, order, result)
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	method := r.FormValue("method")
	if method == "" {
		http.Error(w, "Missing payment method", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("screenshot")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	asset, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	session := h.session(r)
	order, result, err := session.ConfirmPayment(r.Context(), method, asset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeOrderResponse(w, order, result)
}

func (h *Handler) callWaiter(w http.ResponseWriter, r *http.Request) {
	result := h.session(r).CallWaiter(r.Context())
	writeDispatchResponse(w, result)
}

func (h *Handler) requestBill(w http.ResponseWriter, r *http.Request) {
	result := h.session(r).RequestBill(r.Context())
	writeDispatchResponse(w, result)
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := h.session(r)
	if err := session.SubmitFeedback(r.Context(), payload.Rating, payload.Comment); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"order_id": session.LastOrderID(),
		"status":   "ok",
	})
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Close(r.Context(), mux.Vars(r)["table"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(r *http.Request) *service.SessionService {
	return h.Sessions.Session(mux.Vars(r)["table"])
}

func (h *Handler) findItem(r *http.Request, itemID string) (domain.MenuItem, bool) {
	for _, item := range h.Menu.MenuItemsOrDemo(r.Context()) {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func writeOrderResponse(w http.ResponseWriter, order *domain.Order, result service.DispatchResult) {
	response := map[string]interface{}{
		"order":     order,
		"delivered": result.Delivered,
	}
	if !result.Delivered {
		response["warning"] = notificationWarning
	}
	writeJSON(w, http.StatusCreated, response)
}

func writeDispatchResponse(w http.ResponseWriter, result service.DispatchResult) {
	response := map[string]interface{}{
		"delivered": result.Delivered,
	}
	if !result.Delivered {
		response["warning"] = notificationWarning
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
