package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"digital-menu/config"
	httpapi "digital-menu/internal/api/http"
	"digital-menu/internal/domain"
	"digital-menu/internal/service"
	"digital-menu/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	feedbackDB := config.MustOpenFeedbackDB(getEnv("FEEDBACK_DB_PATH", "./data/feedback"))
	defer feedbackDB.Close()

	// Catalog source: a missing sheet configuration keeps the service up but
	// turns /menu-items into a 500 until an operator fixes the environment.
	var source service.CatalogSource
	sheets, err := storage.NewSheetsCatalog(os.Getenv("GOOGLE_SHEET_ID"), os.Getenv("GOOGLE_API_KEY"), nil)
	if err != nil {
		log.Printf("WARNING: catalog source not configured: %v", err)
	} else {
		source = sheets
	}

	cache := storage.NewRedisCatalogCache(rdb, 5*time.Minute)
	menu := service.NewMenuService(source, cache)

	dispatcher := service.NewDispatcher(newNotificationChannel(), 10*time.Second)
	feedback := service.NewFeedbackService(storage.NewFeedbackDB(feedbackDB))
	statsSink := storage.NewTableStatsRepository(db)
	sessions := service.NewSessionManager(dispatcher, feedback, menu, statsSink)

	handler := httpapi.NewHandler(menu, sessions, getEnv("MENU_BASE_URL", "http://localhost:8080"))

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	port := getEnv("PORT", "4000")
	log.Println("Menu Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}

// newNotificationChannel picks the staff channel from the environment:
// Telegram by default, Kafka when NOTIFY_CHANNEL=kafka. A misconfigured
// channel degrades every dispatch instead of taking the service down.
func newNotificationChannel() service.NotificationChannel {
	if os.Getenv("NOTIFY_CHANNEL") == "kafka" {
		return storage.NewKafkaChannel(config.NewKafkaWriter(getEnv("KAFKA_NOTIFY_TOPIC", "staff-notifications")))
	}

	telegram, err := storage.NewTelegramChannel(os.Getenv("TELEGRAM_BOT_TOKEN"), os.Getenv("TELEGRAM_CHAT_ID"), nil)
	if err != nil {
		log.Printf("WARNING: staff notifications not configured: %v", err)
		return unconfiguredChannel{}
	}
	return telegram
}

var errChannelNotConfigured = errors.New("staff notification channel is not configured")

// unconfiguredChannel fails every delivery so the order flow still completes
// with the degraded acknowledgment.
type unconfiguredChannel struct{}

func (unconfiguredChannel) Send(ctx context.Context, n domain.Notification) error {
	return errChannelNotConfigured
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
