package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"digital-menu/internal/domain"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_MENU_KEY", "set")
	defer os.Unsetenv("TEST_MENU_KEY")

	if got := getEnv("TEST_MENU_KEY", "fallback"); got != "set" {
		t.Fatalf("expected set, got %s", got)
	}
	if got := getEnv("TEST_MENU_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestUnconfiguredChannel(t *testing.T) {
	err := unconfiguredChannel{}.Send(context.Background(), domain.Notification{
		Kind:  domain.NotificationWaiterCall,
		Table: "5",
	})

	if !errors.Is(err, errChannelNotConfigured) {
		t.Fatalf("expected errChannelNotConfigured, got %v", err)
	}
}

func TestNewNotificationChannel_Unconfigured(t *testing.T) {
	os.Unsetenv("NOTIFY_CHANNEL")
	os.Unsetenv("TELEGRAM_BOT_TOKEN")
	os.Unsetenv("TELEGRAM_CHAT_ID")

	channel := newNotificationChannel()

	if err := channel.Send(context.Background(), domain.Notification{Table: "5"}); err == nil {
		t.Fatal("expected delivery to fail without credentials")
	}
}
