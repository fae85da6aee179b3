package redis

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestConnect_UnreachableServerFailsStartup(t *testing.T) {
	_, err := Connect(context.Background(), Config{
		Addr:    "127.0.0.1:1",
		Timeout: 100 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected an error for an unreachable server")
	}
	if !strings.Contains(err.Error(), "redis ping") {
		t.Fatalf("error should name the failed ping, got %v", err)
	}
}

func TestConnect_BoundsTheStartupPing(t *testing.T) {
	// A blackhole address (non-routable) exercises the dial timeout rather
	// than an instant connection refusal.
	start := time.Now()
	_, err := Connect(context.Background(), Config{
		Addr:    "10.255.255.1:6379",
		Timeout: 150 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected an error for a blackhole address")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("connect took %v, the configured timeout did not apply", elapsed)
	}
}
