package redislock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestLocker(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, url)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer client.Close()

	key := fmt.Sprintf("fintrack:test:%d", time.Now().UnixNano())
	defer client.Del(ctx, key)

	first := New(client, key, 5*time.Second, 100*time.Millisecond)
	second := New(client, key, 5*time.Second, 100*time.Millisecond)

	unlock, err := first.Lock(ctx)
	if err != nil {
		t.Fatalf("Lock failed: %v", err)
	}

	if _, err := second.Lock(ctx); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout while held, got %v", err)
	}

	unlock()

	unlock2, err := second.Lock(ctx)
	if err != nil {
		t.Fatalf("Lock after release failed: %v", err)
	}
	unlock2()
}
