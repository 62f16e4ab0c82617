//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tourism-portal/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	to := flag.String("to", "test@example.com", "recipient address")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	ref := uuid.NewString()
	event := domain.EmailOutboxEvent{
		Kind: domain.EmailKindRaw,
		Message: domain.EmailMessage{
			To:      *to,
			Subject: "Outbox test " + ref,
			Text:    "Test message from the email outbox.\nReference: " + ref,
			HTML:    "<p>Test message from the email outbox.</p><p>Reference: <code>" + ref + "</code></p>",
		},
		EnqueuedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamEmailOutbox,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamEmailOutbox)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Recipient: %s\n", *to)
	fmt.Printf("   Reference: %s\n", ref)

	// Ждём, пока воркер подтвердит сообщение: pending группы должен опустеть
	fmt.Printf("\nWaiting for the worker to deliver...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for delivery, check worker logs")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamEmailOutbox).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Pending == 0 && g.LastDeliveredID >= result {
					fmt.Printf("Delivered by group %s\n", g.Name)
					return
				}
			}
		}
	}
}
