package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rune-api/internal/clients/catalog"
	"github.com/KirkDiggler/rune-api/internal/engine/etching"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// Rebuilds stale item display names from rune state. Documents written by
// older dialogs can carry names that stack rune words; this walks every
// actor and rewrites names the engine would produce today.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	eng, err := etching.New(&etching.Config{
		CatalogClient: catalog.NewUnavailable(),
	})
	if err != nil {
		log.Fatal("Failed to create rules engine:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning actor documents...")

	iter := client.Scan(ctx, 0, "actor:*", 0).Iterator()

	var checkedCount, renamedItems int
	var dirtyKeys []string

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var actor pf2e.Actor
		if err := json.Unmarshal([]byte(data), &actor); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s, skipping\n", key)
			continue
		}

		dirty := false
		for _, item := range actor.Items {
			if !item.IsEquipmentTarget() {
				continue
			}
			want := eng.RunedItemName(item, item.Runes)
			if want != item.Name {
				fmt.Printf("  %s: %q -> %q\n", key, item.Name, want)
				item.Name = want
				renamedItems++
				dirty = true
			}
		}
		if !dirty {
			continue
		}

		updated, err := json.Marshal(&actor)
		if err != nil {
			fmt.Printf("Failed to marshal %s: %v\n", key, err)
			continue
		}
		if err := client.Set(ctx, key, updated, 0).Err(); err != nil {
			fmt.Printf("Failed to write %s: %v\n", key, err)
			continue
		}
		dirtyKeys = append(dirtyKeys, key)
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d actors, rewrote %d item names across %d documents\n",
		checkedCount, renamedItems, len(dirtyKeys))
}
