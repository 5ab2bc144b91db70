package common

import (
	"context"
	"os"
	"testing"
	"time"

	"air/atlas/internal/config"
	"air/atlas/internal/models/entities"
)

func TestCacheService_SetGet(t *testing.T) {
	cs := NewCacheService(time.Minute, time.Minute)
	ctx := context.Background()

	want := entities.Airport{Name: "London Heathrow Airport", ICAO: "EGLL", Latitude: 51.4706, Longitude: -0.461941}
	if err := cs.Set(ctx, "AIRPORT_EGLL", want, time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var got entities.Airport
	found, err := cs.Get(ctx, "AIRPORT_EGLL", &got)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !found {
		t.Fatal("Expected cached value")
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestCacheService_MissAndDelete(t *testing.T) {
	cs := NewCacheService(time.Minute, time.Minute)
	ctx := context.Background()

	var got entities.Airport
	if found, _ := cs.Get(ctx, "AIRPORT_NONE", &got); found {
		t.Error("Expected miss for unknown key")
	}

	_ = cs.Set(ctx, "AIRPORT_KJFK", entities.Airport{ICAO: "KJFK"}, time.Minute)
	_ = cs.Delete(ctx, "AIRPORT_KJFK")
	if found, _ := cs.Get(ctx, "AIRPORT_KJFK", &got); found {
		t.Error("Expected miss after delete")
	}
}

func TestCacheService_Expiry(t *testing.T) {
	cs := NewCacheService(time.Minute, time.Minute)
	ctx := context.Background()

	_ = cs.Set(ctx, "short", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	var v int
	if found, _ := cs.Get(ctx, "short", &v); found {
		t.Error("Expected expired entry to be gone")
	}
}

// Requires a reachable Redis; set REDIS_TEST_HOST to run.
func TestRedisCacheService_SetGet(t *testing.T) {
	host := os.Getenv("REDIS_TEST_HOST")
	if host == "" {
		t.Skip("REDIS_TEST_HOST not set")
	}

	client := NewRedisClient(config.RedisConfig{Host: host, Port: "6379", DB: 15, Enabled: true})
	rc := NewRedisCacheService(client)
	defer rc.Close()
	ctx := context.Background()

	want := entities.Airport{ICAO: "EGLL", Latitude: 51.4706}
	if err := rc.Set(ctx, "AIRPORT_TEST_EGLL", want, time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer rc.Delete(ctx, "AIRPORT_TEST_EGLL")

	var got entities.Airport
	found, err := rc.Get(ctx, "AIRPORT_TEST_EGLL", &got)
	if err != nil || !found {
		t.Fatalf("Expected hit, got found=%v err=%v", found, err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
