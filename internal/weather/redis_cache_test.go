package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/namefreezers/weather-console/internal/weather/types"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeFetcher struct {
	rec   types.Record
	err   error
	calls int
}

func (f *fakeFetcher) FetchCurrent(ctx context.Context, city string) (types.Record, error) {
	f.calls++
	return f.rec, f.err
}

// unreachableRedis points at a port nothing listens on, so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCachingFetcher_FallsBackWhenRedisDown(t *testing.T) {
	inner := &fakeFetcher{rec: mustRecord(t, seoulJSON)}
	c := NewCachingFetcher(inner, unreachableRedis(t), time.Minute, zap.NewNop())

	rec, err := c.FetchCurrent(context.Background(), "Seoul")
	if err != nil {
		t.Fatalf("FetchCurrent() unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
	if rec.Name == nil || *rec.Name != "Seoul" {
		t.Errorf("FetchCurrent() record name = %v, want Seoul", rec.Name)
	}
}

func TestCachingFetcher_PassesThroughErrors(t *testing.T) {
	inner := &fakeFetcher{err: &types.FetchError{Kind: types.KindNotFound, City: "Atlantis", StatusCode: 404}}
	c := NewCachingFetcher(inner, unreachableRedis(t), time.Minute, zap.NewNop())

	_, err := c.FetchCurrent(context.Background(), "Atlantis")
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("FetchCurrent() error = %v, want %v", err, types.ErrNotFound)
	}
}

func TestCachingFetcher_SkipsIncompleteRecords(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	inner := &fakeFetcher{rec: mustRecord(t, `{"name":"Seoul"}`)}
	c := NewCachingFetcher(inner, unreachableRedis(t), time.Minute, zap.New(core))

	rec, err := c.FetchCurrent(context.Background(), "Seoul")
	if err != nil {
		t.Fatalf("FetchCurrent() unexpected error: %v", err)
	}
	if rec.Name == nil || *rec.Name != "Seoul" {
		t.Errorf("FetchCurrent() record name = %v, want Seoul", rec.Name)
	}
	if n := logs.FilterMessage("incomplete record not cached").Len(); n != 1 {
		t.Errorf("incomplete-record log entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("weather cache write failed").Len(); n != 0 {
		t.Errorf("cache write attempted for incomplete record (%d entries)", n)
	}
}

func TestCachingFetcher_WritesCompleteRecords(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	inner := &fakeFetcher{rec: mustRecord(t, seoulJSON)}
	c := NewCachingFetcher(inner, unreachableRedis(t), time.Minute, zap.New(core))

	if _, err := c.FetchCurrent(context.Background(), "Seoul"); err != nil {
		t.Fatalf("FetchCurrent() unexpected error: %v", err)
	}
	// redis is down, so the attempted write surfaces as a warning
	if n := logs.FilterMessage("weather cache write failed").Len(); n != 1 {
		t.Errorf("cache write log entries = %d, want 1", n)
	}
}

func TestCacheKey_Normalizes(t *testing.T) {
	if got := cacheKey("  SeOul "); got != "weather:seoul" {
		t.Errorf("cacheKey() = %q, want %q", got, "weather:seoul")
	}
}
