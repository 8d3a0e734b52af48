package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if err := ms.Set(ctx, "history:AAPL:1y", []byte(`{"symbol":"AAPL"}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := ms.Get(ctx, "history:AAPL:1y")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"symbol":"AAPL"}` {
		t.Errorf("Get = %q", got)
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()

	_, err := ms.Get(context.Background(), "nope")
	if !errors.Is(err, ErrMiss) {
		t.Errorf("Get absent key: err = %v, want ErrMiss", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if err := ms.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := ms.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get expired key: err = %v, want ErrMiss", err)
	}
}

func TestMemoryStoreEviction(t *testing.T) {
	ms := NewMemoryStore(WithMemoryMaxEntries(3))
	defer ms.Close()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		key := fmt.Sprintf("k%d", i)
		if err := ms.Set(ctx, key, []byte("v"), time.Hour); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
		time.Sleep(time.Millisecond)
	}

	// k0 was least recently used and should be gone.
	if _, err := ms.Get(ctx, "k0"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get k0: err = %v, want ErrMiss", err)
	}
	if _, err := ms.Get(ctx, "k3"); err != nil {
		t.Errorf("Get k3: %v", err)
	}
}

func TestGetJSONRoundTrip(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	type payload struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}

	in := payload{Symbol: "MSFT", Price: 415.5}
	if err := SetJSON(ctx, ms, Key("quote", "MSFT"), in, time.Hour); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var out payload
	if err := GetJSON(ctx, ms, Key("quote", "MSFT"), &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out != in {
		t.Errorf("GetJSON = %+v, want %+v", out, in)
	}
}

func TestKey(t *testing.T) {
	if got := Key("history", "AAPL", "1y"); got != "history:AAPL:1y" {
		t.Errorf("Key = %q", got)
	}
	if got := Key("news"); got != "news" {
		t.Errorf("Key = %q", got)
	}
}
