package imgcache

import (
	"bytes"
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })
	c, err := NewRedis("redis://"+mr.Addr()+"/0", time.Hour)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisRoundTrip(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("miss: ok=%v err=%v", ok, err)
	}
	want := []byte{0x89, 'P', 'N', 'G'}
	if err := c.Set(ctx, "k", want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || !bytes.Equal(got, want) {
		t.Fatalf("get: ok=%v err=%v got=%v", ok, err, got)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("unexpected hit")
	}
	if err := m.Set(ctx, "k", []byte("png")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, _ := m.Get(ctx, "k")
	if !ok || string(got) != "png" {
		t.Fatalf("get: ok=%v got=%q", ok, got)
	}
}

func TestKeyDistinguishesParts(t *testing.T) {
	if Key("a", "bc") == Key("ab", "c") {
		t.Fatal("key must separate parts")
	}
	if Key("x") != Key("x") {
		t.Fatal("key must be deterministic")
	}
}
