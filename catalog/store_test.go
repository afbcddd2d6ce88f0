package catalog

import (
	"os"
	"testing"
	"time"
)

func TestStoreGet_CachesWithinTTL(t *testing.T) {
	path := writeWorkbook(t, fixtureSheets())

	now := time.Now()
	s := NewStore(path, time.Minute)
	s.now = func() time.Time { return now }

	first, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	// Corrupt the file; a cached Get must not touch it.
	if err := os.WriteFile(path, []byte("not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}

	now = now.Add(30 * time.Second)
	second, err := s.Get()
	if err != nil {
		t.Fatalf("Get() within TTL error = %v", err)
	}
	if first != second {
		t.Error("expected the cached snapshot within the TTL")
	}
}

func TestStoreGet_ReloadsAfterTTL(t *testing.T) {
	path := writeWorkbook(t, fixtureSheets())

	now := time.Now()
	s := NewStore(path, time.Minute)
	s.now = func() time.Time { return now }

	first, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	now = now.Add(2 * time.Minute)
	second, err := s.Get()
	if err != nil {
		t.Fatalf("Get() after TTL error = %v", err)
	}
	if first == second {
		t.Error("expected a fresh snapshot after the TTL elapsed")
	}
}

func TestStoreGet_NeverServesStaleOnFailure(t *testing.T) {
	path := writeWorkbook(t, fixtureSheets())

	now := time.Now()
	s := NewStore(path, time.Minute)
	s.now = func() time.Time { return now }

	if _, err := s.Get(); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := s.Get(); err == nil {
		t.Fatal("expected error reloading a corrupt workbook")
	}

	// The broken snapshot must not linger: a subsequent Get retries the
	// file rather than serving the pre-failure data.
	if _, err := s.Get(); err == nil {
		t.Fatal("expected repeated error while the workbook stays corrupt")
	}
}

func TestStoreInvalidate(t *testing.T) {
	path := writeWorkbook(t, fixtureSheets())

	s := NewStore(path, time.Hour)
	first, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	s.Invalidate()
	second, err := s.Get()
	if err != nil {
		t.Fatalf("Get() after Invalidate error = %v", err)
	}
	if first == second {
		t.Error("expected a fresh snapshot after Invalidate")
	}
}

func TestNewStore_DefaultTTL(t *testing.T) {
	s := NewStore("whatever.xlsx", 0)
	if s.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", s.ttl, DefaultTTL)
	}
}
