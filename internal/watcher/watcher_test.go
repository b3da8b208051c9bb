package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
)

func TestCatalogWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.csv")

	store := mcmaster.NewStore(mcmaster.EmptyCatalog())
	w, err := New(path, store)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	content := "spec_key,mcmaster_pn,description,pack_qty\nnut|hexnut|iso4032|M6-1,90592A016,Hex nut,100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if store.Get().Len() == 1 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("Expected the catalog to reload, still %d parts", store.Get().Len())
}

func TestCatalogWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.csv")

	seeded := mcmaster.NewCatalog([]mcmaster.Match{{SpecKey: "nut|hexnut|iso4032|M6-1", PN: "90592A016"}})
	store := mcmaster.NewStore(seeded)
	w, err := New(path, store)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(time.Second)
	if store.Get().Len() != 1 {
		t.Errorf("Expected the snapshot to stay untouched, got %d parts", store.Get().Len())
	}
}
