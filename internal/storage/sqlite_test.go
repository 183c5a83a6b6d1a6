package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/statnerf/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreAddAndGetCrop(t *testing.T) {
	store := openTestStore(t)

	id, err := store.AddCrop("wheat", *core.NewPlantStats(3, 4, 5))
	if err != nil {
		t.Fatalf("AddCrop() failed: %v", err)
	}
	if id == "" {
		t.Fatal("AddCrop() returned an empty ID")
	}

	crop, err := store.Crop(id)
	if err != nil {
		t.Fatalf("Crop() failed: %v", err)
	}
	if crop.Name != "wheat" {
		t.Errorf("Expected name wheat, got %q", crop.Name)
	}
	if crop.Stats != *core.NewPlantStats(3, 4, 5) {
		t.Errorf("Expected stats {3 4 5}, got %v", &crop.Stats)
	}
}

func TestStoreCropNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Crop("missing"); !errors.Is(err, ErrCropNotFound) {
		t.Errorf("Crop() error = %v, want ErrCropNotFound", err)
	}
	if err := store.DeleteCrop("missing"); !errors.Is(err, ErrCropNotFound) {
		t.Errorf("DeleteCrop() error = %v, want ErrCropNotFound", err)
	}
}

func TestStoreListCropsSorted(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"potato", "carrot", "wheat"} {
		if _, err := store.AddCrop(name, *core.NewPlantStats(1, 1, 1)); err != nil {
			t.Fatalf("AddCrop() failed: %v", err)
		}
	}

	crops, err := store.ListCrops()
	if err != nil {
		t.Fatalf("ListCrops() failed: %v", err)
	}
	if len(crops) != 3 {
		t.Fatalf("Expected 3 crops, got %d", len(crops))
	}
	if crops[0].Name != "carrot" || crops[1].Name != "potato" || crops[2].Name != "wheat" {
		t.Errorf("Crops not sorted by name: %v, %v, %v", crops[0].Name, crops[1].Name, crops[2].Name)
	}
}

func TestStoreRecordNerf(t *testing.T) {
	store := openTestStore(t)

	id, err := store.AddCrop("wheat", *core.NewPlantStats(10, 10, 10))
	if err != nil {
		t.Fatalf("AddCrop() failed: %v", err)
	}

	entries := []NerfEntry{
		{
			CropID:      id,
			Before:      *core.NewPlantStats(10, 10, 10),
			After:       *core.NewPlantStats(8, 8, 8),
			ScoreBefore: 300,
			ScoreAfter:  192,
			MaxScore:    200,
			Reached:     true,
		},
		{
			CropID:      id,
			Before:      *core.NewPlantStats(8, 8, 8),
			After:       *core.NewPlantStats(1, 1, 1),
			ScoreBefore: 192,
			ScoreAfter:  3,
			MaxScore:    2,
			Reached:     false,
		},
	}
	for _, e := range entries {
		if _, err := store.RecordNerf(e); err != nil {
			t.Fatalf("RecordNerf() failed: %v", err)
		}
	}

	crop, err := store.Crop(id)
	if err != nil {
		t.Fatalf("Crop() failed: %v", err)
	}
	if crop.Stats != *core.NewPlantStats(1, 1, 1) {
		t.Errorf("Expected crop stats to follow the last nerf, got %v", &crop.Stats)
	}

	history, err := store.NerfHistory(id, 10)
	if err != nil {
		t.Fatalf("NerfHistory() failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(history))
	}

	// Newest first
	if history[0].Reached || history[0].MaxScore != 2 {
		t.Errorf("Expected newest entry to be the unreachable one, got %+v", history[0])
	}
	if !history[1].Reached || history[1].ScoreAfter != 192 {
		t.Errorf("Unexpected oldest entry: %+v", history[1])
	}
	if history[1].Before != *core.NewPlantStats(10, 10, 10) {
		t.Errorf("Expected before stats {10 10 10}, got %v", &history[1].Before)
	}
}

func TestStoreRecordNerfUnknownCrop(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RecordNerf(NerfEntry{CropID: "missing"})
	if !errors.Is(err, ErrCropNotFound) {
		t.Errorf("RecordNerf() error = %v, want ErrCropNotFound", err)
	}
}

func TestStoreDeleteCrop(t *testing.T) {
	store := openTestStore(t)

	id, err := store.AddCrop("wheat", *core.NewPlantStats(5, 5, 5))
	if err != nil {
		t.Fatalf("AddCrop() failed: %v", err)
	}
	if _, err := store.RecordNerf(NerfEntry{CropID: id, After: *core.NewPlantStats(4, 4, 4)}); err != nil {
		t.Fatalf("RecordNerf() failed: %v", err)
	}

	if err := store.DeleteCrop(id); err != nil {
		t.Fatalf("DeleteCrop() failed: %v", err)
	}

	if _, err := store.Crop(id); !errors.Is(err, ErrCropNotFound) {
		t.Errorf("Crop() after delete error = %v, want ErrCropNotFound", err)
	}
	history, err := store.NerfHistory(id, 10)
	if err != nil {
		t.Fatalf("NerfHistory() failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected history to be deleted, got %d entries", len(history))
	}
}
