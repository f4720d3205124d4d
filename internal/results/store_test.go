package results

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestStoreOverwritesSameField(t *testing.T) {
	store := NewStore()

	store.SetMeasurement("color_data", "bin-number", 256)
	store.SetMeasurement("color_data", "bin-number", 16)

	got, ok := store.Measurement("color_data", "bin-number")
	if !ok {
		t.Fatal("measurement missing")
	}
	if got != 16 {
		t.Errorf("got %v, want 16", got)
	}
}

func TestStoreCategoriesAreIndependent(t *testing.T) {
	store := NewStore()

	store.SetMeasurement("shape_data", "area", 42)
	store.SetMeasurement("color_data", "bin-number", 256)
	store.SetMeasurement("color_data", "mean", 81.5)

	got, ok := store.Measurement("shape_data", "area")
	if !ok || got != 42 {
		t.Errorf("shape_data/area: got %v (ok=%v), want 42", got, ok)
	}

	names := store.Categories()
	want := []string{"color_data", "shape_data"}
	if len(names) != len(want) {
		t.Fatalf("categories: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("categories[%d]: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestStoreCategoryReturnsCopy(t *testing.T) {
	store := NewStore()
	store.SetMeasurement("color_data", "median", 60.0)

	fields, ok := store.Category("color_data")
	if !ok {
		t.Fatal("category missing")
	}
	fields["median"] = -1.0

	got, _ := store.Measurement("color_data", "median")
	if got != 60.0 {
		t.Errorf("store mutated through copy: got %v", got)
	}
}

func TestStoreImagesAccumulate(t *testing.T) {
	store := NewStore()

	if n := len(store.Images()); n != 0 {
		t.Fatalf("new store has %d images", n)
	}
	store.AddImage("first")
	store.AddImage("second")

	images := store.Images()
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	if images[0] != "first" || images[1] != "second" {
		t.Errorf("image order wrong: %v", images)
	}
}

func TestStoreWriteJSON(t *testing.T) {
	store := NewStore()
	store.SetMeasurement("color_data", "bin-number", 4)
	store.SetMeasurement("color_data", "bin-values", []int{0, 1, 2, 3})

	var buf bytes.Buffer
	if err := store.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["color_data"]["bin-values"]; !ok {
		t.Error("bin-values missing from JSON output")
	}
}
