package render_test

import (
	"errors"
	"testing"

	"gridcal/src-server/render"
)

func TestEnumerateSlots(t *testing.T) {
	// case: interval divides the range evenly
	func() {
		slots, err := render.EnumerateSlots("09:00", "11:00", 30)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"09:00", "09:30", "10:00", "10:30"}
		if len(slots) != len(want) {
			t.Fatalf("want %d slots, got %d", len(want), len(slots))
		}
		for i, slot := range slots {
			if slot.Label != want[i] {
				t.Errorf("slot %d: want %s, got %s", i, want[i], slot.Label)
			}
			if slot.Row != i {
				t.Errorf("slot %d: want row %d, got %d", i, i, slot.Row)
			}
		}
	}()

	// case: equal start and end means a full 24-hour day
	func() {
		slots, err := render.EnumerateSlots("00:00", "00:00", 60)
		if err != nil {
			t.Fatal(err)
		}
		if len(slots) != 24 {
			t.Fatalf("want 24 slots, got %d", len(slots))
		}
		if slots[0].Label != "00:00" || slots[23].Label != "23:00" {
			t.Errorf("want 00:00..23:00, got %s..%s", slots[0].Label, slots[23].Label)
		}
	}()

	// case: a full day anchored off midnight wraps with wall-clock labels
	func() {
		slots, err := render.EnumerateSlots("09:00", "09:00", 60)
		if err != nil {
			t.Fatal(err)
		}
		if len(slots) != 24 {
			t.Fatalf("want 24 slots, got %d", len(slots))
		}
		if slots[23].Label != "08:00" {
			t.Errorf("want last slot 08:00, got %s", slots[23].Label)
		}
	}()

	// case: a trailing partial slot is kept as a boundary marker
	func() {
		slots, err := render.EnumerateSlots("09:00", "10:15", 30)
		if err != nil {
			t.Fatal(err)
		}
		if len(slots) != 3 {
			t.Fatalf("want 3 slots, got %d", len(slots))
		}
		if slots[2].Label != "10:00" {
			t.Errorf("want last slot 10:00, got %s", slots[2].Label)
		}
	}()
}

func TestEnumerateSlotsErrors(t *testing.T) {
	if _, err := render.EnumerateSlots("9am", "11:00", 30); !errors.Is(err, render.ErrInvalidTimeRange) {
		t.Errorf("want ErrInvalidTimeRange, got %v", err)
	}
	if _, err := render.EnumerateSlots("09:75", "11:00", 30); !errors.Is(err, render.ErrInvalidTimeRange) {
		t.Errorf("want ErrInvalidTimeRange, got %v", err)
	}
	if _, err := render.EnumerateSlots("11:00", "09:00", 30); !errors.Is(err, render.ErrInvalidTimeRange) {
		t.Errorf("want ErrInvalidTimeRange for inverted range, got %v", err)
	}
	if _, err := render.EnumerateSlots("09:00", "11:00", 0); !errors.Is(err, render.ErrInvalidInterval) {
		t.Errorf("want ErrInvalidInterval, got %v", err)
	}
	if _, err := render.EnumerateSlots("09:00", "11:00", -15); !errors.Is(err, render.ErrInvalidInterval) {
		t.Errorf("want ErrInvalidInterval, got %v", err)
	}
}
