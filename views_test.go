package chargerui

import (
	"strings"
	"testing"
)

func TestValidateCatalog(t *testing.T) {
	if err := validateCatalog(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateView(t *testing.T) {
	tooMany := make(view, maxFields+1)
	for i := range tooMany {
		tooMany[i] = text("X", 0, 0)
	}
	tooManyDynamic := make(view, slotCount+1)
	for i := range tooManyDynamic {
		tooManyDynamic[i] = dynamic(int8(i), 0, 0)
	}

	tests := []struct {
		name string
		v    view
		want string
	}{
		{"empty", view{}, "no fields"},
		{"too many fields", tooMany, "more than"},
		{"unsupported character", view{text("A-B", 0, 0)}, "unsupported character"},
		{"x out of range", view{text("A", 128, 0)}, "x out of range"},
		{"y out of range", view{text("A", 0, 57)}, "y out of range"},
		{"slot out of order", view{dynamic(1, 0, 0)}, "out of order"},
		{"slot skipped", view{dynamic(0, 0, 0), dynamic(2, 0, 10)}, "out of order"},
		{"too many dynamic fields", tooManyDynamic, "more dynamic fields"},
	}

	for _, tt := range tests {
		err := validateView(tt.v)
		if err == nil {
			t.Errorf("%s: no error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestValidateViewAccepts(t *testing.T) {
	v := view{
		text("AKKU 1/2: a.o,", 0, 0),
		dynamic(0, 5, 10),
		dynamic(1, 5, 56), // bottom row, still fully on the panel
	}
	if err := validateView(v); err != nil {
		t.Fatal(err)
	}
}

func TestViewDynamicFieldCounts(t *testing.T) {
	// Every dynamic field must have a slot to resolve to; the per-view
	// counts also pin down the layout the menu logic writes into.
	want := map[viewID]int{
		viewPanel:   8,
		viewBattery: 2,
		viewSetup1:  4,
		viewSetup2:  4,
		viewSetup3:  4,
		viewCalib1:  8,
		viewCalib2:  8,
	}
	for id := viewPanel; id < viewNone; id++ {
		n := 0
		for _, f := range views[id] {
			if f.slot >= 0 {
				n++
			}
		}
		if n != want[id] {
			t.Errorf("%s: %d dynamic fields, want %d", id, n, want[id])
		}
	}
}
