package builder_test

import (
	"testing"

	"github.com/katalvlaran/boruvka/builder"
)

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_large", builder.DefaultIDFn, 12345, "12345", false},

		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_AB", builder.ExcelColumnIDFn, 27, "AB", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"PaddedIDFn_7", builder.PaddedIDFn(3), 7, "007", false},
		{"PaddedIDFn_wide", builder.PaddedIDFn(3), 1234, "1234", false},

		{"SymbolNumberIDFn_v0", builder.SymbolNumberIDFn("v"), 0, "v0", false},
		{"SymbolNumberIDFn_v12", builder.SymbolNumberIDFn("v"), 12, "v12", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("v"), -3, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
			}
		})
	}
}

// TestPaddedIDFn_BadWidth verifies the constructor rejects non-positive widths.
func TestPaddedIDFn_BadWidth(t *testing.T) {
	t.Parallel()
	assertPanics(t, func() { builder.PaddedIDFn(0) }, "PaddedIDFn(0)")
}

// TestIDSchemeInGraph verifies the ID scheme reaches constructed vertices.
func TestIDSchemeInGraph(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	for _, id := range []string{"v0", "v1", "v2"} {
		if !g.HasVertex(id) {
			t.Errorf("expected vertex %q", id)
		}
	}
}
