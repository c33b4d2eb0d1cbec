package catalog

import "testing"

func TestOptional(t *testing.T) {
	tests := []struct {
		name        string
		opt         Optional[int]
		wantSet     bool
		wantPresent bool
		wantString  string
	}{
		{"none", None[int](), false, false, "<none>"},
		{"zero value struct", Optional[int]{}, false, false, "<none>"},
		{"some zero", Some(0), true, false, "0"},
		{"some value", Some(4), true, true, "4"},
		{"page", Page(7), true, true, "7"},
		{"no page", NoPage(), false, false, "<none>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.IsSet(); got != tt.wantSet {
				t.Errorf("IsSet() = %v, want %v", got, tt.wantSet)
			}
			if got := tt.opt.Present(); got != tt.wantPresent {
				t.Errorf("Present() = %v, want %v", got, tt.wantPresent)
			}
			if got := tt.opt.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestOptionalGet(t *testing.T) {
	v, ok := Some("x").Get()
	if !ok || v != "x" {
		t.Errorf("Get() = (%q, %v), want (\"x\", true)", v, ok)
	}

	v, ok = None[string]().Get()
	if ok || v != "" {
		t.Errorf("Get() on None = (%q, %v), want (\"\", false)", v, ok)
	}
}
