package notification

import "testing"

func TestIconMapping(t *testing.T) {
	cases := map[Kind]string{
		Success:         "check-circle",
		Error:           "exclamation-circle",
		Warning:         "exclamation-triangle",
		Info:            "info-circle",
		Kind("unknown"): "info-circle",
	}
	for kind, want := range cases {
		if got := Icon(kind); got != want {
			t.Fatalf("Icon(%q) = %q, want %q", kind, got, want)
		}
	}
}

func TestNewNormalizesKind(t *testing.T) {
	n := New(Kind("loud"), "hi")
	if n.Kind != Info {
		t.Fatalf("expected info kind, got %q", n.Kind)
	}
	if n.Icon() != "info-circle" {
		t.Fatalf("unexpected icon %q", n.Icon())
	}
}
