package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrMethod == "" || AttrPath == "" || AttrStatus == "" || AttrKind == "" || AttrIntent == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
}
