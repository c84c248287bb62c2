package query

import "testing"

func TestApplyHead(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": 1.0},
		{"id": 2.0},
		{"id": 3.0},
	}

	tests := []struct {
		name      string
		n         int
		wantCount int
		wantFirst float64
	}{
		{name: "zero yields empty", n: 0, wantCount: 0},
		{name: "keep first two", n: 2, wantCount: 2, wantFirst: 1},
		{name: "exact count", n: 3, wantCount: 3, wantFirst: 1},
		{name: "past the end keeps all", n: 10, wantCount: 3, wantFirst: 1},
		{name: "negative means no limit", n: -1, wantCount: 3, wantFirst: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyHead(rows, tt.n)

			if len(got) != tt.wantCount {
				t.Fatalf("ApplyHead(%d) returned %d rows, want %d", tt.n, len(got), tt.wantCount)
			}
			if tt.wantCount > 0 {
				if first := got[0]["id"]; first != tt.wantFirst {
					t.Errorf("ApplyHead(%d) first id = %v, want %v", tt.n, first, tt.wantFirst)
				}
			}
		})
	}
}

func TestApplyHead_Empty(t *testing.T) {
	if got := ApplyHead(nil, 5); len(got) != 0 {
		t.Errorf("ApplyHead(nil, 5) returned %d rows, want 0", len(got))
	}
}
