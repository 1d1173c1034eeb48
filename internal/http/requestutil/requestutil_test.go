package requestutil

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected generated request id")
	}
	if NewRequestID() == NewRequestID() {
		t.Fatalf("expected generated ids to differ")
	}
}

func TestGeneratedRequestIDPassesSanitization(t *testing.T) {
	id := NewRequestID()
	if got := SanitizeRequestID(id); got != id {
		t.Fatalf("expected generated id %s to be accepted, got %s", id, got)
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9:1234" {
		t.Fatalf("expected remote addr fallback, got %s", got)
	}
}

func TestParseCriteria(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/players?positions=FW,MF&minMinutes=500&squad=Arsenal", nil)

	criteria, err := ParseCriteria(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(criteria.Positions, []string{"FW", "MF"}) {
		t.Fatalf("unexpected positions %v", criteria.Positions)
	}
	if criteria.MinMinutes != 500 {
		t.Fatalf("expected minMinutes 500, got %d", criteria.MinMinutes)
	}
	if criteria.Squad != "Arsenal" {
		t.Fatalf("expected squad Arsenal, got %q", criteria.Squad)
	}
}

func TestParseCriteriaDefaultsToZeroValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)

	criteria, err := ParseCriteria(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if criteria.Positions != nil {
		t.Fatalf("expected nil positions, got %v", criteria.Positions)
	}
	if criteria.MinMinutes != 0 || criteria.Squad != "" {
		t.Fatalf("expected zero criteria, got %+v", criteria)
	}
}

func TestParseCriteriaRejectsBadMinutes(t *testing.T) {
	for _, raw := range []string{"lots", "-10", "12.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/players?minMinutes="+raw, nil)
		if _, err := ParseCriteria(req); err == nil {
			t.Fatalf("expected error for minMinutes=%s", raw)
		}
	}
}

func TestParseTopN(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 15},
		{query: "topN=5", want: 5},
		{query: "topN=0", want: 15},
		{query: "topN=-3", want: 15},
		{query: "topN=ten", wantErr: true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/rankings?"+tt.query, nil)
		got, err := ParseTopN(req, 15)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.query)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.query, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTopN(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList(" FW , MF ,,DF "); !reflect.DeepEqual(got, []string{"FW", "MF", "DF"}) {
		t.Fatalf("unexpected list %v", got)
	}
	if got := SplitList("  "); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
	if got := SplitList(",,"); got != nil {
		t.Fatalf("expected nil for empty entries, got %v", got)
	}
}
