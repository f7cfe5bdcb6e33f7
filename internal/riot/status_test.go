package riot

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestCheckKey(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{"accepted", http.StatusOK, true, false},
		{"unauthorized", http.StatusUnauthorized, false, false},
		{"forbidden", http.StatusForbidden, false, false},
		{"unavailable", http.StatusServiceUnavailable, false, true},
		{"rate limited", http.StatusTooManyRequests, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/lol/status/v4/platform-data" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					w.Write([]byte(`{"id":"KR","name":"Korea","locales":["ko_KR"],"maintenances":[],"incidents":[]}`))
				}
			})

			valid, err := client.CheckKey(context.Background(), "kr")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckKey error = %v, wantErr %v", err, tt.wantErr)
			}
			if valid != tt.want {
				t.Errorf("CheckKey = %v, want %v", valid, tt.want)
			}
		})
	}
}

func TestCheckKey_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	valid, err := client.CheckKey(ctx, "na1")
	if err == nil {
		t.Error("Expected timeout error")
	}
	if valid {
		t.Error("Expected key to not be valid on timeout")
	}
}

func TestGetPlatformStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"EUW1","name":"EU West","locales":["en_GB"],"maintenances":[{"id":7,"maintenance_status":"scheduled"}],"incidents":[]}`))
	})

	status, err := client.GetPlatformStatus(context.Background(), "euw1")
	if err != nil {
		t.Fatalf("GetPlatformStatus failed: %v", err)
	}
	if status.ID != "EUW1" || len(status.Maintenances) != 1 || status.Maintenances[0].MaintenanceStatus != "scheduled" {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestMaskKey(t *testing.T) {
	if got := MaskKey("RGAPI-d1ce0e52-5b91-4682"); got != "RGAPI-d1...4682" {
		t.Errorf("MaskKey = %q", got)
	}
	if got := MaskKey("short"); got != "***" {
		t.Errorf("MaskKey(short) = %q", got)
	}
}
