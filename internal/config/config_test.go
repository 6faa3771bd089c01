package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPPort != "8082" {
		t.Errorf("HTTPPort = %s, want 8082", cfg.HTTPPort)
	}
	if cfg.AccessTTL != 15*time.Minute {
		t.Errorf("AccessTTL = %s, want 15m", cfg.AccessTTL)
	}
	if cfg.SweepAt != "03:00" {
		t.Errorf("SweepAt = %s, want 03:00", cfg.SweepAt)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ACCESS_TTL", "30m")
	t.Setenv("RATE_LIMIT_PER_MIN", "10")
	t.Setenv("MAX_TEAM_SIZE", "5")

	cfg := Load()
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %s, want 9090", cfg.HTTPPort)
	}
	if cfg.AccessTTL != 30*time.Minute {
		t.Errorf("AccessTTL = %s, want 30m", cfg.AccessTTL)
	}
	if cfg.RateLimitPerMin != 10 {
		t.Errorf("RateLimitPerMin = %d, want 10", cfg.RateLimitPerMin)
	}
	if cfg.MaxTeamSize != 5 {
		t.Errorf("MaxTeamSize = %d, want 5", cfg.MaxTeamSize)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ACCESS_TTL", "soon")
	t.Setenv("RATE_LIMIT_PER_MIN", "many")

	cfg := Load()
	if cfg.AccessTTL != 15*time.Minute {
		t.Errorf("AccessTTL = %s, want fallback 15m", cfg.AccessTTL)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Errorf("RateLimitPerMin = %d, want fallback 120", cfg.RateLimitPerMin)
	}
}

func TestSweepTime(t *testing.T) {
	tests := []struct {
		in         string
		wantHour   int
		wantMinute int
	}{
		{"03:00", 3, 0},
		{"14:30", 14, 30},
		{"0:5", 0, 5},
		{"24:00", 3, 0},
		{"12:75", 3, 0},
		{"noon", 3, 0},
		{"", 3, 0},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			hour, minute := App{SweepAt: test.in}.SweepTime()
			if hour != test.wantHour || minute != test.wantMinute {
				t.Errorf("SweepTime(%q) = %d:%d, want %d:%d", test.in, hour, minute, test.wantHour, test.wantMinute)
			}
		})
	}
}
