package auth

import (
	"testing"
	"time"
)

func TestIssueParseRoundtrip(t *testing.T) {
	pair, err := Issue("alice@example.edu", RoleStudent, "comphub", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}

	claims, err := Parse(pair.AccessToken, "secret", "comphub")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.Subject != "alice@example.edu" {
		t.Errorf("subject = %s, want alice@example.edu", claims.Subject)
	}
	if claims.Role != RoleStudent {
		t.Errorf("role = %s, want %s", claims.Role, RoleStudent)
	}
}

func TestParse_WrongKey(t *testing.T) {
	pair, err := Issue("alice@example.edu", RoleStudent, "comphub", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := Parse(pair.AccessToken, "other-secret", "comphub"); err == nil {
		t.Error("expected error for wrong signing key")
	}
}

func TestParse_IssuerMismatch(t *testing.T) {
	pair, err := Issue("alice@example.edu", RoleTeacher, "other-service", "secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := Parse(pair.AccessToken, "secret", "comphub"); err == nil {
		t.Error("expected issuer mismatch error")
	}
}

func TestParse_Expired(t *testing.T) {
	pair, err := Issue("alice@example.edu", RoleStudent, "comphub", "secret", -time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := Parse(pair.AccessToken, "secret", "comphub"); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse("not.a.token", "secret", "comphub"); err == nil {
		t.Error("expected error for malformed token")
	}
}
