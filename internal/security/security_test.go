package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	password := "testPassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" {
		t.Error("HashPassword() returned empty string")
	}

	if hash == password {
		t.Error("HashPassword() returned plaintext password")
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword() rejected the correct password")
	}

	if CheckPassword("wrongPassword", hash) {
		t.Error("CheckPassword() accepted an incorrect password")
	}
}

func TestGenerateSessionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateSessionID()
		if id == "" {
			t.Fatal("GenerateSessionID() returned empty string")
		}
		if seen[id] {
			t.Fatalf("duplicate session ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestIsSecureRequest(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(r *http.Request)
		secure bool
	}{
		{
			name:   "plain http",
			setup:  func(r *http.Request) {},
			secure: false,
		},
		{
			name: "forwarded proto https",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-Proto", "https")
			},
			secure: true,
		},
		{
			name: "forwarded proto http",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-Proto", "http")
			},
			secure: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
			tt.setup(r)
			if got := IsSecureRequest(r); got != tt.secure {
				t.Errorf("IsSecureRequest() = %v, want %v", got, tt.secure)
			}
		})
	}
}

func TestCreateSessionCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	expires := time.Now().Add(24 * time.Hour)

	cookie := CreateSessionCookie(r, "session_id", "abc123", expires)

	if cookie.Name != "session_id" || cookie.Value != "abc123" {
		t.Errorf("unexpected cookie name/value: %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if cookie.Secure {
		t.Error("plain http request should not produce a Secure cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", cookie.SameSite)
	}

	r.Header.Set("X-Forwarded-Proto", "https")
	if !CreateSessionCookie(r, "session_id", "abc123", expires).Secure {
		t.Error("https request should produce a Secure cookie")
	}
}

func TestCSRFGenerator(t *testing.T) {
	g := NewCSRFGenerator("test-secret")

	token, err := g.GenerateToken("session-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	again, err := g.GenerateToken("session-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token != again {
		t.Error("tokens for the same session should be deterministic")
	}

	if !g.ValidateToken("session-1", token) {
		t.Error("ValidateToken() rejected a valid token")
	}
	if g.ValidateToken("session-2", token) {
		t.Error("ValidateToken() accepted a token for the wrong session")
	}
	if g.ValidateToken("session-1", "bogus") {
		t.Error("ValidateToken() accepted a bogus token")
	}
	if g.ValidateToken("", token) {
		t.Error("ValidateToken() accepted an empty session ID")
	}

	if _, err := g.GenerateToken(""); err == nil {
		t.Error("GenerateToken() should fail for empty session ID")
	}

	other := NewCSRFGenerator("other-secret")
	if other.ValidateToken("session-1", token) {
		t.Error("token signed with a different secret should not validate")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request over the limit should be denied")
	}

	// A different client has its own bucket.
	if !rl.Allow("5.6.7.8") {
		t.Error("unrelated client should be allowed")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:   "remote addr only",
			remote: "10.0.0.1:5555",
			want:   "10.0.0.1:5555",
		},
		{
			name:    "x-forwarded-for wins",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.9", "X-Real-IP": "10.0.0.2"},
			remote:  "10.0.0.1:5555",
			want:    "203.0.113.9",
		},
		{
			name:    "x-real-ip fallback",
			headers: map[string]string{"X-Real-IP": "10.0.0.2"},
			remote:  "10.0.0.1:5555",
			want:    "10.0.0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
