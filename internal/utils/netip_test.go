package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", remote: "192.0.2.10:5555", want: "192.0.2.10"},
		{name: "proxy headers ignored", remote: "192.0.2.10:5555", headers: map[string]string{"X-Forwarded-For": "10.0.0.1"}, want: "192.0.2.10"},
		{name: "cloudflare header", remote: "127.0.0.1:1", headers: map[string]string{"CF-Connecting-IP": "203.0.113.5"}, trustProxy: true, want: "203.0.113.5"},
		{name: "first forwarded", remote: "127.0.0.1:1", headers: map[string]string{"X-Forwarded-For": " 10.0.0.1 , 10.0.0.2"}, trustProxy: true, want: "10.0.0.1"},
		{name: "real ip", remote: "127.0.0.1:1", headers: map[string]string{"X-Real-IP": "10.9.9.9"}, trustProxy: true, want: "10.9.9.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.0.2.7 ", "garbage", ""})
	if m.IsEmpty() {
		t.Fatal("IsEmpty() = true, want false")
	}

	cases := map[string]bool{
		"10.20.30.40": true,
		"192.0.2.7":   true,
		"192.0.2.8":   false,
		"not-an-ip":   false,
	}
	for ip, want := range cases {
		if got := m.Allow(ip); got != want {
			t.Errorf("Allow(%q) = %v, want %v", ip, got, want)
		}
	}

	if !NewIPMatcher(nil).IsEmpty() {
		t.Error("NewIPMatcher(nil).IsEmpty() = false, want true")
	}
}
