package metadata

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitcore/pkg/requestcontext"
)

const chromeOnMac = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestMiddlewareHandler(t *testing.T) {
	tests := []struct {
		name           string
		xff            string
		remoteAddr     string
		trustedProxies []string
		expectedIP     string
	}{
		{
			name:       "ignores XFF without trusted proxies",
			xff:        "203.0.113.1",
			remoteAddr: "192.168.1.1:12345",
			expectedIP: "192.168.1.1",
		},
		{
			name:           "trusts first XFF hop from trusted proxy",
			xff:            "203.0.113.1, 10.0.0.2",
			remoteAddr:     "10.0.0.1:12345",
			trustedProxies: []string{"10.0.0.0/8"},
			expectedIP:     "203.0.113.1",
		},
		{
			name:           "falls back when XFF is garbage",
			xff:            "not-an-ip",
			remoteAddr:     "10.0.0.1:12345",
			trustedProxies: []string{"10.0.0.0/8"},
			expectedIP:     "10.0.0.1",
		},
		{
			name:       "handles bracketed IPv6 remote address",
			remoteAddr: "[2001:db8::1]:443",
			expectedIP: "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prefixes []netip.Prefix
			for _, p := range tt.trustedProxies {
				prefixes = append(prefixes, netip.MustParsePrefix(p))
			}
			mw := NewMiddleware(Config{TrustedProxies: prefixes})

			var gotIP, gotUA, gotLabel string
			h := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotIP = requestcontext.ClientIP(r.Context())
				gotUA = requestcontext.UserAgent(r.Context())
				gotLabel = requestcontext.ClientLabel(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("User-Agent", chromeOnMac)
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expectedIP, gotIP)
			assert.Equal(t, chromeOnMac, gotUA)
			assert.Contains(t, gotLabel, "Chrome on ")
		})
	}
}

func TestClientLabel(t *testing.T) {
	assert.Equal(t, "unknown", ClientLabel(""))
	assert.Equal(t, "bot", ClientLabel("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"))
	assert.Contains(t, ClientLabel(chromeOnMac), "Chrome on ")
}

func TestAnonymizeIP(t *testing.T) {
	tests := map[string]string{
		"":                             "unknown",
		"unknown":                      "unknown",
		"nope":                         "invalid",
		"192.168.1.47":                 "192.168.1.0",
		"2001:db8:85a3::8a2e:370:7334": "2001:0db8:85a3::",
	}
	for in, want := range tests {
		assert.Equal(t, want, AnonymizeIP(in), "input %q", in)
	}
}
