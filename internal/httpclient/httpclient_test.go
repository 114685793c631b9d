package httpclient

import (
	"net/http"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	client := New()
	if client.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", client.Timeout)
	}
	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("unexpected transport type %T", client.Transport)
	}
	if transport.MaxIdleConns != 16 || transport.MaxIdleConnsPerHost != 8 {
		t.Fatalf("unexpected pool sizes %d/%d", transport.MaxIdleConns, transport.MaxIdleConnsPerHost)
	}
}

func TestNewWithOptions(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) { return nil, nil })
	client := New(WithTimeout(5*time.Second), WithTransport(rt))
	if client.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", client.Timeout)
	}
	if _, ok := client.Transport.(roundTripperFunc); !ok {
		t.Fatalf("custom transport not used: %T", client.Transport)
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
