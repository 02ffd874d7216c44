package remote

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// publicHostClient returns a transport that sends every connection to srv,
// so requests to https://example.com reach the test server with a valid
// certificate while URL validation still sees a public hostname.
func publicHostClient(t *testing.T, srv *httptest.Server) http.RoundTripper {
	t.Helper()
	transport := srv.Client().Transport.(*http.Transport).Clone()
	transport.DialContext = func(ctx context.Context, network, _ string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, network, srv.Listener.Addr().String())
	}
	return transport
}

func TestFetchValidatesRedirects(t *testing.T) {
	var metadataHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/photo.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("image"))
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/photo.png", http.StatusFound)
	})
	mux.HandleFunc("/to-loopback", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://127.0.0.1/latest/meta-data", http.StatusFound)
	})
	mux.HandleFunc("/to-link-local", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://169.254.169.254/latest/meta-data", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/to-http", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://example.com/photo.png", http.StatusFound)
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	mux.HandleFunc("/latest/meta-data", func(w http.ResponseWriter, r *http.Request) {
		metadataHits.Add(1)
		_, _ = w.Write([]byte("secret"))
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()
	transport := publicHostClient(t, srv)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{name: "same host redirect", path: "/moved", want: "image"},
		{name: "redirect to loopback", path: "/to-loopback", wantErr: "redirect rejected"},
		{name: "redirect to link-local", path: "/to-link-local", wantErr: "redirect rejected"},
		{name: "redirect to plain http", path: "/to-http", wantErr: "redirect rejected"},
		{name: "redirect loop", path: "/loop", wantErr: "stopped after 10 redirects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fetch(context.Background(), "https://example.com"+tt.path, FetchOptions{}, transport)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("fetch() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("fetch() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("fetch() = %q, want %q", data, tt.want)
			}
		})
	}

	if got := metadataHits.Load(); got != 0 {
		t.Errorf("private endpoint requested %d times, want 0", got)
	}
}

func TestRejectPrivateAddress(t *testing.T) {
	tests := []struct {
		address string
		wantErr bool
	}{
		{address: "127.0.0.1:443", wantErr: true},
		{address: "10.1.2.3:443", wantErr: true},
		{address: "172.20.0.5:80", wantErr: true},
		{address: "192.168.0.10:443", wantErr: true},
		{address: "169.254.169.254:80", wantErr: true},
		{address: "[::1]:443", wantErr: true},
		{address: "[fe80::1%eth0]:443", wantErr: true},
		{address: "[fd00::1]:443", wantErr: true},
		{address: "0.0.0.0:443", wantErr: true},
		{address: "93.184.216.34:443"},
		{address: "[2606:2800:220:1:248:1893:25c8:1946]:443"},
		{address: "no-port", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			err := rejectPrivateAddress("tcp", tt.address, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("rejectPrivateAddress(%q) error = %v, wantErr %v", tt.address, err, tt.wantErr)
			}
		})
	}
}

func TestNewTransportGuardsDialer(t *testing.T) {
	guarded := newTransport(false)
	if guarded.Proxy != nil {
		t.Error("guarded transport should not use a proxy")
	}
	// Dialing a loopback listener must fail before any connection is made.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer ln.Close()

	conn, err := guarded.DialContext(context.Background(), "tcp", ln.Addr().String())
	if err == nil {
		conn.Close()
		t.Fatal("guarded dialer connected to loopback")
	}
	if !strings.Contains(err.Error(), "local or private address") {
		t.Errorf("dial error = %v", err)
	}

	open := newTransport(true)
	conn, err = open.DialContext(context.Background(), "tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("unguarded dial error = %v", err)
	}
	conn.Close()
}
