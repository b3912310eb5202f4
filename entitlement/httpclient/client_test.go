package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClassifyContentType(t *testing.T) {
	tests := []struct {
		header string
		want   ContentType
	}{
		{"", ContentTypeUnknown},
		{"application/json", ContentTypeJSON},
		{ContentTypeEapRelayJSON, ContentTypeJSON},
		{"application/vnd.gsma.eap-relay.v1.0+json; charset=utf-8", ContentTypeJSON},
		{"text/xml", ContentTypeXML},
		{"application/xml; charset=utf-8", ContentTypeXML},
		{"text/vnd.wap.connectivity-xml", ContentTypeXML},
		// ベンダー独自: パラメータ付きでもXMLとして扱う
		{"text/vnd.wap.connectivity", ContentTypeXML},
		{"text/vnd.wap.connectivity; charset=utf-8", ContentTypeXML},
		{"text/plain", ContentTypeUnknown},
		{"application/octet-stream", ContentTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := ClassifyContentType(tt.header); got != tt.want {
				t.Errorf("ClassifyContentType(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestRequestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if got := r.Header.Get(HeaderAccept); got != AcceptEapRelayAndXML {
			t.Errorf("Accept = %q, want %q", got, AcceptEapRelayAndXML)
		}
		w.Header().Set(HeaderContentType, "text/vnd.wap.connectivity-xml")
		w.Header().Add(HeaderSetCookie, "JSESSIONID=abc123; Path=/; HttpOnly")
		w.Header().Add(HeaderSetCookie, "token=xyz; Secure")
		w.Write([]byte("<doc/>"))
	}))
	defer server.Close()

	client := New(Config{})
	resp, err := client.Request(context.Background(), Request{
		Method: MethodGet,
		URL:    server.URL,
		Accept: AcceptEapRelayAndXML,
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	if resp.ContentType != ContentTypeXML {
		t.Errorf("ContentType = %v, want XML", resp.ContentType)
	}
	if resp.Body != "<doc/>" {
		t.Errorf("Body = %q, want %q", resp.Body, "<doc/>")
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}

	// Set-Cookieヘッダからname=value部分のみが取り出される
	want := []string{"JSESSIONID=abc123", "token=xyz"}
	if len(resp.Cookies) != len(want) {
		t.Fatalf("Cookies = %v, want %v", resp.Cookies, want)
	}
	for i := range want {
		if resp.Cookies[i] != want[i] {
			t.Errorf("Cookies[%d] = %q, want %q", i, resp.Cookies[i], want[i])
		}
	}
}

func TestRequestPostForwardsCookies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get(HeaderContentType); got != ContentTypeEapRelayJSON {
			t.Errorf("Content-Type = %q, want %q", got, ContentTypeEapRelayJSON)
		}
		cookies := strings.Join(r.Header.Values(HeaderCookie), "; ")
		if !strings.Contains(cookies, "JSESSIONID=abc123") || !strings.Contains(cookies, "token=xyz") {
			t.Errorf("Cookie = %q にname=valueが含まれていない", cookies)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"eap-relay-packet":"dGVzdA=="}` {
			t.Errorf("body = %q", body)
		}
		w.Header().Set(HeaderContentType, ContentTypeEapRelayJSON)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(Config{})
	resp, err := client.Request(context.Background(), Request{
		Method:      MethodPost,
		URL:         server.URL,
		Accept:      AcceptEapRelayAndXML,
		ContentType: ContentTypeEapRelayJSON,
		Body:        `{"eap-relay-packet":"dGVzdA=="}`,
		Cookies:     []string{"JSESSIONID=abc123", "token=xyz"},
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if resp.ContentType != ContentTypeJSON {
		t.Errorf("ContentType = %v, want JSON", resp.ContentType)
	}
}

func TestRequestNoImplicitCookieJar(t *testing.T) {
	var cookieHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieHeaders = append(cookieHeaders, strings.Join(r.Header.Values(HeaderCookie), "; "))
		w.Header().Add(HeaderSetCookie, "SESSION=abc123; Path=/")
		w.Header().Set(HeaderContentType, "text/xml")
		w.Write([]byte("<doc/>"))
	}))
	defer server.Close()

	client := New(Config{})
	for i := 0; i < 2; i++ {
		if _, err := client.Request(context.Background(), Request{
			Method: MethodGet,
			URL:    server.URL,
		}); err != nil {
			t.Fatalf("Request() error = %v", err)
		}
	}

	// Cookieは呼び出し側が明示的に渡したものだけが送られる。
	// 前応答のSet-Cookieがクライアント内部に残留してはならない。
	if len(cookieHeaders) != 2 {
		t.Fatalf("リクエスト回数 = %d, want 2", len(cookieHeaders))
	}
	if cookieHeaders[1] != "" {
		t.Errorf("2回目のCookie = %q, want 空", cookieHeaders[1])
	}
}

func TestMergeCookies(t *testing.T) {
	tests := []struct {
		name     string
		current  []string
		incoming []string
		want     []string
	}{
		{"追加なし", []string{"a=1"}, nil, []string{"a=1"}},
		{"初回", nil, []string{"a=1"}, []string{"a=1"}},
		{"初出は末尾に追加", []string{"a=1"}, []string{"b=2"}, []string{"a=1", "b=2"}},
		{"同名は置き換え", []string{"a=1", "b=2"}, []string{"a=9"}, []string{"a=9", "b=2"}},
		{"置き換えと追加の混在", []string{"a=1"}, []string{"a=2", "c=3"}, []string{"a=2", "c=3"}},
		{"同一値の再送でも重複しない", []string{"a=1"}, []string{"a=1"}, []string{"a=1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeCookies(tt.current, tt.incoming)
			if len(got) != len(tt.want) {
				t.Fatalf("MergeCookies() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MergeCookies()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRequestStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderRetryAfter, "120")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	}))
	defer server.Close()

	client := New(Config{})
	_, err := client.Request(context.Background(), Request{
		Method: MethodGet,
		URL:    server.URL,
	})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", statusErr.StatusCode)
	}
	if statusErr.RetryAfter != "120" {
		t.Errorf("RetryAfter = %q, want %q", statusErr.RetryAfter, "120")
	}
	if !statusErr.IsServerError() {
		t.Error("IsServerError() = false, want true")
	}
}

func TestRequestClientErrorNotCounted(t *testing.T) {
	// 4xxはStatusErrorとして返るがCircuit Breakerの失敗にはカウントされない
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := New(Config{})
	for i := 0; i < cbFailureThreshold+2; i++ {
		_, err := client.Request(context.Background(), Request{
			Method: MethodGet,
			URL:    server.URL,
		})
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("%d回目でCircuit Breakerが開いた", i+1)
		}
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("error = %v, want *StatusError", err)
		}
		if statusErr.IsServerError() {
			t.Error("IsServerError() = true, want false")
		}
	}
}

func TestRequestCircuitOpensOnServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(Config{})
	var lastErr error
	for i := 0; i < cbFailureThreshold+1; i++ {
		_, lastErr = client.Request(context.Background(), Request{
			Method: MethodGet,
			URL:    server.URL,
		})
	}
	if !errors.Is(lastErr, ErrCircuitOpen) {
		t.Errorf("error = %v, want ErrCircuitOpen", lastErr)
	}
}

func TestRequestConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 即座に閉じて接続失敗させる

	client := New(Config{})
	_, err := client.Request(context.Background(), Request{
		Method: MethodGet,
		URL:    server.URL,
	})

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error = %v, want *ConnectionError", err)
	}
	if connErr.Unwrap() == nil {
		t.Error("Unwrap() = nil")
	}
}

func TestRequestValidation(t *testing.T) {
	client := New(Config{})

	tests := []struct {
		name string
		req  Request
	}{
		{"URLなし", Request{Method: MethodGet}},
		{"メソッドなし", Request{URL: "http://localhost"}},
		{"未対応メソッド", Request{Method: "DELETE", URL: "http://localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.Request(context.Background(), tt.req); !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}
