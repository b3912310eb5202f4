// Package httpclient はTS.43エンタイトルメントサーバーとのHTTP通信を提供する。
package httpclient

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// Config はHTTPクライアント設定を保持する
type Config struct {
	// Timeout は接続・読み取りタイムアウト。ゼロならDefaultTimeout。
	Timeout time.Duration
}

// Client はエンタイトルメントサーバー向けHTTPクライアントの実装
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
}

// New は新しいHTTPクライアントを生成する。
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Cookieは呼び出し側がラウンドごとに明示的に引き継ぐため、
	// restyの自動Cookieジャーは無効化する。有効のままだと明示分と
	// 二重送信になり、呼び出しをまたいでCookieが残留する。
	httpClient := resty.New().
		SetTimeout(timeout).
		SetCookieJar(nil)

	cbSettings := gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cbMaxRequests,
		Interval:    cbInterval,
		Timeout:     cbTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cbFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
	}
}

// Request はリクエストを送信し応答を返す。
// 2xx以外のステータスは*StatusError、接続失敗は*ConnectionErrorとなり、
// いずれも本クライアントではリトライしない。
func (c *Client) Request(ctx context.Context, req Request) (*Response, error) {
	if req.URL == "" || req.Method == "" {
		return nil, ErrInvalidRequest
	}

	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		r := c.httpClient.R().SetContext(ctx)
		if req.Accept != "" {
			r.SetHeader(HeaderAccept, req.Accept)
		}
		if len(req.Cookies) > 0 {
			r.SetHeader(HeaderCookie, strings.Join(req.Cookies, "; "))
		}

		var resp *resty.Response
		var err error
		switch req.Method {
		case MethodPost:
			if req.ContentType != "" {
				r.SetHeader(HeaderContentType, req.ContentType)
			}
			resp, err = r.SetBody(req.Body).Post(req.URL)
		case MethodGet:
			resp, err = r.Get(req.URL)
		default:
			return nil, ErrInvalidRequest
		}

		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		// CB失敗判定対象: 5xx（501除く）
		if statusCode >= 500 && statusCode != 501 {
			statusErr := newStatusError(resp)
			slog.Error("entitlement server error",
				"event_id", "HTTP_STATUS_ERR",
				"error", statusErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			return nil, statusErr
		}

		// CB失敗判定対象外のエラーステータス
		if statusCode < 200 || statusCode >= 300 {
			statusErr := newStatusError(resp)
			slog.Error("entitlement server error",
				"event_id", "HTTP_STATUS_ERR",
				"error", statusErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			// CB対象外エラーはnilを返してCBカウントに含めない
			return statusErr, nil
		}

		slog.Debug("entitlement server response",
			"http_status", statusCode,
			"latency_ms", latencyMs,
		)

		return toResponse(resp), nil
	})

	if err != nil {
		// Circuit BreakerがOpen状態
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}

	if statusErr, ok := result.(*StatusError); ok {
		return nil, statusErr
	}

	resp, ok := result.(*Response)
	if !ok {
		return nil, ErrInvalidRequest
	}
	return resp, nil
}

// toResponse はresty応答をResponseに変換する。
// Set-Cookieヘッダ値は解釈せずそのまま保持し、次ラウンドの
// Cookieヘッダとして引き継げるようにする。
func toResponse(resp *resty.Response) *Response {
	rawContentType := resp.Header().Get(HeaderContentType)
	return &Response{
		ContentType:    ClassifyContentType(rawContentType),
		RawContentType: rawContentType,
		Body:           string(resp.Body()),
		Cookies:        cookieValues(resp),
		StatusCode:     resp.StatusCode(),
	}
}

// MergeCookies は引き継ぎ中のCookie一覧へ新しい応答のCookieを統合する。
// 同名のCookieは新しい値で置き換え、初出のCookieは末尾に追加する。
// 単純な連結では同名Cookieの古い値が残り、サーバーへ重複送信されてしまう。
func MergeCookies(current, incoming []string) []string {
	if len(incoming) == 0 {
		return current
	}
	merged := make([]string, len(current), len(current)+len(incoming))
	copy(merged, current)
	for _, c := range incoming {
		name := cookieName(c)
		replaced := false
		for i := range merged {
			if cookieName(merged[i]) == name {
				merged[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, c)
		}
	}
	return merged
}

// cookieName はname=value形式のCookie文字列から名前部分を取り出す。
func cookieName(cookie string) string {
	if i := strings.IndexByte(cookie, '='); i >= 0 {
		return cookie[:i]
	}
	return cookie
}

// cookieValues はSet-Cookieヘッダからname=valueの部分を取り出す。
func cookieValues(resp *resty.Response) []string {
	headers := resp.Header().Values(HeaderSetCookie)
	if len(headers) == 0 {
		return nil
	}
	values := make([]string, 0, len(headers))
	for _, h := range headers {
		if i := strings.IndexByte(h, ';'); i >= 0 {
			h = strings.TrimSpace(h[:i])
		}
		if h != "" {
			values = append(values, h)
		}
	}
	return values
}

func newStatusError(resp *resty.Response) *StatusError {
	return &StatusError{
		StatusCode: resp.StatusCode(),
		RetryAfter: resp.Header().Get(HeaderRetryAfter),
		Body:       string(resp.Body()),
	}
}
