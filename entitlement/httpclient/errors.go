package httpclient

import (
	"errors"
	"fmt"
)

// センチネルエラー
var (
	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidRequest はリクエストの組み立てが不正な場合のエラー
	ErrInvalidRequest = errors.New("invalid http request")
)

// StatusError は2xx以外のHTTPステータスを表す。
// EAP-AKA層ではリトライせず、そのまま呼び出し元へ伝播する。
type StatusError struct {
	StatusCode int
	RetryAfter string // Retry-Afterヘッダ値（なければ空）
	Body       string
}

func (e *StatusError) Error() string {
	if e.RetryAfter != "" {
		return fmt.Sprintf("entitlement server status %d (retry-after %s)", e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("entitlement server status %d", e.StatusCode)
}

// IsServerError はサーバーエラー（5xx）かどうかを判定する
func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError は接続エラーを表す
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
