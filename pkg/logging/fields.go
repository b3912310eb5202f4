package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldAttempt    = "attempt"
	FieldIMSI       = "imsi"
	FieldEAPID      = "eap_id"
	FieldAppID      = "app_id"
	FieldOperation  = "operation"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// WithAttempt はEAP-AKAチャレンジ試行回数のslog.Attrを返す。
func WithAttempt(attempt int) slog.Attr {
	return slog.Int(FieldAttempt, attempt)
}

// WithAppID はTS.43アプリケーションIDのslog.Attrを返す。
func WithAppID(appID string) slog.Attr {
	return slog.String(FieldAppID, appID)
}

// WithOperation はODSA操作名のslog.Attrを返す。
func WithOperation(operation string) slog.Attr {
	return slog.String(FieldOperation, operation)
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithIMSI はマスキングされたIMSIのslog.Attrを返す。
func (cf *CommonFields) WithIMSI(imsi string) slog.Attr {
	return slog.String(FieldIMSI, cf.masker.IMSI(imsi))
}

// WithEAPIdentity はマスキングされたEAP identityのslog.Attrを返す。
func (cf *CommonFields) WithEAPIdentity(nai string) slog.Attr {
	return slog.String(FieldEAPID, cf.masker.NAI(nai))
}

// AuthLogFields は認証ログ用の共通フィールドを返す。
func (cf *CommonFields) AuthLogFields(traceID, eventID, nai string) []any {
	return []any{
		WithTraceID(traceID),
		WithEventID(eventID),
		cf.WithEAPIdentity(nai),
	}
}
