package httpclient

import "time"

// HTTPヘッダ名
const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderCookie      = "Cookie"
	HeaderSetCookie   = "Set-Cookie"
	HeaderRetryAfter  = "Retry-After"
)

// Content-Type値（GSMA TS.43）
const (
	// ContentTypeEapRelayJSON はEAP-AKAパケットを包むJSONエンベロープ
	ContentTypeEapRelayJSON = "application/vnd.gsma.eap-relay.v1.0+json"

	// ContentTypeWapConnectivity は一部ベンダーサーバーがXML応答に使う型
	ContentTypeWapConnectivity = "text/vnd.wap.connectivity"

	// AcceptEapRelayAndXML は初回/チャレンジ応答リクエストのAcceptヘッダ値
	AcceptEapRelayAndXML = ContentTypeEapRelayJSON + ", text/vnd.wap.connectivity-xml"
)

// リクエストメソッド
const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

// 接続設定
const (
	// DefaultTimeout は接続・読み取りタイムアウトの既定値
	DefaultTimeout = 30 * time.Second
)

// Circuit Breaker設定
const (
	cbName             = "entitlement-server"
	cbMaxRequests      = 3
	cbInterval         = 10 * time.Second
	cbTimeout          = 30 * time.Second
	cbFailureThreshold = 5
)
