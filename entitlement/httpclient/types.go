package httpclient

import "strings"

// ContentType はエンタイトルメントサーバー応答の種別を表す
type ContentType int

const (
	// ContentTypeUnknown は未知のContent-Type
	ContentTypeUnknown ContentType = iota
	// ContentTypeJSON はJSON（EAP-relayエンベロープを含む）
	ContentTypeJSON
	// ContentTypeXML はTS.43設定ドキュメント（XML）
	ContentTypeXML
)

// ClassifyContentType はContent-Typeヘッダ値を応答種別に分類する。
// "xml"を含めばXML、"json"を含めばJSON。一部ベンダーサーバーは
// XML応答に text/vnd.wap.connectivity を使うため、これもXMLとして扱う。
func ClassifyContentType(header string) ContentType {
	if header == "" {
		return ContentTypeUnknown
	}
	mediaType := header
	if i := strings.IndexByte(header, ';'); i >= 0 {
		mediaType = strings.TrimSpace(header[:i])
	}
	switch {
	case strings.Contains(mediaType, "xml"):
		return ContentTypeXML
	case mediaType == ContentTypeWapConnectivity:
		return ContentTypeXML
	case strings.Contains(mediaType, "json"):
		return ContentTypeJSON
	}
	return ContentTypeUnknown
}

// Request はエンタイトルメントサーバーへの1リクエストを表す
type Request struct {
	Method      string   // MethodGet / MethodPost
	URL         string   // クエリパラメータ組み立て済みのURL
	Accept      string   // Acceptヘッダ値
	ContentType string   // POST時のContent-Typeヘッダ値
	Body        string   // POST時のリクエストボディ
	Cookies     []string // 前ラウンドの応答から引き継ぐCookieヘッダ値
}

// Response はエンタイトルメントサーバーからの応答を表す
type Response struct {
	ContentType    ContentType // 分類済みのContent-Type
	RawContentType string      // Content-Typeヘッダの原文
	Body           string      // 応答ボディ
	Cookies        []string    // Set-Cookieヘッダ値（変更せずそのまま保持）
	StatusCode     int
}
