package eapaka

import (
	"context"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/httpclient"
)

// SimAuthenticator はSIM/モデムサブシステムへのGSM/3G認証要求を定義する。
// 呼び出しはモデムIPCを伴うため遅くなりうる。タイムアウト・キャンセルは
// ctx経由で伝播する。
type SimAuthenticator interface {
	// IccAuthenticate はGSM/3Gセキュリティコンテキストチャレンジ
	// （base64、RAND長+RAND+AUTN長+AUTNの34バイト）に対する
	// SIMの応答（base64）を返す。
	IccAuthenticate(ctx context.Context, challenge string) (string, error)
}

// Transport はHTTPトランスポートを定義する。
// *httpclient.Clientが実装する。
type Transport interface {
	Request(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)
}
