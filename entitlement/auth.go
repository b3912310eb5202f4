package entitlement

import (
	"context"
	"errors"
	"strconv"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/xmldoc"
)

// ErrNoAuthToken は応答ドキュメントにTOKEN characteristicがない場合のエラー
var ErrNoAuthToken = errors.New("response document carries no auth token")

// ValidityNotAvailable はトークン有効期間がサーバーから提供されなかったことを示す。
const ValidityNotAvailable int64 = -1

// AuthToken はTS.43認証トークン（GSMA TS.43 Section 2.8.1）。
// 有効期間内はfast AuthNに使用できる。
type AuthToken struct {
	// Token はサーバーが発行した認証トークン
	Token string

	// Validity はトークンの有効期間（秒）。サーバーが提供しない場合は
	// ValidityNotAvailable。
	Validity int64
}

// GetAuthToken はEAP-AKA認証を実行して認証トークンを取得する。
// 取得したトークンはServiceEntitlementRequest.AuthenticationTokenに
// 設定することで以後の照会をfast AuthNにできる。
func (s *ServiceEntitlement) GetAuthToken(ctx context.Context, appID string, request ServiceEntitlementRequest) (AuthToken, error) {
	// トークン取得は常にEAP-AKA認証から始める
	request.AuthenticationToken = ""

	body, err := s.QueryEntitlementStatus(ctx, appID, request)
	if err != nil {
		return AuthToken{}, err
	}
	return parseAuthToken(body)
}

// parseAuthToken は設定ドキュメントのTOKEN characteristicを解析する。
func parseAuthToken(body string) (AuthToken, error) {
	doc := xmldoc.Parse(body)

	token, ok := doc.Get(xmldoc.ParmToken, xmldoc.CharacteristicToken)
	if !ok || token == "" {
		return AuthToken{}, ErrNoAuthToken
	}

	validity := ValidityNotAvailable
	if raw, ok := doc.Get(xmldoc.ParmValidity, xmldoc.CharacteristicToken); ok {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			validity = parsed
		}
	}

	return AuthToken{Token: token, Validity: validity}, nil
}
