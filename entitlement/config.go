package entitlement

import (
	"errors"
	"time"
)

// 設定検証エラー
var (
	// ErrNoServerURL はエンタイトルメントサーバーURLが未設定の場合のエラー
	ErrNoServerURL = errors.New("entitlement server url is required")

	// ErrNoSimProfile はSIMプロファイルが不完全な場合のエラー
	ErrNoSimProfile = errors.New("sim profile requires imsi and mccmnc")
)

// CarrierConfig はキャリアごとのエンタイトルメントサーバー設定。
type CarrierConfig struct {
	// EntitlementServerURL はTS.43エンタイトルメントサーバーのURL
	EntitlementServerURL string

	// Timeout はHTTP接続・読み取りタイムアウト。ゼロなら既定値。
	Timeout time.Duration

	// FixedEapAkaResponse が設定されている場合、SIMを使わず
	// この事前計算済みEAP-AKA応答パケットで認証する（テスト用バイパス）。
	FixedEapAkaResponse string

	// MaskPII はログ中のIMSI/EAP identityをマスキングするかどうか
	MaskPII bool
}

func (c CarrierConfig) validate() error {
	if c.EntitlementServerURL == "" {
		return ErrNoServerURL
	}
	return nil
}

// SimProfile は認証に使用するSIMの識別情報。
type SimProfile struct {
	// IMSI は加入者識別子
	IMSI string

	// MCCMNC はMCC+MNCの連結文字列（5桁または6桁）
	MCCMNC string

	// IMEI は端末識別子。terminal_idパラメータの既定値になる。
	IMEI string
}

func (p SimProfile) validate() error {
	if p.IMSI == "" || p.MCCMNC == "" {
		return ErrNoSimProfile
	}
	return nil
}
