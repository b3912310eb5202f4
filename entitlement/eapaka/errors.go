package eapaka

import "errors"

// 認証フローの終端エラー。いずれもリトライ不可であり、
// errors.Isで区別できる必要がある。
var (
	// ErrMalformedResponse はサーバー応答（JSONエンベロープ/EAPパケット/XML）が
	// スキーマ通りに解読できない場合のエラー。リトライせず即時終了する。
	ErrMalformedResponse = errors.New("malformed entitlement server response")

	// ErrIccAuthenticationUnavailable はSIMが返したセキュリティコンテキストが
	// 不正・解析不能な場合のエラー。
	ErrIccAuthenticationUnavailable = errors.New("icc authentication not available")

	// ErrEapAkaFailure は通常チャレンジのままリトライ上限に達した場合のエラー。
	ErrEapAkaFailure = errors.New("eap-aka challenge retries exhausted")

	// ErrEapAkaSynchronizationFailure は同期失敗のままリトライ上限に達した場合のエラー。
	// ErrEapAkaFailureとは区別される。
	ErrEapAkaSynchronizationFailure = errors.New("eap-aka synchronization failure retries exhausted")

	// ErrKAutGeneration は鍵導出がK_autを生成できなかった場合のエラー。
	ErrKAutGeneration = errors.New("cannot generate K_aut")
)

// チャレンジパケット解析エラー。いずれも呼び出し側で
// ErrMalformedResponse系として扱われる。
var (
	// ErrInvalidChallenge はEAP-AKA Challengeパケットの形式が不正な場合のエラー
	ErrInvalidChallenge = errors.New("invalid eap-aka challenge packet")

	// ErrInvalidSecurityContext はGSM/3Gセキュリティコンテキストの形式が不正な場合のエラー
	ErrInvalidSecurityContext = errors.New("invalid gsm security context")

	// ErrResponseBuild はチャレンジ応答パケットを構築できない場合のエラー
	ErrResponseBuild = errors.New("cannot build eap-aka response packet")
)

// 内部整合性エラー
var (
	// ErrOutcomeConflict は1ラウンドの応答生成結果が通常応答と同期失敗応答の
	// 両方（またはいずれでもない状態）になった場合のエラー
	ErrOutcomeConflict = errors.New("challenge outcome must be exactly one of response or synchronization failure")
)
