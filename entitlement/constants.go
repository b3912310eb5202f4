// Package entitlement はGSMA TS.43キャリアサービスエンタイトルメントの
// クライアントAPIを提供する。
//
// EAP-AKA認証（entitlement/eapaka）を経てエンタイトルメントサーバーから
// 設定ドキュメントを取得し、ODSA操作（entitlement/odsa）の実行と
// 応答解析までを担う。
package entitlement

// TS.43アプリケーションID
const (
	// AppVoLTE はVoice-over-LTEエンタイトルメント
	AppVoLTE = "ap2003"

	// AppVoWiFi はVoice-over-WiFiエンタイトルメント
	AppVoWiFi = "ap2004"

	// AppSMSoIP はSMS-over-IPエンタイトルメント
	AppSMSoIP = "ap2005"

	// AppODSACompanion はコンパニオンデバイスのODSA
	AppODSACompanion = "ap2006"

	// AppODSAPrimary はプライマリデバイスのODSA
	AppODSAPrimary = "ap2009"

	// AppDataPlanBoost はデータプラン情報エンタイトルメント
	AppDataPlanBoost = "ap2010"

	// AppODSAServerInitiated はサーバー起点のエンタイトルメント・アクティベーション
	AppODSAServerInitiated = "ap2011"

	// AppDirectCarrierBilling はキャリア決済
	AppDirectCarrierBilling = "ap2012"

	// AppPrivateUserIdentity はプライベートユーザーID
	AppPrivateUserIdentity = "ap2013"

	// AppPhoneNumberInformation は電話番号情報
	AppPhoneNumberInformation = "ap2014"
)

// 共通HTTPクエリパラメータ名（GSMA TS.43 Section 2.3）
const (
	paramVers               = "vers"
	paramEntitlementVersion = "entitlement_version"
	paramTerminalID         = "terminal_id"
	paramTerminalVendor     = "terminal_vendor"
	paramTerminalModel      = "terminal_model"
	paramTerminalSwVersion  = "terminal_sw_version"
	paramApp                = "app"
	paramEapID              = "EAP_ID"
	paramIMSI               = "IMSI"
	paramToken              = "token"
	paramNotifAction        = "notif_action"
	paramNotifToken         = "notif_token"
	paramAppVersion         = "app_version"
	paramAppName            = "app_name"
)

// DefaultEntitlementVersion はentitlement_versionパラメータの既定値
const DefaultEntitlementVersion = "2.0"

// 通知アクション（notif_action）
const (
	// NotificationActionEnable はGCM/FCM等での通知受信登録
	NotificationActionEnable = 1

	// NotificationActionDisable は通知受信解除
	NotificationActionDisable = 0
)
