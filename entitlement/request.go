package entitlement

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/eapaka"
)

// ServiceEntitlementRequest はエンタイトルメント照会の端末側パラメータ。
// ゼロ値でも照会可能で、その場合はEAP-AKA認証（initial AuthN）となる。
type ServiceEntitlementRequest struct {
	// ConfigurationVersion は端末が保持している設定のバージョン（vers）。
	// 未取得なら0。
	ConfigurationVersion int

	// EntitlementVersion はTS.43仕様バージョン（entitlement_version）。
	// 空ならDefaultEntitlementVersion。
	EntitlementVersion string

	// AuthenticationToken が設定されている場合、EAP-AKAの代わりに
	// IMSI+tokenによるfast AuthNを行う。
	AuthenticationToken string

	// TerminalID は端末識別子。空ならSIMプロファイルのIMEIを使う。
	TerminalID string

	// TerminalVendor / TerminalModel / TerminalSoftwareVersion は
	// 端末情報。常に送信される。
	TerminalVendor          string
	TerminalModel           string
	TerminalSoftwareVersion string

	// AppName / AppVersion は要求元アプリ情報。設定時のみ送信される。
	AppName    string
	AppVersion string

	// NotificationToken が設定されている場合、NotificationActionと
	// 合わせて通知登録パラメータを送信する。
	NotificationToken  string
	NotificationAction int
}

// buildQueryURL は照会URLを組み立てる（GSMA TS.43 Section 2.3）。
// extraにはODSA操作などの追加パラメータを渡す。
func buildQueryURL(serverURL, appID string, sim SimProfile, request ServiceEntitlementRequest, extra url.Values) (string, error) {
	base, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}

	values := base.Query()

	// 認証パラメータ: トークンがあればfast AuthN、なければEAP-AKA
	if request.AuthenticationToken == "" {
		nai, err := eapaka.RootNAI(sim.MCCMNC, sim.IMSI)
		if err != nil {
			return "", err
		}
		values.Set(paramEapID, nai)
	} else {
		values.Set(paramIMSI, sim.IMSI)
		values.Set(paramToken, request.AuthenticationToken)
	}

	if request.NotificationToken != "" {
		values.Set(paramNotifAction, strconv.Itoa(request.NotificationAction))
		values.Set(paramNotifToken, request.NotificationToken)
	}

	// terminal_idは未指定ならIMEI
	if request.TerminalID != "" {
		values.Set(paramTerminalID, request.TerminalID)
	} else {
		values.Set(paramTerminalID, sim.IMEI)
	}

	if request.AppVersion != "" {
		values.Set(paramAppVersion, request.AppVersion)
	}
	if request.AppName != "" {
		values.Set(paramAppName, request.AppName)
	}

	values.Set(paramTerminalVendor, request.TerminalVendor)
	values.Set(paramTerminalModel, request.TerminalModel)
	values.Set(paramTerminalSwVersion, request.TerminalSoftwareVersion)

	values.Set(paramApp, appID)
	values.Set(paramVers, strconv.Itoa(request.ConfigurationVersion))
	entitlementVersion := request.EntitlementVersion
	if entitlementVersion == "" {
		entitlementVersion = DefaultEntitlementVersion
	}
	values.Set(paramEntitlementVersion, entitlementVersion)

	for key, list := range extra {
		for _, value := range list {
			values.Add(key, value)
		}
	}

	base.RawQuery = values.Encode()
	return base.String(), nil
}
