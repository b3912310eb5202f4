package odsa

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/xmldoc"
)

// ErrMalformedDocument はODSA応答ドキュメントに必要なcharacteristicや
// parmが欠けている場合のエラー
var ErrMalformedDocument = errors.New("malformed odsa response document")

// Result はすべてのODSA応答に共通する操作結果。
type Result struct {
	OperationResult OperationResult
}

// Success は操作結果が成功かどうかを返す。
func (r Result) Success() bool {
	return r.OperationResult == OperationResultSuccess
}

// parseResult はAPPLICATION characteristicのOperationResultを読み出す。
func parseResult(doc *xmldoc.Doc) (Result, error) {
	raw, ok := doc.Get(xmldoc.ParmOperationResult, xmldoc.CharacteristicApplication)
	if !ok {
		return Result{OperationResult: OperationResultUnknown},
			fmt.Errorf("%w: missing %s", ErrMalformedDocument, xmldoc.ParmOperationResult)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return Result{OperationResult: OperationResultUnknown},
			fmt.Errorf("%w: %s=%q", ErrMalformedDocument, xmldoc.ParmOperationResult, raw)
	}
	return Result{OperationResult: OperationResult(value)}, nil
}

// CheckEligibilityResponse はCheckEligibility操作の応答。
type CheckEligibilityResponse struct {
	Result

	// AppEligibility はアプリの利用可否
	AppEligibility EligibilityResult

	// CompanionDeviceServices はコンパニオンデバイスで利用可能な
	// サービス種別のリスト
	CompanionDeviceServices []string
}

// ParseCheckEligibilityResponse はCheckEligibility応答ドキュメントを解析する。
func ParseCheckEligibilityResponse(doc *xmldoc.Doc) (*CheckEligibilityResponse, error) {
	result, err := parseResult(doc)
	if err != nil {
		return nil, err
	}

	resp := &CheckEligibilityResponse{
		Result:         result,
		AppEligibility: EligibilityResultUnknown,
	}

	if raw, ok := doc.Get(xmldoc.ParmPrimaryAppEligibility, xmldoc.CharacteristicApplication); ok {
		if value, err := strconv.Atoi(raw); err == nil {
			resp.AppEligibility = EligibilityResult(value)
		}
	}
	if raw, ok := doc.Get("CompanionDeviceServices", xmldoc.CharacteristicApplication); ok {
		resp.CompanionDeviceServices = splitList(raw)
	}
	return resp, nil
}

// ManageSubscriptionResponse はManageSubscription操作の応答。
type ManageSubscriptionResponse struct {
	Result

	// SubscriptionResult は契約操作の結果
	SubscriptionResult SubscriptionResult

	// SubscriptionServiceURL はContinueToWebsheetの場合に開くURL
	SubscriptionServiceURL string

	// SubscriptionServiceUserData はwebsheetへ引き渡すユーザー固有データ
	SubscriptionServiceUserData string

	// DownloadInfo はDownloadProfileの場合のプロファイル取得情報
	DownloadInfo *DownloadInfo
}

// ParseManageSubscriptionResponse はManageSubscription応答ドキュメントを解析する。
func ParseManageSubscriptionResponse(doc *xmldoc.Doc) (*ManageSubscriptionResponse, error) {
	result, err := parseResult(doc)
	if err != nil {
		return nil, err
	}

	resp := &ManageSubscriptionResponse{
		Result:             result,
		SubscriptionResult: SubscriptionResultUnknown,
	}

	if raw, ok := doc.Get(xmldoc.ParmSubscriptionResult, xmldoc.CharacteristicApplication); ok {
		if value, err := strconv.Atoi(raw); err == nil {
			resp.SubscriptionResult = SubscriptionResult(value)
		}
	}
	if url, ok := doc.Get("SubscriptionServiceURL", xmldoc.CharacteristicApplication); ok {
		resp.SubscriptionServiceURL = url
	}
	if data, ok := doc.Get("SubscriptionServiceUserData", xmldoc.CharacteristicApplication); ok {
		resp.SubscriptionServiceUserData = data
	}
	resp.DownloadInfo = parseDownloadInfo(doc)
	return resp, nil
}

// ManageServiceResponse はManageService操作の応答。
type ManageServiceResponse struct {
	Result

	// ServiceStatus は操作後のサービス状態
	ServiceStatus ServiceStatus
}

// ParseManageServiceResponse はManageService応答ドキュメントを解析する。
func ParseManageServiceResponse(doc *xmldoc.Doc) (*ManageServiceResponse, error) {
	result, err := parseResult(doc)
	if err != nil {
		return nil, err
	}

	resp := &ManageServiceResponse{
		Result:        result,
		ServiceStatus: ServiceStatusUnknown,
	}
	if raw, ok := doc.Get(xmldoc.ParmServiceStatus, xmldoc.CharacteristicApplication); ok {
		if value, err := strconv.Atoi(raw); err == nil {
			resp.ServiceStatus = ServiceStatus(value)
		}
	}
	return resp, nil
}

// AcquireConfigurationResponse はAcquireConfiguration操作の応答。
// PrimaryConfiguration characteristicの内容を対象とする。
type AcquireConfigurationResponse struct {
	Result

	ICCID           string
	ServiceStatus   ServiceStatus
	PollingInterval int
	DownloadInfo    *DownloadInfo
}

// ParseAcquireConfigurationResponse はAcquireConfiguration応答ドキュメントを解析する。
func ParseAcquireConfigurationResponse(doc *xmldoc.Doc) (*AcquireConfigurationResponse, error) {
	result, err := parseResult(doc)
	if err != nil {
		return nil, err
	}

	resp := &AcquireConfigurationResponse{
		Result:        result,
		ServiceStatus: ServiceStatusUnknown,
	}

	primary := []string{xmldoc.CharacteristicApplication, xmldoc.CharacteristicPrimaryConfiguration}
	if iccid, ok := doc.Get(xmldoc.ParmICCID, primary...); ok {
		resp.ICCID = iccid
	}
	if raw, ok := doc.Get(xmldoc.ParmServiceStatus, primary...); ok {
		if value, err := strconv.Atoi(raw); err == nil {
			resp.ServiceStatus = ServiceStatus(value)
		}
	}
	if raw, ok := doc.Get(xmldoc.ParmPollingInterval, primary...); ok {
		if value, err := strconv.Atoi(raw); err == nil {
			resp.PollingInterval = value
		}
	}
	resp.DownloadInfo = parseDownloadInfo(doc)
	return resp, nil
}

// AcquireTemporaryTokenResponse はAcquireTemporaryToken操作の応答。
type AcquireTemporaryTokenResponse struct {
	Result

	// TemporaryToken は後続操作で認証の代わりに使う一時トークン
	TemporaryToken string

	// TemporaryTokenExpiry はトークンの有効期限（サーバー表記のまま）
	TemporaryTokenExpiry string

	// OperationTargets はこのトークンで許可された操作名のリスト
	OperationTargets []string
}

// ParseAcquireTemporaryTokenResponse はAcquireTemporaryToken応答ドキュメントを解析する。
func ParseAcquireTemporaryTokenResponse(doc *xmldoc.Doc) (*AcquireTemporaryTokenResponse, error) {
	result, err := parseResult(doc)
	if err != nil {
		return nil, err
	}

	token, ok := doc.Get(xmldoc.ParmTemporaryToken, xmldoc.CharacteristicToken)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedDocument, xmldoc.ParmTemporaryToken)
	}

	resp := &AcquireTemporaryTokenResponse{
		Result:         result,
		TemporaryToken: token,
	}
	if expiry, ok := doc.Get(xmldoc.ParmTemporaryTokenExpiry, xmldoc.CharacteristicToken); ok {
		resp.TemporaryTokenExpiry = expiry
	}
	if targets, ok := doc.Get(xmldoc.ParmOperationTargets, xmldoc.CharacteristicToken); ok {
		resp.OperationTargets = splitList(targets)
	}
	return resp, nil
}

// splitList はカンマ区切りのparm値をリストに分解する。
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
