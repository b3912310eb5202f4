package odsa

import (
	"net/url"
	"strings"
)

// Request はODSA操作のHTTPクエリパラメータを組み立てられるリクエスト。
// どのパラメータが必須かは操作ごとに異なる（GSMA TS.43 Section 6.2）。
type Request interface {
	// Operation はODSA操作名を返す。
	Operation() string

	// QueryParams は操作固有のクエリパラメータを返す。
	// 空のフィールドに対応するパラメータは含まれない。
	QueryParams() url.Values
}

// CompanionTerminal はコンパニオンデバイス系操作で共通のデバイス情報。
type CompanionTerminal struct {
	ID              string // companion_terminal_id（IMEIなど）
	Vendor          string // companion_terminal_vendor
	Model           string // companion_terminal_model
	SoftwareVersion string // companion_terminal_sw_version
	FriendlyName    string // companion_terminal_friendly_name
	Service         string // companion_terminal_service
	ICCID           string // companion_terminal_iccid
	EID             string // companion_terminal_eid
}

func (c CompanionTerminal) apply(values url.Values) {
	setIfNotEmpty(values, ParamCompanionTerminalID, c.ID)
	setIfNotEmpty(values, ParamCompanionTerminalVendor, c.Vendor)
	setIfNotEmpty(values, ParamCompanionTerminalModel, c.Model)
	setIfNotEmpty(values, ParamCompanionTerminalSwVersion, c.SoftwareVersion)
	setIfNotEmpty(values, ParamCompanionTerminalFriendlyName, c.FriendlyName)
	setIfNotEmpty(values, ParamCompanionTerminalService, c.Service)
	setIfNotEmpty(values, ParamCompanionTerminalICCID, c.ICCID)
	setIfNotEmpty(values, ParamCompanionTerminalEID, c.EID)
}

// CheckEligibilityRequest はCheckEligibility操作のリクエスト
// （GSMA TS.43 Section 6.5.2）。
type CheckEligibilityRequest struct {
	Companion CompanionTerminal
}

func (r CheckEligibilityRequest) Operation() string { return OperationCheckEligibility }

func (r CheckEligibilityRequest) QueryParams() url.Values {
	values := url.Values{}
	values.Set(ParamOperation, r.Operation())
	r.Companion.apply(values)
	return values
}

// ManageSubscriptionRequest はManageSubscription操作のリクエスト
// （GSMA TS.43 Section 6.5.3）。
type ManageSubscriptionRequest struct {
	// OperationType は必須。SubscribeからUpdateSubscriptionまでのいずれか。
	OperationType OperationType

	Companion CompanionTerminal

	TerminalICCID       string
	TerminalEID         string
	TargetTerminalID    string
	TargetTerminalICCID string
	TargetTerminalEID   string
	OldTerminalID       string
	OldTerminalICCID    string
}

func (r ManageSubscriptionRequest) Operation() string { return OperationManageSubscription }

func (r ManageSubscriptionRequest) QueryParams() url.Values {
	values := url.Values{}
	values.Set(ParamOperation, r.Operation())
	if r.OperationType != OperationTypeNotSet {
		values.Set(ParamOperationType, r.OperationType.String())
	}
	r.Companion.apply(values)
	setIfNotEmpty(values, ParamTerminalICCID, r.TerminalICCID)
	setIfNotEmpty(values, ParamTerminalEID, r.TerminalEID)
	setIfNotEmpty(values, ParamTargetTerminalID, r.TargetTerminalID)
	setIfNotEmpty(values, ParamTargetTerminalICCID, r.TargetTerminalICCID)
	setIfNotEmpty(values, ParamTargetTerminalEID, r.TargetTerminalEID)
	setIfNotEmpty(values, ParamOldTerminalID, r.OldTerminalID)
	setIfNotEmpty(values, ParamOldTerminalICCID, r.OldTerminalICCID)
	return values
}

// ManageServiceRequest はManageService操作のリクエスト
// （GSMA TS.43 Section 6.5.4）。
type ManageServiceRequest struct {
	// OperationType は必須。ActivateServiceまたはDeactivateService。
	OperationType OperationType

	Companion CompanionTerminal
}

func (r ManageServiceRequest) Operation() string { return OperationManageService }

func (r ManageServiceRequest) QueryParams() url.Values {
	values := url.Values{}
	values.Set(ParamOperation, r.Operation())
	if r.OperationType != OperationTypeNotSet {
		values.Set(ParamOperationType, r.OperationType.String())
	}
	r.Companion.apply(values)
	return values
}

// AcquireConfigurationRequest はAcquireConfiguration操作のリクエスト
// （GSMA TS.43 Section 6.5.5）。
type AcquireConfigurationRequest struct {
	Companion CompanionTerminal

	TerminalICCID       string
	TerminalEID         string
	TargetTerminalID    string
	TargetTerminalICCID string
	TargetTerminalEID   string
}

func (r AcquireConfigurationRequest) Operation() string { return OperationAcquireConfiguration }

func (r AcquireConfigurationRequest) QueryParams() url.Values {
	values := url.Values{}
	values.Set(ParamOperation, r.Operation())
	r.Companion.apply(values)
	setIfNotEmpty(values, ParamTerminalICCID, r.TerminalICCID)
	setIfNotEmpty(values, ParamTerminalEID, r.TerminalEID)
	setIfNotEmpty(values, ParamTargetTerminalID, r.TargetTerminalID)
	setIfNotEmpty(values, ParamTargetTerminalICCID, r.TargetTerminalICCID)
	setIfNotEmpty(values, ParamTargetTerminalEID, r.TargetTerminalEID)
	return values
}

// AcquireTemporaryTokenRequest はAcquireTemporaryToken操作のリクエスト
// （GSMA TS.43 Section 6.5.7）。
type AcquireTemporaryTokenRequest struct {
	// OperationTargets は一時トークンで実行を許可する操作名のリスト。
	// カンマ区切りでoperation_targetsパラメータに載る。
	OperationTargets []string

	Companion CompanionTerminal
}

func (r AcquireTemporaryTokenRequest) Operation() string { return OperationAcquireTemporaryToken }

func (r AcquireTemporaryTokenRequest) QueryParams() url.Values {
	values := url.Values{}
	values.Set(ParamOperation, r.Operation())
	if len(r.OperationTargets) > 0 {
		values.Set(ParamOperationTargets, strings.Join(r.OperationTargets, ","))
	}
	r.Companion.apply(values)
	return values
}

func setIfNotEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
