// Package odsa はGSMA TS.43 Section 6のODSA（On Device Service Activation）
// 操作のリクエスト組み立てと応答解析を提供する。
package odsa

import "strconv"

// ODSA操作名（HTTPパラメータ operation の値）
const (
	OperationCheckEligibility      = "CheckEligibility"
	OperationManageSubscription    = "ManageSubscription"
	OperationManageService         = "ManageService"
	OperationAcquireConfiguration  = "AcquireConfiguration"
	OperationAcquireTemporaryToken = "AcquireTemporaryToken"
)

// ODSA操作のHTTPパラメータ名
const (
	ParamOperation                     = "operation"
	ParamOperationType                 = "operation_type"
	ParamOperationTargets              = "operation_targets"
	ParamCompanionTerminalID           = "companion_terminal_id"
	ParamCompanionTerminalVendor       = "companion_terminal_vendor"
	ParamCompanionTerminalModel        = "companion_terminal_model"
	ParamCompanionTerminalSwVersion    = "companion_terminal_sw_version"
	ParamCompanionTerminalFriendlyName = "companion_terminal_friendly_name"
	ParamCompanionTerminalService      = "companion_terminal_service"
	ParamCompanionTerminalICCID        = "companion_terminal_iccid"
	ParamCompanionTerminalEID          = "companion_terminal_eid"
	ParamTerminalICCID                 = "terminal_iccid"
	ParamTerminalEID                   = "terminal_eid"
	ParamTargetTerminalID              = "target_terminal_id"
	ParamTargetTerminalICCID           = "target_terminal_iccid"
	ParamTargetTerminalEID             = "target_terminal_eid"
	ParamOldTerminalID                 = "old_terminal_id"
	ParamOldTerminalICCID              = "old_terminal_iccid"
)

// OperationType はODSA操作の詳細種別（HTTPパラメータ operation_type）
type OperationType int

const (
	// OperationTypeNotSet はoperation_typeを送信しないことを示す
	OperationTypeNotSet OperationType = -1

	// ManageSubscriptionで使用する種別
	OperationTypeSubscribe            OperationType = 0
	OperationTypeUnsubscribe          OperationType = 1
	OperationTypeChangeSubscription   OperationType = 2
	OperationTypeTransferSubscription OperationType = 3
	OperationTypeUpdateSubscription   OperationType = 4

	// ManageServiceで使用する種別
	OperationTypeActivateService   OperationType = 10
	OperationTypeDeactivateService OperationType = 11
)

// String はHTTPパラメータ値としての表現を返す。
func (t OperationType) String() string {
	return strconv.Itoa(int(t))
}

// ServiceStatus はeSIMデバイスのサービス状態
type ServiceStatus int

const (
	ServiceStatusUnknown            ServiceStatus = -1
	ServiceStatusActivated          ServiceStatus = 1
	ServiceStatusActivating         ServiceStatus = 2
	ServiceStatusDeactivated        ServiceStatus = 3
	ServiceStatusDeactivatedNoReuse ServiceStatus = 4
)

// EligibilityResult はCheckEligibilityの判定結果
type EligibilityResult int

const (
	EligibilityResultUnknown      EligibilityResult = -1
	EligibilityResultDisabled     EligibilityResult = 0
	EligibilityResultEnabled      EligibilityResult = 1
	EligibilityResultIncompatible EligibilityResult = 2
)

// SubscriptionResult はManageSubscriptionの結果
type SubscriptionResult int

const (
	SubscriptionResultUnknown            SubscriptionResult = -1
	SubscriptionResultContinueToWebsheet SubscriptionResult = 1
	SubscriptionResultDownloadProfile    SubscriptionResult = 2
	SubscriptionResultDone               SubscriptionResult = 3
	SubscriptionResultDelayedDownload    SubscriptionResult = 4
	SubscriptionResultDismiss            SubscriptionResult = 5
	SubscriptionResultDeleteProfileInUse SubscriptionResult = 6
)

// OperationResult はODSA応答の共通操作結果
type OperationResult int

const (
	OperationResultUnknown      OperationResult = -1
	OperationResultSuccess      OperationResult = 1
	OperationResultErrorGeneral OperationResult = 100
)

// コンパニオンデバイスのサービス種別（companion_terminal_service）
const (
	CompanionServiceSharedNumber    = "SharedNumber"
	CompanionServiceDifferentNumber = "DiffNumber"
)
