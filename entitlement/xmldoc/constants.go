package xmldoc

// characteristic型名（GSMA TS.43）
const (
	CharacteristicApplication          = "APPLICATION"
	CharacteristicPrimaryConfiguration = "PrimaryConfiguration"
	CharacteristicUser                 = "USER"
	CharacteristicToken                = "TOKEN"
	CharacteristicDownloadInfo         = "DownloadInfo"
)

// parm名
const (
	ParmToken                 = "token"
	ParmAppID                 = "AppID"
	ParmVersion               = "version"
	ParmValidity              = "validity"
	ParmOperationResult       = "OperationResult"
	ParmPrimaryAppEligibility = "PrimaryAppEligibility"
	ParmTemporaryToken        = "TemporaryToken"
	ParmTemporaryTokenExpiry  = "TemporaryTokenExpiry"
	ParmMSISDN                = "msisdn"
	ParmICCID                 = "ICCID"
	ParmServiceStatus         = "ServiceStatus"
	ParmPollingInterval       = "PollingInterval"
	ParmSubscriptionResult    = "SubscriptionResult"
	ParmProfileActivationCode = "ProfileActivationCode"
	ParmProfileICCID          = "ProfileIccid"
	ParmProfileSmdpAddress    = "ProfileSmdpAddress"
	ParmOperationTargets      = "OperationTargets"
)

// parm値
const (
	ParmValueOperationResultSuccess      = "1"
	ParmValueOperationResultErrorGeneral = "100"

	ParmValuePrimaryAppEligibilityEnabled = "1"

	ParmValueServiceStatusActivated          = "1"
	ParmValueServiceStatusActivating         = "2"
	ParmValueServiceStatusDeactivated        = "3"
	ParmValueServiceStatusDeactivatedNoReuse = "4"

	ParmValueSubscriptionResultDownloadProfile = "2"
	ParmValueSubscriptionResultDone            = "3"
	ParmValueSubscriptionResultDelayedDownload = "4"
	ParmValueSubscriptionResultDismiss         = "5"
)
