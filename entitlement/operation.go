package entitlement

import (
	"context"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/odsa"
	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/xmldoc"
)

// PerformODSAOperation は任意のODSA操作を実行し、応答ドキュメントを返す
// （GSMA TS.43 Section 6.2）。型付きの応答が必要な場合は
// CheckEligibilityなどの個別メソッドを使う。
func (s *ServiceEntitlement) PerformODSAOperation(ctx context.Context, appID string, request ServiceEntitlementRequest, operation odsa.Request) (*xmldoc.Doc, error) {
	body, err := s.query(ctx, appID, request, operation.QueryParams())
	if err != nil {
		return nil, err
	}
	return xmldoc.Parse(body), nil
}

// CheckEligibility はコンパニオン/プライマリアプリの利用可否を照会する
// （GSMA TS.43 Section 6.5.2）。
func (s *ServiceEntitlement) CheckEligibility(ctx context.Context, appID string, request ServiceEntitlementRequest, operation odsa.CheckEligibilityRequest) (*odsa.CheckEligibilityResponse, error) {
	doc, err := s.PerformODSAOperation(ctx, appID, request, operation)
	if err != nil {
		return nil, err
	}
	return odsa.ParseCheckEligibilityResponse(doc)
}

// ManageSubscription は契約の作成・移行・解約を行う
// （GSMA TS.43 Section 6.5.3）。
func (s *ServiceEntitlement) ManageSubscription(ctx context.Context, appID string, request ServiceEntitlementRequest, operation odsa.ManageSubscriptionRequest) (*odsa.ManageSubscriptionResponse, error) {
	doc, err := s.PerformODSAOperation(ctx, appID, request, operation)
	if err != nil {
		return nil, err
	}
	return odsa.ParseManageSubscriptionResponse(doc)
}

// ManageService はサービスの有効化・無効化を行う（GSMA TS.43 Section 6.5.4）。
func (s *ServiceEntitlement) ManageService(ctx context.Context, appID string, request ServiceEntitlementRequest, operation odsa.ManageServiceRequest) (*odsa.ManageServiceResponse, error) {
	doc, err := s.PerformODSAOperation(ctx, appID, request, operation)
	if err != nil {
		return nil, err
	}
	return odsa.ParseManageServiceResponse(doc)
}

// AcquireConfiguration はeSIMデバイスのサービス設定を取得する
// （GSMA TS.43 Section 6.5.5）。
func (s *ServiceEntitlement) AcquireConfiguration(ctx context.Context, appID string, request ServiceEntitlementRequest, operation odsa.AcquireConfigurationRequest) (*odsa.AcquireConfigurationResponse, error) {
	doc, err := s.PerformODSAOperation(ctx, appID, request, operation)
	if err != nil {
		return nil, err
	}
	return odsa.ParseAcquireConfigurationResponse(doc)
}

// AcquireTemporaryToken は指定した操作に使える一時トークンを取得する
// （GSMA TS.43 Section 6.5.7）。
func (s *ServiceEntitlement) AcquireTemporaryToken(ctx context.Context, appID string, request ServiceEntitlementRequest, operation odsa.AcquireTemporaryTokenRequest) (*odsa.AcquireTemporaryTokenResponse, error) {
	doc, err := s.PerformODSAOperation(ctx, appID, request, operation)
	if err != nil {
		return nil, err
	}
	return odsa.ParseAcquireTemporaryTokenResponse(doc)
}
