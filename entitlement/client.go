package entitlement

import (
	"context"
	"net/url"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/eapaka"
	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/httpclient"
	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/pkg/logging"
)

// ServiceEntitlement はTS.43エンタイトルメント照会のクライアント。
// 1つのSIMプロファイルとサーバー設定に紐づく。
// 並行利用可能: 照会ごとの状態（Cookie、リトライカウンタ）は
// 呼び出し内に閉じている。
type ServiceEntitlement struct {
	config CarrierConfig
	sim    SimProfile
	simOps eapaka.SimAuthenticator
	http   *httpclient.Client
	masker *logging.Masker
}

// NewServiceEntitlement は新しいクライアントを生成する。
// simOpsはSIMカードへの認証要求の実装。FixedEapAkaResponseを使う場合はnilでよい。
func NewServiceEntitlement(config CarrierConfig, sim SimProfile, simOps eapaka.SimAuthenticator) (*ServiceEntitlement, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if err := sim.validate(); err != nil {
		return nil, err
	}
	if simOps == nil && config.FixedEapAkaResponse == "" {
		return nil, ErrNoSimProfile
	}

	return &ServiceEntitlement{
		config: config,
		sim:    sim,
		simOps: simOps,
		http:   httpclient.New(httpclient.Config{Timeout: config.Timeout}),
		masker: logging.NewMasker(config.MaskPII),
	}, nil
}

// QueryEntitlementStatus は指定アプリのエンタイトルメント設定ドキュメント
// （XML原文）を取得する（GSMA TS.43-v5.0 Section 2.6.1）。
//
// requestにAuthenticationTokenがあればfast AuthN、なければEAP-AKA認証となる。
func (s *ServiceEntitlement) QueryEntitlementStatus(ctx context.Context, appID string, request ServiceEntitlementRequest) (string, error) {
	return s.query(ctx, appID, request, nil)
}

// query は共通の照会パス。extraはODSA操作の追加パラメータ。
func (s *ServiceEntitlement) query(ctx context.Context, appID string, request ServiceEntitlementRequest, extra url.Values) (string, error) {
	queryURL, err := buildQueryURL(s.config.EntitlementServerURL, appID, s.sim, request, extra)
	if err != nil {
		return "", err
	}

	// fast AuthNでもサーバーがチャレンジに切り替える可能性があるため、
	// identityは常に用意しておく
	identity, err := eapaka.RootNAI(s.sim.MCCMNC, s.sim.IMSI)
	if err != nil {
		return "", err
	}

	authenticator, err := eapaka.NewAuthenticator(eapaka.Options{
		Transport:              s.http,
		Sim:                    s.simOps,
		Identity:               identity,
		FixedChallengeResponse: s.config.FixedEapAkaResponse,
		Masker:                 s.masker,
	})
	if err != nil {
		return "", err
	}

	return authenticator.Authenticate(ctx, queryURL, s.config.EntitlementServerURL)
}
