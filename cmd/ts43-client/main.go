// Package main はTS.43エンタイトルメント照会CLI（ts43-client）の
// エントリーポイント。
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/cmd/ts43-client/internal/config"
	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement"
	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/odsa"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定読み込み失敗", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化（JSON形式、INFO以上）
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("app", "ts43-client")
	slog.SetDefault(logger)

	// 3. クライアント生成
	client, err := entitlement.NewServiceEntitlement(
		entitlement.CarrierConfig{
			EntitlementServerURL: cfg.ServerURL,
			Timeout:              cfg.HTTPTimeout,
			FixedEapAkaResponse:  cfg.FixedEapAkaResponse,
			MaskPII:              cfg.LogMaskIMSI,
		},
		entitlement.SimProfile{
			IMSI:   cfg.IMSI,
			MCCMNC: cfg.MCCMNC,
			IMEI:   cfg.IMEI,
		},
		nil,
	)
	if err != nil {
		slog.Error("クライアント初期化失敗", "error", err)
		os.Exit(1)
	}

	request := entitlement.ServiceEntitlementRequest{
		AuthenticationToken:     cfg.AuthToken,
		TerminalVendor:          cfg.TerminalVendor,
		TerminalModel:           cfg.TerminalModel,
		TerminalSoftwareVersion: cfg.TerminalSwVersion,
	}

	// 4. 操作実行
	ctx := context.Background()
	output, err := run(ctx, client, cfg, request)
	if err != nil {
		slog.Error("照会失敗",
			"operation", cfg.Operation,
			"app_id", cfg.AppID,
			"error", err,
		)
		os.Exit(1)
	}

	// 5. 結果出力
	fmt.Println(output)
}

// run は設定された操作を1回実行して表示用文字列を返す。
func run(ctx context.Context, client *entitlement.ServiceEntitlement, cfg *config.Config, request entitlement.ServiceEntitlementRequest) (string, error) {
	switch cfg.Operation {
	case config.OperationStatus:
		return client.QueryEntitlementStatus(ctx, cfg.AppID, request)

	case config.OperationAuthToken:
		token, err := client.GetAuthToken(ctx, cfg.AppID, request)
		if err != nil {
			return "", err
		}
		return asJSON(token)

	case config.OperationAcquireConfiguration:
		resp, err := client.AcquireConfiguration(ctx, cfg.AppID, request, odsa.AcquireConfigurationRequest{})
		if err != nil {
			return "", err
		}
		return asJSON(resp)

	case config.OperationCheckEligibility:
		resp, err := client.CheckEligibility(ctx, cfg.AppID, request, odsa.CheckEligibilityRequest{})
		if err != nil {
			return "", err
		}
		return asJSON(resp)

	case config.OperationAcquireTemporaryToken:
		resp, err := client.AcquireTemporaryToken(ctx, cfg.AppID, request, odsa.AcquireTemporaryTokenRequest{})
		if err != nil {
			return "", err
		}
		return asJSON(resp)
	}
	return "", fmt.Errorf("unsupported operation %q", cfg.Operation)
}

func asJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
