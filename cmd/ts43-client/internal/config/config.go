// Package config はts43-clientの環境変数設定を提供する。
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// エンタイトルメントサーバー設定
	ServerURL string `envconfig:"ENTITLEMENT_SERVER_URL" required:"true"`

	// SIMプロファイル
	IMSI   string `envconfig:"SIM_IMSI" required:"true"`
	MCCMNC string `envconfig:"SIM_MCCMNC" required:"true"`
	IMEI   string `envconfig:"SIM_IMEI"`

	// 照会設定
	AppID     string `envconfig:"APP_ID" default:"ap2004"`
	Operation string `envconfig:"OPERATION" default:"status"`

	// 認証設定。実SIMを持たないため、fast AuthN用トークンか
	// 事前計算済みEAP-AKA応答のいずれかが必要。
	AuthToken           string `envconfig:"AUTH_TOKEN"`
	FixedEapAkaResponse string `envconfig:"FIXED_EAP_AKA_RESPONSE"`

	// 端末情報
	TerminalVendor    string `envconfig:"TERMINAL_VENDOR" default:"golang"`
	TerminalModel     string `envconfig:"TERMINAL_MODEL" default:"ts43-client"`
	TerminalSwVersion string `envconfig:"TERMINAL_SW_VERSION" default:"1.0"`

	// HTTP設定
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// ログ設定
	LogMaskIMSI bool `envconfig:"LOG_MASK_IMSI" default:"true"`
}

// 対応する操作名
const (
	OperationStatus                = "status"
	OperationAuthToken             = "auth-token"
	OperationAcquireConfiguration  = "AcquireConfiguration"
	OperationCheckEligibility      = "CheckEligibility"
	OperationAcquireTemporaryToken = "AcquireTemporaryToken"
)

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("ENTITLEMENT_SERVER_URL must start with http:// or https://")
	}
	if c.FixedEapAkaResponse == "" {
		return fmt.Errorf("FIXED_EAP_AKA_RESPONSE is required (no SIM hardware access)")
	}
	switch c.Operation {
	case OperationStatus, OperationAuthToken, OperationAcquireConfiguration,
		OperationCheckEligibility, OperationAcquireTemporaryToken:
	default:
		return fmt.Errorf("unsupported OPERATION %q", c.Operation)
	}
	return nil
}
