// Package eapaka はGSMA TS.43のEAP-AKA認証（RFC 4187）を実装する。
//
// サーバーが発行するChallengeパケットの解読、SIMセキュリティコンテキスト
// の解析、マスターキー導出、応答パケット構築、およびHTTPチャレンジ/応答
// ラウンドを回す認証ステートマシンを含む。
package eapaka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/httpclient"
	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/pkg/logging"
)

// Options はAuthenticatorの生成パラメータ
type Options struct {
	Transport Transport
	Sim       SimAuthenticator

	// Identity は認証に使うEAP identity（root NAI）。
	Identity string

	// MaxChallengeRounds はチャレンジ応答POSTの上限回数。
	// ゼロならDefaultMaxChallengeRounds。
	MaxChallengeRounds int

	// FixedChallengeResponse が設定されている場合、SIMを呼び出さず
	// この事前計算済み応答パケットを常に送信する（テスト用バイパス）。
	FixedChallengeResponse string

	// Masker はログ出力時のPIIマスキング設定。nilならマスキング無効。
	Masker *logging.Masker
}

// Authenticator はEAP-AKA認証のプロトコルステートマシン。
// 1回のAuthenticate呼び出しがCookieジャーとリトライカウンタを専有し、
// 呼び出し間で共有される可変状態はない。
type Authenticator struct {
	http      Transport
	sim       SimAuthenticator
	identity  string
	maxRounds int
	fixed     string
	fields    *logging.CommonFields
}

// NewAuthenticator は新しいAuthenticatorを生成する。
func NewAuthenticator(opts Options) (*Authenticator, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("eapaka: transport is required")
	}
	if opts.Sim == nil && opts.FixedChallengeResponse == "" {
		return nil, fmt.Errorf("eapaka: sim authenticator is required")
	}
	if opts.Identity == "" && opts.FixedChallengeResponse == "" {
		return nil, fmt.Errorf("eapaka: identity is required")
	}

	maxRounds := opts.MaxChallengeRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxChallengeRounds
	}

	return &Authenticator{
		http:      opts.Transport,
		sim:       opts.Sim,
		identity:  opts.Identity,
		maxRounds: maxRounds,
		fixed:     opts.FixedChallengeResponse,
		fields:    logging.NewCommonFields(opts.Masker),
	}, nil
}

// round は認証ループが持ち回る一時状態。呼び出しごとに生成・破棄される。
type round struct {
	cookies  []string
	attempts int
	accept   string
}

// Authenticate は認証付きエンタイトルメント取得を実行する。
//
// initialURLへのGETがXMLを返せばそのまま成功（fast AuthN）。
// EAP-relay JSONを返した場合はチャレンジを解読してSIMで応答を計算し、
// serverURLへPOSTするラウンドを上限回数まで繰り返す。
// Cookieは応答から次のリクエストへ引き継ぐ（同名は新しい値で置き換え）。
//
// 上限到達時は直近に計算した応答の種別に応じて
// ErrEapAkaFailureまたはErrEapAkaSynchronizationFailureを返す。
func (a *Authenticator) Authenticate(ctx context.Context, initialURL, serverURL string) (string, error) {
	traceID := uuid.NewString()
	start := time.Now()

	slog.Info("eap-aka authentication start",
		a.fields.AuthLogFields(traceID, "EAP_AKA_START", a.identity)...)

	resp, err := a.http.Request(ctx, httpclient.Request{
		Method: httpclient.MethodGet,
		URL:    initialURL,
		Accept: httpclient.AcceptEapRelayAndXML,
	})
	if err != nil {
		return "", err
	}

	st := round{
		cookies: resp.Cookies,
		accept:  httpclient.AcceptEapRelayAndXML,
	}

	for {
		switch resp.ContentType {
		case httpclient.ContentTypeXML:
			slog.Info("eap-aka authentication success",
				logging.WithTraceID(traceID),
				logging.WithEventID("EAP_AKA_SUCCESS"),
				logging.WithAttempt(st.attempts),
				logging.WithLatency(time.Since(start).Milliseconds()),
			)
			return resp.Body, nil
		case httpclient.ContentTypeJSON:
			// チャレンジ継続
		default:
			return "", fmt.Errorf("%w: unexpected content type %q",
				ErrMalformedResponse, resp.RawContentType)
		}

		packet, err := extractEapRelayPacket(resp.Body)
		if err != nil {
			return "", err
		}

		outcome, err := a.respond(ctx, packet)
		if err != nil {
			return "", err
		}

		// 上限到達後もチャレンジが続く場合は、直近の応答種別で
		// 失敗種別を区別して終了する。
		if st.attempts >= a.maxRounds {
			slog.Warn("eap-aka retries exhausted",
				logging.WithTraceID(traceID),
				logging.WithEventID("EAP_AKA_EXHAUSTED"),
				logging.WithAttempt(st.attempts),
			)
			if outcome.IsSynchronizationFailure() {
				return "", ErrEapAkaSynchronizationFailure
			}
			return "", ErrEapAkaFailure
		}
		st.attempts++

		body, err := json.Marshal(map[string]string{EapRelayPacketKey: outcome.Packet()})
		if err != nil {
			return "", fmt.Errorf("%w: marshal envelope: %v", ErrMalformedResponse, err)
		}

		resp, err = a.http.Request(ctx, httpclient.Request{
			Method:      httpclient.MethodPost,
			URL:         serverURL,
			Accept:      st.accept,
			ContentType: httpclient.ContentTypeEapRelayJSON,
			Body:        string(body),
			Cookies:     st.cookies,
		})
		if err != nil {
			return "", err
		}
		st.cookies = httpclient.MergeCookies(st.cookies, resp.Cookies)
	}
}

// respond は1つのチャレンジに対する応答パケットを生成する。
// SIMの応答が同期失敗（タグ0xDC）ならAT_AUTS応答、成功（タグ0xDB）なら
// 鍵導出とMAC計算を経た通常のチャレンジ応答となる。
func (a *Authenticator) respond(ctx context.Context, challengePacket string) (Outcome, error) {
	if a.fixed != "" {
		return newResponseOutcome(a.fixed)
	}

	challenge, err := ParseChallenge(challengePacket)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	simResponse, err := a.sim.IccAuthenticate(ctx, challenge.SimChallengeData())
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrIccAuthenticationUnavailable, err)
	}

	if auts, ok := ParseSynchronizationFailure(simResponse); ok {
		packet, err := BuildSynchronizationFailure(challenge.Identifier(), auts)
		if err != nil {
			return Outcome{}, err
		}
		return newSyncFailureOutcome(packet)
	}

	securityContext := ParseSecurityContext(simResponse)
	if !securityContext.Valid() {
		return Outcome{}, fmt.Errorf("%w: invalid sim response", ErrIccAuthenticationUnavailable)
	}

	// RFC 4187 Section 7 鍵導出。K_autがなければ認証は継続できない。
	masterKey := DeriveMasterKey(a.identity, securityContext.IK(), securityContext.CK())
	if masterKey.KAut() == nil {
		return Outcome{}, ErrKAutGeneration
	}

	packet, err := BuildChallengeResponse(challenge.Identifier(), securityContext.RES(), masterKey.KAut())
	if err != nil {
		return Outcome{}, err
	}
	return newResponseOutcome(packet)
}

// extractEapRelayPacket はJSONエンベロープからEAPパケット（base64）を取り出す。
func extractEapRelayPacket(body string) (string, error) {
	var envelope map[string]string
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return "", fmt.Errorf("%w: envelope decode: %v", ErrMalformedResponse, err)
	}
	packet, ok := envelope[EapRelayPacketKey]
	if !ok || packet == "" {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedResponse, EapRelayPacketKey)
	}
	return packet, nil
}
