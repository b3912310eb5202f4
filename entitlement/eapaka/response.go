package eapaka

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"
)

// Outcome は1ラウンドの応答生成結果を表すタグ付きユニオン。
// 通常のチャレンジ応答か同期失敗応答のどちらか一方のみを保持する。
type Outcome struct {
	response    string
	syncFailure string
}

// newResponseOutcome / newSyncFailureOutcome 以外の経路でOutcomeを
// 生成してはならない。
func newResponseOutcome(packet string) (Outcome, error) {
	if packet == "" {
		return Outcome{}, ErrOutcomeConflict
	}
	return Outcome{response: packet}, nil
}

func newSyncFailureOutcome(packet string) (Outcome, error) {
	if packet == "" {
		return Outcome{}, ErrOutcomeConflict
	}
	return Outcome{syncFailure: packet}, nil
}

// IsSynchronizationFailure は同期失敗応答かどうかを返す。
func (o Outcome) IsSynchronizationFailure() bool {
	return o.syncFailure != ""
}

// Packet は送信すべきEAPパケット（base64）を返す。
func (o Outcome) Packet() string {
	if o.syncFailure != "" {
		return o.syncFailure
	}
	return o.response
}

// BuildChallengeResponse はEAP-Response/AKA-Challengeパケットを構築し
// base64（改行なし、前後空白なし）で返す
// （RFC 4187 Section 8.1, 9.4 / RFC 3748 Section 4.1）。
// resまたはkAutが欠けている場合は構築失敗を返す。
func BuildChallengeResponse(identifier uint8, res, kAut []byte) (string, error) {
	if len(res) == 0 || len(kAut) == 0 {
		return "", fmt.Errorf("%w: res and K_aut are required", ErrResponseBuild)
	}

	message, err := buildChallengeResponseSkeleton(identifier, res)
	if err != nil {
		return "", err
	}

	// AT_MACの値フィールドをゼロのままMACを計算し、その場で上書きする
	// （RFC 4187 Section 10.15）。
	mac, err := calculateMAC(kAut, message)
	if err != nil {
		return "", err
	}
	macIndex := headerLength + 4 + len(res) + 4
	copy(message[macIndex:], mac)

	return strings.TrimSpace(base64.StdEncoding.EncodeToString(message)), nil
}

// buildChallengeResponseSkeleton はAT_MACの値をゼロ埋めしたままの
// チャレンジ応答パケットを構築する。
func buildChallengeResponseSkeleton(identifier uint8, res []byte) ([]byte, error) {
	// 8（ヘッダ） + 4+len(res)（AT_RES） + 20（AT_MAC）
	message := make([]byte, 32+len(res))

	message[0] = CodeResponse
	message[1] = identifier
	// lengthはパケット全長。4バイト表現の下位2バイトのみを使う。
	lengthBytes := intTo4Bytes(len(message))
	message[2] = lengthBytes[2]
	message[3] = lengthBytes[3]
	message[4] = TypeAKA
	message[5] = SubtypeChallenge
	// 予約2バイト
	message[6] = 0x00
	message[7] = 0x00

	index := headerLength

	// AT_RES（RFC 4187 Section 10.8）
	message[index] = AttrRES
	index++
	// 属性長は4バイト単位。4を足してから割ることでRES格納分を確保する。
	message[index] = byte((len(res) + 4) / 4)
	index++
	// 値フィールドはRESの正味ビット長（2バイト）で始まる。
	bitLength := intTo4Bytes(len(res) * 8)
	message[index] = bitLength[2]
	index++
	message[index] = bitLength[3]
	index++
	copy(message[index:], res)
	index += len(res)

	// AT_MAC（RFC 4187 Section 10.15）: 固定長5ワード=20バイト
	message[index] = AttrMAC
	index++
	message[index] = 0x05
	index++
	// 予約2バイト + MACプレースホルダ16バイト（ゼロのまま）
	return message, nil
}

// BuildSynchronizationFailure はEAP-Response/AKA-Synchronization-Failure
// パケットを構築しbase64で返す（RFC 4187 Section 9.6）。
// AT_AUTS属性のみを含み、AT_MACは付かない。
// AT_AUTSは予約バイトを持たず、属性ヘッダ2バイト + AUTS14バイトの
// 計16バイト（4ワード）となる（RFC 4187 Section 10.9）。
func BuildSynchronizationFailure(identifier uint8, auts []byte) (string, error) {
	if len(auts) != autsLength {
		return "", fmt.Errorf("%w: AUTS must be %d bytes, got %d", ErrResponseBuild, autsLength, len(auts))
	}

	message := make([]byte, headerLength+autsAttrLength)

	message[0] = CodeResponse
	message[1] = identifier
	lengthBytes := intTo4Bytes(len(message))
	message[2] = lengthBytes[2]
	message[3] = lengthBytes[3]
	message[4] = TypeAKA
	message[5] = SubtypeSynchronizationFailure
	message[6] = 0x00
	message[7] = 0x00

	message[headerLength] = AttrAUTS
	message[headerLength+1] = byte(autsAttrLength / 4)
	copy(message[headerLength+2:], auts)

	return strings.TrimSpace(base64.StdEncoding.EncodeToString(message)), nil
}

// calculateMAC はHMAC-SHA1を計算し先頭16バイトを返す
// （HMAC-SHA1-128、RFC 4187 Section 10.15）。鍵はK_aut。
func calculateMAC(key, message []byte) ([]byte, error) {
	mac := hmac.New(sha1.New, key)
	if _, err := mac.Write(message); err != nil {
		return nil, fmt.Errorf("%w: hmac: %v", ErrResponseBuild, err)
	}
	sum := mac.Sum(nil)
	if len(sum) != sha1OutputLength {
		return nil, fmt.Errorf("%w: unexpected hmac output length %d", ErrResponseBuild, len(sum))
	}
	return sum[:macLength], nil
}
