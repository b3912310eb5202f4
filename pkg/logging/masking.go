// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// MaskIMSI はIMSIをマスキングする。
// 先頭6桁（MCC+MNC） + マスク + 末尾1桁
// 例: 440101234567890 → 440101********0
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskIMSI(imsi string, enabled bool) string {
	if !enabled {
		return imsi
	}
	return MaskPartial(imsi, 6, 1, '*')
}

// MaskNAI はEAP identity（root NAI形式 0<IMSI>@realm）の
// IMSI部分をマスキングする。realm部分はそのまま残す。
// 例: 0440101234567890@nai.epc... → 0440101********0@nai.epc...
func MaskNAI(nai string, enabled bool) string {
	if !enabled {
		return nai
	}
	at := strings.IndexByte(nai, '@')
	if at < 0 {
		return MaskPartial(nai, 7, 1, '*')
	}
	// 先頭の'0'プレフィックス + IMSI先頭6桁を残す
	return MaskPartial(nai[:at], 7, 1, '*') + nai[at:]
}

// MaskToken は認証トークンをマスキングする。
// 先頭4文字のみ残す。
func MaskToken(token string, enabled bool) string {
	if !enabled {
		return token
	}
	return MaskPartial(token, 4, 0, '*')
}

// MaskPartial は文字列の中間部分をマスキングする。
// 先頭keepPrefix文字と末尾keepSuffix文字を残し、間をmaskCharで埋める。
// 保持部分だけで文字列が尽きる場合はそのまま返す。
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)
	if length <= keepPrefix+keepSuffix {
		return s
	}

	var b strings.Builder
	b.Grow(length)
	b.WriteString(string(runes[:keepPrefix]))
	for i := keepPrefix; i < length-keepSuffix; i++ {
		b.WriteRune(maskChar)
	}
	b.WriteString(string(runes[length-keepSuffix:]))
	return b.String()
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// IMSI はIMSIをマスキングする。
func (m *Masker) IMSI(imsi string) string {
	return MaskIMSI(imsi, m.enabled)
}

// NAI はEAP identityをマスキングする。
func (m *Masker) NAI(nai string) string {
	return MaskNAI(nai, m.enabled)
}

// Token は認証トークンをマスキングする。
func (m *Masker) Token(token string) string {
	return MaskToken(token, m.enabled)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
