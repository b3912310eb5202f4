package eapaka

import "encoding/base64"

// SecurityContext はSIMのGSM/3G認証応答から取り出した
// RES/CK/IKを保持する（ETSI TS 131 102 Section 7.1.2.1）。
// validでないコンテキストのRES/CK/IKを使用してはならない。
type SecurityContext struct {
	valid bool
	res   []byte
	ck    []byte
	ik    []byte
}

// ParseSecurityContext はSIM認証応答（base64）を解析する。
// 形式: 0xDB | L|RES | L|CK | L|IK [| L|KC]
// KCは本ライブラリでは使用しないため解析せず、KC部分の不正は
// コンテキストの有効性に影響しない。
// 解析失敗はエラーではなく invalid なコンテキストとして返す。
func ParseSecurityContext(response string) SecurityContext {
	var sc SecurityContext
	if response == "" {
		return sc
	}

	data, err := base64.StdEncoding.DecodeString(response)
	if err != nil {
		return sc
	}
	if len(data) <= 2 {
		return sc
	}

	if data[0] != tagSuccess {
		return sc
	}

	index := 1
	res, ok := parseLengthPrefixed(index, data)
	if !ok {
		return sc
	}
	index += len(res) + 1
	ck, ok := parseLengthPrefixed(index, data)
	if !ok {
		return sc
	}
	index += len(ck) + 1
	ik, ok := parseLengthPrefixed(index, data)
	if !ok {
		return sc
	}

	sc.valid = true
	sc.res = res
	sc.ck = ck
	sc.ik = ik
	return sc
}

// parseLengthPrefixed はindex位置の長さバイトに続く値を取り出す。
// 宣言された長さがバッファ末尾を超える場合は失敗を返す。
func parseLengthPrefixed(index int, src []byte) ([]byte, bool) {
	if index >= len(src) {
		return nil, false
	}
	length := int(src[index])
	if index+length >= len(src) {
		return nil, false
	}
	value := make([]byte, length)
	copy(value, src[index+1:index+1+length])
	return value, true
}

// Valid は解析が成功したかどうかを返す。
func (c SecurityContext) Valid() bool { return c.valid }

// RES は認証結果を返す。
func (c SecurityContext) RES() []byte { return c.res }

// CK は暗号鍵を返す。
func (c SecurityContext) CK() []byte { return c.ck }

// IK は完全性鍵を返す。
func (c SecurityContext) IK() []byte { return c.ik }

// ParseSynchronizationFailure はSIM認証応答が同期失敗（タグ0xDC）の場合に
// AUTS（14バイト）を取り出す。同期失敗応答でない、またはAUTSの形式が
// 不正な場合は ok=false を返す。
func ParseSynchronizationFailure(response string) (auts []byte, ok bool) {
	if response == "" {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(response)
	if err != nil {
		return nil, false
	}
	if len(data) < 2 || data[0] != tagSyncFailure {
		return nil, false
	}
	length := int(data[1])
	if length != autsLength || 2+length > len(data) {
		return nil, false
	}
	auts = make([]byte, length)
	copy(auts, data[2:2+length])
	return auts, true
}
