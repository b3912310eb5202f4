package eapaka

import (
	goeapaka "github.com/oyaguma3/go-eapaka"
)

// MasterKey はEAP-AKAマスターキーから導出した鍵一式を保持する
// （RFC 4187 Section 7）。
//
//	MK = SHA1(Identity | IK | CK)
//	K_encr(16) | K_aut(16) | MSK(64) | EMSK(64) = PRF(MK)
//
// 本ライブラリで使用するのはAT_MAC計算用のK_autのみ。
type MasterKey struct {
	kEncr []byte
	kAut  []byte
	msk   []byte
	emsk  []byte
}

// DeriveMasterKey はEAP identity（root NAI）とSIMが返したIK/CKから
// 鍵一式を導出する（goeapaka.DeriveKeysAKA のラッパー）。
// IK/CKは16バイトでなければならない。
// 導出できない場合、KAut()はnil（ゼロ埋め鍵ではない）を返す。
func DeriveMasterKey(identity string, ik, ck []byte) *MasterKey {
	mk := &MasterKey{}
	if identity == "" || len(ik) != 16 || len(ck) != 16 {
		return mk
	}

	keys := goeapaka.DeriveKeysAKA(identity, ck, ik)
	if len(keys.K_aut) != kAutLength {
		return mk
	}

	mk.kEncr = keys.K_encr
	mk.kAut = keys.K_aut
	mk.msk = keys.MSK
	mk.emsk = keys.EMSK
	return mk
}

// KAut はAT_MAC計算に使うK_autを返す。導出に失敗していた場合はnil。
func (m *MasterKey) KAut() []byte { return m.kAut }

// KEncr は暗号化鍵K_encrを返す。導出に失敗していた場合はnil。
func (m *MasterKey) KEncr() []byte { return m.kEncr }

// MSK はMaster Session Keyを返す。導出に失敗していた場合はnil。
func (m *MasterKey) MSK() []byte { return m.msk }

// EMSK は拡張Master Session Keyを返す。導出に失敗していた場合はnil。
func (m *MasterKey) EMSK() []byte { return m.emsk }
