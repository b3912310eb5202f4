package eapaka

import (
	"errors"
	"fmt"
)

// Identity関連エラー
var (
	// ErrInvalidPLMN はMCC+MNC文字列の形式が不正な場合のエラー
	ErrInvalidPLMN = errors.New("invalid mccmnc")

	// ErrEmptyIMSI はIMSIが空の場合のエラー
	ErrEmptyIMSI = errors.New("imsi is required")
)

// RootNAI はEAP-AKA永続IDのroot NAIを組み立てる
// （3GPP TS 23.003 Section 19.3.2）。
//
//	0<IMSI>@nai.epc.mnc<MNC>.mcc<MCC>.3gppnetwork.org
//
// mccmncは5桁または6桁のMCC+MNC連結文字列。2桁MNCは0埋めして3桁にする。
func RootNAI(mccmnc, imsi string) (string, error) {
	if imsi == "" {
		return "", ErrEmptyIMSI
	}
	if len(mccmnc) < 5 || len(mccmnc) > 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPLMN, mccmnc)
	}
	for _, r := range mccmnc {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidPLMN, mccmnc)
		}
	}

	mcc := mccmnc[:3]
	mnc := mccmnc[3:]
	if len(mnc) == 2 {
		mnc = "0" + mnc
	}
	return fmt.Sprintf("0%s@nai.epc.mnc%s.mcc%s.3gppnetwork.org", imsi, mnc, mcc), nil
}
