package eapaka

import "encoding/binary"

// intTo4Bytes は整数をビッグエンディアン4バイトに変換する。
// パケット長やRESビット長のように下位16ビットのみ使う箇所でも、
// 元表現は常に4バイトで保持する。
func intTo4Bytes(v int) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b
}

// uint16From はビッグエンディアン2バイトを整数として読み出す。
func uint16From(b []byte) int {
	return int(binary.BigEndian.Uint16(b))
}
