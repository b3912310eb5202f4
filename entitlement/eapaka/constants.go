package eapaka

// EAPコード（RFC 3748）
const (
	CodeRequest  uint8 = 1
	CodeResponse uint8 = 2
	CodeSuccess  uint8 = 3
	CodeFailure  uint8 = 4
)

// EAP Type（RFC 3748 / RFC 4187）
const (
	TypeIdentity uint8 = 1
	TypeAKA      uint8 = 23
)

// EAP-AKAサブタイプ（RFC 4187 Section 11）
const (
	SubtypeChallenge              uint8 = 1
	SubtypeAuthenticationReject   uint8 = 2
	SubtypeSynchronizationFailure uint8 = 4
	SubtypeIdentity               uint8 = 5
)

// EAP-AKA属性タイプ（RFC 4187 Section 11）
const (
	AttrRAND uint8 = 1
	AttrAUTN uint8 = 2
	AttrRES  uint8 = 3
	AttrAUTS uint8 = 4
	AttrMAC  uint8 = 11
)

// パケット長関連の定数
const (
	// headerLength はEAP-AKAヘッダ長（Code + Identifier + Length(2) + Type + Subtype + 予約2バイト）
	headerLength = 8

	// randAttrLength / autnAttrLength はAT_RAND/AT_AUTN属性の全長（ヘッダ2 + 予約2 + 値16）
	randAttrLength = 20
	autnAttrLength = 20

	// macAttrLength はAT_MAC属性の全長（ヘッダ2 + 予約2 + MAC16）
	macAttrLength = 20

	// autsAttrLength はAT_AUTS属性の全長（ヘッダ2 + AUTS14、予約バイトなし）
	autsAttrLength = 16

	randLength = 16
	autnLength = 16
	autsLength = 14

	// sha1OutputLength はHMAC-SHA1出力長。AT_MACはこれを16バイトに切り詰める。
	sha1OutputLength = 20
	macLength        = 16
)

// GSM/3Gセキュリティコンテキスト応答のタグ（ETSI TS 131 102 Section 7.1.2.1）
const (
	// tagSuccess は認証成功応答（RES/CK/IK[/KC]が続く）
	tagSuccess byte = 0xDB
	// tagSyncFailure は同期失敗応答（AUTSが続く）
	tagSyncFailure byte = 0xDC
)

// 鍵導出結果の各鍵長（RFC 4187 Section 7）
const (
	kEncrLength = 16
	kAutLength  = 16
	mskLength   = 64
	emskLength  = 64
)

// DefaultMaxChallengeRounds はEAP-AKAチャレンジ応答POSTの上限回数。
// 上限到達後もチャレンジ/同期失敗が続く場合は認証失敗となる。
const DefaultMaxChallengeRounds = 3

// EapRelayPacketKey はEAPパケットを包むJSONエンベロープのキー名（GSMA TS.43）。
const EapRelayPacketKey = "eap-relay-packet"
