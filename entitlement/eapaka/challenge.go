package eapaka

import (
	"encoding/base64"
	"fmt"
)

// Challenge はサーバーが発行したEAP-Request/AKA-Challengeの解析結果。
// identifierは応答パケットにそのまま引き継ぐ必要がある。
type Challenge struct {
	identifier uint8
	rand       []byte
	autn       []byte
}

// ParseChallenge はbase64エンコードされたEAP-AKA Challengeパケットを解析する
// （RFC 3748 Section 4 / RFC 4187 Section 8.1）。
// ヘッダ検証（code/length/type/subtype）と属性検証（AT_RAND/AT_AUTN必須、
// いずれも20バイト固定）のいずれかに失敗した場合はErrInvalidChallengeを返す。
func ParseChallenge(encoded string) (*Challenge, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty packet", ErrInvalidChallenge)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: base64 decode: %v", ErrInvalidChallenge, err)
	}

	ch := &Challenge{}
	if err := ch.parseHeader(data); err != nil {
		return nil, err
	}
	if err := ch.parseAttributes(data); err != nil {
		return nil, err
	}
	return ch, nil
}

// parseHeader は8バイトのEAP-AKAヘッダを検証する。
// lengthフィールドは実際のパケット長と一致しなければならない。
func (c *Challenge) parseHeader(data []byte) error {
	if len(data) <= headerLength {
		return fmt.Errorf("%w: packet too short (%d bytes)", ErrInvalidChallenge, len(data))
	}

	code := data[0]
	c.identifier = data[1]
	length := uint16From(data[2:4])
	eapType := data[4]
	subtype := data[5]

	if code != CodeRequest || length != len(data) || eapType != TypeAKA || subtype != SubtypeChallenge {
		return fmt.Errorf("%w: header code=%d length=%d actual=%d type=%d subtype=%d",
			ErrInvalidChallenge, code, length, len(data), eapType, subtype)
	}
	return nil
}

// parseAttributes は属性列を走査してAT_RAND/AT_AUTNを取り出す
// （RFC 4187 Section 10.6, 10.7）。認識しない属性は読み飛ばす。
func (c *Challenge) parseAttributes(data []byte) error {
	index := headerLength
	for index < len(data) {
		remains := len(data) - index
		if remains <= 2 {
			return fmt.Errorf("%w: truncated attribute at offset %d", ErrInvalidChallenge, index)
		}

		attrType := data[index]
		// 属性長は4バイト単位で、属性タイプ・長さバイト自身を含む
		attrLen := int(data[index+1]) * 4
		if attrLen == 0 || attrLen > remains {
			return fmt.Errorf("%w: attribute %d declares %d bytes but %d remain",
				ErrInvalidChallenge, attrType, attrLen, remains)
		}

		switch attrType {
		case AttrRAND:
			if attrLen != randAttrLength {
				return fmt.Errorf("%w: AT_RAND length %d", ErrInvalidChallenge, attrLen)
			}
			c.rand = make([]byte, randLength)
			copy(c.rand, data[index+4:index+4+randLength])
		case AttrAUTN:
			if attrLen != autnAttrLength {
				return fmt.Errorf("%w: AT_AUTN length %d", ErrInvalidChallenge, attrLen)
			}
			c.autn = make([]byte, autnLength)
			copy(c.autn, data[index+4:index+4+autnLength])
		}

		index += attrLen
	}

	if c.rand == nil || c.autn == nil {
		return fmt.Errorf("%w: AT_RAND and AT_AUTN are required", ErrInvalidChallenge)
	}
	return nil
}

// Identifier はリクエストのEAP identifierを返す。
func (c *Challenge) Identifier() uint8 { return c.identifier }

// RAND はAT_RANDの値（16バイト）を返す。
func (c *Challenge) RAND() []byte { return c.rand }

// AUTN はAT_AUTNの値（16バイト）を返す。
func (c *Challenge) AUTN() []byte { return c.autn }

// SimChallengeData はSIM認証要求用のGSM/3Gチャレンジペイロードを
// base64（改行なし）で返す。
// 形式: RAND長(0x10) | RAND(16) | AUTN長(0x10) | AUTN(16) の34バイト。
func (c *Challenge) SimChallengeData() string {
	payload := make([]byte, 2+randLength+autnLength)
	payload[0] = byte(randLength)
	copy(payload[1:], c.rand)
	payload[1+randLength] = byte(autnLength)
	copy(payload[2+randLength:], c.autn)
	return base64.StdEncoding.EncodeToString(payload)
}
