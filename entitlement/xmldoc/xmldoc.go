// Package xmldoc はTS.43設定ドキュメント（wap-provisioningdoc形式のXML）を
// characteristic/parmツリーとして解析する。
package xmldoc

import (
	"encoding/xml"
	"strings"
)

const (
	nodeCharacteristic = "characteristic"
	nodeParm           = "parm"
	attrType           = "type"
	attrParmName       = "name"
	attrParmValue      = "value"

	// keySeparator はネストしたcharacteristic型名の連結区切り
	keySeparator = "|"
)

// Doc は解析済みのTS.43設定ドキュメント。
// characteristic型名の連結（例: "APPLICATION|PrimaryConfiguration"）を
// キーとして、parm名→値のマップを保持する。
type Doc struct {
	characteristics map[string]map[string]string
}

// Parse はTS.43 XML応答を解析する。
// 解析に失敗したノードはドキュメントに含まれないだけで、エラーにはならない。
func Parse(body string) *Doc {
	doc := &Doc{characteristics: make(map[string]map[string]string)}
	if body == "" {
		return doc
	}

	// 一部のサーバーは応答XML中の"&"をエスケープしないため、
	// 二重エスケープを避けつつ補正してから解析する。
	body = strings.ReplaceAll(body, "&", "&amp;")
	body = strings.ReplaceAll(body, "&amp;amp;", "&amp;")

	decoder := xml.NewDecoder(strings.NewReader(body))

	// 現在位置までのcharacteristic型名のスタック
	var path []string
	root := true

	for {
		token, err := decoder.Token()
		if err != nil {
			// io.EOFを含む。途中までの解析結果は保持される
			return doc
		}

		switch t := token.(type) {
		case xml.StartElement:
			if root {
				// ルート要素自身は型を持たない。子要素を走査する
				root = false
				continue
			}
			switch t.Name.Local {
			case nodeCharacteristic:
				if typ, ok := attributeValue(t, attrType); ok {
					path = append(path, typ)
					continue
				}
				// type属性のないcharacteristicは子要素ごと無視する
				decoder.Skip()
			case nodeParm:
				doc.storeParm(path, t)
				decoder.Skip()
			default:
				decoder.Skip()
			}
		case xml.EndElement:
			// Skipされなかった終了タグはルートか型付きcharacteristicのみ
			if t.Name.Local == nodeCharacteristic && len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}
}

// storeParm はparm要素のname/value属性をドキュメントに登録する。
// どちらかの属性が欠けているparmは無視される。
func (d *Doc) storeParm(path []string, element xml.StartElement) {
	name, ok := attributeValue(element, attrParmName)
	if !ok {
		return
	}
	value, ok := attributeValue(element, attrParmValue)
	if !ok {
		return
	}

	key := strings.Join(path, keySeparator)
	parms := d.characteristics[key]
	if parms == nil {
		parms = make(map[string]string)
		d.characteristics[key] = parms
	}
	parms[name] = value
}

func attributeValue(element xml.StartElement, name string) (string, bool) {
	for _, attr := range element.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Contains は指定したcharacteristic型の階層が存在するかを返す。
func (d *Doc) Contains(characteristicTypes ...string) bool {
	_, ok := d.characteristics[strings.Join(characteristicTypes, keySeparator)]
	return ok
}

// Get は指定したcharacteristic階層のparm値を返す。
// 見つからない場合はok=falseを返す。
func (d *Doc) Get(parmName string, characteristicTypes ...string) (string, bool) {
	parms, ok := d.characteristics[strings.Join(characteristicTypes, keySeparator)]
	if !ok {
		return "", false
	}
	value, ok := parms[parmName]
	return value, ok
}
