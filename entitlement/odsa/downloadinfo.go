package odsa

import (
	"strings"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/xmldoc"
)

// DownloadInfo はeSIMプロファイルのダウンロード情報
// （GSMA TS.43 Section 6.5.3 DownloadInfo characteristic）。
// ProfileActivationCodeまたはProfileSmdpAddressesのどちらか一方で
// プロファイルを特定する。
type DownloadInfo struct {
	// ProfileICCID はダウンロード対象プロファイルのICCID
	ProfileICCID string

	// ProfileActivationCode はSGP.22形式のアクティベーションコード
	ProfileActivationCode string

	// ProfileSmdpAddresses はSM-DP+サーバーアドレスのリスト
	ProfileSmdpAddresses []string
}

// parseDownloadInfo はDownloadInfo characteristicを解析する。
// 存在しない場合はnilを返す。
func parseDownloadInfo(doc *xmldoc.Doc) *DownloadInfo {
	path := []string{xmldoc.CharacteristicApplication, xmldoc.CharacteristicDownloadInfo}
	if !doc.Contains(path...) {
		return nil
	}

	info := &DownloadInfo{}
	if iccid, ok := doc.Get(xmldoc.ParmProfileICCID, path...); ok {
		info.ProfileICCID = iccid
	}
	if code, ok := doc.Get(xmldoc.ParmProfileActivationCode, path...); ok {
		info.ProfileActivationCode = code
	}
	if addresses, ok := doc.Get(xmldoc.ParmProfileSmdpAddress, path...); ok {
		for _, address := range strings.Split(addresses, ",") {
			if address = strings.TrimSpace(address); address != "" {
				info.ProfileSmdpAddresses = append(info.ProfileSmdpAddresses, address)
			}
		}
	}
	return info
}
