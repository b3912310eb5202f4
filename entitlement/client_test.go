package entitlement

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msft-mirror-aosp/platform.frameworks.libs.service-entitlement/entitlement/odsa"
)

const configDocBody = `<?xml version="1.0" encoding="UTF-8"?>
<wap-provisioningdoc version="1.1">
  <characteristic type="TOKEN">
    <parm name="token" value="kZYfCEpSsMr88KZVmab5UsZVzl"/>
    <parm name="validity" value="86400"/>
  </characteristic>
  <characteristic type="APPLICATION">
    <parm name="AppID" value="ap2004"/>
    <parm name="EntitlementStatus" value="1"/>
  </characteristic>
</wap-provisioningdoc>`

func newTestClient(t *testing.T, serverURL string) *ServiceEntitlement {
	t.Helper()
	client, err := NewServiceEntitlement(CarrierConfig{
		EntitlementServerURL: serverURL,
		FixedEapAkaResponse:  base64.StdEncoding.EncodeToString([]byte{0x02, 0x01, 0x00, 0x04}),
	}, testSim, nil)
	if err != nil {
		t.Fatalf("NewServiceEntitlement() error = %v", err)
	}
	return client
}

func TestQueryEntitlementStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		if got := values.Get("app"); got != AppVoWiFi {
			t.Errorf("app = %q, want %q", got, AppVoWiFi)
		}
		if !values.Has("EAP_ID") {
			t.Error("EAP_IDが送信されていない")
		}
		w.Header().Set("Content-Type", "text/vnd.wap.connectivity-xml")
		w.Write([]byte(configDocBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	body, err := client.QueryEntitlementStatus(context.Background(), AppVoWiFi, ServiceEntitlementRequest{})
	if err != nil {
		t.Fatalf("QueryEntitlementStatus() error = %v", err)
	}
	if body != configDocBody {
		t.Errorf("body = %q", body)
	}
}

func TestGetAuthToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// GetAuthTokenはfast AuthNトークンが渡されていても必ずEAP-AKAを使う
		if r.URL.Query().Has("token") {
			t.Error("GetAuthTokenでtokenパラメータが送信されている")
		}
		w.Header().Set("Content-Type", "text/vnd.wap.connectivity-xml")
		w.Write([]byte(configDocBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	token, err := client.GetAuthToken(context.Background(), AppVoWiFi, ServiceEntitlementRequest{
		AuthenticationToken: "stale-token",
	})
	if err != nil {
		t.Fatalf("GetAuthToken() error = %v", err)
	}
	if token.Token != "kZYfCEpSsMr88KZVmab5UsZVzl" {
		t.Errorf("Token = %q", token.Token)
	}
	if token.Validity != 86400 {
		t.Errorf("Validity = %d, want 86400", token.Validity)
	}
}

func TestAcquireConfigurationEndToEnd(t *testing.T) {
	responseBody := `<?xml version="1.0"?>
<wap-provisioningdoc>
  <characteristic type="APPLICATION">
    <parm name="OperationResult" value="1"/>
    <characteristic type="PrimaryConfiguration">
      <parm name="ICCID" value="8991101200003204510"/>
      <parm name="ServiceStatus" value="1"/>
    </characteristic>
  </characteristic>
</wap-provisioningdoc>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		if got := values.Get("operation"); got != odsa.OperationAcquireConfiguration {
			t.Errorf("operation = %q, want %q", got, odsa.OperationAcquireConfiguration)
		}
		if got := values.Get("terminal_iccid"); got != "8991101200003204510" {
			t.Errorf("terminal_iccid = %q", got)
		}
		w.Header().Set("Content-Type", "text/vnd.wap.connectivity-xml")
		w.Write([]byte(responseBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.AcquireConfiguration(context.Background(), AppODSAPrimary, ServiceEntitlementRequest{},
		odsa.AcquireConfigurationRequest{TerminalICCID: "8991101200003204510"})
	if err != nil {
		t.Fatalf("AcquireConfiguration() error = %v", err)
	}
	if !resp.Success() {
		t.Error("Success() = false, want true")
	}
	if resp.ServiceStatus != odsa.ServiceStatusActivated {
		t.Errorf("ServiceStatus = %d, want %d", resp.ServiceStatus, odsa.ServiceStatusActivated)
	}
}

func TestNewServiceEntitlementValidation(t *testing.T) {
	tests := []struct {
		name   string
		config CarrierConfig
		sim    SimProfile
	}{
		{"サーバーURLなし", CarrierConfig{FixedEapAkaResponse: "x"}, testSim},
		{"IMSIなし", CarrierConfig{EntitlementServerURL: "https://e.example.com", FixedEapAkaResponse: "x"}, SimProfile{MCCMNC: "23456"}},
		{"SIM実装もバイパスもなし", CarrierConfig{EntitlementServerURL: "https://e.example.com"}, testSim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewServiceEntitlement(tt.config, tt.sim, nil); err == nil {
				t.Error("NewServiceEntitlement() error = nil, want error")
			}
		})
	}
}
