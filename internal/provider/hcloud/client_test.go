package hcloud

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkovac/vnetman/internal/domain"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("test-token", "eu-central")

	if client.client == nil {
		t.Error("expected hcloud client to be initialized")
	}
	if client.zone != hcloud.NetworkZone("eu-central") {
		t.Errorf("expected zone eu-central, got %v", client.zone)
	}
}

func TestNewClientWithHCloudClient(t *testing.T) {
	custom := hcloud.NewClient(hcloud.WithToken("test-token"))

	client := NewClient("ignored", "eu-central", WithHCloudClient(custom))

	if client.client != custom {
		t.Error("expected injected hcloud client to be used")
	}
}

// fakeAPI serves canned hcloud API responses from an httptest server.
func fakeAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	hc := hcloud.NewClient(
		hcloud.WithToken("test-token"),
		hcloud.WithEndpoint(server.URL),
		hcloud.WithBackoffFunc(hcloud.ConstantBackoff(0)),
	)
	return NewClient("ignored", "eu-central", WithHCloudClient(hc))
}

func TestGetNetworkMapsAPIObject(t *testing.T) {
	client := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/networks" || r.URL.Query().Get("name") != "net-a" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"networks": [{
				"id": 4711,
				"name": "net-a",
				"ip_range": "10.0.0.0/16",
				"subnets": [
					{"type": "cloud", "ip_range": "10.0.1.0/24", "network_zone": "eu-central"},
					{"type": "cloud", "ip_range": "10.0.2.0/24", "network_zone": "eu-central"}
				]
			}]
		}`))
	})

	network, err := client.GetNetwork(context.Background(), "net-a")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if network.ID != "4711" {
		t.Errorf("expected provider id 4711, got %q", network.ID)
	}
	if network.Name != "net-a" {
		t.Errorf("expected name net-a, got %q", network.Name)
	}
	if network.AddressSpace.String() != "10.0.0.0/16" {
		t.Errorf("unexpected address space %v", network.AddressSpace)
	}
	if len(network.Subnets) != 2 || network.Subnets[1].AddressPrefix.String() != "10.0.2.0/24" {
		t.Errorf("unexpected subnets: %+v", network.Subnets)
	}
	if network.State != domain.StateSucceeded {
		t.Errorf("expected Succeeded state, got %v", network.State)
	}
}

func TestGetNetworkNotFound(t *testing.T) {
	client := fakeAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"networks": []}`))
	})

	_, err := client.GetNetwork(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNetworkMissingIsNotFound(t *testing.T) {
	client := fakeAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"networks": []}`))
	})

	err := client.DeleteNetwork(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetNetworkTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	hc := hcloud.NewClient(
		hcloud.WithToken("test-token"),
		hcloud.WithEndpoint(server.URL),
		hcloud.WithBackoffFunc(hcloud.ConstantBackoff(0)),
	)
	client := NewClient("ignored", "eu-central", WithHCloudClient(hc))

	_, err := client.GetNetwork(context.Background(), "net-a")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
