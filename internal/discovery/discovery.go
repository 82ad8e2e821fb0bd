// Package discovery advertises the trackpad service on the local network.
package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
)

// ServiceType is the mDNS service type clients browse for. Fixed by
// convention with the handheld client.
const ServiceType = "_airpad._tcp"

// Domain is the mDNS domain the service registers under.
const Domain = "local."

// Advertiser keeps a service registration alive until Shutdown.
type Advertiser struct {
	server *zeroconf.Server
}

// Register announces the service once at startup. The returned Advertiser
// must be shut down when the server stops accepting peers.
func Register(instance string, port int) (*Advertiser, error) {
	srv, err := zeroconf.Register(instance, ServiceType, Domain, port, []string{"v=1"}, nil)
	if err != nil {
		return nil, fmt.Errorf("mdns register: %w", err)
	}
	return &Advertiser{server: srv}, nil
}

// Shutdown withdraws the advertisement.
func (a *Advertiser) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
	}
}
