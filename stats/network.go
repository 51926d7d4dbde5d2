package stats

import (
	"context"
	"net/netip"
	"slices"

	"github.com/shirou/gopsutil/v3/net"
)

const (
	NoAddress   = `   .   .   .   `
	NoInterface = 'X'
)

// IPAddress returns the first letter of the interface name and the first
// IPv4 address that is not on a loopback interface.
func (System) IPAddress(ctx context.Context) (byte, string) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return NoInterface, NoAddress
	}
	return pickAddress(ifaces)
}

func pickAddress(ifaces []net.InterfaceStat) (byte, string) {
	for _, iface := range ifaces {
		if len(iface.Name) == 0 || iface.Name == `lo` || slices.Contains(iface.Flags, `loopback`) {
			continue
		}
		for _, a := range iface.Addrs {
			prefix, err := netip.ParsePrefix(a.Addr)
			if err != nil {
				continue
			}
			if addr := prefix.Addr(); addr.Is4() && !addr.IsLoopback() {
				return iface.Name[0], addr.String()
			}
		}
	}
	return NoInterface, NoAddress
}
