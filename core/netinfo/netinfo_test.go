package netinfo_test

import (
	"errors"
	"net"
	"testing"

	"easy-ftp/core/apperr"
	"easy-ftp/core/netinfo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	ifaces []netinfo.Interface
	err    error
}

func (f fakeSource) Interfaces() ([]netinfo.Interface, error) {
	return f.ifaces, f.err
}

func ipNet(s string) net.Addr {
	ip, n, err := net.ParseCIDR(s)
	if err != nil {
		panic(err)
	}
	n.IP = ip
	return n
}

var (
	loopback = netinfo.Interface{Name: "lo", Flags: net.FlagUp | net.FlagLoopback, Addrs: []net.Addr{ipNet("127.0.0.1/8"), ipNet("::1/128")}}
	linkOnly = netinfo.Interface{Name: "eth1", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("169.254.10.2/16"), ipNet("fe80::1/64")}}
	down     = netinfo.Interface{Name: "wlan0", Flags: 0, Addrs: []net.Addr{ipNet("10.1.1.5/24")}}
	lan      = netinfo.Interface{Name: "eth0", Flags: net.FlagUp | net.FlagBroadcast, Addrs: []net.Addr{ipNet("fe80::2/64"), ipNet("192.168.1.20/24")}}
	vpn      = netinfo.Interface{Name: "tun0", Flags: net.FlagUp | net.FlagPointToPoint, Addrs: []net.Addr{&net.IPAddr{IP: net.ParseIP("10.8.0.2")}}}
	v6Only   = netinfo.Interface{Name: "eth2", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("2001:db8::5/64")}}
)

func TestDiscoverAddress(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []netinfo.Interface
		want   string
	}{
		{"SkipsLoopback", []netinfo.Interface{loopback, lan}, "192.168.1.20"},
		{"SkipsLinkLocalOnly", []netinfo.Interface{loopback, linkOnly, vpn}, "10.8.0.2"},
		{"SkipsDown", []netinfo.Interface{down, lan}, "192.168.1.20"},
		{"FirstInEnumerationOrder", []netinfo.Interface{vpn, lan}, "10.8.0.2"},
		{"SkipsIPv6", []netinfo.Interface{v6Only, lan}, "192.168.1.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := netinfo.NewWithSource(fakeSource{ifaces: tt.ifaces})
			got, err := d.DiscoverAddress()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "127.0.0.1", got)
		})
	}
}

func TestDiscoverAddress_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []netinfo.Interface
	}{
		{"NoInterfaces", nil},
		{"LoopbackOnly", []netinfo.Interface{loopback}},
		{"LinkLocalAndDown", []netinfo.Interface{linkOnly, down, v6Only}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := netinfo.NewWithSource(fakeSource{ifaces: tt.ifaces})
			got, err := d.DiscoverAddress()
			assert.Empty(t, got)
			assert.ErrorIs(t, err, apperr.ErrNotFound)
			assert.ErrorIs(t, err, netinfo.ErrNotFound)
		})
	}
}

func TestDiscoverAddress_SourceError(t *testing.T) {
	d := netinfo.NewWithSource(fakeSource{err: errors.New("netlink unavailable")})
	_, err := d.DiscoverAddress()
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCandidates(t *testing.T) {
	d := netinfo.NewWithSource(fakeSource{ifaces: []netinfo.Interface{loopback, lan, vpn}})
	got, err := d.Candidates()
	require.NoError(t, err)
	assert.Equal(t, []netinfo.Candidate{
		{Interface: "eth0", IP: "192.168.1.20"},
		{Interface: "tun0", IP: "10.8.0.2"},
	}, got)
}

func TestDiscoverAddress_Host(t *testing.T) {
	addr, err := netinfo.New().DiscoverAddress()
	if err != nil {
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		return
	}
	ip := net.ParseIP(addr)
	require.NotNil(t, ip)
	assert.NotNil(t, ip.To4())
	assert.False(t, ip.IsLoopback())
}
