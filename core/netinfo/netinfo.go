package netinfo

import (
	"fmt"
	"net"

	"easy-ftp/core/apperr"
)

// ErrNotFound is returned when no interface has a usable IPv4 address.
var ErrNotFound = apperr.New(apperr.KindNotFound, "discover address", fmt.Errorf("no non-loopback IPv4 interface is up"))

// Interface is the subset of net.Interface the discovery needs.
type Interface struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// Source enumerates host interfaces.
type Source interface {
	Interfaces() ([]Interface, error)
}

// Candidate is one advertisable address.
type Candidate struct {
	Interface string `json:"interface"`
	IP        string `json:"ip"`
}

// Discoverer selects the advertised address from a Source.
type Discoverer struct {
	source Source
}

// New returns a Discoverer over the host's interfaces.
func New() *Discoverer {
	return &Discoverer{source: hostSource{}}
}

// NewWithSource returns a Discoverer over src.
func NewWithSource(src Source) *Discoverer {
	return &Discoverer{source: src}
}

// DiscoverAddress returns the first qualifying IPv4 address.
func (d *Discoverer) DiscoverAddress() (string, error) {
	candidates, err := d.Candidates()
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", ErrNotFound
	}
	return candidates[0].IP, nil
}

// Candidates returns every qualifying address in enumeration order.
func (d *Discoverer) Candidates() ([]Candidate, error) {
	ifaces, err := d.source.Interfaces()
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "list interfaces", err)
	}

	var out []Candidate
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		for _, addr := range iface.Addrs {
			ip := usableIPv4(addr)
			if ip == nil {
				continue
			}
			out = append(out, Candidate{Interface: iface.Name, IP: ip.String()})
		}
	}
	return out, nil
}

func usableIPv4(addr net.Addr) net.IP {
	var ip net.IP
	switch v := addr.(type) {
	case *net.IPNet:
		ip = v.IP
	case *net.IPAddr:
		ip = v.IP
	default:
		return nil
	}

	ip4 := ip.To4()
	if ip4 == nil {
		return nil
	}
	if ip4.IsLoopback() || ip4.IsLinkLocalUnicast() || ip4.IsUnspecified() || ip4.IsMulticast() {
		return nil
	}
	// Dotted-quad check: guards against addresses that only look IPv4 after To4.
	if net.ParseIP(ip4.String()).To4() == nil {
		return nil
	}
	return ip4
}

type hostSource struct{}

func (hostSource) Interfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	out := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		out = append(out, Interface{Name: iface.Name, Flags: iface.Flags, Addrs: addrs})
	}
	return out, nil
}
