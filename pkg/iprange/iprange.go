package iprange

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/rangeset/pkg/ordering"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"go4.org/netipx"
)

// Ordering returns the ordering over IPv4 addresses. The coordinate of
// an address is its big endian uint32 value.
func Ordering() ordering.Ordering[netip.Addr] {
	return addrOrdering{}
}

type addrOrdering struct{}

func (addrOrdering) Compare(a, b netip.Addr) int { return a.Compare(b) }

func (addrOrdering) IntValue(val netip.Addr) int { return int(addrValue(val)) }

func (addrOrdering) Int64Value(val netip.Addr) int64 { return int64(addrValue(val)) }

func (addrOrdering) Add(val netip.Addr, steps int64) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], uint32(int64(addrValue(val))+steps))
	return netip.AddrFrom4(a4)
}

func (o addrOrdering) Subtract(val netip.Addr, steps int64) netip.Addr {
	return o.Add(val, -steps)
}

func addrValue(a netip.Addr) uint32 {
	a4 := a.As4()
	return binary.BigEndian.Uint32(a4[:])
}

// New returns the range of IPv4 addresses from from to to, both
// inclusive. Reversed bounds are swapped like any other range.
func New(from, to netip.Addr) (*rangeset.SingleRange[netip.Addr], error) {
	if !from.Is4() || !to.Is4() {
		return nil, fmt.Errorf("only ipv4 addresses are supported, got %s-%s", from, to)
	}
	if to.Less(from) {
		from, to = to, from
	}
	if !netipx.IPRangeFrom(from, to).IsValid() {
		return nil, fmt.Errorf("invalid ip range %s-%s", from, to)
	}
	return rangeset.NewSingleRange(from, to, Ordering())
}

// Parse parses a range in the form "10.0.0.10-10.0.0.20".
func Parse(s string) (*rangeset.SingleRange[netip.Addr], error) {
	ipRange, err := netipx.ParseIPRange(s)
	if err != nil {
		return nil, err
	}
	return New(ipRange.From(), ipRange.To())
}

// NewSet canonicalizes the given ip ranges into a multi range.
func NewSet(ranges ...netipx.IPRange) (*rangeset.MultiRange[netip.Addr], error) {
	rr := make([]*rangeset.SingleRange[netip.Addr], 0, len(ranges))
	for _, r := range ranges {
		sr, err := New(r.From(), r.To())
		if err != nil {
			return nil, err
		}
		rr = append(rr, sr)
	}
	return rangeset.NewMultiRange(rr, Ordering())
}

// IPSet converts a range back into a netipx set.
func IPSet(r rangeset.Range[netip.Addr]) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	if r != nil {
		for _, sr := range r.Ranges() {
			b.AddRange(netipx.IPRangeFrom(sr.Min(), sr.Max()))
		}
	}
	return b.IPSet()
}

// Routes returns the minimal set of CIDR prefixes covering the range,
// each wrapped as a route carrying the given labels.
func Routes(r rangeset.Range[netip.Addr], lbls map[string]string) (table.Routes, error) {
	set, err := IPSet(r)
	if err != nil {
		return nil, err
	}
	var routes table.Routes
	for _, prefix := range set.Prefixes() {
		routes = append(routes, table.NewRoute(prefix, lbls, nil))
	}
	return routes, nil
}
