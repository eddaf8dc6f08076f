package vlanrange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/rangeset/pkg/ordering"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

// VLAN 0 is the untagged VLAN, VLAN 1 is the default VLAN and VLAN 4095
// is reserved, so claims are restricted to [2, 4094].
const (
	MinVLAN uint16 = 2
	MaxVLAN uint16 = 4094
)

// Claim is a claimed block of VLAN ids with its label metadata.
type Claim struct {
	Range  *rangeset.SingleRange[uint16]
	Labels labels.Set
}

// VLANRange tracks claimed blocks of the usable VLAN space. The claimed
// space is kept as a canonical multi range so overlap checks and free
// lookups run over constituents, not individual ids.
type VLANRange struct {
	usable  *rangeset.SingleRange[uint16]
	claimed *rangeset.MultiRange[uint16]
	claims  []Claim
	ord     ordering.Ordering[uint16]
}

func New() (*VLANRange, error) {
	ord := ordering.Number[uint16]()
	usable, err := rangeset.NewSingleRange(MinVLAN, MaxVLAN, ord)
	if err != nil {
		return nil, err
	}
	claimed, err := rangeset.NewMultiRange(nil, ord)
	if err != nil {
		return nil, err
	}
	return &VLANRange{
		usable:  usable,
		claimed: claimed,
		ord:     ord,
	}, nil
}

// ParseRange parses a VLAN block in the form "100-199".
func ParseRange(s string) (*rangeset.SingleRange[uint16], error) {
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return nil, fmt.Errorf("no hyphen in range %q", s)
	}
	from, err := strconv.ParseUint(s[:h], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid from vlan %q in range %q", s[:h], s)
	}
	to, err := strconv.ParseUint(s[h+1:], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid to vlan %q in range %q", s[h+1:], s)
	}
	return rangeset.NewSingleRange(uint16(from), uint16(to), ordering.Number[uint16]())
}

// Claim claims the given VLAN block. The block must fit in the usable
// VLAN space and must not intersect an already claimed block.
func (r *VLANRange) Claim(rng string, lbls labels.Set) error {
	sr, err := ParseRange(rng)
	if err != nil {
		return err
	}
	if !r.usable.ContainsRange(sr) {
		return fmt.Errorf("vlan range %s does not fit in the usable vlan space %s", rng, r.usable)
	}
	if r.claimed.HasIntersection(sr) {
		return fmt.Errorf("vlan range %s is already claimed", rng)
	}
	claimed, err := rangeset.NewMultiRange(append(r.claimed.Ranges(), sr), r.ord)
	if err != nil {
		return err
	}
	r.claimed = claimed
	r.claims = append(r.claims, Claim{Range: sr, Labels: lbls})
	return nil
}

// Release releases a previously claimed VLAN block. The block must match
// a claim exactly.
func (r *VLANRange) Release(rng string) error {
	sr, err := ParseRange(rng)
	if err != nil {
		return err
	}
	for i, c := range r.claims {
		if !c.Range.Equal(sr) {
			continue
		}
		r.claims = append(r.claims[:i], r.claims[i+1:]...)
		rr := make([]*rangeset.SingleRange[uint16], 0, len(r.claims))
		for _, c := range r.claims {
			rr = append(rr, c.Range)
		}
		claimed, err := rangeset.NewMultiRange(rr, r.ord)
		if err != nil {
			return err
		}
		r.claimed = claimed
		return nil
	}
	return fmt.Errorf("vlan range %s is not claimed", rng)
}

func (r *VLANRange) Claimed() rangeset.Range[uint16] { return r.claimed }

// Available returns the number of unclaimed VLAN ids.
func (r *VLANRange) Available() int64 {
	return r.usable.Possibilities() - r.claimed.Possibilities()
}

func (r *VLANRange) Count() int { return len(r.claims) }

func (r *VLANRange) Has(id uint16) bool { return r.claimed.Contains(id) }

func (r *VLANRange) IsFree(id uint16) bool {
	return r.usable.Contains(id) && !r.claimed.Contains(id)
}

// FindFree returns the lowest unclaimed VLAN id. The claimed set is
// canonical, so the first gap shows up between consecutive constituents.
func (r *VLANRange) FindFree() (uint16, error) {
	candidate := MinVLAN
	for _, sr := range r.claimed.Ranges() {
		if candidate < sr.Min() {
			return candidate, nil
		}
		candidate = sr.Max() + 1
	}
	if candidate <= MaxVLAN {
		return candidate, nil
	}
	return 0, fmt.Errorf("no free vlan found")
}

// GetByLabel returns the claims whose labels match the selector.
func (r *VLANRange) GetByLabel(selector labels.Selector) []Claim {
	var claims []Claim
	for _, c := range r.claims {
		if selector.Matches(c.Labels) {
			claims = append(claims, c)
		}
	}
	return claims
}
