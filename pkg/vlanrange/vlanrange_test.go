package vlanrange

import (
	"testing"

	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		newSuccessEntries map[string]labels.Set
		newFailedEntries  map[string]labels.Set
		expectedAvailable int64
	}{
		"Normal": {
			newSuccessEntries: map[string]labels.Set{
				"100-199":   {"purpose": "servers"},
				"1000-2000": {"purpose": "fabric"},
			},
			newFailedEntries: map[string]labels.Set{
				"150-250":   {}, // intersects 100-199
				"0-10":      {}, // reserved vlan 0
				"4000-4095": {}, // reserved vlan 4095
				"100":       {}, // no hyphen
			},
			expectedAvailable: 4093 - 100 - 1001,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New()
			assert.NoError(t, err)

			for rng, d := range tc.newSuccessEntries {
				err := r.Claim(rng, d)
				assert.NoError(t, err)
			}
			for rng, d := range tc.newFailedEntries {
				err := r.Claim(rng, d)
				assert.Error(t, err)
			}
			if r.Count() != len(tc.newSuccessEntries) {
				t.Errorf("%s: -want %d, +got: %d\n", name, len(tc.newSuccessEntries), r.Count())
			}
			assert.Equal(t, tc.expectedAvailable, r.Available())
			assert.True(t, r.Has(150))
			assert.False(t, r.Has(500))
			assert.True(t, r.IsFree(500))
			assert.False(t, r.IsFree(0))
		})
	}
}

func TestRelease(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	assert.NoError(t, r.Claim("100-199", nil))
	assert.NoError(t, r.Claim("300-399", nil))

	// release must match a claim exactly
	assert.Error(t, r.Release("100-150"))
	assert.NoError(t, r.Release("100-199"))
	assert.Error(t, r.Release("100-199"))

	assert.True(t, r.IsFree(150))
	assert.Equal(t, 1, r.Count())

	// the freed block can be claimed again
	assert.NoError(t, r.Claim("100-199", nil))
}

func TestFindFree(t *testing.T) {
	cases := map[string]struct {
		claims       []string
		expectedFree uint16
		expectedErr  bool
	}{
		"Empty":     {expectedFree: 2},
		"LowTaken":  {claims: []string{"2-100"}, expectedFree: 101},
		"Gap":       {claims: []string{"2-100", "200-300"}, expectedFree: 101},
		"AllTaken":  {claims: []string{"2-4094"}, expectedErr: true},
		"HighTaken": {claims: []string{"200-4094"}, expectedFree: 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New()
			assert.NoError(t, err)
			for _, rng := range tc.claims {
				assert.NoError(t, r.Claim(rng, nil))
			}
			free, err := r.FindFree()
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedFree, free)
		})
	}
}

func TestGetByLabel(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	assert.NoError(t, r.Claim("100-199", map[string]string{"purpose": "servers"}))
	assert.NoError(t, r.Claim("200-299", map[string]string{"purpose": "fabric"}))
	assert.NoError(t, r.Claim("300-399", map[string]string{"purpose": "servers"}))

	selector, err := getLabelSelector(map[string]string{"purpose": "servers"})
	assert.NoError(t, err)

	claims := r.GetByLabel(selector)
	assert.Equal(t, 2, len(claims))
	for _, c := range claims {
		assert.Equal(t, "servers", c.Labels.Get("purpose"))
	}
}

func getLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
