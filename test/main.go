package main

import (
	"fmt"

	"github.com/henderiw/rangeset/pkg/iprange"
	"github.com/henderiw/rangeset/pkg/ordering"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"github.com/henderiw/rangeset/pkg/vlanrange"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var bounds = [][2]int{
	{3, 12},
	{15, 18},
	{10, 16},
	{4, 12},
	{30, 40},
}

func main() {
	ord := ordering.Number[int]()

	rr := make([]*rangeset.SingleRange[int], 0, len(bounds))
	for _, b := range bounds {
		r, err := rangeset.NewSingleRange(b[0], b[1], ord)
		if err != nil {
			panic(err)
		}
		rr = append(rr, r)
	}
	mr, err := rangeset.NewMultiRange(rr, ord)
	if err != nil {
		panic(err)
	}
	fmt.Println("merged", mr)
	fmt.Println("size", mr.Size(), "min", mr.Min(), "max", mr.Max())
	fmt.Println("before 35", mr.Before(35))
	fmt.Println("after 16", mr.After(16))

	other, err := rangeset.NewSingleRange(17, 33, ord)
	if err != nil {
		panic(err)
	}
	fmt.Println("intersect", mr.Intersect(other))
	fmt.Println("union", mr.Union(other))

	ipr, err := iprange.Parse("10.0.0.0-10.0.0.255")
	if err != nil {
		panic(err)
	}
	routes, err := iprange.Routes(ipr, map[string]string{"site": "lab"})
	if err != nil {
		panic(err)
	}
	for _, route := range routes {
		fmt.Println("route", route)
	}

	vt, err := vlanrange.New()
	if err != nil {
		panic(err)
	}
	if err := vt.Claim("1000-2000", map[string]string{"range": "test"}); err != nil {
		panic(err)
	}
	free, err := vt.FindFree()
	if err != nil {
		panic(err)
	}
	fmt.Println("free vlan", free)

	selector, err := getLabelSelector(map[string]string{"range": "test"})
	if err != nil {
		panic(err)
	}
	for _, c := range vt.GetByLabel(selector) {
		fmt.Println("claim", c.Range, "labels", c.Labels)
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
