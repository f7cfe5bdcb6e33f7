package riot

import (
	"fmt"
	"strings"
)

// Region is a platform routing value (the gameplay server), e.g. "na1" or "kr".
type Region string

// Cluster is a regional routing value that hosts match-v5 endpoints.
type Cluster string

const (
	ClusterAmericas Cluster = "americas"
	ClusterEurope   Cluster = "europe"
	ClusterAsia     Cluster = "asia"
	ClusterSEA      Cluster = "sea"
)

// RegionInfo pairs a region with its display label
type RegionInfo struct {
	Value Region `json:"value"`
	Label string `json:"label"`
}

// Regions lists the selectable regions in dropdown order. NA is the default.
var Regions = []RegionInfo{
	{"na1", "North America"},
	{"euw1", "Europe West"},
	{"eun1", "Europe Nordic"},
	{"kr", "Korea"},
	{"jp1", "Japan"},
	{"oc1", "Oceania"},
	{"la1", "Latin America 1"},
	{"la2", "Latin America 2"},
	{"br1", "Brazil"},
	{"ru", "Russia"},
	{"tr1", "Turkey"},
	{"ph2", "Philippines"},
	{"sg2", "Singapore"},
	{"th2", "Thailand"},
	{"tw2", "Taiwan"},
	{"vn2", "Vietnam"},
}

// DefaultRegion is selected when the user has not picked one
const DefaultRegion Region = "na1"

// clusterByRegion is the fixed routing table. Anything not listed here falls
// through to sea.
var clusterByRegion = map[Region]Cluster{
	"na1":  ClusterAmericas,
	"la1":  ClusterAmericas,
	"la2":  ClusterAmericas,
	"br1":  ClusterAmericas,
	"euw1": ClusterEurope,
	"eun1": ClusterEurope,
	"ru":   ClusterEurope,
	"kr":   ClusterAsia,
	"jp1":  ClusterAsia,
}

// Cluster returns the platform cluster that serves match and timeline
// requests for the region.
func (r Region) Cluster() Cluster {
	if c, ok := clusterByRegion[r]; ok {
		return c
	}
	return ClusterSEA
}

// Label returns the display name for the region
func (r Region) Label() string {
	for _, info := range Regions {
		if info.Value == r {
			return info.Label
		}
	}
	return string(r)
}

// ParseRegion validates a user-supplied region value
func ParseRegion(s string) (Region, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRegion, nil
	}
	for _, info := range Regions {
		if string(info.Value) == s {
			return info.Value, nil
		}
	}
	return "", fmt.Errorf("unsupported region %q", s)
}
