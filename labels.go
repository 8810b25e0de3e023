package optics

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Noise is the label of points that belong to no cluster.
const Noise = -1

// Labels holds one cluster label per point, in input order.
// A label is either Noise or a cluster id starting at 0.
type Labels []int

// NumClusters returns the number of distinct cluster ids.
func (l Labels) NumClusters() int {
	maxID := Noise
	for _, id := range l {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// NoiseCount returns the number of points labelled Noise.
func (l Labels) NoiseCount() int {
	count := 0
	for _, id := range l {
		if id == Noise {
			count++
		}
	}
	return count
}

// Members returns the point indices of every cluster, indexed by cluster id.
func (l Labels) Members() []*roaring.Bitmap {
	members := make([]*roaring.Bitmap, l.NumClusters())
	for i := range members {
		members[i] = roaring.New()
	}
	for p, id := range l {
		if id != Noise {
			members[id].Add(uint32(p))
		}
	}
	return members
}

// Method selects how clusters are cut from an OPTICS ordering.
type Method int

const (
	// MethodDBSCAN cuts the reachability plot at a fixed eps.
	MethodDBSCAN Method = iota
	// MethodXi extracts clusters from steep areas of the reachability plot.
	MethodXi
)

func (m Method) String() string {
	switch m {
	case MethodDBSCAN:
		return "dbscan"
	case MethodXi:
		return "xi"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMethod returns the Method with the given name.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "dbscan":
		return MethodDBSCAN, nil
	case "xi":
		return MethodXi, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
