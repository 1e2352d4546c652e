package rvrpmodel

// Courier is a vehicle/driver: an identity, a matrix profile, a Cost
// model, a capacity vector, skill tags, an optional max distance (0 =
// unlimited), a work-time window, start/end Points, and the list of
// Storages this Courier is permitted to visit.
type Courier struct {
	Name          string
	Profile       string
	Cost          Cost
	Capacity      []int64
	Skills        []string
	MaxDistance   int64 // 0 = unlimited
	WorkTime      Window
	StartLocation Point
	EndLocation   Point
	Storages      []*Storage
}

// NewCourier validates and constructs a Courier.
func NewCourier(name, profile string, cost Cost, capacity []int64, skills []string, maxDistance int64, workTime Window, start, end Point, storages []*Storage) (*Courier, error) {
	if name == "" {
		return nil, ErrEmptyCourierName
	}
	return &Courier{
		Name:          name,
		Profile:       profile,
		Cost:          cost,
		Capacity:      append([]int64(nil), capacity...),
		Skills:        append([]string(nil), skills...),
		MaxDistance:   maxDistance,
		WorkTime:      workTime,
		StartLocation: start,
		EndLocation:   end,
		Storages:      append([]*Storage(nil), storages...),
	}, nil
}

// SkillSet returns the Courier's capabilities as a set.
func (c *Courier) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Skills))
	for _, s := range c.Skills {
		set[s] = struct{}{}
	}
	return set
}

// Permits reports whether storage is among the Courier's permitted depots.
func (c *Courier) Permits(storage *Storage) bool {
	for _, s := range c.Storages {
		if s == storage || s.Name == storage.Name {
			return true
		}
	}
	return false
}

// FitsCapacity reports whether load is component-wise within capacity.
// A nil or short load vector is treated as zero in missing dimensions.
func (c *Courier) FitsCapacity(load []int64) bool {
	for i, limit := range c.Capacity {
		var v int64
		if i < len(load) {
			v = load[i]
		}
		if v > limit {
			return false
		}
	}
	return true
}
