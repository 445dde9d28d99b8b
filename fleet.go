package trafficsim

import "sort"

// Fleet is the canonical store of active vehicles, addressed by id. Lanes
// queue ids only; the fleet holds the single owning reference to each
// vehicle. Ids are handed out sequentially starting at 1 and never reused.
type Fleet struct {
	vehicles map[int]*Vehicle
	nextID   int
}

// NewFleet creates an empty fleet
func NewFleet() *Fleet {
	return &Fleet{
		vehicles: make(map[int]*Vehicle),
		nextID:   1,
	}
}

// NextID reserves and returns the next vehicle id
func (f *Fleet) NextID() int {
	id := f.nextID
	f.nextID++
	return id
}

// Add registers a vehicle under its id
func (f *Fleet) Add(v *Vehicle) {
	f.vehicles[v.ID()] = v
}

// Get returns the vehicle with the given id, if it is still active
func (f *Fleet) Get(id int) (*Vehicle, bool) {
	v, ok := f.vehicles[id]
	return v, ok
}

// Release drops the vehicle with the given id from the store
func (f *Fleet) Release(id int) {
	delete(f.vehicles, id)
}

// Len returns the number of active vehicles
func (f *Fleet) Len() int {
	return len(f.vehicles)
}

// IDs returns the active vehicle ids in ascending order
func (f *Fleet) IDs() []int {
	ids := make([]int, 0, len(f.vehicles))
	for id := range f.vehicles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
