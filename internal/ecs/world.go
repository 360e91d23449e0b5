// Package ecs holds the entity containers the simulation is built on:
// ordered sets per category and a registry that tears an entity out of
// all of them at once.
package ecs

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Container is anything an entity can be detached from
type Container interface {
	Name() string
	Len() int
	Detach(v any) bool
}

// Registry issues entity IDs and tracks every container that may hold
// an entity, so removal is a single call.
type Registry struct {
	nextID     EntityID
	containers []Container
}

// NewRegistry creates a registry over the given containers
func NewRegistry(containers ...Container) *Registry {
	return &Registry{
		nextID:     1, // 0 is "nil"
		containers: containers,
	}
}

// NewEntity returns a new unique entity ID
func (r *Registry) NewEntity() EntityID {
	id := r.nextID
	r.nextID++
	return id
}

// Destroy removes v from every registered container and reports how
// many containers held it.
func (r *Registry) Destroy(v any) int {
	n := 0
	for _, c := range r.containers {
		if c.Detach(v) {
			n++
		}
	}
	return n
}

// Counts returns the size of each registered container by name
func (r *Registry) Counts() map[string]int {
	counts := make(map[string]int, len(r.containers))
	for _, c := range r.containers {
		counts[c.Name()] = c.Len()
	}
	return counts
}
