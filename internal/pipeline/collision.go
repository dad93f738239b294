package pipeline

import (
	"fmt"
	"sync"
)

// CollisionResolver tracks slugs claimed within one release. Owners are
// opaque keys naming the entity that wants a slug ("set:base set|gold",
// "card:donruss.csv:12"); the same owner may claim its slug repeatedly.
// All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // slug → owner that holds it
	counters map[string]int    // requested slug → next suffix to try
	assigned map[string]string // owner + requested slug → disambiguated slug
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
		assigned: make(map[string]string),
	}
}

// Claim records owner for slug. It returns ("", true) when slug was free or
// already held by owner, and (holder, false) when another owner holds it.
func (cr *CollisionResolver) Claim(owner, slug string) (string, bool) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	holder, exists := cr.owners[slug]
	if !exists || holder == owner {
		cr.owners[slug] = owner
		return "", true
	}
	return holder, false
}

// Resolve returns slug when owner may have it and otherwise the first free
// "slug-2", "slug-3", ... Repeated calls by the same owner return the same
// result.
func (cr *CollisionResolver) Resolve(owner, slug string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	holder, exists := cr.owners[slug]
	if !exists || holder == owner {
		cr.owners[slug] = owner
		return slug
	}

	key := owner + "\x00" + slug
	if prev, ok := cr.assigned[key]; ok {
		return prev
	}

	counter := cr.counters[slug]
	if counter == 0 {
		counter = 2
	}
	for {
		candidate := fmt.Sprintf("%s-%d", slug, counter)
		if _, taken := cr.owners[candidate]; !taken {
			cr.counters[slug] = counter + 1
			cr.owners[candidate] = owner
			cr.assigned[key] = candidate
			return candidate
		}
		counter++
	}
}

// Len is the number of distinct slugs held.
func (cr *CollisionResolver) Len() int {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return len(cr.owners)
}
