package game

import (
	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
)

// StretchItem is a falling circle that enlarges the paddle on contact.
type StretchItem struct {
	circle   core.Circle
	speed    float64
	touching bool // overlap on the previous check
}

// NewStretchItem creates an item at the top of the field at x.
func NewStretchItem(x, radius, speed float64) *StretchItem {
	return &StretchItem{
		circle: core.Circle{X: x, Y: 0, R: radius},
		speed:  speed,
	}
}

// Update moves the item down by speed * dt.
func (s *StretchItem) Update(dt float64) {
	s.circle.Y += s.speed * dt
}

// Intersects expands the paddle on the first frame of an overlap.
// Staying in contact does nothing more. It returns true if the paddle grew.
func (s *StretchItem) Intersects(paddle *Paddle) bool {
	if paddle == nil {
		return false
	}

	touching := s.circle.IntersectsRect(paddle.Rect())
	grew := false
	if touching && !s.touching {
		grew = paddle.ExpandSize()
	}
	s.touching = touching
	return grew
}

// Circle returns the item's current shape.
func (s *StretchItem) Circle() core.Circle {
	return s.circle
}

// Spawner creates stretch items.
type Spawner interface {
	SpawnItem() *StretchItem
}

// ItemSpawner places items in one of a fixed set of columns.
type ItemSpawner struct {
	rng     *SimpleRNG
	slots   int
	spacing float64
	radius  float64
	speed   float64
}

// NewItemSpawner creates a spawner with a deterministic seed.
func NewItemSpawner(cfg config.ItemConfig, seed int64) *ItemSpawner {
	return &ItemSpawner{
		rng:     NewSimpleRNG(seed),
		slots:   cfg.Slots,
		spacing: cfg.Spacing,
		radius:  cfg.Radius,
		speed:   cfg.Speed,
	}
}

// SpawnItem creates an item at x = spacing * slot.
func (sp *ItemSpawner) SpawnItem() *StretchItem {
	slot := sp.rng.Intn(sp.slots)
	return NewStretchItem(sp.spacing*float64(slot), sp.radius, sp.speed)
}

// RNGState returns the generator state for snapshots.
func (sp *ItemSpawner) RNGState() uint64 {
	return sp.rng.state
}

// ItemSlot owns at most one live item.
type ItemSlot struct {
	item *StretchItem
}

// Spawn fills the slot from sp. It returns false if an item is already live.
func (s *ItemSlot) Spawn(sp Spawner) bool {
	if s.item != nil || sp == nil {
		return false
	}
	s.item = sp.SpawnItem()
	return s.item != nil
}

// Release drops the live item. It returns false if the slot was empty.
func (s *ItemSlot) Release() bool {
	if s.item == nil {
		return false
	}
	s.item = nil
	return true
}

// Active reports whether an item is live.
func (s *ItemSlot) Active() bool {
	return s.item != nil
}

// Item returns the live item, or nil.
func (s *ItemSlot) Item() *StretchItem {
	return s.item
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are better distributed than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}
