package sim

// Collision is an overlap between two entities found in one tick. A is always
// motile. The references are only meaningful until the next tick.
type Collision struct {
	A *Entity
	B *Entity
}

// DetectCollisions tests every motile item against every other item on the
// board using the current bounding boxes.
//
// Pairs are ordered: when two motile entities overlap both (A, B) and (B, A)
// are reported, while a motile entity overlapping an obstacle yields only
// (motile, obstacle). Results follow Items order.
func DetectCollisions(b *Board) []Collision {
	var out []Collision
	for _, item := range b.Items {
		if !item.Motile() {
			continue
		}
		for _, other := range b.Items {
			if item == other {
				continue
			}
			if item.BoundingBox.Overlaps(other.BoundingBox) {
				out = append(out, Collision{A: item, B: other})
			}
		}
	}
	return out
}
