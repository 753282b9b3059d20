package motion

// ColliderID is an opaque handle naming the collider that was hit.
type ColliderID string

// FlatGroundNormal is the contact normal of level ground.
var FlatGroundNormal = Vec2{X: 0, Y: 1}

// CollisionEvent is a contact reported by the locomotion primitive.
type CollisionEvent struct {
	HitNormal  Vec2
	ColliderID ColliderID
}

// IsFlatGround reports whether the contact normal is exactly the flat-ground normal.
func (e CollisionEvent) IsFlatGround() bool {
	return e.HitNormal == FlatGroundNormal
}

// TriggerEvent is emitted when the actor enters or leaves a trigger volume.
type TriggerEvent struct {
	ColliderID ColliderID
}
