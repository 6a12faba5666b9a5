package entities

// EntityKind names the type of entity a property bag belongs to
type EntityKind string

const (
	EntityKindCharacter EntityKind = "character"
	EntityKindModule    EntityKind = "module"
)

// EntityRef addresses a property bag
type EntityRef struct {
	Kind EntityKind
	ID   string
}

func (r EntityRef) String() string {
	return string(r.Kind) + ":" + r.ID
}

// Character is the player character navigating the scene graph
type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref returns the property bag reference of the character
func (c *Character) Ref() EntityRef {
	return EntityRef{Kind: EntityKindCharacter, ID: c.ID}
}
