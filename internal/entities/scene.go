package entities

// Scene is a navigable node. Cross references use Template because ID is
// only known once the scene has been persisted.
type Scene struct {
	ID          string `json:"id"`       // Storage identity, assigned on create
	Template    string `json:"template"` // Stable identifier, e.g. "lotgd/module-race/choose"
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SceneIDMap maps scene templates to the storage identity they were created with
type SceneIDMap map[string]string
