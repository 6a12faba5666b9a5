package entities

import (
	"encoding/json"
	"sort"
)

// Viewpoint is what the character currently sees. Action groups are append
// only; several handlers may contribute to the same scene and the merged
// order is priority, then the order groups were added.
type Viewpoint struct {
	CharacterID   string
	SceneID       string
	SceneTemplate string
	Title         string
	Description   string

	groups []*ActionGroup // Insertion order
}

type viewpointData struct {
	CharacterID   string         `json:"character_id"`
	SceneID       string         `json:"scene_id"`
	SceneTemplate string         `json:"scene_template"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Groups        []*ActionGroup `json:"action_groups"`
}

// NewViewpoint creates the viewpoint shown for scene
func NewViewpoint(characterID string, scene *Scene) *Viewpoint {
	return &Viewpoint{
		CharacterID:   characterID,
		SceneID:       scene.ID,
		SceneTemplate: scene.Template,
		Title:         scene.Title,
		Description:   scene.Description,
		groups:        []*ActionGroup{},
	}
}

// AddActionGroup appends a group contributed for this scene
func (v *Viewpoint) AddActionGroup(group *ActionGroup) {
	if group == nil {
		return
	}
	v.groups = append(v.groups, group)
}

// ActionGroups returns the groups in display order
func (v *Viewpoint) ActionGroups() []*ActionGroup {
	groups := make([]*ActionGroup, len(v.groups))
	copy(groups, v.groups)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Priority < groups[j].Priority
	})
	return groups
}

// Actions returns every action in display order
func (v *Viewpoint) Actions() []*Action {
	var actions []*Action
	for _, group := range v.ActionGroups() {
		actions = append(actions, group.Actions...)
	}
	return actions
}

// FindAction looks up an action by its ID
func (v *Viewpoint) FindAction(id string) (*Action, bool) {
	for _, group := range v.groups {
		for _, action := range group.Actions {
			if action.ID == id {
				return action, true
			}
		}
	}
	return nil, false
}

// MarshalJSON stores the groups in insertion order
func (v Viewpoint) MarshalJSON() ([]byte, error) {
	groups := v.groups
	if groups == nil {
		groups = []*ActionGroup{}
	}
	return json.Marshal(viewpointData{
		CharacterID:   v.CharacterID,
		SceneID:       v.SceneID,
		SceneTemplate: v.SceneTemplate,
		Title:         v.Title,
		Description:   v.Description,
		Groups:        groups,
	})
}

func (v *Viewpoint) UnmarshalJSON(data []byte) error {
	var decoded viewpointData
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*v = Viewpoint{
		CharacterID:   decoded.CharacterID,
		SceneID:       decoded.SceneID,
		SceneTemplate: decoded.SceneTemplate,
		Title:         decoded.Title,
		Description:   decoded.Description,
		groups:        []*ActionGroup{},
	}
	for _, group := range decoded.Groups {
		v.AddActionGroup(group)
	}
	return nil
}
