package entities

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Action is a choice the player can take from the current scene
type Action struct {
	ID                 string         `json:"id"` // Assigned when the viewpoint is finalised
	DestinationSceneID string         `json:"destination_scene_id"`
	Title              string         `json:"title"`
	Parameters         map[string]any `json:"parameters,omitempty"` // Forwarded verbatim to the destination's navigation event
}

// NewAction creates an action pointing at the given scene
func NewAction(destinationSceneID, title string, parameters map[string]any) *Action {
	return &Action{
		DestinationSceneID: destinationSceneID,
		Title:              title,
		Parameters:         parameters,
	}
}

// UnmarshalJSON keeps integer parameters exact. Whole numbers decode to
// int64 (uint64 above math.MaxInt64), other numbers to float64, arrays to
// []any and objects to map[string]any.
func (a *Action) UnmarshalJSON(data []byte) error {
	type plain Action
	var raw struct {
		*plain
		Parameters json.RawMessage `json:"parameters,omitempty"`
	}
	raw.plain = (*plain)(a)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Parameters = nil
	if len(raw.Parameters) == 0 || string(raw.Parameters) == "null" {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw.Parameters))
	decoder.UseNumber()

	var parameters map[string]any
	if err := decoder.Decode(&parameters); err != nil {
		return err
	}
	for key, value := range parameters {
		parameters[key] = exactNumbers(value)
	}
	a.Parameters = parameters
	return nil
}

func exactNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return u
		}
		f, _ := v.Float64()
		return f
	case []any:
		for i := range v {
			v[i] = exactNumbers(v[i])
		}
		return v
	case map[string]any:
		for key := range v {
			v[key] = exactNumbers(v[key])
		}
		return v
	default:
		return value
	}
}

// ActionGroup bundles the actions one handler contributes to a viewpoint
type ActionGroup struct {
	ID       string    `json:"id"` // Owning module or handler
	Title    string    `json:"title"`
	Priority int       `json:"priority"` // Lower sorts first
	Actions  []*Action `json:"actions"`
}

// NewActionGroup creates an empty group
func NewActionGroup(id, title string, priority int) *ActionGroup {
	return &ActionGroup{
		ID:       id,
		Title:    title,
		Priority: priority,
		Actions:  []*Action{},
	}
}

// Add appends actions to the group
func (g *ActionGroup) Add(actions ...*Action) *ActionGroup {
	g.Actions = append(g.Actions, actions...)
	return g
}
