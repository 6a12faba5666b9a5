package events

import (
	"github.com/KirkDiggler/daybreak/internal/entities"
)

// Context is the mutable state carried through one dispatch
type Context struct {
	event      Name
	character  *entities.Character
	viewpoint  *entities.Viewpoint
	parameters map[string]any

	redirect     *entities.Scene
	redirectedBy string
}

// NewContext creates a context for event
func NewContext(event Name, character *entities.Character) *Context {
	return &Context{
		event:      event,
		character:  character,
		parameters: map[string]any{},
	}
}

// WithViewpoint attaches the viewpoint being rendered
func (c *Context) WithViewpoint(v *entities.Viewpoint) *Context {
	c.viewpoint = v
	return c
}

// WithParameters attaches the parameters of the action that triggered the
// navigation
func (c *Context) WithParameters(parameters map[string]any) *Context {
	if parameters == nil {
		parameters = map[string]any{}
	}
	c.parameters = parameters
	return c
}

func (c *Context) Event() Name                    { return c.event }
func (c *Context) Character() *entities.Character { return c.character }

// Viewpoint is nil for events that are not navigation events
func (c *Context) Viewpoint() *entities.Viewpoint { return c.viewpoint }

func (c *Context) Parameters() map[string]any { return c.parameters }

// Parameter returns a single action parameter
func (c *Context) Parameter(key string) (any, bool) {
	value, ok := c.parameters[key]
	return value, ok
}

// SetRedirect asks the engine to navigate to scene instead of its default.
// The last handler to call it wins; by identifies that handler in logs.
func (c *Context) SetRedirect(scene *entities.Scene, by string) {
	c.redirect = scene
	c.redirectedBy = by
}

// Redirect returns the requested target, nil if nobody redirected
func (c *Context) Redirect() *entities.Scene { return c.redirect }

func (c *Context) RedirectedBy() string { return c.redirectedBy }

func (c *Context) Redirected() bool { return c.redirect != nil }
