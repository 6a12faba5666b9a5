package events

// Name identifies an event. Names are plain strings so modules can define
// new ones without registering them anywhere.
type Name string

// NavigateToPrefix prefixes the navigation event fired for every scene
const NavigateToPrefix = "h/lotgd/core/navigate-to/"

// NavigateTo returns the event fired whenever a character navigates to a
// scene with the given template
func NavigateTo(template string) Name {
	return Name(NavigateToPrefix + template)
}

// Priority levels for handlers that care about ordering
const (
	PriorityEarly   = -100
	PriorityDefault = 0
	PriorityLate    = 100
)
