package entities

import "time"

// ModuleRecord is the persisted configuration record of an installed module.
// Its properties live in the property store under Ref().
type ModuleRecord struct {
	Library   string    `json:"library"` // e.g. "lotgd/module-race"
	CreatedAt time.Time `json:"created_at"`
}

// NewModuleRecord creates a record for library
func NewModuleRecord(library string) *ModuleRecord {
	return &ModuleRecord{
		Library:   library,
		CreatedAt: time.Now().UTC(),
	}
}

// Ref returns the property bag reference of the module
func (m *ModuleRecord) Ref() EntityRef {
	return EntityRef{Kind: EntityKindModule, ID: m.Library}
}
