package race

import (
	_ "embed"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/events"
	"github.com/KirkDiggler/daybreak/internal/modules"
	"github.com/KirkDiggler/daybreak/internal/modules/newday"
)

const Library = "lotgd/module-race"

const (
	RaceHuman = "Human"
	RaceElf   = "Elf"
	RaceDwarf = "Dwarf"
	RaceTroll = "Troll"
)

// DefaultRaces lists the races offered when the content names none
func DefaultRaces() []string {
	return []string{RaceHuman, RaceElf, RaceDwarf, RaceTroll}
}

// Config names every identifier the module shares with the rest of the
// engine. DefaultConfig returns the values used by the standard content.
type Config struct {
	Library          string
	SceneIDsProperty string // Module property holding the installed scene IDs
	RaceProperty     string // Character property holding the chosen race
	ChooseTemplate   string
	SelectTemplate   string
	ContinueTemplate string      // Where a valid choice continues to
	BeforeNewDay     events.Name // Hook that gates characters without a race
}

// DefaultConfig returns the standard configuration
func DefaultConfig() Config {
	return Config{
		Library:          Library,
		SceneIDsProperty: Library + "/sceneIds",
		RaceProperty:     Library + "/race",
		ChooseTemplate:   Library + "/choose",
		SelectTemplate:   Library + "/select",
		ContinueTemplate: newday.SceneContinue,
		BeforeNewDay:     newday.HookBeforeNewDay,
	}
}

func (c Config) validate() error {
	switch {
	case c.Library == "":
		return daberr.InvalidArgument("library is required")
	case c.SceneIDsProperty == "" || c.RaceProperty == "":
		return daberr.InvalidArgument("property keys are required")
	case c.ChooseTemplate == "" || c.SelectTemplate == "" || c.ContinueTemplate == "":
		return daberr.InvalidArgument("scene templates are required")
	case c.ChooseTemplate == c.SelectTemplate:
		return daberr.InvalidArgument("choose and select scenes need distinct templates")
	case c.BeforeNewDay == "":
		return daberr.InvalidArgument("before new day event is required")
	}
	return nil
}

//go:embed content.yaml
var defaultContent []byte

// Content is the text of the race scenes and the races on offer
type Content struct {
	Choose modules.SceneDefinition `yaml:"choose"`
	Select modules.SceneDefinition `yaml:"select"`
	Races  []string                `yaml:"races"` // Replaces DefaultRaces when set
}

// LoadContent parses a content document. Without a races list the module
// offers DefaultRaces. Listed names are title cased, so "human" in the
// document becomes the stored value "Human".
func LoadContent(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, daberr.Wrap(err, "failed to parse race content")
	}

	if content.Choose.Title == "" || content.Select.Title == "" {
		return nil, daberr.InvalidArgument("race content needs choose and select titles")
	}
	if len(content.Races) == 0 {
		content.Races = DefaultRaces()
		return &content, nil
	}

	caser := cases.Title(language.English)
	seen := make(map[string]bool, len(content.Races))
	for i, name := range content.Races {
		name = caser.String(name)
		if name == "" {
			return nil, daberr.InvalidArgumentf("race %d has no name", i)
		}
		if seen[name] {
			return nil, daberr.InvalidArgumentf("race %s is listed twice", name)
		}
		seen[name] = true
		content.Races[i] = name
	}

	return &content, nil
}
