package modules

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/daybreak/internal/entities"
	daberr "github.com/KirkDiggler/daybreak/internal/errors"
	"github.com/KirkDiggler/daybreak/internal/repositories/properties"
	"github.com/KirkDiggler/daybreak/internal/repositories/scenes"
)

// MetaOrphanedScenes is the error meta key listing scenes that could not be
// cleaned up, as a template to scene ID map
const MetaOrphanedScenes = "orphaned_scenes"

// SceneInstaller creates and removes the scenes a module owns. The scene ID
// map stored on the module record under Property is the only record of what
// was installed; it is written after every scene persisted and cleared after
// every scene is gone.
type SceneInstaller struct {
	Library    string
	Property   string
	Scenes     scenes.Repository
	Properties properties.Store
	Logger     *slog.Logger
}

func (i *SceneInstaller) logger() *slog.Logger {
	if i.Logger == nil {
		return slog.Default()
	}
	return i.Logger
}

// Installed reads the scene ID map, nil when the module is not installed
func (i *SceneInstaller) Installed(ctx context.Context, record *entities.ModuleRecord) (entities.SceneIDMap, error) {
	var ids entities.SceneIDMap
	found, err := i.Properties.Get(ctx, record.Ref(), i.Property, &ids)
	if err != nil {
		return nil, daberr.Wrapf(err, "failed to read %s", i.Property)
	}
	if !found {
		return nil, nil
	}
	if ids == nil {
		ids = entities.SceneIDMap{}
	}
	return ids, nil
}

// Install persists scenes unless the module is already installed. If a scene
// fails to persist the ones created before it are deleted again.
func (i *SceneInstaller) Install(ctx context.Context, record *entities.ModuleRecord, toCreate []*entities.Scene) error {
	ids, err := i.Installed(ctx, record)
	if err != nil {
		return err
	}
	if ids != nil {
		return nil
	}

	created := make([]*entities.Scene, 0, len(toCreate))
	for _, scene := range toCreate {
		if err := i.Scenes.Create(ctx, scene); err != nil {
			return i.rollback(ctx, created, daberr.Wrapf(err, "failed to create scene %s", scene.Template))
		}
		created = append(created, scene)
	}

	ids = make(entities.SceneIDMap, len(created))
	for _, scene := range created {
		ids[scene.Template] = scene.ID
	}

	if err := i.Properties.Set(ctx, record.Ref(), i.Property, ids); err != nil {
		return i.rollback(ctx, created, daberr.Wrapf(err, "failed to write %s", i.Property))
	}

	i.logger().Info(i.Library+": added scenes", "scene_ids", ids)
	return nil
}

// rollback deletes scenes created by a failed install and returns cause, or
// a partial failure naming whatever could not be deleted
func (i *SceneInstaller) rollback(ctx context.Context, created []*entities.Scene, cause *daberr.Error) error {
	orphaned := entities.SceneIDMap{}
	for j := len(created) - 1; j >= 0; j-- {
		scene := created[j]
		if err := i.Scenes.Delete(ctx, scene.ID); err != nil && !daberr.IsNotFound(err) {
			i.logger().Error(i.Library+": failed to roll back scene",
				"template", scene.Template,
				"scene_id", scene.ID,
				"error", err)
			orphaned[scene.Template] = scene.ID
		}
	}

	if len(orphaned) == 0 {
		return cause
	}

	return daberr.WrapWithCode(cause, daberr.CodePartialFailure,
		i.Library+": install failed and scenes could not be removed").
		WithMeta(MetaOrphanedScenes, orphaned)
}

// Uninstall deletes the recorded scenes. Scenes already gone are skipped.
// When some deletes fail the map keeps exactly those entries and a partial
// failure is returned, so a later call can retry them.
func (i *SceneInstaller) Uninstall(ctx context.Context, record *entities.ModuleRecord) error {
	ids, err := i.Installed(ctx, record)
	if err != nil {
		return err
	}
	if ids == nil {
		return nil
	}

	templates := make([]string, 0, len(ids))
	for template := range ids {
		templates = append(templates, template)
	}
	sort.Strings(templates)

	remaining := entities.SceneIDMap{}
	for _, template := range templates {
		id := ids[template]
		err := i.Scenes.Delete(ctx, id)
		switch {
		case err == nil:
		case daberr.IsNotFound(err):
			i.logger().Warn(i.Library+": recorded scene already deleted",
				"template", template,
				"scene_id", id)
		default:
			i.logger().Error(i.Library+": failed to delete scene",
				"template", template,
				"scene_id", id,
				"error", err)
			remaining[template] = id
		}
	}

	if len(remaining) == 0 {
		if err := i.Properties.Set(ctx, record.Ref(), i.Property, nil); err != nil {
			return daberr.Wrapf(err, "failed to clear %s", i.Property)
		}
		i.logger().Info(i.Library+": removed scenes", "scene_ids", ids)
		return nil
	}

	if err := i.Properties.Set(ctx, record.Ref(), i.Property, remaining); err != nil {
		return daberr.Wrapf(err, "failed to write %s", i.Property).
			WithMeta(MetaOrphanedScenes, remaining)
	}

	return daberr.PartialFailuref("%s: %d scene(s) could not be deleted", i.Library, len(remaining)).
		WithMeta(MetaOrphanedScenes, remaining)
}

// SceneDefinition is the content of a scene as written in a module content file
type SceneDefinition struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Scene builds an unsaved scene for template
func (d SceneDefinition) Scene(template string) *entities.Scene {
	return &entities.Scene{
		Template:    template,
		Title:       d.Title,
		Description: d.Description,
	}
}

// FindScene looks up a scene a module depends on. A missing scene means the
// installed content does not line up and is reported as a configuration error.
func FindScene(ctx context.Context, repo scenes.Repository, template string) (*entities.Scene, error) {
	scene, err := repo.FindByTemplate(ctx, template)
	if err != nil {
		if daberr.IsNotFound(err) {
			return nil, daberr.Configurationf("scene %s is not installed", template).
				WithMeta("template", template)
		}
		return nil, daberr.Wrapf(err, "failed to find scene %s", template)
	}
	return scene, nil
}
