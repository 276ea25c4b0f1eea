package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a selectable built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builtinScene struct {
	description string
	construct   func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		description: "Colored spheres, mirror box and mirror sphere over a checkered plane",
		construct:   NewDefaultScene,
	},
	"three-spheres": {
		description: "Three matte spheres over a checkered plane",
		construct:   NewThreeSpheresScene,
	},
}

// CreateScene builds a built-in scene by name
func CreateScene(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return builtin.construct(), nil
}

// ListScenes returns the available built-in scenes sorted by name
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for name, builtin := range builtinScenes {
		infos = append(infos, SceneInfo{Name: name, Description: builtin.description})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
