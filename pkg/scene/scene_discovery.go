package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name accepted by Load
	Name        string // Display name
	Description string
	Type        string // "builtin" or "yaml"
	FilePath    string // yaml type only
}

type builtinScene struct {
	info   SceneInfo
	create func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info:   SceneInfo{ID: "default", Name: "Default Scene", Description: "Silver, gold and purple spheres on a ground sphere"},
		create: func() (*Scene, error) { return NewDefaultScene(), nil },
	},
	{
		info:   SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "20x20 grid of colored metal spheres under a sun"},
		create: func() (*Scene, error) { return NewSphereGridScene(20), nil },
	},
	{
		info:   SceneInfo{ID: "textures", Name: "Textures", Description: "Checker and UV debug textures on spheres, a plane and a triangle"},
		create: func() (*Scene, error) { return NewTextureScene(), nil },
	},
	{
		info:   SceneInfo{ID: "trianglemesh", Name: "Triangle Meshes", Description: "Box, pyramid and icosahedron meshes"},
		create: NewTriangleMeshScene,
	},
}

// BuiltinScenes lists the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.Type = "builtin"
		infos = append(infos, info)
	}
	return infos
}

// NewBuiltinScene creates and preprocesses the built-in scene with the given id
func NewBuiltinScene(id string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID != id {
			continue
		}
		s, err := b.create()
		if err != nil {
			return nil, xerrors.Errorf("while creating scene %q: %w", id, err)
		}
		if err := s.Preprocess(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, xerrors.Errorf("unknown scene %q", id)
}

// Load resolves a scene by built-in id, by path to a YAML file, or by the
// name of a YAML file in scenesDir.
func Load(nameOrPath, scenesDir string) (*Scene, error) {
	if nameOrPath == "" {
		return nil, xerrors.New("no scene given")
	}
	if isSceneFile(nameOrPath) {
		return LoadFile(nameOrPath)
	}
	for _, b := range builtinScenes {
		if b.info.ID == nameOrPath {
			return NewBuiltinScene(nameOrPath)
		}
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(scenesDir, nameOrPath+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, xerrors.Errorf("unknown scene %q", nameOrPath)
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// ListSceneFiles scans dir for YAML scene files. A missing directory yields no scenes.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}
	if err != nil {
		return nil, xerrors.Errorf("while scanning scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !isSceneFile(entry.Name()) {
			continue
		}
		filePath := filepath.Join(dir, entry.Name())
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Keep listing the other files
			logger.Warningf("failed to parse metadata for %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneMetadata reads the name and description keys of a scene file.
// The name falls back to the file name in title case.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       id,
		Name:     titleCase(id),
		Type:     "yaml",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, xerrors.Errorf("while reading %s: %w", filePath, err)
	}

	var header struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info, xerrors.Errorf("while parsing %s: %w", filePath, err)
	}
	if header.Name != "" {
		info.Name = header.Name
	}
	info.Description = header.Description
	return info, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}
	return append(BuiltinScenes(), files...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
