package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name:    "complete.yaml",
			content: "name: Two Spheres\ndescription: A pair of spheres\ncamera:\n  fov: 40\n",
			expected: SceneInfo{
				ID:          "complete",
				Name:        "Two Spheres",
				Description: "A pair of spheres",
				Type:        "yaml",
			},
		},
		{
			name:    "no-metadata.yml",
			content: "camera:\n  fov: 40\n",
			expected: SceneInfo{
				ID:   "no-metadata",
				Name: "No Metadata",
				Type: "yaml",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name, tc.content)
			tc.expected.FilePath = path

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, result); diff != "" {
				t.Errorf("Unexpected metadata (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "name: Beta\n")
	writeFile(t, dir, "a.yml", "name: Alpha\n")
	writeFile(t, dir, "broken.yaml", "name: [unterminated\n")
	writeFile(t, dir, "notes.txt", "not a scene")

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}

	var names []string
	for _, s := range scenes {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, names); diff != "" {
		t.Errorf("Unexpected scenes (-want +got):\n%s", diff)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "missing"))
	if err != nil {
		t.Errorf("ListSceneFiles() on missing directory error: %v", err)
	}
	if missing == nil || len(missing) != 0 {
		t.Errorf("Expected empty slice for missing directory, got %v", missing)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.yaml", "name: Custom\n")

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	var ids []string
	for _, s := range scenes {
		ids = append(ids, s.ID)
	}
	expected := []string{"default", "spheregrid", "textures", "trianglemesh", "custom"}
	if diff := cmp.Diff(expected, ids); diff != "" {
		t.Errorf("Unexpected scene ids (-want +got):\n%s", diff)
	}
	for _, s := range scenes[:4] {
		if s.Type != "builtin" {
			t.Errorf("Scene %s: expected builtin type, got %q", s.ID, s.Type)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tiny.yaml", `
name: tiny
camera: {width: 8, height: 8}
materials:
  white: {kind: lambertian, color: [1, 1, 1]}
objects:
  - {kind: sphere, material: white, center: [0, 0, -2], radius: 0.5}
`)

	tests := []struct {
		name        string
		input       string
		expectError bool
		sceneName   string
	}{
		{"builtin", "default", false, "default"},
		{"path", path, false, "tiny"},
		{"name in directory", "tiny", false, "tiny"},
		{"unknown", "nonexistent", true, ""},
		{"missing path", filepath.Join(dir, "nonexistent.yaml"), true, ""},
		{"empty", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.input, dir)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if s.Name != tt.sceneName {
				t.Errorf("Expected scene %q, got %q", tt.sceneName, s.Name)
			}
			if s.GetCamera() == nil || s.GetWorld() == nil {
				t.Error("Expected a preprocessed scene")
			}
		})
	}
}
