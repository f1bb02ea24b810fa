package scene

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Description is the YAML form of a scene
type Description struct {
	Name        string                         `yaml:"name"`
	Description string                         `yaml:"description"`
	Camera      CameraDescription              `yaml:"camera"`
	Render      RenderDescription              `yaml:"render"`
	Accelerate  bool                           `yaml:"accelerate"`
	BVHSeed     int64                          `yaml:"bvh_seed"`
	Textures    map[string]TextureDescription  `yaml:"textures"`
	Materials   map[string]MaterialDescription `yaml:"materials"`
	Objects     []ObjectDescription            `yaml:"objects"`
}

// CameraDescription contains camera configuration
type CameraDescription struct {
	Position   Vector  `yaml:"position"`
	LookAt     Vector  `yaml:"look_at"`
	Up         Vector  `yaml:"up"`
	Fov        float64 `yaml:"fov"` // Vertical, in degrees
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background Vector  `yaml:"background"`
}

// RenderDescription contains sampling configuration
type RenderDescription struct {
	Samples int    `yaml:"samples"`
	Depth   int    `yaml:"depth"`
	Workers int    `yaml:"workers"`
	Seed    *int64 `yaml:"seed"` // Optional: omitted means random
}

// TextureDescription is a named color source.
// Kind is one of solid, checker, image or uvdebug.
type TextureDescription struct {
	Kind   string  `yaml:"kind"`
	Color  Vector  `yaml:"color"`
	Scale  float64 `yaml:"scale"`
	Even   Vector  `yaml:"even"`
	Odd    Vector  `yaml:"odd"`
	Path   string  `yaml:"path"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// MaterialDescription is a named material shared by every object referencing it.
// Kind is one of lambertian, metal or light. Exactly one of Color and Texture is set.
type MaterialDescription struct {
	Kind    string  `yaml:"kind"`
	Color   Vector  `yaml:"color"`
	Texture string  `yaml:"texture"`
	Fuzz    float64 `yaml:"fuzz"`
}

// ObjectDescription is one shape. Kind is one of sphere, plane, triangle or mesh.
type ObjectDescription struct {
	Kind     string `yaml:"kind"`
	Material string `yaml:"material"`

	// sphere
	Center Vector  `yaml:"center"`
	Radius float64 `yaml:"radius"`

	// plane
	Point  Vector `yaml:"point"`
	XBasis Vector `yaml:"x_basis"`
	YBasis Vector `yaml:"y_basis"`

	// triangle
	A   Vector `yaml:"a"`
	B   Vector `yaml:"b"`
	C   Vector `yaml:"c"`
	UVA Vector `yaml:"uv_a"`
	UVB Vector `yaml:"uv_b"`
	UVC Vector `yaml:"uv_c"`

	// mesh
	Path   string `yaml:"path"`
	Offset Vector `yaml:"offset"`
}

// Vector is a YAML sequence of 2 or 3 numbers
type Vector []float64

func (v Vector) vec3(field string) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, xerrors.Errorf("%s: expected 3 components, got %d", field, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// vec3Or returns fallback when the vector was omitted
func (v Vector) vec3Or(field string, fallback core.Vec3) (core.Vec3, error) {
	if v == nil {
		return fallback, nil
	}
	return v.vec3(field)
}

func (v Vector) vec2Or(field string, fallback core.Vec2) (core.Vec2, error) {
	if v == nil {
		return fallback, nil
	}
	if len(v) != 2 {
		return core.Vec2{}, xerrors.Errorf("%s: expected 2 components, got %d", field, len(v))
	}
	return core.NewVec2(v[0], v[1]), nil
}

// DefaultDescription returns the values used for every key a scene file omits
func DefaultDescription() *Description {
	render := renderer.DefaultRenderConfig()
	return &Description{
		Name: "untitled",
		Camera: CameraDescription{
			Position:   Vector{0, 0, 0},
			LookAt:     Vector{0, 0, -1},
			Up:         Vector{0, 1, 0},
			Fov:        70,
			Width:      400,
			Height:     400,
			Background: Vector{0.7, 0.8, 1.0},
		},
		Render: RenderDescription{
			Samples: render.SamplesPerPixel,
			Depth:   render.MaxDepth,
		},
		Accelerate: true,
		BVHSeed:    1,
	}
}

// ParseDescription decodes a YAML scene over the defaults
func ParseDescription(data []byte) (*Description, error) {
	desc := DefaultDescription()
	if err := yaml.Unmarshal(data, desc); err != nil {
		return nil, xerrors.Errorf("while parsing scene: %w", err)
	}
	return desc, nil
}

// LoadFile reads a YAML scene and builds it. Relative texture and mesh
// paths are resolved against the directory of the scene file.
func LoadFile(filePath string) (*Scene, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, xerrors.Errorf("while reading scene file: %w", err)
	}

	desc, err := ParseDescription(data)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", filePath, err)
	}

	s, err := desc.Build(filepath.Dir(filePath))
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", filePath, err)
	}
	return s, nil
}

// Build creates the scene the description names, loading external files
// relative to baseDir. The returned scene is preprocessed.
func (d *Description) Build(baseDir string) (*Scene, error) {
	cameraConfig, err := d.Camera.config()
	if err != nil {
		return nil, xerrors.Errorf("while reading camera: %w", err)
	}

	render := renderer.RenderConfig{
		SamplesPerPixel: d.Render.Samples,
		MaxDepth:        d.Render.Depth,
		Workers:         d.Render.Workers,
		RandomSeed:      d.Render.Seed == nil,
	}
	if d.Render.Seed != nil {
		render.Seed = *d.Render.Seed
	}
	s := NewScene(d.Name, cameraConfig, render)
	s.Accelerate = d.Accelerate
	s.BVHSeed = d.BVHSeed

	b := &builder{
		baseDir:   baseDir,
		textures:  make(map[string]material.ColorSource, len(d.Textures)),
		materials: make(map[string]material.Material, len(d.Materials)),
		random:    s.BVHRandom(),
	}

	for _, name := range sortedKeys(d.Textures) {
		texture, err := b.texture(d.Textures[name])
		if err != nil {
			return nil, xerrors.Errorf("while building texture %q: %w", name, err)
		}
		b.textures[name] = texture
	}

	for _, name := range sortedKeys(d.Materials) {
		mat, err := b.material(d.Materials[name])
		if err != nil {
			return nil, xerrors.Errorf("while building material %q: %w", name, err)
		}
		b.materials[name] = mat
	}

	for i, object := range d.Objects {
		shape, err := b.object(object)
		if err != nil {
			return nil, xerrors.Errorf("while building object %d (%s): %w", i, object.Kind, err)
		}
		s.Add(shape)
	}

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

func (c CameraDescription) config() (renderer.CameraConfig, error) {
	position, err := c.Position.vec3("position")
	if err != nil {
		return renderer.CameraConfig{}, err
	}
	lookAt, err := c.LookAt.vec3("look_at")
	if err != nil {
		return renderer.CameraConfig{}, err
	}
	up, err := c.Up.vec3Or("up", core.NewVec3(0, 1, 0))
	if err != nil {
		return renderer.CameraConfig{}, err
	}
	background, err := c.Background.vec3Or("background", core.Vec3{})
	if err != nil {
		return renderer.CameraConfig{}, err
	}

	return renderer.CameraConfig{
		Position:   position,
		LookAt:     lookAt,
		Up:         up,
		VFov:       c.Fov,
		Width:      c.Width,
		Height:     c.Height,
		Background: background,
	}, nil
}

type builder struct {
	baseDir   string
	textures  map[string]material.ColorSource
	materials map[string]material.Material
	random    *rand.Rand
}

func (b *builder) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(b.baseDir, path)
}

func (b *builder) texture(t TextureDescription) (material.ColorSource, error) {
	switch t.Kind {
	case "solid":
		color, err := t.Color.vec3("color")
		if err != nil {
			return nil, err
		}
		return material.NewSolidColor(color), nil
	case "checker":
		even, err := t.Even.vec3("even")
		if err != nil {
			return nil, err
		}
		odd, err := t.Odd.vec3("odd")
		if err != nil {
			return nil, err
		}
		if t.Scale <= 0 {
			return nil, xerrors.Errorf("checker scale must be positive, got %g", t.Scale)
		}
		return material.NewCheckerTexture(t.Scale, even, odd), nil
	case "image":
		if t.Path == "" {
			return nil, xerrors.New("image texture needs a path")
		}
		img, err := loaders.LoadImage(b.resolve(t.Path))
		if err != nil {
			return nil, err
		}
		return material.NewImageTexture(img.Width, img.Height, img.Pixels), nil
	case "uvdebug":
		if t.Width <= 0 || t.Height <= 0 {
			return nil, xerrors.Errorf("uvdebug texture needs a positive size, got %dx%d", t.Width, t.Height)
		}
		return material.NewUVDebugTexture(t.Width, t.Height), nil
	default:
		return nil, xerrors.Errorf("unknown texture kind %q", t.Kind)
	}
}

// colorSource returns the referenced texture or a solid color
func (b *builder) colorSource(m MaterialDescription) (material.ColorSource, error) {
	switch {
	case m.Texture != "" && m.Color != nil:
		return nil, xerrors.New("set either color or texture, not both")
	case m.Texture != "":
		texture, ok := b.textures[m.Texture]
		if !ok {
			return nil, xerrors.Errorf("unknown texture %q", m.Texture)
		}
		return texture, nil
	case m.Color != nil:
		color, err := m.Color.vec3("color")
		if err != nil {
			return nil, err
		}
		return material.NewSolidColor(color), nil
	default:
		return nil, xerrors.New("material needs a color or a texture")
	}
}

func (b *builder) material(m MaterialDescription) (material.Material, error) {
	switch m.Kind {
	case "lambertian", "metal", "light":
	default:
		return nil, xerrors.Errorf("unknown material kind %q", m.Kind)
	}

	source, err := b.colorSource(m)
	if err != nil {
		return nil, err
	}

	switch m.Kind {
	case "lambertian":
		return material.NewTexturedLambertian(source), nil
	case "metal":
		if m.Fuzz < 0 || m.Fuzz > 1 {
			return nil, xerrors.Errorf("metal fuzz must be in [0, 1], got %g", m.Fuzz)
		}
		return material.NewFuzzyMetal(source, m.Fuzz), nil
	default:
		return material.NewTexturedDiffuseLight(source), nil
	}
}

func (b *builder) object(o ObjectDescription) (geometry.Shape, error) {
	mat, ok := b.materials[o.Material]
	if !ok {
		return nil, xerrors.Errorf("unknown material %q", o.Material)
	}

	switch o.Kind {
	case "sphere":
		center, err := o.Center.vec3("center")
		if err != nil {
			return nil, err
		}
		if o.Radius <= 0 {
			return nil, xerrors.Errorf("sphere radius must be positive, got %g", o.Radius)
		}
		return geometry.NewSphere(center, o.Radius, mat), nil

	case "plane":
		point, err := o.Point.vec3("point")
		if err != nil {
			return nil, err
		}
		xBasis, err := o.XBasis.vec3("x_basis")
		if err != nil {
			return nil, err
		}
		yBasis, err := o.YBasis.vec3("y_basis")
		if err != nil {
			return nil, err
		}
		if xBasis.Cross(yBasis).NearZero() {
			return nil, xerrors.New("plane basis vectors are parallel")
		}
		return geometry.NewPlane(xBasis, yBasis, point, mat), nil

	case "triangle":
		var corners [3]core.Vec3
		for i, v := range []Vector{o.A, o.B, o.C} {
			corner, err := v.vec3(string(rune('a' + i)))
			if err != nil {
				return nil, err
			}
			corners[i] = corner
		}
		var uvs [3]core.Vec2
		for i, v := range []Vector{o.UVA, o.UVB, o.UVC} {
			uv, err := v.vec2Or("uv_"+string(rune('a'+i)), core.Vec2{})
			if err != nil {
				return nil, err
			}
			uvs[i] = uv
		}
		return geometry.NewTriangleUV(corners[0], corners[1], corners[2], uvs[0], uvs[1], uvs[2], mat), nil

	case "mesh":
		if o.Path == "" {
			return nil, xerrors.New("mesh needs a path")
		}
		offset, err := o.Offset.vec3Or("offset", core.Vec3{})
		if err != nil {
			return nil, err
		}
		data, err := loaders.LoadOBJ(b.resolve(o.Path))
		if err != nil {
			return nil, err
		}
		mesh, err := geometry.NewTriangleMesh(data, mat, offset, b.random)
		if err != nil {
			return nil, err
		}
		return mesh, nil

	default:
		return nil, xerrors.Errorf("unknown object kind %q", o.Kind)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
