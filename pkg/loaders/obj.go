package loaders

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// LoadOBJ reads a Wavefront OBJ file into flat mesh data.
func LoadOBJ(filename string) (*geometry.MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("while opening mesh %q: %w", filename, err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, xerrors.Errorf("while parsing mesh %q: %w", filename, err)
	}

	logger.Infof("loaded mesh %s: %d vertices, %d faces", filename, len(data.Positions)/3, data.FaceCount())
	return data, nil
}

// ParseOBJ reads vertex positions (v), texture coordinates (vt) and faces (f).
// Every other statement is ignored. Faces with more than 3 vertices are
// triangulated as a fan around their first vertex. Face arguments may use the
// forms v, v/vt, v//vn and v/vt/vn; indices start at 1 and negative indices
// count back from the last vertex read so far.
//
// Texture coordinates are only kept when every face references them.
func ParseOBJ(r io.Reader) (*geometry.MeshData, error) {
	data := &geometry.MeshData{}
	allFacesTextured := true
	lineNum := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			coords, err := parseFloats(lineTokens, 3)
			if err != nil {
				return nil, xerrors.Errorf("line %d: %w", lineNum, err)
			}
			data.Positions = append(data.Positions, coords...)
		case "vt":
			coords, err := parseFloats(lineTokens, 2)
			if err != nil {
				return nil, xerrors.Errorf("line %d: %w", lineNum, err)
			}
			data.Texcoords = append(data.Texcoords, coords...)
		case "f":
			positions, texcoords, err := parseFace(lineTokens, len(data.Positions)/3, len(data.Texcoords)/2)
			if err != nil {
				return nil, xerrors.Errorf("line %d: %w", lineNum, err)
			}
			if texcoords == nil {
				allFacesTextured = false
			}

			// Fan triangulation
			for i := 1; i+1 < len(positions); i++ {
				data.Indices = append(data.Indices, positions[0], positions[i], positions[i+1])
				if texcoords != nil {
					data.TexcoordIndices = append(data.TexcoordIndices, texcoords[0], texcoords[i], texcoords[i+1])
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("while reading: %w", err)
	}

	if !allFacesTextured && len(data.TexcoordIndices) > 0 {
		logger.Warningf("mesh mixes textured and untextured faces; ignoring texture coordinates")
	}
	if !allFacesTextured || data.FaceCount() == 0 {
		data.TexcoordIndices = nil
	}

	return data, nil
}

// parseFloats parses exactly the first n arguments of a statement; extra
// arguments (such as the optional w component) are ignored.
func parseFloats(lineTokens []string, n int) ([]float64, error) {
	if len(lineTokens)-1 < n {
		return nil, xerrors.Errorf("unsupported syntax for '%s'; expected %d arguments; got %d", lineTokens[0], n, len(lineTokens)-1)
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(lineTokens[i+1], 64)
		if err != nil {
			return nil, xerrors.Errorf("could not parse argument %d of '%s': %w", i+1, lineTokens[0], err)
		}
		values[i] = v
	}
	return values, nil
}

// parseFace returns the zero-based position indices of a face and, when every
// argument has one, its texture coordinate indices.
func parseFace(lineTokens []string, vertexCount, texcoordCount int) ([]int, []int, error) {
	if len(lineTokens) < 4 {
		return nil, nil, xerrors.Errorf("unsupported syntax for 'f'; expected at least 3 arguments; got %d", len(lineTokens)-1)
	}

	args := lineTokens[1:]
	positions := make([]int, len(args))
	texcoords := make([]int, len(args))
	textured := true

	for arg, token := range args {
		vTokens := strings.Split(token, "/")
		if vTokens[0] == "" {
			return nil, nil, xerrors.Errorf("face argument %d does not include a vertex index", arg)
		}

		index, err := selectFaceCoordIndex(vTokens[0], vertexCount)
		if err != nil {
			return nil, nil, xerrors.Errorf("could not parse vertex coord for face argument %d: %w", arg, err)
		}
		positions[arg] = index

		if len(vTokens) < 2 || vTokens[1] == "" {
			textured = false
			continue
		}
		index, err = selectFaceCoordIndex(vTokens[1], texcoordCount)
		if err != nil {
			return nil, nil, xerrors.Errorf("could not parse tex coord for face argument %d: %w", arg, err)
		}
		texcoords[arg] = index
	}

	if !textured {
		return positions, nil, nil
	}
	return positions, texcoords, nil
}

// selectFaceCoordIndex converts a one-based, possibly negative OBJ index into
// a zero-based index into a list holding count entries.
func selectFaceCoordIndex(token string, count int) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}

	switch {
	case index > 0 && index <= count:
		return index - 1, nil
	case index < 0 && -index <= count:
		return count + index, nil
	default:
		return 0, xerrors.Errorf("index %d out of range; %d entries defined", index, count)
	}
}
