package assets

import (
	"fmt"
	"path"
	"strings"
)

// ShaderKind is a shader stage inferred from a file name.
type ShaderKind int

const (
	ShaderUnknown ShaderKind = iota
	ShaderVertex
	ShaderFragment
)

// String returns the stage name.
func (k ShaderKind) String() string {
	switch k {
	case ShaderVertex:
		return "vertex"
	case ShaderFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ShaderKindOf classifies a shader file by extension: ".vert" or ".frag".
// A base name with more than one dot is ambiguous and rejected.
func ShaderKindOf(name string) (ShaderKind, error) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))

	switch strings.Count(base, ".") {
	case 0:
		return ShaderUnknown, fmt.Errorf("shader file %q has no extension", name)
	case 1:
	default:
		return ShaderUnknown, fmt.Errorf("shader file %q has an ambiguous extension", name)
	}

	switch strings.ToLower(path.Ext(base)) {
	case ".vert":
		return ShaderVertex, nil
	case ".frag":
		return ShaderFragment, nil
	}
	return ShaderUnknown, fmt.Errorf("shader file %q: unknown extension %q", name, path.Ext(base))
}

// ShaderPair orders two shader paths as (vertex, fragment) regardless of the
// order given. Both must classify cleanly and cover both stages.
func ShaderPair(a, b string) (vertex, fragment string, err error) {
	ka, err := ShaderKindOf(a)
	if err != nil {
		return "", "", err
	}
	kb, err := ShaderKindOf(b)
	if err != nil {
		return "", "", err
	}

	switch {
	case ka == ShaderVertex && kb == ShaderFragment:
		return a, b, nil
	case ka == ShaderFragment && kb == ShaderVertex:
		return b, a, nil
	}
	return "", "", fmt.Errorf("shader pair %q, %q: need one vertex and one fragment stage, got %v and %v", a, b, ka, kb)
}
