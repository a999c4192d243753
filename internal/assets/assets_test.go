package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoadSearchesNewestRootFirst(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{
		"textures/grass.png": {Data: []byte("base")},
		"textures/rock.png":  {Data: []byte("rock")},
	})
	m.AddRoot(fstest.MapFS{
		"textures/grass.png": {Data: []byte("override")},
	})

	got, err := m.Load("textures/grass.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "override" {
		t.Errorf("Load = %q, want override", got)
	}

	got, err = m.Load("textures/rock.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "rock" {
		t.Errorf("Load = %q, want rock", got)
	}
}

func TestLoadNotFound(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{})

	_, err := m.Load("missing.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsEscapingPath(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{})

	if _, err := m.Load("../secret"); err == nil {
		t.Error("expected error for path outside roots")
	}
}

func TestLoadAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "grass.png")
	if err := os.WriteFile(file, []byte("grass"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	m.AddRoot(fstest.MapFS{})

	got, err := m.Load(file)
	if err != nil {
		t.Fatalf("Load(%s): %v", file, err)
	}
	if string(got) != "grass" {
		t.Errorf("Load = %q, want grass", got)
	}

	if _, err := m.Load(filepath.Join(dir, "missing.png")); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadCaches(t *testing.T) {
	root := fstest.MapFS{"a.txt": {Data: []byte("one")}}
	m := NewManager()
	m.AddRoot(root)

	if _, err := m.Load("a.txt"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	root["a.txt"] = &fstest.MapFile{Data: []byte("two")}

	got, _ := m.Load("./a.txt")
	if string(got) != "one" {
		t.Errorf("cached Load = %q, want one", got)
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats = %d hits %d misses, want 1/1", hits, misses)
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "terrain.vert"), []byte("void main(){}"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	got, err := m.Load("terrain.vert")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "void main(){}" {
		t.Errorf("Load = %q", got)
	}

	if err := m.AddDir(filepath.Join(dir, "terrain.vert")); err == nil {
		t.Error("AddDir accepted a regular file")
	}
	if err := m.AddDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("AddDir accepted a missing dir")
	}
}

func TestClose(t *testing.T) {
	m := NewManager()
	m.AddRoot(fstest.MapFS{"a": {Data: []byte("x")}})
	if _, err := m.Load("a"); err != nil {
		t.Fatal(err)
	}

	m.Close()

	if _, err := m.Load("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after Close err = %v, want ErrNotFound", err)
	}
}

func TestShaderKindOf(t *testing.T) {
	tests := []struct {
		name    string
		want    ShaderKind
		wantErr bool
	}{
		{"terrain.vert", ShaderVertex, false},
		{"terrain.frag", ShaderFragment, false},
		{"shaders/terrain.VERT", ShaderVertex, false},
		{`C:\shaders\terrain.frag`, ShaderFragment, false},
		{"dir.v2/terrain.frag", ShaderFragment, false},
		{"terrain.vert.bak", ShaderUnknown, true},
		{"terrain.old.frag", ShaderUnknown, true},
		{"terrain", ShaderUnknown, true},
		{"terrain.glsl", ShaderUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShaderKindOf(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ShaderKindOf(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestShaderPair(t *testing.T) {
	tests := []struct {
		a, b       string
		vert, frag string
		wantErr    bool
	}{
		{"t.vert", "t.frag", "t.vert", "t.frag", false},
		{"t.frag", "t.vert", "t.vert", "t.frag", false},
		{"a.vert", "b.vert", "", "", true},
		{"a.frag", "b.frag", "", "", true},
		{"a.v1.vert", "b.frag", "", "", true},
		{"a.vert", "b.glsl", "", "", true},
	}

	for _, tt := range tests {
		vert, frag, err := ShaderPair(tt.a, tt.b)
		if (err != nil) != tt.wantErr {
			t.Errorf("ShaderPair(%q, %q) err = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			continue
		}
		if vert != tt.vert || frag != tt.frag {
			t.Errorf("ShaderPair(%q, %q) = %q, %q; want %q, %q", tt.a, tt.b, vert, frag, tt.vert, tt.frag)
		}
	}
}
