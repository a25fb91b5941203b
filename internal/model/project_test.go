package model

import "testing"

func TestSpecOptionsFor(t *testing.T) {
	p := NewProject()
	p.SpecOptions = map[string][]string{
		"size": {"DRONE WIDE", "CLOSE UP"},
	}

	t.Run("merges additions after the catalog", func(t *testing.T) {
		got := p.SpecOptionsFor("size")
		want := len(SizeOptions) + 1
		if len(got) != want {
			t.Fatalf("SpecOptionsFor(size) returned %d options, want %d: %v", len(got), want, got)
		}
		for i, o := range SizeOptions {
			if got[i] != o {
				t.Errorf("option %d = %q, want catalog value %q", i, got[i], o)
			}
		}
		if got[len(got)-1] != "DRONE WIDE" {
			t.Errorf("last option = %q, want custom %q", got[len(got)-1], "DRONE WIDE")
		}
	})

	t.Run("skips duplicates of catalog values", func(t *testing.T) {
		for _, o := range p.SpecOptionsFor("size") {
			n := 0
			for _, other := range p.SpecOptionsFor("size") {
				if other == o {
					n++
				}
			}
			if n != 1 {
				t.Errorf("option %q appears %d times", o, n)
			}
		}
	})

	t.Run("absent key falls back to the catalog", func(t *testing.T) {
		got := p.SpecOptionsFor("move")
		if len(got) != len(MoveOptions) {
			t.Fatalf("SpecOptionsFor(move) returned %d options, want %d", len(got), len(MoveOptions))
		}
	})
}

func TestIsEmpty(t *testing.T) {
	p := NewProject()
	if !p.IsEmpty() {
		t.Fatal("fresh project should be empty")
	}

	p.Scenes = append(p.Scenes, NewScene("SCENE 2"))
	if !p.IsEmpty() {
		t.Error("untouched default scenes should still count as empty")
	}

	p.Scenes[0].Location = "WAREHOUSE"
	if p.IsEmpty() {
		t.Error("edited scene header should make the project non-empty")
	}

	p.Scenes[0].Location = DefaultLocation
	p.Name = "Rooftop Chase"
	if p.IsEmpty() {
		t.Error("a renamed project should not be empty")
	}

	p.Name = DefaultProjectName
	p.Scenes[1].Shots = append(p.Scenes[1].Shots, NewShot("Camera 1", "85mm"))
	if p.IsEmpty() {
		t.Error("a project with shots should not be empty")
	}
}
