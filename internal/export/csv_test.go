package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/nhle/shotlist/internal/model"
)

func TestWriteCSV(t *testing.T) {
	p := model.NewProject()
	sc := &p.Scenes[0]
	sc.SceneLabel = "SCENE 3"
	sc.Location = "ROOFTOP"

	shot := model.NewShot("Camera 1", "35mm")
	shot.Notes = "hero entrance, \"slow\" push"
	shot.ScriptTime = "01:10"
	shot.Checked = true
	sc.Shots = append(sc.Shots, shot, model.NewShot("Camera 2", "85mm"))

	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Shot" {
		t.Fatalf("header = %v", rows[0])
	}
	if len(rows[1]) != len(csvHeader) {
		t.Fatalf("row width %d, want %d", len(rows[1]), len(csvHeader))
	}
	if rows[1][0] != "3A" || rows[2][0] != "3B" {
		t.Fatalf("display ids = %s, %s", rows[1][0], rows[2][0])
	}
	if rows[1][1] != "SCENE 3" || rows[1][2] != "ROOFTOP" {
		t.Fatalf("scene columns = %v", rows[1][:3])
	}
	if rows[1][11] != `hero entrance, "slow" push` {
		t.Fatalf("notes column = %q", rows[1][11])
	}
	if rows[1][12] != "true" || rows[2][12] != "false" {
		t.Fatalf("checked columns = %q, %q", rows[1][12], rows[2][12])
	}
	if rows[1][13] != "01:10" {
		t.Fatalf("script time = %q", rows[1][13])
	}
}

func TestWriteCSVEmptyProject(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, model.NewProject()); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading csv: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
