package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nhle/shotlist/internal/model"
)

// csvHeader is the fixed column set of the flat shot listing.
var csvHeader = []string{
	"Shot", "Scene", "Location", "Int/Ext", "Day/Night",
	"Size", "Type", "Move", "Equip",
	"Camera", "Focal Length", "Notes", "Done",
	"Script Time", "Setup Time", "Predicted Takes", "Shoot Time", "Take",
}

// WriteCSV writes every shot across every scene as one flat CSV table,
// in document order, with display IDs derived from current positions.
func WriteCSV(w io.Writer, p *model.Project) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for i := range p.Scenes {
		sc := &p.Scenes[i]
		for j := range sc.Shots {
			s := &sc.Shots[j]
			row := []string{
				model.DisplayID(sc.SceneLabel, j),
				sc.SceneLabel,
				sc.Location,
				sc.IntOrExt,
				sc.DayNight,
				s.Specs.Size,
				s.Specs.Type,
				s.Specs.Move,
				s.Specs.Equip,
				s.CameraName,
				s.FocalLength,
				s.Notes,
				strconv.FormatBool(s.Checked),
				s.ScriptTime,
				s.SetupTime,
				s.PredictedTakes,
				s.ShootTime,
				s.TakeNumber,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row for shot %s: %w", s.ID, err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
