// Package envelope converts the project aggregate to and from the
// versioned .shotlist JSON format. Writers always emit the current
// version; the reader accepts both the legacy single-scene version 1
// format and the multi-scene version 2 format, normalizing either into
// the in-memory multi-scene shape with every missing field defaulted.
package envelope

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/shotlist/internal/model"
)

// envelope is the on-disk shape. Pointer fields distinguish "absent"
// from zero so the loader can apply defaults without clobbering an
// explicit false.
type envelope struct {
	Version            int                  `json:"version"`
	ProjectName        string               `json:"projectName"`
	ColumnCount        int                  `json:"columnCount"`
	DefaultFocalLength string               `json:"defaultFocalLength"`
	Theme              string               `json:"theme"`
	AutoSave           *bool                `json:"autoSave"`
	UseDropdowns       *bool                `json:"useDropdowns"`
	CustomColumns      []model.CustomColumn `json:"customColumns,omitempty"`
	SpecOptions        map[string][]string  `json:"specOptions,omitempty"`
	Scenes             []sceneRecord        `json:"scenes,omitempty"`

	// Version 1 carried one implicit scene as flat fields plus a
	// top-level shot list.
	SceneLabel string       `json:"sceneLabel,omitempty"`
	Location   string       `json:"location,omitempty"`
	IntOrExt   string       `json:"intOrExt,omitempty"`
	CameraName string       `json:"cameraName,omitempty"`
	CameraBody string       `json:"cameraBody,omitempty"`
	PageNotes  string       `json:"pageNotes,omitempty"`
	Shots      []shotRecord `json:"shots,omitempty"`

	SavedAt string `json:"savedAt,omitempty"`
}

type sceneRecord struct {
	ID         string         `json:"id"`
	SceneLabel string         `json:"sceneLabel"`
	Location   string         `json:"location"`
	IntOrExt   string         `json:"intOrExt"`
	DayNight   string         `json:"dayNight"`
	Cameras    []model.Camera `json:"cameras"`
	PageNotes  string         `json:"pageNotes"`
	Shots      []shotRecord   `json:"shots"`
}

type shotRecord struct {
	ID             string          `json:"id"`
	CameraName     string          `json:"cameraName"`
	FocalLength    string          `json:"focalLength"`
	Color          string          `json:"color"`
	Image          string          `json:"image,omitempty"`
	ImageType      string          `json:"imageType,omitempty"`
	Specs          model.ShotSpecs `json:"specs"`
	Notes          string          `json:"notes"`
	Checked        bool            `json:"checked"`
	ScriptTime     string          `json:"scriptTime"`
	SetupTime      string          `json:"setupTime"`
	PredictedTakes string          `json:"predictedTakes"`
	ShootTime      string          `json:"shootTime"`
	TakeNumber     string          `json:"takeNumber"`
}

// Marshal serializes the project as a version 2 envelope, pretty
// printed the way the save files have always been written.
func Marshal(p *model.Project, savedAt time.Time) ([]byte, error) {
	env := envelope{
		Version:            model.EnvelopeVersion,
		ProjectName:        p.Name,
		ColumnCount:        p.ColumnCount,
		DefaultFocalLength: p.DefaultFocalLength,
		Theme:              p.Theme,
		AutoSave:           boolPtr(p.AutoSave),
		UseDropdowns:       boolPtr(p.UseDropdowns),
		CustomColumns:      p.CustomColumns,
		SpecOptions:        p.SpecOptions,
		SavedAt:            savedAt.UTC().Format(time.RFC3339),
	}
	env.Scenes = make([]sceneRecord, len(p.Scenes))
	for i := range p.Scenes {
		env.Scenes[i] = sceneToRecord(&p.Scenes[i])
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding project envelope: %w", err)
	}
	return data, nil
}

// Unmarshal parses either envelope version and normalizes it into a
// multi-scene project with all missing fields defaulted.
func Unmarshal(data []byte) (*model.Project, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing project envelope: %w", err)
	}

	p := &model.Project{
		Name:               orDefault(env.ProjectName, model.DefaultProjectName),
		ColumnCount:        env.ColumnCount,
		DefaultFocalLength: orDefault(env.DefaultFocalLength, model.DefaultFocalLength),
		Theme:              orDefault(env.Theme, model.DefaultTheme),
		AutoSave:           boolOrDefault(env.AutoSave, true),
		UseDropdowns:       boolOrDefault(env.UseDropdowns, true),
		CustomColumns:      env.CustomColumns,
		SpecOptions:        env.SpecOptions,
	}
	if p.ColumnCount < 2 || p.ColumnCount > 4 {
		p.ColumnCount = model.DefaultColumnCount
	}

	switch {
	case len(env.Scenes) > 0:
		p.Scenes = make([]model.Scene, len(env.Scenes))
		for i := range env.Scenes {
			p.Scenes[i] = recordToScene(&env.Scenes[i])
		}
	case env.Shots != nil || env.SceneLabel != "" || env.Version == 1:
		// Legacy single-scene file: synthesize one scene around the
		// top-level shot list.
		p.Scenes = []model.Scene{legacyScene(&env)}
	default:
		p.Scenes = []model.Scene{model.NewScene(model.DefaultSceneLabel)}
	}

	if len(p.Scenes) == 0 {
		p.Scenes = []model.Scene{model.NewScene(model.DefaultSceneLabel)}
	}

	return p, nil
}

func sceneToRecord(sc *model.Scene) sceneRecord {
	rec := sceneRecord{
		ID:         sc.ID,
		SceneLabel: sc.SceneLabel,
		Location:   sc.Location,
		IntOrExt:   sc.IntOrExt,
		DayNight:   sc.DayNight,
		Cameras:    sc.Cameras,
		PageNotes:  sc.PageNotes,
		Shots:      make([]shotRecord, len(sc.Shots)),
	}
	for i := range sc.Shots {
		s := &sc.Shots[i]
		rec.Shots[i] = shotRecord{
			ID:             s.ID,
			CameraName:     s.CameraName,
			FocalLength:    s.FocalLength,
			Color:          s.Color,
			Image:          s.Image,
			ImageType:      s.ImageType,
			Specs:          s.Specs,
			Notes:          s.Notes,
			Checked:        s.Checked,
			ScriptTime:     s.ScriptTime,
			SetupTime:      s.SetupTime,
			PredictedTakes: s.PredictedTakes,
			ShootTime:      s.ShootTime,
			TakeNumber:     s.TakeNumber,
		}
	}
	return rec
}

func recordToScene(rec *sceneRecord) model.Scene {
	sc := model.Scene{
		ID:         orDefault(rec.ID, uuid.New().String()),
		SceneLabel: orDefault(rec.SceneLabel, model.DefaultSceneLabel),
		Location:   orDefault(rec.Location, model.DefaultLocation),
		IntOrExt:   orDefault(rec.IntOrExt, model.IntExtInt),
		DayNight:   orDefault(rec.DayNight, model.DayNightDay),
		Cameras:    rec.Cameras,
		PageNotes:  rec.PageNotes,
		Shots:      make([]model.Shot, len(rec.Shots)),
	}
	if len(sc.Cameras) == 0 {
		sc.Cameras = []model.Camera{{Name: model.DefaultCameraName, Body: model.DefaultCameraBody}}
	}
	for i := range rec.Shots {
		sc.Shots[i] = recordToShot(&rec.Shots[i])
	}
	return sc
}

func recordToShot(rec *shotRecord) model.Shot {
	return model.Shot{
		ID:             orDefault(rec.ID, uuid.New().String()),
		CameraName:     orDefault(rec.CameraName, model.DefaultCameraName),
		FocalLength:    orDefault(rec.FocalLength, model.DefaultFocalLength),
		Color:          orDefault(rec.Color, model.DefaultCardColor),
		Image:          rec.Image,
		ImageType:      rec.ImageType,
		Specs:          rec.Specs,
		Notes:          rec.Notes,
		Checked:        rec.Checked,
		ScriptTime:     rec.ScriptTime,
		SetupTime:      rec.SetupTime,
		PredictedTakes: rec.PredictedTakes,
		ShootTime:      rec.ShootTime,
		TakeNumber:     rec.TakeNumber,
	}
}

// legacyScene builds the single synthesized scene for a version 1 file.
func legacyScene(env *envelope) model.Scene {
	sc := model.Scene{
		ID:         uuid.New().String(),
		SceneLabel: orDefault(env.SceneLabel, model.DefaultSceneLabel),
		Location:   orDefault(env.Location, model.DefaultLocation),
		IntOrExt:   orDefault(env.IntOrExt, model.IntExtInt),
		DayNight:   model.DayNightDay,
		Cameras: []model.Camera{{
			Name: orDefault(env.CameraName, model.DefaultCameraName),
			Body: orDefault(env.CameraBody, model.DefaultCameraBody),
		}},
		PageNotes: env.PageNotes,
		Shots:     make([]model.Shot, len(env.Shots)),
	}
	for i := range env.Shots {
		sc.Shots[i] = recordToShot(&env.Shots[i])
	}
	return sc
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func boolPtr(b bool) *bool { return &b }
