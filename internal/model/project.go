package model

// EnvelopeVersion is the current project file format version.
// Version 1 files carry a single implicit scene with a top-level shot
// list; version 2 files carry an explicit scene array.
const EnvelopeVersion = 2

// Project is the root aggregate: an ordered list of scenes plus the
// display settings that apply across the whole document.
type Project struct {
	// Name is the user-facing project name, also used to derive the
	// default save filename.
	Name string `json:"projectName"`

	// ColumnCount is the number of card columns in the grid view.
	// Valid values are 2, 3 and 4.
	ColumnCount int `json:"columnCount"`

	// DefaultFocalLength seeds the focal length of newly added shots.
	DefaultFocalLength string `json:"defaultFocalLength"`

	// Theme is "light" or "dark".
	Theme string `json:"theme"`

	// AutoSave enables the periodic recovery snapshot.
	AutoSave bool `json:"autoSave"`

	// UseDropdowns selects constrained-choice spec fields over free text.
	UseDropdowns bool `json:"useDropdowns"`

	// CustomColumns holds user-defined extra columns for the tabular view.
	CustomColumns []CustomColumn `json:"customColumns,omitempty"`

	// SpecOptions holds user-extended dropdown option sets keyed by spec
	// field name ("size", "type", "move", "equip"). Absent keys fall back
	// to the built-in catalogs.
	SpecOptions map[string][]string `json:"specOptions,omitempty"`

	// Scenes is the ordered scene list. A project always contains at
	// least one scene; order is significant.
	Scenes []Scene `json:"scenes"`
}

// CustomColumn is a user-defined column in the tabular shotlist view.
type CustomColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Project defaults, matching the values a fresh document starts with.
const (
	DefaultProjectName = "Untitled Shotlist"
	DefaultColumnCount = 4
	DefaultFocalLength = "85mm"
	DefaultTheme       = "light"
	DefaultSceneLabel  = "SCENE 1"
	DefaultLocation    = "LOCATION"
	DefaultCameraName  = "Camera 1"
	DefaultCameraBody  = "fx30"
	DefaultPageNotes   = "*NOTE: \n*SHOOT ORDER: "
)

// NewProject returns a project with default settings and a single
// default scene containing an empty shot list.
func NewProject() *Project {
	return &Project{
		Name:               DefaultProjectName,
		ColumnCount:        DefaultColumnCount,
		DefaultFocalLength: DefaultFocalLength,
		Theme:              DefaultTheme,
		AutoSave:           true,
		UseDropdowns:       true,
		Scenes:             []Scene{NewScene(DefaultSceneLabel)},
	}
}

// ShotCount returns the total number of shots across all scenes.
func (p *Project) ShotCount() int {
	n := 0
	for i := range p.Scenes {
		n += len(p.Scenes[i].Shots)
	}
	return n
}

// SpecOptionsFor returns the dropdown options for the given spec field
// key: the built-in catalog followed by any project-level additions from
// SpecOptions that the catalog does not already carry.
func (p *Project) SpecOptionsFor(key string) []string {
	base := SpecCatalog[key]
	extra := p.SpecOptions[key]
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]bool, len(base))
	merged := make([]string, 0, len(base)+len(extra))
	for _, o := range base {
		seen[o] = true
		merged = append(merged, o)
	}
	for _, o := range extra {
		if !seen[o] {
			seen[o] = true
			merged = append(merged, o)
		}
	}
	return merged
}

// IsEmpty reports whether the project still carries only untouched
// defaults: no shots, the default name, and unedited scene headers. An
// autosave tick skips empty projects so a stale recovery snapshot is
// never overwritten by an untouched document.
func (p *Project) IsEmpty() bool {
	if p.ShotCount() > 0 || p.Name != DefaultProjectName {
		return false
	}
	for i := range p.Scenes {
		s := &p.Scenes[i]
		if s.Location != DefaultLocation || s.PageNotes != DefaultPageNotes {
			return false
		}
	}
	return true
}
