package model

import "github.com/google/uuid"

// CardColors is the fixed swatch palette offered by the color picker.
var CardColors = []string{
	"#4ade80", // green
	"#22d3ee", // cyan
	"#facc15", // yellow
	"#f87171", // red
	"#60a5fa", // blue
	"#fb923c", // orange
	"#c084fc", // purple
	"#f472b6", // pink
}

// DefaultCardColor is the color assigned to newly created shots.
const DefaultCardColor = "#4ade80"

// Built-in dropdown option catalogs for the four spec fields. Projects
// may extend these via Project.SpecOptions.
var (
	SizeOptions  = []string{"WIDE SHOT", "MEDIUM", "CLOSE UP", "OTS", "ECU", "INSERT", "ESTABLISHING"}
	TypeOptions  = []string{"EYE LVL", "SHOULDER LVL", "CROWD LVL", "HIGH ANGLE", "LOW ANGLE", "DUTCH"}
	MoveOptions  = []string{"STATIC", "PUSH", "PULL", "PAN", "TILT", "STATIC or PUSH", "TRACKING", "CRANE"}
	EquipOptions = []string{"STICKS", "GIMBAL", "HANDHELD", "STICKS or GIMBAL", "CRANE", "DOLLY", "STEADICAM"}
)

// SpecCatalog maps spec field keys to their built-in option lists.
var SpecCatalog = map[string][]string{
	"size":  SizeOptions,
	"type":  TypeOptions,
	"move":  MoveOptions,
	"equip": EquipOptions,
}

// ShotSpecs is the four-field shot descriptor. Each field holds either
// a catalog value or free text, depending on the project's input mode.
type ShotSpecs struct {
	Size  string `json:"size"`
	Type  string `json:"type"`
	Move  string `json:"move"`
	Equip string `json:"equip"`
}

// Shot is one storyboard card. Its position within the parent scene's
// shot slice is its ordering key; the display ID is derived from that
// position on every read and is deliberately absent here.
type Shot struct {
	// ID is an opaque creation-time unique token.
	ID string `json:"id"`

	CameraName  string `json:"cameraName"`
	FocalLength string `json:"focalLength"`

	// Color is the card swatch, one of CardColors by convention but any
	// hex string round-trips.
	Color string `json:"color"`

	// Image is the embedded reference image as base64, empty when the
	// card has no image. ImageType carries the MIME type.
	Image     string `json:"image,omitempty"`
	ImageType string `json:"imageType,omitempty"`

	Specs ShotSpecs `json:"specs"`
	Notes string    `json:"notes"`

	// Checked marks the shot as completed (rendered struck through).
	Checked bool `json:"checked"`

	// Assistant-director scheduling fields, all free text. ScriptTime
	// additionally parses as HH:MM:SS or MM:SS for aggregation.
	ScriptTime     string `json:"scriptTime"`
	SetupTime      string `json:"setupTime"`
	PredictedTakes string `json:"predictedTakes"`
	ShootTime      string `json:"shootTime"`
	TakeNumber     string `json:"takeNumber"`
}

// NewShot returns a shot with defaulted specs, the default card color,
// and the given camera name and focal length.
func NewShot(cameraName, focalLength string) Shot {
	return Shot{
		ID:          uuid.New().String(),
		CameraName:  cameraName,
		FocalLength: focalLength,
		Color:       DefaultCardColor,
		Specs: ShotSpecs{
			Size:  "WIDE SHOT",
			Type:  "EYE LVL",
			Move:  "STATIC",
			Equip: "STICKS",
		},
	}
}

// Clone returns a field-wise copy of the shot with a fresh identifier.
// Specs are copied by value so the duplicate is fully independent.
func (s Shot) Clone() Shot {
	dup := s
	dup.ID = uuid.New().String()
	return dup
}
