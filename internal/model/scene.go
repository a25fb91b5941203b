package model

import "github.com/google/uuid"

// Interior/exterior values, cycled in this order by the scene header.
const (
	IntExtInt  = "INT"
	IntExtExt  = "EXT"
	IntExtBoth = "INT/EXT"
)

// Day/night values, cycled in this order by the scene header.
const (
	DayNightDay   = "DAY"
	DayNightNight = "NIGHT"
	DayNightBoth  = "DAY/NIGHT"
)

// Camera is one camera line in a scene header: a display name paired
// with the camera body it refers to.
type Camera struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Scene is one slugline-level unit: location context plus an ordered
// shot list. Shot order within the slice is the ordering key; display
// IDs are derived from it and never stored.
type Scene struct {
	// ID is an opaque identifier assigned at creation, never reused.
	ID string `json:"id"`

	// SceneLabel is free text, conventionally "SCENE n". The first
	// integer substring is the numeric component of shot display IDs.
	SceneLabel string `json:"sceneLabel"`

	Location string `json:"location"`

	// IntOrExt is one of the IntExt* constants.
	IntOrExt string `json:"intOrExt"`

	// DayNight is one of the DayNight* constants.
	DayNight string `json:"dayNight"`

	// Cameras lists the cameras covering this scene. A scene always
	// has at least one camera line.
	Cameras []Camera `json:"cameras"`

	// PageNotes is the free-text note block printed in the page header.
	PageNotes string `json:"pageNotes"`

	// Shots is the ordered shot list.
	Shots []Shot `json:"shots"`
}

// NewScene returns a scene with defaulted fields and an empty shot list.
func NewScene(label string) Scene {
	return Scene{
		ID:         uuid.New().String(),
		SceneLabel: label,
		Location:   DefaultLocation,
		IntOrExt:   IntExtInt,
		DayNight:   DayNightDay,
		Cameras:    []Camera{{Name: DefaultCameraName, Body: DefaultCameraBody}},
		PageNotes:  DefaultPageNotes,
		Shots:      []Shot{},
	}
}

// CycleIntExt returns the value following cur in the INT → EXT →
// INT/EXT cycle. Unknown input resets to INT.
func CycleIntExt(cur string) string {
	switch cur {
	case IntExtInt:
		return IntExtExt
	case IntExtExt:
		return IntExtBoth
	default:
		return IntExtInt
	}
}

// CycleDayNight returns the value following cur in the DAY → NIGHT →
// DAY/NIGHT cycle. Unknown input resets to DAY.
func CycleDayNight(cur string) string {
	switch cur {
	case DayNightDay:
		return DayNightNight
	case DayNightNight:
		return DayNightBoth
	default:
		return DayNightDay
	}
}
