package model

import (
	"regexp"
	"strconv"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var sceneNumberRe = regexp.MustCompile(`\d+`)

// ShotLetter maps a zero-based shot index to its alphabetic label:
// A..Z for the first 26, then AA, AB, ... for the rest. Note the
// rollover is not bijective base 26: index 26 is AA because the first
// letter is floor(i/26)-1.
func ShotLetter(index int) string {
	if index < 0 {
		index = 0
	}
	if index < 26 {
		return string(letters[index])
	}
	first := index/26 - 1
	second := index % 26
	if first >= 26 {
		// Beyond ZZ the scheme is undefined; clamp rather than panic.
		first = 25
	}
	return string(letters[first]) + string(letters[second])
}

// SceneNumber extracts the numeric component of a scene label by taking
// the first integer substring ("SCENE 12" -> 12). Labels without a
// number default to 1.
func SceneNumber(sceneLabel string) int {
	m := sceneNumberRe.FindString(sceneLabel)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 1
	}
	return n
}

// DisplayID derives the human-readable shot label from the scene label
// and the shot's current index, e.g. ("SCENE 3", 2) -> "3C". It is
// recomputed on every read and must never be cached on the shot.
func DisplayID(sceneLabel string, index int) string {
	return strconv.Itoa(SceneNumber(sceneLabel)) + ShotLetter(index)
}
