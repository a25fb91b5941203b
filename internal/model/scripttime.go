package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseScriptTime parses a shot's script time as HH:MM:SS or MM:SS.
// The field is free text, so anything that does not match either form
// returns an error and is excluded from aggregation.
func ParseScriptTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty script time")
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("script time %q: want MM:SS or HH:MM:SS", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("script time %q: bad component %q", s, p)
		}
		nums[i] = n
	}

	var d time.Duration
	if len(nums) == 2 {
		d = time.Duration(nums[0])*time.Minute + time.Duration(nums[1])*time.Second
	} else {
		d = time.Duration(nums[0])*time.Hour +
			time.Duration(nums[1])*time.Minute +
			time.Duration(nums[2])*time.Second
	}
	return d, nil
}

// FormatScriptTime renders a duration as HH:MM:SS, the canonical form
// used for scene and project totals.
func FormatScriptTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// TotalScriptTime sums the parseable script times of the given shots.
// Unparseable or empty fields are skipped.
func TotalScriptTime(shots []Shot) time.Duration {
	var total time.Duration
	for i := range shots {
		d, err := ParseScriptTime(shots[i].ScriptTime)
		if err != nil {
			continue
		}
		total += d
	}
	return total
}
