// Package export turns a project snapshot into deliverables: paginated
// PDF pages, per-page PNG rasters, or a flat CSV shot listing. The
// pagination arithmetic is the load-bearing part; rasterization sits
// behind the PageRenderer interface so backends stay swappable.
package export

import (
	"github.com/nhle/shotlist/internal/model"
)

// Card is one shot placed on a page, with its display ID derived from
// the shot's position at pagination time.
type Card struct {
	model.Shot
	DisplayID string
}

// Page is the view-model for one printed page: the scene header plus a
// page's worth of cards. A scene's first page carries its full header;
// subsequent pages are marked continued.
type Page struct {
	SceneID    string
	SceneLabel string
	Location   string
	IntOrExt   string
	DayNight   string
	Cameras    []model.Camera
	PageNotes  string

	// ScenePage is this page's 1-based number within its scene,
	// ScenePages the scene's total.
	ScenePage  int
	ScenePages int
	Continued  bool

	Cards []Card
}

// CardsPerPage returns the page capacity for a column count: two rows
// of columnCount columns.
func CardsPerPage(columnCount int) int {
	if columnCount < 2 || columnCount > 4 {
		columnCount = model.DefaultColumnCount
	}
	return columnCount * 2
}

// Paginate lays the project out into pages. Every scene produces at
// least one page so a shotless scene still prints its header.
func Paginate(p *model.Project) []Page {
	per := CardsPerPage(p.ColumnCount)
	var pages []Page

	for i := range p.Scenes {
		sc := &p.Scenes[i]
		total := (len(sc.Shots) + per - 1) / per
		if total == 0 {
			total = 1
		}

		for pageNum := 1; pageNum <= total; pageNum++ {
			start := (pageNum - 1) * per
			end := start + per
			if end > len(sc.Shots) {
				end = len(sc.Shots)
			}

			page := Page{
				SceneID:    sc.ID,
				SceneLabel: sc.SceneLabel,
				Location:   sc.Location,
				IntOrExt:   sc.IntOrExt,
				DayNight:   sc.DayNight,
				Cameras:    sc.Cameras,
				PageNotes:  sc.PageNotes,
				ScenePage:  pageNum,
				ScenePages: total,
				Continued:  pageNum > 1,
			}
			for j := start; j < end; j++ {
				page.Cards = append(page.Cards, Card{
					Shot:      sc.Shots[j],
					DisplayID: model.DisplayID(sc.SceneLabel, j),
				})
			}
			pages = append(pages, page)
		}
	}
	return pages
}
