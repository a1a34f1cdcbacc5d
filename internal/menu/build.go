package menu

import (
	"navmenu/internal/lookup"
	"navmenu/internal/models"
)

// Build assembles the full sidebar tree from one fetch pass.
// Sources that could not be fetched yield empty sections.
func Build(c models.Collections, tables lookup.Tables) []models.MenuNode {
	return []models.MenuNode{
		{
			ID:          "absolute-india",
			Name:        "ABSOLUTE INDIA",
			HasDropdown: models.Flag(true),
			Submenu: []models.MenuNode{
				{
					ID:         "destinations",
					Name:       "Destinations",
					HasSubmenu: models.Flag(true),
					Submenu:    IndianDestinations(c.IndianDestinations, tables),
					Weblink:    "/india/destinations-in-india",
				},
				{
					ID:         "excellence",
					Name:       "Excellence",
					HasSubmenu: models.Flag(false),
					Weblink:    "/india/indian-excellence",
				},
				{
					ID:         "experiences",
					Name:       "Experiences",
					HasSubmenu: models.Flag(true),
					Submenu:    IndianExperiences(c.IndianExperiences),
					Weblink:    "/india/experiences-in-india",
				},
			},
		},
		{
			ID:          "absolute-world",
			Name:        "ABSOLUTE WORLD",
			HasDropdown: models.Flag(true),
			Submenu:     WorldDestinations(c.WorldDestinations, tables),
		},
		staticLink("absolute-air", "ABSOLUTE AIR", "/private-jet-journeys"),
		staticLink("aurora", "AURORA", "/aurora"),
		staticLink("journal", "JOURNAL", "/journal"),
		staticLink("about-us", "ABOUT US", "/about-us"),
		staticLink("covid-safety", "COVID SAFETY & TRAVEL", "/covid-safety-travel"),
	}
}

func staticLink(id, name, weblink string) models.MenuNode {
	return models.MenuNode{
		ID:          id,
		Name:        name,
		HasDropdown: models.Flag(false),
		Weblink:     weblink,
	}
}
