// Package menu turns raw CMS collection listings into the navigation tree
// rendered by the sidebar widget.
package menu

import (
	"regexp"
	"strings"

	"navmenu/internal/lookup"
	"navmenu/internal/models"
	"navmenu/internal/validation"
)

// SitePrefix is the production domain stripped from destination weblinks.
const SitePrefix = "https://www.theabsolutejourney.com/"

// Path prefixes for generated leaf weblinks.
const (
	experiencesPath = "/indian-experiences/"
	worldItemPath   = "/absolute-world/"
	worldTypePath   = "/world/"
)

var whitespace = regexp.MustCompile(`\s+`)

// kebab lowercases a label and joins its words with hyphens.
func kebab(label string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), "-")
}

// IndianDestinations builds the region → state → city tree.
// Regions follow the region table order; states and cities follow first-seen
// order. Items with an unknown region or state are dropped.
func IndianDestinations(list *models.DestinationList, tables lookup.Tables) []models.MenuNode {
	regions := newNestedGroup[models.MenuNode]()
	if list != nil {
		for _, item := range list.Items {
			f := item.FieldData
			region, ok := tables.Regions.Label(f.Region)
			if !ok {
				continue
			}
			state, ok := tables.States.Label(f.State)
			if !ok {
				continue
			}
			regions.add(region, state, models.MenuNode{
				ID:      f.Slug,
				Name:    f.Name,
				Weblink: validation.RootRelative(f.Weblink, SitePrefix),
			})
		}
	}

	seen := make(map[string]bool, tables.Regions.Len())
	out := make([]models.MenuNode, 0, tables.Regions.Len())
	for _, region := range tables.Regions.Labels() {
		if seen[region] {
			continue
		}
		seen[region] = true

		node := models.MenuNode{
			ID:   strings.ToLower(region),
			Name: strings.ToUpper(region),
		}
		regions.get(region).each(func(state string, cities []models.MenuNode) {
			node.Submenu = append(node.Submenu, models.MenuNode{
				ID:      kebab(state),
				Name:    state,
				Submenu: cities,
			})
		})
		out = append(out, node)
	}
	return out
}

// IndianExperiences builds the flat experiences list.
func IndianExperiences(list *models.WorldList) []models.MenuNode {
	if list == nil {
		return nil
	}
	out := make([]models.MenuNode, 0, len(list.Items))
	for _, item := range list.Items {
		out = append(out, models.MenuNode{
			ID:      item.FieldData.Slug,
			Name:    item.FieldData.Name,
			Weblink: experiencesPath + item.FieldData.Slug,
		})
	}
	return out
}

type worldSection struct {
	listingType string
	drillDown   bool
}

// worldSections is the fixed order of the listing-type sections.
var worldSections = []worldSection{
	{lookup.TypeDestinations, true},
	{lookup.TypeExpedition, false},
	{lookup.TypeMagical, false},
	{lookup.TypeRemote, false},
}

func selfDriveTours() models.MenuNode {
	return models.MenuNode{
		ID:         "self-drive-tours",
		Name:       "Self-Drive Tours",
		HasSubmenu: models.Flag(true),
		Weblink:    "/destinations/iceland-selfdrive",
		Submenu: []models.MenuNode{
			{ID: "iceland", Name: "Iceland", Weblink: "/destinations/iceland-selfdrive"},
		},
	}
}

// WorldDestinations builds the listing-type → continent → destination tree.
// An item listed under several continents appears once under each of them.
// A listing type with no items yields a section without children.
func WorldDestinations(list *models.WorldList, tables lookup.Tables) []models.MenuNode {
	byType := newNestedGroup[models.MenuNode]()
	if list != nil {
		for _, item := range list.Items {
			f := item.FieldData
			listingType, ok := tables.ListingTypes.Label(f.TypeOfListing)
			if !ok {
				continue
			}
			name := f.InternalReference
			if name == "" {
				name = f.Name
			}
			for _, id := range f.Continents {
				continent, ok := tables.Continents.Label(id)
				if !ok {
					continue
				}
				byType.add(listingType, continent, models.MenuNode{
					ID:      f.Slug,
					Name:    name,
					Weblink: worldItemPath + f.Slug,
				})
			}
		}
	}

	out := make([]models.MenuNode, 0, len(worldSections)+1)
	out = append(out, selfDriveTours())
	for _, s := range worldSections {
		id := kebab(s.listingType)
		node := models.MenuNode{
			ID:         id,
			Name:       s.listingType,
			HasSubmenu: models.Flag(s.drillDown),
			Weblink:    worldTypePath + id,
		}
		byType.get(s.listingType).each(func(continent string, items []models.MenuNode) {
			node.Submenu = append(node.Submenu, models.MenuNode{
				ID:      kebab(continent),
				Name:    continent,
				Submenu: items,
			})
		})
		out = append(out, node)
	}
	return out
}
