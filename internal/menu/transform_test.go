package menu

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"navmenu/internal/lookup"
	"navmenu/internal/models"
)

const (
	regionNorth = "399ad996ae4c7d73d6c76c23f37d82d6"
	regionSouth = "76d61dac8cc6e4cf742c8471d132c94e"
	regionWest  = "3ea253ded5d0f891c3cad2351dd53cdc"
	stateDelhi  = "0752d49ff4b7934a8e62cceb9f5106e7"
	statePunjab = "e15b91e12a0e6e8bd81c272605b1fb4c"
	stateKerala = "77409c58b0af6aae372478b002b2fb6f"
	stateGoa    = "6074830e229351dfef112987140a57ad"

	typeDestinations = "620b8a0b09a31621fedde23e"
	typeExpedition   = "620b8a0b09a3161b42dde242"
	continentEurope  = "620b8a0b09a316172bdde0f6"
	continentAsia    = "620b8a0b09a31674a9dde0d0"
	continentAfrica  = "620b8a0b09a3165815dde0a8"
)

func destination(region, state, name, slug string) models.DestinationItem {
	return models.DestinationItem{
		ItemMeta: models.ItemMeta{ID: "item-" + slug},
		FieldData: models.DestinationFields{
			Name:    name,
			Slug:    slug,
			Weblink: SitePrefix + slug,
			Region:  region,
			State:   state,
		},
	}
}

func worldItem(listingType, ref, slug string, continents ...string) models.WorldItem {
	return models.WorldItem{
		ItemMeta: models.ItemMeta{ID: "item-" + slug},
		FieldData: models.WorldFields{
			Name:              strings.ToUpper(ref),
			Slug:              slug,
			InternalReference: ref,
			TypeOfListing:     listingType,
			Continents:        continents,
		},
	}
}

func findNode(nodes []models.MenuNode, id string) *models.MenuNode {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	return nil
}

func walkLeaves(nodes []models.MenuNode, fn func(models.MenuNode)) {
	for _, n := range nodes {
		if n.IsLeaf() {
			fn(n)
			continue
		}
		walkLeaves(n.Submenu, fn)
	}
}

func TestIndianDestinations_SingleItem(t *testing.T) {
	list := &models.DestinationList{Items: []models.DestinationItem{
		destination(regionNorth, stateDelhi, "Qutub Minar", "qutub-minar"),
	}}

	regions := IndianDestinations(list, lookup.Default())

	north := findNode(regions, "north")
	if north == nil {
		t.Fatal("north region missing")
	}
	if north.Name != "NORTH" {
		t.Errorf("region name = %q, want NORTH", north.Name)
	}
	if len(north.Submenu) != 1 {
		t.Fatalf("north has %d states, want 1", len(north.Submenu))
	}
	delhi := north.Submenu[0]
	if delhi.ID != "delhi" || delhi.Name != "Delhi" {
		t.Errorf("state = {%q, %q}, want {delhi, Delhi}", delhi.ID, delhi.Name)
	}
	if len(delhi.Submenu) != 1 {
		t.Fatalf("delhi has %d cities, want 1", len(delhi.Submenu))
	}
	want := models.MenuNode{ID: "qutub-minar", Name: "Qutub Minar", Weblink: "/qutub-minar"}
	got := delhi.Submenu[0]
	if got.ID != want.ID || got.Name != want.Name || got.Weblink != want.Weblink {
		t.Errorf("city = %+v, want %+v", got, want)
	}
}

func TestIndianDestinations_RegionOrderFollowsTable(t *testing.T) {
	list := &models.DestinationList{Items: []models.DestinationItem{
		destination(regionWest, stateGoa, "Panjim", "panjim"),
		destination(regionSouth, stateKerala, "Kochi", "kochi"),
		destination(regionNorth, stateDelhi, "Qutub Minar", "qutub-minar"),
	}}

	regions := IndianDestinations(list, lookup.Default())

	var ids []string
	for _, r := range regions {
		ids = append(ids, r.ID)
	}
	if got, want := strings.Join(ids, ","), "north,east,south,west"; got != want {
		t.Errorf("region order = %s, want %s", got, want)
	}
	if east := findNode(regions, "east"); east == nil || len(east.Submenu) != 0 {
		t.Errorf("east region should be present without states, got %+v", east)
	}
}

func TestIndianDestinations_FirstSeenStateAndCityOrder(t *testing.T) {
	list := &models.DestinationList{Items: []models.DestinationItem{
		destination(regionNorth, statePunjab, "Amritsar", "amritsar"),
		destination(regionNorth, stateDelhi, "Qutub Minar", "qutub-minar"),
		destination(regionNorth, statePunjab, "Patiala", "patiala"),
		destination(regionNorth, stateDelhi, "Red Fort", "red-fort"),
	}}

	north := findNode(IndianDestinations(list, lookup.Default()), "north")
	if north == nil || len(north.Submenu) != 2 {
		t.Fatalf("north = %+v, want two states", north)
	}
	if north.Submenu[0].Name != "Punjab" || north.Submenu[1].Name != "Delhi" {
		t.Errorf("state order = %s, %s; want Punjab, Delhi", north.Submenu[0].Name, north.Submenu[1].Name)
	}
	punjab := north.Submenu[0]
	if punjab.Submenu[0].ID != "amritsar" || punjab.Submenu[1].ID != "patiala" {
		t.Errorf("city order in Punjab = %s, %s", punjab.Submenu[0].ID, punjab.Submenu[1].ID)
	}
}

func TestIndianDestinations_DropsUnknownClassification(t *testing.T) {
	list := &models.DestinationList{Items: []models.DestinationItem{
		destination("unknown-region", stateDelhi, "Ghost A", "ghost-a"),
		destination(regionNorth, "unknown-state", "Ghost B", "ghost-b"),
		destination(regionNorth, stateDelhi, "Qutub Minar", "qutub-minar"),
	}}

	regions := IndianDestinations(list, lookup.Default())

	walkLeaves(regions, func(n models.MenuNode) {
		if strings.HasPrefix(n.ID, "ghost") {
			t.Errorf("unclassified item %q present in output", n.ID)
		}
	})
	out, _ := json.Marshal(regions)
	if bytes.Contains(out, []byte("Ghost")) {
		t.Errorf("unclassified item leaked into output: %s", out)
	}
}

func TestIndianDestinations_MultiWordStateIsKebabCased(t *testing.T) {
	tables := lookup.Default()
	list := &models.DestinationList{Items: []models.DestinationItem{
		destination(regionSouth, "00907620a08c8e173db6a11d6388bf88", "Madurai", "madurai"),
	}}

	south := findNode(IndianDestinations(list, tables), "south")
	if south == nil || len(south.Submenu) != 1 {
		t.Fatalf("south = %+v", south)
	}
	if south.Submenu[0].ID != "tamil-nadu" {
		t.Errorf("state id = %q, want tamil-nadu", south.Submenu[0].ID)
	}
}

func TestIndianDestinations_NilList(t *testing.T) {
	regions := IndianDestinations(nil, lookup.Default())
	if len(regions) != 4 {
		t.Fatalf("got %d regions, want 4", len(regions))
	}
	for _, r := range regions {
		if len(r.Submenu) != 0 {
			t.Errorf("region %q has states for nil input", r.ID)
		}
	}
}

func TestIndianExperiences(t *testing.T) {
	list := &models.WorldList{Items: []models.WorldItem{
		{FieldData: models.WorldFields{Name: "Tiger Safari", Slug: "tiger-safari"}},
		{FieldData: models.WorldFields{Name: "Houseboat", Slug: "houseboat"}},
	}}

	got := IndianExperiences(list)
	if len(got) != 2 {
		t.Fatalf("got %d experiences, want 2", len(got))
	}
	if got[0].Weblink != "/indian-experiences/tiger-safari" {
		t.Errorf("weblink = %q", got[0].Weblink)
	}
	if got[1].ID != "houseboat" || got[1].Name != "Houseboat" {
		t.Errorf("second experience = %+v", got[1])
	}
	if IndianExperiences(nil) != nil {
		t.Error("IndianExperiences(nil) should be nil")
	}
}

func TestWorldDestinations_Sections(t *testing.T) {
	got := WorldDestinations(nil, lookup.Default())

	wantIDs := []string{"self-drive-tours", "destinations", "expedition", "magical", "remote"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d sections, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("section[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
	if *got[1].HasSubmenu != true {
		t.Error("destinations should drill down")
	}
	for _, s := range got[2:] {
		if *s.HasSubmenu {
			t.Errorf("section %q should not drill down", s.ID)
		}
		if s.Weblink != "/world/"+s.ID {
			t.Errorf("section %q weblink = %q", s.ID, s.Weblink)
		}
		if len(s.Submenu) != 0 {
			t.Errorf("empty section %q has children", s.ID)
		}
	}
	if iceland := got[0].Submenu[0]; iceland.ID != "iceland" {
		t.Errorf("self drive submenu = %+v", got[0].Submenu)
	}
}

func TestWorldDestinations_MultipleContinents(t *testing.T) {
	list := &models.WorldList{Items: []models.WorldItem{
		worldItem(typeExpedition, "Silk Road", "silk-road", continentEurope, continentAsia),
		worldItem(typeDestinations, "Serengeti", "serengeti", continentAfrica),
	}}

	sections := WorldDestinations(list, lookup.Default())

	expedition := findNode(sections, "expedition")
	if expedition == nil || len(expedition.Submenu) != 2 {
		t.Fatalf("expedition = %+v, want two continents", expedition)
	}
	if expedition.Submenu[0].ID != "europe" || expedition.Submenu[1].ID != "asia" {
		t.Errorf("continent order = %s, %s", expedition.Submenu[0].ID, expedition.Submenu[1].ID)
	}
	for _, c := range expedition.Submenu {
		if len(c.Submenu) != 1 || c.Submenu[0].ID != "silk-road" {
			t.Errorf("continent %q = %+v", c.ID, c.Submenu)
		}
		if c.Submenu[0].Name != "Silk Road" || c.Submenu[0].Weblink != "/absolute-world/silk-road" {
			t.Errorf("leaf = %+v", c.Submenu[0])
		}
	}

	count := 0
	walkLeaves(sections, func(n models.MenuNode) {
		if n.ID == "silk-road" {
			count++
		}
	})
	if count != 2 {
		t.Errorf("silk-road appears %d times, want 2", count)
	}

	destinations := findNode(sections, "destinations")
	if destinations == nil || len(destinations.Submenu) != 1 || destinations.Submenu[0].Name != "Africa" {
		t.Errorf("destinations = %+v", destinations)
	}
}

func TestWorldDestinations_DropsUnknownIDs(t *testing.T) {
	list := &models.WorldList{Items: []models.WorldItem{
		worldItem("unknown-type", "Nowhere", "nowhere", continentEurope),
		worldItem(typeExpedition, "Half Known", "half-known", "unknown-continent", continentAsia),
	}}

	sections := WorldDestinations(list, lookup.Default())

	walkLeaves(sections, func(n models.MenuNode) {
		if n.ID == "nowhere" {
			t.Error("item with unknown listing type present")
		}
	})
	expedition := findNode(sections, "expedition")
	if len(expedition.Submenu) != 1 || expedition.Submenu[0].ID != "asia" {
		t.Errorf("expedition = %+v, want only asia", expedition.Submenu)
	}
}

func TestWorldDestinations_NameFallsBackToItemName(t *testing.T) {
	item := worldItem(typeExpedition, "", "arctic", continentEurope)
	item.FieldData.Name = "Arctic"

	sections := WorldDestinations(&models.WorldList{Items: []models.WorldItem{item}}, lookup.Default())

	leaf := findNode(sections, "expedition").Submenu[0].Submenu[0]
	if leaf.Name != "Arctic" {
		t.Errorf("leaf name = %q, want Arctic", leaf.Name)
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Delhi", "delhi"},
		{"Andaman and Nicobar Islands", "andaman-and-nicobar-islands"},
		{"South  America", "south-america"},
		{" Tamil Nadu ", "tamil-nadu"},
	}
	for _, tt := range tests {
		if got := kebab(tt.in); got != tt.want {
			t.Errorf("kebab(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
