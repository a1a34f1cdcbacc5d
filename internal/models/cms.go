package models

// ItemMeta is the publication metadata carried by every CMS collection item.
type ItemMeta struct {
	ID            string  `json:"id"`
	CMSLocaleID   *string `json:"cmsLocaleId"`
	LastPublished string  `json:"lastPublished"`
	LastUpdated   string  `json:"lastUpdated"`
	CreatedOn     string  `json:"createdOn"`
	IsArchived    bool    `json:"isArchived"`
	IsDraft       bool    `json:"isDraft"`
}

// Pagination is the paging envelope returned with every collection listing.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// DestinationFields holds the field data of an Indian destination item.
type DestinationFields struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Weblink string `json:"weblink"`
	Region  string `json:"region"`
	State   string `json:"state"`
}

// DestinationItem is one item of the Indian destinations collection.
type DestinationItem struct {
	ItemMeta
	FieldData DestinationFields `json:"fieldData"`
}

// DestinationList is the listing response of the Indian destinations collection.
type DestinationList struct {
	Items      []DestinationItem `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// Image is an asset reference inside world item field data.
type Image struct {
	FileID string  `json:"fileId"`
	URL    string  `json:"url"`
	Alt    *string `json:"alt"`
}

// WorldFields holds the field data of a world destination or Indian experience item.
type WorldFields struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Summary           string   `json:"summary,omitempty"`
	Duration          string   `json:"duration,omitempty"`
	Brief             string   `json:"brief,omitempty"`
	InternalReference string   `json:"internal-reference,omitempty"`
	Locations         string   `json:"location-s,omitempty"`
	Image             *Image   `json:"image,omitempty"`
	TypeOfListing     string   `json:"type-of-listing,omitempty"`
	Continents        []string `json:"continent-2,omitempty"`
	MetaTitle         string   `json:"meta-title,omitempty"`
	MetaDescription   string   `json:"meta-description,omitempty"`
}

// WorldItem is one item of the world destinations or Indian experiences collection.
type WorldItem struct {
	ItemMeta
	FieldData WorldFields `json:"fieldData"`
}

// WorldList is the listing response of a world-shaped collection.
type WorldList struct {
	Items      []WorldItem `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// Collections is the outcome of one fetch pass over the three CMS sources.
// A nil field means that source could not be fetched.
type Collections struct {
	IndianDestinations *DestinationList
	IndianExperiences  *WorldList
	WorldDestinations  *WorldList
}
