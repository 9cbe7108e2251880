package kml

// Link locates a remote resource and controls how often it is refreshed.
type Link struct {
	ID              string
	Href            *string
	RefreshMode     RefreshMode
	RefreshInterval float64
	ViewRefreshMode ViewRefreshMode
	ViewRefreshTime float64
	ViewBoundScale  float64
	ViewFormat      *string
	HTTPQuery       *string
	Attrs           map[string]string
}

// NewLink returns a Link with KML defaults.
func NewLink() *Link {
	return &Link{RefreshInterval: 4, ViewRefreshTime: 4, ViewBoundScale: 1}
}

// Icon is the image variant of Link, used on its own and inside IconStyle.
type Icon Link

// NewIcon returns an Icon with KML defaults.
func NewIcon() *Icon {
	return (*Icon)(NewLink())
}

func (*Link) Tag() string { return "Link" }
func (*Icon) Tag() string { return "Icon" }

func (*Link) kml() {}
func (*Icon) kml() {}
