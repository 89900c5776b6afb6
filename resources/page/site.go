package page

import (
	"github.com/sunwei/pagegen/common/maps"
)

// SiteInfo is the site wide data handed to every template as "site".
type SiteInfo struct {
	Title   string
	BaseURL string
	Params  maps.Params
}

// ToMap returns the template view of s.
func (s SiteInfo) ToMap() map[string]any {
	params := s.Params
	if params == nil {
		params = make(maps.Params)
	}
	return map[string]any{
		"title":   s.Title,
		"baseurl": s.BaseURL,
		"params":  params,
	}
}
