package geoip

// Location is the coarse tuple the rest of the system consumes. Field names
// follow the ipapi.co response body.
type Location struct {
	City        string `json:"city"`
	Postal      string `json:"postal"`
	RegionCode  string `json:"region_code"`
	CountryCode string `json:"country_code"`
}
