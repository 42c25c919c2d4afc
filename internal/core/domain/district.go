package domain

import "strings"

type District string

const (
	DistrictNorth   District = "north"
	DistrictSouth   District = "south"
	DistrictEast    District = "east"
	DistrictWest    District = "west"
	DistrictCentral District = "central"
)

// Districts is the fixed set of choices offered to voters, in display order.
var Districts = []District{DistrictNorth, DistrictSouth, DistrictEast, DistrictWest, DistrictCentral}

func ParseDistrict(s string) (District, error) {
	for _, d := range Districts {
		if string(d) == s {
			return d, nil
		}
	}
	return "", ErrUnknownDistrict
}

// Label returns the display name, e.g. "North District".
func (d District) Label() string {
	return DistrictLabel(string(d))
}

// DistrictLabel capitalizes a stored district value for display. Values
// outside the enumerated set are labelled the same way.
func DistrictLabel(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:] + " District"
}
