package domain

type View string

const (
	ViewVote      View = "vote"
	ViewResults   View = "results"
	ViewAnalytics View = "analytics"
)

var Views = []View{ViewVote, ViewResults, ViewAnalytics}

func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", ErrUnknownView
}

func (v View) Label() string {
	switch v {
	case ViewResults:
		return "Live Results"
	case ViewAnalytics:
		return "Analytics"
	default:
		return "Cast Vote"
	}
}
