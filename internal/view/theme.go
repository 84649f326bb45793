package view

// Theme is the single user-facing appearance switch. It only feeds Chrome;
// board squares and piece images never depend on it.
type Theme struct {
	Dark bool `json:"dark"`
}

// Chrome holds the colors around the board.
type Chrome struct {
	Background   string `json:"background"`
	Container    string `json:"container"`
	HistoryPanel string `json:"historyPanel"`
	Text         string `json:"text"`
	ToggleFill   string `json:"toggleFill"`
	ToggleText   string `json:"toggleText"`
	ToggleLabel  string `json:"toggleLabel"`
}

func (t Theme) Toggled() Theme {
	return Theme{Dark: !t.Dark}
}

func (t Theme) Chrome() Chrome {
	if t.Dark {
		return Chrome{
			Background:   "#1c1c1c",
			Container:    "#2b2b2b",
			HistoryPanel: "#2a2a2a",
			Text:         "#ffffff",
			ToggleFill:   "#ffffff",
			ToggleText:   "#000000",
			ToggleLabel:  "Light Mode",
		}
	}
	return Chrome{
		Background:   "#f5f5f5",
		Container:    "#f5f5f5",
		HistoryPanel: "#ffffff",
		Text:         "#000000",
		ToggleFill:   "#1c1c1c",
		ToggleText:   "#ffffff",
		ToggleLabel:  "Dark Mode",
	}
}

// BoardColors are fixed for every theme.
type BoardColors struct {
	Shaded       string `json:"shaded"`
	Plain        string `json:"plain"`
	Border       string `json:"border"`
	LabelShaded  string `json:"labelShaded"`
	LabelPlain   string `json:"labelPlain"`
	LegalMarker  string `json:"legalMarker"`
	SelectedRing string `json:"selectedRing"`
}

var DefaultBoardColors = BoardColors{
	Shaded:       "#5084b2",
	Plain:        "#ffffff",
	Border:       "gray",
	LabelShaded:  "#ffffff",
	LabelPlain:   "#000000",
	LegalMarker:  "#1E90FF",
	SelectedRing: "#f4c542",
}
