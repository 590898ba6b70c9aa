package dtos

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AddressSuggestion struct {
	PlaceName   string      `json:"placeName"`
	Coordinates Coordinates `json:"coordinates"`
}

type AddressSuggestions struct {
	Suggestions []AddressSuggestion `json:"suggestions"`
	// coordinates of the first suggestion
	Selected *Coordinates `json:"selected,omitempty"`
	NotFound bool         `json:"notFound"`
	Message  string       `json:"message,omitempty"`
}

type MapConfig struct {
	AccessToken string `json:"accessToken"`
	StyleURL    string `json:"styleUrl"`
}
