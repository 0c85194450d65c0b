package types

// Recipe is the result record of one search. It is immutable once merged;
// a new search replaces it wholesale, it is never partially updated.
type Recipe struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Cuisine     string   `json:"cuisine,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	TotalTime   string   `json:"totalTime,omitempty"`
	Calories    float64  `json:"calories,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Rating      float64  `json:"rating,omitempty"`
	ReviewCount string   `json:"reviewCount,omitempty"`

	// ImageData holds a data URI for the generated photo. Empty means the
	// image is absent, which is a normal state and not an error.
	ImageData string `json:"imageData,omitempty"`
}

// HasImage reports whether the recipe carries a generated photo.
func (r *Recipe) HasImage() bool {
	return r.ImageData != ""
}

// FilterKey identifies one of the search filters.
type FilterKey string

const (
	FilterCuisine        FilterKey = "cuisine"
	FilterTimeLimit      FilterKey = "timeLimit"
	FilterDifficulty     FilterKey = "difficulty"
	FilterMainIngredient FilterKey = "mainIngredient"
)

// FilterState holds the four optional search filters. Each field is either
// empty (unset) or a single selected value. Main ingredient is free text,
// the rest come from a fixed vocabulary owned by the client.
type FilterState struct {
	Cuisine        string `json:"cuisine"`
	TimeLimit      string `json:"timeLimit"`
	Difficulty     string `json:"difficulty"`
	MainIngredient string `json:"mainIngredient"`
}

// Toggle applies single-select semantics to one filter key: selecting the
// currently-active value clears it, any other value replaces it.
func (f *FilterState) Toggle(key FilterKey, value string) {
	field := f.field(key)
	if field == nil {
		return
	}
	if *field == value {
		*field = ""
		return
	}
	*field = value
}

// Get returns the current value for a filter key, empty when unset.
func (f *FilterState) Get(key FilterKey) string {
	if field := f.field(key); field != nil {
		return *field
	}
	return ""
}

func (f *FilterState) field(key FilterKey) *string {
	switch key {
	case FilterCuisine:
		return &f.Cuisine
	case FilterTimeLimit:
		return &f.TimeLimit
	case FilterDifficulty:
		return &f.Difficulty
	case FilterMainIngredient:
		return &f.MainIngredient
	default:
		return nil
	}
}
