package service

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/forkcast/backend/internal/types"
)

// provenanceSources are the platforms the generated summary must credit as
// having informed the synthesized recipe.
var provenanceSources = []string{"TikTok", "Instagram", "Pinterest"}

// constraintDelimiter joins the active filter constraints in the prompt.
const constraintDelimiter = "; "

// Composer builds the natural-language instruction and the structured output
// schema for a recipe search.
type Composer struct {
	language string
}

// NewComposer creates a new Composer producing recipes in the given output
// language.
func NewComposer(language string) *Composer {
	return &Composer{language: language}
}

// BuildPrompt produces the generation instruction for the query and filter
// state. Only non-empty filters contribute constraints. Callers must not
// invoke this with both the query and the main-ingredient filter empty; that
// case is a validation failure handled before composition.
func (c *Composer) BuildPrompt(query string, filters types.FilterState) string {
	query = strings.TrimSpace(query)

	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "Create a complete recipe for: %s.", query)
	} else {
		fmt.Fprintf(&b, "Create a complete recipe for a dish built around %s.", strings.TrimSpace(filters.MainIngredient))
	}

	if constraints := activeConstraints(filters); len(constraints) > 0 {
		fmt.Fprintf(&b, " Constraints: %s.", strings.Join(constraints, constraintDelimiter))
	}

	fmt.Fprintf(&b, " Write every field in %s.", c.language)
	fmt.Fprintf(&b, " The summary must credit %s as the sources that informed this recipe.", humanJoin(provenanceSources))
	b.WriteString(" Respond with strict JSON matching the requested schema and nothing else.")

	return b.String()
}

func activeConstraints(filters types.FilterState) []string {
	var constraints []string
	if v := strings.TrimSpace(filters.Cuisine); v != "" {
		constraints = append(constraints, fmt.Sprintf("%s cuisine", v))
	}
	if v := strings.TrimSpace(filters.TimeLimit); v != "" {
		constraints = append(constraints, fmt.Sprintf("ready in %s", v))
	}
	if v := strings.TrimSpace(filters.Difficulty); v != "" {
		constraints = append(constraints, fmt.Sprintf("%s difficulty", v))
	}
	if v := strings.TrimSpace(filters.MainIngredient); v != "" {
		constraints = append(constraints, fmt.Sprintf("featuring %s as the main ingredient", v))
	}
	return constraints
}

func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// BuildSchema declares the structured output contract. Title, summary,
// ingredients and steps are mandatory; the remaining fields are best-effort.
func (c *Composer) BuildSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"summary":     {Type: genai.TypeString, Description: "Short summary crediting the platforms that informed the recipe"},
			"cuisine":     {Type: genai.TypeString},
			"difficulty":  {Type: genai.TypeString},
			"totalTime":   {Type: genai.TypeString, Description: "Total preparation and cooking time"},
			"calories":    {Type: genai.TypeNumber, Description: "Estimated calories per serving"},
			"ingredients": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"steps":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"rating":      {Type: genai.TypeNumber},
			"reviewCount": {Type: genai.TypeString},
		},
		Required: []string{"title", "summary", "ingredients", "steps"},
	}
}
