package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"fete/internal/log"
	"fete/internal/party"
)

// Default lookup endpoints for the two recipe-shaped categories.
const (
	DefaultFoodBaseURL     = "https://www.themealdb.com/api/json/v1/1/search.php"
	DefaultCocktailBaseURL = "https://www.thecocktaildb.com/api/json/v1/1/search.php"
)

// recipeSchema describes how one recipe API names its fields. Both
// backends share the numbered strIngredientN/strMeasureN convention and
// differ only in key names and ingredient slots.
type recipeSchema struct {
	listKey        string // top-level array key ("meals" or "drinks")
	idKey          string
	nameKey        string
	thumbKey       string
	instructionKey string
	maxIngredients int
}

var (
	mealSchema = recipeSchema{
		listKey:        "meals",
		idKey:          "idMeal",
		nameKey:        "strMeal",
		thumbKey:       "strMealThumb",
		instructionKey: "strInstructions",
		maxIngredients: 20,
	}
	drinkSchema = recipeSchema{
		listKey:        "drinks",
		idKey:          "idDrink",
		nameKey:        "strDrink",
		thumbKey:       "strDrinkThumb",
		instructionKey: "strInstructions",
		maxIngredients: 15,
	}
)

// RecipeProvider searches a lookup API shaped like TheMealDB or
// TheCocktailDB and materializes recipe items.
type RecipeProvider struct {
	category party.Category
	baseURL  string
	schema   recipeSchema
	client   *http.Client
}

// NewFoodProvider creates the food recipe provider.
func NewFoodProvider(baseURL string, client *http.Client) *RecipeProvider {
	if baseURL == "" {
		baseURL = DefaultFoodBaseURL
	}
	return &RecipeProvider{
		category: party.CategoryFood,
		baseURL:  baseURL,
		schema:   mealSchema,
		client:   newHTTPClient(client),
	}
}

// NewCocktailProvider creates the cocktail recipe provider.
func NewCocktailProvider(baseURL string, client *http.Client) *RecipeProvider {
	if baseURL == "" {
		baseURL = DefaultCocktailBaseURL
	}
	return &RecipeProvider{
		category: party.CategoryCocktail,
		baseURL:  baseURL,
		schema:   drinkSchema,
		client:   newHTTPClient(client),
	}
}

// Search issues search.php?s={query} and maps each record into a recipe
// item with folded "measure ingredient" lines. An absent result list is
// an empty result, not an error; malformed records fail explicitly.
func (p *RecipeProvider) Search(ctx context.Context, query string, maxResults int) ([]*party.Item, error) {
	u := p.baseURL + "?s=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building %s search request: %w", p.category, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s search request: %w", p.category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s search: %w", p.category, statusError(resp))
	}

	// The list is null (not absent) when nothing matches, and every
	// field inside a record may be null, so decode loosely.
	var decoded map[string][]map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding %s search response: %w", p.category, err)
	}

	records := decoded[p.schema.listKey]
	items := make([]*party.Item, 0, len(records))
	for _, rec := range records {
		it, err := p.schema.materialize(rec)
		if err != nil {
			return nil, fmt.Errorf("malformed %s record: %w", p.category, err)
		}
		items = append(items, it)
	}
	if maxResults > 0 && len(items) > maxResults {
		items = items[:maxResults]
	}

	log.Info(log.CatSearch, "recipe search complete", "category", p.category, "query", query, "results", len(items))
	return items, nil
}

// materialize folds one raw record into a recipe item.
func (s recipeSchema) materialize(rec map[string]any) (*party.Item, error) {
	id := stringField(rec, s.idKey)
	name := stringField(rec, s.nameKey)
	thumb := stringField(rec, s.thumbKey)
	instructions := stringField(rec, s.instructionKey)

	var ingredients []string
	for i := 1; i <= s.maxIngredients; i++ {
		ingredient := strings.TrimSpace(stringField(rec, fmt.Sprintf("strIngredient%d", i)))
		if ingredient == "" {
			continue
		}
		measure := strings.TrimSpace(stringField(rec, fmt.Sprintf("strMeasure%d", i)))
		if measure != "" {
			ingredients = append(ingredients, measure+" "+ingredient)
		} else {
			ingredients = append(ingredients, ingredient)
		}
	}

	return party.NewRecipeItem(id, name, thumb, ingredients, instructions)
}

// stringField pulls a string out of a loosely decoded record; null and
// missing fields read as empty.
func stringField(rec map[string]any, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}
