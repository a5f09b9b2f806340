package catalog

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"techzone/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Sort keys accepted by the catalog.
const (
	SortPopular   = "popular"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
	SortRating    = "rating"
)

// Filter is the one definition of catalog filtering. The in-memory
// evaluator (Apply) and the Mongo translator (Selector/SortDoc) both
// consume it, so the two paths cannot drift apart.
type Filter struct {
	Category string  // empty or "all" leaves category unconstrained
	MinPrice float64 // inclusive
	MaxPrice float64 // inclusive; 0 means unbounded
	Text     string  // case-insensitive substring over name, description, category
	Sort     string  // one of the Sort* keys; anything else falls back to popular
}

// FromQuery reads a filter from request query parameters.
func FromQuery(values url.Values) Filter {
	f := Filter{
		Category: values.Get("category"),
		Text:     values.Get("q"),
		Sort:     values.Get("sort"),
	}
	if v, err := strconv.ParseFloat(values.Get("min"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(values.Get("max"), 64); err == nil {
		f.MaxPrice = v
	}
	return f
}

func (f Filter) categoryConstrained() bool {
	return f.Category != "" && !strings.EqualFold(f.Category, "all")
}

// Matches reports whether a single product satisfies the filter.
func (f Filter) Matches(p models.Product) bool {
	if f.categoryConstrained() && p.Category != f.Category {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			return false
		}
	}
	return true
}

// Apply filters and sorts an in-memory product list. The sort is
// stable, so ties keep their incoming relative order.
func (f Filter) Apply(products []models.Product) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			result = append(result, p)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	default: // popular
		sort.SliceStable(result, func(i, j int) bool { return result[i].Reviews > result[j].Reviews })
	}
	return result
}

// Selector translates the same predicate into a Mongo filter document.
func (f Filter) Selector() bson.M {
	selector := bson.M{}

	if f.categoryConstrained() {
		selector["category"] = f.Category
	}

	price := bson.M{}
	if f.MinPrice > 0 {
		price["$gte"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		price["$lte"] = f.MaxPrice
	}
	if len(price) > 0 {
		selector["price"] = price
	}

	if f.Text != "" {
		pattern := regexp.QuoteMeta(f.Text)
		regex := bson.M{"$regex": pattern, "$options": "i"}
		selector["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
			{"category": regex},
		}
	}

	return selector
}

// SortDoc translates the sort key for options.Find().SetSort.
func (f Filter) SortDoc() bson.D {
	switch f.Sort {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	default:
		return bson.D{{Key: "reviews", Value: -1}}
	}
}
