package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"techzone/rdx"
	"techzone/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
)

const autocompleteKey = "autocomplete:products"

// IndexProduct adds a product name to the suggestion ZSET. Members are
// stored as lower|slug|display so a lexicographic prefix range over
// the lowered name still yields the display form.
func IndexProduct(ctx context.Context, name, slug string) error {
	member := fmt.Sprintf("%s|%s|%s", strings.ToLower(name), slug, name)
	err := rdx.Conn.ZAdd(ctx, autocompleteKey, redis.Z{Score: 0, Member: member}).Err()
	if err != nil {
		return fmt.Errorf("failed to index product for autocomplete: %w", err)
	}
	return nil
}

// UnindexProduct drops every member whose slug matches. Rare path
// (catalog deletes), so the linear scan is fine.
func UnindexProduct(ctx context.Context, slug string) error {
	members, err := rdx.Conn.ZRange(ctx, autocompleteKey, 0, -1).Result()
	if err != nil {
		return err
	}
	for _, m := range members {
		parts := strings.SplitN(m, "|", 3)
		if len(parts) == 3 && parts[1] == slug {
			if err := rdx.Conn.ZRem(ctx, autocompleteKey, m).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Autocompleter serves search-as-you-type suggestions. The client
// debounces; in-flight requests are not coordinated here, so response
// ordering stays the client's concern.
func Autocompleter(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if query == "" {
		utils.RespondWithJSON(w, http.StatusOK, []utils.M{})
		return
	}

	results, err := rdx.Conn.ZRangeByLex(r.Context(), autocompleteKey, &redis.ZRangeBy{
		Min:    "[" + query,
		Max:    "[" + query + "\xff",
		Offset: 0,
		Count:  10,
	}).Result()
	if err != nil {
		http.Error(w, "Failed to fetch suggestions", http.StatusInternalServerError)
		return
	}

	suggestions := []utils.M{}
	for _, result := range results {
		parts := strings.SplitN(result, "|", 3)
		if len(parts) == 3 {
			suggestions = append(suggestions, utils.M{"slug": parts[1], "name": parts[2]})
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, suggestions)
}
