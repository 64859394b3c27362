// services/listing.go
package services

import (
	"sort"
	"strconv"
	"strings"

	"backend/entity"
)

type SortKey string

const (
	SortByRating       SortKey = "rating"       // descending
	SortByDeliveryTime SortKey = "deliveryTime" // ascending by lower bound
)

// CuisineAll matches every restaurant.
const CuisineAll = "All"

type ListingPage struct {
	Items      []entity.Restaurant `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
	Total      int                 `json:"total"`
}

// MatchesCuisine: tag "All" matches everything; otherwise the tag must appear
// in the restaurant's cuisine list, or as a case-insensitive substring of the
// name (fallback for tags like "Pizza" against "Pizza Palace").
func MatchesCuisine(r *entity.Restaurant, tag string) bool {
	if tag == "" || tag == CuisineAll {
		return true
	}
	for _, c := range r.Cuisines {
		if c.Name == tag {
			return true
		}
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(tag))
}

// MatchesSearch: empty term matches all; otherwise case-insensitive substring
// of the name.
func MatchesSearch(r *entity.Restaurant, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(term))
}

// FilterRestaurants applies the AND of the cuisine and search predicates.
func FilterRestaurants(all []entity.Restaurant, search, cuisine string) []entity.Restaurant {
	out := make([]entity.Restaurant, 0, len(all))
	for i := range all {
		if MatchesCuisine(&all[i], cuisine) && MatchesSearch(&all[i], search) {
			out = append(out, all[i])
		}
	}
	return out
}

// deliveryLowerBound parses the leading number of a range like "25-35 min".
// Unparseable text sorts last.
func deliveryLowerBound(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 1 << 30
	}
	return n
}

// SortRestaurants sorts in place; stable, so equal keys keep catalog order.
func SortRestaurants(list []entity.Restaurant, key SortKey) {
	switch key {
	case SortByRating:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	case SortByDeliveryTime:
		sort.SliceStable(list, func(i, j int) bool {
			return deliveryLowerBound(list[i].DeliveryTime) < deliveryLowerBound(list[j].DeliveryTime)
		})
	}
}

// Paginate slices out the 1-indexed page. totalPages = ceil(n/size); an empty
// result has zero pages and the page is reported as requested with no items.
func Paginate(list []entity.Restaurant, page, size int) ListingPage {
	if size <= 0 {
		size = 1
	}
	total := len(list)
	totalPages := (total + size - 1) / size

	out := ListingPage{Page: page, PageSize: size, TotalPages: totalPages, Total: total}
	start := (page - 1) * size
	if page < 1 || start >= total {
		out.Items = []entity.Restaurant{}
		return out
	}
	end := start + size
	if end > total {
		end = total
	}
	out.Items = list[start:end]
	return out
}

// RunListing is the whole pipeline: filter, then sort, then paginate.
func RunListing(all []entity.Restaurant, search, cuisine string, key SortKey, page, size int) ListingPage {
	matched := FilterRestaurants(all, search, cuisine)
	SortRestaurants(matched, key)
	return Paginate(matched, page, size)
}

// Browse is a stateful walk over the catalog: the query knobs plus the
// current page. Any filter or sort change snaps back to page 1; page changes
// outside [1, totalPages] are rejected.
type Browse struct {
	all []entity.Restaurant

	search  string
	cuisine string
	sortBy  SortKey

	page     int
	pageSize int
}

func NewBrowse(all []entity.Restaurant, pageSize int) *Browse {
	return &Browse{
		all:      all,
		cuisine:  CuisineAll,
		sortBy:   SortByRating,
		page:     1,
		pageSize: pageSize,
	}
}

func (b *Browse) SetSearch(term string) {
	b.search = term
	b.page = 1
}

func (b *Browse) SetCuisine(tag string) {
	b.cuisine = tag
	b.page = 1
}

func (b *Browse) SetSort(key SortKey) {
	b.sortBy = key
	b.page = 1
}

// SetPage reports whether the request was accepted.
func (b *Browse) SetPage(p int) bool {
	totalPages := b.Page().TotalPages
	if p < 1 || p > totalPages {
		return false
	}
	b.page = p
	return true
}

func (b *Browse) Page() ListingPage {
	return RunListing(b.all, b.search, b.cuisine, b.sortBy, b.page, b.pageSize)
}
