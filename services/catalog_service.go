// services/catalog_service.go
package services

import (
	"context"
	"errors"
	"log"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type CatalogService struct {
	Repo *repository.RestaurantRepository
}

func NewCatalogService(repo *repository.RestaurantRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// List loads the full catalog for the pipeline.
func (s *CatalogService) List(ctx context.Context) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := fetchWithRetry(ctx, func() error {
		var e error
		rests, e = s.Repo.FindAll(ctx)
		return e
	})
	return rests, err
}

// Get loads one restaurant with its categorized menu. Absence is reported as
// ErrRestaurantNotFound, not as a transient failure.
func (s *CatalogService) Get(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var rest *entity.Restaurant
	err := fetchWithRetry(ctx, func() error {
		var e error
		rest, e = s.Repo.FindByID(ctx, id)
		return e
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

// Listing runs the pipeline for a query coming straight off the URL.
func (s *CatalogService) Listing(ctx context.Context, search, cuisine string, key SortKey, page, size int) (ListingPage, error) {
	all, err := s.List(ctx)
	if err != nil {
		return ListingPage{}, err
	}
	return RunListing(all, search, cuisine, key, page, size), nil
}

const (
	fetchAttempts = 3
	fetchBackoff  = 50 * time.Millisecond
)

// fetchWithRetry retries transient lookup failures with doubling backoff.
// Not-found and cancelled contexts are final, never retried.
func fetchWithRetry(ctx context.Context, fn func() error) error {
	delay := fetchBackoff
	var err error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		err = fn()
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) || ctx.Err() != nil {
			return err
		}
		log.Printf("fetch attempt %d failed: %v", attempt, err)
		if attempt < fetchAttempts {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}
	return err
}
