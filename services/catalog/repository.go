package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"serveease/models"
	"serveease/utils"

	"go.uber.org/zap"
)

// DefaultRepository loads the listing and FAQ datasets over HTTP and
// memoizes them. Constructed explicitly and injected; no package-level
// cache state.
type DefaultRepository struct {
	ServicesURL string
	FaqsURL     string
	Client      *http.Client

	mu       sync.Mutex
	services []models.ServiceListing
	faqs     []models.FaqEntry
}

// NewDefaultRepository builds a repository for the given dataset sources.
func NewDefaultRepository(servicesURL, faqsURL string) *DefaultRepository {
	return &DefaultRepository{
		ServicesURL: servicesURL,
		FaqsURL:     faqsURL,
		Client:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *DefaultRepository) Services(ctx context.Context) ([]models.ServiceListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.services != nil {
		return r.services, nil
	}
	services, err := fetchJSON[models.ServiceListing](ctx, r.Client, r.ServicesURL)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("catalog: loaded services dataset", zap.Int("count", len(services)))
	r.services = services
	return r.services, nil
}

func (r *DefaultRepository) Faqs(ctx context.Context) ([]models.FaqEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.faqs != nil {
		return r.faqs, nil
	}
	faqs, err := fetchJSON[models.FaqEntry](ctx, r.Client, r.FaqsURL)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("catalog: loaded FAQ dataset", zap.Int("count", len(faqs)))
	r.faqs = faqs
	return r.faqs, nil
}

func (r *DefaultRepository) GetByID(ctx context.Context, id string) (models.ServiceListing, error) {
	services, err := r.Services(ctx)
	if err != nil {
		return models.ServiceListing{}, err
	}
	for _, listing := range services {
		if listing.ID == id {
			return listing, nil
		}
	}
	return models.ServiceListing{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Related returns listings sharing the category of the given listing,
// excluding the listing itself.
func (r *DefaultRepository) Related(ctx context.Context, id string) ([]models.ServiceListing, error) {
	selected, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	services, err := r.Services(ctx)
	if err != nil {
		return nil, err
	}
	related := []models.ServiceListing{}
	for _, listing := range services {
		if listing.ID != selected.ID && listing.Category == selected.Category {
			related = append(related, listing)
		}
	}
	return related, nil
}

func (r *DefaultRepository) Query(ctx context.Context, spec models.QuerySpec) (models.QueryResult, error) {
	services, err := r.Services(ctx)
	if err != nil {
		return models.QueryResult{}, err
	}
	return ApplyQuery(services, spec), nil
}

func fetchJSON[T any](ctx context.Context, client *http.Client, url string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrDataUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrDataUnavailable, resp.StatusCode, url)
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrDataUnavailable, url, err)
	}
	return items, nil
}
