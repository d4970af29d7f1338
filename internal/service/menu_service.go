package service

import (
	"context"
	"errors"
	"log"
	"time"

	"digital-menu/internal/domain"
)

// ErrSourceNotConfigured is returned when the catalog source was never wired,
// typically because the spreadsheet credentials are missing. Operator
// intervention is required; the read endpoint surfaces this as a 500.
var ErrSourceNotConfigured = errors.New("catalog source is not configured")

// MenuService serves the catalog: cache first, then the spreadsheet source,
// refreshing the cache on a successful fetch. Popularity counters are bumped
// best-effort through the same cache.
type MenuService struct {
	source CatalogSource
	cache  CatalogCache
}

func NewMenuService(source CatalogSource, cache CatalogCache) *MenuService {
	return &MenuService{source: source, cache: cache}
}

// MenuItems returns the current catalog or the reason it cannot be fetched.
// This is the strict path used by the HTTP read boundary.
func (s *MenuService) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if items, err := s.cache.GetCatalog(ctx); err == nil && len(items) > 0 {
			return items, nil
		}
	}

	if s.source == nil {
		return nil, ErrSourceNotConfigured
	}

	items, err := s.source.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, items); err != nil {
			log.Printf("[menu] failed to cache catalog: %v", err)
		}
	}
	return items, nil
}

// MenuItemsOrDemo is the guest-facing path: a fetch failure falls back to the
// fixed demo catalog so the menu is never empty and never an error.
func (s *MenuService) MenuItemsOrDemo(ctx context.Context) []domain.MenuItem {
	items, err := s.MenuItems(ctx)
	if err != nil {
		log.Printf("[menu] falling back to demo catalog: %v", err)
		return DemoMenuItems()
	}
	return items
}

// TrackItemView bumps the view counter for an item. Best-effort.
func (s *MenuService) TrackItemView(ctx context.Context, itemID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.IncrItemStat(ctx, itemID, "views"); err != nil {
		log.Printf("[menu] failed to track view for item %s: %v", itemID, err)
	}
}

// TrackItemOrder bumps the order counter for an item. Best-effort.
func (s *MenuService) TrackItemOrder(ctx context.Context, itemID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.IncrItemStat(ctx, itemID, "orders"); err != nil {
		log.Printf("[menu] failed to track order for item %s: %v", itemID, err)
	}
}

// DemoMenuItems is the hardcoded fallback catalog: at least one item per
// expected category, so the UI always has something to render.
func DemoMenuItems() []domain.MenuItem {
	now := time.Now().Format(time.RFC3339)
	return []domain.MenuItem{
		{
			ID:              "1",
			Name:            "Margherita Pizza",
			Description:     "Fresh tomatoes, mozzarella, basil, and olive oil",
			Price:           1299,
			Photo:           "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg",
			Category:        "Pizza",
			Available:       true,
			PreparationTime: 15,
			Ingredients:     "Tomatoes, Mozzarella, Basil, Olive Oil",
			Allergens:       "Gluten, Dairy",
			PopularityScore: 95,
			Views:           150,
			Orders:          45,
			LastUpdated:     now,
		},
		{
			ID:              "2",
			Name:            "Caesar Salad",
			Description:     "Crisp romaine lettuce with parmesan and croutons",
			Price:           899,
			Photo:           "https://images.pexels.com/photos/1059905/pexels-photo-1059905.jpeg",
			Category:        "Salads",
			Available:       true,
			PreparationTime: 5,
			Ingredients:     "Romaine Lettuce, Parmesan, Croutons, Caesar Dressing",
			Allergens:       "Dairy, Gluten",
			PopularityScore: 88,
			Views:           120,
			Orders:          32,
			LastUpdated:     now,
		},
		{
			ID:              "3",
			Name:            "Grilled Salmon",
			Description:     "Fresh Atlantic salmon with herbs and lemon",
			Price:           1899,
			Photo:           "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			Category:        "Main Course",
			Available:       true,
			PreparationTime: 20,
			Ingredients:     "Atlantic Salmon, Herbs, Lemon, Olive Oil",
			Allergens:       "Fish",
			PopularityScore: 92,
			Views:           98,
			Orders:          28,
			LastUpdated:     now,
		},
	}
}
