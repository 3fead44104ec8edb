package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/Abdouxone/KFP/common/errors"
	"github.com/Abdouxone/KFP/common/logger"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

// MaxLineQuantity is the hard per-line quantity ceiling. It is an explicit
// bound on client input, not tied to actual stock.
const MaxLineQuantity = 10001

// CartLineRequest is a client-supplied cart line. Only the identifying keys
// and the quantity are taken from it; price and stock are re-derived.
type CartLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
	SizeID    uuid.UUID `json:"size_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CartService revalidates client carts against the catalog and persists the
// authoritative copy.
type CartService struct {
	catalog  *CatalogService
	cartRepo repository.CartRepository
	cache    *repository.CartCache
}

// NewCartService creates a new CartService. cache may be nil, in which case
// every read goes to the database.
func NewCartService(catalog *CatalogService, cartRepo repository.CartRepository, cache *repository.CartCache) *CartService {
	return &CartService{
		catalog:  catalog,
		cartRepo: cartRepo,
		cache:    cache,
	}
}

// SaveUserCart validates every line against live catalog data and replaces
// the user's cart with the result. The first unresolvable line aborts the
// whole batch and nothing is written.
func (s *CartService) SaveUserCart(ctx context.Context, userID string, lines []CartLineRequest) (*models.Cart, *apperrors.Error) {
	if len(lines) == 0 {
		return nil, apperrors.Validation("At least one cart line is required.")
	}

	items := make([]models.CartItem, 0, len(lines))
	var total float64

	for _, line := range lines {
		resolved, appErr := s.catalog.ResolveCartTriple(ctx, line.ProductID, line.VariantID, line.SizeID)
		if appErr != nil {
			return nil, appErr
		}

		validQuantity := line.Quantity
		if validQuantity > MaxLineQuantity {
			validQuantity = MaxLineQuantity
		}

		totalPrice := float64(validQuantity) * resolved.Price
		items = append(items, models.CartItem{
			ProductID:   resolved.ProductID,
			VariantID:   resolved.VariantID,
			SizeID:      resolved.SizeID,
			StoreID:     resolved.StoreID,
			ProductSlug: resolved.ProductSlug,
			VariantSlug: resolved.VariantSlug,
			SKU:         resolved.SKU,
			Name:        resolved.Name,
			Image:       resolved.Image,
			Size:        resolved.Size,
			Quantity:    validQuantity,
			Stock:       resolved.Stock,
			Price:       resolved.Price,
			TotalPrice:  totalPrice,
		})
		total += totalPrice
	}

	cart := &models.Cart{
		ID:        uuid.New(),
		UserID:    userID,
		Total:     total,
		CartItems: items,
	}

	if err := s.cartRepo.Replace(ctx, cart); err != nil {
		return nil, apperrors.Internal("Failed to save cart", err)
	}

	s.cacheSet(ctx, cart)
	return cart, nil
}

// GetUserCart returns the user's authoritative cart, reading through the
// cache when one is configured.
func (s *CartService) GetUserCart(ctx context.Context, userID string) (*models.Cart, *apperrors.Error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			logger.Warn(ctx, "Cart cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Cart")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch cart", err)
	}

	s.cacheSet(ctx, cart)
	return cart, nil
}

// EmptyUserCart drops the user's cart row and its cache entry.
func (s *CartService) EmptyUserCart(ctx context.Context, userID string) *apperrors.Error {
	if err := s.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return apperrors.Internal("Failed to empty cart", err)
	}
	s.cacheInvalidate(ctx, userID)
	return nil
}

// Cache writes are best-effort; a cache failure never fails the request.
func (s *CartService) cacheSet(ctx context.Context, cart *models.Cart) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cart); err != nil {
		logger.Warn(ctx, "Cart cache write failed", zap.Error(err))
	}
}

func (s *CartService) cacheInvalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.Warn(ctx, "Cart cache invalidation failed", zap.Error(err))
	}
}
