package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/Abdouxone/KFP/common/errors"
	"github.com/Abdouxone/KFP/common/logger"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

// StoreGroup is one store's partition of a validated cart.
type StoreGroup struct {
	StoreID  uuid.UUID
	Items    []models.CartItem
	Subtotal float64
}

// SplitCartByStore partitions validated cart lines by owning store. Stores
// appear in first-occurrence order and lines keep their order within a store.
// Each partition's subtotal is the sum of its line totals; there is no
// cross-store computation.
func SplitCartByStore(items []models.CartItem) []StoreGroup {
	groups := make([]StoreGroup, 0)
	index := make(map[uuid.UUID]int)

	for _, item := range items {
		i, ok := index[item.StoreID]
		if !ok {
			i = len(groups)
			index[item.StoreID] = i
			groups = append(groups, StoreGroup{StoreID: item.StoreID})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Subtotal += item.TotalPrice
	}

	return groups
}

// PlaceOrderResult identifies the order created by a checkout.
type PlaceOrderResult struct {
	OrderID uuid.UUID `json:"order_id"`
}

// OrderListResponse is the buyer's paginated order history.
type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

// CheckoutService turns a validated cart into a persisted order graph and
// serves order reads for buyers and sellers.
type CheckoutService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	cartSvc     *CartService
	addressRepo repository.AddressRepository
	storeRepo   repository.StoreRepository
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, cartSvc *CartService, addressRepo repository.AddressRepository, storeRepo repository.StoreRepository) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		cartSvc:     cartSvc,
		addressRepo: addressRepo,
		storeRepo:   storeRepo,
	}
}

// PlaceOrder writes the order, one group per store, one item per line, then
// back-fills the order total from the group subtotals just written. The whole
// graph commits in one transaction; payment stays "Pending" and stock is not
// decremented here.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, cartID, shippingAddressID uuid.UUID) (*PlaceOrderResult, *apperrors.Error) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Cart")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch cart", err)
	}
	if cart.ID != cartID {
		return nil, apperrors.NotFound("Cart")
	}
	if len(cart.CartItems) == 0 {
		return nil, apperrors.Validation("Cart is empty.")
	}

	if _, err := s.addressRepo.FindByIDAndUserID(ctx, shippingAddressID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Shipping address")
		}
		return nil, apperrors.Internal("Failed to fetch shipping address", err)
	}

	order := &models.Order{
		ID:                uuid.New(),
		UserID:            userID,
		ShippingAddressID: shippingAddressID,
		OrderStatus:       models.OrderStatusPending,
		PaymentStatus:     models.PaymentStatusPending,
		// Provisional total seeded from the cart's cached value; replaced
		// below by the sum of the written group subtotals.
		Total: cart.Total,
	}

	groups := SplitCartByStore(cart.CartItems)

	txErr := s.orderRepo.InTransaction(ctx, func(repo repository.OrderRepository) error {
		if err := repo.CreateOrder(ctx, order); err != nil {
			return err
		}

		var grandTotal float64
		for _, g := range groups {
			group := &models.OrderGroup{
				ID:              uuid.New(),
				OrderID:         order.ID,
				StoreID:         g.StoreID,
				Status:          models.GroupStatusPending,
				ShippingService: models.DefaultShippingService,
				Total:           g.Subtotal,
			}
			if err := repo.CreateGroup(ctx, group); err != nil {
				return err
			}

			for _, item := range g.Items {
				orderItem := &models.OrderItem{
					ID:           uuid.New(),
					OrderGroupID: group.ID,
					ProductID:    item.ProductID,
					VariantID:    item.VariantID,
					SizeID:       item.SizeID,
					SKU:          item.SKU,
					Name:         item.Name,
					Image:        item.Image,
					Size:         item.Size,
					Quantity:     item.Quantity,
					Price:        item.Price,
					TotalPrice:   item.TotalPrice,
				}
				if err := repo.CreateItem(ctx, orderItem); err != nil {
					return err
				}
			}

			grandTotal += group.Total
		}

		return repo.UpdateOrderTotal(ctx, order.ID, grandTotal)
	})
	if txErr != nil {
		return nil, apperrors.Internal("Failed to place order", txErr)
	}

	if appErr := s.cartSvc.EmptyUserCart(ctx, userID); appErr != nil {
		// The order is committed; an undeleted cart is only a stale leftover.
		logger.Warn(ctx, "Failed to empty cart after checkout",
			zap.String("user_id", userID), zap.Error(appErr))
	}

	logger.Info(ctx, "Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
		zap.Int("store_groups", len(groups)),
	)

	return &PlaceOrderResult{OrderID: order.ID}, nil
}

// GetOrderByID retrieves a specific order for the buyer.
func (s *CheckoutService) GetOrderByID(ctx context.Context, userID string, orderID uuid.UUID) (*models.Order, *apperrors.Error) {
	order, err := s.orderRepo.FindByIDAndUserID(ctx, orderID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Order")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch order", err)
	}
	return order, nil
}

// GetUserOrders retrieves paginated orders for the buyer.
func (s *CheckoutService) GetUserOrders(ctx context.Context, userID string, page, limit int) (*OrderListResponse, *apperrors.Error) {
	orders, total, err := s.orderRepo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}

	return &OrderListResponse{
		Orders: orders,
		Meta: MetaData{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: calculateTotalPages(total, limit),
			HasMore:    total > int64(page*limit),
		},
	}, nil
}

// GetStoreOrders retrieves the order groups of a store for its owning seller.
func (s *CheckoutService) GetStoreOrders(ctx context.Context, userID string, storeURL string) ([]models.OrderGroup, *apperrors.Error) {
	store, err := s.storeRepo.FindByURL(ctx, storeURL)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Store")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch store", err)
	}

	if store.UserID != userID {
		return nil, apperrors.New(http.StatusForbidden, "You don't have permission to access this store's orders.", nil)
	}

	groups, err := s.orderRepo.FindGroupsByStoreID(ctx, store.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch store orders", err)
	}
	return groups, nil
}
