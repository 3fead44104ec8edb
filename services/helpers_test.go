package services_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abdouxone/KFP/common/logger"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// --- Mock Catalog Repository ---

type mockCatalogRepo struct {
	products map[uuid.UUID]*models.Product
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{products: make(map[uuid.UUID]*models.Product)}
}

// FindCartTriple mirrors the scoped preloads: the returned product carries
// only the matching variant, and that variant only the matching size.
func (m *mockCatalogRepo) FindCartTriple(_ context.Context, productID, variantID, sizeID uuid.UUID) (*models.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	result := *p
	result.Variants = nil
	for _, v := range p.Variants {
		if v.ID != variantID {
			continue
		}
		variant := v
		variant.Sizes = nil
		for _, s := range v.Sizes {
			if s.ID == sizeID {
				variant.Sizes = append(variant.Sizes, s)
			}
		}
		result.Variants = append(result.Variants, variant)
	}
	return &result, nil
}

func (m *mockCatalogRepo) FindProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockCatalogRepo) FindProductPage(_ context.Context, productSlug, variantSlug string) (*models.Product, error) {
	for _, p := range m.products {
		if p.Slug != productSlug {
			continue
		}
		result := *p
		result.Variants = nil
		for _, v := range p.Variants {
			if v.Slug == variantSlug {
				result.Variants = append(result.Variants, v)
			}
		}
		return &result, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCatalogRepo) FindProducts(_ context.Context, _ repository.ProductFilter, _, _ int) ([]models.Product, int64, error) {
	var result []models.Product
	for _, p := range m.products {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (m *mockCatalogRepo) FindStoreProducts(_ context.Context, storeID uuid.UUID) ([]models.Product, error) {
	var result []models.Product
	for _, p := range m.products {
		if p.StoreID == storeID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockCatalogRepo) ProductSlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range m.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCatalogRepo) VariantSlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range m.products {
		for _, v := range p.Variants {
			if v.Slug == slug {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *mockCatalogRepo) CreateProduct(_ context.Context, product *models.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockCatalogRepo) CreateVariant(_ context.Context, variant *models.ProductVariant) error {
	p, ok := m.products[variant.ProductID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Variants = append(p.Variants, *variant)
	return nil
}

func (m *mockCatalogRepo) DeleteProduct(_ context.Context, productID uuid.UUID) error {
	delete(m.products, productID)
	return nil
}

// --- Mock Cart Repository ---

type mockCartRepo struct {
	carts map[string]*models.Cart
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*models.Cart)}
}

func (m *mockCartRepo) FindByUserID(_ context.Context, userID string) (*models.Cart, error) {
	cart, ok := m.carts[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cart, nil
}

func (m *mockCartRepo) Replace(_ context.Context, cart *models.Cart) error {
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockCartRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

// --- Mock Store Repository ---

type mockStoreRepo struct {
	stores map[uuid.UUID]*models.Store
}

func newMockStoreRepo() *mockStoreRepo {
	return &mockStoreRepo{stores: make(map[uuid.UUID]*models.Store)}
}

func (m *mockStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Store, error) {
	s, ok := m.stores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *mockStoreRepo) FindByURL(_ context.Context, url string) (*models.Store, error) {
	for _, s := range m.stores {
		if s.URL == url {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStoreRepo) FindConflict(_ context.Context, store *models.Store) (*models.Store, error) {
	for _, s := range m.stores {
		if s.ID == store.ID {
			continue
		}
		if s.Name == store.Name || s.Email == store.Email || s.Phone == store.Phone || s.URL == store.URL {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStoreRepo) Upsert(_ context.Context, store *models.Store) error {
	m.stores[store.ID] = store
	return nil
}

// --- Mock Order Repository ---

type mockOrderRepo struct {
	orders map[uuid.UUID]*models.Order
	groups map[uuid.UUID]*models.OrderGroup
	items  []*models.OrderItem
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{
		orders: make(map[uuid.UUID]*models.Order),
		groups: make(map[uuid.UUID]*models.OrderGroup),
	}
}

func (m *mockOrderRepo) CreateOrder(_ context.Context, order *models.Order) error {
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) CreateGroup(_ context.Context, group *models.OrderGroup) error {
	m.groups[group.ID] = group
	return nil
}

func (m *mockOrderRepo) CreateItem(_ context.Context, item *models.OrderItem) error {
	m.items = append(m.items, item)
	return nil
}

func (m *mockOrderRepo) UpdateOrderTotal(_ context.Context, orderID uuid.UUID, total float64) error {
	o, ok := m.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Total = total
	return nil
}

func (m *mockOrderRepo) InTransaction(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(m)
}

func (m *mockOrderRepo) FindByIDAndUserID(_ context.Context, orderID uuid.UUID, userID string) (*models.Order, error) {
	o, ok := m.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) FindByUserID(_ context.Context, userID string, _, _ int) ([]models.Order, int64, error) {
	var result []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockOrderRepo) FindGroupsByStoreID(_ context.Context, storeID uuid.UUID) ([]models.OrderGroup, error) {
	var result []models.OrderGroup
	for _, g := range m.groups {
		if g.StoreID == storeID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockOrderRepo) groupsForOrder(orderID uuid.UUID) []*models.OrderGroup {
	var result []*models.OrderGroup
	for _, g := range m.groups {
		if g.OrderID == orderID {
			result = append(result, g)
		}
	}
	return result
}

// --- Mock Address Repository ---

type mockAddressRepo struct {
	addresses map[uuid.UUID]*models.ShippingAddress
	willayas  []models.Willaya
}

func newMockAddressRepo() *mockAddressRepo {
	return &mockAddressRepo{addresses: make(map[uuid.UUID]*models.ShippingAddress)}
}

func (m *mockAddressRepo) FindByUserID(_ context.Context, userID string) ([]models.ShippingAddress, error) {
	var result []models.ShippingAddress
	for _, a := range m.addresses {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAddressRepo) FindByIDAndUserID(_ context.Context, id uuid.UUID, userID string) (*models.ShippingAddress, error) {
	a, ok := m.addresses[id]
	if !ok || a.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (m *mockAddressRepo) Create(_ context.Context, address *models.ShippingAddress) error {
	m.addresses[address.ID] = address
	return nil
}

func (m *mockAddressRepo) FindAllWillayas(_ context.Context) ([]models.Willaya, error) {
	return m.willayas, nil
}

// --- Fixtures ---

// seededTriple identifies one sellable (product, variant, size) leaf.
type seededTriple struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	SizeID    uuid.UUID
	StoreID   uuid.UUID
}

func seedSellable(catalog *mockCatalogRepo, storeID uuid.UUID, name string, price, discount float64, stock int) seededTriple {
	productID := uuid.New()
	variantID := uuid.New()
	sizeID := uuid.New()

	catalog.products[productID] = &models.Product{
		ID:      productID,
		Name:    name,
		Slug:    name + "-slug",
		StoreID: storeID,
		Variants: []models.ProductVariant{{
			ID:           variantID,
			ProductID:    productID,
			VariantName:  "Default",
			Slug:         name + "-default",
			SKU:          "SKU-" + name,
			VariantImage: "https://cdn.example.com/" + name + ".jpg",
			Sizes: []models.Size{{
				ID:               sizeID,
				ProductVariantID: variantID,
				Size:             "M",
				Quantity:         stock,
				Price:            price,
				Discount:         discount,
			}},
		}},
	}

	return seededTriple{ProductID: productID, VariantID: variantID, SizeID: sizeID, StoreID: storeID}
}
