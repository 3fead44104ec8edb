package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/services"
)

func productTestFixture() (*services.ProductService, *mockCatalogRepo, *models.Store) {
	catalog := newMockCatalogRepo()
	stores := newMockStoreRepo()

	store := &models.Store{ID: uuid.New(), Name: "Acme", URL: "acme", UserID: "seller-1"}
	stores.stores[store.ID] = store

	return services.NewProductService(catalog, stores), catalog, store
}

func productRequest(name, variantName string) *services.ProductRequest {
	return &services.ProductRequest{
		Name:          name,
		CategoryID:    uuid.New(),
		SubCategoryID: uuid.New(),
		VariantName:   variantName,
		SKU:           "SKU-1",
		Sizes:         []services.SizeRequest{{Size: "M", Quantity: 5, Price: 40}},
	}
}

func TestService_UpsertProduct_CreatesProductWithFirstVariant(t *testing.T) {
	svc, catalog, store := productTestFixture()

	product, svcErr := svc.UpsertProduct(context.Background(), models.RoleSeller, productRequest("Blue Hoodie", "Navy"), "acme")
	assert.Nil(t, svcErr)
	assert.Equal(t, store.ID, product.StoreID)
	assert.Equal(t, "blue-hoodie", product.Slug)
	assert.Len(t, product.Variants, 1)
	assert.Equal(t, "navy", product.Variants[0].Slug)
	assert.Len(t, catalog.products, 1)
}

func TestService_UpsertProduct_ExistingProductGainsVariant(t *testing.T) {
	svc, catalog, _ := productTestFixture()

	created, svcErr := svc.UpsertProduct(context.Background(), models.RoleSeller, productRequest("Blue Hoodie", "Navy"), "acme")
	assert.Nil(t, svcErr)

	req := productRequest("Blue Hoodie", "Slate")
	req.ProductID = created.ID

	updated, svcErr := svc.UpsertProduct(context.Background(), models.RoleSeller, req, "acme")
	assert.Nil(t, svcErr)
	assert.Equal(t, created.ID, updated.ID)
	assert.Len(t, catalog.products, 1, "Variant attached, no second product")
	assert.Len(t, catalog.products[created.ID].Variants, 2)
}

func TestService_UpsertProduct_ProbesTakenSlug(t *testing.T) {
	svc, _, _ := productTestFixture()

	first, svcErr := svc.UpsertProduct(context.Background(), models.RoleSeller, productRequest("Blue Hoodie", "Navy"), "acme")
	assert.Nil(t, svcErr)
	assert.Equal(t, "blue-hoodie", first.Slug)

	second, svcErr := svc.UpsertProduct(context.Background(), models.RoleSeller, productRequest("Blue Hoodie", "Forest"), "acme")
	assert.Nil(t, svcErr)
	assert.Equal(t, "blue-hoodie-2", second.Slug, "Same name gets a numbered slug")
}

func TestService_UpsertProduct_UnknownStore(t *testing.T) {
	svc, _, _ := productTestFixture()

	_, svcErr := svc.UpsertProduct(context.Background(), models.RoleSeller, productRequest("Blue Hoodie", "Navy"), "no-such-store")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Code)
}

func TestService_UpsertProduct_ForbiddenForBuyer(t *testing.T) {
	svc, _, _ := productTestFixture()

	_, svcErr := svc.UpsertProduct(context.Background(), models.RoleUser, productRequest("Blue Hoodie", "Navy"), "acme")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 403, svcErr.Code)
}

func TestService_DeleteProduct_Success(t *testing.T) {
	svc, catalog, _ := productTestFixture()

	created, svcErr := svc.UpsertProduct(context.Background(), models.RoleSeller, productRequest("Blue Hoodie", "Navy"), "acme")
	assert.Nil(t, svcErr)

	svcErr = svc.DeleteProduct(context.Background(), models.RoleSeller, created.ID)
	assert.Nil(t, svcErr)
	assert.Empty(t, catalog.products)
}

func TestService_DeleteProduct_NotFound(t *testing.T) {
	svc, _, _ := productTestFixture()

	svcErr := svc.DeleteProduct(context.Background(), models.RoleSeller, uuid.New())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.Code)
}
