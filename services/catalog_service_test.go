package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
	"github.com/Abdouxone/KFP/services"
)

func TestService_ResolveCartTriple_AppliesDiscount(t *testing.T) {
	catalog := newMockCatalogRepo()
	svc := services.NewCatalogService(catalog, newMockStoreRepo())

	triple := seedSellable(catalog, uuid.New(), "hoodie", 100, 25, 8)

	line, svcErr := svc.ResolveCartTriple(context.Background(), triple.ProductID, triple.VariantID, triple.SizeID)
	assert.Nil(t, svcErr)
	assert.Equal(t, 75.0, line.Price)
	assert.Equal(t, 8, line.Stock)
	assert.Equal(t, "hoodie · Default", line.Name)
	assert.Equal(t, "M", line.Size)
}

func TestService_ResolveCartTriple_NoDiscountKeepsBasePrice(t *testing.T) {
	catalog := newMockCatalogRepo()
	svc := services.NewCatalogService(catalog, newMockStoreRepo())

	triple := seedSellable(catalog, uuid.New(), "plain", 49.99, 0, 1)

	line, svcErr := svc.ResolveCartTriple(context.Background(), triple.ProductID, triple.VariantID, triple.SizeID)
	assert.Nil(t, svcErr)
	assert.Equal(t, 49.99, line.Price)
}

func TestService_ResolveCartTriple_MissingPieceNamesWholeTriple(t *testing.T) {
	catalog := newMockCatalogRepo()
	svc := services.NewCatalogService(catalog, newMockStoreRepo())

	triple := seedSellable(catalog, uuid.New(), "boots", 120, 0, 3)
	badSize := uuid.New()

	// Unknown product, unknown variant and unknown size all produce the same
	// not-found error naming the requested triple.
	for _, tc := range []struct{ p, v, s uuid.UUID }{
		{uuid.New(), triple.VariantID, triple.SizeID},
		{triple.ProductID, uuid.New(), triple.SizeID},
		{triple.ProductID, triple.VariantID, badSize},
	} {
		_, svcErr := svc.ResolveCartTriple(context.Background(), tc.p, tc.v, tc.s)
		assert.NotNil(t, svcErr)
		assert.Equal(t, 404, svcErr.Code)
		assert.Contains(t, svcErr.Message, tc.p.String())
		assert.Contains(t, svcErr.Message, tc.v.String())
		assert.Contains(t, svcErr.Message, tc.s.String())
	}
}

func TestService_ResolveCartTriple_PrefersGalleryImage(t *testing.T) {
	catalog := newMockCatalogRepo()
	svc := services.NewCatalogService(catalog, newMockStoreRepo())

	triple := seedSellable(catalog, uuid.New(), "bag", 80, 0, 2)
	product := catalog.products[triple.ProductID]
	product.Variants[0].Images = []models.VariantImage{
		{ID: uuid.New(), ProductVariantID: triple.VariantID, URL: "https://cdn.example.com/gallery-1.jpg"},
	}

	line, svcErr := svc.ResolveCartTriple(context.Background(), triple.ProductID, triple.VariantID, triple.SizeID)
	assert.Nil(t, svcErr)
	assert.Equal(t, "https://cdn.example.com/gallery-1.jpg", line.Image)
}

func TestService_GetAllStoreProducts_UnknownStoreURL(t *testing.T) {
	svc := services.NewCatalogService(newMockCatalogRepo(), newMockStoreRepo())

	_, svcErr := svc.GetAllStoreProducts(context.Background(), "no-such-store")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.Code)
	assert.Equal(t, "Please provide a valid Store URL.", svcErr.Message)
}

func TestService_GetProducts_Pagination(t *testing.T) {
	catalog := newMockCatalogRepo()
	svc := services.NewCatalogService(catalog, newMockStoreRepo())

	storeID := uuid.New()
	for _, name := range []string{"p1", "p2", "p3"} {
		seedSellable(catalog, storeID, name, 10, 0, 1)
	}

	resp, svcErr := svc.GetProducts(context.Background(), repository.ProductFilter{}, 1, 2)
	assert.Nil(t, svcErr)
	assert.Equal(t, int64(3), resp.Meta.TotalCount)
	assert.Equal(t, int64(2), resp.Meta.TotalPages)
	assert.True(t, resp.Meta.HasMore)
}
