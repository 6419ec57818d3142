package service

import (
	"context"
	"testing"

	"shopkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductServiceForTest() (*MockProductRepository, ProductService) {
	mockProductRepo := new(MockProductRepository)
	svc := NewProductService(mockProductRepo, zerolog.Nop())
	return mockProductRepo, svc
}

func TestProductService_GetAll_DefaultsPagination(t *testing.T) {
	ctx := context.Background()

	mockProductRepo, svc := newProductServiceForTest()
	mockProductRepo.On("GetAll", ctx, 50, 0, "electronics").Return([]model.Product{}, nil)

	products, err := svc.GetAll(ctx, 0, -5, "electronics")

	require.NoError(t, err)
	assert.Empty(t, products)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockProductRepo, svc := newProductServiceForTest()
	mockProductRepo.On("GetByID", ctx, id).Return(nil, nil)

	product, err := svc.GetByID(ctx, id)

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	assert.Nil(t, product)
}

func TestProductService_Create_DefaultsToActive(t *testing.T) {
	ctx := context.Background()

	mockProductRepo, svc := newProductServiceForTest()
	mockProductRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Product) bool {
		return p.Status == model.ProductStatusActive && p.ID != uuid.Nil
	})).Return(nil)

	product, err := svc.Create(ctx, &model.ProductRequest{
		Name:     "Yoga Mat",
		Price:    799,
		Category: "sports",
		Stock:    200,
	})

	require.NoError(t, err)
	assert.Equal(t, model.ProductStatusActive, product.Status)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Create_MissingFields(t *testing.T) {
	ctx := context.Background()

	mockProductRepo, svc := newProductServiceForTest()

	product, err := svc.Create(ctx, &model.ProductRequest{Name: "No Category"})

	require.Error(t, err)
	assert.Equal(t, model.ErrMissingField, err)
	assert.Nil(t, product)
	mockProductRepo.AssertNotCalled(t, "Create")
}

func TestProductService_Update_PreservesRating(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &model.Product{
		ID:       id,
		Name:     "Desk Lamp",
		Price:    1299,
		Category: "home",
		Rating:   model.Rating{Average: 4.2, Count: 37},
		Status:   model.ProductStatusActive,
	}

	mockProductRepo, svc := newProductServiceForTest()
	mockProductRepo.On("GetByID", ctx, id).Return(existing, nil)
	mockProductRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := svc.Update(ctx, id, &model.ProductRequest{
		Name:     "Desk Lamp v2",
		Price:    1499,
		Category: "home",
		Stock:    40,
	})

	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp v2", product.Name)
	assert.Equal(t, 4.2, product.Rating.Average)
	assert.Equal(t, 37, product.Rating.Count)
}

func TestProductService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockProductRepo, svc := newProductServiceForTest()
	mockProductRepo.On("GetByID", ctx, id).Return(nil, nil)

	product, err := svc.Update(ctx, id, &model.ProductRequest{Name: "X", Category: "y"})

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	assert.Nil(t, product)
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &model.Product{ID: id, Name: "Desk Lamp", Category: "home"}

	mockProductRepo, svc := newProductServiceForTest()
	mockProductRepo.On("GetByID", ctx, id).Return(existing, nil)
	mockProductRepo.On("Delete", ctx, id).Return(nil)

	err := svc.Delete(ctx, id)

	require.NoError(t, err)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockProductRepo, svc := newProductServiceForTest()
	mockProductRepo.On("GetByID", ctx, id).Return(nil, nil)

	err := svc.Delete(ctx, id)

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	mockProductRepo.AssertNotCalled(t, "Delete")
}
