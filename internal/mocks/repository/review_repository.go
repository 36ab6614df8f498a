package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.ReviewRepository = (*MockReviewRepository)(nil)

// MockReviewRepository is a testify mock for repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates a mock that asserts its expectations when the test ends.
func NewMockReviewRepository(t *testing.T) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) Upsert(ctx context.Context, review *entity.ProductReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductReview, error) {
	args := m.Called(ctx, productID)

	var r0 []*entity.ProductReview
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.ProductReview)
	}

	return r0, args.Error(1)
}

func (m *MockReviewRepository) Rating(ctx context.Context, productID uuid.UUID) (*entity.ProductRating, error) {
	args := m.Called(ctx, productID)

	var r0 *entity.ProductRating
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.ProductRating)
	}

	return r0, args.Error(1)
}
