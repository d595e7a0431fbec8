package comment_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopway/shopway/domain"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64, includeDeleted bool) (*domain.Comment, error) {
	args := m.Called(ctx, id, includeDeleted)
	if c, ok := args.Get(0).(*domain.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Fetch(ctx context.Context, filter domain.CommentFilter, page domain.PageQuery) ([]*domain.Comment, int64, error) {
	args := m.Called(ctx, filter, page)
	var res []*domain.Comment
	if v, ok := args.Get(0).([]*domain.Comment); ok {
		res = v
	}
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *mockCommentRepo) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepo) IncrementReplyCount(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *mockCommentRepo) RecountReplies(ctx context.Context, parentID int64) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommentRepo) GroupByProduct(ctx context.Context) ([]domain.ProductCommentCount, error) {
	args := m.Called(ctx)
	var res []domain.ProductCommentCount
	if v, ok := args.Get(0).([]domain.ProductCommentCount); ok {
		res = v
	}
	return res, args.Error(1)
}

func (m *mockCommentRepo) GroupByProductInCategory(ctx context.Context, categorySlug string) ([]domain.ProductCommentCount, error) {
	args := m.Called(ctx, categorySlug)
	var res []domain.ProductCommentCount
	if v, ok := args.Get(0).([]domain.ProductCommentCount); ok {
		res = v
	}
	return res, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	var res []domain.User
	if v, ok := args.Get(0).([]domain.User); ok {
		res = v
	}
	return res, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) Insert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	var res []domain.Product
	if v, ok := args.Get(0).([]domain.Product); ok {
		res = v
	}
	return res, args.Error(1)
}

func (m *mockProductRepo) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepo) Fetch(ctx context.Context, filter domain.ProductFilter, page domain.PageQuery) ([]domain.Product, int64, error) {
	args := m.Called(ctx, filter, page)
	var res []domain.Product
	if v, ok := args.Get(0).([]domain.Product); ok {
		res = v
	}
	return res, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) Store(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) AdjustStock(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// mockNotifier records sent notifications synchronously.
type mockNotifier struct {
	sent []domain.Notification
}

func (m *mockNotifier) Start(ctx context.Context) {}

func (m *mockNotifier) Send(n domain.Notification) {
	m.sent = append(m.sent, n)
}
