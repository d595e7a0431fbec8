package comment_test

import (
	"context"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopway/shopway/domain"
	"github.com/shopway/shopway/internal/usecase/comment"
)

type fixture struct {
	commentRepo *mockCommentRepo
	userRepo    *mockUserRepo
	productRepo *mockProductRepo
	notifier    *mockNotifier
	svc         *comment.Service
}

func newFixture() *fixture {
	f := &fixture{
		commentRepo: new(mockCommentRepo),
		userRepo:    new(mockUserRepo),
		productRepo: new(mockProductRepo),
		notifier:    new(mockNotifier),
	}
	f.svc = comment.NewService(f.commentRepo, f.userRepo, f.productRepo, f.notifier)
	return f
}

func ptr(v int64) *int64 { return &v }

func TestCreateTopLevel(t *testing.T) {
	f := newFixture()

	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7, Name: "Keyboard"}, nil)
	f.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Comment).ID = 42
		}).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, Name: "alice"}, nil)

	c := &domain.Comment{
		ProductID:  7,
		UserID:     3,
		Content:    faker.Sentence(),
		ReplyCount: 99, // client supplied junk, must be reset
	}
	err := f.svc.Create(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, int64(42), c.ID)
	assert.Nil(t, c.ParentID)
	assert.Zero(t, c.ReplyCount)
	assert.Equal(t, "alice", c.User.Name)
	assert.Empty(t, f.notifier.sent, "top-level comment must not notify anyone")
	f.commentRepo.AssertNotCalled(t, "IncrementReplyCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReplyBumpsCounterAndNotifies(t *testing.T) {
	f := newFixture()

	parent := &domain.Comment{ID: 10, ProductID: 7, UserID: 5, Content: "nice product"}
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(parent, nil)
	f.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Comment).ID = 43
		}).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, Name: "alice"}, nil)
	f.commentRepo.On("IncrementReplyCount", mock.Anything, int64(10), int64(1)).Return(nil)

	c := &domain.Comment{ProductID: 7, UserID: 3, Content: "I agree", ParentID: ptr(10)}
	err := f.svc.Create(context.Background(), c)

	require.NoError(t, err)
	f.commentRepo.AssertCalled(t, "IncrementReplyCount", mock.Anything, int64(10), int64(1))

	require.Len(t, f.notifier.sent, 1)
	n := f.notifier.sent[0]
	assert.Equal(t, int64(5), n.UserID, "the parent author receives the notification")
	assert.Equal(t, int64(3), n.ActorID)
	assert.Equal(t, domain.NotificationTypeCommentReply, n.Type)
	assert.Equal(t, "alice replied to your comment: I agree", n.Message)
	assert.Equal(t, "/products/7#comment-43", n.Link)
}

func TestCreateReplyToSelfDoesNotNotify(t *testing.T) {
	f := newFixture()

	parent := &domain.Comment{ID: 10, ProductID: 7, UserID: 3}
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(parent, nil)
	f.commentRepo.On("Store", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3}, nil)
	f.commentRepo.On("IncrementReplyCount", mock.Anything, int64(10), int64(1)).Return(nil)

	c := &domain.Comment{ProductID: 7, UserID: 3, Content: "following up", ParentID: ptr(10)}
	err := f.svc.Create(context.Background(), c)

	require.NoError(t, err)
	assert.Empty(t, f.notifier.sent, "replying to yourself must not notify")
	f.commentRepo.AssertCalled(t, "IncrementReplyCount", mock.Anything, int64(10), int64(1))
}

func TestCreateReplyToReplyRejected(t *testing.T) {
	f := newFixture()

	parent := &domain.Comment{ID: 11, ProductID: 7, UserID: 5, ParentID: ptr(10)}
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	f.commentRepo.On("GetByID", mock.Anything, int64(11), false).Return(parent, nil)

	c := &domain.Comment{ProductID: 7, UserID: 3, Content: "third level", ParentID: ptr(11)}
	err := f.svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrMaxReplyDepth)
	f.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	assert.Empty(t, f.notifier.sent)
}

func TestCreateReplyToDeletedParent(t *testing.T) {
	f := newFixture()

	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	// soft-deleted parents read as not found
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(nil, domain.ErrNotFound)

	c := &domain.Comment{ProductID: 7, UserID: 3, Content: "hello", ParentID: ptr(10)}
	err := f.svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestCreateReplyOnWrongProduct(t *testing.T) {
	f := newFixture()

	parent := &domain.Comment{ID: 10, ProductID: 99, UserID: 5}
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(parent, nil)

	c := &domain.Comment{ProductID: 7, UserID: 3, Content: "hello", ParentID: ptr(10)}
	err := f.svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	f.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestCreateBlankContent(t *testing.T) {
	f := newFixture()

	c := &domain.Comment{ProductID: 7, UserID: 3, Content: "   \n\t "}
	err := f.svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	f.productRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateOnMissingProduct(t *testing.T) {
	f := newFixture()

	f.productRepo.On("GetByID", mock.Anything, int64(404)).Return(domain.Product{}, domain.ErrNotFound)

	c := &domain.Comment{ProductID: 404, UserID: 3, Content: "hello"}
	err := f.svc.Create(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestNotificationPreviewTruncation(t *testing.T) {
	f := newFixture()

	parent := &domain.Comment{ID: 10, ProductID: 7, UserID: 5}
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(parent, nil)
	f.commentRepo.On("Store", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, Name: "bob"}, nil)
	f.commentRepo.On("IncrementReplyCount", mock.Anything, int64(10), int64(1)).Return(nil)

	long := strings.Repeat("x", 80)
	c := &domain.Comment{ProductID: 7, UserID: 3, Content: long, ParentID: ptr(10)}
	require.NoError(t, f.svc.Create(context.Background(), c))

	require.Len(t, f.notifier.sent, 1)
	want := "bob replied to your comment: " + strings.Repeat("x", domain.PreviewLimit) + "..."
	assert.Equal(t, want, f.notifier.sent[0].Message)
}

func TestUpdateByNonAuthor(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(42), false).
		Return(&domain.Comment{ID: 42, ProductID: 7, UserID: 3}, nil)

	_, err := f.svc.Update(context.Background(), 42, 999, "edited")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.commentRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateByAuthor(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(42), false).
		Return(&domain.Comment{ID: 42, ProductID: 7, UserID: 3, Content: "old"}, nil)
	f.commentRepo.On("UpdateContent", mock.Anything, int64(42), "new text").Return(nil)
	f.userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3}, nil)
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)

	res, err := f.svc.Update(context.Background(), 42, 3, "  new text  ")

	require.NoError(t, err)
	assert.Equal(t, "new text", res.Content)
}

func TestDeleteTopLevelByAuthor(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(42), false).
		Return(&domain.Comment{ID: 42, UserID: 3}, nil)
	f.commentRepo.On("SoftDelete", mock.Anything, int64(42)).Return(nil)

	err := f.svc.Delete(context.Background(), 42, 3, false)

	require.NoError(t, err)
	f.commentRepo.AssertNotCalled(t, "RecountReplies", mock.Anything, mock.Anything)
}

func TestDeleteReplyRecountsParent(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(43), false).
		Return(&domain.Comment{ID: 43, UserID: 3, ParentID: ptr(10)}, nil)
	f.commentRepo.On("SoftDelete", mock.Anything, int64(43)).Return(nil)
	f.commentRepo.On("RecountReplies", mock.Anything, int64(10)).Return(int64(2), nil)

	err := f.svc.Delete(context.Background(), 43, 3, false)

	require.NoError(t, err)
	f.commentRepo.AssertCalled(t, "RecountReplies", mock.Anything, int64(10))
}

func TestDeleteByNonAuthor(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(42), false).
		Return(&domain.Comment{ID: 42, UserID: 3}, nil)

	err := f.svc.Delete(context.Background(), 42, 999, false)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.commentRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestDeleteByAdminOverridesOwnership(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(42), false).
		Return(&domain.Comment{ID: 42, UserID: 3}, nil)
	f.commentRepo.On("SoftDelete", mock.Anything, int64(42)).Return(nil)

	err := f.svc.Delete(context.Background(), 42, 999, true)

	assert.NoError(t, err)
}

func TestDeleteAlreadyDeleted(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(42), false).Return(nil, domain.ErrNotFound)

	err := f.svc.Delete(context.Background(), 42, 3, false)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.commentRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestGetByIDEnrichesParent(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(43), false).
		Return(&domain.Comment{ID: 43, ProductID: 7, UserID: 3, ParentID: ptr(10)}, nil)
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).
		Return(&domain.Comment{ID: 10, ProductID: 7, UserID: 5}, nil)
	f.userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, Name: "alice"}, nil)
	f.userRepo.On("GetByID", mock.Anything, int64(5)).Return(domain.User{ID: 5, Name: "carol"}, nil)
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)

	res, err := f.svc.GetByID(context.Background(), 43)

	require.NoError(t, err)
	require.NotNil(t, res.Parent)
	assert.Equal(t, int64(10), res.Parent.ID)
	assert.Equal(t, "carol", res.Parent.User.Name)
}

func TestListByProductDefaultsToTopLevel(t *testing.T) {
	f := newFixture()

	rows := []*domain.Comment{{ID: 1, ProductID: 7, UserID: 3}}
	f.commentRepo.On("Fetch", mock.Anything,
		domain.CommentFilter{ProductID: 7, TopLevelOnly: true},
		domain.PageQuery{Page: 1, Limit: 10},
	).Return(rows, int64(25), nil)
	f.userRepo.On("GetByIDs", mock.Anything, []int64{3}).Return([]domain.User{{ID: 3, Name: "alice"}}, nil)

	res, info, err := f.svc.ListByProduct(context.Background(), 7, nil, domain.PageQuery{})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "alice", res[0].User.Name)
	assert.Equal(t, int64(25), info.Total)
	assert.Equal(t, int64(3), info.TotalPages)
}

func TestListByProductWithParentFilter(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("Fetch", mock.Anything,
		domain.CommentFilter{ProductID: 7, ParentID: ptr(10)},
		domain.PageQuery{Page: 2, Limit: 5},
	).Return([]*domain.Comment{}, int64(0), nil)

	_, info, err := f.svc.ListByProduct(context.Background(), 7, ptr(10), domain.PageQuery{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Page)
	assert.Zero(t, info.TotalPages)
}

func TestListRepliesOldestFirst(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).
		Return(&domain.Comment{ID: 10, ProductID: 7, UserID: 5}, nil)
	f.commentRepo.On("Fetch", mock.Anything,
		mock.MatchedBy(func(fl domain.CommentFilter) bool {
			return fl.ParentID != nil && *fl.ParentID == 10 && fl.OldestFirst
		}),
		domain.PageQuery{Page: 1, Limit: 10},
	).Return([]*domain.Comment{}, int64(0), nil)

	_, _, err := f.svc.ListReplies(context.Background(), 10, domain.PageQuery{})

	assert.NoError(t, err)
}

func TestListRepliesOfMissingComment(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(nil, domain.ErrNotFound)

	_, _, err := f.svc.ListReplies(context.Background(), 10, domain.PageQuery{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdminReplyTargetsSameProduct(t *testing.T) {
	f := newFixture()

	target := &domain.Comment{ID: 10, ProductID: 7, UserID: 5}
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(target, nil)
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	f.commentRepo.On("Store", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, int64(1)).Return(domain.User{ID: 1, Name: "admin"}, nil)
	f.commentRepo.On("IncrementReplyCount", mock.Anything, int64(10), int64(1)).Return(nil)

	reply, err := f.svc.AdminReply(context.Background(), 10, 1, "we will look into it")

	require.NoError(t, err)
	assert.Equal(t, int64(7), reply.ProductID)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, int64(10), *reply.ParentID)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, int64(5), f.notifier.sent[0].UserID)
}

func TestListAllFiltersTopLevel(t *testing.T) {
	f := newFixture()

	f.commentRepo.On("Fetch", mock.Anything,
		domain.CommentFilter{ProductID: 7, Search: "broken", TopLevelOnly: true},
		domain.PageQuery{Page: 1, Limit: 10},
	).Return([]*domain.Comment{}, int64(0), nil)

	_, _, err := f.svc.ListAll(context.Background(), 7, "broken", domain.PageQuery{})

	assert.NoError(t, err)
}

func TestProductsWithCommentsByCategoryBlankSlug(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ProductsWithCommentsByCategory(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	f.commentRepo.AssertNotCalled(t, "GroupByProductInCategory", mock.Anything, mock.Anything)
}

// 模拟一条完整的评论线程生命周期
func TestReplyThreadLifecycle(t *testing.T) {
	f := newFixture()

	parent := &domain.Comment{ID: 10, ProductID: 7, UserID: 5}
	f.productRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.Product{ID: 7}, nil)
	f.commentRepo.On("GetByID", mock.Anything, int64(10), false).Return(parent, nil)
	f.commentRepo.On("Store", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Comment).ID = 43
		}).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, Name: "alice"}, nil)
	f.commentRepo.On("IncrementReplyCount", mock.Anything, int64(10), int64(1)).Return(nil)

	reply := &domain.Comment{ProductID: 7, UserID: 3, Content: "mine arrived broken", ParentID: ptr(10)}
	require.NoError(t, f.svc.Create(context.Background(), reply))
	require.Len(t, f.notifier.sent, 1)

	// author removes the reply again, the parent counter is recomputed
	f.commentRepo.On("GetByID", mock.Anything, int64(43), false).
		Return(&domain.Comment{ID: 43, ProductID: 7, UserID: 3, ParentID: ptr(10)}, nil)
	f.commentRepo.On("SoftDelete", mock.Anything, int64(43)).Return(nil)
	f.commentRepo.On("RecountReplies", mock.Anything, int64(10)).Return(int64(0), nil)

	require.NoError(t, f.svc.Delete(context.Background(), 43, 3, false))
	f.commentRepo.AssertCalled(t, "RecountReplies", mock.Anything, int64(10))
}
