package domain

import (
	"context"
	"time"
)

// Comment is a user comment on a product. A nil ParentID marks a top-level
// comment; a non-nil ParentID marks a direct reply. Replies to replies are not
// allowed, so the thread depth never exceeds two levels.
type Comment struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	UserID     int64     `json:"user_id"`
	Content    string    `json:"content"`
	ParentID   *int64    `json:"parent_id"`
	ReplyCount int64     `json:"reply_count"`
	IsDeleted  bool      `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
	// Product 所属商品信息
	Product *Product `json:"product,omitempty"`
	// Parent 父评论（仅在详情等富化场景填充）
	Parent *Comment `json:"parent,omitempty"`
}

// IsReply reports whether the comment is a direct reply.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// CommentFilter narrows a comment listing. Zero values mean "no constraint".
type CommentFilter struct {
	ProductID    int64
	UserID       int64
	ParentID     *int64 // direct replies of this comment
	TopLevelOnly bool   // parent IS NULL
	Search       string // case-insensitive substring match on content

	// IncludeDeleted lifts the soft-delete filter. Admin override only.
	IncludeDeleted bool

	// OldestFirst flips the created_at ordering (default is newest first).
	OldestFirst bool
}

// ProductCommentCount is one row of the grouped admin reports.
type ProductCommentCount struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductSlug  string `json:"product_slug"`
	CommentCount int64  `json:"comment_count"`
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error

	// GetByID returns ErrNotFound when the comment is absent, or soft-deleted
	// and includeDeleted is false.
	GetByID(ctx context.Context, id int64, includeDeleted bool) (*Comment, error)

	// Fetch returns one page of comments plus the total count for the same
	// filter. Count and page read are issued from identical filter state.
	Fetch(ctx context.Context, filter CommentFilter, page PageQuery) ([]*Comment, int64, error)

	// UpdateContent replaces the content of a live comment.
	UpdateContent(ctx context.Context, id int64, content string) error

	// SoftDelete flips is_deleted on a live comment.
	// Returns ErrNotFound when the comment is absent or already deleted.
	SoftDelete(ctx context.Context, id int64) error

	// IncrementReplyCount bumps reply_count atomically in the store.
	IncrementReplyCount(ctx context.Context, id int64, delta int64) error

	// RecountReplies recomputes reply_count from the live children of parentID
	// and returns the new value.
	RecountReplies(ctx context.Context, parentID int64) (int64, error)

	// GroupByProduct counts live top-level comments per product.
	GroupByProduct(ctx context.Context) ([]ProductCommentCount, error)

	// GroupByProductInCategory is GroupByProduct narrowed to one category slug.
	GroupByProductInCategory(ctx context.Context, categorySlug string) ([]ProductCommentCount, error)
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// ListByProduct lists top-level comments of a product, or the direct
	// replies of parentID when it is non-nil. Newest first.
	ListByProduct(ctx context.Context, productID int64, parentID *int64, page PageQuery) ([]*Comment, PageInfo, error)

	// ListByUser lists the author's live comments, newest first, enriched
	// with product summaries.
	ListByUser(ctx context.Context, userID int64, page PageQuery) ([]*Comment, PageInfo, error)

	// Create persists a new comment or reply. For a reply the parent must be
	// live and itself top-level; the parent's reply counter is bumped and its
	// author notified (best effort) unless replying to oneself.
	Create(ctx context.Context, c *Comment) error

	// Update replaces the content. Author only.
	Update(ctx context.Context, id, requesterID int64, content string) (*Comment, error)

	// Delete soft-deletes the comment. Author only unless asAdmin.
	Delete(ctx context.Context, id, requesterID int64, asAdmin bool) error

	// GetByID fetches one live comment enriched with author, product and
	// parent summaries.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// ListReplies lists the direct replies of a comment, oldest first.
	ListReplies(ctx context.Context, id int64, page PageQuery) ([]*Comment, PageInfo, error)

	// AdminReply creates a reply to the target comment on the target's product
	// as the admin user. Inherits all Create validation.
	AdminReply(ctx context.Context, commentID, adminID int64, content string) (*Comment, error)

	// ListAll is the admin listing across products with optional product and
	// content-substring filters.
	ListAll(ctx context.Context, productID int64, search string, page PageQuery) ([]*Comment, PageInfo, error)

	GroupByProduct(ctx context.Context) ([]ProductCommentCount, error)
	ProductsWithCommentsByCategory(ctx context.Context, categorySlug string) ([]ProductCommentCount, error)
}
