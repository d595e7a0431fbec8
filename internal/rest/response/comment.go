package response

import "github.com/shopway/shopway/domain"

type Comment struct {
	ID         int64  `json:"id"`
	ProductID  int64  `json:"product_id"`
	UserID     int64  `json:"user_id"`
	Content    string `json:"content"`
	ParentID   *int64 `json:"parent_id"`
	ReplyCount int64  `json:"reply_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
	// Product 所属商品摘要
	Product *ProductSummary `json:"product,omitempty"`
	// Parent 父评论摘要
	Parent *Comment `json:"parent,omitempty"`
}

func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	res := &Comment{
		ID:         c.ID,
		ProductID:  c.ProductID,
		UserID:     c.UserID,
		Content:    c.Content,
		ParentID:   c.ParentID,
		ReplyCount: c.ReplyCount,
		CreatedAt:  c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:  c.UpdatedAt.Format(DateTimeFormat),
		User:       NewUserFromDomain(c.User),
		Product:    NewProductSummaryFromDomain(c.Product),
	}
	if c.Parent != nil {
		res.Parent = NewCommentFromDomain(c.Parent)
	}
	return res
}
