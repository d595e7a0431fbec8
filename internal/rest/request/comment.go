package request

import "github.com/shopway/shopway/domain"

type CreateComment struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	ParentID  *int64 `json:"parent_id"`
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain() domain.Comment {
	return domain.Comment{
		ProductID: r.ProductID,
		Content:   r.Content,
		ParentID:  r.ParentID,
	}
}

type UpdateComment struct {
	Content string `json:"content"`
}

type AdminReply struct {
	Content string `json:"content" binding:"required"`
}
