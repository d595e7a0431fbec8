package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shopway/shopway/domain"
)

type Service struct {
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	productRepo domain.ProductRepository
	notifier    domain.ReplyNotifier
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(c domain.CommentRepository, u domain.UserRepository, p domain.ProductRepository, n domain.ReplyNotifier) *Service {
	return &Service{
		commentRepo: c,
		userRepo:    u,
		productRepo: p,
		notifier:    n,
	}
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

func normalizePage(page domain.PageQuery) domain.PageQuery {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 || page.Limit > MaxLimit {
		page.Limit = DefaultLimit
	}
	return page
}

// preview truncates reply content to the first PreviewLimit characters for
// the notification message, appending an ellipsis when cut.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= domain.PreviewLimit {
		return content
	}
	return string(runes[:domain.PreviewLimit]) + "..."
}

func (s *Service) ListByProduct(ctx context.Context, productID int64, parentID *int64, page domain.PageQuery) ([]*domain.Comment, domain.PageInfo, error) {
	if productID <= 0 {
		return nil, domain.PageInfo{}, domain.ErrBadParamInput
	}
	if parentID != nil && *parentID <= 0 {
		return nil, domain.PageInfo{}, domain.ErrBadParamInput
	}
	page = normalizePage(page)

	filter := domain.CommentFilter{ProductID: productID}
	if parentID != nil {
		filter.ParentID = parentID
	} else {
		filter.TopLevelOnly = true
	}

	res, total, err := s.commentRepo.Fetch(ctx, filter, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if err := s.fillAuthors(ctx, res); err != nil {
		logrus.Warnf("failed to fill comment authors: %v", err)
	}
	return res, domain.NewPageInfo(total, page), nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, page domain.PageQuery) ([]*domain.Comment, domain.PageInfo, error) {
	if userID <= 0 {
		return nil, domain.PageInfo{}, domain.ErrBadParamInput
	}
	page = normalizePage(page)

	res, total, err := s.commentRepo.Fetch(ctx, domain.CommentFilter{UserID: userID}, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if err := s.fillProducts(ctx, res); err != nil {
		logrus.Warnf("failed to fill comment products: %v", err)
	}
	if err := s.fillParents(ctx, res); err != nil {
		logrus.Warnf("failed to fill comment parents: %v", err)
	}
	return res, domain.NewPageInfo(total, page), nil
}

func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	if c.ProductID <= 0 || c.UserID <= 0 {
		return domain.ErrBadParamInput
	}
	if strings.TrimSpace(c.Content) == "" {
		return domain.ErrBadParamInput
	}

	product, err := s.productRepo.GetByID(ctx, c.ProductID)
	if err != nil {
		return err
	}

	var parent *domain.Comment
	if c.ParentID != nil {
		if *c.ParentID <= 0 {
			return domain.ErrBadParamInput
		}
		// A soft-deleted parent reads as not found, so it can never gain
		// new replies.
		parent, err = s.commentRepo.GetByID(ctx, *c.ParentID, false)
		if err != nil {
			return err
		}
		if parent.IsReply() {
			return domain.ErrMaxReplyDepth
		}
		if parent.ProductID != c.ProductID {
			return domain.ErrBadParamInput
		}
	}

	c.ReplyCount = 0
	c.IsDeleted = false
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	author, err := s.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		logrus.Warnf("failed to load comment author %d: %v", c.UserID, err)
	} else {
		c.User = &author
	}
	c.Product = &product

	if parent != nil {
		// Single atomic per-row bump; a parent deleted between the check
		// above and this update only leaves a stale counter behind, which
		// the next delete recount heals.
		if err := s.commentRepo.IncrementReplyCount(ctx, parent.ID, 1); err != nil {
			logrus.Warnf("failed to bump reply_count for comment %d: %v", parent.ID, err)
		}

		if parent.UserID != c.UserID {
			actorName := ""
			if c.User != nil {
				actorName = c.User.Name
			}
			s.notifier.Send(domain.Notification{
				UserID:  parent.UserID,
				ActorID: c.UserID,
				Type:    domain.NotificationTypeCommentReply,
				Message: fmt.Sprintf("%s replied to your comment: %s", actorName, preview(c.Content)),
				Link:    fmt.Sprintf("/products/%d#comment-%d", c.ProductID, c.ID),
			})
		}
	}

	return nil
}

func (s *Service) Update(ctx context.Context, id, requesterID int64, content string) (*domain.Comment, error) {
	if id <= 0 {
		return nil, domain.ErrBadParamInput
	}

	c, err := s.commentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if c.UserID != requesterID {
		return nil, domain.ErrForbidden
	}

	if content = strings.TrimSpace(content); content != "" {
		if err := s.commentRepo.UpdateContent(ctx, id, content); err != nil {
			return nil, err
		}
		c.Content = content
	}

	s.enrichOne(ctx, c)
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id, requesterID int64, asAdmin bool) error {
	if id <= 0 {
		return domain.ErrBadParamInput
	}

	// The live-only read makes deleting an already-deleted id a NotFound
	// rather than a second soft delete.
	c, err := s.commentRepo.GetByID(ctx, id, false)
	if err != nil {
		return err
	}
	if !asAdmin && c.UserID != requesterID {
		return domain.ErrForbidden
	}

	if err := s.commentRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	if c.ParentID != nil {
		// Recount instead of blind decrement so any prior drift self-heals.
		if _, err := s.commentRepo.RecountReplies(ctx, *c.ParentID); err != nil {
			logrus.Warnf("failed to recount replies for comment %d: %v", *c.ParentID, err)
		}
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if id <= 0 {
		return nil, domain.ErrBadParamInput
	}

	c, err := s.commentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	s.enrichOne(ctx, c)

	if c.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *c.ParentID, false)
		if err == nil {
			if user, err := s.userRepo.GetByID(ctx, parent.UserID); err == nil {
				parent.User = &user
			}
			c.Parent = parent
		}
	}
	return c, nil
}

func (s *Service) ListReplies(ctx context.Context, id int64, page domain.PageQuery) ([]*domain.Comment, domain.PageInfo, error) {
	if id <= 0 {
		return nil, domain.PageInfo{}, domain.ErrBadParamInput
	}
	if _, err := s.commentRepo.GetByID(ctx, id, false); err != nil {
		return nil, domain.PageInfo{}, err
	}
	page = normalizePage(page)

	filter := domain.CommentFilter{
		ParentID:    &id,
		OldestFirst: true,
	}
	res, total, err := s.commentRepo.Fetch(ctx, filter, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if err := s.fillAuthors(ctx, res); err != nil {
		logrus.Warnf("failed to fill reply authors: %v", err)
	}
	return res, domain.NewPageInfo(total, page), nil
}

func (s *Service) AdminReply(ctx context.Context, commentID, adminID int64, content string) (*domain.Comment, error) {
	if commentID <= 0 {
		return nil, domain.ErrBadParamInput
	}

	target, err := s.commentRepo.GetByID(ctx, commentID, false)
	if err != nil {
		return nil, err
	}

	reply := &domain.Comment{
		ProductID: target.ProductID,
		UserID:    adminID,
		Content:   content,
		ParentID:  &commentID,
	}
	if err := s.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *Service) ListAll(ctx context.Context, productID int64, search string, page domain.PageQuery) ([]*domain.Comment, domain.PageInfo, error) {
	if productID < 0 {
		return nil, domain.PageInfo{}, domain.ErrBadParamInput
	}
	page = normalizePage(page)

	filter := domain.CommentFilter{
		ProductID:    productID,
		Search:       search,
		TopLevelOnly: true,
	}
	res, total, err := s.commentRepo.Fetch(ctx, filter, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if err := s.fillAuthors(ctx, res); err != nil {
		logrus.Warnf("failed to fill comment authors: %v", err)
	}
	if err := s.fillProducts(ctx, res); err != nil {
		logrus.Warnf("failed to fill comment products: %v", err)
	}
	return res, domain.NewPageInfo(total, page), nil
}

func (s *Service) GroupByProduct(ctx context.Context) ([]domain.ProductCommentCount, error) {
	return s.commentRepo.GroupByProduct(ctx)
}

func (s *Service) ProductsWithCommentsByCategory(ctx context.Context, categorySlug string) ([]domain.ProductCommentCount, error) {
	if strings.TrimSpace(categorySlug) == "" {
		return nil, domain.ErrBadParamInput
	}
	return s.commentRepo.GroupByProductInCategory(ctx, categorySlug)
}

// enrichOne fills author and product summaries on a single comment, logging
// and tolerating lookup failures.
func (s *Service) enrichOne(ctx context.Context, c *domain.Comment) {
	if user, err := s.userRepo.GetByID(ctx, c.UserID); err == nil {
		c.User = &user
	} else {
		logrus.Warnf("failed to load comment author %d: %v", c.UserID, err)
	}
	if product, err := s.productRepo.GetByID(ctx, c.ProductID); err == nil {
		c.Product = &product
	} else {
		logrus.Warnf("failed to load comment product %d: %v", c.ProductID, err)
	}
}

// fillAuthors batch-loads the distinct authors of a comment page.
func (s *Service) fillAuthors(ctx context.Context, comments []*domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	userIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.UserID] {
			userIDs = append(userIDs, c.UserID)
			seen[c.UserID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for _, c := range comments {
		if u, ok := userMap[c.UserID]; ok {
			user := u
			c.User = &user
		}
	}
	return nil
}

// fillProducts batch-loads the distinct products of a comment page.
func (s *Service) fillProducts(ctx context.Context, comments []*domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	productIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.ProductID] {
			productIDs = append(productIDs, c.ProductID)
			seen[c.ProductID] = true
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	productMap := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}
	for _, c := range comments {
		if p, ok := productMap[c.ProductID]; ok {
			product := p
			c.Product = &product
		}
	}
	return nil
}

// fillParents attaches a bare parent summary to replies in a user listing.
func (s *Service) fillParents(ctx context.Context, comments []*domain.Comment) error {
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		parent, err := s.commentRepo.GetByID(ctx, *c.ParentID, false)
		if err != nil {
			continue
		}
		c.Parent = parent
	}
	return nil
}
