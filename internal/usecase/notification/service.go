package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shopway/shopway/domain"
)

type Service struct {
	notifRepo domain.NotificationRepository
	userRepo  domain.UserRepository
}

var _ domain.NotificationUsecase = (*Service)(nil)

func NewService(n domain.NotificationRepository, u domain.UserRepository) *Service {
	return &Service{
		notifRepo: n,
		userRepo:  u,
	}
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func (s *Service) FetchByUser(ctx context.Context, userID int64, page domain.PageQuery) ([]*domain.Notification, domain.PageInfo, error) {
	if userID <= 0 {
		return nil, domain.PageInfo{}, domain.ErrBadParamInput
	}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 || page.Limit > MaxLimit {
		page.Limit = DefaultLimit
	}

	res, total, err := s.notifRepo.FetchByUser(ctx, userID, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	if err := s.fillActors(ctx, res); err != nil {
		logrus.Warnf("failed to fill notification actors: %v", err)
	}
	return res, domain.NewPageInfo(total, page), nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	if id <= 0 {
		return domain.ErrBadParamInput
	}
	return s.notifRepo.MarkRead(ctx, id, userID)
}

func (s *Service) fillActors(ctx context.Context, notifs []*domain.Notification) error {
	if len(notifs) == 0 {
		return nil
	}

	actorIDs := make([]int64, 0, len(notifs))
	seen := make(map[int64]bool)
	for _, n := range notifs {
		if n.ActorID != 0 && !seen[n.ActorID] {
			actorIDs = append(actorIDs, n.ActorID)
			seen[n.ActorID] = true
		}
	}
	if len(actorIDs) == 0 {
		return nil
	}

	users, err := s.userRepo.GetByIDs(ctx, actorIDs)
	if err != nil {
		return err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for _, n := range notifs {
		if u, ok := userMap[n.ActorID]; ok {
			actor := u
			n.Actor = &actor
		}
	}
	return nil
}
