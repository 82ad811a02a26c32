package service

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/condo_portal/internal/model"
	"github.com/Freeeeeet/condo_portal/internal/repository"
	"github.com/Freeeeeet/condo_portal/internal/repository/base"
	"go.uber.org/zap"
)

// AnnouncementService лента объявлений и мероприятий
type AnnouncementService struct {
	announcements *repository.AnnouncementRepository
	events        *repository.EventRepository
	logger        *zap.Logger
}

func NewAnnouncementService(
	announcements *repository.AnnouncementRepository,
	events *repository.EventRepository,
	logger *zap.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		events:        events,
		logger:        logger,
	}
}

// Feed возвращает объявления и предстоящие мероприятия
func (s *AnnouncementService) Feed(ctx context.Context) ([]*model.Announcement, []*model.Event, error) {
	announcements, err := s.announcements.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	events, err := s.events.ListUpcoming(ctx)
	if err != nil {
		return nil, nil, err
	}

	return announcements, events, nil
}

// CreateEvent создаёт мероприятие
func (s *AnnouncementService) CreateEvent(ctx context.Context, title, date, eventTime, description, imageURL string) (*model.Event, error) {
	event, err := buildEvent(title, date, eventTime, description, imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("Event created",
		zap.Int64("event_id", event.ID),
		zap.String("title", event.Title),
	)

	return event, nil
}

// UpdateEvent обновляет мероприятие
func (s *AnnouncementService) UpdateEvent(ctx context.Context, id int64, title, date, eventTime, description, imageURL string) (*model.Event, error) {
	event, err := buildEvent(title, date, eventTime, description, imageURL)
	if err != nil {
		return nil, err
	}
	event.ID = id

	if err := s.events.Update(ctx, event); err != nil {
		if base.IsNotFound(err) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	s.logger.Info("Event updated", zap.Int64("event_id", id))

	return s.events.GetByID(ctx, id)
}

func buildEvent(title, date, eventTime, description, imageURL string) (*model.Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, validationError("title", "is required")
	}
	eventDate, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, validationError("event_date", "must be a date in format "+DateLayout)
	}
	if strings.TrimSpace(eventTime) == "" {
		return nil, validationError("event_time", "is required")
	}

	event := &model.Event{
		Title: title,
		Date:  eventDate,
		Time:  eventTime,
	}
	if description != "" {
		event.Description = &description
	}
	if imageURL != "" {
		event.ImageURL = &imageURL
	}

	return event, nil
}
