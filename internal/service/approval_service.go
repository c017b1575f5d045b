package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/repository"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
	"github.com/marcus024/ssu-alumni-tracker/pkg/apperror"
)

// ApprovalService owns the graduate status lifecycle.
type ApprovalService interface {
	ListGraduates(ctx context.Context, status survey.Status) ([]*model.GraduateProfile, error)
	GetGraduate(ctx context.Context, id string) (*model.GraduateProfile, error)
	UpdateStatus(ctx context.Context, id string, to survey.Status) (*model.GraduateProfile, error)
}

type approvalService struct {
	graduates repository.GraduateRepository
	users     repository.UserRepository
	search    GraduateSearchService
	notifier  NotificationService
	mailer    Mailer
}

func NewApprovalService(
	graduates repository.GraduateRepository,
	users repository.UserRepository,
	search GraduateSearchService,
	notifier NotificationService,
	mailer Mailer,
) ApprovalService {
	return &approvalService{
		graduates: graduates,
		users:     users,
		search:    search,
		notifier:  notifier,
		mailer:    mailer,
	}
}

func (s *approvalService) ListGraduates(ctx context.Context, status survey.Status) ([]*model.GraduateProfile, error) {
	return s.graduates.FindAll(ctx, status)
}

func (s *approvalService) GetGraduate(ctx context.Context, id string) (*model.GraduateProfile, error) {
	profile, err := s.graduates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: graduate %s", apperror.ErrNotFound, id)
		}
		return nil, err
	}
	return profile, nil
}

// UpdateStatus applies one edge of the status machine. Approved and
// rejected records must pass back through pending before switching sides.
func (s *approvalService) UpdateStatus(ctx context.Context, id string, to survey.Status) (*model.GraduateProfile, error) {
	if !to.Valid() {
		return nil, apperror.New(http.StatusBadRequest, "unknown status", apperror.ErrInvalidInput)
	}

	profile, err := s.GetGraduate(ctx, id)
	if err != nil {
		return nil, err
	}

	if !survey.CanTransition(profile.Status, to) {
		return nil, apperror.New(http.StatusConflict,
			fmt.Sprintf("status transition %s -> %s is not allowed", profile.Status, to),
			apperror.ErrConflict)
	}

	if err := s.graduates.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	profile.Status = to

	s.syncDirectory(profile)
	s.notifyStatusChange(ctx, profile)

	return profile, nil
}

// syncDirectory keeps the searchable alumni directory limited to approved
// profiles.
func (s *approvalService) syncDirectory(profile *model.GraduateProfile) {
	if s.search == nil {
		return
	}
	var err error
	if profile.Status == survey.StatusApproved {
		err = s.search.IndexGraduate(profile)
	} else {
		err = s.search.RemoveGraduate(profile.ID.String())
	}
	if err != nil {
		log.Printf("failed to update alumni directory for %s: %v", profile.ID, err)
	}
}

func (s *approvalService) notifyStatusChange(ctx context.Context, profile *model.GraduateProfile) {
	message := fmt.Sprintf("Your graduate tracer survey is now %s.", profile.Status)

	if s.notifier != nil {
		if user, err := s.users.FindByEmail(ctx, profile.Email); err == nil {
			notification := &model.Notification{
				UserID:  user.ID,
				Type:    "status_change",
				Message: message,
			}
			if err := s.notifier.CreateNotification(ctx, notification); err != nil {
				log.Printf("failed to create status notification: %v", err)
			}
		}
	}

	if s.mailer != nil {
		s.mailer.Send(profile.Email, "Tracer survey status update", message)
	}
}
