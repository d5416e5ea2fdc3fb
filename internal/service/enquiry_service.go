package service

import (
	"context"
	"sync"
	"time"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/mailer"
	"tour-catalog/internal/models"
	"tour-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotifyTimeout bounds a single enquiry notification.
const NotifyTimeout = 30 * time.Second

// EnquiryService stores contact and tour enquiries and notifies the site inbox.
type EnquiryService struct {
	repo    repository.EnquiryRepository
	mailer  mailer.Mailer
	pending sync.WaitGroup
}

// NewEnquiryService creates a new EnquiryService. m may be nil to skip notifications.
func NewEnquiryService(repo repository.EnquiryRepository, m mailer.Mailer) *EnquiryService {
	return &EnquiryService{
		repo:   repo,
		mailer: m,
	}
}

// CreateEnquiry stores an enquiry from the given source. The e-mail
// notification is sent in the background and is best effort.
func (s *EnquiryService) CreateEnquiry(ctx context.Context, source string, req *models.CreateEnquiryRequest) (*models.Enquiry, error) {
	enquiry := &models.Enquiry{
		Name:    req.Name,
		Email:   normalizeEmail(req.Email),
		Phone:   req.Phone,
		Message: req.Message,
		Source:  source,
	}

	if source == models.SourceEnquiry && req.SubPackageID != "" {
		id, err := primitive.ObjectIDFromHex(req.SubPackageID)
		if err != nil {
			return nil, apperrors.ErrSubPackageNotFound
		}
		enquiry.SubPackageID = &id
	}

	if err := s.repo.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		s.notify(ctx, *enquiry)
	}

	return enquiry, nil
}

func (s *EnquiryService) notify(ctx context.Context, enquiry models.Enquiry) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), NotifyTimeout)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer cancel()
		if err := s.mailer.SendEnquiryNotification(notifyCtx, &enquiry); err != nil {
			logrus.WithError(err).WithField("enquiryId", enquiry.ID.Hex()).Warn("Enquiry notification failed")
		}
	}()
}

// Wait blocks until every notification started so far has finished.
func (s *EnquiryService) Wait() {
	s.pending.Wait()
}

// ListEnquiries returns all enquiries, newest first.
func (s *EnquiryService) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	return s.repo.FindAll(ctx)
}

// DeleteEnquiry removes an enquiry.
func (s *EnquiryService) DeleteEnquiry(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrEnquiryNotFound
	}
	return s.repo.Delete(ctx, objectID)
}
