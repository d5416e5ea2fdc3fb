package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-catalog/internal/cache"
	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/imageproc"
	"tour-catalog/internal/models"
	"tour-catalog/internal/queue"
	"tour-catalog/internal/repository"
	"tour-catalog/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Latest tour package limits.
const (
	DefaultLatestLimit = 4
	MaxLatestLimit     = 20
)

// MaxGalleryUploads is the number of gallery files accepted per request.
const MaxGalleryUploads = 10

const mediaFolder = "subpackages"

// SubPackageFiles are the images received with a create or update request.
type SubPackageFiles struct {
	MainImage     *models.Upload
	GalleryImages []models.Upload
}

// SubPackageService implements the catalog write and read protocols.
type SubPackageService struct {
	packageRepo    repository.PackageRepository
	subPackageRepo repository.SubPackageRepository
	media          storage.MediaStore
	images         *imageproc.Processor
	cleanup        queue.Queue
	cache          cache.Cache
}

// SubPackageServiceConfig holds the dependencies of SubPackageService.
// Cache may be nil.
type SubPackageServiceConfig struct {
	PackageRepo    repository.PackageRepository
	SubPackageRepo repository.SubPackageRepository
	Media          storage.MediaStore
	Images         *imageproc.Processor
	Cleanup        queue.Queue
	Cache          cache.Cache
}

// NewSubPackageService creates a new SubPackageService.
func NewSubPackageService(cfg SubPackageServiceConfig) *SubPackageService {
	images := cfg.Images
	if images == nil {
		images = imageproc.NewProcessor(0)
	}
	return &SubPackageService{
		packageRepo:    cfg.PackageRepo,
		subPackageRepo: cfg.SubPackageRepo,
		media:          cfg.Media,
		images:         images,
		cleanup:        cfg.Cleanup,
		cache:          cfg.Cache,
	}
}

// CreateSubPackage validates the parent, uploads the images, stores the record
// and links it into the parent's child list.
func (s *SubPackageService) CreateSubPackage(ctx context.Context, req *models.SubPackageRequest, files SubPackageFiles) (*models.SubPackage, error) {
	if !req.PackageID.Present() {
		return nil, apperrors.ErrPackageIDRequired
	}

	parent, err := s.ResolveParent(ctx, req.PackageID.Value)
	if err != nil {
		return nil, err
	}

	if files.MainImage == nil {
		return nil, apperrors.ErrMainImageRequired
	}

	main, err := s.storeImage(ctx, *files.MainImage)
	if err != nil {
		return nil, err
	}
	uploaded := []models.GalleryImage{{URL: main.URL, PublicID: main.PublicID}}

	gallery, err := s.storeGallery(ctx, files.GalleryImages)
	if err != nil {
		s.discard(primitive.NilObjectID, uploaded)
		return nil, err
	}
	uploaded = append(uploaded, gallery...)

	sp := models.NewSubPackage(req, parent)
	sp.ImageURL = main.URL
	sp.ImagePublicID = main.PublicID
	sp.GalleryImages = gallery

	if err := s.subPackageRepo.Create(ctx, sp); err != nil {
		s.discard(primitive.NilObjectID, uploaded)
		return nil, err
	}

	switch parent.Kind {
	case models.ParentPackage:
		err = s.packageRepo.AppendSubPackage(ctx, parent.ID, sp.ID)
	case models.ParentSubPackage:
		err = s.subPackageRepo.AppendSubPackage(ctx, parent.ID, sp.ID)
	}
	if err != nil {
		// The document and its uploads stay in place and nothing references it.
		logrus.WithError(err).WithFields(logrus.Fields{
			"subPackageId": sp.ID.Hex(),
			"parentKind":   parent.Kind,
			"parentId":     parent.ID.Hex(),
		}).Error("Orphaned sub-package: linking to parent failed")
		return nil, fmt.Errorf("link sub-package %s to %s %s: %w", sp.ID.Hex(), parent.Kind, parent.ID.Hex(), err)
	}

	s.invalidate(ctx, cache.DealsKey, cache.PackagesKey)

	logrus.WithFields(logrus.Fields{
		"subPackageId": sp.ID.Hex(),
		"parentKind":   parent.Kind,
		"parentId":     parent.ID.Hex(),
	}).Info("Sub-package created")

	return sp, nil
}

// ResolveParent looks the id up as a Package first and then as a SubPackage.
func (s *SubPackageService) ResolveParent(ctx context.Context, id string) (models.ParentRef, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ParentRef{}, apperrors.ErrParentNotFound
	}

	_, err = s.packageRepo.FindByID(ctx, objectID)
	if err == nil {
		return models.ParentRef{Kind: models.ParentPackage, ID: objectID}, nil
	}
	if !errors.Is(err, apperrors.ErrPackageNotFound) {
		return models.ParentRef{}, err
	}

	_, err = s.subPackageRepo.FindByID(ctx, objectID)
	if err == nil {
		return models.ParentRef{Kind: models.ParentSubPackage, ID: objectID}, nil
	}
	if errors.Is(err, apperrors.ErrSubPackageNotFound) {
		return models.ParentRef{}, apperrors.ErrParentNotFound
	}
	return models.ParentRef{}, err
}

// UpdateSubPackage merges the provided fields into the record. Gallery files and
// pricing rows are appended; a new main image replaces the old one.
func (s *SubPackageService) UpdateSubPackage(ctx context.Context, id string, req *models.SubPackageRequest, files SubPackageFiles) (*models.SubPackage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrSubPackageNotFound
	}

	existing, err := s.subPackageRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if req.GalleryImages.Set && len(files.GalleryImages) == 0 {
		return nil, apperrors.ErrGalleryImagesNotArray
	}

	update, err := scalarUpdate(req)
	if err != nil {
		return nil, err
	}

	var uploaded []models.GalleryImage
	if files.MainImage != nil {
		main, err := s.storeImage(ctx, *files.MainImage)
		if err != nil {
			return nil, err
		}
		update.Set["imageUrl"] = main.URL
		update.Set["imagePublicId"] = main.PublicID
		uploaded = append(uploaded, models.GalleryImage{URL: main.URL, PublicID: main.PublicID})
	}

	gallery, err := s.storeGallery(ctx, files.GalleryImages)
	if err != nil {
		s.discard(objectID, uploaded)
		return nil, err
	}
	uploaded = append(uploaded, gallery...)
	update.AppendGalleryImages = gallery

	if len(req.PricingDetails) > 0 {
		update.AppendPricingDetails = req.PricingDetails.Records()
	}

	sp, err := s.subPackageRepo.Update(ctx, objectID, update)
	if err != nil {
		s.discard(objectID, uploaded)
		return nil, err
	}

	if files.MainImage != nil && existing.ImageURL != "" {
		s.discard(objectID, []models.GalleryImage{{URL: existing.ImageURL, PublicID: existing.ImagePublicID}})
	}

	s.invalidate(ctx, cache.DealsKey)

	return sp, nil
}

// scalarUpdate collects the replaced scalar fields of an update request.
func scalarUpdate(req *models.SubPackageRequest) (*models.SubPackageUpdate, error) {
	set := map[string]interface{}{}

	text := map[string]models.OptionalString{
		"name":           req.Name,
		"description":    req.Description,
		"duration":       req.Duration,
		"introduction":   req.Introduction,
		"tourPlan":       req.TourPlan,
		"includeExclude": req.IncludeExclude,
	}
	for field, value := range text {
		if value.Present() {
			set[field] = value.Value
		}
	}

	if req.Price.Present() {
		set["price"] = req.Price.Value
	}
	if req.IsDealOfTheDay.Set {
		set["isDealOfTheDay"] = req.IsDealOfTheDay.Value
	}
	if req.PackageID.Present() {
		packageID, err := primitive.ObjectIDFromHex(req.PackageID.Value)
		if err != nil {
			return nil, apperrors.ErrParentNotFound
		}
		set["packageId"] = packageID
	}

	return &models.SubPackageUpdate{Set: set}, nil
}

// DeleteSubPackage removes a single sub-package. Children and the parent's
// child list are left as they are.
func (s *SubPackageService) DeleteSubPackage(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrSubPackageNotFound
	}

	if err := s.subPackageRepo.Delete(ctx, objectID); err != nil {
		return err
	}

	s.invalidate(ctx, cache.DealsKey)
	return nil
}

// DeleteGalleryImage removes one gallery entry and schedules its media for deletion.
func (s *SubPackageService) DeleteGalleryImage(ctx context.Context, subPackageID, imageID string) error {
	spID, err := primitive.ObjectIDFromHex(subPackageID)
	if err != nil {
		return apperrors.ErrSubPackageNotFound
	}
	imgID, err := primitive.ObjectIDFromHex(imageID)
	if err != nil {
		return apperrors.ErrGalleryImageNotFound
	}

	sp, err := s.subPackageRepo.FindByID(ctx, spID)
	if err != nil {
		return err
	}

	image, ok := sp.FindGalleryImage(imgID)
	if !ok {
		return apperrors.ErrGalleryImageNotFound
	}

	if err := s.subPackageRepo.PullGalleryImage(ctx, spID, imgID); err != nil {
		return err
	}

	s.discard(spID, []models.GalleryImage{image})
	s.invalidate(ctx, cache.DealsKey)
	return nil
}

// ListByParent returns the direct children of a package or sub-package.
func (s *SubPackageService) ListByParent(ctx context.Context, packageID string) ([]models.SubPackage, error) {
	objectID, err := primitive.ObjectIDFromHex(packageID)
	if err != nil {
		return []models.SubPackage{}, nil
	}
	return s.subPackageRepo.FindByPackageID(ctx, objectID)
}

// GetSubPackage returns a single sub-package.
func (s *SubPackageService) GetSubPackage(ctx context.Context, id string) (*models.SubPackage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrSubPackageNotFound
	}
	return s.subPackageRepo.FindByID(ctx, objectID)
}

// ListAll returns every sub-package.
func (s *SubPackageService) ListAll(ctx context.Context) ([]models.SubPackage, error) {
	return s.subPackageRepo.FindAll(ctx)
}

// GetDealsOfTheDay returns the flagged sub-packages, served from cache when possible.
func (s *SubPackageService) GetDealsOfTheDay(ctx context.Context) ([]models.SubPackage, error) {
	var deals []models.SubPackage
	if s.cached(ctx, cache.DealsKey, &deals) && len(deals) > 0 {
		return deals, nil
	}

	deals, err := s.subPackageRepo.FindDeals(ctx)
	if err != nil {
		return nil, err
	}
	if len(deals) == 0 {
		return nil, apperrors.ErrNoDealOfTheDay
	}

	s.store(ctx, cache.DealsKey, deals, cache.DealsTTL)
	return deals, nil
}

// GetLatest returns the newest sub-packages. limit is clamped to 1..MaxLatestLimit
// and defaults to DefaultLatestLimit.
func (s *SubPackageService) GetLatest(ctx context.Context, limit int) ([]models.SubPackage, error) {
	if limit < 1 {
		limit = DefaultLatestLimit
	}
	if limit > MaxLatestLimit {
		limit = MaxLatestLimit
	}
	return s.subPackageRepo.FindLatest(ctx, limit)
}

func (s *SubPackageService) storeImage(ctx context.Context, upload models.Upload) (*storage.UploadResult, error) {
	img, err := s.images.Normalize(upload)
	if err != nil {
		return nil, err
	}

	result, err := s.media.Upload(ctx, imageproc.ObjectKey(mediaFolder, img.Ext), img.Data, img.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", upload.Filename, err)
	}
	return result, nil
}

func (s *SubPackageService) storeGallery(ctx context.Context, uploads []models.Upload) ([]models.GalleryImage, error) {
	gallery := make([]models.GalleryImage, 0, len(uploads))
	for _, upload := range uploads {
		result, err := s.storeImage(ctx, upload)
		if err != nil {
			s.discard(primitive.NilObjectID, gallery)
			return nil, err
		}
		gallery = append(gallery, models.GalleryImage{
			ID:       primitive.NewObjectID(),
			URL:      result.URL,
			PublicID: result.PublicID,
		})
	}
	return gallery, nil
}

// discard queues media for deletion. A full or closed queue only logs.
func (s *SubPackageService) discard(subPackageID primitive.ObjectID, images []models.GalleryImage) {
	if s.cleanup == nil {
		return
	}
	for _, img := range images {
		job := queue.CleanupJob{
			SubPackageID: subPackageID,
			ImageID:      img.ID,
			PublicID:     img.PublicID,
			URL:          img.URL,
		}
		if err := s.cleanup.Enqueue(job); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"subPackageId": subPackageID.Hex(),
				"publicId":     img.PublicID,
			}).Warn("Media cleanup not scheduled")
		}
	}
}

func (s *SubPackageService) invalidate(ctx context.Context, keys ...string) {
	invalidate(ctx, s.cache, keys...)
}

func (s *SubPackageService) cached(ctx context.Context, key string, dest interface{}) bool {
	return cached(ctx, s.cache, key, dest)
}

func (s *SubPackageService) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	store(ctx, s.cache, key, value, ttl)
}
