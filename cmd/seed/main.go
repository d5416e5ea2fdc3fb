package main

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"time"

	"tour-catalog/internal/config"
	"tour-catalog/internal/database"
	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/imageproc"
	"tour-catalog/internal/models"
	"tour-catalog/internal/queue"
	"tour-catalog/internal/repository"
	"tour-catalog/internal/service"
	"tour-catalog/internal/storage"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type seedSubPackage struct {
	Name     string
	Duration string
	Price    float64
	Deal     bool
	Colour   color.NRGBA
	Children []seedSubPackage
}

type seedPackage struct {
	Category    string
	Description string
	SubPackages []seedSubPackage
}

var catalog = []seedPackage{
	{
		Category:    "Spiritual Tours",
		Description: "Pilgrimages across the Himalayas",
		SubPackages: []seedSubPackage{
			{
				Name: "Char Dham Yatra", Duration: "10 Days / 9 Nights", Price: 42000,
				Colour: color.NRGBA{R: 196, G: 120, B: 40, A: 255},
				Children: []seedSubPackage{
					{Name: "Kedarnath Helicopter Package", Duration: "2 Days / 1 Night", Price: 18500, Deal: true, Colour: color.NRGBA{R: 70, G: 110, B: 180, A: 255}},
					{Name: "Badrinath Darshan", Duration: "3 Days / 2 Nights", Price: 9500, Colour: color.NRGBA{R: 150, G: 60, B: 60, A: 255}},
				},
			},
			{Name: "Haridwar and Rishikesh", Duration: "3 Days / 2 Nights", Price: 7800, Colour: color.NRGBA{R: 230, G: 170, B: 60, A: 255}},
		},
	},
	{
		Category:    "Adventure Tours",
		Description: "Treks, rafting and camping",
		SubPackages: []seedSubPackage{
			{Name: "Valley of Flowers Trek", Duration: "6 Days / 5 Nights", Price: 14500, Deal: true, Colour: color.NRGBA{R: 60, G: 150, B: 80, A: 255}},
			{Name: "Ganga Rafting Camp", Duration: "2 Days / 1 Night", Price: 3200, Colour: color.NRGBA{R: 40, G: 120, B: 160, A: 255}},
		},
	},
}

func main() {
	logrus.Info("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3PublicURL,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	seedAdmin(ctx, cfg, mongoDB.Database)

	// Media deletions queued while seeding are handled before exit.
	cleanupQueue := queue.NewMemoryQueue(64)
	cleanup := queue.NewProcessor(cleanupQueue, s3Client, nil, 1)
	cleanup.Start(ctx)
	defer cleanup.Stop()

	packageRepo := repository.NewPackageRepository(mongoDB.Database)
	subPackages := service.NewSubPackageService(service.SubPackageServiceConfig{
		PackageRepo:    packageRepo,
		SubPackageRepo: repository.NewSubPackageRepository(mongoDB.Database),
		Media:          s3Client,
		Images:         imageproc.NewProcessor(cfg.ImageMaxWidth),
		Cleanup:        cleanupQueue,
	})
	packages := service.NewPackageService(packageRepo, nil)

	seedCatalog(ctx, mongoDB.Database, packages, subPackages)

	logrus.Info("Seed completed successfully!")
}

// seedAdmin creates the first admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set. An existing account is left untouched.
func seedAdmin(ctx context.Context, cfg *config.Config, db *mongo.Database) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logrus.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	users := service.NewUserService(repository.NewUserRepository(db))
	admin, err := users.CreateUser(ctx, &models.CreateUserRequest{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     models.RoleAdmin,
	})
	switch {
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		logrus.WithField("email", cfg.AdminEmail).Info("Admin account already exists")
	case err != nil:
		logrus.WithError(err).Fatal("Failed to seed admin account")
	default:
		logrus.WithField("userId", admin.ID.Hex()).Info("Seeded admin account")
	}
}

func seedCatalog(ctx context.Context, db *mongo.Database, packages *service.PackageService, subPackages *service.SubPackageService) {
	// Clear existing catalog
	for _, collection := range []string{database.PackagesCollection, database.SubPackagesCollection} {
		if _, err := db.Collection(collection).DeleteMany(ctx, bson.M{}); err != nil {
			logrus.WithError(err).WithField("collection", collection).Fatal("Failed to clear collection")
		}
	}

	count := 0
	for _, p := range catalog {
		pkg, err := packages.CreatePackage(ctx, &models.CreatePackageRequest{
			Category:    p.Category,
			Description: p.Description,
		})
		if err != nil {
			logrus.WithError(err).Fatal("Failed to seed package")
		}
		count += seedChildren(ctx, subPackages, pkg.ID.Hex(), p.SubPackages)
	}

	logrus.WithFields(logrus.Fields{"packages": len(catalog), "subPackages": count}).Info("Seeded catalog")
}

// seedChildren creates each sub-package under parentID through the normal
// write path, so parent links and media are stored the same way the API does.
func seedChildren(ctx context.Context, subPackages *service.SubPackageService, parentID string, children []seedSubPackage) int {
	count := 0
	for i, child := range children {
		sp, err := subPackages.CreateSubPackage(ctx, &models.SubPackageRequest{
			Name:           models.Some(child.Name),
			Description:    models.Some(child.Name + " with stays, transfers and guided visits."),
			Duration:       models.Some(child.Duration),
			Price:          models.SomeFloat(child.Price),
			IsDealOfTheDay: models.SomeBool(child.Deal),
			PackageID:      models.Some(parentID),
			PricingDetails: models.PricingDetailList{
				{NoOfPax: 2, Cab: "Sedan", CostPerPax: child.Price / 2},
				{NoOfPax: 4, Cab: "SUV", CostPerPax: child.Price / 3},
			},
		}, service.SubPackageFiles{
			MainImage: placeholderImage(child.Colour, "main.png"),
		})
		if err != nil {
			logrus.WithError(err).WithField("name", child.Name).Fatal("Failed to seed sub-package")
		}

		// Stagger creation times so the latest listing has a stable order.
		time.Sleep(time.Duration(i+1) * time.Millisecond)

		count++
		count += seedChildren(ctx, subPackages, sp.ID.Hex(), child.Children)
	}
	return count
}

// placeholderImage renders a solid colour PNG.
func placeholderImage(c color.NRGBA, name string) *models.Upload {
	img := imaging.New(1200, 800, c)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		logrus.WithError(err).Fatal("Failed to render placeholder image")
	}

	return &models.Upload{
		Filename:    name,
		ContentType: "image/png",
		Data:        buf.Bytes(),
	}
}
