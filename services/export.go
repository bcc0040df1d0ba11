package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"risk-hand/config"
	"risk-hand/models"
	"risk-hand/storage"
)

// ExportService builds dossier snapshots of the full catalog and archives
// them in the S3 bucket. Used by the export endpoint and the cron schedule.
type ExportService struct {
	Config   *config.Config
	DB       *gorm.DB
	S3Client *s3.Client
	Logger   *zap.Logger
}

// NewExportService creates a new ExportService instance.
func NewExportService(cfg *config.Config, db *gorm.DB, s3 *s3.Client, logger *zap.Logger) *ExportService {
	return &ExportService{
		Config:   cfg,
		DB:       db,
		S3Client: s3,
		Logger:   logger,
	}
}

// ProductDossier is one product aggregate plus its derived summary.
type ProductDossier struct {
	Product models.Product `json:"product"`
	Summary ProductSummary `json:"summary"`
}

// DossierSnapshot is the archived document.
type DossierSnapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Products    []ProductDossier `json:"products"`
}

// BuildSnapshot loads every product aggregate and computes its summary.
func (e *ExportService) BuildSnapshot(ctx context.Context) (*DossierSnapshot, error) {
	var products []models.Product
	err := e.DB.WithContext(ctx).
		Preload("Assessments").
		Preload("Uses", func(db *gorm.DB) *gorm.DB {
			return db.Order("country_code, position")
		}).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	snapshot := &DossierSnapshot{GeneratedAt: time.Now().UTC()}
	for i := range products {
		snapshot.Products = append(snapshot.Products, ProductDossier{
			Product: products[i],
			Summary: Summarize(&products[i]),
		})
	}
	return snapshot, nil
}

// RunFullArchive builds a snapshot, uploads it to the archive bucket and
// returns the object link.
func (e *ExportService) RunFullArchive(ctx context.Context) (string, error) {
	snapshot, err := e.BuildSnapshot(ctx)
	if err != nil {
		e.Logger.Error("Failed to build dossier snapshot", zap.Error(err))
		return "", err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("dossiers/dossier-%s.json", snapshot.GeneratedAt.Format("2006-01-02T15-04-05Z"))
	link, err := storage.UploadFile(ctx, e.S3Client, e.Config.ArchiveS3Bucket, key, data, e.Config)
	if err != nil {
		e.Logger.Error("Failed to upload dossier snapshot", zap.String("key", key), zap.Error(err))
		return "", err
	}

	e.Logger.Info("Dossier snapshot archived",
		zap.String("key", key),
		zap.Int("products", len(snapshot.Products)),
		zap.Int("bytes", len(data)))
	return link, nil
}
