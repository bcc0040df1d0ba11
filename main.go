package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"risk-hand/config"
	"risk-hand/models"
	"risk-hand/providers/eppo"
	"risk-hand/services"
	"risk-hand/storage"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	assessmentsUpsertedCounter prometheus.Counter
	dossierExportsCounter      prometheus.Counter
)

func init() {
	assessmentsUpsertedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessments_upserted_total",
			Help: "Total number of section assessments written via the API.",
		},
	)
	dossierExportsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dossier_exports_total",
			Help: "Total number of dossier snapshots archived to S3.",
		},
	)
	prometheus.MustRegister(assessmentsUpsertedCounter, dossierExportsCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to open tracker database", zap.Error(err))
	}
	logging.Info("Successfully opened tracker database.", zap.String("path", cfg.DBPath))

	// Auto-Migration
	if gin.Mode() == gin.DebugMode {
		logging.Info("Debug mode detected. Dropping tables for fresh start.")
		db.Migrator().DropTable(&models.Product{}, &models.SectionAssessment{}, &models.GAPUse{},
			&models.EPPOCode{}, &models.FocusScenario{}, &models.Annex1Commodity{})
	}
	logging.Info("Running database auto-migration...")
	db.AutoMigrate(&models.Product{}, &models.SectionAssessment{}, &models.GAPUse{},
		&models.EPPOCode{}, &models.FocusScenario{}, &models.Annex1Commodity{})

	// Seeding
	seedDefaultProducts(db, logging)
	seedCropReference(db, logging)

	// Setup Services
	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		logging.Fatal("S3 client creation failed", zap.Error(err))
	}
	exportService := services.NewExportService(cfg, db, s3Client, logging)
	eppoFetcher := eppo.NewFetcher(cfg, logging)

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Routes
	setupProductRoutes(router, db, logging)
	setupAssessmentRoutes(router, db, logging)
	setupCountryRoutes(router, db, logging)
	setupCatalogRoutes(router)
	setupCropRoutes(router, db, eppoFetcher, logging)
	setupExportRoutes(router, exportService)

	// Setup Cron
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		logging.Info("Running scheduled dossier archive...")
		link, err := exportService.RunFullArchive(context.Background())
		if err != nil {
			logging.Error("Cron archive failed", zap.Error(err))
		} else {
			logging.Info("Cron archive completed", zap.String("link", link))
			dossierExportsCounter.Inc()
		}
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// loadProductAggregate reconstructs the full aggregate: product row plus all
// assessments and uses, the latter ordered by country and position.
func loadProductAggregate(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.
		Preload("Assessments").
		Preload("Uses", func(db *gorm.DB) *gorm.DB {
			return db.Order("country_code, position")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func setupProductRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/products")

	// Plain list without children
	rg.GET("/", func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			log.Error("Database query for all products failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, products)
	})

	rg.POST("/", func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if product.ID == "" || product.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id and name are required"})
			return
		}
		if err := db.Create(&product).Error; err != nil {
			log.Error("Failed to create product", zap.String("id", product.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	})

	// Body-driven endpoint for filtered queries
	rg.POST("/query", func(c *gin.Context) {
		type ProductQuery struct {
			ActiveSubstance string `json:"active_substance"`
			ProductType     string `json:"product_type"`
			ApprovalStatus  string `json:"approval_status"`
			Programme       string `json:"programme"`
			Limit           int    `json:"limit"`
		}

		var req ProductQuery
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		query := db.Model(&models.Product{})

		if req.ActiveSubstance != "" {
			query = query.Where("active_substance = ?", req.ActiveSubstance)
		}
		if req.ProductType != "" {
			query = query.Where("product_type = ?", req.ProductType)
		}
		if req.ApprovalStatus != "" {
			query = query.Where("approval_status = ?", req.ApprovalStatus)
		}
		if req.Programme != "" {
			query = query.Where("programme = ?", req.Programme)
		}
		if req.Limit > 0 {
			query = query.Limit(req.Limit)
		}

		var products []models.Product
		if err := query.Order("created_at desc").Find(&products).Error; err != nil {
			log.Error("Database query for products failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		c.JSON(http.StatusOK, products)
	})

	// Full aggregate fetch
	rg.GET("/:id", func(c *gin.Context) {
		id := c.Param("id")
		product, err := loadProductAggregate(db, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Error("DB error fetching product aggregate", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, product)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Error("DB error checking for product on PUT", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		// Bind only the fields that were sent
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		// The key and the owned collections are not updatable through this route
		delete(updateData, "id")
		delete(updateData, "assessments")
		delete(updateData, "uses")

		if err := db.Model(&product).Updates(updateData).Error; err != nil {
			log.Error("DB error updating product", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	})

	// Physical removal of the product and its children
	rg.DELETE("/:id", func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Error("DB error checking for product on DELETE", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", id).Delete(&models.SectionAssessment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", id).Delete(&models.GAPUse{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			log.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted", "id": id})
	})

	// Derived views over the aggregate
	rg.GET("/:id/summary", func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Assessments").First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Error("DB error fetching product summary", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		c.JSON(http.StatusOK, services.Summarize(&product))
	})
}

func setupAssessmentRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/products")

	rg.GET("/:id/assessments", func(c *gin.Context) {
		id := c.Param("id")
		if err := db.First(&models.Product{}, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var assessments []models.SectionAssessment
		if err := db.Where("product_id = ?", id).Order("section_id").Find(&assessments).Error; err != nil {
			log.Error("Database query for assessments failed", zap.String("product_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, assessments)
	})

	// Upsert one section assessment, keyed by (product, section)
	rg.PATCH("/:id/assessments", func(c *gin.Context) {
		id := c.Param("id")

		var payload struct {
			SectionID   string                      `json:"section_id" binding:"required"`
			RiskLevel   models.RiskLevel            `json:"risk_level"`
			Summary     string                      `json:"summary"`
			Assessor    string                      `json:"assessor"`
			Details     map[string]any              `json:"details"`
			UseOutcomes map[string]models.RiskLevel `json:"use_outcomes"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid fields (section_id required)"})
			return
		}

		if _, ok := models.SectionByID(payload.SectionID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown section: " + payload.SectionID})
			return
		}
		if payload.RiskLevel == "" {
			payload.RiskLevel = models.RiskNotStarted
		}
		if !models.ValidRiskLevel(payload.RiskLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown risk level: " + string(payload.RiskLevel)})
			return
		}
		for useID, level := range payload.UseOutcomes {
			if !models.ValidRiskLevel(level) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown risk level for use " + useID})
				return
			}
		}

		if err := db.First(&models.Product{}, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Error("DB error checking for product on assessment upsert", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		assessment := models.SectionAssessment{
			ProductID: id,
			SectionID: payload.SectionID,
			RiskLevel: payload.RiskLevel,
			Summary:   payload.Summary,
			Assessor:  payload.Assessor,
		}
		if payload.Details != nil {
			b, _ := json.Marshal(payload.Details)
			assessment.Details = datatypes.JSON(b)
		}
		if payload.UseOutcomes != nil {
			b, _ := json.Marshal(payload.UseOutcomes)
			assessment.UseOutcomes = datatypes.JSON(b)
		}

		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "section_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"risk_level", "summary", "assessor", "details", "use_outcomes", "updated_at",
			}),
		}).Create(&assessment).Error
		if err != nil {
			log.Error("Failed to upsert assessment",
				zap.String("product_id", id),
				zap.String("section_id", payload.SectionID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save assessment"})
			return
		}
		assessmentsUpsertedCounter.Inc()

		// Re-fetch so the response carries the stored row, not the insert attempt
		var stored models.SectionAssessment
		if err := db.Where("product_id = ? AND section_id = ?", id, payload.SectionID).First(&stored).Error; err != nil {
			log.Error("Failed to reload upserted assessment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, stored)
	})
}

func setupCountryRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/products")

	rg.GET("/:id/countries", func(c *gin.Context) {
		id := c.Param("id")
		if err := db.First(&models.Product{}, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var uses []models.GAPUse
		if err := db.Where("product_id = ?", id).Order("country_code, position").Find(&uses).Error; err != nil {
			log.Error("Database query for uses failed", zap.String("product_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, uses)
	})

	// Wholesale replacement of the country/use list. Delete-then-insert inside
	// one transaction so a failure leaves the previous list intact.
	rg.PUT("/:id/countries", func(c *gin.Context) {
		id := c.Param("id")

		type UseInput struct {
			UseID       string `json:"use_id" binding:"required"`
			Description string `json:"description"`
			Notes       string `json:"notes"`
		}
		type CountryInput struct {
			CountryCode string     `json:"country_code" binding:"required"`
			Uses        []UseInput `json:"uses"`
		}
		// An empty or missing list is a legal replacement: it clears all uses.
		var req struct {
			Countries []CountryInput `json:"countries"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Use IDs must be unique within the product
		seen := map[string]bool{}
		for _, country := range req.Countries {
			for _, use := range country.Uses {
				if seen[use.UseID] {
					c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate use id: " + use.UseID})
					return
				}
				seen[use.UseID] = true
			}
		}

		if err := db.First(&models.Product{}, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Error("DB error checking for product on countries PUT", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var rows []models.GAPUse
		for _, country := range req.Countries {
			for i, use := range country.Uses {
				rows = append(rows, models.GAPUse{
					ProductID:   id,
					UseID:       use.UseID,
					CountryCode: country.CountryCode,
					Position:    i,
					Description: use.Description,
					Notes:       use.Notes,
				})
			}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", id).Delete(&models.GAPUse{}).Error; err != nil {
				return err
			}
			if len(rows) == 0 {
				return nil
			}
			return tx.Create(&rows).Error
		})
		if err != nil {
			log.Error("Failed to replace uses", zap.String("product_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to replace uses"})
			return
		}

		var uses []models.GAPUse
		if err := db.Where("product_id = ?", id).Order("country_code, position").Find(&uses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, uses)
	})
}

func setupCatalogRoutes(router *gin.Engine) {
	rg := router.Group("/catalog")
	rg.GET("/sections", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SectionGroups())
	})
	rg.GET("/risk-levels", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.RiskLevels())
	})
}

func setupCropRoutes(router *gin.Engine, db *gorm.DB, fetcher *eppo.Fetcher, log *zap.Logger) {
	rg := router.Group("/crops")

	rg.GET("/eppo", func(c *gin.Context) {
		query := db.Model(&models.EPPOCode{})
		if level := c.Query("level"); level != "" {
			query = query.Where("level = ?", level)
		}
		var codes []models.EPPOCode
		if err := query.Order("code").Find(&codes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, codes)
	})

	rg.GET("/eppo/:code", func(c *gin.Context) {
		var code models.EPPOCode
		if err := db.First(&code, "code = ?", c.Param("code")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "eppo code not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, code)
	})

	rg.GET("/focus-scenarios", func(c *gin.Context) {
		query := db.Model(&models.FocusScenario{})
		if model := c.Query("model"); model != "" {
			query = query.Where("model = ?", model)
		}
		var scenarios []models.FocusScenario
		if err := query.Order("scenario_code").Find(&scenarios).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, scenarios)
	})

	rg.GET("/commodities", func(c *gin.Context) {
		query := db.Model(&models.Annex1Commodity{})
		if parent := c.Query("parent"); parent != "" {
			query = query.Where("parent_code = ?", parent)
		}
		var commodities []models.Annex1Commodity
		if err := query.Order("code").Find(&commodities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, commodities)
	})

	// Async verification of all stored codes against the EPPO API
	rg.POST("/verify", func(c *gin.Context) {
		var codes []models.EPPOCode
		if err := db.Find(&codes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		go func() {
			ctx := context.Background()
			mismatches := 0
			for _, code := range codes {
				result, err := fetcher.Verify(ctx, code.Code, code.PreferredName)
				if err != nil {
					log.Error("EPPO verification request failed", zap.String("code", code.Code), zap.Error(err))
					continue
				}
				if result.Status != eppo.VerifyOK {
					mismatches++
				}
			}
			log.Info("EPPO verification completed",
				zap.Int("codes", len(codes)),
				zap.Int("mismatches", mismatches))
		}()

		c.JSON(http.StatusAccepted, gin.H{"message": "EPPO verification triggered.", "codes": len(codes)})
	})
}

func setupExportRoutes(router *gin.Engine, exportService *services.ExportService) {
	rg := router.Group("/exports")
	rg.POST("/dossier", func(c *gin.Context) {
		go func() {
			link, err := exportService.RunFullArchive(context.Background())
			if err != nil {
				exportService.Logger.Error("Async dossier export failed", zap.Error(err))
			} else {
				dossierExportsCounter.Inc()
				exportService.Logger.Info("Async dossier export completed", zap.String("link", link))
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"message": "Dossier export triggered."})
	})
}

func mustJSON(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

func seedDefaultProducts(db *gorm.DB, logger *zap.Logger) {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			ID:              "prod-alphamethrin",
			Name:            "Alphamethrin 100 EC",
			ActiveSubstance: "alpha-cypermethrin",
			ProductType:     models.TypeInsecticide,
			Programme:       "AIR-5",
			SubmissionType:  "renewal",
			ApprovalStatus:  models.StatusPending,
			Assessments: []models.SectionAssessment{
				{SectionID: "toxicology", RiskLevel: models.RiskPass, Summary: "ADI and AOEL confirmed.", Assessor: "M. Keller"},
				{SectionID: "bees", RiskLevel: models.RiskRefinementNeeded, Summary: "Tier 1 HQ exceeded for orchard uses.", Details: mustJSON(map[string]any{"notes": "Higher-tier semi-field study requested."})},
				{SectionID: "aquatics", RiskLevel: models.RiskCritical, Summary: "Acute TER below trigger for all FOCUS scenarios."},
				{SectionID: "groundwater", RiskLevel: models.RiskNotStarted},
			},
			Uses: []models.GAPUse{
				{UseID: "de-osr-01", CountryCode: "DE", Position: 0, Description: "Winter oilseed rape, 1 x 15 g a.s./ha, BBCH 50-59"},
				{UseID: "fr-orch-01", CountryCode: "FR", Position: 0, Description: "Pome fruit, 2 x 10 g a.s./ha", Notes: "Buffer zone 20 m under review."},
			},
		},
		{
			ID:              "prod-metraflor",
			Name:            "Metraflor 500 SC",
			ActiveSubstance: "metrafenone",
			ProductType:     models.TypeFungicide,
			Programme:       "AIR-4",
			SubmissionType:  "new",
			ApprovalStatus:  models.StatusApproved,
			Conclusion:      "Approved for cereal uses; vineyard uses withdrawn by applicant.",
			Assessments: []models.SectionAssessment{
				{SectionID: "residues", RiskLevel: models.RiskPass, Summary: "MRLs set per Reg 396/2005."},
				{SectionID: "groundwater", RiskLevel: models.RiskPassMitigation, Summary: "PECgw below 0.1 µg/L with restricted application window."},
			},
			Uses: []models.GAPUse{
				{UseID: "de-wheat-01", CountryCode: "DE", Position: 0, Description: "Winter wheat, 2 x 150 g a.s./ha, BBCH 30-61"},
			},
		},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&products).Error
	})
	if err != nil {
		logger.Warn("Failed to seed default products", zap.Error(err))
	} else {
		logger.Info("Default products seeded.")
	}
}

func seedCropReference(db *gorm.DB, logger *zap.Logger) {
	var count int64
	db.Model(&models.EPPOCode{}).Count(&count)
	if count > 0 {
		return
	}

	eppoCodes := []models.EPPOCode{
		{Code: "TRZAX", PreferredName: "Triticum aestivum", Level: "species", ParentCode: "1TRZG"},
		{Code: "HORVX", PreferredName: "Hordeum vulgare", Level: "species", ParentCode: "1HORG"},
		{Code: "ZEAMX", PreferredName: "Zea mays", Level: "species", ParentCode: "1ZEAG"},
		{Code: "BRSNN", PreferredName: "Brassica napus", Level: "species", ParentCode: "1BRSG"},
		{Code: "MABSD", PreferredName: "Malus domestica", Level: "species", ParentCode: "1MABG"},
		{Code: "VITVI", PreferredName: "Vitis vinifera", Level: "species", ParentCode: "1VITG"},
	}
	focusScenarios := []models.FocusScenario{
		{Model: "gw", ScenarioCode: "CHA", Location: "Châteaudun (FR)", Crops: "TRZAX,ZEAMX,BRSNN"},
		{Model: "gw", ScenarioCode: "HAM", Location: "Hamburg (DE)", Crops: "TRZAX,HORVX,BRSNN"},
		{Model: "gw", ScenarioCode: "PIA", Location: "Piacenza (IT)", Crops: "ZEAMX,VITVI"},
		{Model: "sw", ScenarioCode: "D4", Location: "Skousbo (DK), drainage", Crops: "TRZAX,ZEAMX"},
		{Model: "sw", ScenarioCode: "R1", Location: "Weiherbach (DE), runoff", Crops: "TRZAX,BRSNN,MABSD"},
	}
	commodities := []models.Annex1Commodity{
		{Code: "0500000", Name: "Cereals", HierarchyLevel: 1},
		{Code: "0500010", Name: "Barley", HierarchyLevel: 3, ParentCode: "0500000", UnitWeightG: 0},
		{Code: "0500090", Name: "Wheat", HierarchyLevel: 3, ParentCode: "0500000", UnitWeightG: 0},
		{Code: "0130000", Name: "Pome fruits", HierarchyLevel: 1},
		{Code: "0130010", Name: "Apples", HierarchyLevel: 3, ParentCode: "0130000", UnitWeightG: 112},
		{Code: "0151000", Name: "Grapes", HierarchyLevel: 2, ParentCode: "0150000", UnitWeightG: 500},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&eppoCodes).Error; err != nil {
			return err
		}
		if err := tx.Create(&focusScenarios).Error; err != nil {
			return err
		}
		return tx.Create(&commodities).Error
	})
	if err != nil {
		logger.Warn("Failed to seed crop reference", zap.Error(err))
	} else {
		logger.Info("Crop reference seeded.")
	}
}
