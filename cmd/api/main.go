package main

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"corpsite/internal/config"
	"corpsite/internal/domain/benefit"
	"corpsite/internal/domain/company"
	"corpsite/internal/domain/contact"
	"corpsite/internal/domain/dashboard"
	"corpsite/internal/domain/division"
	"corpsite/internal/domain/gallery"
	"corpsite/internal/domain/news"
	"corpsite/internal/domain/organization"
	"corpsite/internal/domain/project"
	"corpsite/internal/domain/subcompany"
	"corpsite/internal/domain/upload"
	"corpsite/internal/domain/user"
	"corpsite/internal/middleware"
	jwtsvc "corpsite/internal/pkg/jwt"
	"corpsite/internal/sitedata"
	"corpsite/internal/staticgen"
	"corpsite/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var st store.Store
	if cfg.ProjectID != "" {
		client, err := store.NewFirestoreClient(ctx, cfg.ProjectID)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		st = store.NewFirestore(client)
	} else {
		log.Println("GOOGLE_PROJECT_ID is empty, using in-memory store")
		st = store.NewMemory()
	}

	// repositories
	subRepo := subcompany.NewRepository(st)
	divisionRepo := division.NewRepository(st, subRepo)
	benefitRepo := benefit.NewRepository(st, subRepo)
	galleryRepo := gallery.NewRepository(st)
	newsRepo := news.NewRepository(st)
	orgRepo := organization.NewRepository(st)
	projectRepo := project.NewRepository(st)
	companyRepo := company.NewRepository(st)
	contactRepo := contact.NewRepository(st)
	userRepo := user.NewRepository(st)
	dashboardRepo := dashboard.NewRepository(st)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	userService := user.NewService(userRepo, j)

	// handlers
	subHandler := subcompany.NewHandler(subRepo)
	divisionHandler := division.NewHandler(divisionRepo)
	benefitHandler := benefit.NewHandler(benefitRepo)
	galleryHandler := gallery.NewHandler(galleryRepo)
	newsHandler := news.NewHandler(newsRepo)
	orgHandler := organization.NewHandler(orgRepo)
	projectHandler := project.NewHandler(projectRepo)
	companyHandler := company.NewHandler(companyRepo)
	contactHandler := contact.NewHandler(contactRepo)
	userHandler := user.NewHandler(userService, userRepo)
	dashboardHandler := dashboard.NewHandler(dashboardRepo)

	staticHandler := staticgen.NewHandler(staticgen.NewAdapter(
		subRepo, divisionRepo, benefitRepo, galleryRepo, newsRepo,
	))
	siteHandler := sitedata.NewHandler(sitedata.NewService(
		companyRepo, subRepo, divisionRepo, galleryRepo, projectRepo,
	))

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := r.Group("/api/v1")
	{
		// public content API
		subcompany.RegisterPublicRoutes(v1, subHandler)
		division.RegisterPublicRoutes(v1, divisionHandler)
		benefit.RegisterPublicRoutes(v1, benefitHandler)
		gallery.RegisterPublicRoutes(v1, galleryHandler)
		news.RegisterPublicRoutes(v1, newsHandler)
		organization.RegisterPublicRoutes(v1, orgHandler)
		project.RegisterPublicRoutes(v1, projectHandler)
		company.RegisterPublicRoutes(v1, companyHandler)
		contact.RegisterPublicRoutes(v1, contactHandler)
		user.RegisterPublicRoutes(v1, userHandler)

		// frontend build + hydration endpoints
		staticgen.RegisterRoutes(v1, staticHandler)
		sitedata.RegisterRoutes(v1, siteHandler)

		// admin console
		admin := v1.Group("/main")
		admin.Use(middleware.JWTAuth(j))
		{
			subcompany.RegisterAdminRoutes(admin, subHandler)
			division.RegisterAdminRoutes(admin, divisionHandler)
			benefit.RegisterAdminRoutes(admin, benefitHandler)
			gallery.RegisterAdminRoutes(admin, galleryHandler)
			news.RegisterAdminRoutes(admin, newsHandler)
			organization.RegisterAdminRoutes(admin, orgHandler)
			project.RegisterAdminRoutes(admin, projectHandler)
			company.RegisterAdminRoutes(admin, companyHandler)
			contact.RegisterAdminRoutes(admin, contactHandler)
			user.RegisterAdminRoutes(admin, userHandler)
			dashboard.RegisterAdminRoutes(admin, dashboardHandler)

			if cfg.StorageBucket != "" {
				gcs, err := storage.NewClient(ctx)
				if err != nil {
					log.Fatal(err)
				}
				uploadHandler := upload.NewHandler(upload.NewService(gcs, cfg.StorageBucket))
				upload.RegisterAdminRoutes(admin, uploadHandler)
			} else {
				log.Println("STORAGE_BUCKET is empty, upload routes disabled")
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
