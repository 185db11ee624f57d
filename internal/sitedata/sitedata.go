package sitedata

import (
	"context"
	"log"

	"corpsite/internal/domain/company"
	"corpsite/internal/domain/division"
	"corpsite/internal/domain/gallery"
	"corpsite/internal/domain/project"
	"corpsite/internal/domain/subcompany"
)

// Layout is the supplementary data every public page hydrates on mount:
// footer company profile plus the navigation's sub-company list.
type Layout struct {
	Profile      *company.Profile         `json:"profile"`
	SubCompanies []*subcompany.SubCompany `json:"sub_companies"`
}

// Hero carries the homepage's dynamic hero media.
type Hero struct {
	VideoDesktop string `json:"video_desktop"`
	VideoMobile  string `json:"video_mobile"`
}

// Home is the homepage's runtime payload.
type Home struct {
	Hero             Hero                 `json:"hero"`
	Divisions        []*division.Division `json:"divisions"`
	FeaturedProjects []*project.Project   `json:"featured_projects"`
}

// Service aggregates the reads behind the hydration endpoints. Each
// sub-read that fails is logged and replaced by its default so the page
// always renders something coherent; neither aggregate ever errors. A
// cancelled request context abandons the remaining reads.
type Service struct {
	company   *company.Repository
	subs      *subcompany.Repository
	divisions *division.Repository
	gallery   *gallery.Repository
	projects  *project.Repository
}

// NewService creates site data service
func NewService(
	companyRepo *company.Repository,
	subs *subcompany.Repository,
	divisions *division.Repository,
	galleryRepo *gallery.Repository,
	projects *project.Repository,
) *Service {
	return &Service{
		company:   companyRepo,
		subs:      subs,
		divisions: divisions,
		gallery:   galleryRepo,
		projects:  projects,
	}
}

// Layout never returns an error; a failed read leaves the default in place.
func (s *Service) Layout(ctx context.Context) *Layout {
	layout := &Layout{
		Profile:      &company.Profile{},
		SubCompanies: []*subcompany.SubCompany{},
	}

	profile, err := s.company.GetProfile(ctx)
	if err != nil {
		log.Printf("sitedata: company profile read failed: %v", err)
	} else if profile != nil {
		layout.Profile = profile
	}

	subs, err := s.subs.GetAll(ctx)
	if err != nil {
		log.Printf("sitedata: sub-company list read failed: %v", err)
	} else {
		layout.SubCompanies = subs
	}

	return layout
}

// Home never returns an error. The hero comes from the first "Home" gallery
// item's video variants; an empty or failed read leaves the URLs blank and
// the frontend keeps its bundled fallback media.
func (s *Service) Home(ctx context.Context) *Home {
	home := &Home{
		Divisions:        []*division.Division{},
		FeaturedProjects: []*project.Project{},
	}

	items, err := s.gallery.GetByType(ctx, gallery.TypeHome)
	if err != nil {
		log.Printf("sitedata: hero media read failed: %v", err)
	} else if len(items) > 0 {
		home.Hero.VideoDesktop = items[0].FirstURL(gallery.MediaVideoDesktop)
		home.Hero.VideoMobile = items[0].FirstURL(gallery.MediaVideoMobile)
	}

	divisions, err := s.divisions.GetAll(ctx)
	if err != nil {
		log.Printf("sitedata: division list read failed: %v", err)
	} else {
		home.Divisions = divisions
	}

	featured, err := s.projects.GetFeatured(ctx)
	if err != nil {
		log.Printf("sitedata: featured project read failed: %v", err)
	} else {
		home.FeaturedProjects = featured
	}

	return home
}
