package staticgen

import (
	"context"
	"log"

	"corpsite/internal/domain/benefit"
	"corpsite/internal/domain/division"
	"corpsite/internal/domain/gallery"
	"corpsite/internal/domain/news"
	"corpsite/internal/domain/subcompany"
	"corpsite/internal/pkg/slug"
)

// Fallback modes for paths not enumerated at build time.
const (
	// FallbackBlocking resolves unknown paths on demand instead of 404ing.
	FallbackBlocking = "blocking"
)

// RevalidateSeconds bounds how stale a generated page may get before the
// next request triggers a background refresh.
const RevalidateSeconds = 60

// Paths is the build-time path list for one page type.
type Paths struct {
	Params   []string `json:"params"`
	Fallback string   `json:"fallback"`
}

// Result carries resolved page props. NotFound wins over Props; Revalidate
// is set on every found result.
type Result struct {
	Props      any  `json:"props,omitempty"`
	Revalidate int  `json:"revalidate,omitempty"`
	NotFound   bool `json:"not_found,omitempty"`
}

// SubCompanyProps is the sub-company detail page payload.
type SubCompanyProps struct {
	SubCompany SubCompanyView `json:"sub_company"`
	Divisions  []DivisionView `json:"divisions"`
	Benefits   []BenefitView  `json:"benefits"`
}

// GalleryProps is the gallery detail page payload.
type GalleryProps struct {
	Item GalleryItemView `json:"item"`
}

// NewsProps is the news detail page payload.
type NewsProps struct {
	Article NewsArticleView `json:"article"`
}

// Adapter feeds the frontend's build step: path enumeration per page type
// and props resolution per route parameter. Enumeration failures degrade to
// an empty list with blocking fallback so a store outage never fails the
// whole site build; props failures of any kind collapse to not-found.
type Adapter struct {
	subs      *subcompany.Repository
	divisions *division.Repository
	benefits  *benefit.Repository
	gallery   *gallery.Repository
	news      *news.Repository
}

// NewAdapter creates static generation adapter
func NewAdapter(
	subs *subcompany.Repository,
	divisions *division.Repository,
	benefits *benefit.Repository,
	galleryRepo *gallery.Repository,
	newsRepo *news.Repository,
) *Adapter {
	return &Adapter{
		subs:      subs,
		divisions: divisions,
		benefits:  benefits,
		gallery:   galleryRepo,
		news:      newsRepo,
	}
}

// SubCompanyPaths enumerates sub-company detail routes by slug.
func (a *Adapter) SubCompanyPaths(ctx context.Context) Paths {
	subs, err := a.subs.GetAll(ctx)
	if err != nil {
		log.Printf("staticgen: sub-company path enumeration failed: %v", err)
		return Paths{Params: []string{}, Fallback: FallbackBlocking}
	}

	params := make([]string, 0, len(subs))
	for _, sc := range subs {
		s := sc.Slug
		if s == "" {
			s = slug.Make(sc.Name)
		}
		if s != "" {
			params = append(params, s)
		}
	}
	return Paths{Params: params, Fallback: FallbackBlocking}
}

// SubCompanyProps resolves one sub-company detail page with its divisions
// and benefits.
func (a *Adapter) SubCompanyProps(ctx context.Context, param string) Result {
	sc, err := a.subs.ResolveSlug(ctx, param)
	if err != nil {
		log.Printf("staticgen: resolve sub-company %q: %v", param, err)
		return Result{NotFound: true}
	}
	if sc == nil {
		return Result{NotFound: true}
	}

	divisions, err := a.divisions.GetBySubCompany(ctx, sc.ID)
	if err != nil {
		log.Printf("staticgen: divisions for sub-company %s: %v", sc.ID, err)
		return Result{NotFound: true}
	}
	benefits, err := a.benefits.GetBySubCompany(ctx, sc.ID)
	if err != nil {
		log.Printf("staticgen: benefits for sub-company %s: %v", sc.ID, err)
		return Result{NotFound: true}
	}

	return Result{
		Props: SubCompanyProps{
			SubCompany: subCompanyView(sc),
			Divisions:  divisionViews(divisions),
			Benefits:   benefitViews(benefits),
		},
		Revalidate: RevalidateSeconds,
	}
}

// GalleryPaths enumerates gallery detail routes by id. Only "gallery" items
// have detail pages; "Home" items feed the hero and are never routed.
func (a *Adapter) GalleryPaths(ctx context.Context) Paths {
	items, err := a.gallery.GetByType(ctx, gallery.TypeGallery)
	if err != nil {
		log.Printf("staticgen: gallery path enumeration failed: %v", err)
		return Paths{Params: []string{}, Fallback: FallbackBlocking}
	}

	params := make([]string, 0, len(items))
	for _, item := range items {
		params = append(params, item.ID)
	}
	return Paths{Params: params, Fallback: FallbackBlocking}
}

// GalleryProps resolves one gallery detail page.
func (a *Adapter) GalleryProps(ctx context.Context, id string) Result {
	item, err := a.gallery.GetByID(ctx, id)
	if err != nil {
		log.Printf("staticgen: resolve gallery item %q: %v", id, err)
		return Result{NotFound: true}
	}
	if item == nil || item.Type != gallery.TypeGallery {
		return Result{NotFound: true}
	}

	return Result{
		Props:      GalleryProps{Item: galleryItemView(item)},
		Revalidate: RevalidateSeconds,
	}
}

// NewsPaths enumerates news detail routes by slug, published articles only.
func (a *Adapter) NewsPaths(ctx context.Context) Paths {
	articles, err := a.news.GetPublished(ctx)
	if err != nil {
		log.Printf("staticgen: news path enumeration failed: %v", err)
		return Paths{Params: []string{}, Fallback: FallbackBlocking}
	}

	seen := make(map[string]bool, len(articles))
	params := make([]string, 0, len(articles))
	for _, article := range articles {
		if article.Slug == "" || seen[article.Slug] {
			continue
		}
		seen[article.Slug] = true
		params = append(params, article.Slug)
	}
	return Paths{Params: params, Fallback: FallbackBlocking}
}

// NewsProps resolves one news detail page. Drafts resolve to not-found.
func (a *Adapter) NewsProps(ctx context.Context, s string) Result {
	article, err := a.news.GetPublishedBySlug(ctx, s)
	if err != nil {
		log.Printf("staticgen: resolve article %q: %v", s, err)
		return Result{NotFound: true}
	}
	if article == nil {
		return Result{NotFound: true}
	}

	return Result{
		Props:      NewsProps{Article: newsArticleView(article)},
		Revalidate: RevalidateSeconds,
	}
}
