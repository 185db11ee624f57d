package staticgen

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"corpsite/internal/domain/benefit"
	"corpsite/internal/domain/division"
	"corpsite/internal/domain/gallery"
	"corpsite/internal/domain/news"
	"corpsite/internal/domain/subcompany"
	"corpsite/internal/store"
)

// brokenStore fails every operation, simulating an unreachable document store.
type brokenStore struct{}

var errStoreDown = errors.New("store unreachable")

func (brokenStore) Get(ctx context.Context, collection, id string) (store.Document, error) {
	return store.Document{}, errStoreDown
}
func (brokenStore) List(ctx context.Context, collection string, filters ...store.Filter) ([]store.Document, error) {
	return nil, errStoreDown
}
func (brokenStore) Create(ctx context.Context, collection string, fields map[string]any) (store.Document, error) {
	return store.Document{}, errStoreDown
}
func (brokenStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return errStoreDown
}
func (brokenStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	return errStoreDown
}
func (brokenStore) Delete(ctx context.Context, collection, id string) error {
	return errStoreDown
}

func newAdapter(s store.Store) *Adapter {
	subs := subcompany.NewRepository(s)
	return NewAdapter(
		subs,
		division.NewRepository(s, subs),
		benefit.NewRepository(s, subs),
		gallery.NewRepository(s),
		news.NewRepository(s),
	)
}

func TestPathsDegradeOnEnumerationFailure(t *testing.T) {
	a := newAdapter(brokenStore{})
	ctx := context.Background()

	for name, paths := range map[string]Paths{
		"sub-companies": a.SubCompanyPaths(ctx),
		"gallery":       a.GalleryPaths(ctx),
		"news":          a.NewsPaths(ctx),
	} {
		if paths.Params == nil || len(paths.Params) != 0 {
			t.Errorf("%s: params = %v, want empty list", name, paths.Params)
		}
		if paths.Fallback != FallbackBlocking {
			t.Errorf("%s: fallback = %q, want %q", name, paths.Fallback, FallbackBlocking)
		}
	}
}

func TestPropsNotFoundOnFailure(t *testing.T) {
	a := newAdapter(brokenStore{})
	ctx := context.Background()

	for name, result := range map[string]Result{
		"sub-company": a.SubCompanyProps(ctx, "vistara"),
		"gallery":     a.GalleryProps(ctx, "item-1"),
		"news":        a.NewsProps(ctx, "launch-day"),
	} {
		if !result.NotFound {
			t.Errorf("%s: NotFound = false on store failure", name)
		}
		if result.Props != nil {
			t.Errorf("%s: props leaked on failure: %+v", name, result.Props)
		}
	}
}

func TestPropsNotFoundOnMissingEntity(t *testing.T) {
	a := newAdapter(store.NewMemory())
	ctx := context.Background()

	if result := a.SubCompanyProps(ctx, "nope"); !result.NotFound {
		t.Error("missing sub-company did not resolve to not-found")
	}
	if result := a.GalleryProps(ctx, "nope"); !result.NotFound {
		t.Error("missing gallery item did not resolve to not-found")
	}
	if result := a.NewsProps(ctx, "nope"); !result.NotFound {
		t.Error("missing article did not resolve to not-found")
	}
}

func TestSubCompanyPathsAndProps(t *testing.T) {
	mem := store.NewMemory()
	a := newAdapter(mem)
	subs := subcompany.NewRepository(mem)
	divisions := division.NewRepository(mem, subs)
	ctx := context.Background()

	sc, err := subs.Create(ctx, &subcompany.SubCompany{Name: "Vistara"})
	if err != nil {
		t.Fatalf("create sub-company: %v", err)
	}
	if _, err := divisions.Create(ctx, &division.Division{Name: "Logistics", SubCompanyID: sc.ID}); err != nil {
		t.Fatalf("create division: %v", err)
	}

	paths := a.SubCompanyPaths(ctx)
	if len(paths.Params) != 1 || paths.Params[0] != "vistara" {
		t.Fatalf("params = %v, want [vistara]", paths.Params)
	}

	result := a.SubCompanyProps(ctx, "vistara")
	if result.NotFound {
		t.Fatal("existing sub-company resolved to not-found")
	}
	if result.Revalidate != RevalidateSeconds {
		t.Fatalf("revalidate = %d, want %d", result.Revalidate, RevalidateSeconds)
	}

	props, ok := result.Props.(SubCompanyProps)
	if !ok {
		t.Fatalf("props type = %T", result.Props)
	}
	if props.SubCompany.Name != "Vistara" {
		t.Fatalf("props sub-company = %+v", props.SubCompany)
	}
	if len(props.Divisions) != 1 || props.Divisions[0].Name != "Logistics" {
		t.Fatalf("props divisions = %+v", props.Divisions)
	}
	if _, err := time.Parse(time.RFC3339, props.SubCompany.CreatedAt); err != nil {
		t.Fatalf("created_at %q is not RFC3339: %v", props.SubCompany.CreatedAt, err)
	}
}

func TestGalleryPropsExcludesHomeItems(t *testing.T) {
	mem := store.NewMemory()
	a := newAdapter(mem)
	galleryRepo := gallery.NewRepository(mem)
	ctx := context.Background()

	hero, err := galleryRepo.Create(ctx, &gallery.Item{Name: "Hero", Type: gallery.TypeHome})
	if err != nil {
		t.Fatalf("create hero: %v", err)
	}
	item, err := galleryRepo.Create(ctx, &gallery.Item{Name: "Showcase", Type: gallery.TypeGallery})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	paths := a.GalleryPaths(ctx)
	if len(paths.Params) != 1 || paths.Params[0] != item.ID {
		t.Fatalf("params = %v, want [%s]", paths.Params, item.ID)
	}

	// Hero items feed the homepage, not a detail route.
	if result := a.GalleryProps(ctx, hero.ID); !result.NotFound {
		t.Error("Home item resolved to a detail page")
	}
	if result := a.GalleryProps(ctx, item.ID); result.NotFound {
		t.Error("gallery item did not resolve")
	}
}

func TestNewsPathsPublishedOnly(t *testing.T) {
	mem := store.NewMemory()
	a := newAdapter(mem)
	newsRepo := news.NewRepository(mem)
	ctx := context.Background()

	if _, err := newsRepo.Create(ctx, &news.Article{Title: "Launch", Status: news.StatusPublished}); err != nil {
		t.Fatalf("create article: %v", err)
	}
	if _, err := newsRepo.Create(ctx, &news.Article{Title: "Draft"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	paths := a.NewsPaths(ctx)
	if len(paths.Params) != 1 || paths.Params[0] != "launch" {
		t.Fatalf("params = %v, want [launch]", paths.Params)
	}
}

// Props must never carry the store's native timestamp type; everything a
// generated page receives has to survive JSON serialization unchanged.
func TestPropsCarryNoNativeTimestamps(t *testing.T) {
	for _, props := range []any{SubCompanyProps{}, GalleryProps{}, NewsProps{}} {
		assertNoTimeFields(t, reflect.TypeOf(props), reflect.TypeOf(props).Name())
	}
}

func assertNoTimeFields(t *testing.T, typ reflect.Type, path string) {
	t.Helper()
	switch typ.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array:
		assertNoTimeFields(t, typ.Elem(), path+"[]")
	case reflect.Map:
		assertNoTimeFields(t, typ.Elem(), path+"[value]")
	case reflect.Struct:
		if typ == reflect.TypeOf(time.Time{}) {
			t.Errorf("%s is a native timestamp", path)
			return
		}
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			assertNoTimeFields(t, f.Type, path+"."+f.Name)
		}
	}
}
