package filter

import (
	"testing"
)

func slugFake() *fakeDataSource {
	return &fakeDataSource{
		entities: map[string]map[int]string{
			"tkategorie":  {5: "Sneakers"},
			"thersteller": {7: "Cloudstep"},
		},
		slugs: map[string]string{
			"kKategorie/5":  "sneakers-5",
			"kHersteller/7": "cloudstep-7",
		},
	}
}

func TestLoneManufacturerFilterRedirectsToBrandPage(t *testing.T) {
	pf := testEngine(slugFake(), nil)
	outcome := mustInit(t, pf, "kHerstellerFilter=7", true)

	if !outcome.Redirect {
		t.Fatal("expected a redirect to the canonical manufacturer page")
	}
	if outcome.Location != "/cloudstep-7" {
		t.Errorf("unexpected redirect target %q", outcome.Location)
	}
}

func TestRedundantManufacturerFilterOnBrandPageRedirects(t *testing.T) {
	pf := testEngine(slugFake(), nil)
	outcome := mustInit(t, pf, "kHersteller=7&kHerstellerFilter=7", true)

	if !outcome.Redirect || outcome.Location != "/cloudstep-7" {
		t.Errorf("expected redirect to /cloudstep-7, got %+v", outcome)
	}
}

func TestCategoryFilterOnCategoryPageRedirects(t *testing.T) {
	pf := testEngine(slugFake(), nil)
	outcome := mustInit(t, pf, "kKategorie=5&kKategorieFilter=5", true)

	if !outcome.Redirect || outcome.Location != "/sneakers-5" {
		t.Errorf("expected redirect to /sneakers-5, got %+v", outcome)
	}
}

func TestMultiValuedFilterNeverRedirects(t *testing.T) {
	ds := slugFake()
	ds.entities["thersteller"][8] = "Northwind"
	pf := testEngine(ds, nil)
	outcome := mustInit(t, pf, "kHerstellerFilter=7&kHerstellerFilter=8", true)

	if outcome.Redirect {
		t.Errorf("multi-valued filter must stay on the listing, got %+v", outcome)
	}
}

func TestUnresolvedSlugNeverRedirects(t *testing.T) {
	ds := slugFake()
	delete(ds.slugs, "kHersteller/7")
	pf := testEngine(ds, nil)
	outcome := mustInit(t, pf, "kHerstellerFilter=7", true)

	if outcome.Redirect {
		t.Errorf("missing slug must stay on the listing, got %+v", outcome)
	}
}

func TestSecondFilterSuppressesLoneManufacturerRedirect(t *testing.T) {
	ds := slugFake()
	ds.groups = map[int]int{12: 3}
	pf := testEngine(ds, nil)
	outcome := mustInit(t, pf, "kHerstellerFilter=7&MerkmalFilter_arr=12", true)

	if outcome.Redirect {
		t.Errorf("a second active filter must keep the request on the listing, got %+v", outcome)
	}
}
