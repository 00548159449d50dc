package filter

import "context"

// ValidationOutcome is the result of canonical-URL validation. The engine
// never emits HTTP itself; the handler turns a redirect outcome into a 301.
type ValidationOutcome struct {
	Redirect bool
	Location string
}

func Ok() ValidationOutcome {
	return ValidationOutcome{}
}

func RedirectTo(url string) ValidationOutcome {
	return ValidationOutcome{Redirect: true, Location: url}
}

// validate checks the three canonicalization conditions:
//
//  1. no base state and the lone active filter is a manufacturer filter
//     whose SEO slug resolves: the request belongs on the manufacturer page
//  2. manufacturer base state plus a redundant manufacturer filter
//  3. category base state plus a category filter whose slug resolves
func (pf *ProductFilter) validate(ctx context.Context) (ValidationOutcome, error) {
	mf := pf.activeOfKind(KindManufacturer)
	cf := pf.activeOfKind(KindCategory)

	if pf.baseState.Kind() == KindBaseDummy && len(pf.active) == 1 && mf != nil {
		if out, err := pf.redirectToSlug(ctx, "kHersteller", mf); err != nil || out.Redirect {
			return out, err
		}
	}

	if pf.baseState.Kind() == KindBaseManufacturer && mf != nil {
		if out, err := pf.redirectToSlug(ctx, "kHersteller", mf); err != nil || out.Redirect {
			return out, err
		}
	}

	if pf.baseState.Kind() == KindBaseCategory && cf != nil {
		if out, err := pf.redirectToSlug(ctx, "kKategorie", cf); err != nil || out.Redirect {
			return out, err
		}
	}

	return Ok(), nil
}

// redirectToSlug resolves the SEO slug of the filter's single value; an
// empty slug or a multi-valued filter produces no redirect.
func (pf *ProductFilter) redirectToSlug(ctx context.Context, keyName string, f Filter) (ValidationOutcome, error) {
	ids := f.Value().Ints()
	if len(ids) != 1 {
		return Ok(), nil
	}
	slug, err := pf.ds.Slug(ctx, keyName, ids[0], pf.ctx.LanguageID)
	if err != nil {
		return Ok(), err
	}
	if slug == "" {
		return Ok(), nil
	}
	return RedirectTo(pf.ctx.BaseURL + slug), nil
}
