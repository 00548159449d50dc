package filter

import (
	"reflect"
	"testing"
)

func TestDeduplicatedJoinsKeepsFirstOccurrence(t *testing.T) {
	s := NewStateSQL()
	s.AddJoin(
		Join{Table: "tkategorieartikel", Type: "JOIN", On: "tkategorieartikel.kArtikel = tartikel.kArtikel"},
		Join{Table: "tartikelmerkmal", Type: "JOIN", On: "tartikelmerkmal.kArtikel = tartikel.kArtikel"},
		// Same table, different ON clause: still a duplicate.
		Join{Table: "tkategorieartikel", Type: "LEFT JOIN", On: "tkategorieartikel.kKategorie = 1"},
		Join{Table: "tartikelmerkmal", Type: "JOIN", On: "tartikelmerkmal.kArtikel = tartikel.kArtikel"},
	)

	got := s.DeduplicatedJoins()
	if len(got) != 2 {
		t.Fatalf("expected 2 joins after dedup, got %d: %+v", len(got), got)
	}
	if got[0].Table != "tkategorieartikel" || got[0].Type != "JOIN" {
		t.Errorf("first join changed: %+v", got[0])
	}
	if got[1].Table != "tartikelmerkmal" {
		t.Errorf("second join changed: %+v", got[1])
	}
}

func TestFromResetsPresentationFields(t *testing.T) {
	src := NewStateSQL()
	src.AddSelect("tartikel.kArtikel")
	src.AddJoin(Join{Table: "tkategorieartikel"})
	src.AddCondition("tartikel.nIstVater = 0")
	src.AddGroupBy("tartikel.kArtikel")
	src.OrderBy = "tartikel.cName ASC"
	src.Limit = "LIMIT 20 OFFSET 0"

	s := NewStateSQL().From(src)

	if !reflect.DeepEqual(s.Select, src.Select) {
		t.Errorf("select not copied: %v", s.Select)
	}
	if len(s.Joins) != 1 || len(s.Conditions) != 1 {
		t.Errorf("joins/conditions not copied: %+v", s)
	}
	if len(s.GroupBy) != 0 || s.OrderBy != "" || s.Limit != "" {
		t.Errorf("presentation fields not reset: %+v", s)
	}

	// The copy is independent of the source.
	s.AddCondition("tartikel.fLagerbestand > 0")
	if len(src.Conditions) != 1 {
		t.Errorf("source mutated through copy")
	}
}

func TestAddConditionDropsEmptyFragments(t *testing.T) {
	s := NewStateSQL()
	s.AddCondition("")
	s.AddCondition((*ParamCondition)(nil))
	s.AddCondition(&ParamCondition{})
	s.AddCondition(&InCondition{Expr: "tartikel.kArtikel"})
	s.AddCondition([]string{})
	if len(s.Conditions) != 0 {
		t.Fatalf("empty fragments were kept: %+v", s.Conditions)
	}
}

func TestMergeConditionsDropsIdenticalParamConditions(t *testing.T) {
	conds := []any{
		&ParamCondition{Where: "tartikel.kHersteller IN (?)", Args: []any{3}},
		&ParamCondition{Where: "tartikel.kHersteller IN (?)", Args: []any{3}},
		&ParamCondition{Where: "tartikel.kHersteller IN (?)", Args: []any{4}},
	}
	got := mergeConditions(conds)
	if len(got) != 2 {
		t.Fatalf("expected 2 conditions, got %d: %+v", len(got), got)
	}
}

func TestMergeConditionsUnionsInConditionValues(t *testing.T) {
	conds := []any{
		&InCondition{Expr: "tsuchcachetreffer.kSuchCache", Args: []any{4}},
		&InCondition{Expr: "tsuchcachetreffer.kSuchCache", Args: []any{4, 7}},
		"tartikel.nIstVater = 0",
	}
	got := mergeConditions(conds)
	if len(got) != 2 {
		t.Fatalf("expected 2 conditions, got %d: %+v", len(got), got)
	}
	in, ok := got[0].(*InCondition)
	if !ok {
		t.Fatalf("expected merged InCondition first, got %T", got[0])
	}
	if !reflect.DeepEqual(in.Args, []any{4, 7}) {
		t.Errorf("expected unioned args [4 7], got %v", in.Args)
	}
}
