package filter

// CharacteristicFilter restricts the listing to products carrying one
// characteristic value. One instance is activated per selected value; values
// of the same characteristic group (kMerkmal) OR together during
// compilation, values of different groups AND.
type CharacteristicFilter struct {
	baseFilter
	groupID int // kMerkmal of the selected value
}

func NewCharacteristicFilter(ctx FilterContext) *CharacteristicFilter {
	return &CharacteristicFilter{baseFilter: baseFilter{ctx: ctx}}
}

func (f *CharacteristicFilter) Kind() Kind { return KindCharacteristic }

func (f *CharacteristicFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	return "Characteristic"
}

func (f *CharacteristicFilter) URLParam() string             { return "MerkmalFilter_arr" }
func (f *CharacteristicFilter) CombinationType() Combination { return CombineOR }
func (f *CharacteristicFilter) Visibility() Visibility       { return ShowAlways }

func (f *CharacteristicFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

// SetGroup records the characteristic group the value belongs to. The
// orchestrator batch-resolves groups for all selected values in one query.
func (f *CharacteristicFilter) SetGroup(kMerkmal int) *CharacteristicFilter {
	f.groupID = kMerkmal
	return f
}

func (f *CharacteristicFilter) GroupID() int { return f.groupID }

func (f *CharacteristicFilter) SQLCondition() Condition {
	if !f.initialized {
		return Condition{}
	}
	ids := f.value.Ints()
	if len(ids) == 0 {
		return Condition{}
	}
	return Condition{
		Where: "tartikelmerkmal.kMerkmalWert = ?",
		Args:  []any{ids[0]},
	}
}

func (f *CharacteristicFilter) SQLJoin() []Join {
	if !f.initialized {
		return nil
	}
	return []Join{{
		Table:  "tartikelmerkmal",
		Type:   "JOIN",
		On:     "tartikelmerkmal.kArtikel = tartikel.kArtikel",
		Origin: string(KindCharacteristic),
	}}
}

func (f *CharacteristicFilter) TableName() string        { return "tartikelmerkmal" }
func (f *CharacteristicFilter) PrimaryKeyColumn() string { return "kMerkmalWert" }

func (f *CharacteristicFilter) ActiveOptions() []Option { return activeOptions(f) }

func (f *CharacteristicFilter) Clone(v Value) Filter {
	c := NewCharacteristicFilter(f.ctx)
	c.name = f.name
	c.slug = f.slug
	c.groupID = f.groupID
	return c.Init(v)
}
