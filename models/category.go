package models

// Category is one node of the category tree.
type Category struct {
	ID       int    `json:"id" gorm:"column:kKategorie;primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"column:cName;not null;index"`
	ParentID int    `json:"parent_id" gorm:"column:kOberKategorie;index;default:0"`
	Sort     int    `json:"sort" gorm:"column:nSort;default:0"`
}

func (Category) TableName() string {
	return "tkategorie"
}

// CategoryProduct links a product into a category. A product may live in
// several categories at once.
type CategoryProduct struct {
	CategoryID int `json:"category_id" gorm:"column:kKategorie;primaryKey"`
	ProductID  int `json:"product_id" gorm:"column:kArtikel;primaryKey;index"`
}

func (CategoryProduct) TableName() string {
	return "tkategorieartikel"
}

// Manufacturer is a product brand.
type Manufacturer struct {
	ID   int    `json:"id" gorm:"column:kHersteller;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:cName;not null;index"`
	Sort int    `json:"sort" gorm:"column:nSortNr;default:0"`
}

func (Manufacturer) TableName() string {
	return "thersteller"
}

// Characteristic is an attribute axis (color, material); its values carry
// the group id back to it.
type Characteristic struct {
	ID   int    `json:"id" gorm:"column:kMerkmal;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:cName;not null"`
	Sort int    `json:"sort" gorm:"column:nSort;default:0"`
}

func (Characteristic) TableName() string {
	return "tmerkmal"
}

// CharacteristicValue is one selectable value of a characteristic.
type CharacteristicValue struct {
	ID               int    `json:"id" gorm:"column:kMerkmalWert;primaryKey;autoIncrement"`
	CharacteristicID int    `json:"characteristic_id" gorm:"column:kMerkmal;not null;index"`
	Value            string `json:"value" gorm:"column:cWert;not null"`
	Sort             int    `json:"sort" gorm:"column:nSort;default:0"`
}

func (CharacteristicValue) TableName() string {
	return "tmerkmalwert"
}

// ProductCharacteristic assigns a characteristic value to a product.
type ProductCharacteristic struct {
	ProductID             int `json:"product_id" gorm:"column:kArtikel;primaryKey"`
	CharacteristicValueID int `json:"characteristic_value_id" gorm:"column:kMerkmalWert;primaryKey;index"`
}

func (ProductCharacteristic) TableName() string {
	return "tartikelmerkmal"
}

// SeoEntry maps an entity (category, manufacturer, characteristic value,
// search special) to its SEO slug per language.
type SeoEntry struct {
	Slug       string `json:"slug" gorm:"column:cSeo;primaryKey"`
	KeyName    string `json:"key_name" gorm:"column:cKey;not null;index:idx_tseo_key"`
	KeyID      int    `json:"key_id" gorm:"column:kKey;not null;index:idx_tseo_key"`
	LanguageID int    `json:"language_id" gorm:"column:kSprache;not null;index:idx_tseo_key"`
}

func (SeoEntry) TableName() string {
	return "tseo"
}
