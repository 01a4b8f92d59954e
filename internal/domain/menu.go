package domain

// CategoryAll is the wildcard category label: a menu listing filtered by this
// value returns every item, so no real item may use it as its category.
const CategoryAll = "Todos"

type MenuItem struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
	ImageURL    string  `bson:"image_url" json:"imageUrl"`
	Featured    bool    `bson:"featured" json:"featured"`
	GlutenFree  bool    `bson:"gluten_free" json:"glutenFree"`
}

// MenuItemPatch carries a sparse update: nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
	Featured    *bool
	GlutenFree  *bool
}

func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.Price == nil &&
		p.Category == nil &&
		p.ImageURL == nil &&
		p.Featured == nil &&
		p.GlutenFree == nil
}
