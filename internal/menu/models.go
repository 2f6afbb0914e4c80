package menu

// Category identifiers the recommendation engine keys off. The rest of the
// category set is open (tea, lemonade, ...) but these two mark
// alcohol-bearing items and must match what the catalog uses.
const (
	CategoryAlcohol  = "alco"
	CategoryTincture = "tincture"
)

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameZh string `json:"nameZh,omitempty"`
}

type MenuItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Description     string   `json:"description,omitempty"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Image           string   `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags,omitempty"`
}

// ImageRef resolves the item's display image: the first entry of Images wins,
// the singular Image is the fallback. Empty string means no image.
func (m MenuItem) ImageRef() string {
	if len(m.Images) > 0 {
		return m.Images[0]
	}
	return m.Image
}

// Valid reports whether the item carries the mandatory fields. Stores and
// the engine skip invalid items instead of failing the whole catalog.
func (m MenuItem) Valid() bool {
	return m.ID != "" && m.Name != ""
}

// Alcoholic reports whether the item belongs to an alcohol-bearing category.
func (m MenuItem) Alcoholic() bool {
	return m.Category == CategoryAlcohol || m.Category == CategoryTincture
}

type Catalog struct {
	Categories []Category `json:"categories"`
	Items      []MenuItem `json:"items"`
}
