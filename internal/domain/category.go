package domain

// Category é o código fechado de classificação de produtos de um fornecedor
type Category string

const (
	CategoryCSD   Category = "CSD"   // refrigerante
	CategoryED    Category = "ED"    // energético
	CategoryWater Category = "WATER" // água
	CategoryJuice Category = "JUICE" // suco
)

// CategoryCatalog define o conjunto de categorias aceitas pelo validador de metas
type CategoryCatalog interface {
	IsValid(code Category) bool
	Codes() []Category
}

type staticCatalog struct {
	codes []Category
}

var defaultCatalog = NewCategoryCatalog(CategoryCSD, CategoryED, CategoryWater, CategoryJuice)

// DefaultCategoryCatalog retorna o catálogo padrão (CSD, ED, WATER, JUICE)
func DefaultCategoryCatalog() CategoryCatalog {
	return defaultCatalog
}

func NewCategoryCatalog(codes ...Category) CategoryCatalog {
	return &staticCatalog{codes: codes}
}

func (c *staticCatalog) IsValid(code Category) bool {
	for _, valid := range c.codes {
		if valid == code {
			return true
		}
	}
	return false
}

func (c *staticCatalog) Codes() []Category {
	codes := make([]Category, len(c.codes))
	copy(codes, c.codes)
	return codes
}
