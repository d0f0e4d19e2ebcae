// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package site

import "slices"

// CategoryAll selects every product.
const CategoryAll = "all"

// Product is a catalog entry. Prices are quoted over WhatsApp, never listed.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	CTA      string   `json:"cta"`
	Badge    string   `json:"badge"`
	Desc     string   `json:"desc"`
	Features []string `json:"features"`
}

// ProductCategory is a catalog filter tab.
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var productCategories = []ProductCategory{
	{ID: CategoryAll, Name: "Todo el Catálogo"},
	{ID: "cables", Name: "Cables y Alambres"},
	{ID: "iluminacion", Name: "Iluminación LED"},
	{ID: "proteccion", Name: "Breakers y Tableros"},
	{ID: "herramientas", Name: "Herramientas"},
	{ID: "solar", Name: "Energía Solar"},
}

var brands = []string{"Schneider Electric", "Procables", "Centelsa", "Ilumax", "Truper", "3M", "Legrand", "Lumek"}

var products = []Product{
	{
		ID: 1, Name: "Cable THHN/THWN-2 Calibre 12 AWG", Brand: "Procables", Category: "cables",
		CTA: "Consultar Bobina", Badge: "RETIE",
		Desc:     "Conductor de cobre suave, aislamiento en PVC. Ideal para instalaciones residenciales y comerciales.",
		Features: []string{"Certificado RETIE", "90°C en ambiente seco", "Resistente a la humedad"},
	},
	{
		ID: 2, Name: "Breaker Enchufable 1P 20A", Brand: "Schneider Electric", Category: "proteccion",
		CTA: "Verificar Stock", Badge: "Original",
		Desc:     "Interruptor termomagnético tipo enchufable. Protección contra sobrecargas y cortocircuitos.",
		Features: []string{"Curva C", "10kA de ruptura", "Garantía de fábrica"},
	},
	{
		ID: 3, Name: "Panel LED Incrustar 18W Redondo", Brand: "Ilumax", Category: "iluminacion",
		CTA: "Ver Iluminación", Badge: "Ahorro 80%",
		Desc:     "Panel LED ultra delgado luz blanca 6500K. Perfecto para oficinas y hogares.",
		Features: []string{"25.000 horas de vida", "Multivoltaje", "Garantía 2 años"},
	},
	{
		ID: 4, Name: "Alicate Electricista 8\" Aislado", Brand: "Truper", Category: "herramientas",
		CTA: "Equipar Caja", Badge: "1000V",
		Desc:     "Alicate profesional con aislamiento a 1000V. Acero al cromo vanadio.",
		Features: []string{"Mango ergonómico", "Corte de alta precisión", "Norma IEC 60900"},
	},
	{
		ID: 5, Name: "Cinta Aislante Super 33+", Brand: "3M", Category: "cables",
		CTA: "Añadir al Kit", Badge: "Premium",
		Desc:     "Cinta de vinilo de calidad premium. Resistente a la abrasión, humedad y rayos UV.",
		Features: []string{"Autoextinguible", "Adhesión superior", "Uso profesional"},
	},
	{
		ID: 6, Name: "Reflector LED 50W Exterior", Brand: "Ilumax", Category: "iluminacion",
		CTA: "Iluminar Exterior", Badge: "IP65",
		Desc:     "Reflector de alta potencia para exteriores. Protección IP65 contra lluvia y polvo.",
		Features: []string{"Chasis en aluminio", "Vidrio templado", "Alta eficiencia"},
	},
	{
		ID: 7, Name: "Tablero de Circuitos 12 Puestos", Brand: "Legrand", Category: "proteccion",
		CTA: "Configurar Tablero", Badge: "RETIE",
		Desc:     "Caja de distribución para empotrar. Diseño estético y seguro.",
		Features: []string{"Barraje a tierra incluido", "Puerta metálica", "Pintura electrostática"},
	},
	{
		ID: 8, Name: "Kit Solar Básico 500W", Brand: "Lumek", Category: "solar",
		CTA: "Iniciar Solar", Badge: "Eco",
		Desc:     "Kit de iniciación solar. Incluye panel, controlador y batería.",
		Features: []string{"Energía limpia", "Fácil instalación", "Ideal fincas"},
	},
}

func cloneProduct(p Product) Product {
	p.Features = slices.Clone(p.Features)
	return p
}

// Products returns the full catalog in display order.
func Products() []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

// ProductCategories returns the filter tabs, "all" first.
func ProductCategories() []ProductCategory {
	return slices.Clone(productCategories)
}

// Brands returns the brand filter list.
func Brands() []string {
	return slices.Clone(brands)
}

// IsProductCategory reports whether id names a known category (including "all").
func IsProductCategory(id string) bool {
	return slices.ContainsFunc(productCategories, func(c ProductCategory) bool { return c.ID == id })
}

// FilterProducts returns the products matching category and brand. An empty
// category or "all" matches every category; an empty brand matches every brand.
func FilterProducts(category, brand string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if brand != "" && p.Brand != brand {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return out
}
