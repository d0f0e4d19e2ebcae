// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package blog loads blog posts from a published spreadsheet (CSV export) and
// serves them with a fixed fallback list whenever the sheet is unusable.
package blog

import "slices"

// Post is one blog article. All fields are display strings exactly as they
// appear in the sheet (trimmed).
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Author   string `json:"author"`
}

var fallbackPosts = []Post{
	{
		ID:       "1",
		Title:    "Cómo elegir el calibre de cable correcto",
		Excerpt:  "Una guía práctica para evitar sobrecalentamientos y cumplir norma RETIE en instalaciones residenciales.",
		Content:  "Elegir el calibre de cable adecuado es fundamental para la seguridad de cualquier instalación eléctrica. Un calibre muy delgado puede provocar sobrecalentamiento e incendios, mientras que uno muy grueso representa un gasto innecesario. En esta guía, explicamos cómo usar la tabla de amperaje según la norma NTC 2050...",
		Date:     "2023-10-25",
		Image:    "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?auto=format&fit=crop&q=80&w=1000",
		Category: "Tutoriales",
		Author:   "Ing. Carlos Reyes",
	},
	{
		ID:       "2",
		Title:    "Iluminación LED vs. Tradicional: ¿Cuánto ahorras?",
		Excerpt:  "Analizamos el retorno de inversión al cambiar tu iluminación a tecnología LED certificada.",
		Content:  "La tecnología LED no es solo una moda, es una necesidad económica y ambiental. Un bombillo LED consume hasta un 85% menos energía que uno incandescente y dura 25 veces más. En este artículo desglosamos el ahorro real en la factura de energía de un hogar promedio en Popayán...",
		Date:     "2023-11-02",
		Image:    "https://images.unsplash.com/photo-1565814329452-e1efa11c5b89?auto=format&fit=crop&q=80&w=1000",
		Category: "Ahorro",
		Author:   "Equipo FECAUCA",
	},
	{
		ID:       "3",
		Title:    "Mantenimiento preventivo en época de lluvias",
		Excerpt:  "Protege tus equipos electrónicos de las tormentas eléctricas comunes en el Cauca.",
		Content:  "El Cauca es una zona con alta actividad de tormentas eléctricas. Los picos de voltaje pueden destruir neveras, computadores y televisores en milisegundos. Recomendamos instalar DPS (Dispositivos de Protección contra Sobretensiones) en el tablero principal...",
		Date:     "2023-11-15",
		Image:    "https://images.unsplash.com/photo-1605810230434-7631ac76ec81?auto=format&fit=crop&q=80&w=1000",
		Category: "Seguridad",
		Author:   "Ing. Carlos Reyes",
	},
}

// Only the fields the static generator needs.
var prerenderFallback = []Post{
	{
		ID:      "1",
		Title:   "Cómo elegir el calibre de cable correcto",
		Excerpt: "Una guía práctica para evitar sobrecalentamientos y cumplir norma RETIE en instalaciones residenciales.",
		Image:   "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?auto=format&fit=crop&q=80&w=1000",
	},
	{
		ID:      "finlandia-transmision-energia-inalambrica-larga-distancia",
		Title:   "El fin de los cables: Finlandia estremece al mundo con la transmisión inalámbrica",
		Excerpt: "Ingenieros de la Universidad de Aalto logran un 80% de eficiencia energética transmitiendo electricidad a través del aire mediante superconductores.",
		Image:   "https://fecauca.com/images/default-blog.jpg",
	},
}

// FallbackPosts returns the list served at runtime when the sheet cannot be used.
func FallbackPosts() []Post {
	return slices.Clone(fallbackPosts)
}

// PrerenderFallback returns the list the static generator uses when the sheet
// cannot be used.
func PrerenderFallback() []Post {
	return slices.Clone(prerenderFallback)
}

// FindByID returns the post whose ID equals id exactly.
func FindByID(posts []Post, id string) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
