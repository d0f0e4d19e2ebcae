// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package site

import "slices"

// Crumb is one breadcrumb step.
type Crumb struct {
	Name string
	URL  string
}

// Page is a routed page with its SEO metadata.
type Page struct {
	Path        string
	Title       string
	Description string
	Keywords    []string
	Breadcrumbs []Crumb
	// Priority feeds the sitemap (0.0-1.0).
	Priority float64
}

// Page paths.
const (
	PathHome     = "/"
	PathAbout    = "/nosotros"
	PathProducts = "/productos"
	PathServices = "/servicios"
	PathWarranty = "/garantia"
	PathPrivacy  = "/privacidad"
	PathBlog     = "/blog"
	PathValue    = "/valor"
	PathClients  = "/clientes"
	PathFAQ      = "/faq"
	PathContact  = "/contacto"
)

func crumbs(name, path string) []Crumb {
	return []Crumb{{Name: "Inicio", URL: PathHome}, {Name: name, URL: path}}
}

var pages = []Page{
	{
		Path:        PathHome,
		Title:       "Materiales Eléctricos Certificados en Popayán - Precio Justo Garantizado",
		Description: "✅ Materiales eléctricos certificados RETIE en Popayán. Cables, iluminación LED, breakers Schneider Electric. 🚚 Envío GRATIS >$1M. 💬 Cotiza por WhatsApp - Respuesta en 5 min.",
		Keywords: []string{
			"materiales eléctricos popayán",
			"ferretería eléctrica popayán",
			"cables certificados retie popayán",
			"iluminación led popayán",
			"breakers popayán",
			"distribuidores schneider electric popayán",
			"materiales eléctricos barrio modelo",
			"ferretería eléctrica cauca",
			"herramientas electricistas popayán",
		},
		Priority: 1.0,
	},
	{
		Path:        PathAbout,
		Title:       "Quiénes Somos | FECAUCA - Expertos en Energía Popayán",
		Description: "Conoce a FECAUCA, tu ferretería eléctrica de confianza en Popayán. Más de 15 años de experiencia brindando soluciones de ingeniería y suministros certificados.",
		Breadcrumbs: crumbs("Nosotros", PathAbout),
		Priority:    0.6,
	},
	{
		Path:        PathProducts,
		Title:       "Catálogo Eléctrico Popayán | Cables, LED, Breakers",
		Description: "Catálogo de materiales eléctricos certificados en Popayán. Encuentre cables, iluminación, tableros y herramientas. Cotice en línea.",
		Keywords:    []string{"catalogo electrico popayan", "precios materiales electricos", "tienda electrica online"},
		Breadcrumbs: crumbs("Catálogo", PathProducts),
		Priority:    0.9,
	},
	{
		Path:        PathServices,
		Title:       "Servicios Eléctricos Popayán | Asesoría, Envíos, Garantía",
		Description: "En FECAUCA ofrecemos más que materiales: Asesoría técnica gratuita, envíos rápidos en Popayán y garantía inmediata. Cotice con expertos.",
		Keywords:    []string{"asesoria electrica popayan", "envios materiales electricos cauca", "garantia herramientas electricas"},
		Breadcrumbs: crumbs("Servicios", PathServices),
		Priority:    0.8,
	},
	{
		Path:        PathWarranty,
		Title:       "Políticas de Garantía | FECAUCA Popayán",
		Description: "Conozca nuestras políticas de garantía. Respaldo técnico bajo normas del fabricante. Revisión técnica especializada para equipos eléctricos.",
		Keywords:    []string{"garantia electrica", "retie", "soporte tecnico FECAUCA"},
		Breadcrumbs: crumbs("Garantía", PathWarranty),
		Priority:    0.5,
	},
	{
		Path:        PathPrivacy,
		Title:       "Política de Privacidad | FECAUCA",
		Description: "Conozca cómo FECAUCA protege y gestiona sus datos personales. Transparencia y seguridad en el manejo de su información.",
		Keywords:    []string{"privacidad", "datos personales", "habeas data", "fecauca"},
		Breadcrumbs: crumbs("Privacidad", PathPrivacy),
		Priority:    0.3,
	},
	{
		Path:        PathBlog,
		Title:       "Blog de Ingeniería Eléctrica | FECAUCA",
		Description: "Artículos técnicos, tutoriales y consejos sobre instalaciones eléctricas, normativa RETIE y ahorro de energía.",
		Keywords:    []string{"blog electricidad", "tutoriales electricos", "norma retie", "ahorro energia"},
		Breadcrumbs: crumbs("Blog", PathBlog),
		Priority:    0.8,
	},
	{
		Path:        PathValue,
		Title:       "Propuesta de Valor: 7 Protocolos Operativos",
		Description: "7 protocolos operativos diseñados para proteger tu presupuesto y cronograma: igualación de precios, garantía inmediata, ingeniería gratis y logística inteligente.",
		Breadcrumbs: crumbs("Propuesta de Valor", PathValue),
		Priority:    0.5,
	},
	{
		Path:        PathClients,
		Title:       "Soluciones por Perfil de Cliente",
		Description: "Soluciones calibradas para cada actor del ecosistema eléctrico: electricistas, ingenieros residentes, contratistas y usuarios finales en Popayán.",
		Breadcrumbs: crumbs("Clientes", PathClients),
		Priority:    0.5,
	},
	{
		Path:        PathFAQ,
		Title:       "Preguntas Frecuentes: Logística, Pagos y Garantías",
		Description: "Datos operativos y protocolos de servicio de FECAUCA: entregas, precios, métodos de pago, garantía técnica, cotizaciones y devoluciones.",
		Breadcrumbs: crumbs("Preguntas Frecuentes", PathFAQ),
		Priority:    0.6,
	},
	{
		Path:        PathContact,
		Title:       "Contacto y Ubicación | Ferretería Eléctrica FECAUCA Popayán",
		Description: "Visítanos en Cra 11 # 2N-50, Popayán. Horario de atención, teléfono y WhatsApp. Materiales eléctricos certificados cerca de ti.",
		Breadcrumbs: crumbs("Contacto", PathContact),
		Priority:    0.7,
	},
}

func clonePage(p Page) Page {
	p.Keywords = slices.Clone(p.Keywords)
	p.Breadcrumbs = slices.Clone(p.Breadcrumbs)
	return p
}

// Pages returns every static page in sitemap order.
func Pages() []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = clonePage(p)
	}
	return out
}

// PageFor returns the page registered at path.
func PageFor(path string) (Page, bool) {
	for _, p := range pages {
		if p.Path == path {
			return clonePage(p), true
		}
	}
	return Page{}, false
}

// BlogPostCrumbs returns the breadcrumb trail of a blog post page.
func BlogPostCrumbs(title, path string) []Crumb {
	return []Crumb{
		{Name: "Inicio", URL: PathHome},
		{Name: "Blog", URL: PathBlog},
		{Name: title, URL: path},
	}
}
