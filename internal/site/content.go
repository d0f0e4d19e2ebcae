// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package site

import "slices"

// QA is a question/answer pair.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service is one of the value-added services.
type Service struct {
	ID       string
	Title    string
	Desc     string
	Features []string
}

// Testimonial is a customer quote with a 1-5 rating.
type Testimonial struct {
	Name   string
	Role   string
	Text   string
	Rating int
}

// Stars returns Rating as a slice so templates can range over it.
func (t Testimonial) Stars() []struct{} {
	return make([]struct{}, max(0, min(t.Rating, 5)))
}

// Persona is a target customer profile.
type Persona struct {
	ID    string
	Name  string
	Quote string
	Pain  string
	Gain  string
	Icon  string
}

// Feature is a titled blurb (differentials, values, process steps).
type Feature struct {
	ID    string
	Title string
	Desc  string
}

var services = []Service{
	{
		ID:       "asesoria",
		Title:    "Asesoría Técnica en Tienda",
		Desc:     "Evite gastos innecesarios. Nuestros ingenieros le asesoran presencialmente en nuestro almacén para que compre solo lo que realmente necesita, optimizando su presupuesto.",
		Features: []string{"Compras inteligentes", "Ahorro garantizado", "Atención presencial"},
	},
	{
		ID:       "logistica",
		Title:    "Logística y Envíos",
		Desc:     "Coordinamos la entrega de sus materiales en Popayán y todo el Cauca. Su obra no se detiene, nosotros nos encargamos del transporte.",
		Features: []string{"Envío GRATIS >$1M (Popayán)", "Despachos ágiles", "Cobertura departamental"},
	},
	{
		ID:       "garantia",
		Title:    "Respaldo y Garantía",
		Desc:     "Su inversión está segura. Gestionamos las garantías directamente con los fabricantes bajo sus políticas, asegurando que reciba productos 100% funcionales.",
		Features: []string{"Gestión transparente", "Respaldo de fábrica", "Productos originales"},
	},
}

var faq = []QA{
	{Question: "Logística de entrega", Answer: "Despachos en Popayán y Cauca. Pedidos >$1M envío gratis. Entregas AM/PM."},
	{Question: "Política de Precios", Answer: "Precios mayoristas disponibles para profesionales registrados. Igualación de cotizaciones."},
	{Question: "Métodos de Pago", Answer: "Efectivo, Transferencias, Tarjetas (Datafono) y Crédito ADDI."},
	{Question: "Garantía Técnica", Answer: "Respaldo directo. Cumplimiento RETIE. Cambios inmediatos por defecto."},
	{Question: "Cotizaciones", Answer: "Válidas por 15 días. Envíanos tu listado por WhatsApp."},
	{Question: "Devoluciones", Answer: "5 días hábiles. Material en estado original. No aplica para cables cortados."},
}

var homeFAQ = []QA{
	{
		Question: "¿Tienen envío gratis en Popayán?",
		Answer:   "Sí, ofrecemos envío completamente gratis en todo Popayán para compras superiores a $1.000.000. Atendemos Barrio Modelo, Centro, Norte, Sur y todas las zonas de la ciudad.",
	},
	{
		Question: "¿Qué marcas de cables eléctricos manejan?",
		Answer:   "Manejamos marcas líderes del mercado como Procables, Centelsa y Condumex. Todos nuestros cables tienen certificación RETIE vigente y garantía de autenticidad.",
	},
	{
		Question: "¿Hacen entregas a domicilio en Popayán?",
		Answer:   "Sí, coordinamos entregas a domicilio en todo Popayán. El envío es gratuito por compras superiores a $1.000.000. Contáctanos para más detalles.",
	},
	{
		Question: "¿Son distribuidores de Schneider Electric?",
		Answer:   "Sí, comercializamos productos originales de Schneider Electric en Popayán y el Cauca. Ofrecemos precios competitivos y total garantía de autenticidad.",
	},
	{
		Question: "¿Qué garantía ofrecen en los materiales eléctricos?",
		Answer:   "Nos regimos estrictamente por las políticas de garantía de cada fabricante. Si un producto presenta fallas de fábrica, gestionamos el trámite para su revisión y cambio según corresponda.",
	},
}

var testimonials = []Testimonial{
	{
		Name:   "Ing. Carlos Martínez",
		Role:   "Contratista Eléctrico",
		Text:   "En FECAUCA encuentro todo certificado. Para mis obras no me arriesgo con material de dudosa procedencia. La asesoría técnica es excelente.",
		Rating: 5,
	},
	{
		Name:   "Constructora Los Andes",
		Role:   "Cliente Corporativo",
		Text:   "La logística de entrega es impecable. Nos llevan el material directo a la obra en Popayán sin costo adicional. Muy recomendados.",
		Rating: 5,
	},
	{
		Name:   "María Fernanda López",
		Role:   "Cliente Residencial",
		Text:   "Me asesoraron para cambiar toda la iluminación de mi casa a LED. Bajó el recibo de la luz y la casa se ve hermosa. Gracias por la paciencia.",
		Rating: 5,
	},
}

var personas = []Persona{
	{ID: "ELEC", Name: "Técnico / Electricista", Quote: "Necesito que el material no me haga quedar mal.", Pain: "Retrasos, Garantías lentas", Gain: "Respuesta inmediata, Stock real", Icon: "⚡"},
	{ID: "ING", Name: "Ingeniero Residente", Quote: "Requiero certificación y cumplimiento normativo.", Pain: "Material no conforme, RETIE", Gain: "Certificados al día, Fichas técnicas", Icon: "🏗️"},
	{ID: "PROC", Name: "Compras / Contratista", Quote: "Busco optimizar el presupuesto sin sacrificar calidad.", Pain: "Sobrecostos, Tiempos de entrega", Gain: "Pricing por volumen, Logística", Icon: "📋"},
	{ID: "HOME", Name: "Usuario Final", Quote: "No sé mucho de electricidad, necesito guía.", Pain: "Riesgo eléctrico, Asesoría nula", Gain: "Explicación simple, Seguridad", Icon: "🏠"},
}

var differentials = []Feature{
	{ID: "01", Title: "Pricing Dinámico", Desc: "Algoritmo simple: Si traes una cotización válida de la competencia, la igualamos o mejoramos. Sin fricción."},
	{ID: "02", Title: "Garantía Hot-Swap*", Desc: "Reemplazo inmediato de material defectuoso. Nosotros respondemos primero. *Aplican términos y condiciones según el producto."},
	{ID: "03", Title: "Ingeniería Gratis", Desc: "Cálculos de carga y diseño básico incluidos con tu compra. Nuestra asesoría técnica se basa en los productos."},
	{ID: "04", Title: "Logística Inteligente", Desc: "Envíos gratuitos en Popayán para órdenes >$1M. Entregas coordinadas para no detener tu obra."},
	{ID: "05", Title: "Sourcing Global", Desc: "¿Referencia difícil? Activamos nuestra red nacional para gestionarla. Hacemos el máximo esfuerzo por completar tu lista."},
	{ID: "06", Title: "Flexibilidad Financiera", Desc: "Aceptamos todos los medios de pago y ofrecemos financiación vía aliados fintech (ADDI)."},
	{ID: "07", Title: "Soporte Always-On", Desc: "Canal de WhatsApp atendido por humanos expertos, no bots. Respuestas técnicas reales."},
}

var workflow = []Feature{
	{ID: "01", Title: "Contacto", Desc: "Envía lista por WhatsApp"},
	{ID: "02", Title: "Optimización", Desc: "Revisión técnica de precios"},
	{ID: "03", Title: "Aprobación", Desc: "Pago digital o físico"},
	{ID: "04", Title: "Despliegue", Desc: "Envío a obra inmediato"},
}

var values = []Feature{
	{Title: "Transparencia", Desc: "Sin letra chica. Precios claros. Asesoría que prioriza tu ahorro, no nuestra venta."},
	{Title: "Certificación", Desc: "Cero tolerancia con materiales de baja calidad. Solo distribuimos marcas que cumplen RETIE."},
	{Title: "Impacto Regional", Desc: "Invertimos en el Cauca. Generamos empleo formal y potenciamos el desarrollo local."},
}

var warrantySteps = []Feature{
	{ID: "1", Title: "Reporte", Desc: "Contáctenos por WhatsApp o visite la tienda con su factura y el producto."},
	{ID: "2", Title: "Diagnóstico", Desc: "Determinamos la viabilidad de la garantía (defectos visibles simples) o si requiere internación técnica."},
	{ID: "3", Title: "Resolución", Desc: "Si procede por garantía, le entregamos un producto nuevo o reparado según dictamen."},
}

var zones = []string{
	"Barrio Modelo", "Centro Histórico", "Norte de Popayán", "Sur de Popayán",
	"Unicauca", "Fundación Universitaria", "Zona Industrial", "Todas las comunas",
}

var municipalities = []string{
	"Santander de Quilichao", "Piendamó", "Timbío", "Cajibío",
	"Sotará", "Puracé", "Totoró", "Todo el Cauca",
}

// Services returns the value-added services.
func Services() []Service {
	out := make([]Service, len(services))
	for i, s := range services {
		s.Features = slices.Clone(s.Features)
		out[i] = s
	}
	return out
}

// FAQ returns the operational questions of the FAQ page.
func FAQ() []QA { return slices.Clone(faq) }

// HomeFAQ returns the questions published as FAQPage rich snippets on the home page.
func HomeFAQ() []QA { return slices.Clone(homeFAQ) }

// Testimonials returns the customer quotes.
func Testimonials() []Testimonial { return slices.Clone(testimonials) }

// Personas returns the target customer profiles.
func Personas() []Persona { return slices.Clone(personas) }

// Differentials returns the seven operating commitments.
func Differentials() []Feature { return slices.Clone(differentials) }

// Workflow returns the quote-to-delivery steps.
func Workflow() []Feature { return slices.Clone(workflow) }

// Values returns the company values.
func Values() []Feature { return slices.Clone(values) }

// WarrantySteps returns the warranty claim process.
func WarrantySteps() []Feature { return slices.Clone(warrantySteps) }

// Zones returns the Popayán neighbourhoods served.
func Zones() []string { return slices.Clone(zones) }

// Municipalities returns the Cauca municipalities served.
func Municipalities() []string { return slices.Clone(municipalities) }
