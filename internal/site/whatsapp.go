// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package site

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppNumber is the store's WhatsApp Business number in international form.
const WhatsAppNumber = "573205190242"

// Call-to-action messages prefilled into WhatsApp conversations.
const (
	MsgDefault     = "Hola FECAUCA 💡 Quisiera una cotización"
	MsgShort       = "Hola FECAUCA 💡"
	MsgHeroQuote   = "Hola FECAUCA, quiero proteger mi instalación eléctrica. Necesito cotizar materiales certificados."
	MsgCables      = "Hola, quiero cotizar cables eléctricos en Popayán"
	MsgLED         = "Hola, quiero cotizar iluminación LED en Popayán"
	MsgBreakers    = "Hola, quiero cotizar breakers en Popayán"
	MsgQuestion    = "Hola FECAUCA, tengo una pregunta sobre materiales eléctricos"
	MsgWarranty    = "Hola FECAUCA, tengo una consulta sobre una garantía"
	MsgServices    = "Hola FECAUCA, necesito asesoría técnica para mi proyecto"
	MsgContact     = "Hola FECAUCA 💡 Quiero realizar una cotización / consulta"
	MsgFAQSupport  = "Hola FECAUCA 💡 Ayuda FAQ"
	waBase         = "https://wa.me/"
	facebookSharer = "https://www.facebook.com/sharer/sharer.php?u="
)

// componentUnescaper restores the marks encodeURIComponent leaves alone but
// url.QueryEscape escapes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s like encodeURIComponent: spaces become %20 and
// the marks !'()* stay literal.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// WhatsAppLink returns a deep link opening a chat with the store, prefilled
// with message. An empty message yields a bare chat link.
func WhatsAppLink(message string) string {
	if message == "" {
		return waBase + WhatsAppNumber
	}
	return waBase + WhatsAppNumber + "?text=" + encodeComponent(message)
}

// ShareLink returns a WhatsApp link that lets the visitor pick the recipient.
func ShareLink(text string) string {
	return waBase + "?text=" + encodeComponent(text)
}

// PostShareText is the text shared for a blog post: "<title> - <url>".
func PostShareText(title, pageURL string) string {
	return title + " - " + pageURL
}

// FacebookShareLink returns the Facebook sharer URL for pageURL.
func FacebookShareLink(pageURL string) string {
	return facebookSharer + encodeComponent(pageURL)
}

// ProductQuoteMessage is the message used by a product's quote button.
func ProductQuoteMessage(p Product) string {
	return fmt.Sprintf("Hola FECAUCA, me interesa cotizar: %s (%s)", p.Name, p.Brand)
}
