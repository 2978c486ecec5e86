package domain

import "fmt"

// SiteIDs lists the MercadoPago marketplaces exposed to callers, in the
// order they appear in the tool schema.
var SiteIDs = []string{"MLB", "MLM", "MLA", "MLU", "MLC", "MCO", "MPE"}

var siteDomains = map[string]string{
	"MLA": "www.mercadopago.com.ar",
	"MLB": "www.mercadopago.com.br",
	"MLM": "www.mercadopago.com.mx",
	"MLU": "www.mercadopago.com.uy",
	"MLC": "www.mercadopago.cl",
	"MCO": "www.mercadopago.com.co",
	"MPE": "www.mercadopago.com.pe",
}

// SiteDomain returns the public site domain for a marketplace id.
func SiteDomain(siteID string) (string, bool) {
	d, ok := siteDomains[siteID]
	return d, ok
}

// BuildDocumentationURL composes the public documentation URL for a search
// hit. Unknown site ids fall back to the global domain so a rendered link
// is always valid.
func BuildDocumentationURL(siteID, language, path string) string {
	host, ok := siteDomains[siteID]
	if !ok {
		host = "www.mercadopago.com"
	}
	return fmt.Sprintf("https://%s/developers/%s%s", host, language, path)
}
