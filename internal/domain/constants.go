package domain

const (
	DefaultTokenURL    = "https://api.mercadopago.com/oauth/token"
	DefaultAPIBaseURL  = "https://api.mercadopago.com"
	DefaultDocsBaseURL = "https://mercadopago.com/developers/api"

	CustomersPath           = "/v1/customers"
	IdentificationTypesPath = "/v1/identification_types"
	PaymentMethodsPath      = "/v1/payment_methods"
	DocsSearchPath          = "/v1/search"

	DefaultSearchLimit = 10
	MinSearchLimit     = 1
	MaxSearchLimit     = 100
)

// Languages accepted by the documentation search tool.
var DocLanguages = []string{"es", "pt"}
