package domain

// Credentials hold the OAuth client pair for the client-credentials grant.
// They are fixed for the process lifetime and must never be logged.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Token is the response of a client-credentials exchange.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type IdentificationType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
}

type PaymentMethod struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PaymentTypeID   string `json:"payment_type_id"`
	Status          string `json:"status"`
	Thumbnail       string `json:"thumbnail"`
	SecureThumbnail string `json:"secure_thumbnail"`
}

// DocSearchQuery is a validated documentation search request.
type DocSearchQuery struct {
	Language   string
	Term       string
	SiteID     string
	MaxResults int
}

type DocResult struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Path    string  `json:"path"`
	Score   float64 `json:"score"`
}

type DocSearchResponse struct {
	Results []DocResult `json:"results"`
}
