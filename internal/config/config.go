package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"storefront.db"`

	Commerce Commerce `envPrefix:"COMMERCE_"`
	Payment  Payment  `envPrefix:"PAYMENT_"`
	Content  Content  `envPrefix:"CONTENT_"`
	Session  Session  `envPrefix:"SESSION_"`
}

// Commerce is the GraphQL backend holding catalog, checkout and accounts.
type Commerce struct {
	APIURL string `env:"API_URL"`
	// Channel and VariantID pin the single product this deployment sells.
	Channel        string `env:"CHANNEL" envDefault:"default-channel"`
	VariantID      string `env:"VARIANT_ID"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"30"`
}

// Payment is the card processor's server-side API (payment intents).
// Card tokenization happens in the browser SDK and never touches this service.
type Payment struct {
	BaseAPIURL     string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey      string `env:"SECRET_KEY"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"30"`
}

// Content is the read-only asset service used for the checkout page image.
type Content struct {
	BaseURL     string `env:"BASE_URL"`
	AccessToken string `env:"ACCESS_TOKEN"`
	ImageKey    string `env:"IMAGE_KEY" envDefault:"checkout-hero"`
}

type Session struct {
	CookieName string `env:"COOKIE_NAME" envDefault:"storefront_token"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsProduction() bool {
	return e.Name == "production"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
