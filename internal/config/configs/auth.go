package configs

// Auth configures verification of bearer tokens. Tokens are HS256 JWTs
// signed with JWTSecret; when Audience is set the aud claim must match it.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET,required"`
	Audience  string `env:"AUDIENCE"`
	// Cookie names the cookie read when no Authorization header is sent.
	Cookie string `env:"COOKIE" envDefault:"sb-access-token"`
}
