package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names that carry credentials. The
// access log masks them; the redactor below masks attributes of the same name.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"cookie":              true,
	"x-api-key":           true,
	"x-wp-nonce":          true,
	"x-jetpack-signature": true,
}

// sensitiveFields are attribute names whose values are always masked: the
// backend credentials, the storage DSN and the S3 keys of the settings store.
var sensitiveFields = []string{
	"auth_token",
	"consumer_key",
	"consumer_secret",
	"dsn",
	"password",
	"secret",
	"secret_access_key",
	"session_token",
	"token",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// WooCommerce REST keys: ck_ or cs_ followed by 40 hex digits.
	wooKeyPattern = regexp.MustCompile(`\bc[ks]_[a-f0-9]{40}\b`)
	// Three base64url segments of ten or more characters; shorter dotted
	// strings are usually versions.
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

func newRedactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(wooKeyPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	return masq.New(opts...)
}
