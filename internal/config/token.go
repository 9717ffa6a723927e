package config

import (
	"encoding"
	"fmt"
	"io"

	"golang.org/x/oauth2"
)

// Token is a GitHub access token sourced from the environment.
//
// Rendering a Token through fmt, logrus, or JSON yields a redacted
// placeholder so the secret cannot end up in a log file or terminal by
// accident. Call Reveal (or TokenSource) at the one place the credential is
// actually attached to a request.
type Token string

// Redaction in JSON output depends on encoding/json picking up MarshalText.
var _ encoding.TextMarshaler = Token("")

// Redaction in fmt output depends on Format intercepting every verb.
var _ fmt.Formatter = Token("")

const redactedToken = "<redacted>"

// String implements fmt.Stringer and always redacts.
func (t Token) String() string {
	if t == "" {
		return ""
	}
	return redactedToken
}

// GoString keeps %#v from leaking the raw value.
func (t Token) GoString() string {
	return fmt.Sprintf("config.Token(%q)", t.String())
}

// Format routes every fmt verb through the redacted form. Stringer is only
// consulted for %v, %s, %q, %x, and %X; any other verb would hit fmt's
// bad-verb path, which reprints the raw underlying string with method
// dispatch disabled.
func (t Token) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		_, _ = io.WriteString(f, t.GoString())
	case verb == 'q':
		_, _ = fmt.Fprintf(f, "%q", t.String())
	default:
		_, _ = io.WriteString(f, t.String())
	}
}

// MarshalText redacts the token in JSON and other text encodings.
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Reveal returns the raw token value.
func (t Token) Reveal() string {
	return string(t)
}

// TokenSource adapts the token for OAuth2-authenticated HTTP clients.
func (t Token) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(t)})
}
