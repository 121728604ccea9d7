package logging

import "strings"

const redactedValue = "[REDACTED]"

// Redactor handles secret redaction in log fields. The default key set
// covers every secret the SRP engine produces or consumes.
type Redactor struct {
	sensitiveKeys map[string]bool
}

// NewRedactor creates a new Redactor with default sensitive keys.
func NewRedactor() *Redactor {
	return &Redactor{
		sensitiveKeys: map[string]bool{
			// credentials
			"password": true,
			"verifier": true,
			"salt":     true,

			// handshake material
			"a":            true, // client ephemeral secret
			"b":            true, // server ephemeral secret
			"x":            true, // derived private key
			"proof":        true, // M
			"strong_proof": true, // M2
			"secret":       true, // S
			"session_key":  true, // K
			"key":          true,
		},
	}
}

// AddSensitiveKey adds a custom key to the redaction list.
func (r *Redactor) AddSensitiveKey(key string) {
	r.sensitiveKeys[strings.ToLower(key)] = true
}

// RemoveSensitiveKey removes a key from the redaction list.
func (r *Redactor) RemoveSensitiveKey(key string) {
	delete(r.sensitiveKeys, strings.ToLower(key))
}

// RedactFields redacts sensitive values from a map of fields, including
// nested maps.
func (r *Redactor) RedactFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}

	redacted := make(map[string]any, len(fields))
	for k, v := range fields {
		switch {
		case r.isSensitiveKey(k):
			redacted[k] = redactedValue
		default:
			if nested, ok := v.(map[string]any); ok {
				redacted[k] = r.RedactFields(nested)
			} else {
				redacted[k] = v
			}
		}
	}
	return redacted
}

// isSensitiveKey checks exact, case-insensitive key matches only;
// substring matching proved too aggressive for legitimate fields.
func (r *Redactor) isSensitiveKey(key string) bool {
	return r.sensitiveKeys[strings.ToLower(key)]
}
