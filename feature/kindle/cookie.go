package kindle

import (
	"fmt"
	"strings"
)

// ParseCookie normalizes a browser cookie string ("a=1; b=2") into a Cookie
// header value. Pairs without a name are dropped; at least one pair is required.
func ParseCookie(raw string) (string, error) {
	var pairs []string
	for _, part := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		pairs = append(pairs, name+"="+strings.Trim(strings.TrimSpace(value), `"`))
	}
	if len(pairs) == 0 {
		return "", fmt.Errorf("%w: no name=value pairs found", ErrCredential)
	}
	return strings.Join(pairs, "; "), nil
}
