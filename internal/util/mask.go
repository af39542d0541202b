// Package util junta helpers chicos sin dependencias del dominio.
package util

import (
	"net/url"
	"regexp"
)

var kvPassword = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)

// MaskDSN oculta la contraseña de un DSN para poder loguearlo.
// Soporta la forma URL (postgres://u:p@h/db) y la key=value (password=p).
func MaskDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
		return u.String()
	}
	return kvPassword.ReplaceAllString(dsn, "${1}xxxxx")
}
