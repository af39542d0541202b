package middlewares

import (
	"net/http"
	"strings"
)

// =================================================================================
// ACCESS POLICY
// =================================================================================

// Access es el nivel exigido por una regla.
type Access int

const (
	Public Access = iota
	Authenticated
)

func (a Access) String() string {
	if a == Public {
		return "public"
	}
	return "authenticated"
}

// Rule asocia un método (vacío = cualquiera) y un conjunto de patrones a un
// nivel de acceso. Un patrón terminado en "/**" cubre el prefijo y todo lo
// que cuelga de él; el resto es match exacto.
type Rule struct {
	Method   string
	Patterns []string
	Access   Access
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && !strings.EqualFold(r.Method, method) {
		return false
	}
	for _, p := range r.Patterns {
		if matchPattern(p, path) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		if prefix == "" {
			return true
		}
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}

// Policy es una lista ordenada de reglas: gana la primera que matchea y,
// si ninguna lo hace, el request exige autenticación.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: append([]Rule(nil), rules...)}
}

// Decide devuelve el nivel de acceso exigido para method+path.
func (p *Policy) Decide(method, path string) Access {
	for _, r := range p.rules {
		if r.matches(method, path) {
			return r.Access
		}
	}
	return Authenticated
}

// DefaultPolicy es la tabla de acceso del servicio.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Rule{Method: http.MethodOptions, Patterns: []string{"/**"}, Access: Public},
		Rule{Method: http.MethodPost, Patterns: []string{"/login", "/users/register"}, Access: Public},
		Rule{Method: http.MethodGet, Patterns: []string{
			"/actuator/**",
			"/error",
			"/v3/api-docs/**",
			"/swagger-ui.html",
			"/swagger-ui/**",
			"/categories/**",
			"/products/**",
			"/healthz",
			"/readyz",
			"/metrics",
		}, Access: Public},
	)
}
