// Package postgres embebe las migraciones SQL del esquema de catálogo.
package postgres

import "embed"

// FS contiene los archivos {version}_{name}.up.sql / .down.sql.
//
//go:embed *.sql
var FS embed.FS

// Dir es el directorio dentro de FS donde viven las migraciones.
const Dir = "."
