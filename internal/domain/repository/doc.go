// Package repository define las interfaces de repositorio de dominio.
//
// Estas interfaces representan contratos de negocio, independientes del
// almacenamiento subyacente (memoria, PostgreSQL).
//
// Las implementaciones concretas viven en internal/store/adapters/.
//
// Arquitectura:
//
//	┌─────────────────────────────────────────────────────┐
//	│           Usecases / Controllers                    │
//	└─────────────────────────────────────────────────────┘
//	                        │
//	                        ▼
//	┌─────────────────────────────────────────────────────┐
//	│        domain/repository (interfaces)               │
//	│  CategoryRepository, ProductRepository, UserRepo... │
//	└─────────────────────────────────────────────────────┘
//	                        │
//	               ┌────────┴────────┐
//	               ▼                 ▼
//	        ┌─────────────┐   ┌─────────────┐
//	        │  adapters/  │   │  adapters/  │
//	        │   memory    │   │     pg      │
//	        └─────────────┘   └─────────────┘
//
// Convenciones:
//   - Context siempre es el primer parámetro
//   - Las entidades viajan ya validadas (internal/domain/model)
//   - Save asigna un ID nuevo cuando la entidad llega con uuid.Nil
//   - Errores de dominio están en errors.go
package repository
