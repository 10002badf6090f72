// Package authz implementa el chequeo de autorización por rol.
//
// Es la versión explícita del decorador dinámico del sistema original: cada
// acción declara su conjunto de roles permitidos y la capa de presentación
// llama IsAuthorized antes de invocar cualquier operación mutante.
package authz

// IsAuthorized reporta si role pertenece al conjunto de roles permitidos.
// Un rol vacío (caller no autenticado) siempre se deniega.
func IsAuthorized(role string, allowed ...string) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
