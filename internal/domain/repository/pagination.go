package repository

// Page parámetros de paginación ya normalizados por la capa de aplicación.
type Page struct {
	Limit  int
	Offset int
}
