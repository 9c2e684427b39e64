package dto

// ErrorResponse cuerpo estándar de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta de las mutaciones: id del registro de negocio creado.
type CreatedResponse struct {
	ID string `json:"id"`
}
