package dto

// AITextResponse texto generado (o el mensaje de respaldo). Fallback indica que no hubo respuesta del modelo.
type AITextResponse struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}
