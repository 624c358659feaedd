package ports

import "context"

// AITask identifica el tipo de texto pedido al modelo. Cada adaptador puede elegir un modelo distinto por tarea.
type AITask string

const (
	AITaskSummary  AITask = "summary"  // resumen ejecutivo de la cartera de pedidos
	AITaskAnalysis AITask = "analysis" // recomendación estratégica sobre un mapa de cotización
)

// LLMService define el puerto de salida hacia el proveedor de IA.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
type LLMService interface {
	// GenerateText envía la instrucción de sistema y el contenido y devuelve el texto plano generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateText(ctx context.Context, task AITask, systemPrompt, userPrompt string) (string, error)
}
