package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/ports"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/order"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
	"github.com/jhoicas/Suprimentos-api/pkg/logger"
)

// Textos fijos devueltos cuando el modelo no responde.
const (
	SummaryFallback  = "Resumo indisponível."
	AnalysisFallback = "Não foi possível realizar a análise no momento."
)

const (
	aiTimeout = 30 * time.Second

	summarySystemPrompt  = "Você é um gestor de suprimentos. Dê um resumo executivo focando em valores totais, pedidos urgentes e possíveis gargalos nas NFs."
	analysisSystemPrompt = "Você é um consultor sênior de compras e suprimentos. Analise os preços, sugira o melhor fornecedor custo-benefício e aponte riscos potenciais."
)

// AIUseCase resumen de la cartera y análisis de mapas vía LLM.
// Cualquier fallo (timeout, cuota, red, sin API key) se registra y se reemplaza por el texto fijo;
// no hay reintentos.
type AIUseCase struct {
	llm        ports.LLMService
	orders     repository.OrderRepository
	quotations repository.QuotationRepository
	log        *logger.Logger
	timeout    time.Duration
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, orders repository.OrderRepository, quotations repository.QuotationRepository, log *logger.Logger) *AIUseCase {
	return &AIUseCase{
		llm:        llm,
		orders:     orders,
		quotations: quotations,
		log:        log.Component("ai"),
		timeout:    aiTimeout,
	}
}

// SummarizeOrders resumen ejecutivo de los pedidos activos.
func (uc *AIUseCase) SummarizeOrders(ctx context.Context) (*dto.AITextResponse, error) {
	all, err := uc.orders.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	payload, err := json.Marshal(order.Active(all))
	if err != nil {
		return nil, fmt.Errorf("serializar pedidos: %w", err)
	}
	prompt := "Resuma o status atual desta carteira de pedidos: " + string(payload)
	return uc.generate(ctx, ports.AITaskSummary, summarySystemPrompt, prompt, SummaryFallback), nil
}

// AnalyzeQuotation recomendación estratégica para un mapa. domain.ErrNotFound si no existe.
func (uc *AIUseCase) AnalyzeQuotation(ctx context.Context, id string) (*dto.AITextResponse, error) {
	all, err := uc.quotations.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar mapas: %w", err)
	}
	for _, m := range all {
		if m.ID != id {
			continue
		}
		payload, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("serializar mapa: %w", err)
		}
		prompt := "Analise este Mapa de Cotação de Suprimentos e forneça uma recomendação estratégica baseada em economia e confiabilidade: " + string(payload)
		return uc.generate(ctx, ports.AITaskAnalysis, analysisSystemPrompt, prompt, AnalysisFallback), nil
	}
	return nil, domain.ErrNotFound
}

func (uc *AIUseCase) generate(ctx context.Context, task ports.AITask, system, prompt, fallback string) *dto.AITextResponse {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	text, err := uc.llm.GenerateText(ctx, task, system, prompt)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("task", string(task)).
			Bool("timeout", errors.Is(err, context.DeadlineExceeded)).
			Dur("elapsed", time.Since(start)).
			Msg("IA sin respuesta, usando texto de respaldo")
		return &dto.AITextResponse{Text: fallback, Fallback: true}
	}
	return &dto.AITextResponse{Text: text}
}
