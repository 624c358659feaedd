package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suprimentos-api/internal/application/ports"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Suprimentos-api/pkg/logger"
)

type fakeLLM struct {
	text     string
	err      error
	block    bool
	lastTask ports.AITask
	lastUser string
}

func (f *fakeLLM) GenerateText(ctx context.Context, task ports.AITask, _, user string) (string, error) {
	f.lastTask = task
	f.lastUser = user
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Orders().SaveAll(ctx, []entity.Order{
		{ID: "1", Supplier: "ATIVO", Amount: decimal.NewFromInt(10)},
		{ID: "2", Supplier: "ARQUIVADO", Archived: true},
	}))
	require.NoError(t, s.Quotations().SaveAll(ctx, []entity.QuotationMap{{ID: "MAP-1", Title: "BOMBAS"}}))
	return s
}

func TestAIUseCase_SummarizeSoloActivos(t *testing.T) {
	s := seededStore(t)
	llm := &fakeLLM{text: "Carteira com 1 pedido."}
	uc := NewAIUseCase(llm, s.Orders(), s.Quotations(), logger.Nop())

	res, err := uc.SummarizeOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Carteira com 1 pedido.", res.Text)
	assert.False(t, res.Fallback)
	assert.Equal(t, ports.AITaskSummary, llm.lastTask)
	assert.Contains(t, llm.lastUser, "ATIVO")
	assert.NotContains(t, llm.lastUser, "ARQUIVADO")
}

func TestAIUseCase_FallbackYLog(t *testing.T) {
	s := seededStore(t)
	var buf bytes.Buffer
	uc := NewAIUseCase(&fakeLLM{err: errors.New("quota exceeded")}, s.Orders(), s.Quotations(), logger.NewWriter(&buf))

	res, err := uc.SummarizeOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SummaryFallback, res.Text)
	assert.True(t, res.Fallback)
	assert.True(t, strings.Contains(buf.String(), "quota exceeded"))

	res, err = uc.AnalyzeQuotation(context.Background(), "MAP-1")
	require.NoError(t, err)
	assert.Equal(t, AnalysisFallback, res.Text)
}

func TestAIUseCase_Timeout(t *testing.T) {
	s := seededStore(t)
	uc := NewAIUseCase(&fakeLLM{block: true}, s.Orders(), s.Quotations(), logger.Nop())
	uc.timeout = 20 * time.Millisecond

	res, err := uc.AnalyzeQuotation(context.Background(), "MAP-1")
	require.NoError(t, err)
	assert.Equal(t, AnalysisFallback, res.Text)
	assert.True(t, res.Fallback)
}

func TestAIUseCase_AnalyzeMapaInexistente(t *testing.T) {
	s := seededStore(t)
	llm := &fakeLLM{text: "ok"}
	uc := NewAIUseCase(llm, s.Orders(), s.Quotations(), logger.Nop())

	_, err := uc.AnalyzeQuotation(context.Background(), "MAP-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := uc.AnalyzeQuotation(context.Background(), "MAP-1")
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Text)
	assert.Equal(t, ports.AITaskAnalysis, llm.lastTask)
	assert.Contains(t, llm.lastUser, "BOMBAS")
}
