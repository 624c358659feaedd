package installment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/installment"
)

func orderWithSchedule() entity.Order {
	return entity.Order{
		ID:           "o-1",
		Amount:       dec("100.00"),
		Installments: installment.Generate(dec("100.00"), 3, entity.NewDate(2026, 1, 15)),
	}
}

func TestUpdate_ValorResumaElTotal(t *testing.T) {
	o := orderWithSchedule()
	amount := dec("50.00")

	out, ok := installment.Update(o, 2, installment.Patch{Amount: &amount})

	require.True(t, ok)
	assert.Equal(t, "116.67", out.Amount.StringFixed(2))
	assert.Equal(t, "33.33", o.Installments[1].Amount.StringFixed(2), "el pedido original no debe cambiar")
}

func TestUpdate_PagoYFechaNoTocanTotal(t *testing.T) {
	o := orderWithSchedule()
	paid := true
	due := entity.NewDate(2026, 2, 20)

	out, ok := installment.Update(o, 2, installment.Patch{Paid: &paid, DueDate: &due})

	require.True(t, ok)
	assert.True(t, out.Installments[1].Paid)
	assert.Equal(t, "2026-02-20", out.Installments[1].DueDate.String())
	assert.Equal(t, "100.00", out.Amount.StringFixed(2))
	assert.Equal(t, "66.67", installment.Outstanding(out.Installments).StringFixed(2))
}

func TestUpdate_ParcelaInexistente(t *testing.T) {
	o := orderWithSchedule()
	paid := true

	_, ok := installment.Update(o, 9, installment.Patch{Paid: &paid})

	assert.False(t, ok)
}
