package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/controle-estoque/pkg/format"
)

func TestMoeda_PtBR(t *testing.T) {
	assert.Equal(t, "R$ 1.000,00", format.Moeda(decimal.NewFromInt(1000)),
		"milhar separado por ponto e decimais por vírgula")
	assert.Equal(t, "R$ 12,50", format.Moeda(decimal.RequireFromString("12.5")),
		"sempre duas casas decimais")
	assert.Equal(t, "R$ 0,00", format.Moeda(decimal.Zero))
}

func TestData_Brasileira(t *testing.T) {
	assert.Equal(t, "19/02/2024", format.Data("2024-02-19"))
	// entrada fora do formato esperado não deve quebrar a tela
	assert.Equal(t, "sem-data", format.Data("sem-data"))
}

func TestDataISO(t *testing.T) {
	assert.Equal(t, "19/02/2024", format.DataISO("2024-02-19T12:00:00Z"))
	assert.Equal(t, "19/02/2024", format.DataISO("2024-02-19"), "aceita data sem hora")
	assert.Equal(t, "", format.DataISO(""), "vazio vira célula em branco")
	assert.Equal(t, "", format.DataISO("inválida"), "data inválida vira célula em branco")
}
