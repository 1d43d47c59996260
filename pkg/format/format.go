// Package format concentra a formatação de exibição usada pelas telas:
// moeda no locale pt-BR (padrão BRL) e datas no padrão brasileiro DD/MM/YYYY.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Moeda formata um valor como moeda brasileira (ex.: 1000 -> "R$ 1.000,00").
// Apenas exibição; o valor armazenado permanece decimal.
func Moeda(valor decimal.Decimal) string {
	return MoedaCom(ptBR, "R$", valor)
}

// MoedaCom formata um valor como moeda com printer e símbolo específicos,
// sempre com duas casas decimais e espaço entre símbolo e valor.
func MoedaCom(p *message.Printer, simbolo string, valor decimal.Decimal) string {
	f, _ := valor.Float64()
	return p.Sprintf("%s %v", simbolo,
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Data converte "YYYY-MM-DD" para "DD/MM/YYYY". Entrada fora do formato volta como veio.
func Data(data string) string {
	partes := strings.SplitN(data, "-", 3)
	if len(partes) != 3 {
		return data
	}
	return partes[2] + "/" + partes[1] + "/" + partes[0]
}

// DataISO converte uma data ISO completa (ex.: "2024-02-19T12:00:00Z") para "DD/MM/YYYY".
// Datas vazias ou inválidas voltam vazias: a tela de movimentações exibe célula em branco.
func DataISO(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// alguns backends devolvem só a parte da data
		t, err = time.Parse("2006-01-02", iso)
		if err != nil {
			return ""
		}
	}
	return t.Format("02/01/2006")
}
