package importing

import (
	"testing"

	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []*domain.Product {
	return []*domain.Product{
		{ID: 1, Name: "X-Tudo", CMV: 10, SalePrice: 30},
		{ID: 2, Name: "Refrigerantes", CMV: 2, SalePrice: 8},
		{ID: 3, Name: "Açaí 500ml", CMV: 7, SalePrice: 22},
	}
}

func TestParseComCabecalho(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	text := "Produto\tCategoria\tQtd\tTotal\tMédio\n" +
		"X-Tudo\tLanches\t65\tR$ 2.024,88\tR$ 30,68\n"

	items := parser.Parse(text)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "X-Tudo", item.RawName)
	assert.Equal(t, "Lanches", item.Category)
	assert.Equal(t, 65, item.Quantity)
	assert.InDelta(t, 2024.88, item.TotalValue, 0.001)
	assert.InDelta(t, 30.68, item.AvgPrice, 0.001)
	assert.Equal(t, StatusMatched, item.Status)
	assert.Equal(t, int64(1), item.ProductID)
	assert.True(t, item.Selected)
}

func TestParseSemCabecalhoUsaOrdemPadrao(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	text := "X-Tudo\tLanches\t10\tR$ 300,00\tR$ 30,00\n" +
		"Suco de Laranja\tBebidas\t4\tR$ 48,00\tR$ 12,00\n"

	items := parser.Parse(text)
	require.Len(t, items, 2)

	assert.Equal(t, StatusMatched, items[0].Status)
	assert.Equal(t, StatusNotFound, items[1].Status)
	assert.Zero(t, items[1].ProductID)
}

func TestParseCabecalhoComColunasEmbaralhadas(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	text := "Qtd\tItem\tValor Total\n" +
		"12\tX-Tudo\tR$ 360,00\n"

	items := parser.Parse(text)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "X-Tudo", item.RawName)
	assert.Equal(t, 12, item.Quantity)
	assert.InDelta(t, 360.0, item.TotalValue, 0.001)
	// Preço médio ausente é derivado do total
	assert.InDelta(t, 30.0, item.AvgPrice, 0.001)
}

func TestParseDerivaTotalDoPrecoMedio(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	text := "Produto\tCategoria\tQtd\tTotal\tMédio\n" +
		"X-Tudo\tLanches\t5\t\tR$ 30,00\n"

	items := parser.Parse(text)
	require.Len(t, items, 1)

	assert.InDelta(t, 150.0, items[0].TotalValue, 0.001)
	assert.InDelta(t, 30.0, items[0].AvgPrice, 0.001)
}

func TestParseDescartaLinhasInaproveitaveis(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	text := "Produto\tCategoria\tQtd\tTotal\tMédio\n" +
		"\n" +
		"X-Tudo\tLanches\t0\tR$ 0,00\tR$ 0,00\n" +
		"X-Tudo\tLanches\tabc\tR$ 10,00\tR$ 10,00\n" +
		"Total\t\t70\tR$ 2.100,00\t\n" +
		"X-Tudo\tLanches\t3\tR$ 90,00\tR$ 30,00\n"

	items := parser.Parse(text)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestParseDescartaCabecalhoRepetidoNoMeioDaPagina(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	// Relatórios paginados repetem o cabeçalho no meio do texto, às vezes com
	// o número da página caindo na coluna de quantidade
	text := "Produto\tCategoria\tQtd\tTotal\tMédio\n" +
		"X-Tudo\tLanches\t65\tR$ 2.024,88\tR$ 30,68\n" +
		"Produto\tCategoria\t2\tR$ 5,00\t\n" +
		"Item\t\t3\t\t\n" +
		"X-Tudo\tLanches\t3\tR$ 90,00\tR$ 30,00\n"

	items := parser.Parse(text)
	require.Len(t, items, 2)

	for _, item := range items {
		assert.Equal(t, "X-Tudo", item.RawName)
	}
}

func TestParseTextoVazio(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	assert.Empty(t, parser.Parse(""))
	assert.Empty(t, parser.Parse("\n\n\n"))
}

func TestParseCasaPluralDivergente(t *testing.T) {
	parser := NewParser(PTBR(), catalogFixture())

	tests := []struct {
		name     string
		rawName  string
		expected int64
	}{
		{
			name:     "relatório no singular e catálogo no plural",
			rawName:  "Refrigerante",
			expected: 2,
		},
		{
			name:     "relatório no plural e catálogo no singular",
			rawName:  "X-Tudos",
			expected: 1,
		},
		{
			name:     "acentos e caixa não importam",
			rawName:  "ACAI 500ML",
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := parser.Parse(tt.rawName + "\tOutros\t2\tR$ 20,00\tR$ 10,00\n")
			require.Len(t, items, 1)
			assert.Equal(t, StatusMatched, items[0].Status)
			assert.Equal(t, tt.expected, items[0].ProductID)
		})
	}
}

func TestParseMoney(t *testing.T) {
	locale := PTBR()

	tests := []struct {
		raw      string
		expected float64
	}{
		{"R$ 2.024,88", 2024.88},
		{"R$2.024,88", 2024.88},
		{"1.234.567,89", 1234567.89},
		{"30,68", 30.68},
		{"30", 30},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, locale.ParseMoney(tt.raw), 0.001, "entrada %q", tt.raw)
	}
}

func TestParseQuantity(t *testing.T) {
	locale := PTBR()

	assert.Equal(t, 65, locale.ParseQuantity("65"))
	assert.Equal(t, 1250, locale.ParseQuantity("1.250"))
	assert.Equal(t, 0, locale.ParseQuantity(""))
	assert.Equal(t, 0, locale.ParseQuantity("abc"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "acai 500ml", NormalizeName("  Açaí   500ml "))
	assert.Equal(t, "x-tudo", NormalizeName("X-Tudo"))
	assert.Equal(t, "pao de queijo", NormalizeName("PÃO DE QUEIJO"))
}
