package importing

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Locale isola do algoritmo de parsing tudo que é específico de idioma e
// formato: palavras-chave de cabeçalho e convenções de número/moeda.
// O parser em si é agnóstico de locale; pt-BR é o único locale embarcado.
type Locale struct {
	Name           string
	CurrencySymbol string

	ProductKeywords  []string
	CategoryKeywords []string
	QuantityKeywords []string
	TotalKeywords    []string
	AvgPriceKeywords []string
}

// PTBR é o locale dos relatórios brasileiros de venda: moeda R$ com vírgula
// decimal e ponto de milhar, cabeçalhos em português.
func PTBR() Locale {
	return Locale{
		Name:           "pt-BR",
		CurrencySymbol: "R$",

		ProductKeywords:  []string{"produto", "item", "descricao"},
		CategoryKeywords: []string{"categoria", "grupo"},
		QuantityKeywords: []string{"qtd", "quantidade"},
		TotalKeywords:    []string{"total", "faturamento"},
		AvgPriceKeywords: []string{"medio", "unitario"},
	}
}

// ParseMoney converte uma string de moeda no formato do locale (ex.:
// "R$ 1.234,56") para float. Token inaproveitável vira 0 — a linha é
// descartada depois pela regra de quantidade, não aqui.
func (l Locale) ParseMoney(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, l.CurrencySymbol, "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}

// ParseQuantity converte uma quantidade inteira com separador de milhar
// (ex.: "1.250") para int. Token inaproveitável vira 0.
func (l Locale) ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return value
}

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName normaliza um nome para comparação: caixa baixa, sem acentos,
// espaços internos colapsados
func NormalizeName(s string) string {
	stripped, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		stripped = s
	}

	lowered := strings.ToLower(stripped)
	return strings.Join(strings.Fields(lowered), " ")
}
