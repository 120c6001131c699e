package importing

import (
	"strings"

	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/pkg/log"
)

type ItemStatus string

const (
	StatusMatched  ItemStatus = "matched"
	StatusNotFound ItemStatus = "not_found"
)

// ParsedItem é uma linha aproveitável do texto colado, já resolvida contra o
// catálogo. Selected vem marcado por padrão e o usuário desmarca na prévia.
type ParsedItem struct {
	RawName     string     `json:"raw_name"`
	Category    string     `json:"category"`
	Quantity    int        `json:"quantity"`
	TotalValue  float64    `json:"total_value"`
	AvgPrice    float64    `json:"avg_price"`
	Status      ItemStatus `json:"status"`
	ProductID   int64      `json:"product_id,omitempty"`
	MatchedName string     `json:"matched_name,omitempty"`
	Selected    bool       `json:"selected"`
	SourceLine  int        `json:"source_line"`
}

// columnLayout guarda o índice de cada coluna semântica na linha tabulada.
// -1 significa coluna ausente.
type columnLayout struct {
	product  int
	category int
	quantity int
	total    int
	avgPrice int
}

// defaultLayout é a ordem clássica dos relatórios de PDV: produto, categoria,
// quantidade, total, preço médio. Usada quando nenhum cabeçalho é detectado.
var defaultLayout = columnLayout{product: 0, category: 1, quantity: 2, total: 3, avgPrice: 4}

type catalogEntry struct {
	id   int64
	name string
}

// Parser transforma texto tabular colado (separado por tabulação) em itens de
// venda resolvidos contra o catálogo de produtos.
type Parser struct {
	locale Locale
	index  map[string]catalogEntry
}

func NewParser(locale Locale, products []*domain.Product) *Parser {
	index := make(map[string]catalogEntry, len(products)*2)
	for _, product := range products {
		entry := catalogEntry{id: product.ID, name: product.Name}
		normalized := NormalizeName(product.Name)
		index[normalized] = entry

		// Indexa também a forma sem o "s" final para tolerar plural
		// divergente entre catálogo e relatório
		singular := strings.TrimSuffix(normalized, "s")
		if _, exists := index[singular]; !exists {
			index[singular] = entry
		}
	}

	return &Parser{
		locale: locale,
		index:  index,
	}
}

// Parse devolve todas as linhas aproveitáveis do texto, na ordem original,
// sem filtrar por status. Texto vazio ou sem linhas úteis devolve lista vazia.
func (p *Parser) Parse(text string) []*ParsedItem {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	layout, dataStart := p.detectHeader(lines)

	items := make([]*ParsedItem, 0)
	for i := dataStart; i < len(lines); i++ {
		item := p.parseLine(lines[i], layout)
		if item == nil {
			continue
		}
		item.SourceLine = i + 1
		items = append(items, item)
	}

	log.L.WithFields(log.Fields{
		"linhas": len(lines),
		"itens":  len(items),
	}).Debug("parsing de vendas concluído")

	return items
}

// detectHeader procura uma linha de cabeçalho (contém palavra de produto e de
// quantidade) e mapeia as colunas por palavra-chave. Sem cabeçalho, todas as
// linhas são dados e vale a ordem padrão de colunas.
func (p *Parser) detectHeader(lines []string) (columnLayout, int) {
	for i, line := range lines {
		normalized := NormalizeName(line)
		if !containsAny(normalized, p.locale.ProductKeywords) || !containsAny(normalized, p.locale.QuantityKeywords) {
			continue
		}

		layout := columnLayout{product: -1, category: -1, quantity: -1, total: -1, avgPrice: -1}
		for col, cell := range strings.Split(line, "\t") {
			header := NormalizeName(cell)
			switch {
			case layout.product < 0 && containsAny(header, p.locale.ProductKeywords):
				layout.product = col
			case layout.category < 0 && containsAny(header, p.locale.CategoryKeywords):
				layout.category = col
			case layout.quantity < 0 && containsAny(header, p.locale.QuantityKeywords):
				layout.quantity = col
			case layout.avgPrice < 0 && containsAny(header, p.locale.AvgPriceKeywords):
				layout.avgPrice = col
			case layout.total < 0 && containsAny(header, p.locale.TotalKeywords):
				layout.total = col
			}
		}

		if layout.product < 0 || layout.quantity < 0 {
			break
		}

		return layout, i + 1
	}

	return defaultLayout, 0
}

func (p *Parser) parseLine(line string, layout columnLayout) *ParsedItem {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	cells := strings.Split(line, "\t")

	name := strings.TrimSpace(cellAt(cells, layout.product))
	if name == "" {
		return nil
	}

	// Linha de rodapé de totais ou repetição de cabeçalho no meio da página
	// não é uma venda
	normalized := NormalizeName(name)
	if normalized == "total" || equalsAny(normalized, p.locale.ProductKeywords) {
		return nil
	}

	quantity := p.locale.ParseQuantity(cellAt(cells, layout.quantity))
	if quantity <= 0 {
		log.L.WithField("linha", line).Debug("linha descartada por quantidade inválida")
		return nil
	}

	total := p.locale.ParseMoney(cellAt(cells, layout.total))
	avgPrice := p.locale.ParseMoney(cellAt(cells, layout.avgPrice))

	// Total e preço médio se derivam mutuamente quando só um veio preenchido
	if total == 0 && avgPrice > 0 {
		total = avgPrice * float64(quantity)
	}
	if avgPrice == 0 && total > 0 {
		avgPrice = total / float64(quantity)
	}

	item := &ParsedItem{
		RawName:    name,
		Category:   strings.TrimSpace(cellAt(cells, layout.category)),
		Quantity:   quantity,
		TotalValue: total,
		AvgPrice:   avgPrice,
		Status:     StatusNotFound,
		Selected:   true,
	}

	if entry, ok := p.lookup(name); ok {
		item.Status = StatusMatched
		item.ProductID = entry.id
		item.MatchedName = entry.name
	}

	return item
}

// lookup resolve o nome contra o catálogo: igualdade normalizada primeiro,
// depois tolerando o "s" final de plural em qualquer um dos lados
func (p *Parser) lookup(name string) (catalogEntry, bool) {
	normalized := NormalizeName(name)
	if entry, ok := p.index[normalized]; ok {
		return entry, true
	}

	if entry, ok := p.index[strings.TrimSuffix(normalized, "s")]; ok {
		return entry, true
	}

	return catalogEntry{}, false
}

func cellAt(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}
	return cells[index]
}

func equalsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if s == keyword {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
