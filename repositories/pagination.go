package repositories

import "strings"

const DefaultPageSize = 25

// PageRequest describes one page of a sorted listing. Pagina is zero based.
type PageRequest struct {
	Pagina  int
	Tamanho int
	Ord     string
	Dir     string
}

// lancamento columns accepted for ordering; anything else falls back to id.
var sortableFields = map[string]string{
	"id":   "id",
	"data": "data",
	"tipo": "tipo",
}

// OrderClause builds a safe ORDER BY expression from the request.
func (p PageRequest) OrderClause() string {
	field, ok := sortableFields[strings.ToLower(p.Ord)]
	if !ok {
		field = "id"
	}

	dir := "DESC"
	if strings.EqualFold(p.Dir, "ASC") {
		dir = "ASC"
	}

	return field + " " + dir
}

// Limit returns the page size, never zero.
func (p PageRequest) Limit() int {
	if p.Tamanho <= 0 {
		return DefaultPageSize
	}
	return p.Tamanho
}

// Offset returns the row offset of the requested page.
func (p PageRequest) Offset() int {
	if p.Pagina <= 0 {
		return 0
	}
	return p.Pagina * p.Limit()
}
