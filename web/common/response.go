package common

// Response is the envelope every endpoint answers with: a payload on
// success, one or more human readable messages on failure, never both.
type Response struct {
	Data   interface{} `json:"data"`
	Errors []string    `json:"errors"`
}

func NewResponse(data interface{}) *Response {
	return &Response{Data: data, Errors: []string{}}
}

func NewErrorResponse(errors ...string) *Response {
	return &Response{Errors: errors}
}

// Page wraps one page of a listing plus the storage total.
type Page struct {
	Content       interface{} `json:"content"`
	Total         int64       `json:"total"`
	Pagina        int         `json:"pagina"`
	TamanhoPagina int         `json:"tamanhoPagina"`
}

func NewPage(content interface{}, total int64, pagina, tamanho int) *Page {
	return &Page{
		Content:       content,
		Total:         total,
		Pagina:        pagina,
		TamanhoPagina: tamanho,
	}
}
