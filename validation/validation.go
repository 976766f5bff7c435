// Package validation accumulates field-scoped problems found while
// handling a single request, so every issue in a submission is reported
// together instead of only the first one.
package validation

// FieldError is one problem, labelled with the field it belongs to.
type FieldError struct {
	Campo    string
	Mensagem string
}

// Errors collects field errors in the order they were recorded.
type Errors struct {
	erros []FieldError
}

func New() *Errors {
	return &Errors{}
}

func (e *Errors) Add(campo, mensagem string) {
	e.erros = append(e.erros, FieldError{Campo: campo, Mensagem: mensagem})
}

func (e *Errors) HasErrors() bool {
	return len(e.erros) > 0
}

// Messages returns the human readable messages, in insertion order.
func (e *Errors) Messages() []string {
	msgs := make([]string, len(e.erros))
	for i, fe := range e.erros {
		msgs[i] = fe.Mensagem
	}
	return msgs
}
