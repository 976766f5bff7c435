package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTipoValido(t *testing.T) {
	valid := []string{"INICIO_TRABALHO", "INICIO_ALMOCO", "TERMINO_ALMOCO", "TERMINO_TRABALHO"}
	for _, tipo := range valid {
		assert.True(t, TipoValido(tipo), tipo)
	}
}

func TestTipoValidoRejectsAnythingElse(t *testing.T) {
	invalid := []string{
		"",
		"inicio_trabalho",
		"Inicio_Almoco",
		"ALMOCO",
		"INICIO_TRABALHO ",
		"FIM_TRABALHO",
	}
	for _, tipo := range invalid {
		assert.False(t, TipoValido(tipo), tipo)
	}
}
