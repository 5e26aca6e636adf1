package domain

import (
	"fmt"
)

// SchemaElement identifica o que está ausente em um SchemaError
type SchemaElement string

const (
	SchemaResource SchemaElement = "resource"
	SchemaSheet    SchemaElement = "sheet"
	SchemaColumn   SchemaElement = "column"
)

// SchemaError indica que o recurso, a aba ou uma coluna esperada não existe.
// É sempre fatal para a execução.
type SchemaError struct {
	Element SchemaElement
	Name    string
}

func (e *SchemaError) Error() string {
	switch e.Element {
	case SchemaResource:
		return fmt.Sprintf("planilha não encontrada: %s", e.Name)
	case SchemaSheet:
		return fmt.Sprintf("aba não encontrada: %s", e.Name)
	default:
		return fmt.Sprintf("coluna obrigatória ausente: %s", e.Name)
	}
}

// NewResourceError cria um SchemaError para um recurso ausente
func NewResourceError(location string) *SchemaError {
	return &SchemaError{Element: SchemaResource, Name: location}
}

// NewSheetError cria um SchemaError para uma aba ausente
func NewSheetError(sheet string) *SchemaError {
	return &SchemaError{Element: SchemaSheet, Name: sheet}
}

// NewColumnError cria um SchemaError para uma coluna ausente
func NewColumnError(column string) *SchemaError {
	return &SchemaError{Element: SchemaColumn, Name: column}
}

// FormatError indica um valor de célula que não pôde ser interpretado.
// Row é o número da linha na planilha (base 1).
type FormatError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("linha %d, coluna %s: %s", e.Row, e.Column, e.Reason)
	}
	return fmt.Sprintf("linha %d, coluna %s: valor %q inválido: %s", e.Row, e.Column, e.Value, e.Reason)
}
