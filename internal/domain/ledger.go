package domain

import (
	"strings"
	"time"
)

// Ledger operation codes accepted by POST /api/extrato/operacoes.
const (
	OperacaoCredito = 1
	OperacaoDebito  = 2
)

// LedgerEntry is one credit/debit row of the statement (extrato).
type LedgerEntry struct {
	ID            int64     `json:"id"`
	Operacao      string    `json:"operacao"`
	CodigoReserva string    `json:"codigoReserva"`
	Valor         float64   `json:"valor"`
	DataCriacao   time.Time `json:"dataCriacao"`
}

// IsCredit reports whether the entry adds to the balance. The server labels
// operations in free text; anything containing "cr" counts as a credit, same
// rule the original UI applied.
func (e LedgerEntry) IsCredit() bool {
	return strings.Contains(strings.ToLower(e.Operacao), "cr")
}

// Signed returns the entry value with the debit sign applied.
func (e LedgerEntry) Signed() float64 {
	if e.IsCredit() {
		return e.Valor
	}
	return -e.Valor
}

// CreateOperationRequest is the payload of POST /api/extrato/operacoes.
type CreateOperationRequest struct {
	Operacao      int     `json:"operacao"`
	ValorOperacao float64 `json:"valorOperacao"`
	CodigoReserva string  `json:"codigoReserva"`
}
