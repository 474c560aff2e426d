package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/money"
)

const dateDisplay = "02/01/2006"

func printReservations(items []domain.Reservation) {
	if len(items) == 0 {
		fmt.Println("Nenhuma reserva encontrada.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCÓDIGO\tCIDADE\tCHECK-IN\tCHECK-OUT\tVALOR\tSTATUS")
	for _, r := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.CodigoReserva, r.Cidade,
			r.DataInicio.Format(dateDisplay), r.DataFim.Format(dateDisplay),
			money.FormatBRL(r.ValorImovel), r.Status)
	}
	w.Flush()
}

func printReservationDetail(r *domain.Reservation) {
	fmt.Printf("Reserva %s (#%d)\n", r.CodigoReserva, r.ID)
	fmt.Printf("  Status:          %s\n", r.Status)
	fmt.Printf("  Solicitante:     %s\n", r.UsuarioSolicitanteNome)
	fmt.Printf("  Cidade:          %s\n", r.Cidade)
	fmt.Printf("  Período:         %s a %s\n",
		r.DataInicio.Format(dateDisplay), r.DataFim.Format(dateDisplay))
	fmt.Printf("  Valor:           %s (com taxa %s)\n",
		money.FormatBRL(r.ValorImovel), money.FormatBRL(r.ValorComTaxa))
	if r.ValorReal > 0 {
		fmt.Printf("  Valor realizado: %s\n", money.FormatBRL(r.ValorReal))
	}
	fmt.Printf("  Centro de custo: %s\n", r.CentroDeCusto)
	if r.Motivo != "" {
		fmt.Printf("  Motivo:          %s\n", r.Motivo)
	}
	if r.LinkImovel != "" {
		fmt.Printf("  Imóvel:          %s\n", r.LinkImovel)
	}
	if r.NomeAnfitriao != "" {
		fmt.Printf("  Anfitrião:       %s (%s)\n", r.NomeAnfitriao, r.TelefoneAnfitriao)
	}
	if len(r.Colaboradores) > 0 {
		names := make([]string, 0, len(r.Colaboradores))
		for _, t := range r.Colaboradores {
			names = append(names, fmt.Sprintf("%s <%s>", t.Nome, t.Email))
		}
		fmt.Printf("  Colaboradores:   %s\n", strings.Join(names, ", "))
	}
	if r.ObservacaoAprovador != "" {
		fmt.Printf("  Obs. aprovador:  %s\n", r.ObservacaoAprovador)
	}
	if r.ObservacaoExecutor != "" {
		fmt.Printf("  Obs. executor:   %s\n", r.ObservacaoExecutor)
	}
}

func printReceipts(receipts []domain.Receipt) {
	if len(receipts) == 0 {
		fmt.Println("Nenhum recibo anexado.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tENVIADO EM")
	for _, r := range receipts {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.Nome, r.DataCriacao.Format(dateDisplay))
	}
	w.Flush()
}
