package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/compele/reservas/internal/dashboard"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/money"
	"github.com/compele/reservas/internal/reporting"
)

func (a *app) cmdSolicitacoes(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("solicitacoes", flag.ExitOnError)
	criacaoInicio := fs.String("criacao-inicio", "", "criadas a partir de (AAAA-MM-DD)")
	criacaoFim := fs.String("criacao-fim", "", "criadas até (AAAA-MM-DD)")
	inicio := fs.String("inicio", "", "check-in a partir de (AAAA-MM-DD)")
	fim := fs.String("fim", "", "check-in até (AAAA-MM-DD)")
	colaborador := fs.String("colaborador", "", "nome do colaborador")
	cidade := fs.String("cidade", "", "cidade")
	centro := fs.String("centro-custo", "", "centro de custo")
	status := fs.Int("status", 0, "status (1=Pendente ... 6=Concluída Parcelada, 0=todos)")
	ordenar := fs.String("ordenar", "", "coluna de ordenação (codigoReserva, cidade, dataInicio, dataFim, dataCriacao, valorImovel, status)")
	desc := fs.Bool("desc", false, "ordem decrescente")
	fs.Parse(args)

	if err := validStatusFlag(*status); err != nil {
		return err
	}

	vm := reporting.NewViewModel(a.client, a.notifier, a.logger)
	vm.SetFilter(reporting.Filter{
		DataCriacaoInicio: *criacaoInicio,
		DataCriacaoFim:    *criacaoFim,
		DataInicio:        *inicio,
		DataFim:           *fim,
		Colaborador:       *colaborador,
		Cidade:            *cidade,
		CentroDeCusto:     *centro,
		Status:            domain.Status(*status),
	})

	if err := vm.Search(context.Background()); err != nil {
		return err
	}
	if *ordenar != "" {
		vm.SortBy(reporting.Column(*ordenar))
		if *desc {
			vm.SortBy(reporting.Column(*ordenar))
		}
	}

	printReservations(vm.Items())
	return nil
}

// validStatusFlag accepts 0 (all statuses) or one of the fixed codes.
func validStatusFlag(status int) error {
	if status == 0 || domain.Status(status).IsValid() {
		return nil
	}
	return fmt.Errorf("invalid status %d: use 1 a 6, ou 0 para todos", status)
}

func (a *app) cmdExportar(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("exportar", flag.ExitOnError)
	saida := fs.String("saida", "", "gera uma planilha local neste caminho")
	cidade := fs.String("cidade", "", "cidade")
	centro := fs.String("centro-custo", "", "centro de custo")
	status := fs.Int("status", 0, "status (0=todos)")
	fs.Parse(args)

	if err := validStatusFlag(*status); err != nil {
		return err
	}

	vm := reporting.NewViewModel(a.client, a.notifier, a.logger)
	vm.SetFilter(reporting.Filter{
		Cidade:        *cidade,
		CentroDeCusto: *centro,
		Status:        domain.Status(*status),
	})

	if *saida == "" {
		// Without a local output the server-side export URL is the answer;
		// it is meant to be opened by the browser carrying the session.
		fmt.Println(vm.ExportURL())
		return nil
	}

	if err := vm.Search(context.Background()); err != nil {
		return err
	}
	exporter := reporting.NewExporter(a.logger)
	if err := exporter.WriteXLSX(vm.Items(), *saida); err != nil {
		a.notifier.Error("Erro ao gerar a planilha")
		return err
	}
	a.notifier.Success("Planilha gerada em " + *saida)
	return nil
}

func (a *app) cmdDashboard(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	periodo := fs.String("periodo", "MES", "DIA, SEMANA, MES, SEMESTRE, ANO ou TODOS")
	colaborador := fs.String("colaborador", "", "nome do colaborador")
	centro := fs.String("centro-custo", "", "centro de custo")
	cidade := fs.String("cidade", "", "cidade")
	entidade := fs.String("entidade", "", "entidade")
	semTaxa := fs.Bool("sem-taxa", false, "usa valores sem taxa")
	fs.Parse(args)

	vm := dashboard.NewViewModel(a.client, a.notifier, a.logger)
	vm.SetFilter(dashboard.Filter{
		Period:              dashboard.Period(*periodo),
		Colaborador:         *colaborador,
		CentroDeCusto:       *centro,
		Cidade:              *cidade,
		Entidade:            *entidade,
		FiltrarValorSemTaxa: *semTaxa,
	})

	if err := vm.Load(context.Background()); err != nil {
		return err
	}

	printDashboard(vm)
	return nil
}

func printDashboard(vm *dashboard.ViewModel) {
	s := vm.Summary()
	if s == nil {
		fmt.Println("Sem dados para o período.")
		return
	}

	fmt.Printf("Reservas:            %d\n", s.Quantidade)
	fmt.Printf("Recibos:             %d\n", s.QuantidadeRecibos)
	fmt.Printf("Valor total:         %s\n", money.FormatBRL(s.ValorTotal))
	fmt.Printf("Média por diária:    %s\n", money.FormatBRL(s.ValorMedioPorDiaria))
	if percent, show := vm.SavingsPercent(); show {
		fmt.Printf("Economia realizada:  %s (%.1f%%)\n",
			money.FormatBRL(s.ValorNominal-s.ValorRealizado), percent)
	}

	printGroups("Por status", s.AgrupadoPorStatus)
	printGroups("Por cidade", s.AgrupadoPorCidade)
	printGroups("Por mês", s.AgrupadoPorMes)

	if len(s.MediaHotelariaPorCidade) > 0 {
		fmt.Println("\nDiária média de hotelaria:")
		for _, rate := range s.MediaHotelariaPorCidade {
			fmt.Printf("  %-20s %s\n", rate.Cidade, money.FormatBRL(rate.ValorHotelariaDiario))
		}
	}
}

func printGroups(title string, groups []domain.GroupValue) {
	if len(groups) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, g := range groups {
		fmt.Printf("  %-20s %s\n", g.Label, money.FormatBRL(g.Valor))
	}
}
