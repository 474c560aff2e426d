package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/files"
	"github.com/compele/reservas/internal/ledger"
	"github.com/compele/reservas/internal/money"
)

func (a *app) cmdArquivos(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("arquivos", flag.ExitOnError)
	enviar := fs.String("enviar", "", "arquivos a enviar, separados por vírgula")
	baixar := fs.Int64("baixar", 0, "id do arquivo a baixar")
	ver := fs.Int64("ver", 0, "id do arquivo a visualizar (PDF vira texto)")
	excluir := fs.Int64("excluir", 0, "id do arquivo a excluir")
	fs.Parse(args)

	ctx := context.Background()
	vm := files.NewViewModel(a.client, a.sink, a.notifier, a.logger)
	vm.Load(ctx)

	switch {
	case *enviar != "":
		uploads, err := readUploads(*enviar)
		if err != nil {
			return err
		}
		results := vm.UploadAll(ctx, uploads)
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d de %d arquivos falharam", failed, len(results))
		}
		a.notifier.Success(fmt.Sprintf("%d arquivo(s) enviados", len(results)))

	case *baixar != 0:
		path, err := vm.Download(ctx, *baixar, fileName(vm.Files(), *baixar))
		if err != nil {
			return err
		}
		fmt.Println("Salvo em", path)

	case *ver != 0:
		path, err := vm.View(ctx, *ver, fileName(vm.Files(), *ver))
		if err != nil {
			return err
		}
		text, err := files.PreviewPDF(path, 4000)
		if err != nil {
			fmt.Println("Arquivo salvo em", path)
			return nil
		}
		fmt.Println(text)

	case *excluir != 0:
		vm.RequestDelete(*excluir)
		if vm.PendingDelete() == nil {
			return fmt.Errorf("file %d not found", *excluir)
		}
		if !confirm(fmt.Sprintf("Excluir o arquivo %q?", vm.PendingDelete().Nome)) {
			vm.CancelDelete()
			return nil
		}
		return vm.ConfirmDelete(ctx)

	default:
		printFiles(vm.Files())
	}
	return nil
}

func fileName(list []domain.StoredFile, id int64) string {
	for _, f := range list {
		if f.ID == id {
			return f.Nome
		}
	}
	return fmt.Sprintf("arquivo-%d", id)
}

func printFiles(list []domain.StoredFile) {
	if len(list) == 0 {
		fmt.Println("Nenhum arquivo.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tENVIADO EM")
	for _, f := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\n", f.ID, f.Nome, f.DataCriacao.Format(dateDisplay))
	}
	w.Flush()
}

func (a *app) cmdExtrato(args []string) error {
	profile, err := a.requireSession()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("extrato", flag.ExitOnError)
	credito := fs.String("credito", "", "lança um crédito com este valor (somente dígitos)")
	debito := fs.String("debito", "", "lança um débito com este valor (somente dígitos)")
	reserva := fs.String("reserva", "", "código da reserva da operação")
	excluir := fs.Int64("excluir", 0, "id da operação a excluir")
	fs.Parse(args)

	ctx := context.Background()
	vm := ledger.NewViewModel(a.client, profile, a.notifier, a.logger)
	if err := vm.Load(ctx); err != nil {
		return err
	}

	switch {
	case *credito != "":
		return vm.CreateOperation(ctx, domain.OperacaoCredito, money.MaskDigits(*credito), *reserva)
	case *debito != "":
		return vm.CreateOperation(ctx, domain.OperacaoDebito, money.MaskDigits(*debito), *reserva)
	case *excluir != 0:
		vm.RequestDelete(*excluir)
		if vm.PendingDelete() == nil {
			return fmt.Errorf("operation %d not found", *excluir)
		}
		if !confirm("Excluir a operação?") {
			vm.CancelDelete()
			return nil
		}
		return vm.ConfirmDelete(ctx)
	}

	printStatement(vm)
	return nil
}

func printStatement(vm *ledger.ViewModel) {
	rows := vm.Rows()
	if len(rows) == 0 {
		fmt.Println("Extrato vazio.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATA\tOPERAÇÃO\tRESERVA\tVALOR\tSALDO")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Entry.ID,
			row.Entry.DataCriacao.Format(dateDisplay),
			row.Entry.Operacao,
			row.Entry.CodigoReserva,
			money.FormatBRL(row.Entry.Signed()),
			money.FormatBRL(row.Balance))
	}
	w.Flush()
	fmt.Printf("\nSaldo atual: %s\n", money.FormatBRL(vm.Balance()))
}

func (a *app) cmdCadastros(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("cadastros", flag.ExitOnError)
	tipo := fs.String("tipo", "cidades", "cidades, colaboradores ou centros-de-custo")
	atualizar := fs.Bool("atualizar", false, "ignora o cache local e busca do servidor")
	fs.Parse(args)

	svc, closeCache, err := a.lookups()
	if err != nil {
		return err
	}
	defer closeCache()

	if *atualizar {
		if err := svc.Refresh(); err != nil {
			return err
		}
	}

	ctx := context.Background()
	switch *tipo {
	case "cidades":
		cities, err := svc.Cidades(ctx)
		if err != nil {
			return err
		}
		for _, c := range cities {
			fmt.Println(c)
		}
	case "colaboradores":
		people, err := svc.Colaboradores(ctx)
		if err != nil {
			a.notifier.Error("Erro ao carregar colaboradores")
			return err
		}
		for _, p := range people {
			fmt.Printf("%d\t%s\n", p.ID, p.Nome)
		}
	case "centros-de-custo":
		centers, err := svc.CentrosDeCusto(ctx)
		if err != nil {
			a.notifier.Error("Erro ao carregar centros de custo")
			return err
		}
		for _, c := range centers {
			fmt.Println(c)
		}
	default:
		return fmt.Errorf("unknown lookup type %q", *tipo)
	}
	return nil
}
