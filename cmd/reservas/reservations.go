package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compele/reservas/internal/decision"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/files"
	"github.com/compele/reservas/internal/queue"
	"github.com/compele/reservas/internal/reservation"
)

// travelerList collects repeated -colaborador "Nome:email" flags.
type travelerList []reservation.Traveler

func (t *travelerList) String() string { return fmt.Sprintf("%d colaboradores", len(*t)) }

func (t *travelerList) Set(value string) error {
	name, email, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("use o formato Nome:email, recebi %q", value)
	}
	*t = append(*t, reservation.Traveler{
		Nome:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	})
	return nil
}

func (a *app) cmdSolicitar(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("solicitar", flag.ExitOnError)
	inicio := fs.String("inicio", "", "data de início (AAAA-MM-DD, padrão hoje)")
	fim := fs.String("fim", "", "data de fim (AAAA-MM-DD)")
	cidade := fs.String("cidade", "", "cidade da reserva")
	centro := fs.String("centro-custo", "", "centro de custo")
	valor := fs.String("valor", "", "valor do imóvel (somente dígitos, em centavos)")
	link := fs.String("link", "", "link do imóvel")
	anfitriao := fs.String("anfitriao", "", "nome do anfitrião")
	telefone := fs.String("telefone", "", "telefone do anfitrião")
	motivo := fs.String("motivo", "", "motivo da viagem")
	renovacao := fs.Bool("renovacao", false, "renovação de uma reserva existente")
	var travelers travelerList
	fs.Var(&travelers, "colaborador", "colaborador no formato Nome:email (repetível)")
	fs.Parse(args)

	form := reservation.NewForm(a.client, a.notifier, a.logger)
	if *inicio != "" {
		form.DataInicio = *inicio
	}
	form.DataFim = *fim
	form.Cidade = *cidade
	form.CentroDeCusto = *centro
	form.SetValorImovel(*valor)
	form.LinkImovel = *link
	form.NomeAnfitriao = *anfitriao
	form.TelefoneAnfitriao = *telefone
	form.Motivo = *motivo
	if *renovacao {
		form.TipoReserva = domain.TipoRenovacao
	}
	if len(travelers) > 0 {
		form.Travelers = travelers
	}

	if err := form.Submit(context.Background()); err != nil {
		return err
	}

	// The interactive confirmation countdown collapses to an immediate
	// acknowledgement in a one-shot command.
	form.ConfirmNavigation(nil)
	return nil
}

func (a *app) cmdPendencias(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("pendencias", flag.ExitOnError)
	fs.Parse(args)

	vm := queue.NewViewModel(a.client, a.notifier, a.logger)
	vm.Load(context.Background())
	printReservations(vm.Items())
	return nil
}

func (a *app) cmdDecidir(args []string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("decidir", flag.ExitOnError)
	id := fs.Int64("id", 0, "id da reserva")
	aprovar := fs.Bool("aprovar", false, "aprovar a reserva")
	reprovar := fs.Bool("reprovar", false, "reprovar a reserva")
	observacao := fs.String("observacao", "", "observação (obrigatória para reprovar)")
	fs.Parse(args)

	if *id == 0 || *aprovar == *reprovar {
		fmt.Fprintln(os.Stderr, "Use: reservas decidir -id N (-aprovar | -reprovar [-observacao ...])")
		return fmt.Errorf("invalid arguments")
	}

	vm := queue.NewViewModel(a.client, a.notifier, a.logger)
	return vm.Decide(context.Background(), *id, *aprovar, *observacao)
}

func (a *app) cmdDetalhe(args []string) error {
	profile, err := a.requireSession()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("detalhe", flag.ExitOnError)
	id := fs.Int64("id", 0, "id da reserva")
	fs.Parse(args)

	if *id == 0 {
		fmt.Fprintln(os.Stderr, "Use: reservas detalhe -id N")
		return fmt.Errorf("missing id")
	}

	vm := decision.NewViewModel(*id, profile, a.client, a.sink, a.notifier, a.logger)
	vm.Load(context.Background())

	res := vm.Reservation()
	if res == nil {
		return fmt.Errorf("reservation %d not loaded", *id)
	}

	printReservationDetail(res)
	fmt.Println()
	printReceipts(vm.Receipts())
	if vm.Eligible() {
		fmt.Println("\nReserva pendente: decida com reservas decidir -id", *id)
	}
	return nil
}

func (a *app) cmdRecibos(args []string) error {
	profile, err := a.requireSession()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("recibos", flag.ExitOnError)
	id := fs.Int64("reserva", 0, "id da reserva")
	enviar := fs.String("enviar", "", "arquivos a enviar, separados por vírgula")
	baixar := fs.Int64("baixar", 0, "id do recibo a baixar")
	ver := fs.Int64("ver", 0, "id do recibo a visualizar (PDF vira texto)")
	excluir := fs.Int64("excluir", 0, "id do recibo a excluir")
	fs.Parse(args)

	if *id == 0 {
		fmt.Fprintln(os.Stderr, "Use: reservas recibos -reserva N [-enviar a.pdf,b.pdf | -baixar N | -ver N | -excluir N]")
		return fmt.Errorf("missing reservation id")
	}

	ctx := context.Background()
	vm := decision.NewViewModel(*id, profile, a.client, a.sink, a.notifier, a.logger)
	vm.Load(ctx)

	switch {
	case *enviar != "":
		uploads, err := readUploads(*enviar)
		if err != nil {
			return err
		}
		results := vm.UploadReceipts(ctx, uploads)
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d de %d recibos falharam", failed, len(results))
		}
		a.notifier.Success(fmt.Sprintf("%d recibo(s) enviados", len(results)))

	case *baixar != 0:
		name := receiptName(vm.Receipts(), *baixar)
		path, err := vm.DownloadReceipt(ctx, *baixar, name)
		if err != nil {
			return err
		}
		fmt.Println("Salvo em", path)

	case *ver != 0:
		path, err := vm.ViewReceipt(ctx, *ver, receiptName(vm.Receipts(), *ver))
		if err != nil {
			return err
		}
		text, err := files.PreviewPDF(path, 4000)
		if err != nil {
			fmt.Println("Recibo salvo em", path)
			return nil
		}
		fmt.Println(text)

	case *excluir != 0:
		vm.RequestDeleteReceipt(*excluir)
		if vm.PendingDeleteReceipt() == nil {
			return fmt.Errorf("receipt %d not found", *excluir)
		}
		if !confirm(fmt.Sprintf("Excluir o recibo %q?", vm.PendingDeleteReceipt().Nome)) {
			vm.CancelDeleteReceipt()
			return nil
		}
		return vm.ConfirmDeleteReceipt(ctx)

	default:
		printReceipts(vm.Receipts())
	}
	return nil
}

func receiptName(receipts []domain.Receipt, id int64) string {
	for _, r := range receipts {
		if r.ID == id {
			return r.Nome
		}
	}
	return fmt.Sprintf("recibo-%d", id)
}

func readUploads(list string) ([]files.Upload, error) {
	var uploads []files.Upload
	for _, path := range strings.Split(list, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		uploads = append(uploads, files.Upload{
			Name:    filepath.Base(path),
			Content: content,
		})
	}
	if len(uploads) == 0 {
		return nil, fmt.Errorf("no files to upload")
	}
	return uploads, nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [s/N] ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return strings.EqualFold(answer, "s") || strings.EqualFold(answer, "sim")
}
