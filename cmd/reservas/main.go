// Command reservas is the terminal client for the corporate lodging
// reservation service: request reservations, decide pending ones, browse
// reports and the dashboard, and manage receipts, files and the account
// statement.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/config"
	"github.com/compele/reservas/internal/files"
	"github.com/compele/reservas/internal/lookup"
	"github.com/compele/reservas/internal/notify"
	"github.com/compele/reservas/internal/session"
	"github.com/compele/reservas/pkg/database"
	"github.com/compele/reservas/pkg/logging"
)

const usage = `Uso: reservas [-config arquivo] <comando> [opções]

Comandos:
  login          autentica e guarda a sessão
  logout         encerra a sessão local
  dashboard      resumo agregado das reservas
  solicitar      solicita uma nova reserva
  pendencias     lista e decide reservas pendentes
  decidir        aprova ou reprova uma reserva
  detalhe        detalhe de uma reserva e seus recibos
  recibos        gerencia recibos de uma reserva
  solicitacoes   relatório das minhas solicitações
  exportar       exporta o relatório
  arquivos       gerencia o módulo de arquivos
  extrato        extrato de créditos e débitos
  cadastros      lista colaboradores, cidades e centros de custo

Use "reservas <comando> -h" para as opções de cada comando.
`

// app carries the wiring shared by every command.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *session.Store
	session  *session.Service
	client   *api.Client
	notifier *notify.Console
	sink     *files.LocalSink
}

func main() {
	_ = gotenv.Load()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	a, err := newApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
	defer a.logger.Sync()

	if err := a.run(flag.Arg(0), flag.Args()[1:]); err != nil {
		os.Exit(1)
	}
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store := session.NewStore(cfg.State.Dir, logger)
	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		session:  session.NewService(store, client, logger),
		client:   client,
		notifier: notify.NewConsole(os.Stdout, logger),
		sink:     files.NewLocalSink(cfg.Downloads.Dir, logger),
	}, nil
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(args)
	case "logout":
		return a.cmdLogout(args)
	case "dashboard":
		return a.cmdDashboard(args)
	case "solicitar":
		return a.cmdSolicitar(args)
	case "pendencias":
		return a.cmdPendencias(args)
	case "decidir":
		return a.cmdDecidir(args)
	case "detalhe":
		return a.cmdDetalhe(args)
	case "recibos":
		return a.cmdRecibos(args)
	case "solicitacoes":
		return a.cmdSolicitacoes(args)
	case "exportar":
		return a.cmdExportar(args)
	case "arquivos":
		return a.cmdArquivos(args)
	case "extrato":
		return a.cmdExtrato(args)
	case "cadastros":
		return a.cmdCadastros(args)
	default:
		fmt.Fprintf(os.Stderr, "Comando desconhecido: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// requireSession is the guard every protected command passes through.
func (a *app) requireSession() (*session.Profile, error) {
	profile, err := a.session.Require()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Faça login antes de usar este comando: reservas login")
		return nil, err
	}
	return profile, nil
}

// lookups opens the local cache database and builds the lookup service.
// The returned close function must run before the command exits.
func (a *app) lookups() (*lookup.Service, func(), error) {
	db, err := database.New(a.cfg.Cache.Path, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open lookup cache: %w", err)
	}
	cache, err := lookup.NewCache(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return lookup.NewService(a.client, cache, a.logger), func() { db.Close() }, nil
}
