package stub

import (
	"strings"
	"sync"
	"time"

	"github.com/compele/reservas/internal/domain"
)

// user is a seeded account of the fake backend.
type user struct {
	ID     int64
	Nome   string
	Email  string
	Senha  string
	Perfil string
}

// storedReceipt keeps a receipt row plus its binary content.
type storedReceipt struct {
	domain.Receipt
	ReservationID int64
	Content       []byte
}

// storedFile keeps a file-module row plus its binary content.
type storedFile struct {
	domain.StoredFile
	Content []byte
}

// Store is the in-memory state behind the fake backend. Everything resets
// on restart; that is the point.
type Store struct {
	mu sync.Mutex

	users        []user
	sessions     map[string]int64
	reservations map[int64]*domain.Reservation
	receipts     map[int64]*storedReceipt
	files        map[int64]*storedFile
	ledger       map[int64]*domain.LedgerEntry

	nextReservation int64
	nextReceipt     int64
	nextFile        int64
	nextLedger      int64
}

// NewStore builds a store pre-seeded with two accounts and a handful of
// reservations so every screen has something to show.
func NewStore() *Store {
	s := &Store{
		sessions:     make(map[string]int64),
		reservations: make(map[int64]*domain.Reservation),
		receipts:     make(map[int64]*storedReceipt),
		files:        make(map[int64]*storedFile),
		ledger:       make(map[int64]*domain.LedgerEntry),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.users = []user{
		{ID: 1, Nome: "Ana Lima", Email: "ana@compele.com.br", Senha: "123456", Perfil: "Aprovador"},
		{ID: 2, Nome: "Bruno Costa", Email: "bruno@compele.com.br", Senha: "123456", Perfil: "Solicitante"},
		{ID: 3, Nome: "Carla Souza", Email: "carla@compele.com.br", Senha: "123456", Perfil: "Admin"},
	}

	now := time.Now()
	seedReservations := []domain.Reservation{
		{
			CodigoReserva:          "RES-0001",
			UsuarioSolicitanteNome: "Bruno Costa",
			Colaboradores: []domain.Traveler{
				{Nome: "Bruno Costa", Email: "bruno@compele.com.br"},
			},
			Cidade:            "São Paulo",
			DataInicio:        now.AddDate(0, 0, 7),
			DataFim:           now.AddDate(0, 0, 10),
			DataCriacao:       now.AddDate(0, 0, -1),
			TipoReserva:       domain.TipoNova,
			QuantidadePessoas: 1,
			ValorImovel:       850,
			ValorComTaxa:      935,
			CentroDeCusto:     "Comercial",
			Motivo:            "Visita a cliente",
			StatusID:          domain.StatusPendente,
			Status:            domain.StatusPendente.Label(),
		},
		{
			CodigoReserva:          "RES-0002",
			UsuarioSolicitanteNome: "Bruno Costa",
			Colaboradores: []domain.Traveler{
				{Nome: "Bruno Costa", Email: "bruno@compele.com.br"},
				{Nome: "Ana Lima", Email: "ana@compele.com.br"},
			},
			Cidade:            "Rio de Janeiro",
			DataInicio:        now.AddDate(0, 0, -20),
			DataFim:           now.AddDate(0, 0, -17),
			DataCriacao:       now.AddDate(0, 0, -25),
			TipoReserva:       domain.TipoNova,
			QuantidadePessoas: 2,
			ValorImovel:       1200,
			ValorComTaxa:      1320,
			ValorReal:         1100,
			CentroDeCusto:     "Engenharia",
			Motivo:            "Treinamento",
			StatusID:          domain.StatusConcluida,
			Status:            domain.StatusConcluida.Label(),
		},
		{
			CodigoReserva:          "RES-0003",
			UsuarioSolicitanteNome: "Ana Lima",
			Colaboradores: []domain.Traveler{
				{Nome: "Ana Lima", Email: "ana@compele.com.br"},
			},
			Cidade:            "Curitiba",
			DataInicio:        now.AddDate(0, 0, -5),
			DataFim:           now.AddDate(0, 0, -2),
			DataCriacao:       now.AddDate(0, 0, -8),
			TipoReserva:       domain.TipoRenovacao,
			QuantidadePessoas: 1,
			ValorImovel:       600,
			ValorComTaxa:      660,
			CentroDeCusto:     "Diretoria",
			Motivo:            "Reunião regional",
			StatusID:          domain.StatusAprovada,
			Status:            domain.StatusAprovada.Label(),
		},
	}
	for i := range seedReservations {
		s.nextReservation++
		seedReservations[i].ID = s.nextReservation
		s.reservations[s.nextReservation] = &seedReservations[i]
	}

	s.nextLedger = 2
	s.ledger[1] = &domain.LedgerEntry{
		ID: 1, Operacao: "Crédito", CodigoReserva: "RES-0002",
		Valor: 220, DataCriacao: now.AddDate(0, 0, -15),
	}
	s.ledger[2] = &domain.LedgerEntry{
		ID: 2, Operacao: "Débito", CodigoReserva: "RES-0003",
		Valor: 90, DataCriacao: now.AddDate(0, 0, -3),
	}
}

func (s *Store) authenticate(email, senha string) *user {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) && s.users[i].Senha == senha {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) userForToken(token string) *user {
	id, ok := s.sessions[token]
	if !ok {
		return nil
	}
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}
