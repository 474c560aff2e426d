package stub

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/compele/reservas/internal/domain"
)

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Requisição inválida")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	u := s.store.authenticate(req.Email, req.Senha)
	if u == nil {
		fail(c, http.StatusUnauthorized, "E-mail ou senha inválidos")
		return
	}

	token := uuid.NewString()
	s.store.sessions[token] = u.ID

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"id":     u.ID,
		"nome":   u.Nome,
		"email":  u.Email,
		"perfil": u.Perfil,
	})
}

func (s *Server) createReservation(c *gin.Context) {
	var req domain.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if req.Cidade == "" || req.DataInicio == "" || req.DataFim == "" {
		fail(c, http.StatusUnprocessableEntity, "Preencha os campos obrigatórios")
		return
	}
	if len(req.Colaboradores) == 0 {
		fail(c, http.StatusUnprocessableEntity, "Informe ao menos um colaborador")
		return
	}

	start, err := time.Parse("2006-01-02", req.DataInicio)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "Data de início inválida")
		return
	}
	end, err := time.Parse("2006-01-02", req.DataFim)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "Data de fim inválida")
		return
	}

	u := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.nextReservation++
	id := s.store.nextReservation
	s.store.reservations[id] = &domain.Reservation{
		ID:                     id,
		CodigoReserva:          fmt.Sprintf("RES-%04d", id),
		UsuarioSolicitanteNome: u.Nome,
		Colaboradores:          req.Colaboradores,
		Cidade:                 req.Cidade,
		DataInicio:             start,
		DataFim:                end,
		DataCriacao:            time.Now(),
		TipoReserva:            req.TipoReserva,
		QuantidadePessoas:      req.QuantidadePessoas,
		ValorImovel:            req.ValorImovel,
		ValorComTaxa:           req.ValorImovel * 1.1,
		CentroDeCusto:          req.CentroDeCusto,
		NomeAnfitriao:          req.NomeAnfitriao,
		TelefoneAnfitriao:      req.TelefoneAnfitriao,
		LinkImovel:             req.LinkImovel,
		Motivo:                 req.Motivo,
		StatusID:               domain.StatusPendente,
		Status:                 domain.StatusPendente.Label(),
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) getReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	res, exists := s.store.reservations[id]
	if !exists {
		fail(c, http.StatusNotFound, "Reserva não encontrada")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) decide(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Requisição inválida")
		return
	}

	u := currentUser(c)
	perfil := strings.ToLower(u.Perfil)
	if perfil != "aprovador" && perfil != "admin" {
		fail(c, http.StatusForbidden, "Usuário sem permissão para decidir reservas")
		return
	}
	if !req.Aprovar && strings.TrimSpace(req.Observacao) == "" {
		fail(c, http.StatusUnprocessableEntity, "Informe uma observação para reprovar a reserva")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	res, exists := s.store.reservations[id]
	if !exists {
		fail(c, http.StatusNotFound, "Reserva não encontrada")
		return
	}
	if res.StatusID != domain.StatusPendente {
		fail(c, http.StatusConflict, "Reserva já decidida")
		return
	}

	if req.Aprovar {
		res.StatusID = domain.StatusAprovada
	} else {
		res.StatusID = domain.StatusReprovada
	}
	res.Status = res.StatusID.Label()
	res.ObservacaoAprovador = req.Observacao

	c.Status(http.StatusNoContent)
}

func (s *Server) listReceipts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	receipts := make([]domain.Receipt, 0)
	for _, r := range s.store.receipts {
		if r.ReservationID == id {
			receipts = append(receipts, r.Receipt)
		}
	}
	sort.Slice(receipts, func(i, j int) bool { return receipts[i].ID < receipts[j].ID })
	c.JSON(http.StatusOK, receipts)
}

func (s *Server) uploadReceipt(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	name, content, ok := readUpload(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.reservations[id]; !exists {
		fail(c, http.StatusNotFound, "Reserva não encontrada")
		return
	}

	s.store.nextReceipt++
	s.store.receipts[s.store.nextReceipt] = &storedReceipt{
		Receipt: domain.Receipt{
			ID:          s.store.nextReceipt,
			Nome:        name,
			DataCriacao: time.Now(),
		},
		ReservationID: id,
		Content:       content,
	}

	c.JSON(http.StatusCreated, gin.H{"id": s.store.nextReceipt})
}

func (s *Server) deleteReceipt(c *gin.Context) {
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	receiptID, ok := pathID(c, "receiptId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	r, exists := s.store.receipts[receiptID]
	if !exists || r.ReservationID != reservationID {
		fail(c, http.StatusNotFound, "Recibo não encontrado")
		return
	}
	delete(s.store.receipts, receiptID)
	c.Status(http.StatusNoContent)
}

func (s *Server) myRequests(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	u := currentUser(c)
	items := make([]domain.Reservation, 0)
	for _, res := range s.store.reservations {
		if res.UsuarioSolicitanteNome != u.Nome {
			continue
		}
		if !matchesFilter(c, res) {
			continue
		}
		items = append(items, *res)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].DataCriacao.After(items[j].DataCriacao) })
	c.JSON(http.StatusOK, items)
}

func (s *Server) exportMyRequests(c *gin.Context) {
	// The real export streams a spreadsheet; a CSV line per row is enough
	// for local work.
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	u := currentUser(c)
	var b strings.Builder
	b.WriteString("codigo;cidade;checkin;checkout;valor;status\n")
	for _, res := range s.store.reservations {
		if res.UsuarioSolicitanteNome != u.Nome || !matchesFilter(c, res) {
			continue
		}
		fmt.Fprintf(&b, "%s;%s;%s;%s;%.2f;%s\n",
			res.CodigoReserva, res.Cidade,
			res.DataInicio.Format("2006-01-02"), res.DataFim.Format("2006-01-02"),
			res.ValorImovel, res.Status)
	}

	c.Header("Content-Disposition", `attachment; filename="solicitacoes.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(b.String()))
}

func (s *Server) myPendings(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	items := make([]domain.Reservation, 0)
	for _, res := range s.store.reservations {
		if res.StatusID == domain.StatusPendente {
			items = append(items, *res)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].DataCriacao.Before(items[j].DataCriacao) })
	c.JSON(http.StatusOK, items)
}

// matchesFilter applies the report criteria present in the query string.
func matchesFilter(c *gin.Context, res *domain.Reservation) bool {
	if v := c.Query("cidade"); v != "" && !strings.EqualFold(v, res.Cidade) {
		return false
	}
	if v := c.Query("centroDeCusto"); v != "" && !strings.EqualFold(v, res.CentroDeCusto) {
		return false
	}
	if v := c.Query("colaborador"); v != "" && !reservationHasTraveler(res, v) {
		return false
	}
	if v := c.Query("statusId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || domain.Status(id) != res.StatusID {
			return false
		}
	}
	if !matchesDateRange(c.Query("dataCriacaoInicio"), c.Query("dataCriacaoFim"), res.DataCriacao) {
		return false
	}
	if !matchesDateRange(c.Query("dataInicio"), c.Query("dataFim"), res.DataInicio) {
		return false
	}
	return true
}

func reservationHasTraveler(res *domain.Reservation, name string) bool {
	for _, t := range res.Colaboradores {
		if strings.Contains(strings.ToLower(t.Nome), strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func matchesDateRange(from, to string, value time.Time) bool {
	day := value.Truncate(24 * time.Hour)
	if from != "" {
		if start, err := time.Parse("2006-01-02", from); err == nil && day.Before(start) {
			return false
		}
	}
	if to != "" {
		if end, err := time.Parse("2006-01-02", to); err == nil && day.After(end) {
			return false
		}
	}
	return true
}

func (s *Server) colaboradores(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]gin.H, 0, len(s.store.users))
	for _, u := range s.store.users {
		out = append(out, gin.H{"id": u.ID, "nome": u.Nome})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) centrosDeCusto(c *gin.Context) {
	c.JSON(http.StatusOK, []string{"Comercial", "Diretoria", "Engenharia", "Financeiro"})
}

func (s *Server) cidades(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Cities())
}

func (s *Server) listFiles(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	files := make([]domain.StoredFile, 0, len(s.store.files))
	for _, f := range s.store.files {
		files = append(files, f.StoredFile)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	c.JSON(http.StatusOK, files)
}

func (s *Server) downloadFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	f, exists := s.store.files[id]
	if !exists {
		fail(c, http.StatusNotFound, "Arquivo não encontrado")
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", f.Content)
}

func (s *Server) uploadFile(c *gin.Context) {
	name, content, ok := readUpload(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.nextFile++
	s.store.files[s.store.nextFile] = &storedFile{
		StoredFile: domain.StoredFile{
			ID:          s.store.nextFile,
			Nome:        name,
			DataCriacao: time.Now(),
		},
		Content: content,
	}
	c.JSON(http.StatusCreated, gin.H{"id": s.store.nextFile})
}

func (s *Server) deleteFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.files[id]; !exists {
		fail(c, http.StatusNotFound, "Arquivo não encontrado")
		return
	}
	delete(s.store.files, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) statement(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	entries := make([]domain.LedgerEntry, 0, len(s.store.ledger))
	for _, e := range s.store.ledger {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	c.JSON(http.StatusOK, entries)
}

func (s *Server) createOperation(c *gin.Context) {
	var req domain.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if req.ValorOperacao <= 0 {
		fail(c, http.StatusUnprocessableEntity, "Informe um valor maior que zero")
		return
	}

	u := currentUser(c)
	if !strings.EqualFold(u.Perfil, "admin") {
		fail(c, http.StatusForbidden, "Apenas administradores podem lançar operações")
		return
	}

	operacao := "Débito"
	if req.Operacao == domain.OperacaoCredito {
		operacao = "Crédito"
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.nextLedger++
	s.store.ledger[s.store.nextLedger] = &domain.LedgerEntry{
		ID:            s.store.nextLedger,
		Operacao:      operacao,
		CodigoReserva: req.CodigoReserva,
		Valor:         req.ValorOperacao,
		DataCriacao:   time.Now(),
	}
	c.JSON(http.StatusCreated, gin.H{"id": s.store.nextLedger})
}

func (s *Server) deleteOperation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u := currentUser(c)
	if !strings.EqualFold(u.Perfil, "admin") {
		fail(c, http.StatusForbidden, "Apenas administradores podem excluir operações")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.ledger[id]; !exists {
		fail(c, http.StatusNotFound, "Operação não encontrada")
		return
	}
	delete(s.store.ledger, id)
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Identificador inválido")
		return 0, false
	}
	return id, true
}

func readUpload(c *gin.Context) (string, []byte, bool) {
	file, err := c.FormFile("arquivo")
	if err != nil {
		fail(c, http.StatusBadRequest, "Arquivo ausente")
		return "", nil, false
	}
	f, err := file.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "Arquivo inválido")
		return "", nil, false
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		fail(c, http.StatusBadRequest, "Arquivo inválido")
		return "", nil, false
	}
	return file.Filename, content, true
}
