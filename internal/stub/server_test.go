package stub

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
)

type memoryTokens struct{ token string }

func (m *memoryTokens) Token() string { return m.token }

// startStub serves the fake backend over httptest and returns an API client
// pointed at it, exercising the same codec both sides use in production.
func startStub(t *testing.T) (*api.Client, *memoryTokens) {
	t.Helper()
	server := NewServer(ServerConfig{}, zap.NewNop())
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	tokens := &memoryTokens{}
	client, err := api.NewClient(ts.URL, 5*time.Second, tokens, zap.NewNop())
	require.NoError(t, err)
	return client, tokens
}

func login(t *testing.T, client *api.Client, tokens *memoryTokens, email string) *api.LoginResponse {
	t.Helper()
	resp, err := client.Login(context.Background(), email, "123456")
	require.NoError(t, err)
	tokens.token = resp.Token
	return resp
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client, _ := startStub(t)

	_, err := client.Login(context.Background(), "ana@compele.com.br", "wrong")
	require.Error(t, err)
	assert.Equal(t, "E-mail ou senha inválidos", api.Message(err, "fallback"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	client, _ := startStub(t)

	_, err := client.MyPendings(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestReservationLifecycle(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()

	login(t, client, tokens, "bruno@compele.com.br")
	require.NoError(t, client.CreateReservation(ctx, domain.CreateReservationRequest{
		DataInicio:        "2024-06-01",
		DataFim:           "2024-06-05",
		Cidade:            "Natal",
		CentroDeCusto:     "Comercial",
		ValorImovel:       700,
		QuantidadePessoas: 1,
		Colaboradores:     []domain.Traveler{{Nome: "Bruno", Email: "bruno@compele.com.br"}},
	}))

	mine, err := client.MyRequests(ctx, nil)
	require.NoError(t, err)
	var created *domain.Reservation
	for i := range mine {
		if mine[i].Cidade == "Natal" {
			created = &mine[i]
		}
	}
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPendente, created.StatusID)

	// The approver rejects it; the rejection carries a justification.
	login(t, client, tokens, "ana@compele.com.br")
	require.NoError(t, client.Decide(ctx, created.ID, false, "fora da política"))

	got, err := client.GetReservation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReprovada, got.StatusID)
	assert.Equal(t, "fora da política", got.ObservacaoAprovador)

	// A second decision on the same reservation is refused.
	err = client.Decide(ctx, created.ID, true, "")
	require.Error(t, err)
	assert.Equal(t, "Reserva já decidida", api.Message(err, "fallback"))
}

func TestRejectWithoutJustificationIsRefused(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()
	login(t, client, tokens, "ana@compele.com.br")

	pendings, err := client.MyPendings(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, pendings)

	err = client.Decide(ctx, pendings[0].ID, false, "   ")
	require.Error(t, err)
	assert.Contains(t, api.Message(err, ""), "observação")
}

func TestRequesterCannotDecide(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()
	login(t, client, tokens, "bruno@compele.com.br")

	pendings, err := client.MyPendings(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, pendings)

	err = client.Decide(ctx, pendings[0].ID, true, "")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestReceiptUploadListDelete(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()
	login(t, client, tokens, "ana@compele.com.br")

	require.NoError(t, client.UploadReceipt(ctx, 2, "nota.pdf", []byte("%PDF-1.4")))

	receipts, err := client.ListReceipts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "nota.pdf", receipts[0].Nome)

	require.NoError(t, client.DeleteReceipt(ctx, 2, receipts[0].ID))
	receipts, err = client.ListReceipts(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestFileModule(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()
	login(t, client, tokens, "carla@compele.com.br")

	require.NoError(t, client.UploadFile(ctx, "contrato.pdf", []byte("conteúdo")))

	list, err := client.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	content, err := client.DownloadFile(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("conteúdo"), content)

	require.NoError(t, client.DeleteFile(ctx, list[0].ID))
}

func TestLedgerOperationsAreAdminOnly(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()

	login(t, client, tokens, "ana@compele.com.br")
	err := client.CreateOperation(ctx, domain.CreateOperationRequest{
		Operacao: domain.OperacaoCredito, ValorOperacao: 50, CodigoReserva: "RES-0001",
	})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)

	login(t, client, tokens, "carla@compele.com.br")
	require.NoError(t, client.CreateOperation(ctx, domain.CreateOperationRequest{
		Operacao: domain.OperacaoCredito, ValorOperacao: 50, CodigoReserva: "RES-0001",
	}))

	entries, err := client.Statement(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestDashboardAggregates(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()
	login(t, client, tokens, "ana@compele.com.br")

	summary, err := client.DashboardSummary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Quantidade)
	assert.InDelta(t, 2915.0, summary.ValorTotal, 0.01)
	assert.NotEmpty(t, summary.AgrupadoPorCidade)

	// Status and month groups carry money, not counts, and together they
	// cover the full total.
	require.NotEmpty(t, summary.AgrupadoPorStatus)
	var byStatus float64
	for _, g := range summary.AgrupadoPorStatus {
		byStatus += g.Valor
		assert.NotEmpty(t, g.Cor, "status bars are colored")
	}
	assert.InDelta(t, summary.ValorTotal, byStatus, 0.01)

	require.NotEmpty(t, summary.AgrupadoPorMes)
	var byMonth float64
	for _, g := range summary.AgrupadoPorMes {
		byMonth += g.Valor
	}
	assert.InDelta(t, summary.ValorTotal, byMonth, 0.01)
}

func TestLookupsServeDropdowns(t *testing.T) {
	client, tokens := startStub(t)
	ctx := context.Background()
	login(t, client, tokens, "bruno@compele.com.br")

	people, err := client.Colaboradores(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 3)

	cities, err := client.Cidades(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Cities(), cities)

	centers, err := client.CentrosDeCusto(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, centers)
}
