package decision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/files"
	"github.com/compele/reservas/internal/notify"
	"github.com/compele/reservas/internal/session"
)

type mockClient struct {
	reservation    *domain.Reservation
	reservationErr error
	receipts       []domain.Receipt
	receiptsErr    error
	decideErr      error
	uploadErr      func(filename string) error

	decideCalls  int
	lastApprove  bool
	lastJustif   string
	uploadCalls  []string
	deleteCalls  []int64
	downloadData []byte
}

func (m *mockClient) GetReservation(context.Context, int64) (*domain.Reservation, error) {
	return m.reservation, m.reservationErr
}

func (m *mockClient) ListReceipts(context.Context, int64) ([]domain.Receipt, error) {
	return m.receipts, m.receiptsErr
}

func (m *mockClient) Decide(_ context.Context, _ int64, approve bool, justification string) error {
	m.decideCalls++
	m.lastApprove = approve
	m.lastJustif = justification
	return m.decideErr
}

func (m *mockClient) UploadReceipt(_ context.Context, _ int64, filename string, _ []byte) error {
	m.uploadCalls = append(m.uploadCalls, filename)
	if m.uploadErr != nil {
		return m.uploadErr(filename)
	}
	return nil
}

func (m *mockClient) DeleteReceipt(_ context.Context, _ int64, receiptID int64) error {
	m.deleteCalls = append(m.deleteCalls, receiptID)
	return nil
}

func (m *mockClient) DownloadFile(context.Context, int64) ([]byte, error) {
	return m.downloadData, nil
}

func approver() *session.Profile {
	return &session.Profile{ID: 1, Nome: "Ana", Perfil: "Aprovador"}
}

func requester() *session.Profile {
	return &session.Profile{ID: 2, Nome: "Bruno", Perfil: "Solicitante"}
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:       7,
		StatusID: domain.StatusPendente,
		Status:   domain.StatusPendente.Label(),
	}
}

func newVM(client *mockClient, viewer *session.Profile) (*ViewModel, *notify.Recorder) {
	rec := &notify.Recorder{}
	vm := NewViewModel(7, viewer, client, files.NewLocalSink("", zap.NewNop()), rec, zap.NewNop())
	return vm, rec
}

func TestLoadFailuresAreIndependent(t *testing.T) {
	client := &mockClient{
		reservation: pendingReservation(),
		receiptsErr: errors.New("boom"),
	}
	vm, rec := newVM(client, approver())

	vm.Load(context.Background())

	assert.NotNil(t, vm.Reservation(), "reservation must render despite receipt failure")
	assert.Empty(t, vm.Receipts())
	require.Len(t, rec.Errors, 1)
	assert.Equal(t, StateIdle, vm.State())
}

func TestLoadBothFailures(t *testing.T) {
	client := &mockClient{
		reservationErr: errors.New("a"),
		receiptsErr:    errors.New("b"),
	}
	vm, rec := newVM(client, approver())

	vm.Load(context.Background())
	assert.Len(t, rec.Errors, 2, "each fetch failure gets its own notification")
}

func TestEligibility(t *testing.T) {
	tests := []struct {
		name   string
		viewer *session.Profile
		status domain.Status
		want   bool
	}{
		{"approver on pending", approver(), domain.StatusPendente, true},
		{"admin on pending", &session.Profile{Perfil: "admin"}, domain.StatusPendente, true},
		{"requester on pending", requester(), domain.StatusPendente, false},
		{"approver on approved", approver(), domain.StatusAprovada, false},
		{"approver on rejected", approver(), domain.StatusReprovada, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := pendingReservation()
			res.StatusID = tt.status
			vm, _ := newVM(&mockClient{reservation: res}, tt.viewer)
			vm.Load(context.Background())
			assert.Equal(t, tt.want, vm.Eligible())
		})
	}
}

func TestRejectWithBlankJustificationMakesNoCall(t *testing.T) {
	client := &mockClient{reservation: pendingReservation()}
	vm, rec := newVM(client, approver())
	vm.Load(context.Background())

	require.NoError(t, vm.OpenDecision(false))
	vm.SetJustification("   ")

	err := vm.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, client.decideCalls, "blank rejection must never reach the network")
	assert.Equal(t, StateDecisionPending, vm.State(), "modal stays open for correction")
	assert.Len(t, rec.Errors, 1)
}

func TestApproveWithoutJustificationIsAllowed(t *testing.T) {
	client := &mockClient{reservation: pendingReservation()}
	vm, rec := newVM(client, approver())
	vm.Load(context.Background())

	require.NoError(t, vm.OpenDecision(true))
	require.NoError(t, vm.Confirm(context.Background()))

	assert.Equal(t, 1, client.decideCalls)
	assert.True(t, client.lastApprove)
	assert.Equal(t, StateIdle, vm.State())
	assert.Equal(t, []string{"Reserva aprovada!"}, rec.Successes)
}

func TestRejectWithJustification(t *testing.T) {
	client := &mockClient{reservation: pendingReservation()}
	vm, _ := newVM(client, approver())
	vm.Load(context.Background())

	require.NoError(t, vm.OpenDecision(false))
	vm.SetJustification("fora da política")
	require.NoError(t, vm.Confirm(context.Background()))

	assert.False(t, client.lastApprove)
	assert.Equal(t, "fora da política", client.lastJustif)
}

func TestOpenDecisionClearsPreviousJustification(t *testing.T) {
	client := &mockClient{reservation: pendingReservation()}
	vm, _ := newVM(client, approver())
	vm.Load(context.Background())

	require.NoError(t, vm.OpenDecision(false))
	vm.SetJustification("rascunho")
	vm.CancelDecision()

	require.NoError(t, vm.OpenDecision(false))
	err := vm.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, client.decideCalls, "reopened modal must not reuse the old justification")
}

func TestOpenDecisionRejectedWhenIneligible(t *testing.T) {
	client := &mockClient{reservation: pendingReservation()}
	vm, _ := newVM(client, requester())
	vm.Load(context.Background())

	assert.ErrorIs(t, vm.OpenDecision(true), ErrInvalidTransition)
}

func TestConfirmRejectedWithoutOpenModal(t *testing.T) {
	client := &mockClient{reservation: pendingReservation()}
	vm, _ := newVM(client, approver())
	vm.Load(context.Background())

	assert.ErrorIs(t, vm.Confirm(context.Background()), ErrInvalidTransition)
	assert.Zero(t, client.decideCalls)
}

func TestDecisionFailureSettlesFlow(t *testing.T) {
	client := &mockClient{
		reservation: pendingReservation(),
		decideErr:   errors.New("boom"),
	}
	vm, rec := newVM(client, approver())
	vm.Load(context.Background())

	require.NoError(t, vm.OpenDecision(true))
	err := vm.Confirm(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateIdle, vm.State())
	assert.False(t, vm.Busy())
	assert.NotEmpty(t, rec.Errors)
}

func TestUploadReceiptsContinuesAfterFailure(t *testing.T) {
	client := &mockClient{
		reservation: pendingReservation(),
		uploadErr: func(filename string) error {
			if filename == "b.pdf" {
				return errors.New("boom")
			}
			return nil
		},
	}
	vm, _ := newVM(client, approver())
	vm.Load(context.Background())

	uploads := []files.Upload{
		{Name: "a.pdf", Content: []byte("a")},
		{Name: "b.pdf", Content: []byte("b")},
		{Name: "c.pdf", Content: []byte("c")},
	}
	results := vm.UploadReceipts(context.Background(), uploads)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err, "a failed upload must not stop the rest")
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, client.uploadCalls)
}

func TestDeleteReceiptRequiresConfirmation(t *testing.T) {
	client := &mockClient{
		reservation: pendingReservation(),
		receipts:    []domain.Receipt{{ID: 3, Nome: "nota.pdf"}},
	}
	vm, _ := newVM(client, approver())
	vm.Load(context.Background())

	require.NoError(t, vm.ConfirmDeleteReceipt(context.Background()))
	assert.Empty(t, client.deleteCalls, "no deletion without a pending confirmation")

	vm.RequestDeleteReceipt(3)
	require.NotNil(t, vm.PendingDeleteReceipt())
	vm.CancelDeleteReceipt()
	assert.Nil(t, vm.PendingDeleteReceipt())
	assert.Empty(t, client.deleteCalls)

	vm.RequestDeleteReceipt(3)
	require.NoError(t, vm.ConfirmDeleteReceipt(context.Background()))
	assert.Equal(t, []int64{3}, client.deleteCalls)
}
