package bureau

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oybekdev/crif-gateway/internal/criferr"
	"github.com/oybekdev/crif-gateway/internal/models"
	"github.com/oybekdev/crif-gateway/internal/soap"
)

type TransportMock struct{ mock.Mock }

func (m *TransportMock) Send(ctx context.Context, operation, envelope string) (string, error) {
	args := m.Called(ctx, operation, envelope)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestService(transport Transport) *Service {
	return NewService(soap.NewBuilder("user1", "secret"), soap.NewParser(), transport, newNoopLogger())
}

const successMEResponse = `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<soapenv:Body><MGResponse>` +
	`<MessageResponse ResultCode="S"/>` +
	`<ProductResponse ResultCode="S">` +
	`<CB_ME_ProductOutput><CreditReport><MatchedSubject CBSubjectCode="CB-1" FlagMatched="1"/></CreditReport></CB_ME_ProductOutput>` +
	`</ProductResponse>` +
	`</MGResponse></soapenv:Body></soapenv:Envelope>`

func TestService_Monitor_RoundTrip(t *testing.T) {
	transport := new(TransportMock)
	transport.On("Send", mock.Anything, "ME", mock.MatchedBy(func(envelope string) bool {
		return len(envelope) > 0
	})).Return(successMEResponse, nil)

	svc := newTestService(transport)
	resp, err := svc.Monitor(context.Background(), &models.MERequest{
		CBSubjectCode: null.StringFrom("CB-1"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.CreditReport)
	assert.Equal(t, "CB-1", resp.CreditReport.MatchedSubject.CBSubjectCode)
	transport.AssertExpectations(t)
}

func TestService_Monitor_ValidationSkipsTransport(t *testing.T) {
	transport := new(TransportMock)
	svc := newTestService(transport)

	_, err := svc.Monitor(context.Background(), &models.MERequest{})
	require.Error(t, err)

	assert.Equal(t, criferr.KindValidation, criferr.KindOf(err))
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Monitor_TransportFailure(t *testing.T) {
	transport := new(TransportMock)
	transport.On("Send", mock.Anything, "ME", mock.Anything).
		Return("", criferr.New(criferr.KindCommunication, "connection refused"))

	svc := newTestService(transport)
	_, err := svc.Monitor(context.Background(), &models.MERequest{
		CBSubjectCode: null.StringFrom("CB-1"),
	})
	require.Error(t, err)

	assert.Equal(t, criferr.KindCommunication, criferr.KindOf(err))
}

func TestService_NewApplication_BusinessError(t *testing.T) {
	failure := `<Envelope><Body><MGResponse>` +
		`<MessageResponse ResultCode="F" ResultDescription="invalid credential"/>` +
		`</MGResponse></Body></Envelope>`

	transport := new(TransportMock)
	transport.On("Send", mock.Anything, "NAE", mock.Anything).Return(failure, nil)

	svc := newTestService(transport)
	resp, err := svc.NewApplication(context.Background(), &models.NAERequest{
		SubjectRefDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Individual: &models.Individual{
			FirstName:   "JOHN",
			LastName:    "DOE",
			DateOfBirth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid credential", resp.Error.Description)
}

func TestService_UpdateApplication_SendsAUE(t *testing.T) {
	response := `<Envelope><Body><MGResponse>` +
		`<MessageResponse ResultCode="S"/>` +
		`<ProductResponse ResultCode="S">` +
		`<CB_AUE_ProductOutput><ApplicationCodes CBContractCode="CB-7"/></CB_AUE_ProductOutput>` +
		`</ProductResponse>` +
		`</MGResponse></Body></Envelope>`

	transport := new(TransportMock)
	transport.On("Send", mock.Anything, "AUE", mock.Anything).Return(response, nil)

	svc := newTestService(transport)
	resp, err := svc.UpdateApplication(context.Background(), &models.AUERequest{
		ApplicationCodes: models.ApplicationCodes{
			CBContractCode: null.StringFrom("CB-7"),
		},
		ApplicationToUpdate: models.ApplicationUpdate{ContractPhase: models.PhaseActive},
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "CB-7", resp.ApplicationCodes.CBContractCode.String)
	transport.AssertExpectations(t)
}

func TestService_PortfolioAlerts(t *testing.T) {
	response := `<Envelope><Body><MGResponse>` +
		`<MessageResponse ResultCode="S"/>` +
		`<ProductResponse ResultCode="S">` +
		`<CB_PAE_ProductOutput><Alert AlertCode="A01" CBSubjectCode="CB-1"/></CB_PAE_ProductOutput>` +
		`</ProductResponse>` +
		`</MGResponse></Body></Envelope>`

	transport := new(TransportMock)
	transport.On("Send", mock.Anything, "PAE", mock.Anything).Return(response, nil)

	svc := newTestService(transport)
	resp, err := svc.PortfolioAlerts(context.Background(), &models.PAERequest{})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalCount)
}
