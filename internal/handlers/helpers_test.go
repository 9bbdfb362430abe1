package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"banking-ledger/internal/models"
	"banking-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// handlerSuite carries the mocks shared by every handler suite
type handlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ledger    *service_mocks.MockLedgerServiceInterface
	cache     *service_mocks.MockAccountCacheInterface
	scheduler *service_mocks.MockInterestSchedulerInterface
	breaker   *service_mocks.MockCircuitBreakerInterface
	echo      *echo.Echo
}

func (s *handlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.cache = service_mocks.NewMockAccountCacheInterface(s.ctrl)
	s.scheduler = service_mocks.NewMockInterestSchedulerInterface(s.ctrl)
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.ledger.EXPECT().FormatAmount(gomock.Any()).DoAndReturn(func(amount decimal.Decimal) string {
		return models.FormatMoney(amount, "$", "")
	}).AnyTimes()
}

func (s *handlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// request builds a context for method/target. params are name, value pairs
// for the route's path parameters.
func (s *handlerSuite) request(method, target string, body interface{}, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	r := httptest.NewRequest(method, target, reader)
	if body != nil {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(r, rec)
	c.Set(TraceIDContextKey, "trace-test")

	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func (s *handlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("trace-test", resp.Error.TraceID)
	return resp
}

func (s *handlerSuite) decode(rec *httptest.ResponseRecorder, out interface{}) {
	s.Require().NoError(json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(out))
}
