package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"banking-ledger/internal/config"
	"banking-ledger/internal/dto"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InterestHandlerSuite struct {
	handlerSuite
	handler *InterestHandler
}

func (s *InterestHandlerSuite) SetupTest() {
	s.handlerSuite.SetupTest()
	s.handler = NewInterestHandler(s.scheduler, s.ledger)
}

func TestInterestHandlerSuite(t *testing.T) {
	suite.Run(t, new(InterestHandlerSuite))
}

func enabled(v bool) *bool { return &v }

func (s *InterestHandlerSuite) TestForcePayout() {
	s.scheduler.EXPECT().ForcePayout(gomock.Any()).Return(&services.CycleReport{
		Forced:    true,
		Eligible:  2,
		Processed: 2,
		TotalPaid: decimal.RequireFromString("12.5"),
	}, nil)

	c, rec := s.request(http.MethodPost, "/", nil)
	s.Require().NoError(s.handler.ForcePayout(c))
	s.Equal(http.StatusOK, rec.Code)

	var report services.CycleReport
	s.decode(rec, &report)
	s.True(report.Forced)
	s.Equal(2, report.Processed)
}

func (s *InterestHandlerSuite) TestForcePayout_RunInProgress() {
	s.scheduler.EXPECT().ForcePayout(gomock.Any()).Return(nil, &apperrors.LedgerError{
		Kind: apperrors.KindConcurrencyConflict,
		Code: apperrors.InterestRunInProgress,
		Op:   "interest.run",
		Err:  services.ErrRunInProgress,
	})

	c, rec := s.request(http.MethodPost, "/", nil)
	s.Require().NoError(s.handler.ForcePayout(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(string(apperrors.InterestRunInProgress), s.decodeError(rec).Error.Code)
}

func (s *InterestHandlerSuite) TestPayAccount() {
	id := uuid.New()
	s.scheduler.EXPECT().ManualPayout(gomock.Any(), id).Return(&models.Transaction{
		AccountID: id,
		Amount:    decimal.RequireFromString("2.5"),
		Type:      models.TransactionTypeInterest,
	}, nil)

	c, rec := s.request(http.MethodPost, "/", nil, "id", id.String())
	s.Require().NoError(s.handler.PayAccount(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.PayoutResponse
	s.decode(rec, &resp)
	s.Equal("Paid $2.50 interest", resp.Message)
	s.Equal("Interest", resp.Transaction.TypeLabel)
}

func (s *InterestHandlerSuite) TestPayAccount_BelowMinimum() {
	id := uuid.New()
	s.scheduler.EXPECT().ManualPayout(gomock.Any(), id).
		Return(nil, apperrors.Validation("interest.payout", apperrors.InterestBelowMinimum, errors.New("balance below the interest minimum")))

	c, rec := s.request(http.MethodPost, "/", nil, "id", id.String())
	s.Require().NoError(s.handler.PayAccount(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(string(apperrors.InterestBelowMinimum), s.decodeError(rec).Error.Code)
}

func (s *InterestHandlerSuite) TestAccountInterest() {
	id := uuid.New()
	s.scheduler.EXPECT().AccountInterest(gomock.Any(), id).Return(&models.AccountInterest{
		Balance:           decimal.NewFromInt(2400),
		Eligible:          true,
		PotentialInterest: decimal.NewFromInt(1),
	}, nil)

	c, rec := s.request(http.MethodGet, "/", nil, "id", id.String())
	s.Require().NoError(s.handler.AccountInterest(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]interface{}
	s.decode(rec, &resp)
	s.Equal(id.String(), resp["account_id"])
	s.Equal("$1.00", resp["formatted_potential"])
	s.Equal(true, resp["eligible"])
}

func (s *InterestHandlerSuite) TestSetRate() {
	id := uuid.New()
	gomock.InOrder(
		s.scheduler.EXPECT().SetInterestRate(gomock.Any(), id, decimal.RequireFromString("0.02")).Return(nil),
		s.scheduler.EXPECT().AccountInterest(gomock.Any(), id).Return(&models.AccountInterest{
			InterestRate: decimal.RequireFromString("0.02"),
		}, nil),
	)

	c, rec := s.request(http.MethodPut, "/", dto.InterestRateRequest{Rate: "0.02"}, "id", id.String())
	s.Require().NoError(s.handler.SetRate(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *InterestHandlerSuite) TestStatistics() {
	next := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	s.scheduler.EXPECT().Statistics(gomock.Any()).Return(&models.InterestStatistics{
		Enabled:          true,
		State:            "idle",
		EligibleAccounts: 4,
		NextRunAt:        &next,
	}, nil)

	c, rec := s.request(http.MethodGet, "/", nil)
	s.Require().NoError(s.handler.Statistics(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"next_run_at":"2026-10-19T00:00:00Z"`)
}

func (s *InterestHandlerSuite) TestUpdateConfig() {
	want := config.InterestConfig{
		Enabled:        true,
		DailyRate:      decimal.RequireFromString("0.02"),
		MinimumBalance: decimal.NewFromInt(50),
		MaximumPayout:  decimal.NewFromInt(500),
		PayoutInterval: 12 * time.Hour,
	}
	gomock.InOrder(
		s.scheduler.EXPECT().Reconfigure(gomock.Any(), want).Return(nil),
		s.scheduler.EXPECT().Statistics(gomock.Any()).Return(&models.InterestStatistics{Enabled: true, PayoutInterval: 12 * time.Hour}, nil),
	)

	c, rec := s.request(http.MethodPut, "/", dto.InterestConfigRequest{
		Enabled:        enabled(true),
		DailyRate:      "0.02",
		MinimumBalance: "50",
		MaximumPayout:  "500",
		PayoutInterval: "12h",
	})
	s.Require().NoError(s.handler.UpdateConfig(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *InterestHandlerSuite) TestUpdateConfig_Rejections() {
	s.Run("unparseable interval", func() {
		c, rec := s.request(http.MethodPut, "/", dto.InterestConfigRequest{
			Enabled:        enabled(true),
			DailyRate:      "0.01",
			MinimumBalance: "100",
			MaximumPayout:  "1000",
			PayoutInterval: "daily",
		})
		s.Require().NoError(s.handler.UpdateConfig(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(string(apperrors.InterestInvalidConfig), s.decodeError(rec).Error.Code)
	})

	s.Run("enabled flag missing", func() {
		c, rec := s.request(http.MethodPut, "/", dto.InterestConfigRequest{
			DailyRate:      "0.01",
			MinimumBalance: "100",
			MaximumPayout:  "1000",
			PayoutInterval: "24h",
		})
		s.Require().NoError(s.handler.UpdateConfig(c))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejected by validation", func() {
		s.scheduler.EXPECT().Reconfigure(gomock.Any(), gomock.Any()).
			Return(apperrors.Configuration("config.economy", errors.New("interest payout interval must be positive")))

		c, rec := s.request(http.MethodPut, "/", dto.InterestConfigRequest{
			Enabled:        enabled(false),
			DailyRate:      "0.01",
			MinimumBalance: "100",
			MaximumPayout:  "1000",
			PayoutInterval: "-1h",
		})
		s.Require().NoError(s.handler.UpdateConfig(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		resp := s.decodeError(rec)
		s.Equal(string(apperrors.InterestInvalidConfig), resp.Error.Code)
		s.Contains(resp.Error.Details[0], "payout interval")
	})
}
