package compliance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campaignkit/campaignkit-backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	UserEditStatisticsFunc  func(ctx context.Context, userID uuid.UUID) (domain.UserEditStatistics, error)
	CampaignEditHistoryFunc func(ctx context.Context, campaignID uuid.UUID, recentLimit int) (domain.CampaignEditHistory, error)
	ComplianceSummaryFunc   func(ctx context.Context, from, to time.Time) (domain.ComplianceSummary, error)

	calls struct {
		UserEditStatistics []struct {
			UserID uuid.UUID
		}
		CampaignEditHistory []struct {
			CampaignID  uuid.UUID
			RecentLimit int
		}
		ComplianceSummary []struct {
			From time.Time
			To   time.Time
		}
	}
	lockUserEditStatistics  sync.RWMutex
	lockCampaignEditHistory sync.RWMutex
	lockComplianceSummary   sync.RWMutex
}

func (mock *statsRepoMock) UserEditStatistics(ctx context.Context, userID uuid.UUID) (domain.UserEditStatistics, error) {
	if mock.UserEditStatisticsFunc == nil {
		panic("statsRepoMock.UserEditStatisticsFunc: method is nil but statsRepo.UserEditStatistics was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockUserEditStatistics.Lock()
	mock.calls.UserEditStatistics = append(mock.calls.UserEditStatistics, callInfo)
	mock.lockUserEditStatistics.Unlock()
	return mock.UserEditStatisticsFunc(ctx, userID)
}

func (mock *statsRepoMock) UserEditStatisticsCalls() []struct{ UserID uuid.UUID } {
	mock.lockUserEditStatistics.RLock()
	calls := mock.calls.UserEditStatistics
	mock.lockUserEditStatistics.RUnlock()
	return calls
}

func (mock *statsRepoMock) CampaignEditHistory(ctx context.Context, campaignID uuid.UUID, recentLimit int) (domain.CampaignEditHistory, error) {
	if mock.CampaignEditHistoryFunc == nil {
		panic("statsRepoMock.CampaignEditHistoryFunc: method is nil but statsRepo.CampaignEditHistory was just called")
	}
	callInfo := struct {
		CampaignID  uuid.UUID
		RecentLimit int
	}{CampaignID: campaignID, RecentLimit: recentLimit}
	mock.lockCampaignEditHistory.Lock()
	mock.calls.CampaignEditHistory = append(mock.calls.CampaignEditHistory, callInfo)
	mock.lockCampaignEditHistory.Unlock()
	return mock.CampaignEditHistoryFunc(ctx, campaignID, recentLimit)
}

func (mock *statsRepoMock) CampaignEditHistoryCalls() []struct {
	CampaignID  uuid.UUID
	RecentLimit int
} {
	mock.lockCampaignEditHistory.RLock()
	calls := mock.calls.CampaignEditHistory
	mock.lockCampaignEditHistory.RUnlock()
	return calls
}

func (mock *statsRepoMock) ComplianceSummary(ctx context.Context, from, to time.Time) (domain.ComplianceSummary, error) {
	if mock.ComplianceSummaryFunc == nil {
		panic("statsRepoMock.ComplianceSummaryFunc: method is nil but statsRepo.ComplianceSummary was just called")
	}
	callInfo := struct {
		From time.Time
		To   time.Time
	}{From: from, To: to}
	mock.lockComplianceSummary.Lock()
	mock.calls.ComplianceSummary = append(mock.calls.ComplianceSummary, callInfo)
	mock.lockComplianceSummary.Unlock()
	return mock.ComplianceSummaryFunc(ctx, from, to)
}

func (mock *statsRepoMock) ComplianceSummaryCalls() []struct {
	From time.Time
	To   time.Time
} {
	mock.lockComplianceSummary.RLock()
	calls := mock.calls.ComplianceSummary
	mock.lockComplianceSummary.RUnlock()
	return calls
}
