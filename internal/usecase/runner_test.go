package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"monthly-sales-report/internal/domain"
	"monthly-sales-report/internal/layout"
	"monthly-sales-report/internal/usecase"
	mock_usecase "monthly-sales-report/internal/usecase/mocks"
)

func expectHealthyStore(m *mock_usecase.MockTableSource, store domain.StoreRef, amount string) {
	m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(makeTable(
		[]string{"LINE", "PRICE", "DESCRIPT", "DATE"},
		[]any{"950", amount, nil, "2024-01-05"},
		[]any{"980", nil, "Cash", nil},
	), nil)
	m.EXPECT().Read(gomock.Any(), store, layout.RoleStore).Return(domain.Table{}, nil)
	m.EXPECT().Read(gomock.Any(), store, layout.RoleCategory).Return(domain.Table{}, nil)
}

func expectBrokenStore(m *mock_usecase.MockTableSource, store domain.StoreRef) {
	m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(domain.Table{}, []domain.Diagnostic{
		{Kind: domain.StructuralFailure, Store: store.ID, Subject: store.Dir, Detail: "corrupt table"},
	})
}

func TestRunner_Run_PreservesStoreOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stores := []domain.StoreRef{
		{ID: "001", Dir: "/stores/001"},
		{ID: "002", Dir: "/stores/002"},
		{ID: "003", Dir: "/stores/003"},
	}

	mSource := mock_usecase.NewMockTableSource(ctrl)
	expectHealthyStore(mSource, stores[0], "10")
	expectHealthyStore(mSource, stores[1], "20")
	expectHealthyStore(mSource, stores[2], "30")

	runner := usecase.NewRunner(usecase.NewStorePipeline(mSource, usecase.Options{}), 2)
	report := runner.Run(context.Background(), stores)

	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Empty(t, report.SkippedStores)

	// Rows arrive in discovery order no matter which worker finished first.
	if assert.Len(t, report.Rows, 3) {
		assert.Equal(t, "001", report.Rows[0].StoreID)
		assert.Equal(t, "002", report.Rows[1].StoreID)
		assert.Equal(t, "003", report.Rows[2].StoreID)
		assert.Equal(t, float64(20), report.Rows[1].SaleAmount)
	}
}

func TestRunner_Run_BrokenStoreDoesNotFailSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stores := []domain.StoreRef{
		{ID: "001", Dir: "/stores/001"},
		{ID: "002", Dir: "/stores/002"},
		{ID: "003", Dir: "/stores/003"},
	}

	mSource := mock_usecase.NewMockTableSource(ctrl)
	expectHealthyStore(mSource, stores[0], "10")
	expectBrokenStore(mSource, stores[1])
	expectHealthyStore(mSource, stores[2], "30")

	runner := usecase.NewRunner(usecase.NewStorePipeline(mSource, usecase.Options{}), 2)
	report := runner.Run(context.Background(), stores)

	assert.Equal(t, []string{"002"}, report.SkippedStores)
	if assert.Len(t, report.Rows, 2) {
		assert.Equal(t, "001", report.Rows[0].StoreID)
		assert.Equal(t, "003", report.Rows[1].StoreID)
	}
}

func TestRunner_Run_NoStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mSource := mock_usecase.NewMockTableSource(ctrl)
	runner := usecase.NewRunner(usecase.NewStorePipeline(mSource, usecase.Options{}), 0)

	report := runner.Run(context.Background(), nil)

	assert.NotEmpty(t, report.RunID)
	assert.Empty(t, report.Rows)
	assert.Empty(t, report.SkippedStores)
}

func TestFilterRowsByPeriod(t *testing.T) {
	rows := []domain.SummaryRow{
		{StoreID: "001", Date: strPtr("2024-03-05"), SaleAmount: 1},
		{StoreID: "001", Date: strPtr("2024-11-20"), SaleAmount: 2},
		{StoreID: "002", Date: strPtr("2023-03-05"), SaleAmount: 3},
		{StoreID: "002", Date: nil, SaleAmount: 4},
	}

	tests := []struct {
		name      string
		year      string
		month     string
		wantDates []string
	}{
		{
			name:      "no year keeps everything",
			year:      "",
			month:     "11",
			wantDates: []string{"2024-03-05", "2024-11-20", "2023-03-05", ""},
		},
		{
			name:      "year only",
			year:      "2024",
			wantDates: []string{"2024-03-05", "2024-11-20"},
		},
		{
			name:      "single-digit month is zero-padded",
			year:      "2024",
			month:     "3",
			wantDates: []string{"2024-03-05"},
		},
		{
			name:      "two-digit month",
			year:      "2024",
			month:     "11",
			wantDates: []string{"2024-11-20"},
		},
		{
			name:      "no match",
			year:      "2025",
			wantDates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.FilterRowsByPeriod(rows, tt.year, tt.month)

			var dates []string
			for _, row := range got {
				if row.Date == nil {
					dates = append(dates, "")
					continue
				}
				dates = append(dates, *row.Date)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}
