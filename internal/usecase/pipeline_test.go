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

func TestStorePipeline_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.StoreRef{ID: "001", Dir: "/stores/001"}

	tests := []struct {
		name          string
		setup         func(m *mock_usecase.MockTableSource)
		wantRows      []domain.SummaryRow
		wantErr       bool
		wantDiagKinds []domain.DiagKind
	}{
		{
			name: "journal pairs aggregate into one row per date and type",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(makeTable(
					[]string{"LINE", "PRICE", "DESCRIPT", "DATE"},
					[]any{"950", "10", nil, "2024-01-05"},
					[]any{"980", nil, "Cash", nil},
					[]any{"950", "5", nil, "2024-01-05"},
					[]any{"980", nil, "Cash", nil},
				), nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleStore).Return(makeTable(
					[]string{"NAME"},
					[]any{"Main Street"},
				), nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleCategory).Return(domain.Table{}, nil)
			},
			wantRows: []domain.SummaryRow{
				{StoreID: "001", StoreName: "Main Street", Date: strPtr("2024-01-05"), Type: strPtr("Cash"), SaleAmount: 15, SaleCount: 2, Currency: "USD"},
			},
		},
		{
			name: "missing journal yields zero rows",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(domain.Table{}, []domain.Diagnostic{
					{Kind: domain.MissingOptionalInput, Store: "001", Subject: "journal"},
				})
			},
			wantRows:      nil,
			wantDiagKinds: []domain.DiagKind{domain.MissingOptionalInput},
		},
		{
			name: "empty journal without reader diagnostics gets one",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(
					domain.Table{Columns: []string{"LINE"}}, nil)
			},
			wantRows:      nil,
			wantDiagKinds: []domain.DiagKind{domain.MissingOptionalInput},
		},
		{
			name: "unreadable journal skips the store",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(domain.Table{}, []domain.Diagnostic{
					{Kind: domain.StructuralFailure, Store: "001", Subject: "/stores/001", Detail: "corrupt table"},
				})
			},
			wantErr: true,
		},
		{
			name: "category filter keeps only reportable events",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(makeTable(
					[]string{"LINE", "PRICE", "DESCRIPT", "DATE", "CAT"},
					[]any{"950", "10", nil, "2024-01-05", "01"},
					[]any{"980", nil, "Cash", nil, nil},
					[]any{"950", "5", nil, "2024-01-05", "02"},
					[]any{"980", nil, "Cash", nil, nil},
				), nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleStore).Return(domain.Table{}, nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleCategory).Return(makeTable(
					[]string{"CAT", "CODE", "NAME"},
					[]any{"01", "N", "Food"},
					[]any{"02", "Y", "Tobacco"},
				), nil)
			},
			wantRows: []domain.SummaryRow{
				{StoreID: "001", StoreName: "001", Date: strPtr("2024-01-05"), Type: strPtr("Cash"), SaleAmount: 10, SaleCount: 1, Currency: "USD"},
			},
		},
		{
			name: "category table without a journal key column skips the filter",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(makeTable(
					[]string{"LINE", "PRICE", "DESCRIPT", "DATE"},
					[]any{"950", "10", nil, "2024-01-05"},
					[]any{"980", nil, "Cash", nil},
				), nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleStore).Return(domain.Table{}, nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleCategory).Return(makeTable(
					[]string{"CAT", "CODE", "NAME"},
					[]any{"01", "N", "Food"},
				), nil)
			},
			// Unable to filter is not the same as nothing passes.
			wantRows: []domain.SummaryRow{
				{StoreID: "001", StoreName: "001", Date: strPtr("2024-01-05"), Type: strPtr("Cash"), SaleAmount: 10, SaleCount: 1, Currency: "USD"},
			},
			wantDiagKinds: []domain.DiagKind{domain.MissingOptionalInput},
		},
		{
			name: "journal without dates backfills from the header",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(makeTable(
					[]string{"LINE", "PRICE", "DESCRIPT", "SALE"},
					[]any{"950", "10", nil, "1001"},
					[]any{"980", nil, "Cash", "1001"},
				), nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleStore).Return(domain.Table{}, nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleHeader).Return(makeTable(
					[]string{"SALE", "DATE"},
					[]any{"1001", "2024-02-10"},
				), nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleCategory).Return(domain.Table{}, nil)
			},
			wantRows: []domain.SummaryRow{
				{StoreID: "001", StoreName: "001", Date: strPtr("2024-02-10"), Type: strPtr("Cash"), SaleAmount: 10, SaleCount: 1, Currency: "USD"},
			},
		},
		{
			name: "no price or amount column zeroes the amounts",
			setup: func(m *mock_usecase.MockTableSource) {
				m.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(makeTable(
					[]string{"LINE", "DESCRIPT"},
					[]any{"950", nil},
					[]any{"980", "Cash"},
				), nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleStore).Return(domain.Table{}, nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleHeader).Return(domain.Table{}, nil)
				m.EXPECT().Read(gomock.Any(), store, layout.RoleCategory).Return(domain.Table{}, nil)
			},
			wantRows: []domain.SummaryRow{
				{StoreID: "001", StoreName: "001", Date: nil, Type: strPtr("Cash"), SaleAmount: 0, SaleCount: 1, Currency: "USD"},
			},
			wantDiagKinds: []domain.DiagKind{domain.UnrecognizedSchema},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mSource := mock_usecase.NewMockTableSource(ctrl)
			tt.setup(mSource)

			pipeline := usecase.NewStorePipeline(mSource, usecase.Options{})
			result, err := pipeline.Process(context.Background(), store)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRows, result.Rows)

			var kinds []domain.DiagKind
			for _, d := range result.Diagnostics {
				kinds = append(kinds, d.Kind)
			}
			assert.Equal(t, tt.wantDiagKinds, kinds)
		})
	}
}

// The record-level filter stage drops journal rows before pairing, so an
// excluded tender row breaks its pair; the default event-level stage does
// not.
func TestStorePipeline_Process_FilterStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := domain.StoreRef{ID: "001", Dir: "/stores/001"}
	journal := makeTable(
		[]string{"LINE", "PRICE", "DESCRIPT", "DATE", "CAT"},
		[]any{"950", "10", nil, "2024-01-05", "A"},
		[]any{"980", nil, "Cash", nil, "X"},
		[]any{"950", "5", nil, "2024-01-05", "A"},
		[]any{"980", nil, "Cash", nil, "A"},
	)
	categories := makeTable(
		[]string{"CAT", "CODE", "NAME"},
		[]any{"A", "N", "Grocery"},
		[]any{"X", "Y", "Voided"},
	)

	run := func(stage string) []domain.SummaryRow {
		mSource := mock_usecase.NewMockTableSource(ctrl)
		mSource.EXPECT().Read(gomock.Any(), store, layout.RoleJournal).Return(journal, nil)
		mSource.EXPECT().Read(gomock.Any(), store, layout.RoleStore).Return(domain.Table{}, nil)
		mSource.EXPECT().Read(gomock.Any(), store, layout.RoleCategory).Return(categories, nil)

		pipeline := usecase.NewStorePipeline(mSource, usecase.Options{FilterStage: stage})
		result, err := pipeline.Process(context.Background(), store)
		assert.NoError(t, err)
		return result.Rows
	}

	eventRows := run(usecase.FilterStageEvents)
	if assert.Len(t, eventRows, 1) {
		assert.Equal(t, float64(15), eventRows[0].SaleAmount)
		assert.Equal(t, 2, eventRows[0].SaleCount)
	}

	recordRows := run(usecase.FilterStageRecords)
	if assert.Len(t, recordRows, 1) {
		assert.Equal(t, float64(5), recordRows[0].SaleAmount)
		assert.Equal(t, 1, recordRows[0].SaleCount)
	}
}
