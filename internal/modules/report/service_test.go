package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	lastRange DateRange
	rows      []ServiceRow
}

func (f *fakeRepo) PaidIncome(ctx context.Context, r DateRange) (float64, error) {
	f.lastRange = r
	return 500000, nil
}

func (f *fakeRepo) ExpenseTotal(ctx context.Context, r DateRange) (float64, error) {
	return 150000, nil
}

func (f *fakeRepo) PaidServiceCount(ctx context.Context, r DateRange) (int, error) { return 3, nil }

func (f *fakeRepo) IncomeByType(ctx context.Context, r DateRange) ([]TypeBreakdown, error) {
	return []TypeBreakdown{{ServiceType: "Ganti LCD", Total: 500000, Count: 3}}, nil
}

func (f *fakeRepo) ExpenseByCategory(ctx context.Context, r DateRange) ([]CategoryBreakdown, error) {
	return []CategoryBreakdown{{Category: "Listrik", Total: 150000, Count: 1}}, nil
}

func (f *fakeRepo) ServiceRows(ctx context.Context) ([]ServiceRow, error) { return f.rows, nil }

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-08-30", "2026-08-30"},
		{"2026-08-30T10:30:00Z", "2026-08-30"},
		{"2026-08-30T10:30:00", "2026-08-30"},
		{"2026/08/30", "2026-08-30"},
		{"08/30/2026", "2026-08-30"},
		{"not-a-date", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, normalizeDate(tc.in), "input %q", tc.in)
	}
}

func TestSummaryRangeDegradation(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Summary(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.True(t, repo.lastRange.Bounded())
	assert.Equal(t, "2026-08-01", repo.lastRange.Start)

	// A bad bound silently widens the query instead of failing it.
	_, err = svc.Summary(context.Background(), "garbage", "2026-08-31")
	require.NoError(t, err)
	assert.False(t, repo.lastRange.Bounded())
}

func TestSummaryComposition(t *testing.T) {
	svc := NewService(&fakeRepo{})

	sum, err := svc.Summary(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 500000.0, sum.TotalIncome)
	assert.Equal(t, 150000.0, sum.TotalExpense)
	assert.Equal(t, 3, sum.TotalServices)
	require.Len(t, sum.IncomeByType, 1)
	require.Len(t, sum.ExpenseByCategory, 1)
}

func TestWriteCSV(t *testing.T) {
	rows := []ServiceRow{
		{ID: 1, ServiceDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), ServiceType: "Ganti LCD", Price: 350000, MemberName: "Budi"},
		{ID: 2, ServiceDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), ServiceType: "Servis, ringan", Price: 50000.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	want := "ID,Tanggal,Service,Harga,Member\n" +
		"1,2026-08-30,Ganti LCD,350000,Budi\n" +
		"2,2026-08-29,\"Servis, ringan\",50000.5,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "ID,Tanggal,Service,Harga,Member\n", buf.String())
}
