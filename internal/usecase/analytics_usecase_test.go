package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrixai/go-backend/internal/domain"
)

type stubSalesOrderRepo struct {
	OrderRepository
	orders []domain.Order
}

func (s *stubSalesOrderRepo) ListSince(_ context.Context, _ string, _ time.Time, _ *time.Time) ([]domain.Order, error) {
	return s.orders, nil
}

func (s *stubSalesOrderRepo) Recent(_ context.Context, _ string, _ int) ([]domain.Order, error) {
	return s.orders, nil
}

type stubProductListRepo struct {
	ProductRepository
	products []domain.Product
}

func (s *stubProductListRepo) ListByBusiness(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, nil
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		current, previous int64
		want              float64
	}{
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
		{100, 0, 100},
		{0, 0, 0},
		{0, 100, -100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, percentChange(tt.current, tt.previous), 0.001)
	}
}

func TestAvgOrderValue(t *testing.T) {
	assert.Equal(t, int64(0), avgOrderValue(1000, 0))
	assert.Equal(t, int64(500), avgOrderValue(1000, 2))
}

func TestTopProducts(t *testing.T) {
	orders := []domain.Order{
		{Lines: []domain.OrderLine{
			{ProductName: "Kopi", Quantity: 2, Subtotal: 30000},
			{ProductName: "Teh", Quantity: 1, Subtotal: 8000},
		}},
		{Lines: []domain.OrderLine{
			{ProductName: "Kopi", Quantity: 1, Subtotal: 15000},
			{ProductName: "Roti", Quantity: 1, Subtotal: 8000},
		}},
	}

	top := topProducts(orders, 5)

	require.Len(t, top, 3)
	assert.Equal(t, ProductSales{Name: "Kopi", Count: 3, Revenue: 45000}, top[0])
	// Равная выручка упорядочивается по имени
	assert.Equal(t, "Roti", top[1].Name)
	assert.Equal(t, "Teh", top[2].Name)
}

func TestTopProductsLimit(t *testing.T) {
	orders := []domain.Order{
		{Lines: []domain.OrderLine{
			{ProductName: "A", Quantity: 1, Subtotal: 5},
			{ProductName: "B", Quantity: 1, Subtotal: 4},
			{ProductName: "C", Quantity: 1, Subtotal: 3},
		}},
	}

	top := topProducts(orders, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, "B", top[1].Name)
}

func TestSalesTrendFillsEmptyDays(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{Date: from.Add(2 * time.Hour), Total: 10000},
		{Date: from.AddDate(0, 0, 2), Total: 25000},
		{Date: from.AddDate(0, 0, 2).Add(5 * time.Hour), Total: 5000},
	}

	trend := salesTrend(orders, from, 4)

	require.Len(t, trend, 4)
	assert.Equal(t, DailyRevenue{Date: "2026-08-01", Revenue: 10000}, trend[0])
	assert.Equal(t, DailyRevenue{Date: "2026-08-02", Revenue: 0}, trend[1])
	assert.Equal(t, DailyRevenue{Date: "2026-08-03", Revenue: 30000}, trend[2])
	assert.Equal(t, DailyRevenue{Date: "2026-08-04", Revenue: 0}, trend[3])
}

func TestGetDetailTrendEndsToday(t *testing.T) {
	now := time.Now().UTC()
	uc := NewAnalyticsUC(
		&stubSalesOrderRepo{orders: []domain.Order{{Date: now, Total: 5000}}},
		&stubProductListRepo{},
		nil, nil,
		testLogger{},
	)

	detail, err := uc.GetDetail(context.Background(), &AnalyticsDetailReq{BusinessID: "biz-1", PeriodDays: 7})

	require.NoError(t, err)
	require.Len(t, detail.SalesTrend, 7)
	// Последняя точка тренда — сегодняшний день, сегодняшние продажи видны сразу
	last := detail.SalesTrend[6]
	assert.Equal(t, now.Format("2006-01-02"), last.Date)
	assert.Equal(t, int64(5000), last.Revenue)
	assert.Equal(t, int64(5000), detail.TotalRevenue)
}

func TestCategoryBreakdown(t *testing.T) {
	kopiID := "p-1"
	unknownID := "p-404"
	products := []domain.Product{
		{ID: kopiID, Category: "Minuman"},
		{ID: "p-2", Category: ""},
	}
	orders := []domain.Order{
		{Lines: []domain.OrderLine{
			{ProductID: &kopiID, Subtotal: 30000},
			{ProductID: &unknownID, Subtotal: 4000},
			{ProductID: nil, Subtotal: 2000},
		}},
	}

	breakdown := categoryBreakdown(orders, products)

	require.Len(t, breakdown, 2)
	assert.Equal(t, CategoryRevenue{Name: "Minuman", Value: 30000}, breakdown[0])
	assert.Equal(t, CategoryRevenue{Name: uncategorizedLabel, Value: 6000}, breakdown[1])
}

func TestParseInsights(t *testing.T) {
	answer := "```json\n[{\"type\":\"success\",\"title\":\"Naik\",\"message\":\"Bagus\"}," +
		"{\"type\":\"alert\",\"title\":\"X\",\"message\":\"Y\"}]\n```"

	insights, err := parseInsights(answer)

	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Equal(t, "success", insights[0].Type)
	// Неизвестный тип сводится к info
	assert.Equal(t, "info", insights[1].Type)
}

func TestParseInsightsCapped(t *testing.T) {
	answer := `[
		{"type":"info","title":"1","message":"a"},
		{"type":"info","title":"2","message":"b"},
		{"type":"info","title":"3","message":"c"},
		{"type":"info","title":"4","message":"d"}
	]`

	insights, err := parseInsights(answer)

	require.NoError(t, err)
	assert.Len(t, insights, maxInsights)
}

func TestParseInsightsInvalid(t *testing.T) {
	_, err := parseInsights("maaf, tidak ada data")
	assert.Error(t, err)
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", `[1,2,3]`, `[1,2,3]`},
		{"surrounded", `Here you go: [1,[2],3] thanks`, `[1,[2],3]`},
		{"fenced", "```json\n[true]\n```", `[true]`},
		{"no array", "nothing here", "nothing here"},
		{"unbalanced", "[1,2", "[1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONArray(tt.in))
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

func TestFallbackInsights(t *testing.T) {
	grown := fallbackInsights(&AnalyticsSummary{
		RevenueChange: 12.5,
		TopProducts:   []ProductSales{{Name: "Kopi"}},
	})
	require.Len(t, grown, 2)
	assert.Equal(t, "success", grown[0].Type)
	assert.Contains(t, grown[1].Message, "Kopi")

	dropped := fallbackInsights(&AnalyticsSummary{RevenueChange: -3})
	require.Len(t, dropped, 1)
	assert.Equal(t, "warning", dropped[0].Type)

	flat := fallbackInsights(&AnalyticsSummary{})
	require.Len(t, flat, 1)
	assert.Equal(t, "info", flat[0].Type)
}

func TestTotals(t *testing.T) {
	revenue, count := totals([]domain.Order{{Total: 100}, {Total: 250}})
	assert.Equal(t, int64(350), revenue)
	assert.Equal(t, int64(2), count)

	revenue, count = totals(nil)
	assert.Zero(t, revenue)
	assert.Zero(t, count)
}
