package stats

import (
	"testing"

	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(txType model.TransactionType, amount string, category model.Category, date string) model.Transaction {
	return model.Transaction{
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestTotalsByType(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		want         Totals
	}{
		{
			name: "empty snapshot",
			want: Totals{},
		},
		{
			name: "mixed income and expense",
			transactions: []model.Transaction{
				txn(model.TypeExpense, "50.00", model.CategoryFood, "2024-01-01"),
				txn(model.TypeIncome, "200.00", model.CategorySalary, "2024-01-01"),
				txn(model.TypeExpense, "30.00", model.CategoryFood, "2024-01-02"),
			},
			want: Totals{Income: 20000, Expense: 8000, Net: 12000},
		},
		{
			name: "expenses exceed income",
			transactions: []model.Transaction{
				txn(model.TypeIncome, "10.00", model.CategorySalary, "2024-01-01"),
				txn(model.TypeExpense, "25.00", model.CategoryShopping, "2024-01-01"),
			},
			want: Totals{Income: 1000, Expense: 2500, Net: -1500},
		},
		{
			name: "malformed amount contributes zero",
			transactions: []model.Transaction{
				txn(model.TypeExpense, "garbage", model.CategoryFood, "2024-01-01"),
				txn(model.TypeExpense, "10.00", model.CategoryFood, "2024-01-01"),
			},
			want: Totals{Income: 0, Expense: 1000, Net: -1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalsByType(tt.transactions)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Income-got.Expense, got.Net)
		})
	}
}

func TestTimeSeries(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeExpense, "30.00", model.CategoryFood, "2024-01-03"),
		txn(model.TypeIncome, "200.00", model.CategorySalary, "2024-01-01"),
		txn(model.TypeExpense, "50.00", model.CategoryFood, "2024-01-01"),
		txn(model.TypeExpense, "20.00", model.CategoryTransport, "2024-01-03"),
	}

	series := TimeSeries(transactions)
	require.Len(t, series, 2, "no zero-filled gap days")

	assert.Equal(t, DatePoint{Date: "2024-01-01", Income: 20000, Expense: 5000}, series[0])
	assert.Equal(t, DatePoint{Date: "2024-01-03", Income: 0, Expense: 5000}, series[1])

	// Dates are non-decreasing.
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}

	// The series sums to the same totals as TotalsByType.
	totals := TotalsByType(transactions)
	var income, expense int64
	for _, point := range series {
		income += point.Income
		expense += point.Expense
	}
	assert.Equal(t, totals.Income, income)
	assert.Equal(t, totals.Expense, expense)
}

func TestTimeSeriesEmpty(t *testing.T) {
	assert.Empty(t, TimeSeries(nil))
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeExpense, "50.00", model.CategoryFood, "2024-01-01"),
		txn(model.TypeIncome, "200.00", model.CategorySalary, "2024-01-01"),
		txn(model.TypeExpense, "30.00", model.CategoryFood, "2024-01-02"),
	}

	breakdown := CategoryBreakdown(transactions, model.TypeExpense)
	require.Len(t, breakdown, 1, "income categories are filtered out")
	assert.Equal(t, CategoryTotal{Category: model.CategoryFood, Total: 8000}, breakdown[0])
}

func TestCategoryBreakdownSortedDescending(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeExpense, "10.00", model.CategoryTransport, "2024-01-01"),
		txn(model.TypeExpense, "90.00", model.CategoryHousing, "2024-01-01"),
		txn(model.TypeExpense, "40.00", model.CategoryFood, "2024-01-01"),
	}

	breakdown := CategoryBreakdown(transactions, model.TypeExpense)
	require.Len(t, breakdown, 3)
	assert.Equal(t, model.CategoryHousing, breakdown[0].Category)
	assert.Equal(t, model.CategoryFood, breakdown[1].Category)
	assert.Equal(t, model.CategoryTransport, breakdown[2].Category)
}

func TestCategoryBreakdownTiesKeepFirstEncounteredOrder(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeExpense, "25.00", model.CategoryShopping, "2024-01-01"),
		txn(model.TypeExpense, "25.00", model.CategoryFood, "2024-01-02"),
		txn(model.TypeExpense, "25.00", model.CategoryTransport, "2024-01-03"),
	}

	breakdown := CategoryBreakdown(transactions, model.TypeExpense)
	require.Len(t, breakdown, 3)
	assert.Equal(t, model.CategoryShopping, breakdown[0].Category)
	assert.Equal(t, model.CategoryFood, breakdown[1].Category)
	assert.Equal(t, model.CategoryTransport, breakdown[2].Category)
}

func TestCategoryBreakdownIdempotent(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeExpense, "10.00", model.CategoryFood, "2024-01-01"),
		txn(model.TypeExpense, "20.00", model.CategoryHealth, "2024-01-01"),
	}

	first := CategoryBreakdown(transactions, model.TypeExpense)
	second := CategoryBreakdown(transactions, model.TypeExpense)
	assert.Equal(t, first, second)
}
