package ledger

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/model"
)

func bill(name string, year, month, day int, billType, value string) model.Bill {
	return model.Bill{
		ID:      model.NewID(),
		Name:    name,
		DueDate: datekey.CalendarDate{Year: year, Month: month, Day: day},
		Type:    billType,
		Value:   decimal.RequireFromString(value),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddValidates(t *testing.T) {
	l := New(nil)

	require.NoError(t, l.Add(bill("Rent", 2024, 6, 1, "Pending", "1500.00")))
	assert.Equal(t, 1, l.Len())

	err := l.Add(model.Bill{Name: "", DueDate: datekey.CalendarDate{Year: 2024, Month: 6, Day: 1}})
	assert.ErrorIs(t, err, model.ErrInvalidRecord)
	assert.Equal(t, 1, l.Len(), "failed add must not append")
}

func TestUpdateBounds(t *testing.T) {
	l := New([]model.Bill{bill("Rent", 2024, 6, 1, "Pending", "1500.00")})

	assert.ErrorIs(t, l.Update(1, bill("X", 2024, 6, 1, "Pending", "1")), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Update(-1, bill("X", 2024, 6, 1, "Pending", "1")), ErrIndexOutOfRange)

	replacement := bill("Rent adjusted", 2024, 6, 5, "Pending", "1550.00")
	require.NoError(t, l.Update(0, replacement))
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Rent adjusted", got.Name)
}

func TestRemoveShiftsIndices(t *testing.T) {
	a := bill("A", 2024, 6, 1, "Pending", "10")
	b := bill("B", 2024, 6, 2, "Pending", "20")
	c := bill("C", 2024, 6, 3, "Pending", "30")
	l := New([]model.Bill{a, b, c})

	require.NoError(t, l.Remove(1))
	bills := l.Bills()
	require.Len(t, bills, 2)
	assert.Equal(t, "A", bills[0].Name)
	assert.Equal(t, "C", bills[1].Name)

	// After the shift, index 1 addresses C's slot.
	d := bill("D", 2024, 6, 4, "Pending", "40")
	require.NoError(t, l.Update(1, d))
	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "D", got.Name)

	assert.ErrorIs(t, l.Remove(2), ErrIndexOutOfRange)
}

func TestGroupByMonthScenario(t *testing.T) {
	l := New(nil)
	require.NoError(t, l.Add(bill("Rent", 2024, 6, 1, "Pending", "1500.00")))
	require.NoError(t, l.Add(bill("Gym", 2024, 6, 10, model.TypePaid, "80.00")))

	buckets := l.GroupByMonth()
	require.Len(t, buckets, 1)

	got := buckets[0]
	assert.Equal(t, "2024-06", got.Key)
	require.Len(t, got.Bills, 2)
	assert.Equal(t, "Rent", got.Bills[0].Name)
	assert.Equal(t, "Gym", got.Bills[1].Name)
	assert.True(t, got.TotalDue.Equal(dec("1580.00")), "due = %s", got.TotalDue)
	assert.True(t, got.TotalPaid.Equal(dec("80.00")), "paid = %s", got.TotalPaid)
	assert.True(t, got.TotalRemaining.Equal(dec("1500.00")), "remaining = %s", got.TotalRemaining)
}

func TestGroupByMonthBucketOrder(t *testing.T) {
	l := New([]model.Bill{
		bill("July first", 2024, 7, 1, "Pending", "10"),
		bill("June", 2024, 6, 20, "Pending", "20"),
		bill("July second", 2024, 7, 15, "Pending", "30"),
	})

	buckets := l.GroupByMonth()
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-07", buckets[0].Key, "first-seen month leads")
	assert.Equal(t, "2024-06", buckets[1].Key)
	require.Len(t, buckets[0].Bills, 2)
	assert.Equal(t, "July first", buckets[0].Bills[0].Name)
	assert.Equal(t, "July second", buckets[0].Bills[1].Name)

	assert.Equal(t, []int{0, 2}, buckets[0].Positions, "positions index the full list")
	assert.Equal(t, []int{1}, buckets[1].Positions)
}

func TestGroupByMonthDeterministicUnderPermutation(t *testing.T) {
	base := []model.Bill{
		bill("A", 2024, 6, 1, "Pending", "10.50"),
		bill("B", 2024, 6, 15, model.TypePaid, "20.25"),
		bill("C", 2024, 7, 1, "Pending", "30"),
		bill("D", 2024, 7, 9, model.TypePaid, "5.75"),
		bill("E", 2025, 1, 3, "Pending", "100"),
	}

	type summary struct {
		names            map[string]bool
		due, paid, remai string
	}
	summarize := func(buckets []MonthBucket) map[string]summary {
		out := make(map[string]summary)
		for _, bk := range buckets {
			names := make(map[string]bool)
			for _, b := range bk.Bills {
				names[b.Name] = true
			}
			out[bk.Key] = summary{
				names: names,
				due:   bk.TotalDue.StringFixed(2),
				paid:  bk.TotalPaid.StringFixed(2),
				remai: bk.TotalRemaining.StringFixed(2),
			}
		}
		return out
	}

	want := summarize(New(base).GroupByMonth())

	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 10; n++ {
		shuffled := append([]model.Bill(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, summarize(New(shuffled).GroupByMonth()))
	}
}

func TestAggregationIdentity(t *testing.T) {
	l := New([]model.Bill{
		bill("A", 2024, 6, 1, "Pending", "0.10"),
		bill("B", 2024, 6, 2, model.TypePaid, "0.20"),
		bill("C", 2024, 6, 3, model.TypePaid, "0.30"),
	})

	for _, bk := range l.GroupByMonth() {
		assert.True(t, bk.TotalRemaining.Equal(bk.TotalDue.Sub(bk.TotalPaid)))

		sum := decimal.Zero
		for _, b := range bk.Bills {
			sum = sum.Add(b.Value)
		}
		assert.True(t, bk.TotalDue.Equal(sum))
	}
}

func TestClassify(t *testing.T) {
	today := datekey.CalendarDate{Year: 2024, Month: 6, Day: 15}

	tests := []struct {
		name string
		b    model.Bill
		want model.Urgency
	}{
		{"past due", bill("x", 2024, 6, 14, "Pending", "1"), model.UrgencyOverdue},
		{"due today", bill("x", 2024, 6, 15, "Pending", "1"), model.UrgencyOnTime},
		{"due tomorrow", bill("x", 2024, 6, 16, "Pending", "1"), model.UrgencyDueTomorrow},
		{"due later", bill("x", 2024, 6, 30, "Pending", "1"), model.UrgencyOnTime},
		{"paid beats overdue", bill("x", 2024, 1, 1, model.TypePaid, "1"), model.UrgencyPaid},
		{"paid beats due tomorrow", bill("x", 2024, 6, 16, model.TypePaid, "1"), model.UrgencyPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.b, today))
		})
	}
}

func TestBillsReturnsCopy(t *testing.T) {
	l := New([]model.Bill{bill("A", 2024, 6, 1, "Pending", "10")})

	bills := l.Bills()
	bills[0].Name = "mutated"

	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}
