package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.String())

	_, err = ParseDate("09/03/2024")
	require.Error(t, err)
}

func TestDateCmpZeroSortsLast(t *testing.T) {
	early := MustDate("2024-01-01")
	late := MustDate("2024-06-01")
	assert.Equal(t, -1, early.Cmp(late))
	assert.Equal(t, 1, late.Cmp(early))
	assert.Equal(t, 1, Date{}.Cmp(early))
	assert.Equal(t, -1, early.Cmp(Date{}))
	assert.Equal(t, 0, Date{}.Cmp(Date{}))
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		D Date `json:"d"`
	}
	b, err := json.Marshal(wrapper{D: MustDate("2023-12-31")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2023-12-31"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"d":""}`), &w))
	assert.True(t, w.D.IsZero())

	require.Error(t, json.Unmarshal([]byte(`{"d":"nope"}`), &w))
}

func TestNewContactValidation(t *testing.T) {
	_, err := NewContact("  ", "12345", "a@b.co", "", nil)
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = NewContact("Alex", "12", "a@b.co", "", nil)
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = NewContact("Alex", "12345", "not-an-email", "", nil)
	assert.ErrorIs(t, err, ErrInvalidField)

	c, err := NewContact(" Alex Yeoh ", "87438807", "alex@example.com", "Blk 30", []string{"friends", "friends", " "})
	require.NoError(t, err)
	assert.Equal(t, "Alex Yeoh", c.Name)
	assert.Equal(t, []string{"friends"}, c.Tags)
	assert.Equal(t, "Alex Yeoh Phone: 87438807 Email: alex@example.com Address: Blk 30 [friends]", c.String())
}

func TestContactIsSame(t *testing.T) {
	a := Contact{Name: "Alex", Phone: "111", Email: "alex@example.com"}

	assert.True(t, a.IsSame(Contact{Name: "ALEX", Phone: "111", Email: "other@example.com"}))
	assert.True(t, a.IsSame(Contact{Name: "alex", Phone: "999", Email: "Alex@Example.com"}))
	assert.False(t, a.IsSame(Contact{Name: "alex", Phone: "999", Email: "other@example.com"}))
	assert.False(t, a.IsSame(Contact{Name: "Bernice", Phone: "111", Email: "alex@example.com"}))

	assert.False(t, a.Equal(Contact{Name: "ALEX", Phone: "111", Email: "alex@example.com"}))
	assert.True(t, a.Equal(a))
}

func TestTask(t *testing.T) {
	_, err := NewTask("Buy milk", Date{}, "", nil)
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = NewTask("Buy milk", MustDate("2024-01-01"), "25:00", nil)
	assert.ErrorIs(t, err, ErrInvalidField)

	task, err := NewTask("Buy milk", MustDate("2024-01-01"), "09:30", []string{"home"})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk Deadline: 2024-01-01 09:30 [home]", task.String())

	other := Task{Name: "buy MILK", Deadline: MustDate("2024-01-01")}
	assert.True(t, task.IsSame(other))
	assert.False(t, task.Equal(other))
	assert.False(t, task.IsSame(Task{Name: "Buy milk", Deadline: MustDate("2024-01-02")}))
}

func TestCompareTaskDeadline(t *testing.T) {
	d := MustDate("2024-01-01")
	withTime := Task{Name: "b", Deadline: d, Time: "08:00"}
	noTime := Task{Name: "a", Deadline: d}
	later := Task{Name: "a", Deadline: MustDate("2024-02-01")}

	assert.Equal(t, -1, CompareTaskDeadline(withTime, noTime))
	assert.Equal(t, -1, CompareTaskDeadline(noTime, later))
	assert.Equal(t, -1, CompareTaskDeadline(Task{Name: "a", Deadline: d}, Task{Name: "B", Deadline: d}))
}

func TestParsePrice(t *testing.T) {
	cases := map[string]Price{
		"3":      300,
		"$3.5":   350,
		"12.05":  1205,
		" 0.99 ": 99,
	}
	for in, want := range cases {
		got, err := ParsePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "-1", "1.234", "abc"} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrInvalidField, in)
	}
	assert.Equal(t, "$12.05", Price(1205).String())
}

func TestPurchase(t *testing.T) {
	p, err := NewPurchase("Coffee", 450, MustDate("2024-05-05"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Price: $4.50 Date: 2024-05-05", p.String())

	assert.True(t, p.IsSame(Purchase{Name: "coffee", Price: 450, Date: MustDate("2024-05-05"), Tags: []string{"x"}}))
	assert.False(t, p.IsSame(Purchase{Name: "coffee", Price: 451, Date: MustDate("2024-05-05")}))

	cheap := Purchase{Name: "a", Price: 100, Date: MustDate("2024-05-05")}
	assert.Equal(t, 1, ComparePurchaseDate(p, cheap))
	assert.Equal(t, -1, ComparePurchaseDate(Purchase{Date: MustDate("2024-01-01"), Price: 900}, cheap))
}

func TestWorkout(t *testing.T) {
	_, err := NewWorkout("Push ups", 0, 10, time.Minute, MustDate("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidField)

	w, err := NewWorkout("Push ups", 3, 10, 90*time.Minute, MustDate("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "Push ups Sets: 3 Reps: 10 Time: 1h30m Date: 2024-01-01", w.String())

	same := w
	same.Exercise = "push UPS"
	assert.True(t, w.IsSame(same))
	same.Reps = 11
	assert.False(t, w.IsSame(same))
}

func TestHabit(t *testing.T) {
	_, err := NewHabit("Read", -1, nil)
	assert.ErrorIs(t, err, ErrInvalidField)

	h, err := NewHabit("Read", 4, []string{"evening"})
	require.NoError(t, err)
	assert.Equal(t, "Read Streak: 4 [evening]", h.String())
	assert.True(t, h.IsSame(Habit{Title: "read"}))
	assert.False(t, h.Equal(Habit{Title: "read", Streak: 4, Tags: []string{"evening"}}))
}

func TestMatchesWord(t *testing.T) {
	assert.True(t, MatchesWord("Buy fresh milk", []string{"MILK"}))
	assert.False(t, MatchesWord("Buy fresh milk", []string{"mil"}))
	assert.True(t, MatchesWord("Alex Yeoh", []string{"bob", "yeoh"}))
}
