package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var pricePattern = regexp.MustCompile(`^(\d+)(?:\.(\d{1,2}))?$`)

// Price is an amount of money in cents.
type Price int64

// ParsePrice reads a non-negative decimal amount with at most two decimals,
// with or without a leading "$".
func ParsePrice(v string) (Price, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(v), "$")
	m := pricePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("%w: prices should be a non-negative amount with at most two decimal places, got %q", ErrInvalidField, v)
	}
	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is too large", ErrInvalidField, v)
	}
	cents := int64(0)
	if m[2] != "" {
		frac := m[2]
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}
	return Price(whole*100 + cents), nil
}

func (p Price) String() string {
	return fmt.Sprintf("$%d.%02d", int64(p)/100, int64(p)%100)
}

// Purchase is one entry in the expenditure list.
type Purchase struct {
	Name  string   `json:"name"`
	Price Price    `json:"price"`
	Date  Date     `json:"date"`
	Tags  []string `json:"tags,omitempty"`
}

// NewPurchase validates the fields and builds a Purchase.
func NewPurchase(name string, price Price, date Date, tags []string) (Purchase, error) {
	p := Purchase{
		Name:  strings.TrimSpace(name),
		Price: price,
		Date:  date,
		Tags:  normalizeTags(tags),
	}
	if err := p.Validate(); err != nil {
		return Purchase{}, err
	}
	return p, nil
}

// Validate checks the purchase fields.
func (p Purchase) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: purchase names should not be blank", ErrInvalidField)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalidField)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: purchases need a date", ErrInvalidField)
	}
	return nil
}

// IsSame reports whether both purchases have the same name, price and date.
func (p Purchase) IsSame(other Purchase) bool {
	return strings.EqualFold(p.Name, other.Name) && p.Price == other.Price && p.Date.Same(other.Date)
}

func (p Purchase) Equal(other Purchase) bool {
	return p.Name == other.Name &&
		p.Price == other.Price &&
		p.Date.Same(other.Date) &&
		tagsEqual(p.Tags, other.Tags)
}

// Matches reports whether any keyword is a word of the purchase name.
func (p Purchase) Matches(keywords []string) bool {
	return MatchesWord(p.Name, keywords)
}

func (p Purchase) String() string {
	return fmt.Sprintf("%s Price: %s Date: %s%s", p.Name, p.Price, p.Date, formatTags(p.Tags))
}

// ComparePurchaseDate orders purchases by date, then price.
func ComparePurchaseDate(a, b Purchase) int {
	if c := a.Date.Cmp(b.Date); c != 0 {
		return c
	}
	return ComparePurchasePrice(a, b)
}

// ComparePurchasePrice orders purchases by price, cheapest first.
func ComparePurchasePrice(a, b Purchase) int {
	switch {
	case a.Price < b.Price:
		return -1
	case a.Price > b.Price:
		return 1
	}
	return 0
}
