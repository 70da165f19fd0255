package entity

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^\d{3,}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Contact is a person in the contact list.
type Contact struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// NewContact validates the fields and builds a Contact.
func NewContact(name, phone, email, address string, tags []string) (Contact, error) {
	c := Contact{
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
		Tags:    normalizeTags(tags),
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// Validate checks the contact fields.
func (c Contact) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: contact names should not be blank", ErrInvalidField)
	}
	if !phonePattern.MatchString(c.Phone) {
		return fmt.Errorf("%w: phone numbers should only contain digits, and be at least 3 digits long", ErrInvalidField)
	}
	if !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("%w: emails should be of the format local-part@domain", ErrInvalidField)
	}
	return nil
}

// IsSame reports whether both contacts have the same name and share a phone
// number or an email.
func (c Contact) IsSame(other Contact) bool {
	if !strings.EqualFold(c.Name, other.Name) {
		return false
	}
	return c.Phone == other.Phone || strings.EqualFold(c.Email, other.Email)
}

func (c Contact) Equal(other Contact) bool {
	return c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		c.Address == other.Address &&
		tagsEqual(c.Tags, other.Tags)
}

// Matches reports whether any keyword is a word of the contact name.
func (c Contact) Matches(keywords []string) bool {
	return MatchesWord(c.Name, keywords)
}

func (c Contact) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Phone: %s Email: %s", c.Name, c.Phone, c.Email)
	if c.Address != "" {
		fmt.Fprintf(&b, " Address: %s", c.Address)
	}
	b.WriteString(formatTags(c.Tags))
	return b.String()
}

// CompareContactName orders contacts by name, ignoring case.
func CompareContactName(a, b Contact) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}
