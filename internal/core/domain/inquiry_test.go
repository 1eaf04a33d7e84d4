package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriberNormalize(t *testing.T) {
	s := Subscriber{Email: "  Jane.Doe@Example.COM ", FirstName: " Jane "}
	s.Normalize()

	assert.Equal(t, "jane.doe@example.com", s.Email)
	assert.Equal(t, "Jane", s.FirstName)
	assert.NoError(t, s.Validate())
}

func TestSubscriberValidate_EmptyEmail(t *testing.T) {
	s := Subscriber{Email: "   "}
	s.Normalize()
	assert.ErrorIs(t, s.Validate(), ErrEmailRequired)
}

func TestInquiryNormalize_DefaultsType(t *testing.T) {
	i := Inquiry{Name: " Jane ", Email: "jane@example.com", Message: " hi "}
	i.Normalize()

	assert.Equal(t, InquiryTypeGeneral, i.InquiryType)
	assert.Equal(t, "Jane", i.Name)
	assert.NoError(t, i.Validate())
}
