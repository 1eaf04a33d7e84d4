package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "InquiryRequest/1.0.0", generateKeyFromPath("schemas/requests/inquiry/v1.json"))
	assert.Equal(t, "InquirySubmittedEvent/1.0.0", generateKeyFromPath("schemas/events/inquiry-submitted/v1.json"))
	assert.Equal(t, "SubscriberAddedEvent/2.0.0", generateKeyFromPath("schemas/events/subscriber-added/v2.json"))
	assert.Empty(t, generateKeyFromPath("schemas/inquiry.json"))
	assert.Empty(t, generateKeyFromPath("schemas/commands/inquiry/v1.json"))
}

func TestAllSchemasRegistered(t *testing.T) {
	for _, name := range []string{InquiryRequest, NewsletterRequest, InquirySubmittedEvent, SubscriberAddedEvent} {
		_, ok := compiledSchemas[name+"/"+V1]
		assert.True(t, ok, "schema %s is not registered", name)
	}
}

func TestValidate_InquiryRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"minimal", `{"name":"Jane","email":"jane@example.com","message":"Hello"}`, false},
		{"full viewing", `{"name":"Jane","email":"jane@example.com","phone":"555","inquiryType":"viewing","propertyInterest":"family-home","preferredDate":"2024-03-01","preferredTime":"10:00 AM","message":"Hi"}`, false},
		{"empty inquiry type is allowed", `{"name":"Jane","email":"jane@example.com","inquiryType":"","message":"Hi"}`, false},
		{"missing name", `{"email":"jane@example.com","message":"Hello"}`, true},
		{"missing message", `{"name":"Jane","email":"jane@example.com"}`, true},
		{"bad email", `{"name":"Jane","email":"not-an-email","message":"Hello"}`, true},
		{"unknown inquiry type", `{"name":"Jane","email":"jane@example.com","inquiryType":"complaint","message":"Hello"}`, true},
		{"wrong type", `{"name":42,"email":"jane@example.com","message":"Hello"}`, true},
		{"not json", `name=Jane`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(InquiryRequest, V1, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NewsletterRequest(t *testing.T) {
	require.NoError(t, Validate(NewsletterRequest, V1, []byte(`{"email":"sam@example.com","firstName":"Sam"}`)))
	assert.Error(t, Validate(NewsletterRequest, V1, []byte(`{"firstName":"Sam"}`)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("UnknownRequest", V1, []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
