package queue_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tikaramspirits/tikaram-api/internal/infra/queue"
)

func TestLeadCreatedPayloadMarshalling(t *testing.T) {
	payload := queue.LeadCreatedPayload{
		LeadID:          "lead-123",
		Email:           "fan@example.com",
		FirstName:       "Ana",
		VerificationURL: "https://tikaramspirits.com/leads/verify?token=tok-abc",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.NotEmpty(t, body)

	var received queue.LeadCreatedPayload
	err = json.Unmarshal(body, &received)
	assert.NoError(t, err)

	assert.Equal(t, "lead-123", received.LeadID)
	assert.Equal(t, "fan@example.com", received.Email)
	assert.Equal(t, "Ana", received.FirstName)
	assert.Equal(t, "https://tikaramspirits.com/leads/verify?token=tok-abc", received.VerificationURL)
}

// The worker matches on these keys; renaming one breaks messages already
// sitting in the queue.
func TestLeadCreatedPayloadWireKeys(t *testing.T) {
	payload := queue.LeadCreatedPayload{
		LeadID:          "lead-123",
		Email:           "fan@example.com",
		FirstName:       "Ana",
		VerificationURL: "https://tikaramspirits.com/leads/verify?token=tok-abc",
	}

	body, _ := json.Marshal(payload)

	var data map[string]interface{}
	json.Unmarshal(body, &data)

	for _, key := range []string{"lead_id", "email", "first_name", "verification_url"} {
		assert.Contains(t, data, key)
		assert.NotEmpty(t, data[key])
	}
}
