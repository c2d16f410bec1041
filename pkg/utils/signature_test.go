package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhookSignature_RoundTrip(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"subscription.updated"}`)

	header := SignWebhookPayload(body, "whsec_test")

	assert.NoError(t, VerifyWebhookSignature(body, header, "whsec_test"))
}

func TestVerifyWebhookSignature_AcceptsBarePrefixlessHex(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)

	header := strings.TrimPrefix(SignWebhookPayload(body, "whsec_test"), "sha256=")

	assert.NoError(t, VerifyWebhookSignature(body, header, "whsec_test"))
}

func TestVerifyWebhookSignature_TamperedBody(t *testing.T) {
	header := SignWebhookPayload([]byte(`{"id":"evt_1"}`), "whsec_test")

	err := VerifyWebhookSignature([]byte(`{"id":"evt_2"}`), header, "whsec_test")

	assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
}

func TestVerifyWebhookSignature_WrongSecret(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)
	header := SignWebhookPayload(body, "whsec_test")

	err := VerifyWebhookSignature(body, header, "whsec_other")

	assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
}

func TestVerifyWebhookSignature_MissingHeaderOrSecret(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)

	assert.ErrorIs(t, VerifyWebhookSignature(body, "", "whsec_test"), ErrInvalidWebhookSignature)
	assert.ErrorIs(t, VerifyWebhookSignature(body, SignWebhookPayload(body, "whsec_test"), ""), ErrInvalidWebhookSignature)
}
