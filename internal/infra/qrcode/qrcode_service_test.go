package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	orderID := uuid.New()
	png, err := service.GenerateOrderQR(orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 0x50, 0x4e, 0x47}))
}

func TestQRCodeService_ParseOrderQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	orderID := uuid.New()
	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: "order"})
	require.NoError(t, err)

	parsed, err := service.ParseOrderQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParseOrderQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{OrderID: uuid.NewString(), Type: "coupon"})
	require.NoError(t, err)

	_, err = service.ParseOrderQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderQR_Garbage(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseOrderQR("not-json")
	assert.Error(t, err)
}

func TestQRCodeService_UnknownCorrectionLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	png, err := service.GenerateOrderQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
