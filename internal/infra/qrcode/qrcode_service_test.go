package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"mediahub/config"
	domainerrors "mediahub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateChannelQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M")

			qrBytes, err := svc.GenerateChannelQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestNewFromConfig_Defaults(t *testing.T) {
	svc := NewFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)

	svc = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	assert.Equal(t, 300, svc.size)
}

func TestQRCodeService_ParseChannelQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	channelID := uuid.New()

	valid, err := json.Marshal(Payload{ChannelID: channelID.String(), Type: payloadType, Version: payloadVersion})
	require.NoError(t, err)

	got, err := svc.ParseChannelQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, channelID, got)

	invalid := []string{
		"not json",
		`{"channel_id":"` + channelID.String() + `","type":"subscription"}`,
		`{"channel_id":"nope","type":"channel_subscribe"}`,
		`{"channel_id":"00000000-0000-0000-0000-000000000000","type":"channel_subscribe"}`,
	}
	for _, raw := range invalid {
		_, err := svc.ParseChannelQR(raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode), raw)
	}
}
