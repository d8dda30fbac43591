// Package qrcode renders and parses channel subscription QR codes.
package qrcode

import (
	"encoding/json"

	"mediahub/config"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	payloadType    = "channel_subscribe"
	payloadVersion = 1
	defaultSize    = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// Payload is the JSON document encoded in a channel QR code.
type Payload struct {
	ChannelID string `json:"channel_id"`
	Type      string `json:"type"`
	Version   int    `json:"v"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig reads the qrcode section; a missing section means 256px at level M.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateChannelQR returns a PNG encoding the channel payload.
func (s *qrcodeService) GenerateChannelQR(channelID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(Payload{
		ChannelID: channelID.String(),
		Type:      payloadType,
		Version:   payloadVersion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseChannelQR validates scanned data and returns the channel ID.
func (s *qrcodeService) ParseChannelQR(qrData string) (uuid.UUID, error) {
	var data Payload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WrapMessage("malformed payload")
	}

	if data.Type != payloadType {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WrapMessage("unexpected type " + data.Type)
	}

	channelID, err := uuid.Parse(data.ChannelID)
	if err != nil || channelID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WrapMessage("invalid channel id")
	}

	return channelID, nil
}
