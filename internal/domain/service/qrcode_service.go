package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateChannelQR renders a PNG that encodes a subscribe link for the channel.
	GenerateChannelQR(channelID uuid.UUID) ([]byte, error)

	// ParseChannelQR parses scanned QR data and returns the channel ID
	ParseChannelQR(qrData string) (uuid.UUID, error)
}
