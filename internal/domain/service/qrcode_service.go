package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateFollowQR generates a PNG QR code that lets a user follow the commerce
	GenerateFollowQR(commerceID uuid.UUID) ([]byte, error)

	// ParseFollowQR parses QR code data and returns the commerce ID
	ParseFollowQR(qrData string) (uuid.UUID, error)
}
