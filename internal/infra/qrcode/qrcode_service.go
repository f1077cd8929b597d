package qrcode

import (
	"encoding/json"
	"fmt"

	"transit/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const shareQRType = "itinerary"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ItineraryKey string `json:"itinerary_key"`
	Type         string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
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

// GenerateShareQR generates a QR code PNG encoding a share link for a saved
// itinerary key.
func (s *qrcodeService) GenerateShareQR(itineraryKey string) ([]byte, error) {
	data := QRCodeData{
		ItineraryKey: itineraryKey,
		Type:         shareQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShareQR parses QR code data and returns the itinerary key
func (s *qrcodeService) ParseShareQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != shareQRType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.ItineraryKey == "" {
		return "", fmt.Errorf("missing itinerary key in QR code data")
	}

	return data.ItineraryKey, nil
}
