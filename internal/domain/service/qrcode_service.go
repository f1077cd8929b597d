package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShareQR generates a QR code PNG encoding a share link for a
	// saved itinerary key.
	GenerateShareQR(itineraryKey string) ([]byte, error)

	// ParseShareQR parses QR code data and returns the itinerary key.
	ParseShareQR(qrData string) (string, error)
}
