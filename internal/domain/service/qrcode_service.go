package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePaymentQR generates a PNG QR code carrying an order's payment
	// reference for wallet checkout flows.
	GeneratePaymentQR(orderID string, amount float64, method string) ([]byte, error)

	// ParsePaymentQR parses QR code data and returns the order ID it references.
	ParsePaymentQR(qrData string) (string, error)
}
