package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"offerfeed/internal/domain/service"
	"offerfeed/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// followQRType tags follow payloads so other QR payloads are rejected.
const followQRType = "follow"

// commerceQueryParam carries the commerce ID in deep-link payloads.
const commerceQueryParam = "commerce"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CommerceID string `json:"commerce_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// Payload returns the text encoded in a follow QR code.
func (s *qrcodeService) Payload(commerceID uuid.UUID) (string, error) {
	data := QRCodeData{
		CommerceID: commerceID.String(),
		Type:       followQRType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "?" + url.Values{commerceQueryParam: {commerceID.String()}}.Encode()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// GenerateFollowQR generates a PNG QR code for following a commerce
func (s *qrcodeService) GenerateFollowQR(commerceID uuid.UUID) ([]byte, error) {
	payload, err := s.Payload(commerceID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseFollowQR accepts either the JSON payload or a bare deep link and returns the commerce ID
func (s *qrcodeService) ParseFollowQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)
	if !strings.HasPrefix(qrData, "{") {
		return s.parseDeepLink(qrData)
	}

	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != followQRType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	commerceID, err := uuid.Parse(data.CommerceID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse commerce ID")
	}

	return commerceID, nil
}

func (s *qrcodeService) parseDeepLink(link string) (uuid.UUID, error) {
	if s.baseURL == "" || !strings.HasPrefix(link, s.baseURL) {
		return uuid.Nil, errors.New("QR code is not a follow link")
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse follow link")
	}

	commerceID, err := uuid.Parse(parsed.Query().Get(commerceQueryParam))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse commerce ID")
	}

	return commerceID, nil
}
