package security

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/legislate-ai/core-service/internal/application/auth"
	"github.com/legislate-ai/core-service/internal/domain"
)

const (
	totpPeriod = 30 // standard step, seconds
	// Accept codes up to two steps on either side of now to absorb
	// client clock drift.
	totpSkew = 2

	qrSizePx = 200
)

type TotpManager struct {
	issuer string
}

func NewTotpManager(issuer string) *TotpManager {
	return &TotpManager{issuer: issuer}
}

// GenerateSecret creates a fresh shared secret plus the enrollment
// artifacts a client needs: the otpauth URI and a scannable QR image,
// returned as a PNG data URL.
func (m *TotpManager) GenerateSecret(label string) (auth.TotpEnrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      m.issuer,
		AccountName: label,
		Period:      totpPeriod,
	})
	if err != nil {
		return auth.TotpEnrollment{}, domain.ErrTotpGenerateFailed(err)
	}

	img, err := key.Image(qrSizePx, qrSizePx)
	if err != nil {
		return auth.TotpEnrollment{}, domain.ErrTotpGenerateFailed(err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return auth.TotpEnrollment{}, domain.ErrTotpGenerateFailed(err)
	}

	return auth.TotpEnrollment{
		Base32:     key.Secret(),
		OtpauthURL: key.URL(),
		QRCode:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

func (m *TotpManager) Verify(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
