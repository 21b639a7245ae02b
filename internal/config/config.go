package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Wix Stores
	WixBaseURL string
	WixAPIKey  string
	WixSiteID  string

	// Regla de negocio: porcentajes de las dos opciones de pago.
	DepositPct decimal.Decimal
	PrepayPct  decimal.Decimal

	// CSV
	CSVPath string

	// SFTP (subida del reporte, opcional)
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	// .env si existe; en CI/prod las vars ya vienen del entorno
	_ = godotenv.Load()

	return Config{
		WixBaseURL: getenv("WIX_BASE_URL", "https://www.wixapis.com/stores/v1"),
		WixAPIKey:  strings.TrimSpace(os.Getenv("WIX_API_KEY")),
		WixSiteID:  strings.TrimSpace(os.Getenv("WIX_SITE_ID")),

		DepositPct: getenvDecimal("PREORDER_DEPOSIT_PCT", "0.30"),
		PrepayPct:  getenvDecimal("PREORDER_PREPAY_PCT", "0.95"),

		CSVPath: strings.TrimSpace(os.Getenv("CSV_PATH")),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/reports"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDecimal(k, def string) decimal.Decimal {
	v := os.Getenv(k)
	if v == "" {
		v = def
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || d.Sign() <= 0 {
		d, _ = decimal.NewFromString(def)
	}
	return d
}
